package catalog

import "strings"

// Course describes a single course in the browsing catalog.
type Course struct {
	ID          string
	Title       string
	Instructor  string
	Category    string
	Description string
	Rating      float64
	Students    int
	Duration    string
	Level       string
	URL         string
	Price       string
}

// Category is a top-level course category.
type Category struct {
	ID   string
	Name string
	Slug string
}

// CourseIndex is an immutable, read-only course table with category lookups.
type CourseIndex struct {
	courses    []Course
	categories []Category
	bySlug     map[string]*Category
}

// NewCourseIndex builds a CourseIndex preserving definition order.
func NewCourseIndex(courses []Course, categories []Category) *CourseIndex {
	idx := &CourseIndex{
		courses:    courses,
		categories: categories,
		bySlug:     make(map[string]*Category, len(categories)),
	}
	for i := range idx.categories {
		idx.bySlug[idx.categories[i].Slug] = &idx.categories[i]
	}
	return idx
}

// Popular returns the first limit courses in catalog order.
func (idx *CourseIndex) Popular(limit int) []Course {
	return capCourses(idx.courses, limit)
}

// ByCategory returns courses whose category matches the given slug.
// An unknown slug yields an empty result.
func (idx *CourseIndex) ByCategory(slug string, limit int) []Course {
	cat, ok := idx.bySlug[slug]
	if !ok {
		return nil
	}
	var out []Course
	for _, c := range idx.courses {
		if strings.EqualFold(c.Category, cat.Name) {
			out = append(out, c)
		}
	}
	return capCourses(out, limit)
}

// Search returns courses whose title, category, description, or instructor
// contains the query, case-insensitively.
func (idx *CourseIndex) Search(query string, limit int) []Course {
	term := Normalize(query)
	if term == "" {
		return nil
	}
	var out []Course
	for _, c := range idx.courses {
		if strings.Contains(strings.ToLower(c.Title), term) ||
			strings.Contains(strings.ToLower(c.Category), term) ||
			strings.Contains(strings.ToLower(c.Description), term) ||
			strings.Contains(strings.ToLower(c.Instructor), term) {
			out = append(out, c)
		}
	}
	return capCourses(out, limit)
}

// Categories returns all categories in definition order.
func (idx *CourseIndex) Categories() []Category {
	return idx.categories
}

func capCourses(courses []Course, limit int) []Course {
	if limit > 0 && len(courses) > limit {
		return courses[:limit]
	}
	return courses
}
