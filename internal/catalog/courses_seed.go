package catalog

// defaultCategories mirrors the categories on the Domestika site.
var defaultCategories = []Category{
	{ID: "1", Name: "Illustration", Slug: "illustration"},
	{ID: "2", Name: "Design", Slug: "design"},
	{ID: "3", Name: "Photography & Video", Slug: "photography-video"},
	{ID: "4", Name: "Marketing & Business", Slug: "marketing-business"},
	{ID: "5", Name: "Craft", Slug: "craft"},
	{ID: "6", Name: "3D & Animation", Slug: "3d-animation"},
	{ID: "7", Name: "Architecture & Spaces", Slug: "architecture-spaces"},
	{ID: "8", Name: "Writing", Slug: "writing"},
	{ID: "9", Name: "Fashion", Slug: "fashion"},
	{ID: "10", Name: "Web & App Design", Slug: "web-app-design"},
	{ID: "11", Name: "Music & Audio", Slug: "music-audio"},
	{ID: "12", Name: "Calligraphy & Typography", Slug: "calligraphy-typography"},
	{ID: "13", Name: "Culinary", Slug: "culinary"},
	{ID: "14", Name: "Technology", Slug: "technology"},
	{ID: "15", Name: "Fine Arts", Slug: "fine-arts"},
	{ID: "16", Name: "Lifestyle", Slug: "lifestyle"},
}

// defaultCourses is the built-in popular-course table.
var defaultCourses = []Course{
	{
		ID:          "1",
		Title:       "Introduction to Adobe Photoshop",
		Instructor:  "Carles Marsal",
		Category:    "Design",
		Description: "Learn the fundamentals of digital image editing with Adobe Photoshop",
		Rating:      4.8,
		Students:    15420,
		Duration:    "3h 45m",
		Level:       "Beginner",
		URL:         "https://www.domestika.org/en/courses/1/introduction-to-adobe-photoshop",
		Price:       "$49",
	},
	{
		ID:          "2",
		Title:       "Drawing for Beginners",
		Instructor:  "Puño",
		Category:    "Illustration",
		Description: "Master the basics of drawing and develop your artistic skills",
		Rating:      4.9,
		Students:    28350,
		Duration:    "4h 20m",
		Level:       "Beginner",
		URL:         "https://www.domestika.org/en/courses/2/drawing-for-beginners",
		Price:       "$39",
	},
	{
		ID:          "3",
		Title:       "UX Design Fundamentals",
		Instructor:  "Daniel Caballero",
		Category:    "Web & App Design",
		Description: "Learn user experience design principles and create intuitive interfaces",
		Rating:      4.7,
		Students:    12180,
		Duration:    "5h 15m",
		Level:       "Intermediate",
		URL:         "https://www.domestika.org/en/courses/3/ux-design-fundamentals",
		Price:       "$59",
	},
	{
		ID:          "4",
		Title:       "Digital Photography Essentials",
		Instructor:  "Marta Bevacqua",
		Category:    "Photography & Video",
		Description: "Master composition, lighting, and post-processing techniques",
		Rating:      4.8,
		Students:    19720,
		Duration:    "6h 30m",
		Level:       "Beginner",
		URL:         "https://www.domestika.org/en/courses/4/digital-photography-essentials",
		Price:       "$69",
	},
	{
		ID:          "5",
		Title:       "Brand Identity Design",
		Instructor:  "Sagi Haviv",
		Category:    "Design",
		Description: "Create memorable brand identities that stand out in the market",
		Rating:      4.9,
		Students:    8940,
		Duration:    "4h 45m",
		Level:       "Intermediate",
		URL:         "https://www.domestika.org/en/courses/5/brand-identity-design",
		Price:       "$79",
	},
	{
		ID:          "6",
		Title:       "Watercolor Illustration Techniques",
		Instructor:  "Ana Santos",
		Category:    "Illustration",
		Description: "Explore watercolor painting techniques for modern illustration",
		Rating:      4.6,
		Students:    16230,
		Duration:    "3h 20m",
		Level:       "Beginner",
		URL:         "https://www.domestika.org/en/courses/6/watercolor-illustration-techniques",
		Price:       "$45",
	},
	{
		ID:          "7",
		Title:       "Motion Graphics with After Effects",
		Instructor:  "Jorge R. Canedo Estrada",
		Category:    "3D & Animation",
		Description: "Create stunning motion graphics and animations",
		Rating:      4.7,
		Students:    11560,
		Duration:    "7h 15m",
		Level:       "Advanced",
		URL:         "https://www.domestika.org/en/courses/7/motion-graphics-with-after-effects",
		Price:       "$89",
	},
	{
		ID:          "8",
		Title:       "Typography Fundamentals",
		Instructor:  "Laura Meseguer",
		Category:    "Calligraphy & Typography",
		Description: "Learn the art and science of typography design",
		Rating:      4.8,
		Students:    13470,
		Duration:    "4h 10m",
		Level:       "Intermediate",
		URL:         "https://www.domestika.org/en/courses/8/typography-fundamentals",
		Price:       "$55",
	},
	{
		ID:          "9",
		Title:       "Product Photography",
		Instructor:  "Martí Sans",
		Category:    "Photography & Video",
		Description: "Master product photography for e-commerce and marketing",
		Rating:      4.5,
		Students:    9820,
		Duration:    "5h 25m",
		Level:       "Intermediate",
		URL:         "https://www.domestika.org/en/courses/9/product-photography",
		Price:       "$65",
	},
	{
		ID:          "10",
		Title:       "Ceramic Hand Building",
		Instructor:  "Lilly Maetzig",
		Category:    "Craft",
		Description: "Create beautiful ceramic pieces using hand-building techniques",
		Rating:      4.9,
		Students:    7540,
		Duration:    "3h 50m",
		Level:       "Beginner",
		URL:         "https://www.domestika.org/en/courses/10/ceramic-hand-building",
		Price:       "$42",
	},
}

// DefaultCourseIndex returns the built-in course catalog.
func DefaultCourseIndex() *CourseIndex {
	return NewCourseIndex(defaultCourses, defaultCategories)
}
