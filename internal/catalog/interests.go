package catalog

// defaultEntries is the built-in creative interest table. Definition order
// matters: the suggestion ranker's tie-break preserves it.
var defaultEntries = []Entry{
	{
		Name:         "illustration",
		RelatedTerms: []string{"digital illustration", "character design", "concept art", "drawing", "sketching"},
		Course:       "Introduction to Digital Illustration",
		Exercise:     "Create a character sketch with 3 color variations",
	},
	{
		Name:         "ux design",
		RelatedTerms: []string{"user experience", "user research", "usability", "wireframes", "prototyping"},
		Course:       "UX Design Fundamentals",
		Exercise:     "Design a mobile app wireframe",
	},
	{
		Name:         "ui design",
		RelatedTerms: []string{"user interface", "interface design", "app design", "web interface"},
		Course:       "Modern UI Design Principles",
		Exercise:     "Create a landing page mockup for a creative agency",
	},
	{
		Name:         "graphic design",
		RelatedTerms: []string{"visual design", "layout design", "print design", "poster design"},
		Course:       "Brand Identity Design",
		Exercise:     "Design a complete logo and brand guidelines",
	},
	{
		Name:         "motion design",
		RelatedTerms: []string{"motion graphics", "animation", "after effects", "kinetic typography"},
		Course:       "Motion Graphics Mastery",
		Exercise:     "Create a 10-second animated logo reveal",
	},
	{
		Name:         "web design",
		RelatedTerms: []string{"website design", "responsive design", "frontend design", "landing pages"},
		Course:       "Responsive Web Design",
		Exercise:     "Build a portfolio website from scratch",
	},
	{
		Name:         "product design",
		RelatedTerms: []string{"industrial design", "product development", "design thinking"},
		Course:       "Product Design Fundamentals",
		Exercise:     "Design and prototype a mobile accessory",
	},
	{
		Name:         "interior design",
		RelatedTerms: []string{"space design", "room planning", "architectural design", "furniture design"},
		Course:       "Interior Design Principles",
		Exercise:     "Design a cozy living room layout",
	},
	{
		Name:         "fashion design",
		RelatedTerms: []string{"clothing design", "textile design", "fashion illustration", "pattern making"},
		Course:       "Fashion Design Essentials",
		Exercise:     "Sketch a seasonal clothing collection",
	},
	{
		Name:         "photography",
		RelatedTerms: []string{"photo", "camera", "photoshoot", "composition", "lighting"},
		Course:       "Portrait Photography Mastery",
		Exercise:     "Take 10 portraits using natural lighting techniques",
	},
	{
		Name:         "digital photography",
		RelatedTerms: []string{"photo editing", "lightroom", "photoshop", "image processing"},
		Course:       "Digital Photography Workshop",
		Exercise:     "Edit a photo series with consistent styling",
	},
	{
		Name:         "portrait photography",
		RelatedTerms: []string{"headshots", "people photography", "studio lighting", "posing"},
		Course:       "Professional Portrait Photography",
		Exercise:     "Create a portrait series with different lighting setups",
	},
	{
		Name:         "animation",
		RelatedTerms: []string{"cartoon", "motion", "character animation", "storytelling"},
		Course:       "2D Animation Basics",
		Exercise:     "Create a 5-second character walking cycle",
	},
	{
		Name:         "3d animation",
		RelatedTerms: []string{"3d modeling", "rigging", "rendering", "blender", "maya"},
		Course:       "3D Animation Fundamentals",
		Exercise:     "Model and animate a simple 3D character",
	},
	{
		Name:         "2d animation",
		RelatedTerms: []string{"traditional animation", "frame by frame", "tweening", "cel animation"},
		Course:       "2D Animation Techniques",
		Exercise:     "Create a bouncing ball animation sequence",
	},
	{
		Name:         "video editing",
		RelatedTerms: []string{"video production", "montage", "post production", "color grading"},
		Course:       "Video Editing Masterclass",
		Exercise:     "Edit a 2-minute creative video story",
	},
	{
		Name:         "music production",
		RelatedTerms: []string{"audio production", "sound design", "mixing", "mastering", "beats"},
		Course:       "Music Production Basics",
		Exercise:     "Produce a 30-second instrumental track",
	},
	{
		Name:         "painting",
		RelatedTerms: []string{"fine art", "canvas", "brushwork", "color theory", "composition"},
		Course:       "Digital Painting Techniques",
		Exercise:     "Paint a landscape using only 5 colors",
	},
	{
		Name:         "watercolor painting",
		RelatedTerms: []string{"watercolor", "wet on wet", "color bleeding", "transparency"},
		Course:       "Watercolor Fundamentals",
		Exercise:     "Paint a floral composition with watercolors",
	},
	{
		Name:         "digital painting",
		RelatedTerms: []string{"concept art", "matte painting", "photoshop painting", "brush techniques"},
		Course:       "Digital Painting Mastery",
		Exercise:     "Create a digital environment painting",
	},
	{
		Name:         "calligraphy",
		RelatedTerms: []string{"hand lettering", "brush lettering", "script writing", "ink work"},
		Course:       "Modern Calligraphy Techniques",
		Exercise:     "Design a quote poster with hand lettering",
	},
	{
		Name:         "typography",
		RelatedTerms: []string{"font design", "lettering", "typeface", "text layout", "kerning"},
		Course:       "Typography Fundamentals",
		Exercise:     "Design a poster using only typographic elements",
	},
	{
		Name:         "branding",
		RelatedTerms: []string{"brand identity", "logo design", "brand strategy", "visual identity"},
		Course:       "Brand Identity Design",
		Exercise:     "Create a complete brand package for a startup",
	},
	{
		Name:         "creative writing",
		RelatedTerms: []string{"storytelling", "screenwriting", "poetry", "narrative", "fiction"},
		Course:       "Creative Writing Workshop",
		Exercise:     "Write a 500-word short story with a twist ending",
	},
	{
		Name:         "sculpture",
		RelatedTerms: []string{"3d art", "clay modeling", "carving", "assemblage", "installation"},
		Course:       "Sculpture Fundamentals",
		Exercise:     "Create a small sculpture using found objects",
	},
}

// Default returns the built-in interest catalog.
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		// The built-in table is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}
