package feedback

// defaultRules is the built-in heuristic table. Rules are evaluated
// first-match-wins in this order, so the order must not be reshuffled.
var defaultRules = []Rule{
	{
		Keyword: "sketch",
		Kind:    KindSuggestion,
		Responses: []string{
			"Your sketch shows strong foundational composition! Consider adding more line weight variation to create depth and visual hierarchy. Try using thicker lines for foreground elements and thinner lines for background details.",
			"Great character concept! To enhance your sketch, experiment with different shading techniques like cross-hatching or stippling to add texture and dimension.",
			"Your proportions are well-balanced. For the next iteration, try adding more dynamic poses or gestures to bring more life and energy to your character.",
		},
	},
	{
		Keyword: "wireframe",
		Kind:    KindSuggestion,
		Responses: []string{
			"Your wireframe demonstrates good information architecture! Consider adding more spacing between elements for better visual breathing room and improved usability.",
			"Solid layout structure! To enhance user experience, try incorporating more visual hierarchy through different text sizes and button prominence.",
			"Great foundation for your interface! Consider adding breadcrumbs or navigation indicators to help users understand their location within the app flow.",
		},
	},
	{
		Keyword: "illustration",
		Kind:    KindPositive,
		Responses: []string{
			"Your illustration showcases excellent color harmony! The palette creates a cohesive mood. Consider experimenting with complementary colors for accent elements to make key areas pop.",
			"Beautiful artistic style! Your use of light and shadow creates great depth. Try adding more contrast in focal areas to guide the viewer's eye through your composition.",
			"Fantastic attention to detail! Your illustration has strong visual appeal. Consider adding subtle textures or patterns to enhance the overall richness of your artwork.",
		},
	},
	{
		Keyword: "design",
		Kind:    KindSuggestion,
		Responses: []string{
			"Your design concept has strong visual appeal! Consider testing different typography pairings to enhance readability and create better brand consistency.",
			"Great use of white space! To improve accessibility, ensure your color choices meet WCAG contrast guidelines, especially for text elements.",
			"Solid design foundation! Try experimenting with different grid systems or alignment techniques to create more dynamic and engaging layouts.",
		},
	},
	{
		Keyword: "logo",
		Kind:    KindPositive,
		Responses: []string{
			"Your logo design has strong brand potential! The concept is memorable and distinctive. Consider testing scalability at different sizes to ensure it works across all applications.",
			"Excellent use of symbolism! Your logo effectively communicates the brand message. Try exploring monochrome versions to ensure versatility across different media.",
			"Great typography integration! The logo has professional appeal. Consider creating variations for different use cases (horizontal, stacked, icon-only).",
		},
	},
	{
		Keyword: "photography",
		Kind:    KindPositive,
		Responses: []string{
			"Your composition follows the rule of thirds beautifully! The lighting creates excellent mood and atmosphere. Consider experimenting with different aperture settings for varied depth of field effects.",
			"Fantastic capture of the moment! Your timing and framing are excellent. Try exploring different perspectives or angles to add more dynamic visual interest.",
			"Great attention to detail in your shot! The colors are vibrant and well-balanced. Consider post-processing techniques to enhance contrast and bring out more detail in shadows.",
		},
	},
	{
		Keyword: "ui",
		Kind:    KindSuggestion,
		Responses: []string{
			"Your UI design shows good understanding of user interface principles! Consider improving accessibility by ensuring sufficient color contrast and touch target sizes.",
			"Clean interface design! To enhance usability, try implementing a more consistent spacing system and clear visual hierarchy throughout your components.",
			"Solid foundation for your interface! Consider adding micro-interactions and transitions to improve user engagement and provide better feedback.",
		},
	},
}

// defaultImageFallback is used when an image was supplied but no keyword
// matched the description.
var defaultImageFallback = []string{
	"Your uploaded image shows great visual appeal! The composition draws the viewer's eye effectively. Consider adjusting the contrast slightly to improve accessibility and make key elements more prominent.",
	"Excellent color palette choice! The tones work harmoniously together. For your next iteration, try experimenting with different lighting angles to add more depth and dimension.",
	"Strong visual foundation! Your image has good balance and proportion. Consider adding more texture or pattern elements to enhance visual interest and engagement.",
	"Great attention to detail in your work! The overall aesthetic is cohesive and professional. Try exploring different cropping options to see how they affect the composition's impact.",
}

// FallbackMessage is the fixed response when nothing matched and no image
// was supplied. It steers the user toward recognized keywords.
const FallbackMessage = "I'd love to provide more specific feedback! Try describing your project using keywords like 'sketch', 'wireframe', 'illustration', 'design', 'logo', or 'photography' for more targeted suggestions."

// DefaultRules returns the built-in rule table in evaluation order.
func DefaultRules() []Rule {
	return defaultRules
}

// DefaultImageFallback returns the generic image-upload responses.
func DefaultImageFallback() []string {
	return defaultImageFallback
}

// Keywords returns the trigger keywords in rule order.
func Keywords(rules []Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Keyword
	}
	return out
}
