package notes

import (
	"fmt"
	"strings"

	"github.com/ironsheep/image-notes/internal/imaging"
)

const (
	reportTitle = "Image Analysis for Game Design Inspiration"
	ruleWidth   = 50
)

// guidance holds the two bullet lines shown under a classification heading.
type guidance struct {
	heading string
	first   string
	second  string
}

var orientationGuidance = map[imaging.Orientation]guidance{
	imaging.Landscape: {
		heading: "ORIENTATION: Landscape format",
		first:   "- Good for: Wide environments, panoramic views, UI layouts",
		second:  "- Game design use: Environment concepts, level backgrounds",
	},
	imaging.Portrait: {
		heading: "ORIENTATION: Portrait format",
		first:   "- Good for: Character designs, vertical UI elements, mobile layouts",
		second:  "- Game design use: Character portraits, mobile UI mockups",
	},
	imaging.Balanced: {
		heading: "ORIENTATION: Square/balanced format",
		first:   "- Good for: Icons, avatars, symmetric designs",
		second:  "- Game design use: Item icons, ability symbols, profile pictures",
	},
}

var resolutionGuidance = map[imaging.ResolutionTier]guidance{
	imaging.HighResolution: {
		heading: "RESOLUTION: High resolution",
		first:   "- Suitable for: Detailed environment concepts, high-quality assets",
		second:  "- Can be used for: Background art, detailed UI elements",
	},
	imaging.MediumResolution: {
		heading: "RESOLUTION: Medium resolution",
		first:   "- Suitable for: UI elements, character designs, item concepts",
		second:  "- Can be used for: In-game assets, interface components",
	},
	imaging.LowResolution: {
		heading: "RESOLUTION: Low resolution",
		first:   "- Suitable for: Icons, small UI elements, pixel art inspiration",
		second:  "- Can be used for: Button designs, status indicators",
	},
}

var considerations = []string{
	"GAME DESIGN CONSIDERATIONS:",
	"- Analyze color palette for mood and atmosphere",
	"- Consider composition for UI layout inspiration",
	"- Look for design patterns applicable to game mechanics",
	"- Note artistic style that could influence game aesthetics",
}

var userNotes = []string{
	"USER NOTES:",
	"(Add your own observations and design ideas below)",
}

// Report is a rendered design notes report together with the properties it
// was built from.
type Report struct {
	Properties  *imaging.ImageProperties
	Orientation imaging.Orientation
	Resolution  imaging.ResolutionTier
	Text        string
}

// String returns the report text.
func (r *Report) String() string {
	return r.Text
}

// Render builds the report text for props. The text is newline-joined and
// ends with a newline. Render is deterministic: equal properties always give
// byte-identical text.
func Render(props *imaging.ImageProperties) string {
	o := orientationGuidance[props.Orientation()]
	r := resolutionGuidance[props.Resolution()]

	lines := []string{
		reportTitle,
		strings.Repeat("=", ruleWidth),
		fmt.Sprintf("Filename: %s", props.Filename()),
		fmt.Sprintf("Dimensions: %dx%d pixels", props.Width, props.Height),
		fmt.Sprintf("Format: %s", props.Format),
		fmt.Sprintf("Color Mode: %s", props.ColorMode),
		"",
		o.heading, o.first, o.second,
		"",
		r.heading, r.first, r.second,
		"",
	}
	lines = append(lines, considerations...)
	lines = append(lines, "")
	lines = append(lines, userNotes...)
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}
