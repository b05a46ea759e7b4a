package imaging

// Orientation is the shape class of an image derived from its aspect ratio.
type Orientation int

const (
	Balanced Orientation = iota
	Landscape
	Portrait
)

// Aspect ratio thresholds. Both are exclusive bounds for Landscape and
// Portrait, so a ratio equal to either one is Balanced.
const (
	LandscapeMinRatio = 1.2
	PortraitMaxRatio  = 0.8
)

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "Landscape"
	case Portrait:
		return "Portrait"
	default:
		return "Square/balanced"
	}
}

// ClassifyOrientation maps an aspect ratio to exactly one Orientation.
func ClassifyOrientation(ratio float64) Orientation {
	switch {
	case ratio > LandscapeMinRatio:
		return Landscape
	case ratio < PortraitMaxRatio:
		return Portrait
	default:
		return Balanced
	}
}

// ResolutionTier is the size class of an image derived from its pixel
// dimensions.
type ResolutionTier int

const (
	LowResolution ResolutionTier = iota
	MediumResolution
	HighResolution
)

// Minimum dimensions for each tier. Both width and height must reach the
// minimum.
const (
	HighMinWidth    = 1920
	HighMinHeight   = 1080
	MediumMinWidth  = 512
	MediumMinHeight = 512
)

func (r ResolutionTier) String() string {
	switch r {
	case HighResolution:
		return "High"
	case MediumResolution:
		return "Medium"
	default:
		return "Low"
	}
}

// ClassifyResolution maps dimensions to a ResolutionTier. Tiers are checked
// from High down and the first match wins, so 1920x1080 is High even though
// it also meets the Medium minimums.
func ClassifyResolution(width, height int) ResolutionTier {
	switch {
	case width >= HighMinWidth && height >= HighMinHeight:
		return HighResolution
	case width >= MediumMinWidth && height >= MediumMinHeight:
		return MediumResolution
	default:
		return LowResolution
	}
}
