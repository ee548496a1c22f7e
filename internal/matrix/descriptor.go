package matrix

import "fmt"

// Icon tags
const (
	IconTarget    = "target"
	IconRocket    = "rocket"
	IconMountain  = "mountain"
	IconWrench    = "wrench"
	IconThinking  = "thinking"
	IconWarning   = "warning"
	IconBalloon   = "balloon"
	IconMagnifier = "magnifier"
	IconCross     = "cross"
	IconClipboard = "clipboard"
)

// Descriptor is the static display metadata for a matrix cell.
type Descriptor struct {
	Title       string
	Description string
	Icon        string
	Class       string // CSS class used to colour the cell
}

var descriptors = map[string]Descriptor{
	"High-High":     {Title: "Quick Wins", Description: "High Business Value & High Feasibility", Icon: IconTarget, Class: "high-high"},
	"High-Medium":   {Title: "Major Projects", Description: "High Business Value & Medium Feasibility", Icon: IconRocket, Class: "high-medium"},
	"High-Low":      {Title: "Challenging", Description: "High Business Value & Low Feasibility", Icon: IconMountain, Class: "medium-low"},
	"Medium-High":   {Title: "Fill-ins", Description: "Medium Business Value & High Feasibility", Icon: IconWrench, Class: "medium-high"},
	"Medium-Medium": {Title: "Consider Carefully", Description: "Medium Business Value & Medium Feasibility", Icon: IconThinking, Class: "medium-medium"},
	"Medium-Low":    {Title: "Questionable", Description: "Medium Business Value & Low Feasibility", Icon: IconWarning, Class: "medium-low"},
	"Low-High":      {Title: "Easy Wins", Description: "Low Business Value & High Feasibility", Icon: IconBalloon, Class: "medium-high"},
	"Low-Medium":    {Title: "Reconsider", Description: "Low Business Value & Medium Feasibility", Icon: IconMagnifier, Class: "medium-medium"},
	"Low-Low":       {Title: "Avoid", Description: "Low Business Value & Low Feasibility", Icon: IconCross, Class: "medium-low"},
}

var glyphs = map[string]string{
	IconTarget:    "🎯",
	IconRocket:    "🚀",
	IconMountain:  "⛰️",
	IconWrench:    "🔧",
	IconThinking:  "🤔",
	IconWarning:   "⚠️",
	IconBalloon:   "🎈",
	IconMagnifier: "🔍",
	IconCross:     "❌",
	IconClipboard: "📋",
}

// Describe returns the descriptor for key. Keys outside the canonical nine
// get a generic descriptor built from the raw axis values.
func Describe(key Key) Descriptor {
	if d, ok := descriptors[key.String()]; ok {
		return d
	}
	return Descriptor{
		Title:       "Other",
		Description: fmt.Sprintf("%s Business Value & %s Feasibility", key.BusinessValue, key.Feasibility),
		Icon:        IconClipboard,
		Class:       "medium-medium",
	}
}

// Glyph returns the emoji for an icon tag, or "" for unknown tags.
func Glyph(icon string) string {
	return glyphs[icon]
}
