package handlers

// Icon tags are stored on records as opaque strings; rendering them is
// this layer's job. Unknown tags fall back to a generic package symbol so
// imported or hand-edited data never breaks a listing.
var iconEmoji = map[string]string{
	// categories
	"home":  "🏠",
	"cart":  "🛒",
	"party": "🎉",
	// pantry staples
	"egg":     "🥚",
	"pasta":   "🍝",
	"milk":    "🥛",
	"rice":    "🍚",
	"bread":   "🍞",
	"chicken": "🍗",
	"tomato":  "🍅",
	"onion":   "🧅",
	// shopping lists
	"soap":    "🧴",
	"package": "📦",
	// reminder categories
	"id-card":    "🪪",
	"bank":       "🏦",
	"house":      "🏡",
	"graduation": "🎓",
	"hospital":   "🏥",
	"pin":        "📌",
}

const fallbackEmoji = "📦"

// emoji resolves an icon tag to a renderable symbol.
func emoji(icon string) string {
	if e, ok := iconEmoji[icon]; ok {
		return e
	}
	return fallbackEmoji
}

func stockEmoji(level string) string {
	switch level {
	case "empty":
		return "🔴"
	case "low":
		return "🟡"
	default:
		return "🟢"
	}
}
