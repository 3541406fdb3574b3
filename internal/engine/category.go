package engine

import "strings"

// NormalizeCategory maps free-form category names onto the standard set.
// Unknown values fall back to "general".
func NormalizeCategory(category string) string {
	lower := strings.ToLower(category)

	if strings.Contains(lower, "knowledge") {
		return "learning"
	}
	if strings.Contains(lower, "physical") {
		return "fitness"
	}

	switch lower {
	case "fitness", "learning", "mindfulness", "social", "creativity":
		return lower
	default:
		return "general"
	}
}

// restoreCategory is the stricter mapping used when rebuilding a task from
// a completion record: legacy categories get a best-fit standard bucket and
// the fallback is mindfulness rather than general.
func restoreCategory(category string) string {
	lower := strings.ToLower(category)

	switch lower {
	case "mindfulness", "learning", "creativity", "social", "fitness":
		return lower
	case "knowledge", "work":
		return "learning"
	case "physical", "health":
		return "fitness"
	case "personal":
		return "mindfulness"
	case "family":
		return "social"
	default:
		return "mindfulness"
	}
}

// CategoryColor returns the display color for a standard category.
func CategoryColor(category string) string {
	switch NormalizeCategory(category) {
	case "fitness":
		return "#e74c3c"
	case "learning":
		return "#3498db"
	case "mindfulness":
		return "#9b59b6"
	case "social":
		return "#2ecc71"
	case "creativity":
		return "#f39c12"
	default:
		return "#7f8c8d"
	}
}
