package records

// Key identifies a speedrun category on the backend, e.g. "any" or "100".
type Key string

// DefaultKey is selected when nothing else has been configured.
const DefaultKey Key = "any"

// GenericDescription is shown for categories without a fixed description.
const GenericDescription = "This category has specific rules set by the speedrunning community."

// KnownKeys is the fixed selector order.
var KnownKeys = []Key{
	"any",
	"all_chapters",
	"glitchless",
	"no_oob",
	"100",
	"glitchless_100",
	"no_major_glitches",
	"insane",
}

var labels = map[Key]string{
	"any":               "Any%",
	"all_chapters":      "All Chapters",
	"glitchless":        "Glitchless",
	"no_oob":            "No OoB",
	"100":               "100%",
	"glitchless_100":    "Glitchless 100%",
	"no_major_glitches": "NMG",
	"insane":            "Insane",
}

var descriptions = map[Key]string{
	"any":               "Any% is a speedrunning category where the goal is to complete the game as quickly as possible without restrictions. This means using any glitches, exploits or shortcuts that are allowed by the community rules.",
	"all_chapters":      "All Chapters requires the player to complete all main chapters of the game in sequence, without skipping any major sections.",
	"glitchless":        "Glitchless runs prohibit the use of any exploits, glitches, or unintended mechanics. The game must be completed as the developers intended.",
	"no_oob":            "No OoB (Out of Bounds) runs allow most glitches but prohibit going outside the intended playable area of the game.",
	"100":               "100% requires completing all objectives, collecting all documents and recordings, and experiencing all content in the game.",
	"glitchless_100":    "Glitchless 100% combines the requirements of both Glitchless and 100% categories - collecting everything without using any glitches.",
	"no_major_glitches": "No Major Glitches allows minor exploits but prohibits significant glitches that dramatically change the intended gameplay.",
	"insane":            "Insane requires completing the game on the hardest difficulty setting (Insane mode), where death means starting over from the beginning.",
}

// Describe returns the fixed description for k, or GenericDescription.
func Describe(k Key) string {
	if d, ok := descriptions[k]; ok {
		return d
	}
	return GenericDescription
}

// Label is the short selector caption for k. Unknown keys are shown as-is.
func Label(k Key) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

// IsKnown reports whether k has a selector control.
func IsKnown(k Key) bool {
	_, ok := descriptions[k]
	return ok
}

// IndexOf returns k's position in KnownKeys, or -1.
func IndexOf(k Key) int {
	for i, known := range KnownKeys {
		if known == k {
			return i
		}
	}
	return -1
}
