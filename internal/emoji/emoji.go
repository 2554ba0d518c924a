// Package emoji maps commit types to gitmoji for the optional header
// decoration. Decoration is cosmetic and off by default.
package emoji

import "strings"

// table covers exactly the closed commit type set.
var table = map[string]string{
	"build":    "🏗️",
	"chore":    "🔧",
	"ci":       "🤖",
	"docs":     "📝",
	"feat":     "✨",
	"fix":      "🐛",
	"perf":     "⚡",
	"refactor": "♻️",
	"revert":   "🔙",
	"style":    "💄",
	"test":     "✅",
}

// ForType returns the emoji for a commit type, or "" when the type is
// not recognized.
func ForType(commitType string) string {
	return table[strings.ToLower(commitType)]
}

// DecorateMessage prepends the emoji matching commitType to the first
// line of a rendered commit message. Unknown types leave the message
// unchanged.
func DecorateMessage(message, commitType string) string {
	e := ForType(commitType)
	if e == "" {
		return message
	}
	return e + " " + message
}
