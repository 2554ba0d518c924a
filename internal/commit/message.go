// Package commit models Conventional Commit messages and renders them
// into the canonical header / body / footer layout.
package commit

import (
	"fmt"
	"strings"
)

// TypeInfo describes one commit type for the type chooser.
type TypeInfo struct {
	Name string
	Desc string
}

// Types is the closed set of valid commit types, in display order.
var Types = []TypeInfo{
	{Name: "build", Desc: "Changes that affect the build system or external dependencies"},
	{Name: "chore", Desc: "Other changes that don't modify src or test files"},
	{Name: "ci", Desc: "Changes to CI configuration files and scripts"},
	{Name: "docs", Desc: "Documentation only changes"},
	{Name: "feat", Desc: "A new feature"},
	{Name: "fix", Desc: "A bug fix"},
	{Name: "perf", Desc: "A code change that improves performance"},
	{Name: "refactor", Desc: "A code change that neither fixes a bug nor adds a feature"},
	{Name: "revert", Desc: "Reverts a previous commit"},
	{Name: "style", Desc: "Changes that do not affect the meaning of the code"},
	{Name: "test", Desc: "Adding missing tests or correcting existing tests"},
}

// IsValidType reports whether name is one of the closed commit types.
func IsValidType(name string) bool {
	for _, t := range Types {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Message holds the answers collected by the wizard. It is built once
// per run and rendered by Compose.
type Message struct {
	Type            string
	Scope           string
	Description     string
	Breaking        bool
	BreakingDetails string
	Body            string
	Refs            []string
	Closes          []string
}

// Compose renders the message into up to three blank-line-separated
// sections: header, body, and footer block. The footer lines keep a
// fixed order because tooling parses them: BREAKING CHANGE first, then
// Refs, then one Closes line per issue.
func (m Message) Compose() string {
	var b strings.Builder

	b.WriteString(m.Type)
	if scope := strings.TrimSpace(m.Scope); scope != "" {
		fmt.Fprintf(&b, "(%s)", scope)
	}
	if m.Breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(strings.TrimSpace(m.Description))

	if body := strings.TrimSpace(m.Body); body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	var footer []string
	if m.Breaking {
		if details := strings.TrimSpace(m.BreakingDetails); details != "" {
			footer = append(footer, "BREAKING CHANGE: "+details)
		}
	}
	if len(m.Refs) > 0 {
		footer = append(footer, "Refs: "+strings.Join(m.Refs, ", "))
	}
	for _, issue := range m.Closes {
		footer = append(footer, "Closes "+issue)
	}
	if len(footer) > 0 {
		b.WriteString("\n\n")
		b.WriteString(strings.Join(footer, "\n"))
	}

	return b.String()
}

// SplitList parses a comma-separated answer into trimmed, non-empty tokens.
func SplitList(raw string) []string {
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// NormalizeIssues prefixes each token with '#' unless it already has one.
func NormalizeIssues(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !strings.HasPrefix(token, "#") {
			token = "#" + token
		}
		normalized = append(normalized, token)
	}
	return normalized
}
