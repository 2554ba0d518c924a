package commit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// descriptionSoftLimit is the advisory length limit for the description.
// With strict mode on it becomes a hard validation failure.
const descriptionSoftLimit = 72

// ValidateDescription enforces the non-empty requirement. When strict is
// set, the style advisories become blocking as well.
func ValidateDescription(desc string, strict bool) error {
	if strings.TrimSpace(desc) == "" {
		return errors.New("description is required")
	}
	if strict {
		if warnings := StyleWarnings(desc); len(warnings) > 0 {
			return errors.New(warnings[0])
		}
	}
	return nil
}

// ValidateRequired rejects blank answers for a hard-required prompt.
func ValidateRequired(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// StyleWarnings returns the non-blocking style advisories for a
// description: length over the soft limit and a trailing period.
func StyleWarnings(desc string) []string {
	var warnings []string

	trimmed := strings.TrimSpace(desc)
	if n := utf8.RuneCountInString(trimmed); n > descriptionSoftLimit {
		warnings = append(warnings,
			fmt.Sprintf("description is %d characters; keep it under %d", n, descriptionSoftLimit))
	}
	if strings.HasSuffix(trimmed, ".") {
		warnings = append(warnings, "description should not end with a period")
	}

	return warnings
}
