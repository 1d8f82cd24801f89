package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateOptionText checks a single option label
func ValidateOptionText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyOption
	}
	if utf8.RuneCountInString(trimmed) > MaxOptionTextLength {
		return fmt.Errorf("%w: %d characters max", ErrOptionTextTooLong, MaxOptionTextLength)
	}
	return nil
}

// ValidateColor accepts an empty string (palette color) or #RRGGBB
func ValidateColor(color string) error {
	if color == "" || hexColorPattern.MatchString(color) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidColor, color)
}

// ValidateWeight checks an explicit option weight
func ValidateWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 || weight > MaxOptionWeight {
		return fmt.Errorf("%w: got %v, max %v", ErrInvalidWeight, weight, MaxOptionWeight)
	}
	return nil
}

// ValidateOptionEntries checks every entry and rejects case-insensitive
// duplicates. List size is checked by the caller since the bounds differ
// between storage and spinning.
func ValidateOptionEntries(opts []Option) error {
	seen := make(map[string]struct{}, len(opts))
	for i, o := range opts {
		if err := ValidateOptionText(o.Text); err != nil {
			return fmt.Errorf("option %d: %w", i+1, err)
		}
		key := OptionKey(o.Text)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateOption, strings.TrimSpace(o.Text))
		}
		seen[key] = struct{}{}
	}
	return nil
}

// ValidateSpinnable checks that a list can be spun
func ValidateSpinnable(opts []Option) error {
	if len(opts) < MinOptions {
		return ErrInsufficientOptions
	}
	if len(opts) > MaxOptions {
		return fmt.Errorf("%w: %d given, maximum %d", ErrTooManyOptions, len(opts), MaxOptions)
	}
	return ValidateOptionEntries(opts)
}
