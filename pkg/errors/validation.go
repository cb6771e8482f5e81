package errors

import (
	"slices"
	"unicode"
)

// MaxLabelLength bounds segment, sub-segment and ring labels.
const MaxLabelLength = 128

// ValidateLabel validates a region label.
//
// Labels are matched verbatim during blip placement, so they must be
// non-empty, reasonably short and free of control characters.
func ValidateLabel(kind, label string) error {
	if label == "" {
		return New(ErrCodeInvalidInput, "%s label cannot be empty", kind)
	}

	if len([]rune(label)) > MaxLabelLength {
		return New(ErrCodeInvalidInput, "%s label too long (max %d characters)", kind, MaxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s label %q contains control characters", kind, label)
		}
	}

	return nil
}

// ValidateLabels validates every label and rejects duplicates.
func ValidateLabels(kind string, labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if err := ValidateLabel(kind, l); err != nil {
			return err
		}
		if _, dup := seen[l]; dup {
			return New(ErrCodeInvalidInput, "duplicate %s label %q", kind, l)
		}
		seen[l] = struct{}{}
	}
	return nil
}

// ValidateFormat checks that format is one of the supported names.
func ValidateFormat(format string, supported []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(supported, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %v)", format, supported)
	}
	return nil
}
