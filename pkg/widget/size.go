package widget

import "strings"

// Size is the tier governing default spacing and typography.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// Sizes lists the tiers from smallest to largest.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

// Resolve maps unknown or empty tiers to Medium. Size is user data, so a bad
// value degrades instead of failing.
func (s Size) Resolve() Size {
	switch Size(strings.ToLower(strings.TrimSpace(string(s)))) {
	case Small:
		return Small
	case Large:
		return Large
	default:
		return Medium
	}
}

// Pick returns the value matching the resolved tier.
func Pick[T any](s Size, small, medium, large T) T {
	switch s.Resolve() {
	case Small:
		return small
	case Large:
		return large
	default:
		return medium
	}
}

// Variant is the canonical appearance token. Buttons use Contained and
// Outlined; inputs use Outlined, Filled and Standard.
type Variant string

const (
	Contained Variant = "contained"
	Outlined  Variant = "outlined"
	Filled    Variant = "filled"
	Standard  Variant = "standard"
)

// ButtonVariant resolves the variant of a button-like widget. Anything other
// than outlined renders as contained.
func (v Variant) ButtonVariant() Variant {
	if Variant(strings.ToLower(string(v))) == Outlined {
		return Outlined
	}
	return Contained
}

// InputVariant resolves the variant of a text field, defaulting to outlined.
func (v Variant) InputVariant() Variant {
	switch Variant(strings.ToLower(string(v))) {
	case Filled:
		return Filled
	case Standard:
		return Standard
	default:
		return Outlined
	}
}
