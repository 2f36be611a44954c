package domain

import (
	"fmt"
	"strings"
)

// Variant selects which segments take part in a run.
type Variant string

const (
	// VariantAxisAligned drops diagonal segments (part 1).
	VariantAxisAligned Variant = "axis"
	// VariantAll keeps every valid segment (part 2).
	VariantAll Variant = "all"
)

// ParseVariant accepts "1", "2", "axis" and "all", case-insensitive.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", string(VariantAxisAligned):
		return VariantAxisAligned, nil
	case "2", string(VariantAll):
		return VariantAll, nil
	default:
		return "", &OpError{
			Op:   "domain.parse_variant",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("unsupported part %q (expected 1|2|axis|all): %w", s, ErrInvalidConfig),
		}
	}
}

func (v Variant) IncludeDiagonals() bool {
	return v == VariantAll
}

// Part is the puzzle part number for the variant.
func (v Variant) Part() int {
	if v == VariantAll {
		return 2
	}
	return 1
}
