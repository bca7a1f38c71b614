package input

import (
	"fmt"
	"sort"
)

// Variant selects one of the three iterations of the demo.
type Variant string

const (
	// VariantBasic moves with the arrow keys and never clamps.
	VariantBasic Variant = "basic"
	// VariantRotate adds rotation to VariantBasic.
	VariantRotate Variant = "rotate"
	// VariantClamped moves with WASD, rotates, and keeps the triangle inside the window.
	VariantClamped Variant = "clamped"
)

// ParseVariant validates a variant name.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantBasic, VariantRotate, VariantClamped:
		return v, nil
	}
	return "", fmt.Errorf("unknown variant %q (want basic, rotate or clamped)", s)
}

// Rotates reports whether the variant responds to the rotation keys.
func (v Variant) Rotates() bool {
	return v == VariantRotate || v == VariantClamped
}

// Clamps reports whether the variant keeps the entity inside the bounds.
func (v Variant) Clamps() bool {
	return v == VariantClamped
}

// Bindings maps physical buttons to logical keys.
type Bindings map[Button]Key

// BindingsFor returns the key map of a variant.
func BindingsFor(v Variant) Bindings {
	b := Bindings{ButtonM: Quit}

	if v == VariantClamped {
		b[ButtonW] = MoveUp
		b[ButtonS] = MoveDown
		b[ButtonA] = MoveLeft
		b[ButtonD] = MoveRight
	} else {
		b[ButtonArrowUp] = MoveUp
		b[ButtonArrowDown] = MoveDown
		b[ButtonArrowLeft] = MoveLeft
		b[ButtonArrowRight] = MoveRight
	}

	if v.Rotates() {
		b[ButtonQ] = RotateLeft
		b[ButtonE] = RotateRight
		b[ButtonR] = ResetRotation
	}
	return b
}

// Lookup returns the logical key bound to button.
func (b Bindings) Lookup(button Button) (Key, bool) {
	k, ok := b[button]
	return k, ok
}

// Buttons returns the bound buttons sorted by name, so hosts register them
// in a stable order.
func (b Bindings) Buttons() []Button {
	out := make([]Button, 0, len(b))
	for btn := range b {
		out = append(out, btn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
