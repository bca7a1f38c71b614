package input

import (
	"reflect"
	"testing"
)

func TestHeldSet_PressRelease(t *testing.T) {
	var h HeldSet

	if h.Len() != 0 {
		t.Fatalf("zero HeldSet has %d keys", h.Len())
	}

	h.Press(MoveUp)
	h.Press(MoveUp)
	h.Press(Quit)

	if !h.Held(MoveUp) || !h.Held(Quit) {
		t.Errorf("expected MoveUp and Quit held, got %v", h.Keys())
	}
	if h.Len() != 2 {
		t.Errorf("Len() after repeated press = %d, want 2", h.Len())
	}

	h.Release(MoveUp)
	h.Release(MoveUp)
	h.Release(RotateLeft)

	if h.Held(MoveUp) {
		t.Error("MoveUp still held after release")
	}
	if !reflect.DeepEqual(h.Keys(), []Key{Quit}) {
		t.Errorf("Keys() = %v, want [quit]", h.Keys())
	}

	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() after Clear = %d", h.Len())
	}
}

func TestHeldSet_OutOfRangeKeysIgnored(t *testing.T) {
	var h HeldSet
	h.Press(Key(-1))
	h.Press(keyCount)
	if h.Len() != 0 {
		t.Errorf("out of range keys were stored: %v", h.Keys())
	}
	if h.Held(Key(42)) {
		t.Error("Held() reported an unknown key")
	}
}

func TestHeldSet_KeysInCheckOrder(t *testing.T) {
	var h HeldSet
	h.Press(Quit)
	h.Press(RotateRight)
	h.Press(MoveDown)

	want := []Key{MoveDown, RotateRight, Quit}
	if got := h.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestKey_String(t *testing.T) {
	if MoveLeft.String() != "move_left" {
		t.Errorf("MoveLeft.String() = %q", MoveLeft.String())
	}
	if Key(99).String() != "key(99)" {
		t.Errorf("Key(99).String() = %q", Key(99).String())
	}
	if len(AllKeys()) != 8 {
		t.Errorf("AllKeys() has %d keys, want 8", len(AllKeys()))
	}
}

func TestBindingsFor(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		button  Button
		key     Key
		bound   bool
	}{
		{"clamped_w_moves_up", VariantClamped, ButtonW, MoveUp, true},
		{"clamped_d_moves_right", VariantClamped, ButtonD, MoveRight, true},
		{"clamped_arrows_unbound", VariantClamped, ButtonArrowUp, 0, false},
		{"clamped_r_resets", VariantClamped, ButtonR, ResetRotation, true},
		{"basic_arrow_down", VariantBasic, ButtonArrowDown, MoveDown, true},
		{"basic_no_rotation", VariantBasic, ButtonQ, 0, false},
		{"basic_quit", VariantBasic, ButtonM, Quit, true},
		{"rotate_e_rotates_right", VariantRotate, ButtonE, RotateRight, true},
		{"rotate_wasd_unbound", VariantRotate, ButtonS, 0, false},
		{"escape_never_bound", VariantClamped, ButtonEscape, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := BindingsFor(tt.variant).Lookup(tt.button)
			if ok != tt.bound {
				t.Fatalf("Lookup(%s) bound = %v, want %v", tt.button, ok, tt.bound)
			}
			if ok && key != tt.key {
				t.Errorf("Lookup(%s) = %v, want %v", tt.button, key, tt.key)
			}
		})
	}
}

func TestBindings_ButtonsSorted(t *testing.T) {
	got := BindingsFor(VariantBasic).Buttons()
	want := []Button{ButtonArrowDown, ButtonArrowLeft, ButtonArrowRight, ButtonArrowUp, ButtonM}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Buttons() = %v, want %v", got, want)
	}
}

func TestParseVariant(t *testing.T) {
	for _, name := range []string{"basic", "rotate", "clamped"} {
		if _, err := ParseVariant(name); err != nil {
			t.Errorf("ParseVariant(%q) failed: %v", name, err)
		}
	}
	if _, err := ParseVariant("spinning"); err == nil {
		t.Error("ParseVariant accepted an unknown variant")
	}
	if !VariantClamped.Clamps() || VariantRotate.Clamps() {
		t.Error("only the clamped variant should clamp")
	}
	if VariantBasic.Rotates() || !VariantRotate.Rotates() {
		t.Error("basic must not rotate, rotate must")
	}
}

func TestButtonFromRune(t *testing.T) {
	tests := []struct {
		r     rune
		want  Button
		found bool
	}{
		{'w', ButtonW, true},
		{'W', ButtonW, true},
		{'m', ButtonM, true},
		{'x', "", false},
		{'1', "", false},
	}
	for _, tt := range tests {
		got, ok := ButtonFromRune(tt.r)
		if ok != tt.found || got != tt.want {
			t.Errorf("ButtonFromRune(%q) = (%q, %v), want (%q, %v)", tt.r, got, ok, tt.want, tt.found)
		}
	}
}
