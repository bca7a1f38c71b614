// Package input tracks which logical keys are held between press and
// release events, and maps host key names onto those logical keys.
package input

import (
	"fmt"
	"strings"
)

// Key is a logical key recognised by the motion core.
type Key int

// Logical keys. The order is the order in which an update checks them.
const (
	MoveUp Key = iota
	MoveDown
	MoveLeft
	MoveRight
	RotateLeft
	RotateRight
	ResetRotation
	Quit

	keyCount
)

var keyNames = [keyCount]string{
	MoveUp:        "move_up",
	MoveDown:      "move_down",
	MoveLeft:      "move_left",
	MoveRight:     "move_right",
	RotateLeft:    "rotate_left",
	RotateRight:   "rotate_right",
	ResetRotation: "reset_rotation",
	Quit:          "quit",
}

// String returns the key's snake_case name.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("key(%d)", int(k))
	}
	return keyNames[k]
}

// AllKeys returns every logical key in check order.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Button is a host-neutral physical key name such as "W" or "ArrowUp".
// Hosts translate their own key codes to Buttons.
type Button string

// Physical keys used by the bindings.
const (
	ButtonW          Button = "W"
	ButtonA          Button = "A"
	ButtonS          Button = "S"
	ButtonD          Button = "D"
	ButtonQ          Button = "Q"
	ButtonE          Button = "E"
	ButtonR          Button = "R"
	ButtonM          Button = "M"
	ButtonArrowUp    Button = "ArrowUp"
	ButtonArrowDown  Button = "ArrowDown"
	ButtonArrowLeft  Button = "ArrowLeft"
	ButtonArrowRight Button = "ArrowRight"
	ButtonEscape     Button = "Escape"
)

// ButtonFromRune maps a printable character to its Button, ignoring case.
// The second result is false for characters that have no Button.
func ButtonFromRune(r rune) (Button, bool) {
	s := strings.ToUpper(string(r))
	switch b := Button(s); b {
	case ButtonW, ButtonA, ButtonS, ButtonD, ButtonQ, ButtonE, ButtonR, ButtonM:
		return b, true
	}
	return "", false
}
