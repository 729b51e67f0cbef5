// SPDX-License-Identifier: GPL-2.0-or-later

package scene

type PointerKind int

const (
	// PointerButton is a press or release of the drag button.
	PointerButton PointerKind = iota
	// PointerMove is a motion of the pointer.
	PointerMove
)

type PointerEvent struct {
	Kind    PointerKind
	X, Y    float32
	Pressed bool
}

// Input is the state of the controls for one frame.
type Input struct {
	// held keys
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Fast    bool

	// CycleEffect counts the effect key presses since the last frame.
	CycleEffect int

	// Pointer holds the pointer events since the last frame, oldest first.
	Pointer []PointerEvent
}
