package tessella

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by Pick and Shuffle when called on an empty
// collection. Callers must handle it; there is no silent default element.
var ErrEmptyInput = errors.New("tessella: empty input")

// UnknownGroupError indicates a symmetry-group name outside the 17
// wallpaper groups. Callers recover by retaining their last valid group.
type UnknownGroupError struct {
	Name string
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("tessella: unknown wallpaper group %q", e.Name)
}

// MissingSurfaceError indicates that a frame was requested without a
// drawing surface. The driver logs it and skips the frame; the animation
// loop keeps running so it recovers once a surface is attached again.
type MissingSurfaceError struct {
	Op string
}

func (e *MissingSurfaceError) Error() string {
	return fmt.Sprintf("tessella: %s: no drawing surface", e.Op)
}
