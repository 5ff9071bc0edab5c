package common

// Virtual key codes used by the camera demo bindings.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyA     = 65  // A key (ASCII): toggle auto-rotate
	KeyI     = 73  // I key (ASCII): print camera info
	KeyR     = 82  // R key (ASCII): reset to default framing
	KeySpace = 32  // Spacebar (ASCII): cancel transition
	KeyEsc   = 256 // Escape key (GLFW)

	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
	Key4 = 52 // 4 key (ASCII)
	Key5 = 53 // 5 key (ASCII)
	Key6 = 54 // 6 key (ASCII)
	Key7 = 55 // 7 key (ASCII)
	Key8 = 56 // 8 key (ASCII)
	Key9 = 57 // 9 key (ASCII)
)

// Modifier keys
const (
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)

// DigitIndex maps the keys 1-9 to a zero-based index.
//
// Parameters:
//   - keyCode: the virtual key code
//
// Returns:
//   - int: 0 for Key1 through 8 for Key9
//   - bool: false if keyCode is not a digit key 1-9
func DigitIndex(keyCode uint32) (int, bool) {
	if keyCode < Key1 || keyCode > Key9 {
		return 0, false
	}
	return int(keyCode - Key1), true
}
