package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial client area size. Non-positive sizes are ignored.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 && height > 0 {
			w.width, w.height = width, height
		}
	}
}

// WithSizeLimits bounds the client area while resizing. The initial size is clamped
// into the limits. Limits that are non-positive or inverted are ignored.
//
// Parameters:
//   - minWidth, minHeight: smallest size in pixels
//   - maxWidth, maxHeight: largest size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		if minWidth <= 0 || minHeight <= 0 || maxWidth < minWidth || maxHeight < minHeight {
			return
		}
		w.minWidth, w.minHeight = minWidth, minHeight
		w.maxWidth, w.maxHeight = maxWidth, maxHeight
	}
}

// WithScrollScale sets the wheel amount produced by one scroll notch. Defaults to 100,
// the pixel delta most browsers report per notch.
//
// Parameters:
//   - scale: wheel units per notch
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithScrollScale(scale float64) WindowBuilderOption {
	return func(w *engineWindow) {
		if scale > 0 {
			w.scrollScale = scale
		}
	}
}
