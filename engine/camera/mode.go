package camera

// Built-in shot identifiers.
const (
	ModeDefault = "default"
	ModeCloseup = "closeup"
	ModeFull    = "full"
	ModeSide    = "side"
	ModeLow     = "low"
)

// Mode is a named camera shot: the pose to frame and how long the animated
// switch into it takes.
type Mode struct {
	// ID is the identifier used to select the mode (e.g. "closeup").
	ID string
	// DisplayName is the label shown in mode pickers.
	DisplayName string
	// Pose is the framing reached when the mode is selected.
	Pose Pose
	// TransitionDuration is the animated switch duration in seconds. Must be positive.
	TransitionDuration float64
}

// DefaultModes returns the built-in shots in display order.
//
// Returns:
//   - []Mode: default, closeup, full, side and low framings
func DefaultModes() []Mode {
	return []Mode{
		{
			ID:                 ModeDefault,
			DisplayName:        "Default",
			Pose:               NewPose(0, 1.5, 5, 0, 1, 0, 60),
			TransitionDuration: 1.0,
		},
		{
			ID:                 ModeCloseup,
			DisplayName:        "Close-up",
			Pose:               NewPose(0, 1.2, 2, 0, 1.2, 0, 45),
			TransitionDuration: 0.8,
		},
		{
			ID:                 ModeFull,
			DisplayName:        "Full Body",
			Pose:               NewPose(0, 1, 7, 0, 0.9, 0, 50),
			TransitionDuration: 1.0,
		},
		{
			ID:                 ModeSide,
			DisplayName:        "Side",
			Pose:               NewPose(4, 1.3, 0, 0, 1, 0, 55),
			TransitionDuration: 1.0,
		},
		{
			ID:                 ModeLow,
			DisplayName:        "Low Angle",
			Pose:               NewPose(0, 0.3, 3.5, 0, 1.1, 0, 60),
			TransitionDuration: 1.2,
		},
	}
}
