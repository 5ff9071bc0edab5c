package stage

import "github.com/go-gl/mathgl/mgl32"

// StageOption is a functional option for configuring a Stage.
type StageOption func(*Stage)

// WithGrid sets the ground grid size.
//
// Parameters:
//   - halfExtent: distance from the center to each edge; must be positive
//   - divisions: cells per side; must be positive
//
// Returns:
//   - StageOption: option function to apply
func WithGrid(halfExtent float32, divisions int) StageOption {
	return func(s *Stage) {
		if halfExtent > 0 && divisions > 0 {
			s.gridHalfExtent = halfExtent
			s.gridDivisions = divisions
		}
	}
}

// WithAvatarBounds sets the sphere drawn in place of the avatar.
//
// Parameters:
//   - center: sphere center in world space
//   - radius: sphere radius; must be positive
//
// Returns:
//   - StageOption: option function to apply
func WithAvatarBounds(center mgl32.Vec3, radius float32) StageOption {
	return func(s *Stage) {
		if radius > 0 {
			s.avatarCenter = center
			s.avatarRadius = radius
		}
	}
}

// WithColors sets the grid, axis and avatar line colors.
//
// Parameters:
//   - grid: grid line color
//   - axis: color of the grid lines through the origin
//   - avatar: avatar bounds color
//
// Returns:
//   - StageOption: option function to apply
func WithColors(grid, axis, avatar mgl32.Vec3) StageOption {
	return func(s *Stage) {
		s.gridColor = grid
		s.axisColor = axis
		s.avatarColor = avatar
	}
}
