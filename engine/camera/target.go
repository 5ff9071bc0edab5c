package camera

// CameraTarget is the renderable camera the controller drives. The controller never
// constructs or frees it; it is the only writer and writes a full pose every frame.
type CameraTarget interface {
	// SetPosition moves the camera.
	//
	// Parameters:
	//   - x, y, z: world-space position
	SetPosition(x, y, z float64)

	// SetLookAt points the camera at a world-space point.
	//
	// Parameters:
	//   - x, y, z: world-space look-at point
	SetLookAt(x, y, z float64)

	// SetFieldOfView sets the vertical field of view.
	//
	// Parameters:
	//   - degrees: field of view in degrees
	SetFieldOfView(degrees float64)
}
