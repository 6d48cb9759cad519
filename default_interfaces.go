package framecam

import ebimath "github.com/edwinsyarief/ebi-math"

// The rendering side of the camera. Apply receives the final pose once
// per tick and returns the camera position it actually resolved, which
// may differ if the backend clamps or snaps the transform.
type Backend interface {
	Apply(pose Pose) ebimath.Vector
}

// Fallback used when no backend is given. Resolves the pose as is.
var defaultBackend Backend = passthroughBackend{}

type passthroughBackend struct{}

func (passthroughBackend) Apply(pose Pose) ebimath.Vector {
	return pose.Position
}
