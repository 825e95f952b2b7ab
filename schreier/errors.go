package schreier

import "errors"

// ErrNotInOrbit indicates a transversal was requested for a point outside
// the structure's recorded orbit.
var ErrNotInOrbit = errors.New("schreier: point not in orbit")
