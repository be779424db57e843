package segment

import "errors"

// ErrGeometry marks a placement whose rotation or type has no anchor layout
var ErrGeometry = errors.New("segment geometry error")
