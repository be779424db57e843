package generator

import (
	"errors"

	"github.com/lixenwraith/roadgen/segment"
)

var (
	// ErrConfiguration is returned before generation when the catalog or settings are inconsistent
	ErrConfiguration = errors.New("generator configuration error")

	// ErrIndex marks a catalog index outside its partition, a programming error surfaced by panic
	ErrIndex = errors.New("catalog index out of partition")

	// ErrGeometry halts generation when a piece cannot be laid out
	ErrGeometry = segment.ErrGeometry
)
