package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var strokeSeq uint64

func nextSeq() uint64 {
	return atomic.AddUint64(&strokeSeq, 1)
}

// newStrokeID returns the identifier of a fresh stroke snapshot.
func newStrokeID() string {
	return uuid.NewString()
}
