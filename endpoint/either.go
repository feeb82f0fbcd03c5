package endpoint

import (
	"context"

	"github.com/felixgeelhaar/pipeline-go/protocol"
)

// Either is a closed two-variant union of endpoints. It gives two different
// statically-typed endpoints a single common type, so code that must return
// one of two endpoint shapes (conditional composition, most prominently)
// still returns one concrete type.
//
// The active variant is fixed by the constructor and never changes. Call
// forwards to the active variant unchanged; the wrapper adds no behavior of
// its own.
type Either[A, B Endpoint] struct {
	left    A
	right   B
	isRight bool
}

// Left creates an Either holding the left variant.
func Left[A, B Endpoint](ep A) *Either[A, B] {
	return &Either[A, B]{left: ep}
}

// Right creates an Either holding the right variant.
func Right[A, B Endpoint](ep B) *Either[A, B] {
	return &Either[A, B]{right: ep, isRight: true}
}

// Call implements Endpoint by dispatching to the active variant.
func (e *Either[A, B]) Call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	if e.isRight {
		return e.right.Call(ctx, req)
	}
	return e.left.Call(ctx, req)
}
