package service

import "context"

// actionRecorder appends to the portal's action log. Implementations
// are fire-and-forget and never fail the calling operation.
type actionRecorder interface {
	Record(ctx context.Context, username, action string)
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, string, string) {}
