package repository

import (
	"context"

	"github.com/maxviazov/board-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PostRepository declares persistence operations for board posts.
// Implementations return domain errors from errors.go, never driver codes.
type PostRepository interface {
	Create(ctx context.Context, p model.Post) (model.Post, error)
	GetByID(ctx context.Context, id int64) (model.Post, error)
	// List applies the filter, orders the matches and returns the window selected by p.
	// Total counts every match, not just the returned window.
	List(ctx context.Context, f PostFilter, p Page) (PageResult[model.Post], error)
}
