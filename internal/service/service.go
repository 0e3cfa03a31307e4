// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/board-service/internal/model"
	"github.com/maxviazov/board-service/internal/pagination"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrPageChangeRejected reports a navigation intent the pagination guard refused:
// out of range or to the page already shown. Callers keep their current state.
var ErrPageChangeRejected = errors.New("page change rejected")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// InvalidInput exposes newInvalidInput to transport code that validates its own parameters.
func InvalidInput(fe ...FieldError) error { return newInvalidInput(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// ListQuery is a board listing request as the client states it. Zero values pick defaults.
type ListQuery struct {
	Keyword  string
	Status   string
	Tab      string
	Sort     string
	Page     int
	PageSize int
}

// BoardPage is one rendered page of the board: the posts plus everything a pagination control needs.
type BoardPage struct {
	Items      []model.Post      `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	Window     []pagination.Item `json:"window"`
	HasPrev    bool              `json:"has_prev"`
	HasNext    bool              `json:"has_next"`
}

// BoardService defines board-oriented use cases.
type BoardService interface {
	ListPosts(ctx context.Context, q ListQuery) (BoardPage, error)
	// Navigate moves from q.Page to target under q's filter, or returns ErrPageChangeRejected.
	Navigate(ctx context.Context, q ListQuery, target int) (BoardPage, error)
	GetPost(ctx context.Context, id int64) (model.Post, error)
	CreatePost(ctx context.Context, title, author, status string) (model.Post, error)
}
