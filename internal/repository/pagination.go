package repository

import (
	"strings"

	"github.com/maxviazov/board-service/internal/model"
)

// Page represents a simple limit/offset window for listing operations.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items and the total count matching the query.
// The total lets callers compute page counts without an extra round trip.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// Filter and sort vocabulary shared by every PostRepository implementation.
const (
	FilterAll = "all"

	TabProgress = "progress"
	TabDone     = "done"

	SortLatest = "latest"
	SortOldest = "oldest"
	SortViews  = "views"
	SortID     = "id"
)

// PostFilter narrows and orders a post listing. Empty fields mean "all" and SortLatest.
type PostFilter struct {
	Keyword string
	Status  string
	Tab     string
	Sort    string
}

// Matches reports whether p passes the keyword, status and tab filters.
// Keyword matching is a case-sensitive substring test against title or author.
func (f PostFilter) Matches(p model.Post) bool {
	if f.Keyword != "" && !strings.Contains(p.Title, f.Keyword) && !strings.Contains(p.Author, f.Keyword) {
		return false
	}
	if f.Status != "" && f.Status != FilterAll && string(p.Status) != f.Status {
		return false
	}
	switch f.Tab {
	case TabProgress:
		return p.Status == model.StatusProgress
	case TabDone:
		return p.Status == model.StatusDone
	default:
		return true
	}
}

// Less orders a before b according to f.Sort. Ties fall back to id descending so listings are stable.
func (f PostFilter) Less(a, b model.Post) bool {
	switch f.Sort {
	case SortOldest:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	case SortViews:
		if a.ViewCount != b.ViewCount {
			return a.ViewCount > b.ViewCount
		}
	case SortID:
		return a.ID < b.ID
	default:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
	}
	return a.ID > b.ID
}
