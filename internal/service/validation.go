package service

import (
	"strings"

	"github.com/maxviazov/board-service/internal/model"
	"github.com/maxviazov/board-service/internal/repository"
)

const (
	maxKeywordLen = 100
	minTitleLen   = 2
	maxTitleLen   = 120
	maxAuthorLen  = 50
)

// normalizeQuery trims and lower-cases the enum fields, applies defaults and collects field errors.
func normalizeQuery(q ListQuery, defaultSize, maxSize int) (repository.PostFilter, ListQuery, []FieldError) {
	var ferrs []FieldError

	f := repository.PostFilter{
		Keyword: strings.TrimSpace(q.Keyword),
		Status:  normalizeEnum(q.Status, repository.FilterAll),
		Tab:     normalizeEnum(q.Tab, repository.FilterAll),
		Sort:    normalizeEnum(q.Sort, repository.SortLatest),
	}
	if len([]rune(f.Keyword)) > maxKeywordLen {
		ferrs = append(ferrs, FieldError{Field: "keyword", Message: "must be at most 100 characters"})
	}
	if f.Status != repository.FilterAll && !model.PostStatus(f.Status).Valid() {
		ferrs = append(ferrs, FieldError{Field: "status", Message: "must be one of all|ready|progress|done"})
	}
	if !isValidTab(f.Tab) {
		ferrs = append(ferrs, FieldError{Field: "tab", Message: "must be one of all|progress|done"})
	}
	if !isValidSort(f.Sort) {
		ferrs = append(ferrs, FieldError{Field: "sort", Message: "must be one of latest|oldest|views|id"})
	}

	out := q
	out.Keyword, out.Status, out.Tab, out.Sort = f.Keyword, f.Status, f.Tab, f.Sort
	switch {
	case q.PageSize == 0:
		out.PageSize = defaultSize
	case q.PageSize < 0 || q.PageSize > maxSize:
		ferrs = append(ferrs, FieldError{Field: "page_size", Message: "must be between 1 and max page size"})
	}
	if out.Page < 1 {
		out.Page = 1
	}
	return f, out, ferrs
}

func normalizeEnum(v, def string) string {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return def
	}
	return s
}

func isValidTab(tab string) bool {
	switch tab {
	case repository.FilterAll, repository.TabProgress, repository.TabDone:
		return true
	default:
		return false
	}
}

func isValidSort(sort string) bool {
	switch sort {
	case repository.SortLatest, repository.SortOldest, repository.SortViews, repository.SortID:
		return true
	default:
		return false
	}
}

func validatePost(title, author, status string) []FieldError {
	var ferrs []FieldError
	if title == "" {
		ferrs = append(ferrs, FieldError{Field: "title", Message: "must not be empty"})
	} else if ln := len([]rune(title)); ln < minTitleLen || ln > maxTitleLen {
		ferrs = append(ferrs, FieldError{Field: "title", Message: "length must be between 2 and 120"})
	}
	if author == "" {
		ferrs = append(ferrs, FieldError{Field: "author", Message: "must not be empty"})
	} else if len([]rune(author)) > maxAuthorLen {
		ferrs = append(ferrs, FieldError{Field: "author", Message: "must be at most 50 characters"})
	}
	if !model.PostStatus(status).Valid() {
		ferrs = append(ferrs, FieldError{Field: "status", Message: "must be one of ready|progress|done"})
	}
	return ferrs
}
