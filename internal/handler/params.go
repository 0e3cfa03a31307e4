package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/board-service/internal/service"
)

// queryInts reads integer query parameters. Missing optional parameters yield 0;
// malformed or missing required ones are collected as field errors.
type queryInts struct {
	c     *gin.Context
	ferrs []service.FieldError
}

func (q *queryInts) optional(name string) int {
	raw := strings.TrimSpace(q.c.Query(name))
	if raw == "" {
		return 0
	}
	return q.parse(name, raw)
}

// withDefault is optional with a fallback used only when the parameter is absent or blank.
func (q *queryInts) withDefault(name string, def int) int {
	raw, ok := q.c.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return def
	}
	return q.parse(name, strings.TrimSpace(raw))
}

func (q *queryInts) required(name string) int {
	raw := strings.TrimSpace(q.c.Query(name))
	if raw == "" {
		q.ferrs = append(q.ferrs, service.FieldError{Field: name, Message: "is required"})
		return 0
	}
	return q.parse(name, raw)
}

func (q *queryInts) parse(name, raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.ferrs = append(q.ferrs, service.FieldError{Field: name, Message: "must be an integer"})
		return 0
	}
	return n
}

func (q *queryInts) err() error { return service.InvalidInput(q.ferrs...) }
