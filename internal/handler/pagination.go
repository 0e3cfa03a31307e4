package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/board-service/internal/pagination"
	"github.com/maxviazov/board-service/internal/service"
	"github.com/maxviazov/board-service/pkg/response"
)

// PaginationHandler exposes the pure pagination functions for clients that render their own listings.
type PaginationHandler struct{}

func NewPaginationHandler() *PaginationHandler { return &PaginationHandler{} }

func (h *PaginationHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/pagination")
	{
		g.GET("/window", h.window)
		g.GET("/navigate", h.navigate)
	}
}

type windowResponse struct {
	Total   int               `json:"total"`
	Current int               `json:"current"`
	Items   []pagination.Item `json:"items"`
}

func (h *PaginationHandler) window(c *gin.Context) {
	q := queryInts{c: c}
	total := q.required("total")
	current := q.withDefault("current", 1)
	if total < 1 && len(q.ferrs) == 0 {
		q.ferrs = append(q.ferrs, service.FieldError{Field: "total", Message: "must be >= 1"})
	}
	if err := q.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, windowResponse{
		Total:   total,
		Current: current,
		Items:   pagination.ComputeWindow(total, current),
	})
}

// navigate answers 200 for both outcomes; a rejection is a normal result, not an error.
func (h *PaginationHandler) navigate(c *gin.Context) {
	q := queryInts{c: c}
	target := q.required("target")
	total := q.required("total")
	current := q.required("current")
	if err := q.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, pagination.RequestPageChange(target, total, current))
}
