package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/board-service/internal/route"
	"github.com/maxviazov/board-service/pkg/response"
)

type RouteHandler struct {
	table *route.Table
}

func NewRouteHandler(table *route.Table) *RouteHandler {
	if table == nil {
		table = route.DefaultTable()
	}
	return &RouteHandler{table: table}
}

func (h *RouteHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/routes")
	{
		g.GET("", h.list)
		g.GET("/resolve", h.resolve)
		g.GET("/initial", h.initial)
		g.GET("/navigate", h.navigate)
	}
}

func (h *RouteHandler) list(c *gin.Context) {
	response.WriteData(c, http.StatusOK, gin.H{
		"default": h.table.Default(),
		"routes":  h.table.Routes(),
	})
}

// resolve maps ?fragment=#board to a route; unknown fragments are 404.
func (h *RouteHandler) resolve(c *gin.Context) {
	r, ok := h.table.Resolve(c.Query("fragment"))
	if !ok {
		response.WriteError(c, route.ErrUnknownRoute)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"route": r, "fragment": route.Fragment(r)})
}

// initial picks the page for a fresh load: ?fragment= when known, the default otherwise.
func (h *RouteHandler) initial(c *gin.Context) {
	r := h.table.Initial(c.Query("fragment"))
	response.WriteData(c, http.StatusOK, gin.H{"route": r, "fragment": route.Fragment(r)})
}

// navigate moves from ?current= to ?target=. Unknown targets are 404 with unknown_route.
func (h *RouteHandler) navigate(c *gin.Context) {
	r, err := h.table.Navigate(c.Query("current"), c.Query("target"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"route": r, "fragment": route.Fragment(r)})
}
