package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maxviazov/board-service/internal/route"
	"github.com/maxviazov/board-service/internal/service"
)

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, repo Pinger, boardSvc service.BoardService, routes *route.Table) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPaginationHandler().Register(api)
		NewPostHandler(boardSvc).Register(api)
		NewRouteHandler(routes).Register(api)
	}
}
