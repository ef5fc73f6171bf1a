package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maxviazov/menu-catalog-service/internal/service"
)

// Services bundles the use cases the API exposes.
type Services struct {
	Menus      service.MenuService
	Categories service.CategoryService
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, pinger Pinger, svc Services, limits PageLimits) {
	h := NewHealthHandler(pinger)

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
		NewMenuHandler(svc.Menus, limits).Register(api)
		NewCategoryHandler(svc.Categories).Register(api)
	}
}
