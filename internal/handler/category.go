package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/menu-catalog-service/internal/service"
	"github.com/maxviazov/menu-catalog-service/pkg/response"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/categories")
	{
		g.GET("", h.list)
		g.GET("/:code", h.getByCode)
	}
}

func (h *CategoryHandler) list(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	writeList(c, categories, err)
}

func (h *CategoryHandler) getByCode(c *gin.Context) {
	code, err := pathCode(c, "category_code")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	category, err := h.svc.FindCategoryByCode(c.Request.Context(), code)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, category)
}

// writeList answers with the items, or an empty JSON array rather than null.
func writeList[T any](c *gin.Context, items []T, err error) {
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	response.WriteData(c, http.StatusOK, items)
}
