package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/service"
	"github.com/maxviazov/menu-catalog-service/pkg/response"
)

// PageLimits bounds the size query parameter of paged listings.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

type MenuHandler struct {
	svc    service.MenuService
	limits PageLimits
}

func NewMenuHandler(svc service.MenuService, limits PageLimits) *MenuHandler {
	if limits.DefaultSize < 1 {
		limits.DefaultSize = 10
	}
	if limits.MaxSize < limits.DefaultSize {
		limits.MaxSize = limits.DefaultSize
	}
	return &MenuHandler{svc: svc, limits: limits}
}

func (h *MenuHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/menus")
	{
		g.GET("", h.listPage)
		g.GET("/all", h.listAll)
		g.GET("/search/price-greater", h.priceGreater)
		g.GET("/search/price-less", h.priceLess)
		g.GET("/search/price-between", h.priceBetween)
		g.GET("/search/name", h.nameContaining)
		g.GET("/:code", h.getByCode)
		g.POST("", h.register)
		g.PUT("/:code", h.modify)
		g.DELETE("/:code", h.delete)
	}
}

// listPage serves GET /menus?page=&size=. Sizes above the limit are capped, not rejected.
func (h *MenuHandler) listPage(c *gin.Context) {
	var q queryParser
	page := q.intOr(c, "page", 1)
	size := q.intOr(c, "size", h.limits.DefaultSize)
	if err := q.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	if size > h.limits.MaxSize {
		size = h.limits.MaxSize
	}

	res, err := h.svc.ListMenuPage(c.Request.Context(), page, size)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *MenuHandler) listAll(c *gin.Context) {
	menus, err := h.svc.ListMenus(c.Request.Context())
	writeList(c, menus, err)
}

func (h *MenuHandler) getByCode(c *gin.Context) {
	code, err := pathCode(c, "menu_code")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	menu, err := h.svc.FindMenuByCode(c.Request.Context(), code)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, menu)
}

func (h *MenuHandler) priceGreater(c *gin.Context) {
	var q queryParser
	price := q.requiredInt(c, "price")
	if err := q.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	menus, err := h.svc.FindByPriceGreaterThan(c.Request.Context(), price)
	writeList(c, menus, err)
}

func (h *MenuHandler) priceLess(c *gin.Context) {
	var q queryParser
	price := q.requiredInt(c, "price")
	if err := q.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	menus, err := h.svc.FindByPriceLessThan(c.Request.Context(), price)
	writeList(c, menus, err)
}

func (h *MenuHandler) priceBetween(c *gin.Context) {
	var q queryParser
	lo := q.requiredInt(c, "min")
	hi := q.requiredInt(c, "max")
	if err := q.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	menus, err := h.svc.FindByPriceBetween(c.Request.Context(), lo, hi)
	writeList(c, menus, err)
}

func (h *MenuHandler) nameContaining(c *gin.Context) {
	menus, err := h.svc.FindByNameContaining(c.Request.Context(), c.Query("name"))
	writeList(c, menus, err)
}

type registerMenuRequest struct {
	MenuName        string `json:"menu_name"`
	MenuPrice       int    `json:"menu_price"`
	CategoryCode    int64  `json:"category_code"`
	OrderableStatus string `json:"orderable_status"`
}

func (h *MenuHandler) register(c *gin.Context) {
	var req registerMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, malformedBody())
		return
	}
	created, err := h.svc.RegisterMenu(c.Request.Context(), model.MenuDTO{
		MenuName:        req.MenuName,
		MenuPrice:       req.MenuPrice,
		CategoryCode:    req.CategoryCode,
		OrderableStatus: req.OrderableStatus,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.Header("Location", APIV1Prefix+"/menus/"+formatCode(created.MenuCode))
	response.WriteData(c, http.StatusCreated, created)
}

type modifyMenuRequest struct {
	MenuName string `json:"menu_name"`
}

func (h *MenuHandler) modify(c *gin.Context) {
	code, err := pathCode(c, "menu_code")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req modifyMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, malformedBody())
		return
	}
	updated, err := h.svc.ModifyMenu(c.Request.Context(), model.MenuDTO{MenuCode: code, MenuName: req.MenuName})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, updated)
}

func (h *MenuHandler) delete(c *gin.Context) {
	code, err := pathCode(c, "menu_code")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if err := h.svc.DeleteMenu(c.Request.Context(), code); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteNoContent(c)
}
