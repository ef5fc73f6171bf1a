package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/menu-catalog-service/internal/handler"
	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/paging"
	"github.com/maxviazov/menu-catalog-service/internal/repository"
	"github.com/maxviazov/menu-catalog-service/internal/service"
	"github.com/maxviazov/menu-catalog-service/pkg/response"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

// stubMenuService records its inputs and returns canned results.
type stubMenuService struct {
	page, size int
	price      int
	lo, hi     int
	name       string
	code       int64
	input      model.MenuDTO

	menu  model.MenuDTO
	menus []model.MenuDTO
	pageR model.MenuPage
	err   error
}

func (s *stubMenuService) FindMenuByCode(_ context.Context, code int64) (model.MenuDTO, error) {
	s.code = code
	return s.menu, s.err
}
func (s *stubMenuService) ListMenus(context.Context) ([]model.MenuDTO, error) {
	return s.menus, s.err
}
func (s *stubMenuService) ListMenuPage(_ context.Context, page, size int) (model.MenuPage, error) {
	s.page, s.size = page, size
	return s.pageR, s.err
}
func (s *stubMenuService) FindByPriceGreaterThan(_ context.Context, price int) ([]model.MenuDTO, error) {
	s.price = price
	return s.menus, s.err
}
func (s *stubMenuService) FindByPriceLessThan(_ context.Context, price int) ([]model.MenuDTO, error) {
	s.price = price
	return s.menus, s.err
}
func (s *stubMenuService) FindByNameContaining(_ context.Context, name string) ([]model.MenuDTO, error) {
	s.name = name
	return s.menus, s.err
}
func (s *stubMenuService) FindByPriceBetween(_ context.Context, lo, hi int) ([]model.MenuDTO, error) {
	s.lo, s.hi = lo, hi
	return s.menus, s.err
}
func (s *stubMenuService) RegisterMenu(_ context.Context, in model.MenuDTO) (model.MenuDTO, error) {
	s.input = in
	return s.menu, s.err
}
func (s *stubMenuService) ModifyMenu(_ context.Context, in model.MenuDTO) (model.MenuDTO, error) {
	s.input = in
	return s.menu, s.err
}
func (s *stubMenuService) DeleteMenu(_ context.Context, code int64) error {
	s.code = code
	return s.err
}

var _ service.MenuService = (*stubMenuService)(nil)

type stubCategoryService struct {
	categories []model.CategoryDTO
	category   model.CategoryDTO
	code       int64
	err        error
}

func (s *stubCategoryService) ListCategories(context.Context) ([]model.CategoryDTO, error) {
	return s.categories, s.err
}
func (s *stubCategoryService) FindCategoryByCode(_ context.Context, code int64) (model.CategoryDTO, error) {
	s.code = code
	return s.category, s.err
}

var _ service.CategoryService = (*stubCategoryService)(nil)

func newRouter(menus service.MenuService, categories service.CategoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zerolog.New(io.Discard)
	r := gin.New()
	r.Use(handler.RequestID(), handler.Recovery(logger), handler.AccessLog(logger))
	handler.Register(r, stubPinger{}, handler.Services{Menus: menus, Categories: categories},
		handler.PageLimits{DefaultSize: 10, MaxSize: 100})
	return r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = bytes.NewBufferString(b)
		default:
			raw, _ := json.Marshal(b)
			rd = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorPayload {
	t.Helper()
	var p response.ErrorPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p), w.Body.String())
	return p
}

func TestMenuHandler_ListPage_Defaults(t *testing.T) {
	stub := &stubMenuService{pageR: model.MenuPage{
		Items:      []model.MenuDTO{{MenuCode: 3, MenuName: "Bulgogi"}},
		TotalPages: 3,
		Paging:     paging.ButtonInfo{CurrentPage: 1, StartPage: 1, EndPage: 3},
	}}
	w := do(newRouter(stub, &stubCategoryService{}), http.MethodGet, "/api/v1/menus", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, stub.page)
	assert.Equal(t, 10, stub.size)

	var got model.MenuPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, paging.ButtonInfo{CurrentPage: 1, StartPage: 1, EndPage: 3}, got.Paging)
	assert.Len(t, got.Items, 1)
	assert.Contains(t, w.Body.String(), `"start_page":1`)
}

func TestMenuHandler_ListPage_PassesPageAndCapsSize(t *testing.T) {
	stub := &stubMenuService{}
	r := newRouter(stub, &stubCategoryService{})

	w := do(r, http.MethodGet, "/api/v1/menus?page=-3&size=500", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -3, stub.page)
	assert.Equal(t, 100, stub.size)
}

func TestMenuHandler_ListPage_BadQuery(t *testing.T) {
	r := newRouter(&stubMenuService{}, &stubCategoryService{})

	w := do(r, http.MethodGet, "/api/v1/menus?page=abc&size=x", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	p := decodeError(t, w)
	assert.Equal(t, "invalid_input", p.Error)
	assert.Len(t, p.FieldErrors, 2)
}

func TestMenuHandler_ListAll_EmptyIsArray(t *testing.T) {
	w := do(newRouter(&stubMenuService{}, &stubCategoryService{}), http.MethodGet, "/api/v1/menus/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMenuHandler_GetByCode(t *testing.T) {
	stub := &stubMenuService{menu: model.MenuDTO{MenuCode: 5, MenuName: "Naengmyeon", OrderableStatus: "Y"}}
	r := newRouter(stub, &stubCategoryService{})

	w := do(r, http.MethodGet, "/api/v1/menus/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), stub.code)
	assert.Contains(t, w.Body.String(), `"menu_name":"Naengmyeon"`)

	w = do(r, http.MethodGet, "/api/v1/menus/five", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "menu_code", decodeError(t, w).FieldErrors[0].Field)

	stub.err = repository.ErrNotFound
	w = do(r, http.MethodGet, "/api/v1/menus/6", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeError(t, w).Error)
}

func TestMenuHandler_Searches(t *testing.T) {
	stub := &stubMenuService{menus: []model.MenuDTO{{MenuCode: 1}}}
	r := newRouter(stub, &stubCategoryService{})

	w := do(r, http.MethodGet, "/api/v1/menus/search/price-greater?price=15000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 15000, stub.price)

	w = do(r, http.MethodGet, "/api/v1/menus/search/price-less?price=3000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3000, stub.price)

	w = do(r, http.MethodGet, "/api/v1/menus/search/price-between?min=1000&max=9000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1000, stub.lo)
	assert.Equal(t, 9000, stub.hi)

	w = do(r, http.MethodGet, "/api/v1/menus/search/name?name=%EA%B9%80%EC%B9%98", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "김치", stub.name)
}

func TestMenuHandler_Searches_RequireParams(t *testing.T) {
	r := newRouter(&stubMenuService{}, &stubCategoryService{})

	w := do(r, http.MethodGet, "/api/v1/menus/search/price-greater", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []service.FieldError{{Field: "price", Message: "is required"}}, decodeError(t, w).FieldErrors)

	w = do(r, http.MethodGet, "/api/v1/menus/search/price-between?min=1", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "max", decodeError(t, w).FieldErrors[0].Field)
}

func TestMenuHandler_Register(t *testing.T) {
	stub := &stubMenuService{menu: model.MenuDTO{MenuCode: 42, MenuName: "Tteokbokki", MenuPrice: 4000, CategoryCode: 4, OrderableStatus: "Y"}}
	r := newRouter(stub, &stubCategoryService{})

	w := do(r, http.MethodPost, "/api/v1/menus", map[string]any{
		"menu_name": "Tteokbokki", "menu_price": 4000, "category_code": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/v1/menus/42", w.Header().Get("Location"))
	assert.Equal(t, model.MenuDTO{MenuName: "Tteokbokki", MenuPrice: 4000, CategoryCode: 4}, stub.input)

	w = do(r, http.MethodPost, "/api/v1/menus", "{not json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "body", decodeError(t, w).FieldErrors[0].Field)

	stub.err = repository.ErrConflict
	w = do(r, http.MethodPost, "/api/v1/menus", map[string]any{"menu_name": "x", "category_code": 999})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestMenuHandler_Modify(t *testing.T) {
	stub := &stubMenuService{menu: model.MenuDTO{MenuCode: 7, MenuName: "Renamed"}}
	r := newRouter(stub, &stubCategoryService{})

	w := do(r, http.MethodPut, "/api/v1/menus/7", map[string]any{"menu_name": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.MenuDTO{MenuCode: 7, MenuName: "Renamed"}, stub.input)

	stub.err = service.NewInvalidInputError(service.FieldError{Field: "menu_name", Message: "must not be empty"})
	w = do(r, http.MethodPut, "/api/v1/menus/7", map[string]any{"menu_name": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "menu_name", decodeError(t, w).FieldErrors[0].Field)
}

func TestMenuHandler_Delete(t *testing.T) {
	stub := &stubMenuService{}
	r := newRouter(stub, &stubCategoryService{})

	w := do(r, http.MethodDelete, "/api/v1/menus/9", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(9), stub.code)
	assert.Zero(t, w.Body.Len())

	stub.err = repository.ErrNotFound
	w = do(r, http.MethodDelete, "/api/v1/menus/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuHandler_InternalErrorHidesDetails(t *testing.T) {
	stub := &stubMenuService{err: errors.New("connection reset by peer")}
	w := do(newRouter(stub, &stubCategoryService{}), http.MethodGet, "/api/v1/menus/all", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", decodeError(t, w).Error)
	assert.NotContains(t, w.Body.String(), "connection reset")
}
