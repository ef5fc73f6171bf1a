// Package model contains catalog entities and the transfer objects handed to callers.
// Entities mirror the tables; DTOs are what leaves the service layer.
package model

import "github.com/maxviazov/menu-catalog-service/internal/paging"

// Orderable status values stored in tbl_menu.orderable_status.
const (
	Orderable    = "Y"
	NotOrderable = "N"
)

// Menu is a dish on the menu (tbl_menu).
type Menu struct {
	MenuCode        int64
	MenuName        string
	MenuPrice       int
	CategoryCode    int64
	OrderableStatus string
}

// Category groups menus (tbl_category). Top-level categories have no parent.
type Category struct {
	CategoryCode    int64
	CategoryName    string
	RefCategoryCode *int64
}

// MenuDTO is the transfer shape of Menu.
type MenuDTO struct {
	MenuCode        int64  `json:"menu_code"`
	MenuName        string `json:"menu_name"`
	MenuPrice       int    `json:"menu_price"`
	CategoryCode    int64  `json:"category_code"`
	OrderableStatus string `json:"orderable_status"`
}

// CategoryDTO is the transfer shape of Category.
type CategoryDTO struct {
	CategoryCode    int64  `json:"category_code"`
	CategoryName    string `json:"category_name"`
	RefCategoryCode *int64 `json:"ref_category_code,omitempty"`
}

// MenuPage is one page of menus together with the paging buttons to render for it.
type MenuPage struct {
	Items            []MenuDTO         `json:"items"`
	Number           int               `json:"number"`
	PageSize         int               `json:"page_size"`
	NumberOfElements int               `json:"number_of_elements"`
	TotalElements    int64             `json:"total_elements"`
	TotalPages       int               `json:"total_pages"`
	First            bool              `json:"first"`
	Last             bool              `json:"last"`
	Sort             string            `json:"sort"`
	Paging           paging.ButtonInfo `json:"paging"`
}
