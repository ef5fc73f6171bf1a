package service

import (
	"strings"

	"github.com/maxviazov/menu-catalog-service/internal/model"
)

const maxMenuNameLength = 30

func validateCode(field string, code int64) []FieldError {
	if code <= 0 {
		return []FieldError{{Field: field, Message: "must be > 0"}}
	}
	return nil
}

func validateMenuName(name string) []FieldError {
	if name == "" {
		return []FieldError{{Field: "menu_name", Message: "must not be empty"}}
	}
	if len([]rune(name)) > maxMenuNameLength {
		return []FieldError{{Field: "menu_name", Message: "length must be at most 30"}}
	}
	return nil
}

// normalizeOrderable upper-cases the status and defaults an empty one to orderable.
func normalizeOrderable(status string) string {
	s := strings.ToUpper(strings.TrimSpace(status))
	if s == "" {
		return model.Orderable
	}
	return s
}

func isValidOrderable(status string) bool {
	switch status {
	case model.Orderable, model.NotOrderable:
		return true
	default:
		return false
	}
}

// validateNewMenu checks a menu about to be registered. m must already be trimmed and normalized.
func validateNewMenu(m model.MenuDTO) []FieldError {
	ferrs := validateMenuName(m.MenuName)
	if m.MenuPrice < 0 {
		ferrs = append(ferrs, FieldError{Field: "menu_price", Message: "must be >= 0"})
	}
	ferrs = append(ferrs, validateCode("category_code", m.CategoryCode)...)
	if !isValidOrderable(m.OrderableStatus) {
		ferrs = append(ferrs, FieldError{Field: "orderable_status", Message: "must be Y or N"})
	}
	return ferrs
}
