package repository

import (
	"strings"

	"github.com/maxviazov/menu-catalog-service/internal/paging"
)

var menuSortColumns = map[string]string{
	SortMenuCode:     "menu_code",
	SortMenuName:     "menu_name",
	SortMenuPrice:    "menu_price",
	SortCategoryCode: "category_code",
}

// MenuOrderBy renders s as an ORDER BY expression for tbl_menu.
// Keys go through an allow-list since they end up in SQL text. Ties are
// broken by menu_code so paging is stable.
func MenuOrderBy(s paging.Sort) (string, error) {
	col, ok := menuSortColumns[strings.ToLower(strings.TrimSpace(s.Key))]
	if !ok {
		return "", InvalidSort(s.Key)
	}
	dir := "ASC"
	if s.Direction == paging.Desc {
		dir = "DESC"
	}
	if col == "menu_code" {
		return col + " " + dir, nil
	}
	return col + " " + dir + ", menu_code " + dir, nil
}

// ValidMenuSortKey reports whether key is accepted by MenuOrderBy.
func ValidMenuSortKey(key string) bool {
	_, ok := menuSortColumns[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// EscapeLike escapes LIKE wildcards so s matches literally; pair it with ESCAPE '\'.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
