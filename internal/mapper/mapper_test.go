package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/menu-catalog-service/internal/mapper"
	"github.com/maxviazov/menu-catalog-service/internal/model"
)

func TestTo_CopiesSharedFields(t *testing.T) {
	m := mapper.New()
	src := model.Menu{MenuCode: 7, MenuName: "Kimchi stew", MenuPrice: 9000, CategoryCode: 4, OrderableStatus: "Y"}

	dto, err := mapper.To[model.MenuDTO](m, src)
	require.NoError(t, err)
	assert.Equal(t, model.MenuDTO{MenuCode: 7, MenuName: "Kimchi stew", MenuPrice: 9000, CategoryCode: 4, OrderableStatus: "Y"}, dto)

	back, err := mapper.To[model.Menu](m, dto)
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

func TestTo_DeepCopiesPointers(t *testing.T) {
	m := mapper.New()
	parent := int64(1)
	src := model.Category{CategoryCode: 4, CategoryName: "Korean", RefCategoryCode: &parent}

	dto, err := mapper.To[model.CategoryDTO](m, src)
	require.NoError(t, err)
	require.NotNil(t, dto.RefCategoryCode)
	assert.Equal(t, int64(1), *dto.RefCategoryCode)

	parent = 99
	assert.Equal(t, int64(1), *dto.RefCategoryCode, "dto must not alias the entity pointer")
}

func TestSlice(t *testing.T) {
	m := mapper.New()

	out, err := mapper.Slice[model.MenuDTO](m, []model.Menu{{MenuCode: 1}, {MenuCode: 2}})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[1].MenuCode)

	empty, err := mapper.Slice[model.MenuDTO, model.Menu](m, nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
