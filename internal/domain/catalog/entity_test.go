package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("パン"))
	assert.True(t, ValidCategory("洋菓子"))
	assert.False(t, ValidCategory("ケーキ"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("bread"))
}

func TestRecipeValidate(t *testing.T) {
	tests := []struct {
		name    string
		recipe  Recipe
		wantErr error
	}{
		{
			name:   "valid bread recipe",
			recipe: Recipe{Title: "基本の食パン", Category: "パン"},
		},
		{
			name:   "valid pastry recipe",
			recipe: Recipe{Title: "ショートケーキ", Category: "洋菓子"},
		},
		{
			name:    "missing title",
			recipe:  Recipe{Category: "パン"},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "missing category",
			recipe:  Recipe{Title: "食パン"},
			wantErr: ErrCategoryRequired,
		},
		{
			name:    "unknown category",
			recipe:  Recipe{Title: "ケーキ", Category: "ケーキ"},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
