package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	lines := []PricedLine{
		{IngredientID: 1, Quantity: 2, UnitPrice: 200, Subtotal: 400},
		{IngredientID: 2, Quantity: 0.5, UnitPrice: 300, Subtotal: 150},
	}
	assert.Equal(t, 550.0, Total(lines))
}

func TestTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Total(nil))
	assert.Equal(t, 0.0, Total([]PricedLine{}))
}
