package controllers

import (
	"testing"

	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandVariantsGrid(t *testing.T) {
	variants := expandVariants("tee", []string{"Red", "Blue"}, []string{"S", "M", "L"}, nil, 499, 60)

	require.Len(t, variants, 6)
	assert.Equal(t, "tee-Red-S", variants[0].VariantID)
	assert.Equal(t, variants[0].VariantID, variants[0].SKU)
	assert.Equal(t, "Red", variants[0].Color.Name)
	assert.Equal(t, 499.0, variants[0].Price)
	for _, v := range variants {
		assert.Equal(t, 10, v.Stock, "stock is split evenly across variants")
	}
}

func TestExpandVariantsHexColorNaming(t *testing.T) {
	variants := expandVariants("tee", []string{"#ff0000"}, []string{"M"}, nil, 100, 5)

	require.Len(t, variants, 1)
	assert.Equal(t, "Color-ff0000", variants[0].Color.Name)
	assert.Equal(t, "#ff0000", variants[0].Color.Code)
	assert.Equal(t, "tee-ff0000-M", variants[0].VariantID)
}

func TestExpandVariantsEmptyAxes(t *testing.T) {
	assert.Nil(t, expandVariants("tee", nil, []string{"M"}, nil, 100, 5))
	assert.Nil(t, expandVariants("tee", []string{"Red"}, nil, nil, 100, 5))
}

func TestProductRequestToModelDefaults(t *testing.T) {
	req := ProductRequest{
		Name:          "Steel Water Bottle",
		Description:   "1L insulated bottle",
		Price:         999,
		DiscountPrice: 799,
		StockQuantity: 20,
		Category:      "Kitchen",
	}

	product := req.toModel()
	assert.Equal(t, "steel-water-bottle", product.Slug)
	assert.Equal(t, models.ProductTypeOwn, product.Type)
	assert.Equal(t, models.ProductStatusActive, product.Status)
	assert.Nil(t, product.Variants)
}

func TestProductRequestToModelVariantsUseDiscountPrice(t *testing.T) {
	req := ProductRequest{
		Name:          "Tee",
		Slug:          "tee",
		Description:   "Cotton tee",
		Price:         599,
		DiscountPrice: 499,
		StockQuantity: 4,
		Category:      "Apparel",
		Colors:        []string{"Red"},
		Sizes:         []string{"S", "M"},
	}

	product := req.toModel()
	require.Len(t, product.Variants, 2)
	assert.Equal(t, 499.0, product.Variants[0].Price)
}
