package controllers

import (
	"strings"
	"testing"
	"time"

	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumberShape(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	number := newOrderNumber(now)

	parts := strings.Split(number, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "VMR", parts[0])
	assert.Equal(t, "20250615", parts[1])
	assert.Len(t, parts[2], 8)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}

func TestNewOrderNumberUnique(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		number := newOrderNumber(now)
		assert.False(t, seen[number])
		seen[number] = true
	}
}

func TestVariantUnitPrice(t *testing.T) {
	product := models.Product{
		Price: 999,
		Variants: models.VariantList{
			{VariantID: "tee-Red-S", Price: 499},
			{VariantID: "tee-Red-M", Price: 549},
		},
	}

	assert.Equal(t, 499.0, variantUnitPrice(&product, "tee-Red-S"))
	assert.Equal(t, 549.0, variantUnitPrice(&product, "tee-Red-M"))
	assert.Equal(t, 999.0, variantUnitPrice(&product, "tee-Red-XL"), "unknown variant falls back to product price")
	assert.Equal(t, 999.0, variantUnitPrice(&product, ""))
}

func TestDeliveryChargeFor(t *testing.T) {
	product := models.Product{
		DefaultDeliveryCharge: 99,
		DeliveryCharges: models.DeliveryChargeList{
			{Region: "Kerala", Charge: 49},
			{Region: "Karnataka", Charge: 59},
		},
	}

	assert.Equal(t, 49.0, deliveryChargeFor(&product, "Kerala"))
	assert.Equal(t, 49.0, deliveryChargeFor(&product, "kerala"), "region match is case-insensitive")
	assert.Equal(t, 99.0, deliveryChargeFor(&product, "Goa"))
}

func TestOrderStatusFlowCoversAllStatuses(t *testing.T) {
	for _, status := range []string{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		assert.True(t, orderStatusFlow[status], status)
	}
	assert.False(t, orderStatusFlow["refunded"])
}
