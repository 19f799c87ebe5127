package controllers

import (
	"testing"

	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/stretchr/testify/assert"
)

func TestIsValidBulkOrderStatus(t *testing.T) {
	for _, status := range []string{
		models.BulkOrderStatusPending,
		models.BulkOrderStatusProcessing,
		models.BulkOrderStatusCompleted,
		models.BulkOrderStatusRejected,
	} {
		assert.True(t, isValidBulkOrderStatus(status), status)
	}

	for _, status := range []string{"", "shipped", "PENDING", "done"} {
		assert.False(t, isValidBulkOrderStatus(status), status)
	}
}
