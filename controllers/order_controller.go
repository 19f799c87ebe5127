package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/middleware"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gstRate is the tax applied on the discounted subtotal.
const gstRate = 0.18

// CreateOrderRequest places an order from the user's current cart.
type CreateOrderRequest struct {
	AddressID     uint   `json:"address_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	CouponCode    string `json:"coupon_code"`
}

func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("VMR-%s-%s", now.Format("20060102"), suffix)
}

// deliveryChargeFor picks the per-region charge for the destination state,
// falling back to the product's default charge when no region matches.
func deliveryChargeFor(product *models.Product, state string) float64 {
	for i := range product.DeliveryCharges {
		if strings.EqualFold(product.DeliveryCharges[i].Region, state) {
			return product.DeliveryCharges[i].Charge
		}
	}
	return product.DefaultDeliveryCharge
}

// CreateOrder places an order from the cart: freeze prices, take stock,
// redeem the coupon if one is given, then clear the cart. Everything runs
// in one transaction so a failed step leaves nothing behind.
func CreateOrder(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Address and payment method are required", err.Error())
		return
	}

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", req.AddressID, userID).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Address not found")
			return
		}
		utils.LogError("Order address lookup failed: %v", err)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}

	var cartItems []models.Cart
	if err := config.DB.Preload("Product").Where("user_id = ?", userID).
		Find(&cartItems).Error; err != nil {
		utils.LogError("Order cart fetch failed for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}
	if len(cartItems) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	now := time.Now()
	var order models.Order

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var subtotal, delivery float64
		items := make([]models.OrderItem, 0, len(cartItems))

		for i := range cartItems {
			line := &cartItems[i]
			unit := variantUnitPrice(&line.Product, line.VariantID)
			subtotal += unit * float64(line.Quantity)
			delivery += deliveryChargeFor(&line.Product, address.State)

			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", line.ProductID, line.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", line.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("insufficient stock for %s: %w", line.Product.Name, utils.ErrLimitExceeded)
			}

			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				VariantID: line.VariantID,
				Quantity:  line.Quantity,
				Price:     unit,
			})
		}

		var discount float64
		var couponCode string
		if req.CouponCode != "" {
			code := utils.NormalizeCouponCode(req.CouponCode)
			var coupon models.Coupon
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("code = ? AND status = ? AND start_date <= ? AND end_date >= ?",
					code, models.CouponStatusActive, now, now).
				First(&coupon).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrNotFound
				}
				return err
			}

			var userUsage int64
			if err := tx.Model(&models.CouponUsage{}).
				Where("coupon_id = ? AND user_id = ?", coupon.ID, userID).
				Count(&userUsage).Error; err != nil {
				return err
			}

			var err error
			discount, err = utils.EvaluateCoupon(&coupon, subtotal, &userUsage)
			if err != nil {
				return err
			}
			if coupon.Type == models.CouponTypeFreeShipping {
				discount = delivery
			}
			couponCode = coupon.Code

			orderNumber := newOrderNumber(now)
			if err := redeemCoupon(tx, coupon.ID, &userID, &orderNumber, discount); err != nil {
				return err
			}
			order.OrderNumber = orderNumber
		} else {
			order.OrderNumber = newOrderNumber(now)
		}

		if discount > subtotal {
			discount = subtotal
		}
		gst := (subtotal - discount) * gstRate

		order.UserID = userID
		order.Address = models.ShippingAddress{
			Name:         address.Name,
			Phone:        address.Phone,
			AddressLine1: address.AddressLine1,
			AddressLine2: address.AddressLine2,
			City:         address.City,
			State:        address.State,
			Pincode:      address.Pincode,
		}
		order.PaymentMethod = req.PaymentMethod
		order.Subtotal = subtotal
		order.GST = gst
		order.DeliveryCharges = delivery
		order.Discount = discount
		order.CouponCode = couponCode
		order.Total = subtotal + gst + delivery - discount
		order.Status = models.OrderStatusPending
		order.OrderItems = items

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.Cart{}).Error
	})

	if err != nil {
		var belowMin *utils.BelowMinimumError
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.BadRequest(c, "Invalid or expired coupon code", nil)
		case errors.Is(err, utils.ErrAlreadyUsed):
			utils.BadRequest(c, "You have already used this coupon", nil)
		case errors.Is(err, utils.ErrLimitExceeded):
			utils.BadRequest(c, err.Error(), nil)
		case errors.Is(err, utils.ErrUnsupported):
			utils.BadRequest(c, "This coupon type cannot be applied here", nil)
		case errors.As(err, &belowMin):
			utils.BadRequest(c, belowMin.Error(), nil)
		default:
			utils.LogError("Order create failed for user %d: %v", userID, err)
			utils.InternalServerError(c, "Failed to place order", nil)
		}
		return
	}

	utils.LogInfo("Order %s placed by user %d, total %.2f", order.OrderNumber, userID, order.Total)
	utils.Created(c, "Order placed successfully", order)
}

// GetUserOrders lists the authenticated user's orders, newest first.
func GetUserOrders(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	pagination := utils.NewPagination(c)
	var total int64
	config.DB.Model(&models.Order{}).Where("user_id = ?", userID).Count(&total)
	pagination.SetTotal(total)

	var orders []models.Order
	if err := config.DB.Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Order list failed for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", orders, pagination.Total, pagination.Page, pagination.Limit)
}

// GetOrderByID returns a single order. Users see only their own orders;
// admins see any.
func GetOrderByID(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	query := config.DB.Preload("OrderItems.Product")
	if role, _ := c.Get("role"); role != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var order models.Order
	if err := query.First(&order, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Order not found")
			return
		}
		utils.LogError("Order fetch failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch order", nil)
		return
	}

	utils.Success(c, "Order retrieved successfully", order)
}

// CancelOrder cancels a pending or confirmed order and restores stock.
func CancelOrder(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("OrderItems").
			Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrNotFound
			}
			return err
		}

		if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusConfirmed {
			return utils.ErrUnsupported
		}

		for i := range order.OrderItems {
			item := &order.OrderItems[i]
			if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
				Update("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Model(&order).Update("status", models.OrderStatusCancelled).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.NotFound(c, "Order not found")
		case errors.Is(err, utils.ErrUnsupported):
			utils.BadRequest(c, "Order can no longer be cancelled", nil)
		default:
			utils.LogError("Order cancel failed: %v", err)
			utils.InternalServerError(c, "Failed to cancel order", nil)
		}
		return
	}

	utils.Success(c, "Order cancelled successfully", nil)
}

// GetAllOrders lists every order with optional status filter. Admin only.
func GetAllOrders(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.Preload("OrderItems").
		Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Admin order list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", orders, pagination.Total, pagination.Page, pagination.Limit)
}

var orderStatusFlow = map[string]bool{
	models.OrderStatusPending:   true,
	models.OrderStatusConfirmed: true,
	models.OrderStatusShipped:   true,
	models.OrderStatusDelivered: true,
	models.OrderStatusCancelled: true,
}

// UpdateOrderStatus moves an order to a new status. Admin only.
func UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Status is required", err.Error())
		return
	}
	if !orderStatusFlow[req.Status] {
		utils.BadRequest(c, "Invalid order status", nil)
		return
	}

	result := config.DB.Model(&models.Order{}).
		Where("id = ?", c.Param("id")).
		Update("status", req.Status)
	if result.Error != nil {
		utils.LogError("Order status update failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Order status updated", gin.H{"status": req.Status})
}
