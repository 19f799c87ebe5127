package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductRequest represents the create/update request body for a product.
type ProductRequest struct {
	Name                  string                  `json:"name" binding:"required"`
	Slug                  string                  `json:"slug"`
	Description           string                  `json:"description" binding:"required"`
	LongDescription       string                  `json:"long_description"`
	Materials             string                  `json:"materials"`
	CareInstructions      string                  `json:"care_instructions"`
	Specifications        []string                `json:"specifications"`
	AdditionalInfo        string                  `json:"additional_info"`
	Weight                float64                 `json:"weight"`
	Warranty              string                  `json:"warranty"`
	Price                 float64                 `json:"price" binding:"required"`
	DiscountPrice         float64                 `json:"discount_price" binding:"required"`
	StockQuantity         int                     `json:"stock_quantity" binding:"required"`
	Category              string                  `json:"category" binding:"required"`
	Brand                 string                  `json:"brand"`
	VideoURL              string                  `json:"video_url"`
	Type                  string                  `json:"type"`
	AffiliateLink         string                  `json:"affiliate_link"`
	ProductImages         []string                `json:"product_images"`
	Tags                  []string                `json:"tags"`
	Colors                []string                `json:"colors"`
	Sizes                 []string                `json:"sizes"`
	Features              []string                `json:"features"`
	DeliveryCharges       []models.DeliveryCharge `json:"delivery_charges"`
	DefaultDeliveryCharge float64                 `json:"default_delivery_charge"`
	IsFeatured            bool                    `json:"is_featured"`
	IsNewArrival          bool                    `json:"is_new_arrival"`
	Status                string                  `json:"status"`
}

// expandVariants builds the color x size variant grid for a product.
// Stock is split evenly across variants; the variant id doubles as SKU.
func expandVariants(slug string, colors, sizes, images []string, price float64, stockQuantity int) models.VariantList {
	if len(colors) == 0 || len(sizes) == 0 {
		return nil
	}

	stockPerVariant := stockQuantity / (len(colors) * len(sizes))
	variants := make(models.VariantList, 0, len(colors)*len(sizes))

	for _, color := range colors {
		colorName := color
		if strings.HasPrefix(color, "#") {
			colorName = "Color-" + color[1:]
		}
		for _, size := range sizes {
			variantID := fmt.Sprintf("%s-%s-%s", slug, strings.TrimPrefix(color, "#"), size)
			variants = append(variants, models.Variant{
				VariantID: variantID,
				SKU:       variantID,
				Color:     models.VariantColor{Name: colorName, Code: color},
				Size:      size,
				Price:     price,
				Stock:     stockPerVariant,
				Images:    images,
			})
		}
	}
	return variants
}

func (r *ProductRequest) toModel() models.Product {
	slug := r.Slug
	if slug == "" {
		slug = utils.Slugify(r.Name)
	}

	variantPrice := r.DiscountPrice
	if variantPrice == 0 {
		variantPrice = r.Price
	}

	productType := r.Type
	if productType == "" {
		productType = models.ProductTypeOwn
	}
	status := r.Status
	if status == "" {
		status = models.ProductStatusActive
	}

	return models.Product{
		Name:                  r.Name,
		Slug:                  slug,
		Description:           r.Description,
		LongDescription:       r.LongDescription,
		Materials:             r.Materials,
		CareInstructions:      r.CareInstructions,
		Specifications:        r.Specifications,
		AdditionalInfo:        r.AdditionalInfo,
		Weight:                r.Weight,
		Warranty:              r.Warranty,
		Price:                 r.Price,
		DiscountPrice:         r.DiscountPrice,
		StockQuantity:         r.StockQuantity,
		Category:              r.Category,
		Brand:                 r.Brand,
		VideoURL:              r.VideoURL,
		Type:                  productType,
		AffiliateLink:         r.AffiliateLink,
		ProductImages:         r.ProductImages,
		Tags:                  r.Tags,
		Colors:                r.Colors,
		Sizes:                 r.Sizes,
		Features:              r.Features,
		Variants:              expandVariants(slug, r.Colors, r.Sizes, r.ProductImages, variantPrice, r.StockQuantity),
		DeliveryCharges:       r.DeliveryCharges,
		DefaultDeliveryCharge: r.DefaultDeliveryCharge,
		IsFeatured:            r.IsFeatured,
		IsNewArrival:          r.IsNewArrival,
		Status:                status,
	}
}

// AddProduct creates a catalog item. Admin only. Persistence failure is a
// hard 500; there is no in-memory fallback.
func AddProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Missing required fields", err.Error())
		return
	}

	product := req.toModel()
	if err := config.DB.Create(&product).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			utils.Conflict(c, "Product slug already exists", nil)
			return
		}
		utils.LogError("Product create failed for %s: %v", product.Slug, err)
		utils.InternalServerError(c, "Failed to add product", nil)
		return
	}

	utils.LogInfo("Product %d (%s) created", product.ID, product.Slug)
	utils.Created(c, "Product added successfully", product)
}

// GetProducts lists products with optional filters and pagination.
func GetProducts(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Product{}).Where("status = ?", models.ProductStatusActive)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if brand := c.Query("brand"); brand != "" {
		query = query.Where("brand = ?", brand)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}
	if c.Query("new_arrival") == "true" {
		query = query.Where("is_new_arrival = ?", true)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Product count failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}

	var products []models.Product
	if err := query.Order("created_at DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&products).Error; err != nil {
		utils.LogError("Product list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}

	utils.SuccessWithPagination(c, "Products retrieved successfully", products, total, pagination.Page, pagination.Limit)
}

// GetProductByID returns one product by numeric id.
func GetProductByID(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Product fetch failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch product", nil)
		return
	}

	utils.Success(c, "Product retrieved successfully", product)
}

// GetProductBySlug returns one product by slug.
func GetProductBySlug(c *gin.Context) {
	var product models.Product
	if err := config.DB.Where("slug = ?", c.Param("slug")).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Product fetch failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch product", nil)
		return
	}

	utils.Success(c, "Product retrieved successfully", product)
}

// UpdateProduct replaces a product's fields. Admin only.
func UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Product fetch failed: %v", err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updated := req.toModel()
	updated.ID = product.ID
	updated.CreatedAt = product.CreatedAt

	if err := config.DB.Save(&updated).Error; err != nil {
		utils.LogError("Product update failed for %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	utils.Success(c, "Product updated successfully", updated)
}

// DeleteProduct soft-deletes a product. Admin only.
func DeleteProduct(c *gin.Context) {
	result := config.DB.Delete(&models.Product{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Product delete failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product deleted successfully", nil)
}
