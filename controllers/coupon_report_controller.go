package controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

type couponReportRow struct {
	Code          string
	Name          string
	Type          string
	Status        string
	UsedCount     int
	TotalDiscount float64
}

// ExportCouponReport streams an xlsx summary of coupon redemptions.
// Admin only.
func ExportCouponReport(c *gin.Context) {
	var coupons []models.Coupon
	if err := config.DB.Order("created_at DESC").Find(&coupons).Error; err != nil {
		utils.LogError("Coupon report query failed: %v", err)
		utils.InternalServerError(c, "Failed to generate coupon report", nil)
		return
	}

	now := time.Now()
	rows := make([]couponReportRow, 0, len(coupons))
	for i := range coupons {
		var totalDiscount float64
		config.DB.Model(&models.CouponUsage{}).
			Where("coupon_id = ?", coupons[i].ID).
			Select("COALESCE(SUM(discount_amount), 0)").Scan(&totalDiscount)

		rows = append(rows, couponReportRow{
			Code:          coupons[i].Code,
			Name:          coupons[i].Name,
			Type:          coupons[i].Type,
			Status:        coupons[i].CurrentStatus(now),
			UsedCount:     coupons[i].UsedCount,
			TotalDiscount: totalDiscount,
		})
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Coupon Report")
	if err != nil {
		utils.LogError("Coupon report sheet creation failed: %v", err)
		utils.InternalServerError(c, "Failed to generate coupon report", nil)
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"Code", "Name", "Type", "Status", "Times Used", "Total Discount Given"} {
		cell := header.AddCell()
		cell.Value = title
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	var grandTotal float64
	for _, r := range rows {
		row := sheet.AddRow()
		row.AddCell().Value = r.Code
		row.AddCell().Value = r.Name
		row.AddCell().Value = r.Type
		row.AddCell().Value = r.Status
		row.AddCell().SetInt(r.UsedCount)
		row.AddCell().SetFloat(r.TotalDiscount)
		grandTotal += r.TotalDiscount
	}

	totalRow := sheet.AddRow()
	totalRow.AddCell().Value = "TOTAL"
	for i := 0; i < 4; i++ {
		totalRow.AddCell()
	}
	totalRow.AddCell().SetFloat(grandTotal)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Coupon report write failed: %v", err)
		utils.InternalServerError(c, "Failed to generate coupon report", nil)
		return
	}

	filename := fmt.Sprintf("coupon_report_%s.xlsx", now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
