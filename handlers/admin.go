package handlers

import (
	"net/http"

	"festival-orders/aggregate"
	"festival-orders/config"
	"festival-orders/models"

	"github.com/gin-gonic/gin"
)

// AdminGetOrders returns every order plus the revenue report the dashboard
// header shows: total revenue, revenue split by table zone, and per-staff
// credited revenue from item attribution.
func AdminGetOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Order("timestamp")
	if processed := c.Query("processed"); processed != "" {
		query = query.Where("processed = ?", processed == "true")
	}
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	views := make([]models.OrderView, len(orders))
	pending := 0
	for i := range orders {
		views[i] = orders[i].View()
		if !views[i].Processed {
			pending++
		}
	}

	aMax, bMax := config.ZoneBounds()
	report := aggregate.Aggregate(views, aggregate.Options{
		OnlyProcessed: !config.RevenueAllOrders(),
		Zones:         aggregate.ZoneConfig{AMax: aMax, BMax: bMax},
	})

	c.JSON(http.StatusOK, gin.H{
		"count":         len(views),
		"pending":       pending,
		"total_revenue": report.TotalRevenue,
		"zone_revenue":  report.ZoneRevenue,
		"staff_revenue": report.StaffRevenue,
		"top_staff":     aggregate.TopStaff(report),
		"orders":        views,
	})
}
