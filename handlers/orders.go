package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"festival-orders/config"
	"festival-orders/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	Table          string `form:"table" binding:"required"`
	Name           string `form:"name" binding:"required"`
	Items          string `form:"items" binding:"required"`
	// Pointer so that a missing total is rejected while an explicit 0 is
	// still accepted (required on a plain int64 cannot tell them apart).
	Total          *int64 `form:"total" binding:"required,min=0"`
	Song           string `form:"song"`
	TableSize      int    `form:"table_size" binding:"required,min=1"`
	ConsentPrivacy bool   `form:"consent_privacy"`
	ConsentTerms   bool   `form:"consent_terms"`
}

// CreateOrder receives a customer order as a multipart form, optionally with
// a payment screenshot.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.ConsentPrivacy || !req.ConsentTerms {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Privacy and terms consent are required"})
		return
	}

	imagePath := ""
	if file, err := c.FormFile("payment_image"); err == nil {
		name := uuid.New().String() + filepath.Ext(file.Filename)
		dir := config.UploadDir()
		if err := os.MkdirAll(dir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store payment image"})
			return
		}
		if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store payment image"})
			return
		}
		imagePath = "uploads/" + name
	}

	order := models.Order{
		Table:          req.Table,
		Name:           req.Name,
		Total:          *req.Total,
		Song:           req.Song,
		ImagePath:      imagePath,
		Timestamp:      time.Now().UTC().Format("2006-01-02T15:04:05"),
		Processed:      false,
		TableSize:      req.TableSize,
		ConsentPrivacy: req.ConsentPrivacy,
		ConsentTerms:   req.ConsentTerms,
	}
	if err := order.SetItems(normalizeItems(req.Items)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid items payload"})
		return
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order received", "order_id": order.ID})
}

// normalizeItems turns whatever the storefront sent — a list of item
// objects, a list of bare names, or plain text — into a uniform item list.
func normalizeItems(raw string) models.ItemList {
	if items := models.ParseItems(raw); items != nil {
		return items
	}
	// Not decodable as a list; keep the literal text as a single item so
	// the order is still serveable.
	return models.ItemList{{Name: raw}}
}

// ListOrders returns every order, oldest first, with items parsed.
func ListOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Order("timestamp").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	views := make([]models.OrderView, len(orders))
	for i := range orders {
		views[i] = orders[i].View()
	}
	c.JSON(http.StatusOK, views)
}

// ToggleProcessed flips an order's processed flag.
func ToggleProcessed(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	order.Processed = !order.Processed
	if err := config.DB.Model(&order).Update("processed", order.Processed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok", "processed": order.Processed})
}

// ServeItem sets or clears which staff member served one item. The item is
// addressed by its index; an empty admin value clears the attribution.
func ServeItem(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	index, err := strconv.Atoi(c.PostForm("item_index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_index must be an integer"})
		return
	}

	items := order.Items()
	if index < 0 || index >= len(items) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item index"})
		return
	}

	items[index].ServedBy = c.PostForm("admin")
	if err := order.SetItems(items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode items"})
		return
	}
	if err := config.DB.Model(&order).Update("items", order.ItemsJSON).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item toggled", "processed": order.Processed})
}

// CompleteOrder marks an order processed. Items nobody claimed get credited
// to "system" so every item of a completed order carries an attribution.
func CompleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	items := order.Items()
	for i := range items {
		if items[i].ServedBy == "" {
			items[i].ServedBy = "system"
		}
	}
	if err := order.SetItems(items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode items"})
		return
	}

	updates := map[string]any{"items": order.ItemsJSON, "processed": true}
	if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order marked as complete"})
}
