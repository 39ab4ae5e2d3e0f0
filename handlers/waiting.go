package handlers

import (
	"net/http"
	"time"

	"festival-orders/config"
	"festival-orders/models"

	"github.com/gin-gonic/gin"
)

type JoinWaitingRequest struct {
	Name      string `form:"name" binding:"required"`
	TableSize int    `form:"tableSize" binding:"required,min=1"`
	Phone     string `form:"phone" binding:"required"`
	Consent   bool   `form:"consent"`
}

// JoinWaiting registers a party on the waiting list. The phone number is
// stored in digits-only canonical form; it doubles as the possession check
// for self-service removal later.
func JoinWaiting(c *gin.Context) {
	var req JoinWaitingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Consent {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Privacy consent is required"})
		return
	}
	phone := models.CanonicalPhone(req.Phone)
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number must contain digits"})
		return
	}

	entry := models.Waiting{
		Name:      req.Name,
		Phone:     phone,
		TableSize: req.TableSize,
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05"),
		Consent:   req.Consent,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save entry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "ok", "entry": entry.View()})
}

// GetWaiting returns the waiting list with masked phone numbers, longest
// wait first.
func GetWaiting(c *gin.Context) {
	var entries []models.Waiting
	if err := config.DB.Order("timestamp").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load waiting list"})
		return
	}

	views := make([]models.WaitingView, len(entries))
	for i := range entries {
		views[i] = entries[i].View()
	}
	c.JSON(http.StatusOK, views)
}

// DeleteWaiting lets a party remove its own entry after re-entering the
// phone number it registered with. Not authentication, just a possession
// check.
func DeleteWaiting(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var entry models.Waiting
	if err := config.DB.First(&entry, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}
	if entry.Phone != models.CanonicalPhone(req.Phone) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Phone number does not match"})
		return
	}

	if err := config.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// AdminGetWaiting returns the waiting list with full phone numbers.
func AdminGetWaiting(c *gin.Context) {
	var entries []models.Waiting
	if err := config.DB.Order("timestamp").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load waiting list"})
		return
	}

	views := make([]models.WaitingView, len(entries))
	for i := range entries {
		views[i] = entries[i].AdminView()
	}
	c.JSON(http.StatusOK, views)
}

// AdminDeleteWaiting removes an entry without a phone check. "Seated" and
// "deleted" are the same operation; no per-entry state survives.
func AdminDeleteWaiting(c *gin.Context) {
	var entry models.Waiting
	if err := config.DB.First(&entry, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}
	if err := config.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted by admin"})
}
