package routes

import (
	"festival-orders/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Orders ─────────────────────────────────────────────────────
	api := r.Group("/api")
	{
		api.POST("/orders", handlers.CreateOrder)
		api.GET("/orders", handlers.ListOrders)
		api.PATCH("/orders/:id/toggle", handlers.ToggleProcessed)
		api.PATCH("/orders/:id/serve-item", handlers.ServeItem)
		api.PATCH("/orders/:id/complete", handlers.CompleteOrder)
	}

	// ── Waiting list (public) ──────────────────────────────────────
	waiting := r.Group("/api/waiting")
	{
		waiting.POST("", handlers.JoinWaiting)
		waiting.GET("", handlers.GetWaiting)
		waiting.DELETE("/:id", handlers.DeleteWaiting)
	}

	// ── Admin ──────────────────────────────────────────────────────
	admin := r.Group("/api/admin")
	{
		admin.GET("/orders", handlers.AdminGetOrders)
		admin.GET("/waiting", handlers.AdminGetWaiting)
		admin.DELETE("/waiting/:id", handlers.AdminDeleteWaiting)
	}
}
