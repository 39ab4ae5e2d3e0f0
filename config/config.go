package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"festival-orders/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// UploadDir is where payment images land; served back under /uploads.
func UploadDir() string {
	return getEnv("UPLOAD_DIR", "uploads")
}

// ZoneBounds returns the table-number partition for zone revenue: tables
// 1..aMax fall into zoneA, aMax+1..bMax into zoneB. bMax == 0 leaves zoneB
// open-ended (51+), which some booths prefer over a hard 100 cutoff.
func ZoneBounds() (aMax, bMax int) {
	return getEnvInt("ZONE_A_MAX", 50), getEnvInt("ZONE_B_MAX", 100)
}

// RevenueAllOrders reports whether total revenue counts every order or only
// processed ones.
func RevenueAllOrders() bool {
	return getEnv("REVENUE_ALL_ORDERS", "true") == "true"
}

// StaleThresholds returns the warning/critical bands for pending orders.
func StaleThresholds() (warning, critical time.Duration) {
	w := getEnvInt("STALE_WARNING_SECONDS", 600)
	c := getEnvInt("STALE_CRITICAL_SECONDS", 900)
	return time.Duration(w) * time.Second, time.Duration(c) * time.Second
}

// RefreshInterval is the dashboard polling period.
func RefreshInterval() time.Duration {
	return time.Duration(getEnvInt("REFRESH_INTERVAL_SECONDS", 5)) * time.Second
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "festival.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Order{},
		&models.Waiting{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
