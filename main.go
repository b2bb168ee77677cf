// @title Aurelle Store API
// @version 1.0
// @description Aurelle storefront catalog browsing API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Aurelle-Shop/aurelle-store-backend/config"
	"github.com/Aurelle-Shop/aurelle-store-backend/middleware"
	"github.com/Aurelle-Shop/aurelle-store-backend/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection (rate limiting)
	config.ConnectRedis()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public storefront, rate limited per IP
	storeGroup := api.Group("")
	storeGroup.Use(middleware.RateLimiter(300, time.Minute))
	routes.SetupStorefrontRoutes(storeGroup)
	log.Println("✅ Storefront routes registered")

	addr := ":" + config.Port()
	fmt.Println("🚀 Server is running on http://localhost" + addr)
	router.Run(addr)
}
