package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/config"
	"github.com/inmobiliaria-ica/api-go/routes"
	"github.com/joho/godotenv"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if manifest := os.Getenv("ASSET_MANIFEST"); manifest != "" {
		if err := config.LoadAssetManifest(manifest); err != nil {
			log.Fatal("Error loading asset manifest:", err)
		}
	}

	// Initialize database
	db := config.InitDB()

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, db)

	port := config.Port()
	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
