package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"kacchi-backend/internal/catalog"
	"kacchi-backend/internal/config"
	"kacchi-backend/internal/database"
	"kacchi-backend/internal/handlers"
	"kacchi-backend/internal/middleware"
	"kacchi-backend/internal/selection"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("⚠️ order index warning: %v", err)
	}
	if err := database.EnsurePackageIndexes(db); err != nil {
		log.Printf("⚠️ package index warning: %v", err)
	}
	if err := database.EnsureProfileIndexes(db); err != nil {
		log.Printf("⚠️ profile index warning: %v", err)
	}
	if err := database.SeedDeliverySchedule(db); err != nil {
		log.Printf("⚠️ delivery schedule seed warning: %v", err)
	}
	if err := database.SeedPackages(db); err != nil {
		log.Printf("⚠️ package seed warning: %v", err)
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()

	packageCatalog := catalog.New(db)
	packageCatalog.Load(watchCtx)
	go packageCatalog.Watch(watchCtx)

	selections := selection.NewStore(2 * time.Hour)

	handlers.RegisterValidations()

	r := gin.Default()
	r.Static("/public", "./public")

	r.GET("/packages", handlers.GetPackages(packageCatalog))
	r.GET("/packages/stream", handlers.StreamPackages(packageCatalog))
	r.GET("/delivery-days", handlers.GetDeliveryDays(db))

	r.PUT("/selection", handlers.PutSelection(selections))
	r.GET("/selection", handlers.GetSelection(selections))

	r.POST("/orders", handlers.CreateOrder(db, selections))

	r.POST("/admin/login", handlers.AdminLogin(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/admin/refresh", handlers.AdminRefresh(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/admin/logout", handlers.AdminLogout(db))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(db, config.AppEnv.JWTSecret))
	{
		admin.GET("/me", handlers.AdminMe())

		admin.GET("/orders", handlers.GetAllOrders(db))
		admin.PATCH("/orders/:id", handlers.UpdateOrder(db))

		admin.GET("/packages", handlers.GetAllPackages(db))
		admin.PUT("/packages/:id", handlers.UpdatePackage(db))
		admin.PUT("/packages/:id/image", handlers.UploadPackageImage(db))

		admin.GET("/delivery-schedule", handlers.GetDeliverySchedule(db))
		admin.PUT("/delivery-schedule", handlers.UpdateDeliverySchedule(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
