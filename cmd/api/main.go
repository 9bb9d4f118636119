package main

import (
	"context"
	"log"
	"os"
	"time"

	"dinepos/internal/billing"
	"dinepos/internal/db"
	"dinepos/internal/menu"
	"dinepos/internal/middleware"
	"dinepos/internal/storage"
	"dinepos/internal/upsell"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"AI_GATEWAY_API_KEY",
		"AI_GATEWAY_MODEL",
		"AI_GATEWAY_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	menuRepo := menu.NewPostgresRepository(pgDB)
	billRepo := billing.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	menuService := menu.NewService(menuRepo, r2Client)
	billingService := billing.NewService(billRepo, billing.WhatsAppNotifier{})

	suggestionEngine := upsell.NewEngine(upsell.NewGatewayClient())
	menuService.SetCatalogListener(suggestionEngine)

	// ───────────────────────── HANDLERS ─────────────────────────
	menuHandler := menu.NewHandler(menuService)
	billingHandler := billing.NewHandler(billingService)
	upsellHandler := upsell.NewHandler(suggestionEngine, menuService)

	// ───────────────────────── MENU ROUTES ─────────────────────────
	menus := r.Group("/menu/items")
	{
		menus.GET("", menuHandler.List)

		managed := menus.Group("")
		managed.Use(
			middleware.AuthMiddleware(),
			middleware.RequireRole("MANAGER"),
		)
		{
			managed.POST("", menuHandler.Create)
			managed.PUT("/:id", menuHandler.Update)
			managed.DELETE("/:id", menuHandler.Delete)
			managed.PATCH("/:id/availability", menuHandler.ToggleAvailability)
			managed.POST("/:id/image", menuHandler.UploadImage)
		}
	}

	// ───────────────────────── BILLING ROUTES ─────────────────────────
	bills := r.Group("/bills")
	bills.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("STAFF", "MANAGER"),
	)
	{
		bills.POST("", billingHandler.CreateBill)
		bills.GET("/:id", billingHandler.GetBill)
		bills.PATCH("/:id", billingHandler.UpdateBill)
		bills.POST("/:id/pay", billingHandler.Pay)
		bills.POST("/:id/print", billingHandler.Print)
		bills.POST("/:id/receipt", billingHandler.SendReceipt)
	}

	// ───────────────────────── SUGGESTION ROUTES ─────────────────────────
	suggestions := r.Group("/suggestions")
	suggestions.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("STAFF", "MANAGER"),
	)
	{
		suggestions.GET("", upsellHandler.Get)
		suggestions.POST("/refresh", upsellHandler.Refresh)
	}

	// ───────────────────────── SUGGESTION WARM-UP ─────────────────────────
	go func() {
		items, err := menuRepo.List(context.Background())
		if err != nil {
			log.Printf("SUGGEST_WARMUP_SKIPPED: %v", err)
			return
		}
		suggestionEngine.CatalogChanged(items)
	}()

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	r.Run(":8000")
}
