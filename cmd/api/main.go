package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"nurturebirth/internal/database"
	"nurturebirth/internal/mailer"
	"nurturebirth/internal/middleware"
	"nurturebirth/internal/modules/availability"
	"nurturebirth/internal/modules/calendar"
	cataloghttp "nurturebirth/internal/modules/catalog"
	"nurturebirth/internal/modules/checkout"
	"nurturebirth/internal/modules/downloads"
	"nurturebirth/internal/modules/newsletter"
	"nurturebirth/internal/modules/webhook"
	"nurturebirth/internal/repository"
	"nurturebirth/internal/scheduler"
	"nurturebirth/internal/storage"
)

func main() {
	_ = godotenv.Load()

	db, err := database.Connect(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	loggerf := log.Printf

	eventLedger := repository.NewWebhookEventRepository(db)

	calClient := scheduler.NewClient()
	if !calClient.Configured() {
		log.Println("scheduler: CALCOM_API_KEY not set, availability uses mock data and bookings are not auto-created")
	}

	mail := mailer.New(loggerf)
	presigner := storage.NewPresigner()
	if !presigner.Configured() {
		log.Println("storage: DOWNLOADS_BUCKET not set, download endpoints will fail")
	}

	mockGen := availability.NewMockGenerator(time.Now().UnixNano())
	availabilityService := availability.NewService(calClient, mockGen, loggerf)
	availabilityHandler := availability.NewHandler(availabilityService)

	checkoutService := checkout.NewService(checkout.NewStripeSessionAPI(), loggerf)
	checkoutHandler := checkout.NewHandler(checkoutService)

	webhookService := webhook.NewService(mail, calClient, eventLedger, loggerf)
	webhookHandler := webhook.NewHandler(webhookService, loggerf)

	downloadsService := downloads.NewService(mail, presigner, checkoutService, loggerf)
	downloadsHandler := downloads.NewHandler(downloadsService, loggerf)

	newsletterService := newsletter.NewService(mail, loggerf)
	newsletterHandler := newsletter.NewHandler(newsletterService)

	catalogHandler := cataloghttp.NewHandler()
	calendarHandler := calendar.NewHandler()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)
		checkoutHandler.RegisterRoutes(v1)
		webhookHandler.RegisterRoutes(v1)
		calendarHandler.RegisterRoutes(v1)
		downloadsHandler.RegisterRoutes(v1)
		newsletterHandler.RegisterRoutes(v1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
