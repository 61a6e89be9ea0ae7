package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/libertyaulas/liberty-backoffice/internal/config"
	"github.com/libertyaulas/liberty-backoffice/internal/infra/database"
	"github.com/libertyaulas/liberty-backoffice/internal/infra/http/handlers"
	"github.com/libertyaulas/liberty-backoffice/internal/infra/http/middleware"
	"github.com/libertyaulas/liberty-backoffice/internal/infra/mail"
	"github.com/libertyaulas/liberty-backoffice/internal/infra/queue"
	"github.com/libertyaulas/liberty-backoffice/internal/infra/storage"
	"github.com/libertyaulas/liberty-backoffice/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.NewConfig()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	clientRepo := database.NewClientRepository(db)
	appointmentRepo := database.NewAppointmentRepository(db)
	packageRepo := database.NewPackageRepository(db)
	areaRepo := database.NewAreaRepository(db)
	videoRepo := database.NewVideoRepository(db)
	siteTextRepo := database.NewSiteTextRepository(db)

	// Outbound adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.MailNotifyTo)
	storageClient := storage.NewClient(cfg.StorageURL, cfg.StorageServiceKey)

	// Notification worker consumes lead-captured events and mails the staff.
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// Use cases
	captureLeadUC := usecase.NewCaptureLeadUseCase(leadRepo, producer)
	leadManager := usecase.NewLeadManager(leadRepo)
	convertLeadUC := usecase.NewConvertLeadUseCase(leadRepo, clientRepo)
	clientManager := usecase.NewClientManager(clientRepo)
	scheduler := usecase.NewAppointmentScheduler(appointmentRepo)
	contentManager := usecase.NewContentManager(packageRepo, areaRepo, videoRepo, siteTextRepo, storageClient)

	// Handlers
	leadHandler := handlers.NewLeadHandler(captureLeadUC, leadManager, convertLeadUC)
	clientHandler := handlers.NewClientHandler(clientManager)
	appointmentHandler := handlers.NewAppointmentHandler(scheduler)
	contentHandler := handlers.NewContentHandler(contentManager)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	// Public site
	r.Post("/contact", leadHandler.HandleCapture)
	r.Get("/packages", contentHandler.HandleListPackages)
	r.Get("/areas", contentHandler.HandleListAreas)
	r.Get("/videos", contentHandler.HandleListVideos)
	r.Get("/site-texts", contentHandler.HandleGetTexts)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Back-office
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AdminJWT(cfg.AdminJWTSecret))

		r.Get("/leads", leadHandler.HandleList)
		r.Get("/leads/{id}", leadHandler.HandleGet)
		r.Patch("/leads/{id}", leadHandler.HandleUpdate)
		r.Delete("/leads/{id}", leadHandler.HandleDelete)
		r.Post("/leads/{id}/convert", leadHandler.HandleConvert)

		r.Post("/clients", clientHandler.HandleCreate)
		r.Get("/clients", clientHandler.HandleList)
		r.Get("/clients/{id}", clientHandler.HandleGet)
		r.Patch("/clients/{id}", clientHandler.HandleUpdate)
		r.Delete("/clients/{id}", clientHandler.HandleDelete)

		r.Post("/appointments", appointmentHandler.HandleCreate)
		r.Get("/appointments", appointmentHandler.HandleList)
		r.Patch("/appointments/{id}", appointmentHandler.HandleUpdate)
		r.Post("/appointments/{id}/cancel", appointmentHandler.HandleCancel)
		r.Post("/appointments/{id}/complete", appointmentHandler.HandleComplete)
		r.Delete("/appointments/{id}", appointmentHandler.HandleDelete)

		r.Post("/packages", contentHandler.HandleCreatePackage)
		r.Put("/packages/{id}", contentHandler.HandleUpdatePackage)
		r.Delete("/packages/{id}", contentHandler.HandleDeletePackage)

		r.Post("/areas", contentHandler.HandleCreateArea)
		r.Put("/areas/{id}", contentHandler.HandleUpdateArea)
		r.Delete("/areas/{id}", contentHandler.HandleDeleteArea)

		r.Post("/videos", contentHandler.HandleCreateVideo)
		r.Put("/videos/{id}", contentHandler.HandleUpdateVideo)
		r.Delete("/videos/{id}", contentHandler.HandleDeleteVideo)

		r.Put("/site-texts", contentHandler.HandleSetTexts)
		r.Post("/uploads/{bucket}", contentHandler.HandleUploadImage)
	})

	addr := ":" + cfg.Port
	log.Printf("Liberty back-office listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
