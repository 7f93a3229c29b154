// launching the server, MongoDB, payment gateway wiring
package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creativeclicks/studio-backend/config"
	"github.com/creativeclicks/studio-backend/internal/database"
	"github.com/creativeclicks/studio-backend/internal/pkg/notify"
	"github.com/creativeclicks/studio-backend/internal/pkg/payment"
	"github.com/creativeclicks/studio-backend/internal/pkg/storage"
	"github.com/creativeclicks/studio-backend/internal/service"
	"github.com/creativeclicks/studio-backend/internal/transport"
	"github.com/gin-gonic/gin"

	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))

	// Secrets and connection strings come from the environment when set.
	cfg.Mongo.URI = config.GetEnv("MONGO_URL", cfg.Mongo.URI)
	cfg.Mongo.DBName = config.GetEnv("DB_NAME", cfg.Mongo.DBName)
	cfg.Stripe.APIKey = config.GetEnv("STRIPE_API_KEY", cfg.Stripe.APIKey)
	cfg.Stripe.WebhookSecret = config.GetEnv("STRIPE_WEBHOOK_SECRET", cfg.Stripe.WebhookSecret)
	cfg.Cors.Origins = config.GetEnv("CORS_ORIGINS", cfg.Cors.Origins)

	mongoClient, db, err := database.NewMongoDB(&cfg.Mongo)
	if err != nil {
		logrus.Fatalf("failed to initialize database: %s", err.Error())
	}

	mediaRepo := database.NewMediaRepository(db)
	workshopRepo := database.NewWorkshopRepository(db)
	registrationRepo := database.NewRegistrationRepository(db)
	transactionRepo := database.NewTransactionRepository(db)
	bookingRepo := database.NewBookingRepository(db)
	contactRepo := database.NewContactRepository(db)

	fileStorage := storage.NewFileStorage(cfg.Media.UploadDir)
	gateway := payment.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	notifier := notify.NewLogNotifier(cfg.Notify.Enabled)

	mediaService := service.NewMediaService(mediaRepo, fileStorage, cfg.Media.URLPrefix)
	workshopService := service.NewWorkshopService(workshopRepo, registrationRepo, transactionRepo, gateway, cfg.Stripe.Currency)
	bookingService := service.NewBookingService(bookingRepo, notifier, cfg.Notify.To)
	contactService := service.NewContactService(contactRepo, notifier, cfg.Notify.To)

	mediaHandler := transport.NewMediaHandler(mediaService)
	workshopHandler := transport.NewWorkshopHandler(workshopService)
	paymentHandler := transport.NewPaymentHandler(workshopService)
	bookingHandler := transport.NewBookingHandler(bookingService)
	contactHandler := transport.NewContactHandler(contactService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		routes := transport.InitRoutes(cfg, mediaHandler, workshopHandler, paymentHandler, bookingHandler, contactHandler)
		if err := srv.Run(cfg, routes); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

	database.Disconnect(mongoClient)
}
