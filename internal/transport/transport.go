package transport

import (
	"errors"
	"net/http"

	"github.com/creativeclicks/studio-backend/config"
	"github.com/creativeclicks/studio-backend/internal/entity"
	"github.com/creativeclicks/studio-backend/internal/transport/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func InitRoutes(
	cfg *config.Config,
	mediaHandler *MediaHandler,
	workshopHandler *WorkshopHandler,
	paymentHandler *PaymentHandler,
	bookingHandler *BookingHandler,
	contactHandler *ContactHandler,
) *gin.Engine {

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Cors.Origins))
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	// Uploaded media is served verbatim from the content root.
	router.Static(cfg.Media.URLPrefix, cfg.Media.UploadDir)

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "Creative Clicks API",
				"status":  "running",
			})
		})

		media := api.Group("/media")
		{
			media.POST("/upload", mediaHandler.Upload)
			media.GET("", mediaHandler.List)
			media.DELETE("/:id", mediaHandler.Delete)
		}

		workshops := api.Group("/workshops")
		{
			workshops.POST("", workshopHandler.Create)
			workshops.GET("", workshopHandler.List)
			workshops.GET("/:id", workshopHandler.Get)
			workshops.POST("/:id/register", workshopHandler.Register)
		}

		api.GET("/payments/:session_id/status", paymentHandler.Status)
		api.POST("/webhook/stripe", paymentHandler.Webhook)

		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings", bookingHandler.List)

		api.POST("/contact", contactHandler.Submit)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "studio-backend",
		})
	})

	return router
}

// respondError maps service errors onto the HTTP surface. Gateway failures
// deliberately get a generic message; the detail stays in the server log.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrMediaNotFound),
		errors.Is(err, entity.ErrWorkshopNotFound),
		errors.Is(err, entity.ErrRegistrationNotFound),
		errors.Is(err, entity.ErrTransactionNotFound),
		errors.Is(err, entity.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrUnsupportedMediaType),
		errors.Is(err, entity.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidSignature):
		logrus.Errorf("webhook verification failed: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "webhook processing failed"})
	case errors.Is(err, entity.ErrGateway):
		logrus.Errorf("payment gateway error: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment processing failed"})
	default:
		logrus.Errorf("unexpected error: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// requestBaseURL rebuilds the public origin for checkout redirect URLs.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
