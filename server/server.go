package server

import (
	"context"
	"os"
	"strings"
	"time"
	"ytopml/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

// SubscriptionLister reads archived subscriptions for the HTTP API.
type SubscriptionLister interface {
	List(ctx context.Context) ([]models.ArchivedSubscription, error)
}

type ServerConfig struct {

	// Path of the generated OPML document to serve
	OpmlPath string

	// Archive to list subscriptions from, may be nil when no database is
	// configured
	Archive SubscriptionLister
}

type SubscriptionsResponse struct {
	Subscriptions []models.ArchivedSubscription `json:"subscriptions"`
	Count         int                           `json:"count"`
}

// Returns a fiber.App instance serving the OPML document and the archive
func Server(config *ServerConfig) *fiber.App {

	app := fiber.New()

	// Middleware to track the latency of each request
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		log.WithFields(log.Fields{
			"method":  c.Method(),
			"route":   c.Route().Path,
			"latency": time.Since(start),
		}).Info("Request")
		return err
	})

	app.Use(requestid.New(requestid.ConfigDefault))
	app.Use(compress.New())

	// Cache GET responses, but never the health endpoint
	app.Use(cache.New(cache.Config{
		Next: func(c *fiber.Ctx) bool {
			if c.Method() != "GET" {
				return true
			}
			return strings.HasSuffix(c.Path(), "/health")
		},
		Expiration: 10 * time.Second,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]interface{}{
			"status": "ok",
		})
	})

	app.Get("/opml", func(c *fiber.Ctx) error {
		document, err := os.ReadFile(config.OpmlPath)
		if err != nil {
			log.WithFields(log.Fields{
				"path":  config.OpmlPath,
				"error": err,
			}).Error("Error reading OPML document")

			return c.Status(fiber.StatusNotFound).SendString("OPML document not generated yet")
		}

		c.Set("Content-Type", "text/x-opml; charset=utf-8")
		return c.Send(document)
	})

	app.Get("/subscriptions", func(c *fiber.Ctx) error {
		if config.Archive == nil {
			return c.Status(fiber.StatusNotFound).SendString("No archive database configured")
		}

		subscriptions, err := config.Archive.List(c.Context())
		if err != nil {
			log.WithFields(log.Fields{
				"error": err,
			}).Error("Error listing subscriptions")

			return c.Status(fiber.StatusInternalServerError).SendString("Error listing subscriptions")
		}

		return c.JSON(SubscriptionsResponse{
			Subscriptions: subscriptions,
			Count:         len(subscriptions),
		})
	})

	return app
}
