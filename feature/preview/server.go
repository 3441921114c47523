package preview

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"html-banner-generator/core/logger"
)

// Serve hosts the output root over HTTP for local browsing of the preview
// page and generated banners. It blocks until the server stops.
func Serve(outputRoot, port string, l *zap.Logger) error {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	app.Use(logger.RequestLogger(l))
	app.Static("/", outputRoot, fiber.Static{Browse: true})

	l.Info("preview server listening",
		zap.String("port", port),
		zap.String("root", outputRoot),
	)
	return app.Listen(":" + port)
}
