package app

import (
	"fmt"
	"strings"

	"career-coach/internal/config"
	"career-coach/internal/delivery/http/handler"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"
)

// multipartOverhead leaves room for boundaries and part headers around an
// upload of UploadMaxBytes.
const multipartOverhead = 64 << 10

type App struct {
	Fiber     *fiber.App
	container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:      c.Config.App.AppName,
		BodyLimit:    bodyLimit(c.Config.App),
		ErrorHandler: middleware.ErrorHandler,
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, container: c}
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	accessLog := middleware.NewAccessLogMiddleware(logger)
	errMw := middleware.NewErrorMiddleware(logger)

	app.Use(accessLog.Middleware())
	app.Use(errMw.Middleware())
	// Any origin, with credentials: the request origin is echoed back.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowCredentials: true,
	}))
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	routes.NewRegistry(
		handler.NewIngestHandler(c.Ingest, c.Config.App.UploadMaxBytes),
		handler.NewMatchHandler(c.Matching),
		handler.NewPlannerHandler(c.Planner),
		handler.NewQAHandler(c.QA),
	).Register(app)
}

func bodyLimit(cfg config.AppConfig) int {
	if cfg.UploadMaxBytes <= 0 {
		return 0
	}
	return cfg.UploadMaxBytes + multipartOverhead
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
