package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/ghayaruae/crm-server/docs"
	"github.com/ghayaruae/crm-server/internal/auth"
	"github.com/ghayaruae/crm-server/internal/clock"
	"github.com/ghayaruae/crm-server/internal/config"
	"github.com/ghayaruae/crm-server/internal/database"
	"github.com/ghayaruae/crm-server/internal/database/migration"
	handlers "github.com/ghayaruae/crm-server/internal/http/handler"
	"github.com/ghayaruae/crm-server/internal/http/middleware"
	"github.com/ghayaruae/crm-server/internal/logger"
	"github.com/ghayaruae/crm-server/internal/otel"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository/sqlstore"
	"github.com/ghayaruae/crm-server/internal/service"
	"github.com/ghayaruae/crm-server/internal/storage"
)

// @title CRM Server API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	log, err := logger.New(&logger.Config{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Env:      cfg.Log.Env,
		Location: loc,
	})
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("invalid logger configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	dialect, err := query.DialectFor(cfg.Database.Driver)
	if err != nil {
		log.Fatal().Err(err).Msg("unsupported database driver")
	}

	sqlDB, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer sqlDB.Close()

	if err := migration.EnsureMigrated(ctx, sqlDB, dialect, log, cfg.Database.Host); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	db := database.NewBreaker(sqlDB, database.DefaultBreakerConfig(), log)

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(ctx, cfg.MinIO, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	clk := clock.System(loc)
	tokens := auth.NewTokens(cfg.Auth.TokenSecret, cfg.Auth.TokenExpiresIn, clk)

	businesses := sqlstore.NewBusinessStore(db, dialect)
	orders := sqlstore.NewOrderStore(db, dialect)
	salesmen := sqlstore.NewSalesmanStore(db, dialect)
	targets := sqlstore.NewTargetStore(db, dialect)
	followups := sqlstore.NewFollowupStore(db, dialect)
	partRequests := sqlstore.NewPartRequestStore(db, dialect)

	deps := handlers.Deps{
		DB:       db,
		Tokens:   tokens,
		Salesmen: salesmen,
		Users:    service.NewUserService(salesmen, sqlstore.NewPrivilegeStore(db, dialect), tokens, log),
		Masters: service.NewMasterService(service.MasterRepos{
			Targets:      targets,
			Followups:    followups,
			PartRequests: partRequests,
			Salesmen:     salesmen,
		}, clk, log),
		Business:  service.NewBusinessService(businesses, orders, log),
		Documents: service.NewDocumentService(objStore, sqlstore.NewDocumentStore(db, dialect), businesses, clk, log),
		Dashboard: service.NewDashboardService(service.DashboardRepos{
			Businesses:   businesses,
			Orders:       orders,
			Salesmen:     salesmen,
			Targets:      targets,
			Followups:    followups,
			PartRequests: partRequests,
		}, clk, log),
		Reports: service.NewReportService(service.ReportRepos{
			Businesses: businesses,
			Orders:     orders,
			Salesmen:   salesmen,
			Targets:    targets,
			Followups:  followups,
			Inventory:  sqlstore.NewInventoryStore(db, dialect),
		}, cfg.CurrencyPrefix, log),
		Pagination:         pagination.LoadFromEnv(),
		LoginRatePerMinute: cfg.Auth.LoginRatePerMinute,
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	// RequestID adds/propagates X-Request-ID and puts a request logger on the context
	app.Use(middleware.RequestID(log))
	app.Use(promMiddleware.Handler())
	// JSON access log, one line per request
	app.Use(middleware.Logger(log))

	handlers.RegisterRoutes(app, deps)

	app.Get("/swagger/*", swaggerHandler())

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("event", "server_started").Str("addr", addr).Str("db_driver", dialect.Name).Send()
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	case <-ctx.Done():
		log.Info().Str("event", "server_stopping").Send()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
}

// swaggerHandler serves the Swagger UI with the request's host and scheme.
func swaggerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}
