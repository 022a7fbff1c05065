package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"game-database/core/loader"
	"game-database/core/logger"
	"game-database/core/middleware/auth"
	"game-database/core/middleware/rayid"
	"game-database/feature/lookup"
	"game-database/feature/schema"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Game Database API
// @version 1.0
// @description Read API over the game server database.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the game database server",
	Long:  `Connects to the game database and starts the HTTP lookup API.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := newRuntime()
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer rt.close("shutdown")
		logg := rt.logger
		zap.ReplaceGlobals(logg)

		if !rt.cfg.Server.IsValidPort() {
			logg.Fatal("Invalid server port", zap.String("port", rt.cfg.Server.Port))
		}

		// The connection is re-established on demand, so a failure here is not fatal.
		if err := rt.db.Connect(cmd.Context()); err != nil {
			logg.Warn("Initial database connection failed", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(lookup.NewFeature(rt.db, logg))
		mgr.Register(schema.NewFeature(rt.manager, rt.mu, logg))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
