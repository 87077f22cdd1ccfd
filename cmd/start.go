package cmd

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"music-downloader/core/bootstrap"
	"music-downloader/core/cache"
	"music-downloader/core/config"
	"music-downloader/core/logger"
	"music-downloader/core/middleware/auth"
	"music-downloader/core/middleware/ratelimit"
	"music-downloader/core/middleware/rayid"
	"music-downloader/core/spotify"
	"music-downloader/core/youtube"

	"music-downloader/feature/download"
	"music-downloader/feature/health"
	"music-downloader/feature/tracks"
	"music-downloader/feature/videos"

	"music-downloader/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "music-downloader/docs/swagger"
)

// @title Music Downloader API
// @version 1.0
// @description API for searching and downloading YouTube audio as tagged MP3s.
// @host localhost:4000
// @BasePath /

var (
	startHost   string
	startPort   string
	startReload bool
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the music downloader server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// Flags passed by the bootstrap launcher win over the environment.
		if cmd.Flags().Changed("host") {
			cfg.Server.Host = startHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = startPort
		}
		if startReload {
			cfg.Server.Reload = true
		}
		if cfg.Server.Reload {
			// Reload mode doubles as development mode: readable console
			// output at debug level. The restart-on-change part is owned
			// by the bootstrap supervisor, not the server itself.
			cfg.Log.Level = "debug"
			cfg.Log.Format = "console"
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if cfg.Server.MockMode {
			logg.Warn("Mock mode enabled, search endpoints serve fixture data", zap.String("file", cfg.Server.MockFile))
		}

		// 3. Initialize Cache
		store, err := cache.New(cfg.Cache, logg)
		if err != nil {
			logg.Fatal("Failed to initialize cache", zap.Error(err))
		}

		// 4. Initialize External Clients
		yt := youtube.NewClient(cfg.YouTube)
		sp := spotify.NewClient(cfg.Spotify, store, logg)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		mockFile := ""
		if cfg.Server.MockMode {
			mockFile = cfg.Server.MockFile
		}

		mgr.Register(health.NewFeature())
		mgr.Register(videos.NewFeature(yt, store, logg, mockFile))
		mgr.Register(tracks.NewFeature(sp, logg, mockFile))
		mgr.Register(download.NewFeature(yt, cfg.Media, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Rate Limiting (download and the upstream searches are expensive)
		if cfg.Server.RateRPS > 0 {
			limits := ratelimit.NewStore(cfg.Server.RateRPS, cfg.Server.RateBurst)
			app.Use(ratelimit.New(limits, time.Second))
			defer limits.Close()
		}

		// 4. Auth (optional, protects the API when a key is configured)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		addr := cfg.Server.Addr()
		go func() {
			logg.Info("Starting server",
				zap.String("host", cfg.Server.Host),
				zap.String("port", cfg.Server.Port),
				zap.Bool("reload", cfg.Server.Reload),
			)
			if err := app.Listen(addr); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	startCmd.Flags().StringVar(&startHost, "host", "", "Bind address (overrides SERVER_HOST)")
	startCmd.Flags().StringVar(&startPort, "port", strconv.Itoa(bootstrap.DefaultPort), "Listen port (overrides SERVER_PORT)")
	startCmd.Flags().BoolVar(&startReload, "reload", false, "Enable reload/development mode")
	RootCmd.AddCommand(startCmd)
}
