package main

import (
	"log"
	"os"
	"time"

	v1 "cfpanel/api/v1"
	"cfpanel/internal/account"
	"cfpanel/internal/action"
	"cfpanel/internal/auth"
	"cfpanel/internal/busy"
	"cfpanel/internal/cache"
	"cfpanel/internal/config"
	"cfpanel/internal/db"
	"cfpanel/internal/panel"
	"cfpanel/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Println("✓ Configuration loaded")

	// 2. Initialize MySQL
	if err := db.InitMySQL(cfg.MySQL.DSN); err != nil {
		log.Fatalf("Failed to initialize MySQL: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Migrate {
		if err := db.Migrate(db.DB); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
			os.Exit(1)
		}
		log.Println("✓ Database migrated")
	}

	// 3. Initialize Redis
	if err := cache.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
	defer cache.Close()

	// 4. Initialize JWT
	auth.InitJWT(cfg.JWT.Secret)

	// 5. Initialize Socket.IO and the busy indicator feeding it
	if err := ws.InitServer(); err != nil {
		log.Fatalf("Failed to initialize WebSocket server: %v", err)
		os.Exit(1)
	}

	tracker := busy.NewTracker()
	tracker.Subscribe(ws.BroadcastBusy)

	// 6. Wire the Cloudflare client source and action recorder
	logger := logrus.New().WithField("app", "cfpanel")
	store := account.NewStore(db.DB)
	source := panel.NewClientSource(
		store,
		tracker,
		cfg.Cloudflare.BaseURL,
		time.Duration(cfg.Cloudflare.TimeoutSec)*time.Second,
		logger,
	)
	recorder := action.NewRecorder(db.DB, ws.BroadcastToAll)

	// 7. Initialize Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// Socket.IO endpoint (token-authenticated)
	r.Any("/socket.io/*any", gin.WrapH(ws.WrapWithAuth(ws.Server)))

	// Setup API v1 routes
	v1.SetupRouter(r, v1.Deps{
		DB:       db.DB,
		Config:   cfg,
		Store:    store,
		Source:   source,
		Recorder: recorder,
	})

	log.Printf("✓ Server starting on %s", cfg.HTTPAddr)

	// Start server
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
