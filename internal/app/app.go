package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/audit"
	"github.com/dinaskp/perikanan-backend/internal/cache"
	"github.com/dinaskp/perikanan-backend/internal/config"
	"github.com/dinaskp/perikanan-backend/internal/crud"
	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/middleware"
	"github.com/dinaskp/perikanan-backend/internal/module/activitylog"
	"github.com/dinaskp/perikanan-backend/internal/module/iki"
	"github.com/dinaskp/perikanan-backend/internal/module/iku"
	"github.com/dinaskp/perikanan-backend/internal/module/kelompoknelayan"
	"github.com/dinaskp/perikanan-backend/internal/module/komoditas"
	"github.com/dinaskp/perikanan-backend/internal/module/organisasi"
	"github.com/dinaskp/perikanan-backend/internal/module/pelatihan"
	"github.com/dinaskp/perikanan-backend/internal/module/penyuluh"
	"github.com/dinaskp/perikanan-backend/internal/module/role"
	"github.com/dinaskp/perikanan-backend/internal/module/sertifikasi"
	"github.com/dinaskp/perikanan-backend/internal/module/tools"
	"github.com/dinaskp/perikanan-backend/internal/module/upt"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
	"github.com/dinaskp/perikanan-backend/internal/storage"
)

const defaultStorageDir = "data/uploads"

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine  *gin.Engine
	db      *gorm.DB
	rdb     *redis.Client
	auditor *audit.Logger
	logger  *logger.Logger
	cfg     *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, database, cache, storage, the audit trail, every
// entity module, the tool surface, middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only. The whole schema pass runs in one
	// transaction so a failed migration leaves no half-created tables.
	if cfg.Server.Mode == gin.DebugMode {
		err := pkg.WithTx(db, func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&domain.Organisasi{},
				&domain.Role{},
				&domain.UnitPelaksanaTeknis{},
				&domain.Penyuluh{},
				&domain.KelompokNelayan{},
				&domain.Komoditas{},
				&domain.Pelatihan{},
				&domain.Sertifikasi{},
				&domain.IndikatorKinerjaUtama{},
				&domain.IndikatorKinerjaIndividu{},
				&domain.ActivityLog{},
			)
		})
		if err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Optional redis cache. A disabled cache means nil: entity services
	// then skip invalidation and the cache tools stay out of the catalog.
	rdb, err := config.SetupRedis(&cfg.Redis, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup redis: %w", err)
	}
	defer func() {
		if success || rdb == nil {
			return
		}
		if err := rdb.Close(); err != nil {
			slog.Error("redis close error", slog.Any("error", err))
		}
	}()

	var (
		appCache    *cache.Cache
		invalidator crud.Invalidator
	)
	if rdb != nil {
		appCache = cache.New(rdb, log.Logger)
		invalidator = appCache
	}

	// 5. File storage.
	storageDir := cfg.Storage.Dir
	if storageDir == "" {
		storageDir = defaultStorageDir
	}
	files, err := storage.NewDiskStorage(storageDir)
	if err != nil {
		return nil, fmt.Errorf("setup storage: %w", err)
	}

	// 6. Audit trail: store plus the detached background writer.
	auditStore := audit.NewStore(db)
	auditor := audit.NewLogger(auditStore, log.Logger, cfg.Audit.BufferSize)
	defer func() {
		if !success {
			auditor.Close()
		}
	}()

	// 7. Entity modules, then the tool catalog over their services.
	kelompokMod := kelompoknelayan.NewModule(db, auditor, invalidator)
	komoditasMod := komoditas.NewModule(db, auditor, invalidator)
	pelatihanMod := pelatihan.NewModule(db, auditor, invalidator)
	sertifikasiMod := sertifikasi.NewModule(db, auditor, invalidator)
	organisasiMod := organisasi.NewModule(db, auditor, invalidator)
	roleMod := role.NewModule(db, auditor, invalidator)
	uptMod := upt.NewModule(db, auditor, invalidator)
	ikuMod := iku.NewModule(db, auditor, invalidator)
	ikiMod := iki.NewModule(db, auditor, invalidator)
	penyuluhMod := penyuluh.NewModule(db, auditor, invalidator)

	registry := tools.NewRegistry()
	tools.RegisterEntity(registry, kelompokMod.Service())
	tools.RegisterEntity(registry, komoditasMod.Service())
	tools.RegisterEntity(registry, pelatihanMod.Service())
	tools.RegisterEntity(registry, sertifikasiMod.Service())
	tools.RegisterEntity(registry, organisasiMod.Service())
	tools.RegisterEntity(registry, roleMod.Service())
	tools.RegisterEntity(registry, uptMod.Service())
	tools.RegisterEntity(registry, ikuMod.Service())
	tools.RegisterEntity(registry, ikiMod.Service())
	tools.RegisterEntity(registry, penyuluhMod.Service())
	toolsMod := tools.NewModule(registry, appCache, files, auditStore)

	modules := []Module{
		kelompokMod,
		komoditasMod,
		pelatihanMod,
		sertifikasiMod,
		organisasiMod,
		roleMod,
		uptMod,
		ikuMod,
		ikiMod,
		penyuluhMod,
		activitylog.NewModule(auditStore),
		toolsMod,
	}

	// 8. Create Gin engine with custom middleware (not gin.Default()).
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// In release mode, when no allowlist is configured, default to deny
	// cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
		middleware.Actor(),
	)

	// 9. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules: modules,
		DB:      db,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine:  engine,
		db:      db,
		rdb:     rdb,
		auditor: auditor,
		logger:  log,
		cfg:     cfg,
	}, nil
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout, drains the audit
// logger, and closes the redis and database connections.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown error", slog.Any("error", err))
		}
	}

	// Drain pending audit entries before the database goes away.
	if a.auditor != nil {
		a.auditor.Close()
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.Any("error", err))
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logger.Error("database close error", slog.Any("error", err))
			} else {
				a.logger.Info("database connection closed")
			}
		}
	}

	a.logger.Info("server stopped")
	if err := a.logger.Close(); err != nil {
		slog.Error("logger close error", slog.Any("error", err))
	}

	return runErr
}
