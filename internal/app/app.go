package app

import (
	"context"
	"errors"
	"estudo_backend/internal/config"
	"estudo_backend/internal/controller"
	"estudo_backend/internal/repository"
	"estudo_backend/internal/service"
	"estudo_backend/internal/util"
	"estudo_backend/pkg/configwatcher"
	"estudo_backend/pkg/database"
	"estudo_backend/pkg/logger"
	"estudo_backend/pkg/monitoring"
	"estudo_backend/pkg/security"
	"estudo_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	ConfigDir       string
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	rateLimiter     *security.RateLimiter
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	progress *repository.ProgressRepository
	response *repository.ResponseRepository
	question *repository.QuestionRepository
}

type services struct {
	Auth     *service.AuthService
	User     *service.UserService
	Storage  *service.StorageService
	Question *service.QuestionService
	Response *service.ResponseService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	question *controller.QuestionController
	response *controller.ResponseController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		progress: repository.NewProgressRepository(db),
		response: repository.NewResponseRepository(db),
		question: repository.NewQuestionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	// Redis 未启用时使用内存黑名单
	var denylist service.TokenDenylist
	if rdb != nil {
		denylist = service.NewRedisDenylist(rdb)
	} else {
		denylist = service.NewMemoryDenylist()
	}

	s.Storage = service.NewStorageService(cfg)
	s.Auth = service.NewAuthService(repos.user, denylist, cfg)
	s.User = service.NewUserService(repos.user, s.Storage)
	s.Question = service.NewQuestionService(repos.question)
	s.Response = service.NewResponseService(repos.response, repos.progress)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.Auth),
		user:     controller.NewUserController(s.User),
		question: controller.NewQuestionController(s.Question),
		response: controller.NewResponseController(s.Response),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(a.rateLimiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func rateWindow(cfg *config.Config) time.Duration {
	return time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
}

// New wires the application around already opened connections.
// rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config:      cfg,
		ConfigDir:   "configs",
		DB:          db,
		Redis:       rdb,
		rateLimiter: security.NewRateLimiter(cfg.RateLimit.MaxRequests, rateWindow(cfg)),
	}

	util.SetDevelopmentMode(cfg.Server.IsDevelopment())

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(app.services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.ApplyMode(newCfg.Server.Mode)
		util.SetDevelopmentMode(newCfg.Server.IsDevelopment())
		app.rateLimiter.SetLimit(newCfg.RateLimit.MaxRequests, rateWindow(newCfg))
	})

	return app
}

// NewApp opens the database and redis from cfg and wires the application.
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize database", zap.Error(err))
		return nil, err
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}, nil
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Error("Failed to initialize redis", zap.Error(err))
		return nil, err
	}

	app := New(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
			return nil, err
		}
		app.tracer = tp
	}

	return app, nil
}

func (a *App) applyConfig(newCfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(newCfg)
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go func() {
		path := filepath.Join(a.ConfigDir, "config.yaml")
		if err := configwatcher.WatchConfig(watchCtx, path, a.applyConfig); err != nil {
			logger.Log.Warn("Config watcher disabled", zap.Error(err))
		}
	}()

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	logger.Log.Info("Server exiting")
}

// Close releases background workers and connections.
func (a *App) Close(ctx context.Context) {
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
