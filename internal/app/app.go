package app

import (
	"context"
	"errors"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/controller"
	"exam_prep_backend/internal/middleware"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"
	"exam_prep_backend/pkg/configwatcher"
	"exam_prep_backend/pkg/database"
	"exam_prep_backend/pkg/logger"
	"exam_prep_backend/pkg/monitoring"
	"exam_prep_backend/pkg/security"
	"exam_prep_backend/pkg/tracing"
	"fmt"
	"net/http"
	"os/signal"
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
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	limiter         *security.RateLimiter
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	subject  *repository.SubjectRepository
	question *repository.QuestionRepository
	dailySet *repository.DailyQuestionSetRepository
	attempt  *repository.AttemptRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	subject  *service.SubjectService
	question *service.QuestionService
	dailySet *service.DailySetService
	attempt  *service.AttemptService
	stats    *service.StatsService
	storage  *service.StorageService
}

type controllers struct {
	auth     *controller.AuthController
	student  *controller.StudentController
	dailySet *controller.DailySetController
	subject  *controller.SubjectController
	question *controller.QuestionController
	admin    *controller.AdminController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		subject:  repository.NewSubjectRepository(db),
		question: repository.NewQuestionRepository(db),
		dailySet: repository.NewDailyQuestionSetRepository(db),
		attempt:  repository.NewAttemptRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	cache := service.NewCache(rdb)
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.subject, cache)
	s.subject = service.NewSubjectService(repos.subject, repos.question, cache)
	s.question = service.NewQuestionService(repos.question, repos.subject, s.storage, cache)
	s.dailySet = service.NewDailySetService(repos.user, repos.question, repos.attempt, repos.dailySet, cfg.DailySet)
	s.attempt = service.NewAttemptService(repos.attempt)
	s.stats = service.NewStatsService(repos.user, repos.subject, repos.question, repos.dailySet, repos.attempt, cache)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		student:  controller.NewStudentController(s.user, s.attempt),
		dailySet: controller.NewDailySetController(s.dailySet),
		subject:  controller.NewSubjectController(s.subject),
		question: controller.NewQuestionController(s.question),
		admin:    controller.NewAdminController(s.user, s.stats),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.AccessLog())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.limiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	go a.limiter.Cleanup(time.Minute)
	router.Use(a.limiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// connectRedis 缓存是可选的，连不上只告警
func connectRedis(cfg *config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		logger.Log.Info("Redis cache disabled")
		return nil
	}
	rdb, err := database.InitRedis(cfg)
	if err != nil {
		logger.Log.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		return nil
	}
	return rdb
}

// NewApp 组装依赖；migrate 为 true 时先执行 AutoMigrate
func NewApp(cfg *config.Config, migrate bool) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	if migrate {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	rdb := connectRedis(&cfg.Redis)

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("initialize tracing: %w", err)
		}
		app.tracer = tp
	}

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(logger.ApplyConfig)
	return app, nil
}

func (a *App) watchConfig(ctx context.Context) {
	err := configwatcher.Watch(ctx, a.Config.Dir, func(cfg *config.Config) {
		for _, cb := range a.configCallbacks {
			cb(cfg)
		}
	})
	if err != nil {
		logger.Log.Warn("config hot reload disabled", zap.Error(err))
	}
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	a.watchConfig(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	a.close(shutdownCtx)
	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}

func (a *App) close(ctx context.Context) {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
	_ = logger.Log.Sync()
}
