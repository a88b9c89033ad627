package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/migrations"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/hashing"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	authHandler "blog-backend/internal/domains/auth/handler"
	authService "blog-backend/internal/domains/auth/service"
	categoryHandler "blog-backend/internal/domains/category/handler"
	categoryRepo "blog-backend/internal/domains/category/repository"
	categoryService "blog-backend/internal/domains/category/service"
	commentHandler "blog-backend/internal/domains/comment/handler"
	commentRepo "blog-backend/internal/domains/comment/repository"
	commentService "blog-backend/internal/domains/comment/service"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is built
// once at startup and shared by all requests.
type Container struct {
	// ========================================
	// INFRASTRUCTURE
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisCache
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Hasher     *hashing.Hasher

	// ========================================
	// REPOSITORIES
	// ========================================
	UserRepo     userRepo.RepositoryInterface
	CategoryRepo categoryRepo.RepositoryInterface
	PostRepo     postRepo.RepositoryInterface
	CommentRepo  commentRepo.RepositoryInterface

	// ========================================
	// SERVICES
	// ========================================
	AuthService     authService.ServiceInterface
	UserService     userService.ServiceInterface
	CategoryService categoryService.ServiceInterface
	PostService     postService.ServiceInterface
	CommentService  commentService.ServiceInterface

	// ========================================
	// HANDLERS
	// ========================================
	AuthHandler     *authHandler.AuthHandler
	UserHandler     *userHandler.UserHandler
	CategoryHandler *categoryHandler.CategoryHandler
	PostHandler     *postHandler.PostHandler
	CommentHandler  *commentHandler.CommentHandler
}

// NewContainer builds the graph in dependency order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.App.Environment, cfg.Log.Level)

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.App.RunMigrations {
		if err := migrations.Run(ctx, dbConfig.DSN()); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("Migrations applied", nil)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("Database connected", map[string]interface{}{"max_conns": dbConfig.MaxConns})

	// ========================================
	// STEP 2: REDIS
	// ========================================
	// Redis only backs the login throttle. An unreachable server is logged
	// and the client kept; go-redis reconnects on its own and the throttle
	// fails open in the meantime.
	c.Redis = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		logger.Warn("Redis connection failed (non-critical)", map[string]interface{}{"error": err.Error()})
	} else {
		logger.Info("Redis connected", map[string]interface{}{"host": cfg.Redis.Host})
	}
	c.Cache = c.Redis

	// ========================================
	// STEP 3: SECURITY PRIMITIVES
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	c.Hasher = hashing.NewHasher(cfg.Security.BcryptCost)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("Container initialized", nil)
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.PostRepo = postRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthService = authService.NewAuthService(
		c.UserRepo,
		c.Hasher,
		c.JWTManager,
		c.Cache,
		authService.ThrottleConfig{
			MaxAttempts: c.Config.Security.LoginMaxAttempts,
			Window:      c.Config.Security.LoginLockWindow,
		},
	)
	c.UserService = userService.NewUserService(c.UserRepo, c.Hasher)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.PostService = postService.NewPostService(c.PostRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
}

func (c *Container) initHandlers() {
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
}

// Cleanup releases the pool and the Redis client. Safe to call once the
// HTTP server has stopped.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("Failed to close database", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}

	logger.Info("Container cleanup completed", nil)
}
