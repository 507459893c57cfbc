package container

import (
	"context"
	"fmt"
	"time"

	"premios-backend/internal/config"
	infraCache "premios-backend/internal/infrastructure/cache"
	"premios-backend/internal/infrastructure/database"
	"premios-backend/pkg/cache"
	"premios-backend/pkg/jwt"
	"premios-backend/pkg/logger"

	"premios-backend/internal/domains/autor"
	autorHandler "premios-backend/internal/domains/autor/handler"
	autorRepo "premios-backend/internal/domains/autor/repository"
	autorService "premios-backend/internal/domains/autor/service"

	"premios-backend/internal/domains/avaliador"
	avaliadorHandler "premios-backend/internal/domains/avaliador/handler"
	avaliadorRepo "premios-backend/internal/domains/avaliador/repository"
	avaliadorService "premios-backend/internal/domains/avaliador/service"

	"premios-backend/internal/domains/premio"
	premioHandler "premios-backend/internal/domains/premio/handler"
	premioRepo "premios-backend/internal/domains/premio/repository"
	premioService "premios-backend/internal/domains/premio/service"

	"premios-backend/internal/domains/projeto"
	projetoHandler "premios-backend/internal/domains/projeto/handler"
	projetoRepo "premios-backend/internal/domains/projeto/repository"
	projetoService "premios-backend/internal/domains/projeto/service"

	"premios-backend/internal/domains/usuario"
	usuarioHandler "premios-backend/internal/domains/usuario/handler"
	usuarioRepo "premios-backend/internal/domains/usuario/repository"
	usuarioService "premios-backend/internal/domains/usuario/service"
)

// Container holds the full dependency graph. Everything in it is a
// singleton for the process lifetime.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AutorRepo     autor.Repository
	AvaliadorRepo avaliador.Repository
	PremioRepo    premio.Repository
	ProjetoRepo   projeto.Repository
	UsuarioRepo   usuario.Repository

	AutorService     autor.Service
	AvaliadorService avaliador.Service
	PremioService    premio.Service
	ProjetoService   projeto.Service
	UsuarioService   usuario.Service

	AutorHandler     *autorHandler.AutorHandler
	AvaliadorHandler *avaliadorHandler.AvaliadorHandler
	PremioHandler    *premioHandler.PremioHandler
	ProjetoHandler   *projetoHandler.ProjetoHandler
	UsuarioHandler   *usuarioHandler.UsuarioHandler
}

// NewContainer builds the dependency graph in order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)
	logger.Info("config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	if err := database.Migrate(cfg.Database.URL()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	c.AutorRepo = autorRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.AvaliadorRepo = avaliadorRepo.NewPostgresRepository(db.Pool)
	c.PremioRepo = premioRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.ProjetoRepo = projetoRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.UsuarioRepo = usuarioRepo.NewPostgresRepository(db.Pool)

	c.AutorService = autorService.NewAutorService(c.AutorRepo)
	c.AvaliadorService = avaliadorService.NewAvaliadorService(c.AvaliadorRepo)
	c.PremioService = premioService.NewPremioService(c.PremioRepo)
	c.ProjetoService = projetoService.NewProjetoService(c.ProjetoRepo, c.AutorRepo, c.PremioRepo, c.AvaliadorRepo)
	c.UsuarioService = usuarioService.NewUsuarioService(c.UsuarioRepo, c.JWTManager)

	c.AutorHandler = autorHandler.NewAutorHandler(c.AutorService)
	c.AvaliadorHandler = avaliadorHandler.NewAvaliadorHandler(c.AvaliadorService)
	c.PremioHandler = premioHandler.NewPremioHandler(c.PremioService)
	c.ProjetoHandler = projetoHandler.NewProjetoHandler(c.ProjetoService)
	c.UsuarioHandler = usuarioHandler.NewUsuarioHandler(c.UsuarioService)

	logger.Info("container initialized", nil)
	return c, nil
}

// Cleanup releases infrastructure resources, in reverse init order.
func (c *Container) Cleanup() {
	if redisCache, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := redisCache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("container cleaned up", nil)
}
