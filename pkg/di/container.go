package di

import (
	"context"
	"time"

	"photo-dashboard/application/serviceimpl"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/infrastructure/memory"
	"photo-dashboard/infrastructure/photoapi"
	"photo-dashboard/infrastructure/redis"
	"photo-dashboard/infrastructure/websocket"
	"photo-dashboard/infrastructure/worker"
	"photo-dashboard/interfaces/api/handlers"
	websocketHandler "photo-dashboard/interfaces/api/websocket"
	"photo-dashboard/pkg/config"
	"photo-dashboard/pkg/logger"
	"photo-dashboard/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	RedisClient      *redis.RedisClient
	PhotoClient      *photoapi.PhotoClient
	WebSocketManager *websocket.Manager
	JobScheduler     scheduler.JobScheduler

	// Repositories
	SessionRepository    repositories.SessionRepository
	DatasetJobRepository repositories.DatasetJobRepository

	// Services
	SessionService services.SessionService
	DatasetService *serviceimpl.DatasetServiceImpl

	// Workers
	DatasetWorker *worker.DatasetWorker
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	if err := c.initWorkers(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Startup("config_loaded", "Configuration loaded", map[string]interface{}{
		"env":     cfg.App.Env,
		"backend": cfg.Backend.BaseURL,
	})
	return nil
}

func (c *Container) initLogger() error {
	level := logger.ParseLevel(c.Config.Log.Level)
	if err := logger.Init(c.Config.Log.Dir, c.Config.Log.Console, level); err != nil {
		return err
	}
	logger.Startup("logger_init", "Logger initialized", map[string]interface{}{
		"dir":   c.Config.Log.Dir,
		"level": string(level),
	})
	return nil
}

func (c *Container) initInfrastructure() error {
	c.PhotoClient = photoapi.NewPhotoClient(c.Config.Backend.BaseURL, c.Config.Backend.Timeout, c.Config.Dataset.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if c.PhotoClient.IsAvailable(ctx) {
		logger.Startup("backend_reachable", "Photo backend reachable", map[string]interface{}{"url": c.Config.Backend.BaseURL})
	} else {
		logger.StartupWarn("backend_unreachable", "Photo backend not reachable, requests will fail until it is up", map[string]interface{}{"url": c.Config.Backend.BaseURL})
	}

	// Redis is optional: without it session snapshots stay in process memory
	if c.Config.Redis.Enabled {
		client := redis.NewRedisClient(redis.RedisConfig{
			Host:     c.Config.Redis.Host,
			Port:     c.Config.Redis.Port,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		if err := client.Ping(ctx); err != nil {
			logger.StartupWarn("redis_connection_failed", "Redis connection failed, using in-memory session store", map[string]interface{}{"error": err.Error()})
			client.Close()
		} else {
			c.RedisClient = client
			logger.Startup("redis_connected", "Redis connected", nil)
		}
	}

	c.WebSocketManager = websocket.NewManager()
	return nil
}

func (c *Container) initRepositories() error {
	if c.RedisClient != nil {
		c.SessionRepository = redis.NewSessionRepository(c.RedisClient.Client())
	} else {
		c.SessionRepository = memory.NewSessionRepository()
	}
	c.DatasetJobRepository = memory.NewDatasetJobRepository()
	logger.Startup("repositories_initialized", "Repositories initialized", map[string]interface{}{
		"session_store": c.sessionStoreName(),
	})
	return nil
}

func (c *Container) sessionStoreName() string {
	if c.RedisClient != nil {
		return "redis"
	}
	return "memory"
}

func (c *Container) initServices() error {
	c.SessionService = serviceimpl.NewSessionService(
		c.PhotoClient,
		c.PhotoClient,
		c.SessionRepository,
		c.WebSocketManager,
		c.Config.Session.SnapshotTTL,
	)

	// The queue is attached once the worker exists
	c.DatasetService = serviceimpl.NewDatasetService(
		c.PhotoClient,
		c.DatasetJobRepository,
		nil,
		c.WebSocketManager,
		c.Config.Dataset.Timeout,
	)

	logger.Startup("services_initialized", "Services initialized", nil)
	return nil
}

func (c *Container) initScheduler() error {
	c.JobScheduler = scheduler.NewJobScheduler()

	err := scheduler.ScheduleSessionSweep(c.JobScheduler, c.SessionService, c.Config.Session.SweepSchedule, c.Config.Session.IdleTimeout)
	if err != nil {
		return err
	}

	c.JobScheduler.Start()
	logger.Startup("scheduler_started", "Job scheduler started", map[string]interface{}{
		"session_sweep": c.Config.Session.SweepSchedule,
		"idle_timeout":  c.Config.Session.IdleTimeout.String(),
	})
	return nil
}

func (c *Container) initWorkers() error {
	c.DatasetWorker = worker.NewDatasetWorker(c.Config.Dataset.QueueSize, c.Config.Dataset.MaxConcurrent)
	c.DatasetService.SetQueue(c.DatasetWorker)
	c.DatasetWorker.Start(c.DatasetService.Run, c.DatasetService.Fail)
	return nil
}

func (c *Container) Cleanup() error {
	logger.Startup("cleanup_started", "Starting cleanup...", nil)

	// Stop dataset worker
	if c.DatasetWorker != nil && c.DatasetWorker.IsRunning() {
		c.DatasetWorker.Stop()
	}

	// Stop scheduler
	if c.JobScheduler != nil {
		if c.JobScheduler.IsRunning() {
			c.JobScheduler.Stop()
			logger.Startup("scheduler_stopped", "Job scheduler stopped", nil)
		} else {
			logger.Startup("scheduler_already_stopped", "Job scheduler was already stopped", nil)
		}
	}

	// Persist every live session so tabs can reattach after restart
	if c.SessionService != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		saved := c.SessionService.Sweep(ctx, 0)
		cancel()
		logger.Startup("sessions_persisted", "Live sessions saved", map[string]interface{}{"count": saved})
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.StartupWarn("redis_close_failed", "Failed to close Redis connection", map[string]interface{}{"error": err.Error()})
		} else {
			logger.Startup("redis_closed", "Redis connection closed", nil)
		}
	}

	logger.Startup("cleanup_completed", "Cleanup completed", nil)
	logger.Default().Close()
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		SessionService: c.SessionService,
		DatasetService: c.DatasetService,
		Connections:    c.WebSocketManager,
	}
}

// GetMediaLocator returns the builder for backend-served image addresses
func (c *Container) GetMediaLocator() repositories.MediaLocator {
	return c.PhotoClient
}

func (c *Container) GetHealthHandler() *handlers.HealthHandler {
	return handlers.NewHealthHandler(c.PhotoClient, c.RedisClient, c.SessionService, c.WebSocketManager, c.JobScheduler)
}

func (c *Container) GetWebSocketHandler() *websocketHandler.WebSocketHandler {
	return websocketHandler.NewWebSocketHandler(c.WebSocketManager, c.SessionService)
}
