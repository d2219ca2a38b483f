package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"photo-dashboard/domain/services"
	"photo-dashboard/infrastructure/redis"
	"photo-dashboard/pkg/scheduler"
)

// BackendProbe reports whether the photo backend answers
type BackendProbe interface {
	IsAvailable(ctx context.Context) bool
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	backend     BackendProbe
	redisClient *redis.RedisClient
	sessions    services.SessionService
	connections ConnectionRegistry
	jobs        scheduler.JobScheduler
}

// NewHealthHandler creates a new health handler. Any dependency may be nil.
func NewHealthHandler(
	backend BackendProbe,
	redisClient *redis.RedisClient,
	sessions services.SessionService,
	connections ConnectionRegistry,
	jobs scheduler.JobScheduler,
) *HealthHandler {
	return &HealthHandler{
		backend:     backend,
		redisClient: redisClient,
		sessions:    sessions,
		connections: connections,
		jobs:        jobs,
	}
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status  string `json:"status"` // "ok", "error", "unavailable"
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// DetailedHealthResponse represents detailed health check response
type DetailedHealthResponse struct {
	Status     string                     `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentHealth `json:"components"`
	Metrics    HealthMetrics              `json:"metrics"`
}

type HealthMetrics struct {
	ActiveSessions       int                           `json:"active_sessions"`
	WebSocketConnections int                           `json:"websocket_connections"`
	ScheduledJobs        map[string]*scheduler.JobInfo `json:"scheduled_jobs,omitempty"`
}

// Health is the liveness probe
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Server is running",
		"service": "Photo Dashboard API",
	})
}

// DetailedHealth checks every dependency. The backend is critical; a lost snapshot store
// only degrades the service.
// @Router /health/detailed [get]
func (h *HealthHandler) DetailedHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 10*time.Second)
	defer cancel()

	response := DetailedHealthResponse{
		Timestamp:  time.Now(),
		Components: make(map[string]ComponentHealth),
	}

	backendHealth := h.checkBackend(ctx)
	response.Components["photo_backend"] = backendHealth

	redisHealth := h.checkRedis(ctx)
	response.Components["redis"] = redisHealth

	if h.sessions != nil {
		response.Metrics.ActiveSessions = h.sessions.Count()
	}
	if h.connections != nil {
		response.Metrics.WebSocketConnections = h.connections.ConnectionCount()
	}
	if h.jobs != nil {
		response.Metrics.ScheduledJobs = h.jobs.ListJobs()
	}

	switch {
	case backendHealth.Status != "ok":
		response.Status = "unhealthy"
	case redisHealth.Status == "error":
		response.Status = "degraded"
	default:
		response.Status = "healthy"
	}

	statusCode := fiber.StatusOK
	if response.Status == "unhealthy" {
		statusCode = fiber.StatusServiceUnavailable
	}
	return c.Status(statusCode).JSON(response)
}

func (h *HealthHandler) checkBackend(ctx context.Context) ComponentHealth {
	if h.backend == nil {
		return ComponentHealth{Status: "error", Message: "Photo backend not configured"}
	}

	start := time.Now()
	if !h.backend.IsAvailable(ctx) {
		return ComponentHealth{Status: "error", Message: "Photo backend unreachable"}
	}
	return ComponentHealth{
		Status:  "ok",
		Message: "Connected",
		Latency: time.Since(start).String(),
	}
}

func (h *HealthHandler) checkRedis(ctx context.Context) ComponentHealth {
	if h.redisClient == nil {
		return ComponentHealth{
			Status:  "unavailable",
			Message: "Redis not configured, sessions kept in memory",
		}
	}

	start := time.Now()
	if err := h.redisClient.Ping(ctx); err != nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Redis ping failed: " + err.Error(),
		}
	}
	return ComponentHealth{
		Status:  "ok",
		Message: "Connected",
		Latency: time.Since(start).String(),
	}
}
