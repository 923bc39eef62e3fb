package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/database"
	"github.com/colisgo/colisgo/internal/pkg/nats"
)

// Checker verifies one dependency is reachable
type Checker interface {
	Check(ctx context.Context) error
}

// Service aggregates dependency checkers for the health endpoints
type Service struct {
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs all checkers and reports per-dependency status
func (s *Service) Check(ctx context.Context) (map[string]string, bool) {
	results := make(map[string]string, len(s.checkers))
	healthy := true
	for name, checker := range s.checkers {
		if err := checker.Check(ctx); err != nil {
			results[name] = err.Error()
			healthy = false
		} else {
			results[name] = "ok"
		}
	}
	return results, healthy
}

// RegisterEndpoints mounts /health, /health/ready and /health/live
func RegisterEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	group := e.Group("/health")

	group.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"version":   version,
			"timestamp": time.Now().UTC(),
		})
	})

	group.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		results, healthy := svc.Check(ctx)
		status := http.StatusOK
		state := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			state = "not ready"
		}
		return c.JSON(status, map[string]interface{}{
			"status":       state,
			"service":      serviceName,
			"dependencies": results,
		})
	})

	group.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})
}

// PostgresChecker pings the database
type PostgresChecker struct {
	client *database.PostgresClient
}

func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

func (p *PostgresChecker) Check(ctx context.Context) error {
	return p.client.GetDB().PingContext(ctx)
}

// RedisChecker pings the cache
type RedisChecker struct {
	client *database.RedisClient
}

func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) Check(ctx context.Context) error {
	return r.client.GetClient().Ping(ctx).Err()
}

// NATSChecker verifies the broker connection is live
type NATSChecker struct {
	client *nats.Client
}

func NewNATSChecker(client *nats.Client) *NATSChecker {
	return &NATSChecker{client: client}
}

func (n *NATSChecker) Check(ctx context.Context) error {
	if !n.client.IsConnected() {
		return context.DeadlineExceeded
	}
	return nil
}
