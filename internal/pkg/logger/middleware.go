package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

// EchoMiddleware logs every HTTP request with latency and status, and tags
// the active New Relic transaction when one exists.
func EchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			latency := time.Since(start)
			status := c.Response().Status
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			txn := newrelic.FromContext(c.Request().Context())
			if txn != nil {
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			log := zl.WithTransaction(txn).With(
				zap.Int("status", status),
				zap.String("method", c.Request().Method),
				zap.String("path", path),
				zap.String("client_ip", c.RealIP()),
				zap.String("request_id", requestID),
				zap.Int64("latency_ms", latency.Milliseconds()),
			)

			switch {
			case status >= 500:
				if err != nil {
					log.Error("Server error", zap.Error(err))
				} else {
					log.Error("Server error")
				}
			case status >= 400:
				log.Warn("Client error")
			default:
				log.Info("Request processed")
			}

			return err
		}
	}
}
