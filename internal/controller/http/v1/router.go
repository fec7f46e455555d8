package httpv1

import (
	"net/http"
	"time"

	"github.com/Egor213/LogBoard/internal/controller/common/payloads"
	"github.com/Egor213/LogBoard/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const rateLimiterExpiresIn = 3 * time.Minute

type RouterConfig struct {
	CORSOrigins   []string
	GenerateRPS   float64
	GenerateBurst int
	Middlewares   []echo.MiddlewareFunc
}

func ConfigureRouter(handler *echo.Echo, services *service.Services, cfg RouterConfig) {
	handler.HideBanner = true
	handler.HidePort = true

	handler.Use(middleware.Recover())
	handler.Use(requestLogger())
	handler.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	handler.Use(cfg.Middlewares...)

	handler.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Log Dashboard API is running"})
	})
	handler.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "message": "API is operational"})
	})

	lc := NewLogController(services.Log)

	logs := handler.Group("/api/v1/logs")
	logs.GET("", lc.GetLogs)
	logs.POST("", lc.CreateLog)
	logs.GET("/aggregated", lc.GetAggregatedLogs)
	logs.GET("/download", lc.DownloadLogs)
	logs.POST("/generate", lc.GenerateLogs, generateLimiter(cfg.GenerateRPS, cfg.GenerateBurst))
	logs.GET("/:id", lc.GetLog)
	logs.PUT("/:id", lc.UpdateLog)
	logs.DELETE("/:id", lc.DeleteLog)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"remote_ip": v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithField("error", v.Error).Error("HTTP request failed")
				return nil
			}
			entry.Info("HTTP request")
			return nil
		},
	})
}

// generateLimiter throttles bulk generation per client IP.
func generateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(rps),
			Burst:     burst,
			ExpiresIn: rateLimiterExpiresIn,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, payloads.ErrorResponse{Detail: "rate limit exceeded"})
		},
	})
}
