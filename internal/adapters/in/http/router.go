package http

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"dietrack/internal/core/ports"
	"dietrack/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

const APIBaseURL = "/api/v1"

var registerSwaggerOnce sync.Once

// RouterConfig carries the collaborators of NewRouter. Idempotency may be nil, in which case
// Idempotency-Key headers are ignored.
type RouterConfig struct {
	Server       *Server
	Idempotency  ports.IdempotencyStore
	AccessLogger *zap.Logger
	Logger       *slog.Logger
}

// NewRouter builds the echo instance serving the API under /api/v1 together with
// /health, /metrics, /openapi.json and the swagger UI at /swagger/.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	document, err := swagger.MarshalJSON()
	if err != nil {
		return nil, err
	}
	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(document),
			LeftDelim:        "{{{{",
			RightDelim:       "}}}}",
		})
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(e)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(AccessLog(cfg.AccessLogger))
	e.Use(Tracing())
	e.Use(Metrics())
	if cfg.Idempotency != nil {
		e.Use(Idempotency(cfg.Idempotency, cfg.Logger, http.MethodPost+" "+APIBaseURL+"/lots/:lotId/movements"))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, document)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, cfg.Server, APIBaseURL)
	return e, nil
}

// errorHandler renders framework errors (unknown routes, malformed parameters) in the
// same shape as application errors.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(code)
		} else {
			respErr = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if respErr != nil {
			e.Logger.Error(respErr)
		}
	}
}
