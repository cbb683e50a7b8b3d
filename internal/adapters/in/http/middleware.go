package http

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dietrack/internal/core/ports"
	"dietrack/internal/generated/servers"
	"dietrack/internal/pkg/metrics"
	"dietrack/internal/pkg/tracing"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey    = "Idempotency-Key"
	HeaderIdempotentReplay  = "Idempotent-Replayed"
	maxIdempotencyKeyLength = 255
)

// routeLabel keeps metric and span cardinality bounded for unmatched paths.
func routeLabel(ctx echo.Context) string {
	if path := ctx.Path(); path != "" {
		return path
	}
	return "unmatched"
}

// AccessLog writes one zap entry per request.
func AccessLog(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			if err := next(ctx); err != nil {
				ctx.Error(err)
			}

			req := ctx.Request()
			res := ctx.Response()
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.String("route", routeLabel(ctx)),
				zap.Int("status", res.Status),
				zap.Int64("bytes_out", res.Size),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", ctx.RealIP()),
			}
			if id := res.Header().Get(echo.HeaderXRequestID); id != "" {
				fields = append(fields, zap.String("request_id", id))
			}

			switch {
			case res.Status >= http.StatusInternalServerError:
				logger.Error("request", fields...)
			case res.Status >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}

// Metrics records request count and latency per route.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)

			status := ctx.Response().Status
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			} else if err != nil {
				status = http.StatusInternalServerError
			}

			labels := []string{ctx.Request().Method, routeLabel(ctx), strconv.Itoa(status)}
			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			return err
		}
	}
}

// Tracing starts a server span per request, continuing a trace propagated by the caller.
func Tracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			parent := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))

			spanCtx, span := tracing.StartSpan(parent, req.Method+" "+routeLabel(ctx),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", req.Method),
					attribute.String("http.route", routeLabel(ctx)),
				),
			)
			defer span.End()

			ctx.SetRequest(req.WithContext(spanCtx))

			err := next(ctx)

			status := ctx.Response().Status
			span.SetAttributes(attribute.Int("http.status_code", status))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
			return err
		}
	}
}

type bodyRecorder struct {
	http.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a request repeated with the same
// Idempotency-Key on one of the given routes (e.g. "POST /api/v1/lots/:lotId/movements").
// Only successful responses are stored; any other outcome releases the key so the client
// can retry. When the store is unreachable the request runs unguarded.
func Idempotency(store ports.IdempotencyStore, logger *slog.Logger, routes ...string) echo.MiddlewareFunc {
	guarded := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		guarded[r] = struct{}{}
	}
	logger = logger.With("component", "idempotency_middleware")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			key := req.Header.Get(HeaderIdempotencyKey)
			if key == "" {
				return next(ctx)
			}
			if _, ok := guarded[req.Method+" "+ctx.Path()]; !ok {
				return next(ctx)
			}
			if len(key) > maxIdempotencyKeyLength {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: fmt.Sprintf("%s must not exceed %d characters", HeaderIdempotencyKey, maxIdempotencyKeyLength),
				})
			}

			scoped := req.Method + " " + req.URL.Path + " " + key
			stored, err := store.Reserve(req.Context(), scoped)
			switch {
			case errors.Is(err, ports.ErrIdempotencyKeyInFlight):
				return ctx.JSON(http.StatusConflict, servers.Error{
					Code:    http.StatusConflict,
					Message: "a request with this Idempotency-Key is still being processed",
				})
			case err != nil:
				logger.WarnContext(req.Context(), "Idempotency store unavailable", "error", err)
				return next(ctx)
			case stored != nil:
				ctx.Response().Header().Set(HeaderIdempotentReplay, "true")
				return ctx.Blob(stored.StatusCode, stored.ContentType, stored.Body)
			}

			recorder := &bodyRecorder{ResponseWriter: ctx.Response().Writer, body: new(bytes.Buffer)}
			ctx.Response().Writer = recorder

			err = next(ctx)

			res := ctx.Response()
			if err != nil || res.Status < http.StatusOK || res.Status >= http.StatusMultipleChoices {
				if releaseErr := store.Release(req.Context(), scoped); releaseErr != nil {
					logger.WarnContext(req.Context(), "Failed to release idempotency key", "error", releaseErr)
				}
				return err
			}

			if completeErr := store.Complete(req.Context(), scoped, ports.StoredResponse{
				StatusCode:  res.Status,
				ContentType: res.Header().Get(echo.HeaderContentType),
				Body:        recorder.body.Bytes(),
			}); completeErr != nil {
				logger.WarnContext(req.Context(), "Failed to store idempotent response", "error", completeErr)
			}
			return nil
		}
	}
}
