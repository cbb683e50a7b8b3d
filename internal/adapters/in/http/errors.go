package http

import (
	"errors"
	"net/http"

	"dietrack/internal/core/domain/model/dietype"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/operator"
	"dietrack/internal/core/domain/model/productionorder"
	"dietrack/internal/core/domain/model/workcenter"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/core/domain/services"
	"dietrack/internal/generated/servers"
	"dietrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error onto a stable HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidExpansionRequest),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, operator.ErrOperatorInactive):
		return http.StatusForbidden
	case errors.Is(err, workorder.ErrSequenceDependencyViolation),
		errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, workcenter.ErrWorkCenterUnavailable),
		errors.Is(err, workcenter.ErrWorkCenterInUse),
		errors.Is(err, productionorder.ErrNotExpanded),
		errors.Is(err, dietype.ErrDieTypeInactive),
		errors.Is(err, dietype.ErrComponentTypeNotAllowed),
		errors.Is(err, errs.ErrDuplicateIdentifier),
		errors.Is(err, errs.ErrPersistenceConflict),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func (s *Server) invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
