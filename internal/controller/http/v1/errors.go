package httpv1

import (
	"errors"
	"net/http"

	logginghelper "github.com/Egor213/LogBoard/internal/controller/common/logging"
	"github.com/Egor213/LogBoard/internal/controller/common/payloads"
	"github.com/Egor213/LogBoard/internal/service"
	"github.com/labstack/echo/v4"
)

var operationErrors = []error{
	service.ErrCannotGetLogs,
	service.ErrCannotAggregateLogs,
	service.ErrCannotGetLog,
	service.ErrCannotCreateLog,
	service.ErrCannotUpdateLog,
	service.ErrCannotDeleteLog,
	service.ErrCannotGenerateLogs,
}

func badRequest(c echo.Context, operation string, err error) error {
	logginghelper.LogInvalid(logginghelper.TransportHTTP, operation, err)
	return c.JSON(http.StatusBadRequest, payloads.ErrorResponse{Detail: err.Error()})
}

// serviceError maps a service error to a status code. The response carries only the
// operation sentinel; the wrapped cause goes to the log.
func serviceError(c echo.Context, operation string, err error) error {
	switch {
	case errors.Is(err, service.ErrLogNotFound):
		return c.JSON(http.StatusNotFound, payloads.ErrorResponse{Detail: service.ErrLogNotFound.Error()})
	case errors.Is(err, service.ErrLogAlreadyExists):
		return c.JSON(http.StatusConflict, payloads.ErrorResponse{Detail: service.ErrLogAlreadyExists.Error()})
	case errors.Is(err, service.ErrInvalidLog):
		return badRequest(c, operation, service.ErrInvalidLog)
	}

	logginghelper.LogError(logginghelper.TransportHTTP, operation, err)

	detail := "internal server error"
	for _, sentinel := range operationErrors {
		if errors.Is(err, sentinel) {
			detail = sentinel.Error()
			break
		}
	}
	return c.JSON(http.StatusInternalServerError, payloads.ErrorResponse{Detail: detail})
}
