package http

import (
	"errors"
	"net/http"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeDomainError maps a use case error to an HTTP response.
func writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errs.IsDomainValidation(err):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	default:
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// pathUUID parses the :id path parameter.
func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// includeDeletedParam reads the optional includeDeleted query flag.
func includeDeletedParam(ctx echo.Context) bool {
	return ctx.QueryParam("includeDeleted") == "true"
}
