package handlers

import (
	"net/http"

	"github.com/anonto42/nano-forum/backend/internal/metrics"
	"github.com/anonto42/nano-forum/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// handleServiceError converts service errors to echo HTTP errors
func handleServiceError(err error) error {
	switch {
	case services.IsInvalidArgument(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case services.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case services.IsForbidden(err):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case services.IsConflict(err):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		logrus.WithError(err).Error("forum service error")
		return echo.NewHTTPError(http.StatusInternalServerError, "An internal error occurred")
	}
}

// recordMutation counts one mutation attempt by its outcome
func recordMutation(mutation string, err error) {
	metrics.RecordMutation(mutation, outcome(err))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case services.IsInvalidArgument(err):
		return metrics.OutcomeInvalidArgument
	case services.IsNotFound(err):
		return metrics.OutcomeNotFound
	case services.IsForbidden(err):
		return metrics.OutcomeForbidden
	case services.IsConflict(err):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}
