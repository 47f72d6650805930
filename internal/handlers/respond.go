package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hilbertsen/teamcal/internal/logging"
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

func ok[T any](c *drift.Context, result T) {
	_ = c.JSON(http.StatusOK, dto.OK(result))
}

func fail(c *drift.Context, status int, message string) {
	_ = c.JSON(status, dto.Failure(message))
}

// serviceError answers validation failures with 400 and anything else with 500.
func serviceError(c *drift.Context, operation string, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		fail(c, http.StatusBadRequest, verr.Error())
		return
	}
	logging.Component(c.Request.Context(), slog.Default(), "handlers", operation).Error("request failed", "error", err)
	fail(c, http.StatusInternalServerError, "internal error")
}

func paramID(c *drift.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
