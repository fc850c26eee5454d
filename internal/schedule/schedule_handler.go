package schedule

import (
	"net/http"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/middleware"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service    Service
	subscriber Subscriber
	logger     *zap.Logger
}

func NewHandler(service Service, subscriber Subscriber, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("schedule.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.handler")
	}
	return &Handler{service: service, subscriber: subscriber, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("schedule request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("http schedule validation failed", zap.String("path", c.FullPath()), zap.Error(err))
	h.writeServiceError(c, apperror.MapValidationError(err))
}

// startParam reads a YYYY-MM-DD query or path value, defaulting to the
// current week.
func startParam(raw string) (time.Time, error) {
	if raw == "" {
		return dateutil.MondayOf(time.Now()), nil
	}
	return dateutil.ParseDBDate(raw)
}

func (h *Handler) GetWindow(c *gin.Context) {
	start, err := startParam(c.Query("start"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetWindow(c.Request.Context(), start)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Mine(c *gin.Context) {
	start, err := startParam(c.Query("start"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Mine(c.Request.Context(), middleware.ActorFrom(c), start)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetEntry(c *gin.Context) {
	resp, err := h.service.GetEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SaveCell(c *gin.Context) {
	var req SaveCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.SaveCell(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ClearCell(c *gin.Context) {
	err := h.service.ClearCell(c.Request.Context(), middleware.ActorFrom(c), c.Param("gymId"), c.Param("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ClearWeek(c *gin.Context) {
	start, err := dateutil.ParseDBDate(c.Param("start"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ClearWeek(c.Request.Context(), middleware.ActorFrom(c), start)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Conflicts(c *gin.Context) {
	gymID := c.Query("gym_id")
	if gymID == "" {
		h.writeServiceError(c, apperror.RequiredField("gym_id"))
		return
	}

	resp, err := h.service.Conflicts(c.Request.Context(), gymID, c.Query("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
