package presence

import (
	"net/http"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/middleware"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("presence.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("presence.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Debug("presence request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Focus(c *gin.Context) {
	view, err := h.service.Focus(c.Request.Context(), middleware.ActorFrom(c), c.Param("cell"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Heartbeat(c *gin.Context) {
	view, err := h.service.Heartbeat(c.Request.Context(), middleware.ActorFrom(c), c.Param("cell"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Blur(c *gin.Context) {
	view, err := h.service.Blur(c.Request.Context(), middleware.ActorFrom(c), c.Param("cell"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Presence(c *gin.Context) {
	view, err := h.service.Presence(c.Request.Context(), middleware.ActorFrom(c), c.Param("cell"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

const streamKeepAlive = 25 * time.Second

// Stream pushes the caller's view of a cell as server-sent events.
func (h *Handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	views, closeFn, err := h.service.Watch(ctx, middleware.ActorFrom(c), c.Param("cell"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer closeFn()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ping := time.NewTicker(streamKeepAlive)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-views:
			if !ok {
				return
			}
			c.SSEvent("presence", view)
		case <-ping.C:
			c.SSEvent("ping", "")
		}
		c.Writer.Flush()
	}
}
