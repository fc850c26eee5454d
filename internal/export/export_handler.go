package export

import (
	"net/http"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("export.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("export request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// YellowPage serves the sheet as pdf (default), xlsx, or json.
func (h *Handler) YellowPage(c *gin.Context) {
	gymID := c.Param("gymId")
	start, err := dateutil.ParseDBDate(c.Query("start"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	format := c.DefaultQuery("format", FormatPDF)
	if format == FormatJSON {
		page, err := h.service.YellowPage(c.Request.Context(), gymID, start)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, page, nil)
		return
	}

	file, err := h.service.RenderYellowPage(c.Request.Context(), gymID, start, format)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, file.Name, file.ContentType, file.Data)
}
