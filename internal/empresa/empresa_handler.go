package empresa

import (
	"net/http"

	"licitahub/internal/shared/apperror"
	"licitahub/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("empresa.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("empresa.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("empresa request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, err)
}

// GetDefault answers GET /api/empresa: the single-tenant company record.
func (h *Handler) GetDefault(c *gin.Context) {
	resp, err := h.service.GetDefault(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create empresa validation failed", zap.Error(err))
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update empresa validation failed", zap.Error(err))
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}
