package documento

import (
	"io"
	"net/http"

	documentoerrors "licitahub/internal/documento/errors"
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
	l := zap.L().Named("documento.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("documento.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("documento request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, err)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context(), c.Query("empresa_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// Upload handles the multipart POST: the file part plus empresa_id, tipo
// and the optional YYYY-MM-DD date fields.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn("http upload documento missing file", zap.Error(err))
		response.Error(c, documentoerrors.ErrArquivoObrigatorio)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer file.Close()

	conteudo, err := io.ReadAll(file)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	req := UploadDocumentoRequest{
		EmpresaID:    c.PostForm("empresa_id"),
		Tipo:         c.PostForm("tipo"),
		NomeArquivo:  fileHeader.Filename,
		Conteudo:     conteudo,
		DataEmissao:  c.PostForm("data_emissao"),
		DataValidade: c.PostForm("data_validade"),
	}

	resp, err := h.service.Upload(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Documento excluído com sucesso")
}

func (h *Handler) GetAlertas(c *gin.Context) {
	resp, err := h.service.GetAlertas(c.Request.Context(), c.Query("empresa_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) GetTipos(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Tipos())
}
