package documentoerrors

import (
	"net/http"

	"licitahub/internal/shared/apperror"
)

var (
	ErrDocumentoNaoEncontrado = apperror.New(
		apperror.CodeNotFound,
		"Documento não encontrado",
		http.StatusNotFound,
	)

	ErrArquivoObrigatorio = apperror.New(
		apperror.CodeInvalidInput,
		"Nenhum arquivo enviado",
		http.StatusBadRequest,
	)

	ErrExtensaoNaoPermitida = apperror.New(
		apperror.CodeInvalidInput,
		"Tipo de arquivo não permitido",
		http.StatusBadRequest,
	)
)
