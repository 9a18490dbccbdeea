package licitacaoerrors

import (
	"net/http"

	"licitahub/internal/shared/apperror"
)

var (
	ErrLicitacaoNaoEncontrada = apperror.New(
		apperror.CodeNotFound,
		"Licitação não encontrada",
		http.StatusNotFound,
	)

	ErrStatusInvalido = apperror.New(
		apperror.CodeInvalidInput,
		"Status de licitação inválido",
		http.StatusBadRequest,
	)
)
