package empresaerrors

import (
	"net/http"

	"licitahub/internal/shared/apperror"
)

var (
	ErrEmpresaNaoEncontrada = apperror.New(
		apperror.CodeNotFound,
		"Empresa não encontrada",
		http.StatusNotFound,
	)

	// The original system answers duplicate CNPJ with 400, not 409.
	ErrCNPJJaCadastrado = apperror.New(
		apperror.CodeConflict,
		"Já existe uma empresa com este CNPJ",
		http.StatusBadRequest,
	)
)
