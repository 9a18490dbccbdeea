package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Recurso não encontrado",
		http.StatusNotFound,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Dados de entrada inválidos",
		http.StatusBadRequest,
	)

	ErrInternal = New(
		CodeInternalError,
		"Ocorreu um erro inesperado",
		http.StatusInternalServerError,
	)
)

// RequiredField builds the standard "campo X é obrigatório" validation error.
func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("Campo %s é obrigatório", field),
		http.StatusBadRequest,
	)
}

// InvalidField builds the standard invalid-value validation error.
func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("Campo %s é inválido", field),
		http.StatusBadRequest,
	)
}
