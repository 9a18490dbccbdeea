package empresa

import (
	"errors"
	"strings"

	empresaerrors "licitahub/internal/empresa/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return empresaerrors.ErrEmpresaNaoEncontrada
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_empresa_cnpj" {
			return empresaerrors.ErrCNPJJaCadastrado
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_empresa_cnpj") {
		return empresaerrors.ErrCNPJJaCadastrado
	}

	return err
}
