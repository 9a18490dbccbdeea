package empresa

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	empresaerrors "licitahub/internal/empresa/errors"
	"licitahub/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=empresa_service.go -destination=mock/empresa_service_mock.go -package=mock
type Service interface {
	GetDefault(ctx context.Context) (EmpresaResponse, error)
	Create(ctx context.Context, req CreateEmpresaRequest) (EmpresaResponse, error)
	Update(ctx context.Context, id string, req UpdateEmpresaRequest) (EmpresaResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("empresa.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("empresa.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetDefault(ctx context.Context) (EmpresaResponse, error) {
	e, err := s.repo.FindDefault(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmpresaResponse{}, empresaerrors.ErrEmpresaNaoEncontrada
		}
		return EmpresaResponse{}, err
	}
	return ToResponse(*e), nil
}

func (s *service) Create(ctx context.Context, req CreateEmpresaRequest) (EmpresaResponse, error) {
	s.logger.Debug("create empresa requested", zap.String("cnpj", req.CNPJ))

	if strings.TrimSpace(req.RazaoSocial) == "" {
		return EmpresaResponse{}, apperror.RequiredField("razao_social")
	}
	if strings.TrimSpace(req.CNPJ) == "" {
		return EmpresaResponse{}, apperror.RequiredField("cnpj")
	}
	if strings.TrimSpace(req.Porte) == "" {
		return EmpresaResponse{}, apperror.RequiredField("porte")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create empresa begin tx failed", zap.Error(err))
		return EmpresaResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByCNPJ(ctx, req.CNPJ); err == nil {
		s.logger.Warn("create empresa duplicate cnpj", zap.String("cnpj", req.CNPJ))
		return EmpresaResponse{}, empresaerrors.ErrCNPJJaCadastrado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return EmpresaResponse{}, err
	}

	e := &Empresa{
		ID:            uuid.New(),
		RazaoSocial:   req.RazaoSocial,
		CNPJ:          req.CNPJ,
		Endereco:      req.Endereco,
		Telefone:      req.Telefone,
		Email:         req.Email,
		Porte:         req.Porte,
		CNAEPrincipal: req.CNAEPrincipal,
	}

	// The unique index is the backstop for two concurrent creates racing
	// past the pre-check.
	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create empresa persist failed", zap.Error(err))
		return EmpresaResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create empresa commit failed", zap.Error(err))
		return EmpresaResponse{}, err
	}
	s.logger.Info("create empresa success", zap.String("empresa_id", e.ID.String()))

	return ToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmpresaRequest) (EmpresaResponse, error) {
	s.logger.Debug("update empresa requested", zap.String("empresa_id", id))

	uid, err := uuid.Parse(id)
	if err != nil {
		return EmpresaResponse{}, empresaerrors.ErrEmpresaNaoEncontrada
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update empresa begin tx failed", zap.Error(err))
		return EmpresaResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, uid)
	if err != nil {
		return EmpresaResponse{}, mapRepositoryError(err)
	}

	if req.CNPJ != nil && *req.CNPJ != e.CNPJ {
		if existing, err := qtx.FindByCNPJ(ctx, *req.CNPJ); err == nil && existing.ID != e.ID {
			return EmpresaResponse{}, empresaerrors.ErrCNPJJaCadastrado
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return EmpresaResponse{}, err
		}
	}

	applyUpdate(e, req)

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update empresa persist failed", zap.Error(err))
		return EmpresaResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update empresa commit failed", zap.Error(err))
		return EmpresaResponse{}, err
	}
	s.logger.Info("update empresa success", zap.String("empresa_id", id))

	return ToResponse(*e), nil
}

// applyUpdate overwrites only the fields present in the request.
func applyUpdate(e *Empresa, req UpdateEmpresaRequest) {
	if req.RazaoSocial != nil {
		e.RazaoSocial = *req.RazaoSocial
	}
	if req.CNPJ != nil {
		e.CNPJ = *req.CNPJ
	}
	if req.Endereco != nil {
		e.Endereco = *req.Endereco
	}
	if req.Telefone != nil {
		e.Telefone = *req.Telefone
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Porte != nil {
		e.Porte = *req.Porte
	}
	if req.CNAEPrincipal != nil {
		e.CNAEPrincipal = *req.CNAEPrincipal
	}
}

// ToResponse maps the entity to its wire DTO. Exported because the
// dashboard embeds the empresa in its own response.
func ToResponse(e Empresa) EmpresaResponse {
	return EmpresaResponse{
		ID:            e.ID.String(),
		RazaoSocial:   e.RazaoSocial,
		CNPJ:          e.CNPJ,
		Endereco:      e.Endereco,
		Telefone:      e.Telefone,
		Email:         e.Email,
		Porte:         e.Porte,
		CNAEPrincipal: e.CNAEPrincipal,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}
