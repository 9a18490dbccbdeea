package licitacao

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"licitahub/internal/empresa"
	empresaerrors "licitahub/internal/empresa/errors"
	licitacaoerrors "licitahub/internal/licitacao/errors"
	"licitahub/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=licitacao_service.go -destination=mock/licitacao_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, empresaID string) ([]LicitacaoResponse, error)
	Create(ctx context.Context, req CreateLicitacaoRequest) (LicitacaoResponse, error)
	GetByID(ctx context.Context, id string) (LicitacaoResponse, error)
	Update(ctx context.Context, id string, req UpdateLicitacaoRequest) (LicitacaoResponse, error)
	Delete(ctx context.Context, id string) error
	Statuses() []string
}

type service struct {
	db       *sql.DB
	repo     Repository
	empresas empresa.Repository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, empresas empresa.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("licitacao.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("licitacao.service")
	}
	return &service{db: db, repo: repo, empresas: empresas, logger: l}
}

func (s *service) GetAll(ctx context.Context, empresaID string) ([]LicitacaoResponse, error) {
	if strings.TrimSpace(empresaID) == "" {
		return nil, apperror.RequiredField("empresa_id")
	}
	uid, err := uuid.Parse(empresaID)
	if err != nil {
		return nil, apperror.InvalidField("empresa_id")
	}

	ls, err := s.repo.FindAllByEmpresa(ctx, uid)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(ls), nil
}

func (s *service) Create(ctx context.Context, req CreateLicitacaoRequest) (LicitacaoResponse, error) {
	s.logger.Debug("create licitacao requested",
		zap.String("empresa_id", req.EmpresaID),
		zap.String("numero_edital", req.NumeroEdital),
	)

	if strings.TrimSpace(req.EmpresaID) == "" {
		return LicitacaoResponse{}, apperror.RequiredField("empresa_id")
	}
	if strings.TrimSpace(req.NumeroEdital) == "" {
		return LicitacaoResponse{}, apperror.RequiredField("numero_edital")
	}
	if strings.TrimSpace(req.OrgaoLicitante) == "" {
		return LicitacaoResponse{}, apperror.RequiredField("orgao_licitante")
	}
	if strings.TrimSpace(req.Objeto) == "" {
		return LicitacaoResponse{}, apperror.RequiredField("objeto")
	}

	empresaUUID, err := uuid.Parse(req.EmpresaID)
	if err != nil {
		return LicitacaoResponse{}, apperror.InvalidField("empresa_id")
	}

	if _, err := s.empresas.FindByID(ctx, empresaUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LicitacaoResponse{}, empresaerrors.ErrEmpresaNaoEncontrada
		}
		return LicitacaoResponse{}, err
	}

	dataAbertura, err := parseOptionalDate(req.DataAbertura)
	if err != nil {
		return LicitacaoResponse{}, err
	}

	status := StatusEmAndamento
	if req.Status != "" {
		status = Status(req.Status)
		if !validStatus(status) {
			return LicitacaoResponse{}, licitacaoerrors.ErrStatusInvalido
		}
	}

	l := &Licitacao{
		ID:             uuid.New(),
		EmpresaID:      empresaUUID,
		NumeroEdital:   req.NumeroEdital,
		OrgaoLicitante: req.OrgaoLicitante,
		Objeto:         req.Objeto,
		DataAbertura:   dataAbertura,
		LinkEdital:     req.LinkEdital,
		Status:         status,
		Observacoes:    req.Observacoes,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create licitacao begin tx failed", zap.Error(err))
		return LicitacaoResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create licitacao persist failed", zap.Error(err))
		return LicitacaoResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create licitacao commit failed", zap.Error(err))
		return LicitacaoResponse{}, err
	}
	s.logger.Info("create licitacao success",
		zap.String("licitacao_id", l.ID.String()),
		zap.String("empresa_id", req.EmpresaID),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LicitacaoResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return LicitacaoResponse{}, licitacaoerrors.ErrLicitacaoNaoEncontrada
	}

	l, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LicitacaoResponse{}, licitacaoerrors.ErrLicitacaoNaoEncontrada
		}
		return LicitacaoResponse{}, err
	}

	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLicitacaoRequest) (LicitacaoResponse, error) {
	s.logger.Debug("update licitacao requested", zap.String("licitacao_id", id))

	uid, err := uuid.Parse(id)
	if err != nil {
		return LicitacaoResponse{}, licitacaoerrors.ErrLicitacaoNaoEncontrada
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update licitacao begin tx failed", zap.Error(err))
		return LicitacaoResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LicitacaoResponse{}, licitacaoerrors.ErrLicitacaoNaoEncontrada
		}
		return LicitacaoResponse{}, err
	}

	if err := applyUpdate(l, req); err != nil {
		return LicitacaoResponse{}, err
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update licitacao persist failed", zap.Error(err))
		return LicitacaoResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update licitacao commit failed", zap.Error(err))
		return LicitacaoResponse{}, err
	}
	s.logger.Info("update licitacao success", zap.String("licitacao_id", id))

	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete licitacao requested", zap.String("licitacao_id", id))

	uid, err := uuid.Parse(id)
	if err != nil {
		return licitacaoerrors.ErrLicitacaoNaoEncontrada
	}

	if _, err := s.repo.FindByID(ctx, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return licitacaoerrors.ErrLicitacaoNaoEncontrada
		}
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete licitacao begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, uid); err != nil {
		s.logger.Error("delete licitacao persist failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete licitacao commit failed", zap.Error(err))
		return err
	}
	s.logger.Info("delete licitacao success", zap.String("licitacao_id", id))

	return nil
}

func (s *service) Statuses() []string {
	statuses := Statuses()
	out := make([]string, len(statuses))
	for i, st := range statuses {
		out[i] = string(st)
	}
	return out
}

// applyUpdate overwrites only the fields present in the request. An empty
// data_abertura clears the stored date; any other value must parse.
func applyUpdate(l *Licitacao, req UpdateLicitacaoRequest) error {
	if req.NumeroEdital != nil {
		l.NumeroEdital = *req.NumeroEdital
	}
	if req.OrgaoLicitante != nil {
		l.OrgaoLicitante = *req.OrgaoLicitante
	}
	if req.Objeto != nil {
		l.Objeto = *req.Objeto
	}
	if req.DataAbertura != nil {
		if *req.DataAbertura == "" {
			l.DataAbertura = nil
		} else {
			t, err := time.Parse(dateLayout, *req.DataAbertura)
			if err != nil {
				return apperror.InvalidField("data_abertura")
			}
			l.DataAbertura = &t
		}
	}
	if req.LinkEdital != nil {
		l.LinkEdital = *req.LinkEdital
	}
	if req.Status != nil {
		status := Status(*req.Status)
		if !validStatus(status) {
			return licitacaoerrors.ErrStatusInvalido
		}
		l.Status = status
	}
	if req.Observacoes != nil {
		l.Observacoes = *req.Observacoes
	}
	return nil
}

func parseOptionalDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, apperror.InvalidField("data_abertura")
	}
	return &t, nil
}

func mapToResponse(l Licitacao) LicitacaoResponse {
	resp := LicitacaoResponse{
		ID:             l.ID.String(),
		EmpresaID:      l.EmpresaID.String(),
		NumeroEdital:   l.NumeroEdital,
		OrgaoLicitante: l.OrgaoLicitante,
		Objeto:         l.Objeto,
		LinkEdital:     l.LinkEdital,
		Status:         string(l.Status),
		Observacoes:    l.Observacoes,
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      l.UpdatedAt.Format(time.RFC3339),
	}
	if l.DataAbertura != nil {
		resp.DataAbertura = l.DataAbertura.Format(dateLayout)
	}
	return resp
}

func mapToListResponse(ls []Licitacao) []LicitacaoResponse {
	resp := make([]LicitacaoResponse, len(ls))
	for i, l := range ls {
		resp[i] = mapToResponse(l)
	}
	return resp
}
