package dashboard

import (
	"context"
	"errors"

	"licitahub/internal/documento"
	"licitahub/internal/empresa"
	empresaerrors "licitahub/internal/empresa/errors"
	"licitahub/internal/licitacao"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, empresaID string) (DashboardResponse, error)
}

type service struct {
	empresas   empresa.Repository
	documentos documento.Repository
	licitacoes licitacao.Repository
	logger     *zap.Logger
}

func NewService(
	empresas empresa.Repository,
	documentos documento.Repository,
	licitacoes licitacao.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		empresas:   empresas,
		documentos: documentos,
		licitacoes: licitacoes,
		logger:     l,
	}
}

// Get aggregates the compliance picture for one empresa. It is strictly
// read-only: counts reflect the statuses as stored, without re-deriving
// them, so the call never writes.
func (s *service) Get(ctx context.Context, empresaID string) (DashboardResponse, error) {
	uid, err := uuid.Parse(empresaID)
	if err != nil {
		return DashboardResponse{}, empresaerrors.ErrEmpresaNaoEncontrada
	}

	e, err := s.empresas.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DashboardResponse{}, empresaerrors.ErrEmpresaNaoEncontrada
		}
		return DashboardResponse{}, err
	}

	docs, err := s.countDocumentos(ctx, uid)
	if err != nil {
		s.logger.Error("dashboard documento counts failed", zap.String("empresa_id", empresaID), zap.Error(err))
		return DashboardResponse{}, err
	}

	bids, err := s.countLicitacoes(ctx, uid)
	if err != nil {
		s.logger.Error("dashboard licitacao counts failed", zap.String("empresa_id", empresaID), zap.Error(err))
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		Empresa:    empresa.ToResponse(*e),
		Documentos: docs,
		Licitacoes: bids,
	}, nil
}

func (s *service) countDocumentos(ctx context.Context, empresaID uuid.UUID) (DocumentosResumo, error) {
	var resumo DocumentosResumo

	counts := []struct {
		status documento.Status
		dst    *int64
	}{
		{documento.StatusValid, &resumo.Valid},
		{documento.StatusExpiringSoon, &resumo.ExpiringSoon},
		{documento.StatusExpired, &resumo.Expired},
	}
	for _, c := range counts {
		n, err := s.documentos.CountByEmpresaAndStatus(ctx, empresaID, c.status)
		if err != nil {
			return DocumentosResumo{}, err
		}
		*c.dst = n
	}

	// The total is always the sum of the breakdown, never a separate query.
	resumo.Total = resumo.Valid + resumo.ExpiringSoon + resumo.Expired
	return resumo, nil
}

func (s *service) countLicitacoes(ctx context.Context, empresaID uuid.UUID) (LicitacoesResumo, error) {
	var resumo LicitacoesResumo

	counts := []struct {
		status licitacao.Status
		dst    *int64
	}{
		{licitacao.StatusEmAndamento, &resumo.EmAndamento},
		{licitacao.StatusFinalizada, &resumo.Finalizada},
		{licitacao.StatusVencida, &resumo.Vencida},
		{licitacao.StatusPerdida, &resumo.Perdida},
	}
	for _, c := range counts {
		n, err := s.licitacoes.CountByEmpresaAndStatus(ctx, empresaID, c.status)
		if err != nil {
			return LicitacoesResumo{}, err
		}
		*c.dst = n
	}

	resumo.Total = resumo.EmAndamento + resumo.Finalizada + resumo.Vencida + resumo.Perdida
	return resumo, nil
}
