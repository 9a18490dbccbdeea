package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"licitahub/internal/dashboard"
	"licitahub/internal/documento"
	documentoMock "licitahub/internal/documento/mock"
	"licitahub/internal/empresa"
	empresaerrors "licitahub/internal/empresa/errors"
	empresaMock "licitahub/internal/empresa/mock"
	"licitahub/internal/licitacao"
	licitacaoMock "licitahub/internal/licitacao/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service    dashboard.Service
	empresas   *empresaMock.MockRepository
	documentos *documentoMock.MockRepository
	licitacoes *licitacaoMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	empresas := empresaMock.NewMockRepository(ctrl)
	documentos := documentoMock.NewMockRepository(ctrl)
	licitacoes := licitacaoMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:    dashboard.NewService(empresas, documentos, licitacoes),
		empresas:   empresas,
		documentos: documentos,
		licitacoes: licitacoes,
	}
}

func TestDashboardService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("totals are the sum of the breakdowns", func(t *testing.T) {
		deps := setupServiceTest(t)

		empresaID := uuid.New()
		deps.empresas.EXPECT().
			FindByID(ctx, empresaID).
			Return(&empresa.Empresa{ID: empresaID, RazaoSocial: "Acme Ltda"}, nil)

		docCounts := map[documento.Status]int64{
			documento.StatusValid:        5,
			documento.StatusExpiringSoon: 2,
			documento.StatusExpired:      1,
		}
		for status, n := range docCounts {
			deps.documentos.EXPECT().
				CountByEmpresaAndStatus(ctx, empresaID, status).
				Return(n, nil)
		}

		bidCounts := map[licitacao.Status]int64{
			licitacao.StatusEmAndamento: 3,
			licitacao.StatusFinalizada:  4,
			licitacao.StatusVencida:     2,
			licitacao.StatusPerdida:     1,
		}
		for status, n := range bidCounts {
			deps.licitacoes.EXPECT().
				CountByEmpresaAndStatus(ctx, empresaID, status).
				Return(n, nil)
		}

		resp, err := deps.service.Get(ctx, empresaID.String())

		assert.NoError(t, err)
		assert.Equal(t, "Acme Ltda", resp.Empresa.RazaoSocial)
		assert.Equal(t, int64(8), resp.Documentos.Total)
		assert.Equal(t, int64(5), resp.Documentos.Valid)
		assert.Equal(t, int64(2), resp.Documentos.ExpiringSoon)
		assert.Equal(t, int64(1), resp.Documentos.Expired)
		assert.Equal(t, int64(10), resp.Licitacoes.Total)
		assert.Equal(t, int64(4), resp.Licitacoes.Finalizada)
	})

	t.Run("zero counts produce zero totals", func(t *testing.T) {
		deps := setupServiceTest(t)

		empresaID := uuid.New()
		deps.empresas.EXPECT().
			FindByID(ctx, empresaID).
			Return(&empresa.Empresa{ID: empresaID}, nil)
		deps.documentos.EXPECT().
			CountByEmpresaAndStatus(ctx, empresaID, gomock.Any()).
			Return(int64(0), nil).
			Times(3)
		deps.licitacoes.EXPECT().
			CountByEmpresaAndStatus(ctx, empresaID, gomock.Any()).
			Return(int64(0), nil).
			Times(4)

		resp, err := deps.service.Get(ctx, empresaID.String())

		assert.NoError(t, err)
		assert.Zero(t, resp.Documentos.Total)
		assert.Zero(t, resp.Licitacoes.Total)
	})

	t.Run("empresa not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		empresaID := uuid.New()
		deps.empresas.EXPECT().
			FindByID(ctx, empresaID).
			Return(nil, gorm.ErrRecordNotFound)
		deps.documentos.EXPECT().CountByEmpresaAndStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Get(ctx, empresaID.String())

		assert.True(t, errors.Is(err, empresaerrors.ErrEmpresaNaoEncontrada))
	})

	t.Run("malformed id maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Get(ctx, "abc")

		assert.True(t, errors.Is(err, empresaerrors.ErrEmpresaNaoEncontrada))
	})

	t.Run("count failure surfaces", func(t *testing.T) {
		deps := setupServiceTest(t)

		empresaID := uuid.New()
		deps.empresas.EXPECT().
			FindByID(ctx, empresaID).
			Return(&empresa.Empresa{ID: empresaID}, nil)
		deps.documentos.EXPECT().
			CountByEmpresaAndStatus(ctx, empresaID, documento.StatusValid).
			Return(int64(0), errors.New("db error"))

		_, err := deps.service.Get(ctx, empresaID.String())

		assert.Error(t, err)
	})
}
