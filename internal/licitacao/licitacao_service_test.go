package licitacao_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"licitahub/internal/empresa"
	empresaerrors "licitahub/internal/empresa/errors"
	empresaMock "licitahub/internal/empresa/mock"
	"licitahub/internal/licitacao"
	licitacaoerrors "licitahub/internal/licitacao/errors"
	licitacaoMock "licitahub/internal/licitacao/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  licitacao.Service
	repo     *licitacaoMock.MockRepository
	empresas *empresaMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := licitacaoMock.NewMockRepository(ctrl)
	empresas := empresaMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  licitacao.NewService(db, repo, empresas),
		repo:     repo,
		empresas: empresas,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func createRequest(empresaID string) licitacao.CreateLicitacaoRequest {
	return licitacao.CreateLicitacaoRequest{
		EmpresaID:      empresaID,
		NumeroEdital:   "PE-042/2025",
		OrgaoLicitante: "Prefeitura de Curitiba",
		Objeto:         "Fornecimento de material de escritório",
		DataAbertura:   "2025-07-01",
	}
}

func TestLicitacaoService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success with default status", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		empresaID := uuid.New()
		req := createRequest(empresaID.String())

		deps.empresas.EXPECT().
			FindByID(ctx, empresaID).
			Return(&empresa.Empresa{ID: empresaID}, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, l *licitacao.Licitacao) error {
				assert.Equal(t, empresaID, l.EmpresaID)
				assert.Equal(t, "PE-042/2025", l.NumeroEdital)
				assert.Equal(t, licitacao.StatusEmAndamento, l.Status)
				assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), l.DataAbertura.UTC())
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "em_andamento", resp.Status)
		assert.Equal(t, "2025-07-01", resp.DataAbertura)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("each missing required field is named", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cases := []struct {
			field  string
			mutate func(*licitacao.CreateLicitacaoRequest)
		}{
			{"empresa_id", func(r *licitacao.CreateLicitacaoRequest) { r.EmpresaID = "" }},
			{"numero_edital", func(r *licitacao.CreateLicitacaoRequest) { r.NumeroEdital = "" }},
			{"orgao_licitante", func(r *licitacao.CreateLicitacaoRequest) { r.OrgaoLicitante = "" }},
			{"objeto", func(r *licitacao.CreateLicitacaoRequest) { r.Objeto = "  " }},
		}
		for _, tc := range cases {
			req := createRequest(uuid.New().String())
			tc.mutate(&req)

			_, err := deps.service.Create(ctx, req)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		}
	})

	t.Run("empresa not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		empresaID := uuid.New()
		deps.empresas.EXPECT().
			FindByID(ctx, empresaID).
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, createRequest(empresaID.String()))

		assert.True(t, errors.Is(err, empresaerrors.ErrEmpresaNaoEncontrada))
	})

	t.Run("malformed data_abertura", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		empresaID := uuid.New()
		req := createRequest(empresaID.String())
		req.DataAbertura = "01/07/2025"

		deps.empresas.EXPECT().
			FindByID(ctx, empresaID).
			Return(&empresa.Empresa{ID: empresaID}, nil)

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "data_abertura")
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		empresaID := uuid.New()
		req := createRequest(empresaID.String())
		req.Status = "cancelada"

		deps.empresas.EXPECT().
			FindByID(ctx, empresaID).
			Return(&empresa.Empresa{ID: empresaID}, nil)

		_, err := deps.service.Create(ctx, req)

		assert.True(t, errors.Is(err, licitacaoerrors.ErrStatusInvalido))
	})

	t.Run("db failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		empresaID := uuid.New()
		deps.empresas.EXPECT().
			FindByID(ctx, empresaID).
			Return(&empresa.Empresa{ID: empresaID}, nil)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, createRequest(empresaID.String()))

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLicitacaoService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empresa_id is required", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empresa_id")
	})

	t.Run("returns the repository ordering", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		empresaID := uuid.New()
		newest := uuid.New()
		oldest := uuid.New()
		deps.repo.EXPECT().
			FindAllByEmpresa(ctx, empresaID).
			Return([]licitacao.Licitacao{
				{ID: newest, EmpresaID: empresaID, Status: licitacao.StatusEmAndamento},
				{ID: oldest, EmpresaID: empresaID, Status: licitacao.StatusVencida},
			}, nil)

		resp, err := deps.service.GetAll(ctx, empresaID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, newest.String(), resp[0].ID)
		assert.Equal(t, oldest.String(), resp[1].ID)
	})
}

func TestLicitacaoService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		abertura := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		existing := &licitacao.Licitacao{
			ID:             uuid.New(),
			EmpresaID:      uuid.New(),
			NumeroEdital:   "PE-042/2025",
			OrgaoLicitante: "Prefeitura de Curitiba",
			Objeto:         "Material de escritório",
			DataAbertura:   &abertura,
			Status:         licitacao.StatusEmAndamento,
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, l *licitacao.Licitacao) error {
				assert.Equal(t, licitacao.StatusVencida, l.Status)
				assert.Equal(t, "PE-042/2025", l.NumeroEdital)
				return nil
			})

		status := "vencida"
		resp, err := deps.service.Update(ctx, existing.ID.String(), licitacao.UpdateLicitacaoRequest{
			Status: &status,
		})

		assert.NoError(t, err)
		assert.Equal(t, "vencida", resp.Status)
		assert.Equal(t, "PE-042/2025", resp.NumeroEdital)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("empty data_abertura clears the stored date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		abertura := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		existing := &licitacao.Licitacao{
			ID:           uuid.New(),
			EmpresaID:    uuid.New(),
			NumeroEdital: "PE-042/2025",
			DataAbertura: &abertura,
			Status:       licitacao.StatusEmAndamento,
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, l *licitacao.Licitacao) error {
				assert.Nil(t, l.DataAbertura)
				return nil
			})

		vazio := ""
		resp, err := deps.service.Update(ctx, existing.ID.String(), licitacao.UpdateLicitacaoRequest{
			DataAbertura: &vazio,
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.DataAbertura)
	})

	t.Run("malformed date aborts before persisting", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &licitacao.Licitacao{ID: uuid.New(), Status: licitacao.StatusEmAndamento}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		ruim := "amanhã"
		_, err := deps.service.Update(ctx, existing.ID.String(), licitacao.UpdateLicitacaoRequest{
			DataAbertura: &ruim,
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "data_abertura")
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), licitacao.UpdateLicitacaoRequest{})

		assert.True(t, errors.Is(err, licitacaoerrors.ErrLicitacaoNaoEncontrada))
	})
}

func TestLicitacaoService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().FindByID(ctx, id).Return(&licitacao.Licitacao{ID: id}, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)

		err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("second delete is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id.String())

		assert.True(t, errors.Is(err, licitacaoerrors.ErrLicitacaoNaoEncontrada))
	})

	t.Run("malformed id maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Delete(ctx, "abc")

		assert.True(t, errors.Is(err, licitacaoerrors.ErrLicitacaoNaoEncontrada))
	})
}

func TestLicitacaoService_Statuses(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	assert.Equal(t,
		[]string{"em_andamento", "finalizada", "vencida", "perdida"},
		deps.service.Statuses(),
	)
}
