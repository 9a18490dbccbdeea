package empresa_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"licitahub/internal/empresa"
	empresaerrors "licitahub/internal/empresa/errors"
	empresaMock "licitahub/internal/empresa/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service empresa.Service
	repo    *empresaMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := empresaMock.NewMockRepository(ctrl)

	svc := empresa.NewService(db, repo)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
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

func TestEmpresaService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	req := empresa.CreateEmpresaRequest{
		RazaoSocial: "Acme Ltda",
		CNPJ:        "12.345.678/0001-90",
		Porte:       "small",
	}

	t.Run("success", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		deps.repo.EXPECT().
			FindByCNPJ(ctx, req.CNPJ).
			Return(nil, gorm.ErrRecordNotFound)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *empresa.Empresa) error {
				assert.Equal(t, req.RazaoSocial, e.RazaoSocial)
				assert.Equal(t, req.CNPJ, e.CNPJ)
				assert.NotEqual(t, uuid.Nil, e.ID)
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "Acme Ltda", resp.RazaoSocial)
	})

	t.Run("missing razao_social", func(t *testing.T) {
		_, err := deps.service.Create(ctx, empresa.CreateEmpresaRequest{
			CNPJ:  "12.345.678/0001-90",
			Porte: "small",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "razao")
	})

	t.Run("duplicate cnpj leaves existing record untouched", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false) // rollback

		existing := &empresa.Empresa{ID: uuid.New(), CNPJ: req.CNPJ}

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByCNPJ(ctx, req.CNPJ).
			Return(existing, nil)

		// Create and Update must never be reached.
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, empresaerrors.ErrCNPJJaCadastrado))
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByCNPJ(ctx, req.CNPJ).
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
	})
}

func TestEmpresaService_GetDefault(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().
			FindDefault(ctx).
			Return(&empresa.Empresa{ID: uuid.New(), RazaoSocial: "Acme Ltda"}, nil)

		resp, err := deps.service.GetDefault(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "Acme Ltda", resp.RazaoSocial)
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().
			FindDefault(ctx).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetDefault(ctx)

		assert.True(t, errors.Is(err, empresaerrors.ErrEmpresaNaoEncontrada))
	})
}

func TestEmpresaService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New()

	t.Run("partial update only touches supplied fields", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		existing := &empresa.Empresa{
			ID:          targetID,
			RazaoSocial: "Acme Ltda",
			CNPJ:        "12.345.678/0001-90",
			Porte:       "small",
			Telefone:    "11 99999-0000",
		}

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, targetID).
			Return(existing, nil)

		novoTelefone := "11 98888-1111"
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *empresa.Empresa) error {
				assert.Equal(t, novoTelefone, e.Telefone)
				assert.Equal(t, "Acme Ltda", e.RazaoSocial)
				assert.Equal(t, "small", e.Porte)
				return nil
			})

		resp, err := deps.service.Update(ctx, targetID.String(), empresa.UpdateEmpresaRequest{
			Telefone: &novoTelefone,
		})

		assert.NoError(t, err)
		assert.Equal(t, novoTelefone, resp.Telefone)
	})

	t.Run("not found", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, targetID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, targetID.String(), empresa.UpdateEmpresaRequest{})

		assert.True(t, errors.Is(err, empresaerrors.ErrEmpresaNaoEncontrada))
	})

	t.Run("malformed id maps to not found", func(t *testing.T) {
		_, err := deps.service.Update(ctx, "abc", empresa.UpdateEmpresaRequest{})

		assert.True(t, errors.Is(err, empresaerrors.ErrEmpresaNaoEncontrada))
	})
}
