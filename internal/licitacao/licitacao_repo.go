package licitacao

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=licitacao_repo.go -destination=mock/licitacao_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Licitacao) error
	FindByID(ctx context.Context, id uuid.UUID) (*Licitacao, error)
	FindAllByEmpresa(ctx context.Context, empresaID uuid.UUID) ([]Licitacao, error)
	Update(ctx context.Context, l *Licitacao) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByEmpresaAndStatus(ctx context.Context, empresaID uuid.UUID, status Status) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, l *Licitacao) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Licitacao, error) {
	var l Licitacao
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

// FindAllByEmpresa returns the empresa's bids newest first, matching the
// listing order the dashboard and frontend expect.
func (r *repository) FindAllByEmpresa(ctx context.Context, empresaID uuid.UUID) ([]Licitacao, error) {
	var ls []Licitacao
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("created_at DESC").
		Find(&ls).Error
	return ls, err
}

func (r *repository) Update(ctx context.Context, l *Licitacao) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Licitacao{}, "id = ?", id).Error
}

func (r *repository) CountByEmpresaAndStatus(ctx context.Context, empresaID uuid.UUID, status Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Licitacao{}).
		Where("empresa_id = ? AND status = ?", empresaID, status).
		Count(&count).Error
	return count, err
}
