package documento

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=documento_repo.go -destination=mock/documento_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Documento) error
	FindByID(ctx context.Context, id uuid.UUID) (*Documento, error)
	FindAllByEmpresa(ctx context.Context, empresaID uuid.UUID) ([]Documento, error)
	FindByEmpresaAndStatusIn(ctx context.Context, empresaID uuid.UUID, statuses []Status) ([]Documento, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
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

func (r *repository) Create(ctx context.Context, d *Documento) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Documento, error) {
	var d Documento
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) FindAllByEmpresa(ctx context.Context, empresaID uuid.UUID) ([]Documento, error) {
	var docs []Documento
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *repository) FindByEmpresaAndStatusIn(ctx context.Context, empresaID uuid.UUID, statuses []Status) ([]Documento, error) {
	var docs []Documento
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND status IN ?", empresaID, statuses).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return r.db.WithContext(ctx).
		Model(&Documento{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Documento{}, "id = ?", id).Error
}

func (r *repository) CountByEmpresaAndStatus(ctx context.Context, empresaID uuid.UUID, status Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Documento{}).
		Where("empresa_id = ? AND status = ?", empresaID, status).
		Count(&count).Error
	return count, err
}
