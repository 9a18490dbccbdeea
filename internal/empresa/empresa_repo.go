package empresa

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=empresa_repo.go -destination=mock/empresa_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Empresa) error
	FindDefault(ctx context.Context) (*Empresa, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Empresa, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*Empresa, error)
	Update(ctx context.Context, e *Empresa) error
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

func (r *repository) Create(ctx context.Context, e *Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindDefault returns the single-tenant default: the oldest registered
// empresa. The system assumes at most one exists; ordering makes the rule
// deterministic if that assumption is ever broken.
func (r *repository) FindDefault(ctx context.Context) (*Empresa, error) {
	var e Empresa
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&e).Error
	return &e, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Empresa, error) {
	var e Empresa
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByCNPJ(ctx context.Context, cnpj string) (*Empresa, error) {
	var e Empresa
	err := r.db.WithContext(ctx).Where("cnpj = ?", cnpj).First(&e).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Empresa) error {
	return r.db.WithContext(ctx).Save(e).Error
}
