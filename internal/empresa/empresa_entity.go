package empresa

import (
	"time"

	"github.com/google/uuid"
)

type Empresa struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RazaoSocial   string    `gorm:"type:varchar(255);not null"`
	CNPJ          string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_empresa_cnpj"`
	Endereco      string    `gorm:"type:varchar(255)"`
	Telefone      string    `gorm:"type:varchar(30)"`
	Email         string    `gorm:"type:varchar(255)"`
	Porte         string    `gorm:"type:varchar(20);not null"`
	CNAEPrincipal string    `gorm:"type:varchar(20)"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Empresa) TableName() string {
	return "empresas"
}
