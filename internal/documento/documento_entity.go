package documento

import (
	"time"

	"github.com/google/uuid"
)

type Documento struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmpresaID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Tipo           string     `gorm:"type:varchar(100);not null"`
	NomeArquivo    string     `gorm:"type:varchar(255);not null"`
	CaminhoArquivo string     `gorm:"type:varchar(500);not null"`
	DataEmissao    *time.Time `gorm:"type:date"`
	DataValidade   *time.Time `gorm:"type:date"`
	Status         Status     `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
}

func (Documento) TableName() string {
	return "documentos"
}

// Tipos is the fixed catalog of accepted document types.
func Tipos() []string {
	return []string{
		"CNPJ",
		"CCMEI",
		"Certidão Federal",
		"Certidão Estadual",
		"Certidão Municipal",
		"Certidão FGTS",
		"Certidão Trabalhista",
		"Alvará de Funcionamento",
		"Inscrição Estadual",
		"Inscrição Municipal",
		"Comprovante de Endereço",
		"Contrato Social",
		"Outros",
	}
}
