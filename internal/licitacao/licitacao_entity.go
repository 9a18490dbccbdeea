package licitacao

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusEmAndamento Status = "em_andamento"
	StatusFinalizada  Status = "finalizada"
	StatusVencida     Status = "vencida"
	StatusPerdida     Status = "perdida"
)

// Statuses lists every accepted bid status, in lifecycle order.
func Statuses() []Status {
	return []Status{StatusEmAndamento, StatusFinalizada, StatusVencida, StatusPerdida}
}

func validStatus(s Status) bool {
	for _, v := range Statuses() {
		if v == s {
			return true
		}
	}
	return false
}

type Licitacao struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmpresaID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	NumeroEdital   string     `gorm:"type:varchar(100);not null"`
	OrgaoLicitante string     `gorm:"type:varchar(255);not null"`
	Objeto         string     `gorm:"type:text;not null"`
	DataAbertura   *time.Time `gorm:"type:date"`
	LinkEdital     string     `gorm:"type:varchar(500)"`
	Status         Status     `gorm:"type:varchar(20);not null;default:em_andamento"`
	Observacoes    string     `gorm:"type:text"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (Licitacao) TableName() string {
	return "licitacoes"
}
