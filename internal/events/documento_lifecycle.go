package events

import "time"

const DocumentoLifecycleTopic = "compliance.documento.lifecycle.v1"

const (
	DocumentoCriadoType   = "documento.criado"
	DocumentoExcluidoType = "documento.excluido"
)

type DocumentoLifecycleEvent struct {
	EventType    string    `json:"event_type"`
	DocumentoID  string    `json:"documento_id"`
	EmpresaID    string    `json:"empresa_id"`
	Tipo         string    `json:"tipo"`
	Status       string    `json:"status"`
	DataValidade string    `json:"data_validade,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
