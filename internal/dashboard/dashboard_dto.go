package dashboard

import "licitahub/internal/empresa"

type DocumentosResumo struct {
	Valid        int64 `json:"valid"`
	ExpiringSoon int64 `json:"expiring_soon"`
	Expired      int64 `json:"expired"`
	Total        int64 `json:"total"`
}

type LicitacoesResumo struct {
	EmAndamento int64 `json:"em_andamento"`
	Finalizada  int64 `json:"finalizada"`
	Vencida     int64 `json:"vencida"`
	Perdida     int64 `json:"perdida"`
	Total       int64 `json:"total"`
}

type DashboardResponse struct {
	Empresa    empresa.EmpresaResponse `json:"empresa"`
	Documentos DocumentosResumo        `json:"documentos"`
	Licitacoes LicitacoesResumo        `json:"licitacoes"`
}
