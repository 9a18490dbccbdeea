package licitacao

type CreateLicitacaoRequest struct {
	EmpresaID      string `json:"empresa_id" binding:"required"`
	NumeroEdital   string `json:"numero_edital" binding:"required"`
	OrgaoLicitante string `json:"orgao_licitante" binding:"required"`
	Objeto         string `json:"objeto" binding:"required"`
	DataAbertura   string `json:"data_abertura"`
	LinkEdital     string `json:"link_edital"`
	Status         string `json:"status"`
	Observacoes    string `json:"observacoes"`
}

// UpdateLicitacaoRequest carries only the fields the caller sent. A
// data_abertura supplied as the empty string clears the stored date.
type UpdateLicitacaoRequest struct {
	NumeroEdital   *string `json:"numero_edital"`
	OrgaoLicitante *string `json:"orgao_licitante"`
	Objeto         *string `json:"objeto"`
	DataAbertura   *string `json:"data_abertura"`
	LinkEdital     *string `json:"link_edital"`
	Status         *string `json:"status"`
	Observacoes    *string `json:"observacoes"`
}

type LicitacaoResponse struct {
	ID             string `json:"id"`
	EmpresaID      string `json:"empresa_id"`
	NumeroEdital   string `json:"numero_edital"`
	OrgaoLicitante string `json:"orgao_licitante"`
	Objeto         string `json:"objeto"`
	DataAbertura   string `json:"data_abertura,omitempty"`
	LinkEdital     string `json:"link_edital,omitempty"`
	Status         string `json:"status"`
	Observacoes    string `json:"observacoes,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
