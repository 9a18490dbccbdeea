package documento

// UploadDocumentoRequest is assembled by the handler from the multipart
// form. Dates travel as YYYY-MM-DD strings and are parsed by the service.
type UploadDocumentoRequest struct {
	EmpresaID    string
	Tipo         string
	NomeArquivo  string
	Conteudo     []byte
	DataEmissao  string
	DataValidade string
}

type DocumentoResponse struct {
	ID             string `json:"id"`
	EmpresaID      string `json:"empresa_id"`
	Tipo           string `json:"tipo"`
	NomeArquivo    string `json:"nome_arquivo"`
	CaminhoArquivo string `json:"caminho_arquivo"`
	DataEmissao    string `json:"data_emissao,omitempty"`
	DataValidade   string `json:"data_validade,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}
