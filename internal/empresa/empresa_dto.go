package empresa

type CreateEmpresaRequest struct {
	RazaoSocial   string `json:"razao_social" binding:"required"`
	CNPJ          string `json:"cnpj" binding:"required"`
	Endereco      string `json:"endereco"`
	Telefone      string `json:"telefone"`
	Email         string `json:"email"`
	Porte         string `json:"porte" binding:"required"`
	CNAEPrincipal string `json:"cnae_principal"`
}

// UpdateEmpresaRequest carries every field as a pointer so the service can
// tell "absent" apart from "set to empty".
type UpdateEmpresaRequest struct {
	RazaoSocial   *string `json:"razao_social"`
	CNPJ          *string `json:"cnpj"`
	Endereco      *string `json:"endereco"`
	Telefone      *string `json:"telefone"`
	Email         *string `json:"email"`
	Porte         *string `json:"porte"`
	CNAEPrincipal *string `json:"cnae_principal"`
}

type EmpresaResponse struct {
	ID            string `json:"id"`
	RazaoSocial   string `json:"razao_social"`
	CNPJ          string `json:"cnpj"`
	Endereco      string `json:"endereco,omitempty"`
	Telefone      string `json:"telefone,omitempty"`
	Email         string `json:"email,omitempty"`
	Porte         string `json:"porte"`
	CNAEPrincipal string `json:"cnae_principal,omitempty"`
	CreatedAt     string `json:"created_at"`
}
