package request

// CadastroRequest registration payload sent by the form.
// Field order is the wire order: nome, email, telefone, senha.
// Used by:
//   - internal/form: Submitter.Handle builds it from the inputs
//   - internal/handler: UsuarioHandler.Cadastrar / Criar bind it
type CadastroRequest struct {
	Nome     string `json:"nome" binding:"max=200"`
	Email    string `json:"email" binding:"max=50"`
	Telefone string `json:"telefone" binding:"max=15"`
	Senha    string `json:"senha"`
}
