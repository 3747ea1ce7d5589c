package respond

// UsuarioRespond public view of a user, the password hash is never included.
type UsuarioRespond struct {
	ID        uint   `json:"id"`
	Version   int    `json:"version"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	CreatedAt string `json:"created_at"`
}
