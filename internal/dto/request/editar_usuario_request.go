package request

// EditarUsuarioRequest full replacement of a user, PUT /usuarios.
// An unknown ID creates the user with that ID. Version is optional;
// when set it must match the stored one.
type EditarUsuarioRequest struct {
	ID       uint   `json:"id" binding:"required"`
	Version  *int   `json:"version"`
	Nome     string `json:"nome" binding:"max=200"`
	Email    string `json:"email" binding:"max=50"`
	Telefone string `json:"telefone" binding:"max=15"`
	Senha    string `json:"senha"`
}
