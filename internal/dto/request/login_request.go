package request

// LoginRequest password login, POST /usuarios/login
type LoginRequest struct {
	Email string `json:"email" binding:"required,max=50"`
	Senha string `json:"senha" binding:"required"`
}
