// Package service declares the business interfaces the handlers call.
package service

import (
	"context"

	"cadastro_api/internal/dto/request"
	"cadastro_api/internal/dto/respond"
)

// UsuarioService registration, user management and login
type UsuarioService interface {
	// ListarUsuarios every registered user
	ListarUsuarios(ctx context.Context) ([]respond.UsuarioRespond, error)
	// Cadastrar registers a user, the password is stored hashed
	Cadastrar(ctx context.Context, req request.CadastroRequest) (*respond.UsuarioRespond, error)
	// Editar replaces a user, creating it when the id is unknown
	Editar(ctx context.Context, req request.EditarUsuarioRequest) (*respond.UsuarioRespond, error)
	// Excluir deletes a user and ends its session
	Excluir(ctx context.Context, id uint) error
	// ValidarSenha checks a password against the stored hash
	ValidarSenha(ctx context.Context, id uint, senha string) (bool, error)
	// Logar checks the credentials and issues a token
	Logar(ctx context.Context, req request.LoginRequest) (*respond.TokenRespond, error)
	// VerificarSessao rejects tokens superseded by a later login
	VerificarSessao(ctx context.Context, usuarioID uint, tokenID string) error
}

// HelloService GET /api/hello
type HelloService interface {
	Hello(name string) string
}
