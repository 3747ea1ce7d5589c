// Package mysql is the data access layer.
// Interfaces live here, implementations in their own files.
package mysql

import (
	"cadastro_api/internal/model"
)

// UsuarioRepository user persistence
type UsuarioRepository interface {
	// FindAll every user ordered by id
	FindAll() ([]model.Usuario, error)
	// FindByID one user, CodeNotFound when missing
	FindByID(id uint) (*model.Usuario, error)
	// FindByEmail first user with that email, CodeNotFound when missing
	FindByEmail(email string) (*model.Usuario, error)
	// Create inserts a new user and fills its ID
	Create(u *model.Usuario) error
	// Save updates u by ID, or inserts it when the ID is unknown.
	// A non-nil expectedVersion must match the stored version (CodeConflict otherwise).
	Save(u *model.Usuario, expectedVersion *int) (created bool, err error)
	// DeleteByID removes a user, CodeNotFound when nothing was deleted
	DeleteByID(id uint) error
}
