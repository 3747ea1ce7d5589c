// Package model defines the database entities.
package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Usuario a registered user, table usuarios.
type Usuario struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement"`

	// Version is bumped on every update, see repository.Save.
	Version int `gorm:"column:version;not null;default:0"`

	Nome     string `gorm:"column:nome;type:varchar(200)"`
	Email    string `gorm:"column:email;type:varchar(50);index"`
	Telefone string `gorm:"column:telefone;type:varchar(15)"`

	// Senha bcrypt hash, never the plain password
	Senha string `gorm:"column:senha;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	// RawSenha plain password set by the service, hashed in BeforeSave
	RawSenha string `gorm:"-" json:"-"`
}

// TableName fixed to "usuarios", the existing schema.
func (Usuario) TableName() string {
	return "usuarios"
}

// BeforeSave hashes RawSenha into Senha on create and update.
func (u *Usuario) BeforeSave(tx *gorm.DB) error {
	if u.RawSenha == "" {
		return nil
	}
	hash, err := HashSenha(u.RawSenha)
	if err != nil {
		return err
	}
	u.Senha = hash
	u.RawSenha = ""
	return nil
}

// MaxSenhaBytes bcrypt hashes at most 72 bytes and rejects longer input.
const MaxSenhaBytes = 72

// HashSenha bcrypt with the default cost.
func HashSenha(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckSenha reports whether plain matches the stored hash.
func (u *Usuario) CheckSenha(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Senha), []byte(plain)) == nil
}
