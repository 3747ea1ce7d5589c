package mysql

import (
	"errors"
	"time"

	"cadastro_api/internal/model"
	"cadastro_api/pkg/errorx"

	"gorm.io/gorm"
)

type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository creates the gorm backed UsuarioRepository.
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

// FindAll lists every user
func (r *usuarioRepository) FindAll() ([]model.Usuario, error) {
	var usuarios []model.Usuario
	if err := r.db.Order("id").Find(&usuarios).Error; err != nil {
		return nil, wrapDBError(err, "listar usuarios")
	}
	return usuarios, nil
}

// FindByID looks a user up by primary key
func (r *usuarioRepository) FindByID(id uint) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "buscar usuario id=%d", id)
	}
	return &u, nil
}

// FindByEmail looks a user up by email
func (r *usuarioRepository) FindByEmail(email string) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, wrapDBErrorf(err, "buscar usuario email=%s", email)
	}
	return &u, nil
}

// Create inserts u
func (r *usuarioRepository) Create(u *model.Usuario) error {
	if err := r.db.Create(u).Error; err != nil {
		return wrapDBError(err, "criar usuario")
	}
	return nil
}

// Save replaces the user with u.ID, creating it when absent.
// The update only matches the version read inside the same transaction,
// so a concurrent writer makes it affect zero rows.
func (r *usuarioRepository) Save(u *model.Usuario, expectedVersion *int) (created bool, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var current model.Usuario
		findErr := tx.First(&current, u.ID).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			created = true
			if err := tx.Create(u).Error; err != nil {
				return wrapDBErrorf(err, "criar usuario id=%d", u.ID)
			}
			return nil
		}
		if findErr != nil {
			return wrapDBErrorf(findErr, "buscar usuario id=%d", u.ID)
		}

		if expectedVersion != nil && *expectedVersion != current.Version {
			return errorx.Newf(errorx.CodeConflict, "usuario id=%d foi alterado por outra requisicao", u.ID)
		}
		if u.Senha == "" {
			u.Senha = current.Senha
		}

		now := time.Now()
		res := tx.Model(&model.Usuario{}).
			Where("id = ? AND version = ?", u.ID, current.Version).
			Updates(map[string]any{
				"nome":       u.Nome,
				"email":      u.Email,
				"telefone":   u.Telefone,
				"senha":      u.Senha,
				"version":    current.Version + 1,
				"updated_at": now,
			})
		if res.Error != nil {
			return wrapDBErrorf(res.Error, "atualizar usuario id=%d", u.ID)
		}
		if res.RowsAffected == 0 {
			return errorx.Newf(errorx.CodeConflict, "usuario id=%d foi alterado por outra requisicao", u.ID)
		}

		u.Version = current.Version + 1
		u.CreatedAt = current.CreatedAt
		u.UpdatedAt = now
		return nil
	})
	return created, err
}

// DeleteByID hard delete, the table has no deleted_at column
func (r *usuarioRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&model.Usuario{}, id)
	if res.Error != nil {
		return wrapDBErrorf(res.Error, "excluir usuario id=%d", id)
	}
	if res.RowsAffected == 0 {
		return errorx.Newf(errorx.CodeNotFound, "usuario id=%d nao encontrado", id)
	}
	return nil
}
