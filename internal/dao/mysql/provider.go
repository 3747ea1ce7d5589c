package mysql

import (
	"gorm.io/gorm"
)

// Repositories groups every repository, handed to the service layer.
type Repositories struct {
	db      *gorm.DB
	Usuario UsuarioRepository
}

// NewRepositories builds the repositories on top of db.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:      db,
		Usuario: NewUsuarioRepository(db),
	}
}

// Close releases the underlying connection pool.
func (r *Repositories) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
