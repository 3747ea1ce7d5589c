package mysql

import (
	"fmt"

	"cadastro_api/internal/config"
	"cadastro_api/internal/model"

	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DSN builds the go-sql-driver connection string.
// Format: user:password@tcp(host:port)/database?params
func DSN(conf config.MysqlConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.User,
		conf.Password,
		conf.Host,
		conf.Port,
		conf.DatabaseName,
	)
}

// Init connects to MySQL, migrates the schema and returns the repositories.
func Init(conf config.MysqlConfig) (*Repositories, error) {
	db, err := gorm.Open(mysqldriver.Open(DSN(conf)), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	// AutoMigrate only adds, it never drops columns or data.
	if err = db.AutoMigrate(&model.Usuario{}); err != nil {
		return nil, fmt.Errorf("migrate usuarios: %w", err)
	}

	return NewRepositories(db), nil
}
