// Package service wires the service implementations together.
package service

import (
	"cadastro_api/internal/dao/mysql"
	"cadastro_api/internal/dao/redis"
	"cadastro_api/internal/infrastructure/mq"
	"cadastro_api/internal/service/hello"
	"cadastro_api/internal/service/usuario"
)

// Services groups every service, handed to the handler layer.
type Services struct {
	Usuario UsuarioService
	Hello   HelloService
}

// NewServices builds the services from their dependencies.
func NewServices(repos *mysql.Repositories, cache redis.CacheService, publisher mq.Publisher) *Services {
	return &Services{
		Usuario: usuario.NewUsuarioService(repos.Usuario, cache, publisher),
		Hello:   hello.NewHelloService(),
	}
}
