// Package handler holds the gin handlers.
// Services are injected through NewHandlers.
package handler

import (
	"cadastro_api/internal/service"
)

// Handlers every handler, used by the router
type Handlers struct {
	Usuario *UsuarioHandler
	Hello   *HelloHandler
}

// NewHandlers builds the handlers from the services
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Usuario: NewUsuarioHandler(svc.Usuario),
		Hello:   NewHelloHandler(svc.Hello),
	}
}
