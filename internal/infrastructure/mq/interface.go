// Package mq publishes usuario lifecycle events.
// Two modes, picked by kafkaConfig.messageMode:
//   - "kafka":   events are written to the cadastro topic
//   - "channel": events go through an in-process channel and are only logged
package mq

import (
	"context"
	"time"
)

// Event types
const (
	EventUsuarioCriado   = "usuario.criado"
	EventUsuarioEditado  = "usuario.editado"
	EventUsuarioExcluido = "usuario.excluido"
)

// UsuarioEvent message body, JSON encoded. Never carries the password.
type UsuarioEvent struct {
	Type  string    `json:"type"`
	ID    uint      `json:"id"`
	Nome  string    `json:"nome,omitempty"`
	Email string    `json:"email,omitempty"`
	At    time.Time `json:"at"`
}

// Publisher sends events. Callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, ev UsuarioEvent) error
	Close() error
}
