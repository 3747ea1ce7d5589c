// Package form models the registration form and its submit handler.
//
// A Form holds the four text inputs the page exposes, each reachable through
// the same selector the page uses (".nome", ".email", ".tel", ".senha").
// Submitter reacts to a SubmitEvent by posting the current values as JSON and
// clearing the inputs right away, without waiting for the server.
package form

import (
	"fmt"
	"sync"
)

// Selectors of the inputs.
const (
	SelectorNome     = ".nome"
	SelectorEmail    = ".email"
	SelectorTelefone = ".tel"
	SelectorSenha    = ".senha"
)

// Field is one text input. Safe for concurrent use.
type Field struct {
	mu    sync.RWMutex
	value string
}

// Value returns the current text.
func (f *Field) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// SetValue replaces the text.
func (f *Field) SetValue(v string) {
	f.mu.Lock()
	f.value = v
	f.mu.Unlock()
}

// Clear empties the field.
func (f *Field) Clear() {
	f.SetValue("")
}

// Form is the registration form.
type Form struct {
	Nome     *Field
	Email    *Field
	Telefone *Field
	Senha    *Field
}

// New returns a form with four empty inputs.
func New() *Form {
	return &Form{
		Nome:     &Field{},
		Email:    &Field{},
		Telefone: &Field{},
		Senha:    &Field{},
	}
}

// Field looks an input up by selector.
func (f *Form) Field(selector string) (*Field, error) {
	switch selector {
	case SelectorNome:
		return f.Nome, nil
	case SelectorEmail:
		return f.Email, nil
	case SelectorTelefone:
		return f.Telefone, nil
	case SelectorSenha:
		return f.Senha, nil
	}
	return nil, fmt.Errorf("form has no input %q", selector)
}

// Fill sets every input at once.
func (f *Form) Fill(nome, email, telefone, senha string) {
	f.Nome.SetValue(nome)
	f.Email.SetValue(email)
	f.Telefone.SetValue(telefone)
	f.Senha.SetValue(senha)
}

// Reset clears every input.
func (f *Form) Reset() {
	f.Nome.Clear()
	f.Email.Clear()
	f.Telefone.Clear()
	f.Senha.Clear()
}

// SubmitEvent is fired when the form is submitted.
// Its default action (leaving the page) runs unless PreventDefault is called.
// Target is informational: a Submitter always reads the form it was bound to.
type SubmitEvent struct {
	Target *Form

	mu        sync.Mutex
	prevented bool
}

// NewSubmitEvent creates a submit event targeting f.
func NewSubmitEvent(f *Form) *SubmitEvent {
	return &SubmitEvent{Target: f}
}

// PreventDefault cancels the default action.
func (e *SubmitEvent) PreventDefault() {
	e.mu.Lock()
	e.prevented = true
	e.mu.Unlock()
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *SubmitEvent) DefaultPrevented() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prevented
}
