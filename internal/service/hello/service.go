package hello

import "fmt"

type helloService struct{}

// NewHelloService greeting service
func NewHelloService() *helloService {
	return &helloService{}
}

// Hello builds the welcome message for name.
func (h *helloService) Hello(name string) string {
	return fmt.Sprintf("Olá, %s! Bem-vindo à API REST!", name)
}
