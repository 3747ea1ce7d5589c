package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"cadastro_api/internal/dto/request"
	"cadastro_api/internal/dto/respond"
	"cadastro_api/internal/service"
	"cadastro_api/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := InitTrans("pt_BR"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// stubUsuarioService records the last request and returns canned results
type stubUsuarioService struct {
	cadastro request.CadastroRequest
	editar   request.EditarUsuarioRequest
	excluido uint
	err      error
}

var _ service.UsuarioService = (*stubUsuarioService)(nil)

func (s *stubUsuarioService) ListarUsuarios(ctx context.Context) ([]respond.UsuarioRespond, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []respond.UsuarioRespond{{ID: 1, Nome: "Alice"}, {ID: 2, Nome: "Bob"}}, nil
}

func (s *stubUsuarioService) Cadastrar(ctx context.Context, req request.CadastroRequest) (*respond.UsuarioRespond, error) {
	s.cadastro = req
	if s.err != nil {
		return nil, s.err
	}
	return &respond.UsuarioRespond{ID: 1, Nome: req.Nome, Email: req.Email, Telefone: req.Telefone}, nil
}

func (s *stubUsuarioService) Editar(ctx context.Context, req request.EditarUsuarioRequest) (*respond.UsuarioRespond, error) {
	s.editar = req
	if s.err != nil {
		return nil, s.err
	}
	return &respond.UsuarioRespond{ID: req.ID, Version: 1, Nome: req.Nome}, nil
}

func (s *stubUsuarioService) Excluir(ctx context.Context, id uint) error {
	s.excluido = id
	return s.err
}

func (s *stubUsuarioService) ValidarSenha(ctx context.Context, id uint, senha string) (bool, error) {
	return senha == "secret", s.err
}

func (s *stubUsuarioService) Logar(ctx context.Context, req request.LoginRequest) (*respond.TokenRespond, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &respond.TokenRespond{Token: "Bearer abc"}, nil
}

func (s *stubUsuarioService) VerificarSessao(ctx context.Context, usuarioID uint, tokenID string) error {
	return s.err
}

func setupUsuarioRouter(svc service.UsuarioService) *gin.Engine {
	h := NewUsuarioHandler(svc)
	r := gin.New()
	r.POST("/cadastro", h.Cadastrar)
	r.GET("/usuarios", h.Listar)
	r.POST("/usuarios", h.Criar)
	r.PUT("/usuarios", h.Editar)
	r.DELETE("/usuarios/:id", h.Excluir)
	r.POST("/usuarios/login", h.Logar)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestCadastrarCreated(t *testing.T) {
	svc := &stubUsuarioService{}
	r := setupUsuarioRouter(svc)

	w := doJSON(r, http.MethodPost, "/cadastro", `{"nome":"Alice","email":"a@x.com","telefone":"555-1234","senha":"secret"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(errorx.CodeSuccess), body["code"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Alice", data["nome"])
	assert.Equal(t, request.CadastroRequest{Nome: "Alice", Email: "a@x.com", Telefone: "555-1234", Senha: "secret"}, svc.cadastro)
}

func TestCadastrarAcceptsEmptyStrings(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{})

	w := doJSON(r, http.MethodPost, "/cadastro", `{"nome":"","email":"","telefone":"","senha":""}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCadastrarValidationMessagesByField(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{})

	long := strings.Repeat("x", 201)
	w := doJSON(r, http.MethodPost, "/cadastro", `{"nome":"`+long+`","telefone":"1234567890123456"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(errorx.CodeInvalidParam), body["code"])
	msg, ok := body["msg"].(map[string]any)
	require.True(t, ok, "msg should map field to message")
	assert.Contains(t, msg, "nome")
	assert.Contains(t, msg, "telefone")
	assert.NotContains(t, msg, "email")
}

func TestCadastrarMalformedJSON(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{})

	w := doJSON(r, http.MethodPost, "/cadastro", `{"nome":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(errorx.CodeInvalidParam), decode(t, w)["code"])
}

func TestCadastrarDuplicateEmailIsConflict(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{err: errorx.New(errorx.CodeUserExist, "email ja cadastrado")})

	w := doJSON(r, http.MethodPost, "/cadastro", `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email ja cadastrado", decode(t, w)["msg"])
}

func TestListar(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{})

	w := doJSON(r, http.MethodGet, "/usuarios", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"], 2)
}

func TestListarPlainErrorIsServerBusy(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{err: assert.AnError})

	w := doJSON(r, http.MethodGet, "/usuarios", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, float64(errorx.CodeServerBusy), decode(t, w)["code"])
}

func TestEditarCreatedAndVersionPassed(t *testing.T) {
	svc := &stubUsuarioService{}
	r := setupUsuarioRouter(svc)

	w := doJSON(r, http.MethodPut, "/usuarios", `{"id":999,"version":0,"nome":"Usuario Teste"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(999), svc.editar.ID)
	require.NotNil(t, svc.editar.Version)
	assert.Equal(t, 0, *svc.editar.Version)
}

func TestEditarRequiresID(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{})

	w := doJSON(r, http.MethodPut, "/usuarios", `{"nome":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["msg"], "id")
}

func TestEditarConflict(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{err: errorx.New(errorx.CodeConflict, "stale")})

	w := doJSON(r, http.MethodPut, "/usuarios", `{"id":1,"version":3}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestExcluir(t *testing.T) {
	svc := &stubUsuarioService{}
	r := setupUsuarioRouter(svc)

	w := doJSON(r, http.MethodDelete, "/usuarios/7", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
	assert.Equal(t, uint(7), svc.excluido)
}

func TestExcluirBadID(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{})

	for _, id := range []string{"abc", "0", "-1"} {
		w := doJSON(r, http.MethodDelete, "/usuarios/"+id, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

func TestExcluirUnknown(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{err: errorx.New(errorx.CodeUserNotExist, "usuario 7 nao existe")})

	w := doJSON(r, http.MethodDelete, "/usuarios/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogar(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{})

	w := doJSON(r, http.MethodPost, "/usuarios/login", `{"email":"a@x.com","senha":"secret"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "Bearer abc", data["token"])
}

func TestLogarForbidden(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{err: errorx.ErrForbidden})

	w := doJSON(r, http.MethodPost, "/usuarios/login", `{"email":"a@x.com","senha":"wrong"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, float64(errorx.CodeForbidden), decode(t, w)["code"])
}

func TestLogarMissingFields(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{})

	w := doJSON(r, http.MethodPost, "/usuarios/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	msg := decode(t, w)["msg"].(map[string]any)
	assert.Contains(t, msg, "email")
	assert.Contains(t, msg, "senha")
}

func TestHello(t *testing.T) {
	h := NewHelloHandler(helloStub{})
	r := gin.New()
	r.GET("/api/hello", h.Hello)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hello?name=Ana", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "oi Ana", decode(t, w)["data"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hello", bytes.NewReader(nil)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["msg"], "name")
}

type helloStub struct{}

func (helloStub) Hello(name string) string { return "oi " + name }

func TestCadastrarSenhaTooLongIsBadRequest(t *testing.T) {
	r := setupUsuarioRouter(&stubUsuarioService{err: errorx.New(errorx.CodeInvalidParam, "senha excede 72 bytes")})

	w := doJSON(r, http.MethodPost, "/cadastro", `{"nome":"Alice","senha":"`+strings.Repeat("x", 73)+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(errorx.CodeInvalidParam), body["code"])
	assert.Equal(t, "senha excede 72 bytes", body["msg"])
}
