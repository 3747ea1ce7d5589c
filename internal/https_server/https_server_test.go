package https_server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cadastro_api/internal/config"
	"cadastro_api/internal/dto/request"
	"cadastro_api/internal/dto/respond"
	"cadastro_api/internal/form"
	"cadastro_api/internal/handler"
	"cadastro_api/internal/service"
	"cadastro_api/pkg/errorx"
	"cadastro_api/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsuarios accepts one session token id
type fakeUsuarios struct {
	tokenID    string
	deleted    []uint
	cadastrado chan request.CadastroRequest
}

func (f *fakeUsuarios) ListarUsuarios(ctx context.Context) ([]respond.UsuarioRespond, error) {
	return []respond.UsuarioRespond{}, nil
}

func (f *fakeUsuarios) Cadastrar(ctx context.Context, req request.CadastroRequest) (*respond.UsuarioRespond, error) {
	if f.cadastrado != nil {
		f.cadastrado <- req
	}
	return &respond.UsuarioRespond{ID: 1, Nome: req.Nome}, nil
}

func (f *fakeUsuarios) Editar(ctx context.Context, req request.EditarUsuarioRequest) (*respond.UsuarioRespond, error) {
	return &respond.UsuarioRespond{ID: req.ID}, nil
}

func (f *fakeUsuarios) Excluir(ctx context.Context, id uint) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeUsuarios) ValidarSenha(ctx context.Context, id uint, senha string) (bool, error) {
	return true, nil
}

func (f *fakeUsuarios) Logar(ctx context.Context, req request.LoginRequest) (*respond.TokenRespond, error) {
	return nil, errorx.ErrForbidden
}

func (f *fakeUsuarios) VerificarSessao(ctx context.Context, usuarioID uint, tokenID string) error {
	if tokenID != f.tokenID {
		return errorx.New(errorx.CodeUnauthorized, "replaced")
	}
	return nil
}

type fakeHello struct{}

func (fakeHello) Hello(name string) string { return "Olá, " + name }

func setupEngine(t *testing.T, conf *config.Config) (*gin.Engine, *fakeUsuarios) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	usuarios := &fakeUsuarios{}
	handlers := handler.NewHandlers(&service.Services{Usuario: usuarios, Hello: fakeHello{}})
	return Init(handlers, usuarios, conf), usuarios
}

func serve(e http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestPublicRoutes(t *testing.T) {
	e, _ := setupEngine(t, config.Default())

	req := httptest.NewRequest(http.MethodPost, "/cadastro", strings.NewReader(`{"nome":"Alice","email":"","telefone":"","senha":""}`))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusCreated, serve(e, req).Code)

	assert.Equal(t, http.StatusOK, serve(e, httptest.NewRequest(http.MethodGet, "/usuarios", nil)).Code)

	w := serve(e, httptest.NewRequest(http.MethodGet, "/api/hello?name=Ana", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Olá, Ana")

	login := httptest.NewRequest(http.MethodPost, "/usuarios/login", strings.NewReader(`{"email":"a@x.com","senha":"x"}`))
	login.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusForbidden, serve(e, login).Code)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	e, usuarios := setupEngine(t, config.Default())

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/usuarios"},
		{http.MethodPut, "/usuarios"},
		{http.MethodDelete, "/usuarios/3"},
	} {
		w := serve(e, httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusUnauthorized, w.Code, tc.method+" "+tc.path)
	}
	assert.Empty(t, usuarios.deleted)
}

func TestDeleteWithSessionToken(t *testing.T) {
	jwt.Init("MyK3Yt0T0k3nP4r@S3CuRiTY@Sp3c14L", "DevNice", 12)
	e, usuarios := setupEngine(t, config.Default())

	bearer, tokenID, err := jwt.CreateToken(1, "Alice")
	require.NoError(t, err)
	usuarios.tokenID = tokenID

	req := httptest.NewRequest(http.MethodDelete, "/usuarios/3", nil)
	req.Header.Set("Authorization", bearer)
	assert.Equal(t, http.StatusNoContent, serve(e, req).Code)
	assert.Equal(t, []uint{3}, usuarios.deleted)
}

func TestCorsPreflightAnyOrigin(t *testing.T) {
	e, _ := setupEngine(t, config.Default())

	req := httptest.NewRequest(http.MethodOptions, "/cadastro", nil)
	req.Header.Set("Origin", "http://forms.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	w := serve(e, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestTLSRedirectWhenEnabled(t *testing.T) {
	conf := config.Default()
	conf.TLSConfig = config.TLSConfig{Enable: true, Host: "example.com", Port: 8443}
	e, _ := setupEngine(t, conf)

	w := serve(e, httptest.NewRequest(http.MethodGet, "http://example.com/usuarios", nil))
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "https://example.com:8443/usuarios", w.Header().Get("Location"))
}

func TestFormSubmitsToEngine(t *testing.T) {
	e, usuarios := setupEngine(t, config.Default())
	usuarios.cadastrado = make(chan request.CadastroRequest, 1)
	srv := httptest.NewServer(e)
	defer srv.Close()

	f := form.New()
	f.Fill("Alice", "a@x.com", "555-1234", "secret")
	d := form.NewSubmitter(f, srv.URL+"/cadastro", srv.Client()).Submit()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := d.Wait(ctx)
	require.NoError(t, err)
	require.NoError(t, res.Err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	got := <-usuarios.cadastrado
	assert.Equal(t, request.CadastroRequest{Nome: "Alice", Email: "a@x.com", Telefone: "555-1234", Senha: "secret"}, got)
	assert.Empty(t, f.Nome.Value())
}
