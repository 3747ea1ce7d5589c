package usuario

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"cadastro_api/internal/dao/mysql"
	"cadastro_api/internal/dao/redis"
	"cadastro_api/internal/dto/request"
	"cadastro_api/internal/dto/respond"
	"cadastro_api/internal/infrastructure/mq"
	"cadastro_api/internal/model"
	"cadastro_api/pkg/constants"
	"cadastro_api/pkg/errorx"
	"cadastro_api/pkg/util/jwt"
)

// usuarioService user business logic.
// Dependencies are injected through the constructor.
type usuarioService struct {
	repo      mysql.UsuarioRepository
	cache     redis.CacheService
	publisher mq.Publisher
}

// NewUsuarioService constructor
func NewUsuarioService(repo mysql.UsuarioRepository, cache redis.CacheService, publisher mq.Publisher) *usuarioService {
	return &usuarioService{repo: repo, cache: cache, publisher: publisher}
}

func sessionKey(id uint) string {
	return constants.USUARIO_TOKEN_KEY_PREFIX + strconv.FormatUint(uint64(id), 10)
}

func toRespond(u *model.Usuario) respond.UsuarioRespond {
	year, month, day := u.CreatedAt.Date()
	return respond.UsuarioRespond{
		ID:        u.ID,
		Version:   u.Version,
		Nome:      u.Nome,
		Email:     u.Email,
		Telefone:  u.Telefone,
		CreatedAt: strconv.Itoa(year) + "." + strconv.Itoa(int(month)) + "." + strconv.Itoa(day),
	}
}

// publish sends an event; a failure never fails the request.
func (s *usuarioService) publish(ctx context.Context, eventType string, u *model.Usuario) {
	ev := mq.UsuarioEvent{Type: eventType, ID: u.ID, Nome: u.Nome, Email: u.Email, At: time.Now()}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		zap.L().Warn("publish usuario event", zap.String("type", eventType), zap.Uint("id", u.ID), zap.Error(err))
	}
}

// checkEmailFree email must not belong to another user; empty emails are not checked
func (s *usuarioService) checkEmailFree(email string, selfID uint) error {
	if email == "" {
		return nil
	}
	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if existing.ID == selfID {
		return nil
	}
	return errorx.New(errorx.CodeUserExist, "email ja cadastrado")
}

// checkSenhaLen counts bytes, a multi-byte password hits the bcrypt limit sooner
func checkSenhaLen(senha string) error {
	if len(senha) > model.MaxSenhaBytes {
		return errorx.Newf(errorx.CodeInvalidParam, "senha excede %d bytes", model.MaxSenhaBytes)
	}
	return nil
}

// ListarUsuarios lists every user
func (s *usuarioService) ListarUsuarios(ctx context.Context) ([]respond.UsuarioRespond, error) {
	usuarios, err := s.repo.FindAll()
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	rsp := make([]respond.UsuarioRespond, 0, len(usuarios))
	for i := range usuarios {
		rsp = append(rsp, toRespond(&usuarios[i]))
	}
	return rsp, nil
}

// Cadastrar registers a new user
func (s *usuarioService) Cadastrar(ctx context.Context, req request.CadastroRequest) (*respond.UsuarioRespond, error) {
	if err := checkSenhaLen(req.Senha); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(req.Email, 0); err != nil {
		return nil, err
	}

	u := &model.Usuario{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		RawSenha: req.Senha,
	}
	if err := s.repo.Create(u); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	zap.L().Info("usuario cadastrado", zap.Uint("id", u.ID), zap.String("email", u.Email))

	s.publish(ctx, mq.EventUsuarioCriado, u)
	rsp := toRespond(u)
	return &rsp, nil
}

// Editar replaces the user with req.ID, or creates it with that ID.
// An empty senha keeps the stored password.
func (s *usuarioService) Editar(ctx context.Context, req request.EditarUsuarioRequest) (*respond.UsuarioRespond, error) {
	if err := checkSenhaLen(req.Senha); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(req.Email, req.ID); err != nil {
		return nil, err
	}

	u := &model.Usuario{
		ID:       req.ID,
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
	}
	if req.Senha != "" {
		hash, err := model.HashSenha(req.Senha)
		if err != nil {
			zap.L().Error("hash senha", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		u.Senha = hash
	}

	created, err := s.repo.Save(u, req.Version)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeConflict {
			return nil, err
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	if created {
		s.publish(ctx, mq.EventUsuarioCriado, u)
	} else {
		s.publish(ctx, mq.EventUsuarioEditado, u)
	}
	rsp := toRespond(u)
	return &rsp, nil
}

// Excluir deletes the user and drops its session
func (s *usuarioService) Excluir(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(id); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.Newf(errorx.CodeUserNotExist, "usuario %d nao existe", id)
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if err := s.cache.Delete(ctx, sessionKey(id)); err != nil {
		// the token id no longer matches any user, the middleware rejects it anyway
		zap.L().Warn("drop session", zap.Uint("id", id), zap.Error(err))
	}
	s.publish(ctx, mq.EventUsuarioExcluido, &model.Usuario{ID: id})
	return nil
}

// ValidarSenha compares senha with the stored hash
func (s *usuarioService) ValidarSenha(ctx context.Context, id uint, senha string) (bool, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		if errorx.IsNotFound(err) {
			return false, errorx.Newf(errorx.CodeUserNotExist, "usuario %d nao existe", id)
		}
		zap.L().Error(err.Error())
		return false, errorx.ErrServerBusy
	}
	return u.CheckSenha(senha), nil
}

// Logar issues a token when email and senha match.
// Unknown email and wrong password get the same answer.
func (s *usuarioService) Logar(ctx context.Context, req request.LoginRequest) (*respond.TokenRespond, error) {
	u, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.ErrForbidden
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if !u.CheckSenha(req.Senha) {
		return nil, errorx.ErrForbidden
	}

	token, tokenID, err := jwt.CreateToken(u.ID, u.Nome)
	if err != nil {
		zap.L().Error("create token", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// a later login replaces the token id, older tokens stop working
	if err := s.cache.Set(ctx, sessionKey(u.ID), tokenID, jwt.Expiry()); err != nil {
		zap.L().Error("store session", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return &respond.TokenRespond{Token: token}, nil
}

// VerificarSessao accepts tokenID only when it is the user's current one
func (s *usuarioService) VerificarSessao(ctx context.Context, usuarioID uint, tokenID string) error {
	current, err := s.cache.Get(ctx, sessionKey(usuarioID))
	if err != nil {
		zap.L().Error("read session", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if current == "" || current != tokenID {
		return errorx.New(errorx.CodeUnauthorized, "sessao expirada, faca login novamente")
	}
	return nil
}
