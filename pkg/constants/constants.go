package constants

const (
	USUARIO_TOKEN_KEY_PREFIX = "usuario_token:" // redis key of the current token id, + usuario id
	CTX_USUARIO_ID           = "usuario_id"     // gin context key set by the auth middleware
	CTX_USUARIO_NOME         = "usuario_nome"   // gin context key set by the auth middleware
	EVENT_BUFFER_SIZE        = 100              // channel publisher buffer
)
