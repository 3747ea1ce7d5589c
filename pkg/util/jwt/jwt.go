package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Prefix is prepended to issued tokens and stripped when parsing.
const Prefix = "Bearer "

// JWTConfig signing settings
type JWTConfig struct {
	Secret string
	Issuer string
	Expiry time.Duration
}

// set by Init
var jwtConfig *JWTConfig

// ErrNotInitialized is returned when Init has not been called.
var ErrNotInitialized = errors.New("jwt not initialized")

// Init sets the signing key, issuer and token lifetime.
func Init(secret, issuer string, expiryHours int) {
	jwtConfig = &JWTConfig{
		Secret: secret,
		Issuer: issuer,
		Expiry: time.Duration(expiryHours) * time.Hour,
	}
}

// Expiry is the configured token lifetime.
func Expiry() time.Duration {
	if jwtConfig == nil {
		return 0
	}
	return jwtConfig.Expiry
}

// Claims the subject is the user's nome.
type Claims struct {
	UsuarioID uint   `json:"usuario_id"`
	TokenID   string `json:"token_id"` // compared with the session store on every request
	jwt.RegisteredClaims
}

// CreateToken signs a HS256 token for the user and returns it with the
// "Bearer " prefix, plus the token id.
func CreateToken(usuarioID uint, nome string) (bearer string, tokenID string, err error) {
	if jwtConfig == nil {
		return "", "", ErrNotInitialized
	}
	tokenID = uuid.NewString()
	now := time.Now()
	claims := Claims{
		UsuarioID: usuarioID,
		TokenID:   tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   nome,
			Issuer:    jwtConfig.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtConfig.Expiry)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtConfig.Secret))
	if err != nil {
		return "", "", err
	}
	return Prefix + signed, tokenID, nil
}

// ParseToken validates signature, issuer, expiry and a non-empty subject.
// The "Bearer " prefix is optional.
func ParseToken(tokenString string) (*Claims, error) {
	if jwtConfig == nil {
		return nil, ErrNotInitialized
	}
	tokenString = strings.TrimPrefix(tokenString, Prefix)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtConfig.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(jwtConfig.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}
	return claims, nil
}
