package auth

import (
	"time"

	"authcore/config"
	"authcore/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtSigner is a concrete implementation of the TokenSigner interface using HS256 JWTs.
// Tokens carry the account id as subject and never expire on their own; a session ends when
// the next login overwrites the stored token.
type jwtSigner struct {
	secret []byte
	now    func() time.Time
}

// NewJWTSigner is the constructor for jwtSigner.
func NewJWTSigner(cfg *config.Config) (service.TokenSigner, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtSigner{
		secret: []byte(cfg.SecretKey.Access),
		now:    time.Now,
	}, nil
}

// Sign creates a token bound to accountID.
func (s *jwtSigner) Sign(accountID uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  accountID.String(),
		IssuedAt: jwt.NewNumericDate(s.now()),
		// A unique id keeps two logins within the same second from producing the same token.
		ID: uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify decodes token and returns the bound account id.
// Any parse, signature or subject problem yields ok=false.
func (s *jwtSigner) Verify(token string) (uuid.UUID, bool) {
	if token == "" {
		return uuid.Nil, false
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return uuid.Nil, false
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, false
	}

	return accountID, true
}
