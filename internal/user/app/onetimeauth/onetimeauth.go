//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Service=Service,NonceStorage=NonceStorage"
package onetimeauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenFormat    = errors.New("token is not a base64 wrapped value")
	ErrInvalidSignature      = errors.New("token signature is invalid")
	ErrMalformedToken        = errors.New("malformed token")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenIssuedTooLongAgo = errors.New("token was issued too long ago")
	ErrTokenSubjectMismatch  = errors.New("token is not issued to the right user")
	ErrNonceAlreadyUsed      = errors.New("token was already used")
)

const (
	nonceLength = 16
	nonceChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-"
)

type (
	Config struct {
		SecretKey     []byte
		BaseURL       string
		TokenTTL      time.Duration
		TokenIssueTTL time.Duration
	}

	// Claims is the verified content of a login token.
	Claims struct {
		Email    string
		Nonce    string
		IssuedAt time.Time
	}

	// NonceStorage remembers used nonces so each login token works once.
	NonceStorage interface {
		Burn(ctx context.Context, nonce string, ttl time.Duration) error
	}

	Service interface {
		GenerateToken(email string) (string, error)
		DecodeToken(token string) (Claims, error)
		ValidateToken(ctx context.Context, token, email string) (Claims, error)
	}

	service struct {
		config Config
		nonces NonceStorage
		now    func() time.Time
	}
)

func New(config Config, nonces NonceStorage) Service {
	return &service{
		config: config,
		nonces: nonces,
		now:    time.Now,
	}
}

func (s *service) GenerateToken(email string) (string, error) {
	nonce, err := oneTimeNonce()
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		ID:        nonce,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
		Issuer:    s.config.BaseURL,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.config.SecretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return base64.StdEncoding.EncodeToString([]byte(signed)), nil
}

func (s *service) DecodeToken(token string) (Claims, error) {
	signed, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %s", ErrInvalidTokenFormat, err.Error())
	}

	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(
		string(signed),
		&claims,
		func(*jwt.Token) (any, error) { return s.config.SecretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return Claims{}, ErrTokenExpired
	}
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		return Claims{}, ErrInvalidSignature
	}
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %s", ErrMalformedToken, err.Error())
	}
	if claims.IssuedAt == nil {
		return Claims{}, ErrMalformedToken
	}

	return Claims{
		Email:    claims.Subject,
		Nonce:    claims.ID,
		IssuedAt: claims.IssuedAt.Time,
	}, nil
}

func (s *service) ValidateToken(ctx context.Context, token, email string) (Claims, error) {
	claims, err := s.DecodeToken(token)
	if err != nil {
		return Claims{}, err
	}

	issueDeadline := claims.IssuedAt.Add(s.config.TokenIssueTTL)
	if s.now().After(issueDeadline) {
		return Claims{}, ErrTokenIssuedTooLongAgo
	}
	if email != "" && claims.Email != email {
		return Claims{}, ErrTokenSubjectMismatch
	}

	err = s.nonces.Burn(ctx, claims.Nonce, issueDeadline.Sub(s.now()))
	if err != nil {
		return Claims{}, err
	}

	return claims, nil
}

func oneTimeNonce() (string, error) {
	result := make([]byte, nonceLength)
	for i := range result {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(nonceChars))))
		if err != nil {
			return "", err
		}
		result[i] = nonceChars[idx.Int64()]
	}
	return string(result), nil
}
