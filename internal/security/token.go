package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongPrincipal = errors.New("wrong principal type for this endpoint")
)

// PrincipalType identifies which kind of account a session belongs to.
type PrincipalType string

const (
	PrincipalStudent PrincipalType = "student"
	PrincipalClub    PrincipalType = "club"
	PrincipalAdmin   PrincipalType = "admin"
)

// SessionClaims defines the standard claims for our application
type SessionClaims struct {
	PrincipalID int64         `json:"principal_id"`
	Principal   PrincipalType `json:"principal"`
	Name        string        `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateStudentToken(id int64, name string) (string, error)
	GenerateClubToken(id int64, name string) (string, error)
	GenerateAdminToken(id int64, name string) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
}

type tokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *tokenManager) GenerateStudentToken(id int64, name string) (string, error) {
	return m.generate(id, name, PrincipalStudent)
}

func (m *tokenManager) GenerateClubToken(id int64, name string) (string, error) {
	return m.generate(id, name, PrincipalClub)
}

func (m *tokenManager) GenerateAdminToken(id int64, name string) (string, error) {
	return m.generate(id, name, PrincipalAdmin)
}

func (m *tokenManager) generate(id int64, name string, principal PrincipalType) (string, error) {
	claims := SessionClaims{
		PrincipalID: id,
		Principal:   principal,
		Name:        name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "clubsync",
			Audience:  jwt.ClaimStrings{"api-access"},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		// Populate PrincipalID from Subject if it was lost (though we set both)
		if claims.PrincipalID == 0 && claims.Subject != "" {
			id, _ := strconv.ParseInt(claims.Subject, 10, 64)
			claims.PrincipalID = id
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}
