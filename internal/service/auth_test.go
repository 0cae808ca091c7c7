package service_test

import (
	"context"
	"testing"
	"time"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"
	"clubsync-backend/internal/security"
	"clubsync-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func newAuthFixture() (*MockStudentRepo, *MockClubRepo, *MockAdminRepo, security.TokenManager, service.AuthService) {
	studRepo := new(MockStudentRepo)
	clubRepo := new(MockClubRepo)
	adminRepo := new(MockAdminRepo)
	tokens := security.NewTokenManager(testSecret, time.Hour)
	svc := service.NewAuthService(studRepo, clubRepo, adminRepo, tokens)
	return studRepo, clubRepo, adminRepo, tokens, svc
}

func TestAuthService_StudentLogin(t *testing.T) {
	studRepo, _, _, tokens, svc := newAuthFixture()
	ctx := context.Background()

	student := &domain.Student{ID: 3, UID: 100, Name: "Alice", PasswordHash: hashOf(t, "s3cret")}

	t.Run("Success", func(t *testing.T) {
		studRepo.On("GetByUID", ctx, int64(100)).Return(student, nil).Once()

		got, token, err := svc.StudentLogin(ctx, 100, "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, int64(100), got.UID)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, security.PrincipalStudent, claims.Principal)
		assert.Equal(t, int64(3), claims.PrincipalID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		studRepo.On("GetByUID", ctx, int64(100)).Return(student, nil).Once()

		_, _, err := svc.StudentLogin(ctx, 100, "nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownUID", func(t *testing.T) {
		studRepo.On("GetByUID", ctx, int64(999)).Return(nil, repository.ErrNotFound).Once()

		_, _, err := svc.StudentLogin(ctx, 999, "s3cret")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_ClubLogin(t *testing.T) {
	_, clubRepo, _, tokens, svc := newAuthFixture()
	ctx := context.Background()

	club := &domain.Club{ID: 7, CID: 42, Name: "Chess Club", PasswordHash: hashOf(t, "kn1ght")}
	clubRepo.On("GetByCID", ctx, int64(42)).Return(club, nil).Once()

	_, token, err := svc.ClubLogin(ctx, 42, "kn1ght")
	assert.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, security.PrincipalClub, claims.Principal)
	assert.Equal(t, "Chess Club", claims.Name)
}

func TestAuthService_AdminLogin(t *testing.T) {
	_, _, adminRepo, tokens, svc := newAuthFixture()
	ctx := context.Background()

	admin := &domain.Admin{ID: 1, AdminID: "ADM01", Username: "root", PasswordHash: hashOf(t, "adm1n")}
	adminRepo.On("GetByAdminID", ctx, "ADM01").Return(admin, nil).Once()

	_, token, err := svc.AdminLogin(ctx, "ADM01", "adm1n")
	assert.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, security.PrincipalAdmin, claims.Principal)
}
