package service

import (
	"context"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"
	"clubsync-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	studentRepo repository.StudentRepository
	clubRepo    repository.ClubRepository
	adminRepo   repository.AdminRepository
	tokens      security.TokenManager
}

func NewAuthService(studentRepo repository.StudentRepository, clubRepo repository.ClubRepository, adminRepo repository.AdminRepository, tokens security.TokenManager) AuthService {
	return &authService{
		studentRepo: studentRepo,
		clubRepo:    clubRepo,
		adminRepo:   adminRepo,
		tokens:      tokens,
	}
}

func (s *authService) StudentLogin(ctx context.Context, uid int64, password string) (*domain.Student, string, error) {
	student, err := s.studentRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateStudentToken(student.ID, student.Name)
	if err != nil {
		return nil, "", err
	}
	return student, token, nil
}

func (s *authService) ClubLogin(ctx context.Context, cid int64, password string) (*domain.Club, string, error) {
	club, err := s.clubRepo.GetByCID(ctx, cid)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(club.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateClubToken(club.ID, club.Name)
	if err != nil {
		return nil, "", err
	}
	return club, token, nil
}

func (s *authService) AdminLogin(ctx context.Context, adminID, password string) (*domain.Admin, string, error) {
	admin, err := s.adminRepo.GetByAdminID(ctx, adminID)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAdminToken(admin.ID, admin.Username)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}
