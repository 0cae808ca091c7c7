package service

import (
	"context"
	"fmt"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type studentService struct {
	studentRepo repository.StudentRepository
	clubRepo    repository.ClubRepository
	recRepo     repository.RecruitmentRepository
}

func NewStudentService(studentRepo repository.StudentRepository, clubRepo repository.ClubRepository, recRepo repository.RecruitmentRepository) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		clubRepo:    clubRepo,
		recRepo:     recRepo,
	}
}

func (s *studentService) Register(ctx context.Context, st *domain.Student, password string) error {
	if st.UID <= 0 || st.Name == "" || st.Email == "" || password == "" {
		return fmt.Errorf("%w: uid, uname, umail and password are required", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	st.PasswordHash = string(hash)
	st.Clubs = []int64{}
	st.PendingClubs = []int64{}

	return s.studentRepo.Create(ctx, st)
}

func (s *studentService) GetProfile(ctx context.Context, id int64) (*domain.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentService) GetByUID(ctx context.Context, uid int64) (*domain.Student, error) {
	return s.studentRepo.GetByUID(ctx, uid)
}

func (s *studentService) UpdateProfile(ctx context.Context, id int64, upd *domain.StudentUpdate) (*domain.Student, error) {
	return s.studentRepo.UpdateProfile(ctx, id, upd)
}

func (s *studentService) MyClubs(ctx context.Context, id int64) ([]domain.Club, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(student.Clubs) == 0 {
		return []domain.Club{}, nil
	}
	return s.clubRepo.ListByCIDs(ctx, student.Clubs)
}

func (s *studentService) SearchMyClubs(ctx context.Context, id int64, query string) ([]domain.Club, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(student.Clubs) == 0 {
		return []domain.Club{}, nil
	}
	return s.clubRepo.SearchByCIDs(ctx, student.Clubs, query)
}

func (s *studentService) PendingApplicationCount(ctx context.Context, uid int64) (int64, error) {
	return s.recRepo.CountPendingApplications(ctx, uid)
}

func (s *studentService) Count(ctx context.Context) (int64, error) {
	return s.studentRepo.Count(ctx)
}
