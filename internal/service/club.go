package service

import (
	"context"
	"errors"
	"fmt"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type clubService struct {
	clubRepo  repository.ClubRepository
	studRepo  repository.StudentRepository
	recRepo   repository.RecruitmentRepository
	eventRepo repository.EventRepository
}

func NewClubService(clubRepo repository.ClubRepository, studRepo repository.StudentRepository, recRepo repository.RecruitmentRepository, eventRepo repository.EventRepository) ClubService {
	return &clubService{
		clubRepo:  clubRepo,
		studRepo:  studRepo,
		recRepo:   recRepo,
		eventRepo: eventRepo,
	}
}

func (s *clubService) Register(ctx context.Context, c *domain.Club, password string) error {
	if c.CID <= 0 || c.Name == "" || c.Email == "" || password == "" {
		return fmt.Errorf("%w: cid, cname, cmail and password are required", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	c.PasswordHash = string(hash)
	c.Members = []int64{}

	return s.clubRepo.Create(ctx, c)
}

func (s *clubService) List(ctx context.Context) ([]domain.Club, error) {
	return s.clubRepo.List(ctx)
}

func (s *clubService) GetByCID(ctx context.Context, cid int64) (*domain.Club, error) {
	return s.clubRepo.GetByCID(ctx, cid)
}

func (s *clubService) UpdateProfile(ctx context.Context, cid int64, upd *domain.ClubUpdate) (*domain.Club, error) {
	return s.clubRepo.UpdateProfile(ctx, cid, upd)
}

func (s *clubService) Members(ctx context.Context, clubID int64, search string) ([]domain.Student, int64, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(club.Members))
	if total == 0 {
		return []domain.Student{}, 0, nil
	}

	var members []domain.Student
	if search == "" {
		members, err = s.studRepo.ListByUIDs(ctx, club.Members)
	} else {
		members, err = s.studRepo.SearchByUIDs(ctx, club.Members, search)
	}
	if err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func (s *clubService) Dashboard(ctx context.Context, clubID int64) (*ClubDashboard, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.eventRepo.CountUpcomingByClub(ctx, club.Name, domain.EventStatusApproved)
	if err != nil {
		return nil, err
	}
	pending, err := s.eventRepo.CountUpcomingByClub(ctx, club.Name, domain.EventStatusPending)
	if err != nil {
		return nil, err
	}

	dash := &ClubDashboard{
		Club:              club,
		TotalMembers:      len(club.Members),
		CurrentBalance:    club.Fund,
		UpcomingEvents:    upcoming,
		PendingEvents:     pending,
		RecruitmentStatus: string(domain.RecruitmentStatusClosed),
	}

	// The latest drive decides the recruiting badge and applicant count.
	latest, err := s.recRepo.GetLatestByClub(ctx, club.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dash, nil
		}
		return nil, err
	}
	dash.RecruitmentStatus = string(latest.Status)
	if latest.Status == domain.RecruitmentStatusOpen {
		dash.TotalApplicants = len(latest.Pending) + len(latest.Approved) + len(latest.Rejected)
	}
	return dash, nil
}

func (s *clubService) ListRecent(ctx context.Context) ([]domain.Club, error) {
	return s.clubRepo.ListRecent(ctx, 5)
}

func (s *clubService) Count(ctx context.Context) (int64, error) {
	return s.clubRepo.Count(ctx)
}
