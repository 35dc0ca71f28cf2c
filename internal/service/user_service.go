package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
	"github.com/mansi2425/punjab-alumni-connect/internal/matching"
	"github.com/mansi2425/punjab-alumni-connect/internal/model"
	"github.com/mansi2425/punjab-alumni-connect/internal/policy"
	"github.com/mansi2425/punjab-alumni-connect/internal/repository"
)

const (
	// RecommendationLimit caps the mentors returned by RecommendMentors.
	RecommendationLimit = 3

	statsCacheKey = "stats:platform"
	statsCacheTTL = time.Minute

	recommendationKeyPrefix = "recommend:"
)

// Cache is the part of the cache client services rely on. A miss and an
// unreachable cache look the same.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) bool
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration)
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// ProfileInput is a partial profile. Nil fields are left unchanged.
type ProfileInput struct {
	Headline         *string
	About            *string
	Location         *string
	Company          *string
	Skills           *string
	InstitutionID    *uint // zero clears the link
	Department       *string
	GraduationYear   *int
	EnrollmentNumber *string
}

// RegisterInput carries a self-registration.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      model.Role
	Profile   ProfileInput
}

// UpdateProfileInput is a partial update of the actor's name and profile.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Profile   ProfileInput
}

// PlatformStats summarizes approved institutions and membership.
type PlatformStats struct {
	InstitutionCount int64 `json:"total_institutions"`
	AlumniCount      int64 `json:"alumni_count"`
	StudentCount     int64 `json:"student_count"`
}

// UserService exposes the user directory, approvals and mentor recommendations.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Me(ctx context.Context, actor *model.User) (*model.User, error)
	UpdateProfile(ctx context.Context, actor *model.User, input UpdateProfileInput) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListAlumni(ctx context.Context, actor *model.User) ([]model.User, error)
	ListPending(ctx context.Context, actor *model.User) ([]model.User, error)
	Approve(ctx context.Context, actor *model.User, userID uint) (*model.User, error)
	RecommendMentors(ctx context.Context, actor *model.User) ([]matching.Match, error)
	PlatformStats(ctx context.Context, actor *model.User) (*PlatformStats, error)
}

type userService struct {
	repo              repository.UserRepository
	institutions      repository.InstitutionRepository
	cache             Cache
	recommendationTTL time.Duration
	log               *zap.Logger
}

// NewUserService builds a UserService with repositories and cache.
func NewUserService(
	repo repository.UserRepository,
	institutions repository.InstitutionRepository,
	cache Cache,
	recommendationTTL time.Duration,
	log *zap.Logger,
) UserService {
	return &userService{
		repo:              repo,
		institutions:      institutions,
		cache:             cache,
		recommendationTTL: recommendationTTL,
		log:               log,
	}
}

func recommendationCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", recommendationKeyPrefix, id)
}

// checkInstitution accepts an unset or zero id and otherwise requires an approved institution.
func (s *userService) checkInstitution(ctx context.Context, id *uint) error {
	if id == nil || *id == 0 {
		return nil
	}
	inst, err := s.institutions.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrInstitutionNotFound
		}
		return fmt.Errorf("find institution: %w", err)
	}
	if inst.Status != model.InstitutionStatusApproved {
		return errors.ErrInstitutionNotFound
	}
	return nil
}

// Register creates an unapproved student or alumni account with its profile.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	role := input.Role
	if role == "" {
		role = model.RoleStudent
	}
	if !role.Valid() {
		return nil, errors.ErrInvalidRole
	}
	if err := policy.Authorize(nil, policy.SelfRegister, role); err != nil {
		return nil, err
	}

	if err := s.checkInstitution(ctx, input.Profile.InstitutionID); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, errors.ErrUserAlreadyExists
	}

	user := &model.User{
		Username:  username,
		Email:     email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      role,
	}
	profile := &model.Profile{}
	applyProfile(profile, input.Profile)

	if err := s.repo.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("role", string(role)))
	return user, nil
}

func (s *userService) Me(ctx context.Context, actor *model.User) (*model.User, error) {
	return s.GetUser(ctx, actor.ID)
}

// UpdateProfile applies a partial update. Skills feed every user's
// recommendations, so all cached recommendations are dropped.
func (s *userService) UpdateProfile(ctx context.Context, actor *model.User, input UpdateProfileInput) (*model.User, error) {
	if err := s.checkInstitution(ctx, input.Profile.InstitutionID); err != nil {
		return nil, err
	}
	user, err := s.GetUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if user.Profile == nil {
		user.Profile = &model.Profile{UserID: user.ID}
	}
	applyProfile(user.Profile, input.Profile)

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	_ = s.cache.DeletePrefix(ctx, recommendationKeyPrefix)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// ListAlumni lists approved alumni other than actor.
func (s *userService) ListAlumni(ctx context.Context, actor *model.User) ([]model.User, error) {
	users, err := s.repo.ListApprovedByRole(ctx, model.RoleAlumni, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list alumni: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// ListPending lists unapproved users inside the admin's scope.
func (s *userService) ListPending(ctx context.Context, actor *model.User) ([]model.User, error) {
	if err := policy.Authorize(actor, policy.ListPendingUsers, nil); err != nil {
		return nil, err
	}
	scope, ok := policy.ScopeFor(actor)
	if !ok {
		return []model.User{}, nil
	}

	users, err := s.repo.ListPending(ctx, scope.InstitutionID, scope.Department)
	if err != nil {
		return nil, fmt.Errorf("list pending users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// Approve marks a user approved. Approving an approved user succeeds without
// change. A newly approved alumnus becomes a candidate mentor, so cached
// recommendations are dropped.
func (s *userService) Approve(ctx context.Context, actor *model.User, userID uint) (*model.User, error) {
	target, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ApproveUser, target); err != nil {
		return nil, err
	}
	if target.IsApproved {
		return target, nil
	}

	if err := s.repo.SetApproved(ctx, target.ID, true); err != nil {
		return nil, fmt.Errorf("approve user: %w", err)
	}
	target.IsApproved = true
	_ = s.cache.Delete(ctx, statsCacheKey)
	_ = s.cache.DeletePrefix(ctx, recommendationKeyPrefix)

	s.log.Info("user approved", zap.Uint("user_id", target.ID), zap.Uint("approved_by", actor.ID))
	return target, nil
}

// RecommendMentors ranks approved alumni by shared skills with actor and
// returns the best few. Results are cached per user.
func (s *userService) RecommendMentors(ctx context.Context, actor *model.User) ([]matching.Match, error) {
	key := recommendationCacheKey(actor.ID)
	var cached []matching.Match
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	skills := matching.ParseSkills(actor.Skills())
	if skills.Len() == 0 {
		return []matching.Match{}, nil
	}

	candidates, err := s.repo.ListApprovedByRole(ctx, model.RoleAlumni, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list candidate mentors: %w", err)
	}

	matches := matching.Rank(skills, actor.ID, candidates, RecommendationLimit)
	s.cache.SetJSON(ctx, key, matches, s.recommendationTTL)
	return matches, nil
}

// PlatformStats counts approved institutions, alumni and students.
func (s *userService) PlatformStats(ctx context.Context, actor *model.User) (*PlatformStats, error) {
	if err := policy.Authorize(actor, policy.ViewPlatformStats, nil); err != nil {
		return nil, err
	}

	var stats PlatformStats
	if s.cache.GetJSON(ctx, statsCacheKey, &stats) {
		return &stats, nil
	}

	institutions, err := s.institutions.CountByStatus(ctx, model.InstitutionStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("count institutions: %w", err)
	}
	alumni, err := s.repo.CountApprovedByRole(ctx, model.RoleAlumni)
	if err != nil {
		return nil, fmt.Errorf("count alumni: %w", err)
	}
	students, err := s.repo.CountApprovedByRole(ctx, model.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}

	stats = PlatformStats{InstitutionCount: institutions, AlumniCount: alumni, StudentCount: students}
	s.cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL)
	return &stats, nil
}

func applyProfile(p *model.Profile, in ProfileInput) {
	if in.Headline != nil {
		p.Headline = *in.Headline
	}
	if in.About != nil {
		p.About = *in.About
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Company != nil {
		p.Company = *in.Company
	}
	if in.Skills != nil {
		p.Skills = *in.Skills
	}
	if in.InstitutionID != nil {
		if *in.InstitutionID == 0 {
			p.InstitutionID = nil
		} else {
			id := *in.InstitutionID
			p.InstitutionID = &id
		}
	}
	if in.Department != nil {
		p.Department = *in.Department
	}
	if in.GraduationYear != nil {
		p.GraduationYear = in.GraduationYear
	}
	if in.EnrollmentNumber != nil {
		p.EnrollmentNumber = *in.EnrollmentNumber
	}
}
