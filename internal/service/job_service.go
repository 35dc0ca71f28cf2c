package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
	"github.com/mansi2425/punjab-alumni-connect/internal/model"
	"github.com/mansi2425/punjab-alumni-connect/internal/policy"
	"github.com/mansi2425/punjab-alumni-connect/internal/repository"
)

// JobInput carries the editable fields of a job posting.
type JobInput struct {
	Title       string
	Company     string
	Location    string
	Description string
	JobType     model.JobType
}

// JobService manages the job board.
type JobService interface {
	List(ctx context.Context) ([]model.Job, error)
	Get(ctx context.Context, id uint) (*model.Job, error)
	Create(ctx context.Context, actor *model.User, input JobInput) (*model.Job, error)
	Update(ctx context.Context, actor *model.User, id uint, input JobInput) (*model.Job, error)
	Delete(ctx context.Context, actor *model.User, id uint) error
}

type jobService struct {
	repo repository.JobRepository
	log  *zap.Logger
}

// NewJobService creates a new job service.
func NewJobService(repo repository.JobRepository, log *zap.Logger) JobService {
	return &jobService{repo: repo, log: log}
}

func (s *jobService) List(ctx context.Context) ([]model.Job, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

func (s *jobService) Get(ctx context.Context, id uint) (*model.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return job, nil
}

// Create posts a job on behalf of actor.
func (s *jobService) Create(ctx context.Context, actor *model.User, input JobInput) (*model.Job, error) {
	if err := validateJob(input); err != nil {
		return nil, err
	}

	job := &model.Job{PostedByID: actor.ID}
	applyJob(job, input)
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	job.PostedByUsername = actor.Username

	s.log.Info("job posted", zap.Uint("job_id", job.ID), zap.Uint("posted_by", actor.ID))
	return job, nil
}

// Update replaces the job's fields. Only the poster or a super admin may do so.
func (s *jobService) Update(ctx context.Context, actor *model.User, id uint, input JobInput) (*model.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ModifyJob, job); err != nil {
		return nil, err
	}
	if err := validateJob(input); err != nil {
		return nil, err
	}

	applyJob(job, input)
	if err := s.repo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, actor *model.User, id uint) error {
	job, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.Authorize(actor, policy.ModifyJob, job); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, job.ID); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

func validateJob(input JobInput) error {
	if !input.JobType.Valid() {
		return errors.ErrInvalidJobType
	}
	return nil
}

func applyJob(job *model.Job, input JobInput) {
	job.Title = strings.TrimSpace(input.Title)
	job.Company = strings.TrimSpace(input.Company)
	job.Location = input.Location
	job.Description = input.Description
	job.JobType = input.JobType
}
