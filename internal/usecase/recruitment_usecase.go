package usecase

import (
	"context"
	"strings"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
)

type RecruitmentUseCase struct {
	recruitmentRepo repository.RecruitmentRepository
	userRepo        repository.UserRepository
}

func NewRecruitmentUseCase(recruitmentRepo repository.RecruitmentRepository, userRepo repository.UserRepository) *RecruitmentUseCase {
	return &RecruitmentUseCase{
		recruitmentRepo: recruitmentRepo,
		userRepo:        userRepo,
	}
}

type RecruitmentPostInput struct {
	Purpose     string
	MaxStudents int
	Event       string
	Qualities   string
	Years       []string
	Description string
}

func (in RecruitmentPostInput) validate() error {
	if strings.TrimSpace(in.Purpose) == "" {
		return errors.BadRequest("Purpose is required", nil)
	}
	if in.MaxStudents < 1 {
		return errors.BadRequest("Max students must be at least 1", nil)
	}
	return nil
}

func (uc *RecruitmentUseCase) List(ctx context.Context) ([]*entity.RecruitmentPost, error) {
	return uc.recruitmentRepo.ListActive(ctx)
}

func (uc *RecruitmentUseCase) Create(ctx context.Context, uid string, input RecruitmentPostInput) (*entity.RecruitmentPost, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	recruiter, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	post := &entity.RecruitmentPost{
		RecruiterID:      recruiter.ID,
		RecruiterName:    recruiter.Name,
		RecruiterCollege: recruiter.College,
		Purpose:          strings.TrimSpace(input.Purpose),
		MaxStudents:      input.MaxStudents,
		Event:            strings.TrimSpace(input.Event),
		Qualities:        strings.TrimSpace(input.Qualities),
		Years:            entity.NormalizeYears(input.Years),
		Description:      strings.TrimSpace(input.Description),
		IsActive:         true,
	}

	if err := uc.recruitmentRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *RecruitmentUseCase) ownedPost(ctx context.Context, uid, id string) (*entity.RecruitmentPost, error) {
	post, err := uc.recruitmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.RecruiterID != uid {
		return nil, errors.Forbidden("You can only manage your own recruitment posts", nil)
	}
	return post, nil
}

func (uc *RecruitmentUseCase) Update(ctx context.Context, uid, id string, input RecruitmentPostInput) (*entity.RecruitmentPost, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	post, err := uc.ownedPost(ctx, uid, id)
	if err != nil {
		return nil, err
	}

	post.Purpose = strings.TrimSpace(input.Purpose)
	post.MaxStudents = input.MaxStudents
	post.Event = strings.TrimSpace(input.Event)
	post.Qualities = strings.TrimSpace(input.Qualities)
	post.Years = entity.NormalizeYears(input.Years)
	post.Description = strings.TrimSpace(input.Description)

	if err := uc.recruitmentRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *RecruitmentUseCase) Delete(ctx context.Context, uid, id string) error {
	if _, err := uc.ownedPost(ctx, uid, id); err != nil {
		return err
	}
	return uc.recruitmentRepo.Delete(ctx, id)
}
