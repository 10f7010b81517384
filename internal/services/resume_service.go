package services

import (
	"context"
	"errors"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/models"
	mongorepo "github.com/ArpanMallick2005/Ai-resume-Analy/internal/repositories/mongo"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
)

const resumeListLimit = 100

type ResumeService interface {
	Get(ctx context.Context, userID, resumeID string) (*models.Resume, error)
	List(ctx context.Context, userID string) ([]models.ResumeSummary, error)
	Delete(ctx context.Context, userID, resumeID string) error
}

type resumeService struct {
	resumes mongorepo.ResumeRepository
}

func NewResumeService(resumes mongorepo.ResumeRepository) ResumeService {
	return &resumeService{resumes: resumes}
}

func (s *resumeService) Get(ctx context.Context, userID, resumeID string) (*models.Resume, error) {
	const op = "ResumeService.Get"

	if userID == "" || resumeID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "resume id is required", nil)
	}
	out, err := s.resumes.GetByID(ctx, userID, resumeID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Resume not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get resume", err)
	}
	return out, nil
}

func (s *resumeService) List(ctx context.Context, userID string) ([]models.ResumeSummary, error) {
	const op = "ResumeService.List"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	out, err := s.resumes.ListByUser(ctx, userID, resumeListLimit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list resumes", err)
	}
	return out, nil
}

func (s *resumeService) Delete(ctx context.Context, userID, resumeID string) error {
	const op = "ResumeService.Delete"

	if userID == "" || resumeID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "resume id is required", nil)
	}
	if err := s.resumes.Delete(ctx, userID, resumeID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Resume not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete resume", err)
	}
	return nil
}
