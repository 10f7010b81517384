package services

import (
	"context"
	"time"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/models"
	pgrepo "github.com/ArpanMallick2005/Ai-resume-Analy/internal/repositories/postgres"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"github.com/sirupsen/logrus"
)

const (
	usageWriteTimeout = 3 * time.Second
	maxUsageList      = 500
)

// UsageRecorder stores one provider call. It never fails the caller.
type UsageRecorder interface {
	Record(ctx context.Context, rec models.UsageRecord)
}

type UsageService interface {
	UsageRecorder
	ListRecent(ctx context.Context, limit int) ([]models.UsageRecord, error)
	Summary(ctx context.Context, window time.Duration) ([]pgrepo.UsageCount, error)
}

type usageService struct {
	repo pgrepo.UsageRepository
	log  logrus.FieldLogger
}

func NewUsageService(repo pgrepo.UsageRepository, log logrus.FieldLogger) UsageService {
	return &usageService{repo: repo, log: log}
}

func (s *usageService) Record(ctx context.Context, rec models.UsageRecord) {
	// keep the write alive when the client has already gone
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), usageWriteTimeout)
	defer cancel()

	if err := s.repo.Insert(ctx, &rec); err != nil {
		s.log.WithFields(logrus.Fields{
			"operation": rec.Operation,
			"user_id":   rec.UserID,
			"status":    rec.Status,
		}).WithError(err).Warn("failed to record ai usage")
	}
}

func (s *usageService) ListRecent(ctx context.Context, limit int) ([]models.UsageRecord, error) {
	const op = "UsageService.ListRecent"

	if limit <= 0 || limit > maxUsageList {
		return nil, utils.E(utils.CodeInvalidArgument, op, "limit must be between 1 and 500", nil)
	}
	out, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list usage", err)
	}
	return out, nil
}

func (s *usageService) Summary(ctx context.Context, window time.Duration) ([]pgrepo.UsageCount, error) {
	const op = "UsageService.Summary"

	if window <= 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "window must be positive", nil)
	}
	out, err := s.repo.CountByStatus(ctx, time.Now().UTC().Add(-window))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to summarize usage", err)
	}
	return out, nil
}

// NopUsage discards records. Used when Postgres is not configured.
type NopUsage struct{}

func (NopUsage) Record(context.Context, models.UsageRecord) {}
