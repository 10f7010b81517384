package postgres

import (
	"context"
	"time"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsageRepository interface {
	Insert(ctx context.Context, rec *models.UsageRecord) error
	ListRecent(ctx context.Context, limit int) ([]models.UsageRecord, error)
	CountByStatus(ctx context.Context, since time.Time) ([]UsageCount, error)
}

// UsageCount aggregates ai_usage rows per operation and status.
type UsageCount struct {
	Operation string             `gorm:"column:operation" json:"operation"`
	Status    models.UsageStatus `gorm:"column:status" json:"status"`
	Calls     int64              `gorm:"column:calls" json:"calls"`
	AvgMS     float64            `gorm:"column:avg_ms" json:"avg_latency_ms"`
}

type usageRepo struct {
	db *gorm.DB
}

func NewUsageRepo(db *gorm.DB) UsageRepository {
	return &usageRepo{db: db}
}

func (r *usageRepo) Insert(ctx context.Context, rec *models.UsageRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *usageRepo) ListRecent(ctx context.Context, limit int) ([]models.UsageRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []models.UsageRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *usageRepo) CountByStatus(ctx context.Context, since time.Time) ([]UsageCount, error) {
	var out []UsageCount
	err := r.db.WithContext(ctx).
		Model(&models.UsageRecord{}).
		Select("operation, status, COUNT(*) AS calls, COALESCE(AVG(latency_ms), 0) AS avg_ms").
		Where("created_at >= ?", since).
		Group("operation, status").
		Order("operation, status").
		Scan(&out).Error
	return out, err
}
