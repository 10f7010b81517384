package models

import (
	"time"

	"gorm.io/datatypes"
)

type UsageStatus string

const (
	UsageOK            UsageStatus = "ok"
	UsageUpstreamError UsageStatus = "upstream_error"
	UsageFormatError   UsageStatus = "format_error"
)

// UsageRecord is one provider call, kept for cost and failure tracking.
type UsageRecord struct {
	ID        string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    string         `gorm:"column:user_id;type:text;index" json:"user_id"`
	Operation string         `gorm:"column:operation;type:text" json:"operation"`
	Provider  string         `gorm:"column:provider;type:text" json:"provider"`
	Model     string         `gorm:"column:model;type:text" json:"model"`
	Status    UsageStatus    `gorm:"column:status;type:text" json:"status"`
	LatencyMS int64          `gorm:"column:latency_ms;type:bigint" json:"latency_ms"`
	Metadata  datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"column:created_at;type:timestamptz;index" json:"created_at"`
}

func (UsageRecord) TableName() string { return "ai_usage" }
