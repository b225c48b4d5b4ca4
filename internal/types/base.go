package types

import (
	"context"
	"time"
)

// Status represents the lifecycle state of a stored record.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

// BaseModel carries the audit fields shared by every persisted entity.
type BaseModel struct {
	Status    Status    `json:"status" gorm:"column:status;default:active"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
	CreatedBy string    `json:"created_by,omitempty" gorm:"column:created_by"`
	UpdatedBy string    `json:"updated_by,omitempty" gorm:"column:updated_by"`
}

// GetDefaultBaseModel returns a BaseModel stamped with the identity found in ctx.
func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := time.Now().UTC()
	user := GetUserID(ctx)
	return BaseModel{
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: user,
		UpdatedBy: user,
	}
}
