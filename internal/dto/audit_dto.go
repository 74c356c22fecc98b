package dto

import (
	"time"

	"github.com/mergington-high/activities-api/internal/models"
)

// AuditLogResponse is one audit trail entry as returned by the admin API.
type AuditLogResponse struct {
	ID           uint                   `json:"id"`
	Timestamp    time.Time              `json:"timestamp"`
	Action       string                 `json:"action"`
	UserEmail    string                 `json:"user_email"`
	ActivityName string                 `json:"activity_name,omitempty"`
	Details      string                 `json:"details,omitempty"`
	IPAddress    string                 `json:"ip_address,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// NewAuditLogResponse maps a stored entry to its API shape.
func NewAuditLogResponse(entry models.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:           entry.ID,
		Timestamp:    entry.Timestamp,
		Action:       entry.Action,
		UserEmail:    entry.UserEmail,
		ActivityName: entry.ActivityName,
		Details:      entry.Details,
		IPAddress:    entry.IPAddress,
		Metadata:     map[string]interface{}(entry.Metadata),
	}
}

// NewAuditLogResponseSlice maps stored entries preserving order.
func NewAuditLogResponseSlice(entries []models.AuditLog) []AuditLogResponse {
	responses := make([]AuditLogResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, NewAuditLogResponse(entry))
	}
	return responses
}

// AuditLogListResponse is the paginated audit log listing.
type AuditLogListResponse struct {
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
	Logs   []AuditLogResponse `json:"logs"`
}

// AuditStatsResponse aggregates the audit trail after purge.
type AuditStatsResponse struct {
	TotalLogs     int64            `json:"total_logs"`
	ActionCounts  map[string]int64 `json:"action_counts"`
	RetentionDays int              `json:"retention_days"`
	OldestLog     *time.Time       `json:"oldest_log,omitempty"`
	NewestLog     *time.Time       `json:"newest_log,omitempty"`
}
