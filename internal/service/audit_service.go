package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/mergington-high/activities-api/internal/dto"
	"github.com/mergington-high/activities-api/internal/models"
	"github.com/mergington-high/activities-api/internal/observability"
	"github.com/mergington-high/activities-api/internal/repository"
)

// csvHeader is the fixed column set of the audit export.
var csvHeader = []string{"ID", "Timestamp", "Action", "User Email", "Activity Name", "Details", "IP Address"}

// AuditEntry carries the fields of one auditable event. Action is stored as
// given; it is not validated against the action vocabulary.
type AuditEntry struct {
	Action       string
	UserEmail    string
	ActivityName string
	Details      string
	IPAddress    string
	Metadata     map[string]interface{}
}

// AuditService appends audit records and serves the admin views over them.
// Every read purges expired entries first; purge is never scheduled.
type AuditService interface {
	Record(ctx context.Context, entry AuditEntry) error
	PurgeExpired(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) (dto.AuditLogListResponse, error)
	ExportCSV(ctx context.Context, w io.Writer) error
	Stats(ctx context.Context) (dto.AuditStatsResponse, error)
}

type auditService struct {
	repo          repository.AuditLogRepository
	retentionDays int
	policy        *bluemonday.Policy
	logger        zerolog.Logger
	now           func() time.Time
}

// NewAuditService builds the audit service. A retention of zero or less
// disables purging entirely.
func NewAuditService(repo repository.AuditLogRepository, retentionDays int, logger zerolog.Logger) AuditService {
	return &auditService{
		repo:          repo,
		retentionDays: retentionDays,
		policy:        bluemonday.StrictPolicy(),
		logger:        logger.With().Str("component", "audit_service").Logger(),
		now:           time.Now,
	}
}

func (s *auditService) Record(ctx context.Context, entry AuditEntry) error {
	row := models.AuditLog{
		Timestamp:    s.now().UTC(),
		Action:       entry.Action,
		UserEmail:    entry.UserEmail,
		ActivityName: entry.ActivityName,
		Details:      s.policy.Sanitize(entry.Details),
		IPAddress:    entry.IPAddress,
	}
	if len(entry.Metadata) > 0 {
		row.Metadata = datatypes.JSONMap(entry.Metadata)
	}

	return s.repo.Create(ctx, &row)
}

func (s *auditService) PurgeExpired(ctx context.Context) (int64, error) {
	if s.retentionDays <= 0 {
		return 0, nil
	}

	cutoff := s.now().UTC().AddDate(0, 0, -s.retentionDays)
	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		observability.AuditPurgedEntries().Add(float64(deleted))
		s.logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("purged expired audit entries")
	}

	return deleted, nil
}

func (s *auditService) List(ctx context.Context, limit, offset int) (dto.AuditLogListResponse, error) {
	if _, err := s.PurgeExpired(ctx); err != nil {
		return dto.AuditLogListResponse{}, fmt.Errorf("purge before list: %w", err)
	}

	entries, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return dto.AuditLogListResponse{}, err
	}

	return dto.AuditLogListResponse{
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Logs:   dto.NewAuditLogResponseSlice(entries),
	}, nil
}

func (s *auditService) ExportCSV(ctx context.Context, w io.Writer) error {
	if _, err := s.PurgeExpired(ctx); err != nil {
		return fmt.Errorf("purge before export: %w", err)
	}

	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, entry := range entries {
		record := []string{
			strconv.FormatUint(uint64(entry.ID), 10),
			entry.Timestamp.UTC().Format(time.RFC3339),
			entry.Action,
			entry.UserEmail,
			entry.ActivityName,
			entry.Details,
			entry.IPAddress,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func (s *auditService) Stats(ctx context.Context) (dto.AuditStatsResponse, error) {
	if _, err := s.PurgeExpired(ctx); err != nil {
		return dto.AuditStatsResponse{}, fmt.Errorf("purge before stats: %w", err)
	}

	counts, err := s.repo.CountByAction(ctx)
	if err != nil {
		return dto.AuditStatsResponse{}, err
	}

	actionCounts := make(map[string]int64, len(counts))
	var total int64
	for _, row := range counts {
		actionCounts[row.Action] = row.Count
		total += row.Count
	}

	oldest, newest, err := s.repo.TimestampBounds(ctx)
	if err != nil {
		return dto.AuditStatsResponse{}, err
	}

	return dto.AuditStatsResponse{
		TotalLogs:     total,
		ActionCounts:  actionCounts,
		RetentionDays: s.retentionDays,
		OldestLog:     oldest,
		NewestLog:     newest,
	}, nil
}
