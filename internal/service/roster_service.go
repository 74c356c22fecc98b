package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mergington-high/activities-api/internal/dto"
	"github.com/mergington-high/activities-api/internal/models"
	"github.com/mergington-high/activities-api/internal/observability"
	"github.com/mergington-high/activities-api/internal/repository"
)

var (
	// ErrActivityNotFound indicates the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already on the roster.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrCapacityExceeded indicates the activity reached max participants.
	ErrCapacityExceeded = errors.New("activity is at full capacity")
	// ErrNotRegistered indicates the student is not on the roster.
	ErrNotRegistered = errors.New("student is not signed up for this activity")
	// ErrRoleForbidden indicates the caller's role may not perform the operation.
	ErrRoleForbidden = errors.New("role is not permitted to perform this action")
	// ErrInvalidEmail indicates the supplied email is not well formed.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Roles recognised by the roster role gate.
const (
	RoleStudent   = "student"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// RosterService exposes the activity signup and unregister use cases.
type RosterService interface {
	ListActivities(ctx context.Context) (map[string]dto.ActivityDetail, error)
	SignUp(ctx context.Context, activityName, email, actingRole, ipAddress string) (string, error)
	Unregister(ctx context.Context, activityName, email, actingRole, ipAddress string) (string, error)
}

type rosterService struct {
	activities   repository.ActivityRepository
	participants repository.ParticipantRepository
	audit        AuditService
	validator    *validator.Validate
	requireRole  bool
	logger       zerolog.Logger
}

// NewRosterService builds the roster service. When requireRole is false the
// role gate is permissive: callers without a resolved role pass, and only a
// recognised-but-wrong role is rejected. Setting requireRole to true turns
// the legacy demo policy into deny-if-unauthenticated.
func NewRosterService(activities repository.ActivityRepository, participants repository.ParticipantRepository, audit AuditService, validate *validator.Validate, requireRole bool, logger zerolog.Logger) RosterService {
	return &rosterService{
		activities:   activities,
		participants: participants,
		audit:        audit,
		validator:    validate,
		requireRole:  requireRole,
		logger:       logger.With().Str("component", "roster_service").Logger(),
	}
}

func (s *rosterService) ListActivities(ctx context.Context) (map[string]dto.ActivityDetail, error) {
	activities, err := s.activities.ListWithParticipants(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewActivityMap(activities), nil
}

func (s *rosterService) SignUp(ctx context.Context, activityName, email, actingRole, ipAddress string) (string, error) {
	if err := s.checkRole(actingRole, RoleStudent); err != nil {
		observability.RosterOperations().WithLabelValues("signup", "forbidden").Inc()
		return "", err
	}

	activity, err := s.activities.GetByName(ctx, activityName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RosterOperations().WithLabelValues("signup", "not_found").Inc()
			return "", ErrActivityNotFound
		}
		return "", err
	}

	// Checked only once the activity is known to exist, so an unknown
	// activity reports not-found regardless of the email's shape.
	if err := s.validator.Var(email, "required,email"); err != nil {
		observability.RosterOperations().WithLabelValues("signup", "invalid_email").Inc()
		return "", ErrInvalidEmail
	}

	if err := s.participants.Register(ctx, activity, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateParticipant):
			observability.RosterOperations().WithLabelValues("signup", "duplicate").Inc()
			return "", ErrAlreadySignedUp
		case errors.Is(err, repository.ErrActivityFull):
			observability.RosterOperations().WithLabelValues("signup", "full").Inc()
			return "", ErrCapacityExceeded
		default:
			return "", err
		}
	}

	s.recordAudit(ctx, models.AuditActionSignup, email, activity.Name, actingRole, ipAddress)
	observability.RosterOperations().WithLabelValues("signup", "ok").Inc()
	s.logger.Info().Str("activity", activity.Name).Str("email", email).Msg("student signed up")

	return fmt.Sprintf("Signed up %s for %s", email, activity.Name), nil
}

func (s *rosterService) Unregister(ctx context.Context, activityName, email, actingRole, ipAddress string) (string, error) {
	if err := s.checkRole(actingRole, RoleOrganizer); err != nil {
		observability.RosterOperations().WithLabelValues("unregister", "forbidden").Inc()
		return "", err
	}

	activity, err := s.activities.GetByName(ctx, activityName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RosterOperations().WithLabelValues("unregister", "not_found").Inc()
			return "", ErrActivityNotFound
		}
		return "", err
	}

	participant, err := s.participants.FindByActivityAndEmail(ctx, activity.ID, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RosterOperations().WithLabelValues("unregister", "not_registered").Inc()
			return "", ErrNotRegistered
		}
		return "", err
	}

	if err := s.participants.Delete(ctx, participant); err != nil {
		return "", err
	}

	s.recordAudit(ctx, models.AuditActionUnregister, email, activity.Name, actingRole, ipAddress)
	observability.RosterOperations().WithLabelValues("unregister", "ok").Inc()
	s.logger.Info().Str("activity", activity.Name).Str("email", email).Msg("student unregistered")

	return fmt.Sprintf("Unregistered %s from %s", email, activity.Name), nil
}

// checkRole rejects a resolved role that differs from the required one. An
// empty role is rejected only in strict mode.
func (s *rosterService) checkRole(actingRole, required string) error {
	if actingRole == "" {
		if s.requireRole {
			return ErrRoleForbidden
		}
		return nil
	}
	if actingRole != required {
		return ErrRoleForbidden
	}
	return nil
}

// recordAudit appends the audit entry; a failed append is logged but never
// fails the roster operation that already committed.
func (s *rosterService) recordAudit(ctx context.Context, action, email, activityName, actingRole, ipAddress string) {
	if s.audit == nil {
		return
	}

	entry := AuditEntry{
		Action:       action,
		UserEmail:    email,
		ActivityName: activityName,
		IPAddress:    ipAddress,
	}
	if actingRole != "" {
		entry.Metadata = map[string]interface{}{"role": actingRole}
	}

	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("action", action).Msg("failed to record audit entry")
	}
}
