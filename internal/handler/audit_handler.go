package handler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mergington-high/activities-api/internal/service"
	"github.com/mergington-high/activities-api/internal/utils"
)

const defaultAuditPageSize = 100

// AuditHandler serves the admin audit log endpoints. Authorization is
// enforced upstream by the admin route group.
type AuditHandler struct {
	service service.AuditService
	logger  zerolog.Logger
}

// NewAuditHandler constructs the handler instance.
func NewAuditHandler(service service.AuditService, logger zerolog.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		logger:  logger.With().Str("component", "audit_handler").Logger(),
	}
}

// Register wires the audit log routes.
func (h *AuditHandler) Register(router fiber.Router) {
	router.Get("/audit-logs", h.list)
	router.Get("/audit-logs/export", h.export)
	router.Get("/audit-logs/stats", h.stats)
}

func (h *AuditHandler) list(c *fiber.Ctx) error {
	limit := defaultAuditPageSize
	if c.Query("limit") != "" {
		parsed, err := parseQueryInt(c, "limit")
		if err != nil || parsed < 0 {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	offset, err := parseQueryInt(c, "offset")
	if err != nil || offset < 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid offset")
	}

	result, err := h.service.List(c.Context(), limit, offset)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list audit logs")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list audit logs")
	}

	return c.JSON(result)
}

func (h *AuditHandler) export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.ExportCSV(c.Context(), &buf); err != nil {
		h.logger.Error().Err(err).Msg("failed to export audit logs")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to export audit logs")
	}

	filename := fmt.Sprintf("audit_logs_%s.csv", time.Now().UTC().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Send(buf.Bytes())
}

func (h *AuditHandler) stats(c *fiber.Ctx) error {
	result, err := h.service.Stats(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to compute audit stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute audit stats")
	}

	return c.JSON(result)
}
