package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-labs/ticket-tracker/internal/api/dto"
	"github.com/helpdesk-labs/ticket-tracker/internal/auth"
	"github.com/helpdesk-labs/ticket-tracker/internal/service"
	apperrors "github.com/helpdesk-labs/ticket-tracker/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Create POST /api/tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.Create(c.Context(), principal.UserID, req.Title, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTicketResponse(ticket))
}

// List GET /api/tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	tickets, err := h.service.List(c.Context(), principal)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(items)
}

// UpdateStatus PUT /api/tickets/:id.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.UpdateStatus(c.Context(), principal, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}

// ListAudit GET /api/tickets/:id/audit.
func (h *TicketsHandler) ListAudit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	entries, err := h.service.ListAudit(c.Context(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.TicketAuditResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.NewTicketAuditResponse(&entries[i]))
	}
	return c.JSON(items)
}
