package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
	"github.com/flavioscarvalho/agendamento-servico/internal/handler/dto"
	"github.com/flavioscarvalho/agendamento-servico/internal/middleware"
	"github.com/flavioscarvalho/agendamento-servico/internal/schema"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type BookingSvc interface {
	Submit(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingRequest, error)
	Decide(ctx context.Context, actor string, id int64, to domain.Status, notes string) error
	AmendNotes(ctx context.Context, actor string, id int64, notes string) error
	List(ctx context.Context, actor string, filter domain.ListFilter) ([]*domain.BookingRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	CountByStatus(ctx context.Context) domain.StatusCounts
}

type AccountSvc interface {
	Register(ctx context.Context, input domain.CreateAccountInput) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (*domain.Account, string, error)
	Role(username string) domain.Role
}

type SchemaSvc interface {
	MigrateWorkflow(ctx context.Context) []schema.MigrationResult
	Repair(ctx context.Context, confirm bool) error
	Capabilities() (hasStatus, hasNotes bool)
}

type Handler struct {
	bookingService BookingSvc
	accountService AccountSvc
	schemaService  SchemaSvc
}

func NewHandler(bookingService BookingSvc, accountService AccountSvc, schemaService SchemaSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		accountService: accountService,
		schemaService:  schemaService,
	}
}

// Accounts

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	account, err := h.accountService.Register(c.Request.Context(), domain.CreateAccountInput{
		Username:   req.Username,
		Password:   req.Password,
		AccessCode: req.AccessCode,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	role := h.accountService.Role(account.Username)
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account, role))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	account, token, err := h.accountService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	role := h.accountService.Role(account.Username)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:   token,
		Account: dto.ToAccountResponse(account, role),
	})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), domain.CreateBookingInput{
		Date:      date,
		Subject:   req.Subject,
		Equipment: req.Equipment,
		Slot:      req.Slot,
		Shift:     req.Shift,
		Room:      req.Room,
		Requester: c.GetString(middleware.ContextUsername),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	filter := domain.ListFilter{
		Status:    domain.Status(c.Query("status")),
		Requester: c.Query("requester"),
	}

	bookings, err := h.bookingService.List(c.Request.Context(), c.GetString(middleware.ContextUsername), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	h.decide(c, domain.StatusApproved)
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	h.decide(c, domain.StatusRejected)
}

func (h *Handler) decide(c *ginext.Context, to domain.Status) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req dto.DecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	actor := c.GetString(middleware.ContextUsername)
	if err := h.bookingService.Decide(c.Request.Context(), actor, id, to, req.Notes); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(to)})
}

func (h *Handler) AmendNotes(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req dto.NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actor := c.GetString(middleware.ContextUsername)
	if err := h.bookingService.AmendNotes(c.Request.Context(), actor, id, req.Notes); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "notes updated"})
}

func (h *Handler) BookingStats(c *ginext.Context) {
	counts := h.bookingService.CountByStatus(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToStatsResponse(counts))
}

// Schema operations

func (h *Handler) SchemaInfo(c *ginext.Context) {
	hasStatus, hasNotes := h.schemaService.Capabilities()

	mode := "workflow"
	if !hasStatus {
		mode = "legacy"
	}

	c.JSON(http.StatusOK, dto.SchemaResponse{
		Mode:      mode,
		HasStatus: hasStatus,
		HasNotes:  hasNotes,
	})
}

func (h *Handler) MigrateSchema(c *ginext.Context) {
	results := h.schemaService.MigrateWorkflow(c.Request.Context())
	c.JSON(http.StatusOK, ginext.H{"results": results})
}

func (h *Handler) RepairSchema(c *ginext.Context) {
	var req dto.RepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.schemaService.Repair(c.Request.Context(), req.Confirm); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "repaired"})
}

func (h *Handler) bookingID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyDecided):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvalidAccessCode),
		errors.Is(err, domain.ErrRepairNotConfirmed),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotApprover):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrApprovalUnavailable):
		c.JSON(http.StatusNotImplemented, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
