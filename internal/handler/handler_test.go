package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
	"github.com/flavioscarvalho/agendamento-servico/internal/handler/dto"
	hmocks "github.com/flavioscarvalho/agendamento-servico/internal/handler/mocks"
	"github.com/flavioscarvalho/agendamento-servico/internal/middleware"
	"github.com/flavioscarvalho/agendamento-servico/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

// identity replaces the auth middleware so handler tests can pick the
// acting user per router.
func identity(username string, role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set(middleware.ContextUsername, username)
		c.Set(middleware.ContextRole, string(role))
		c.Next()
	}
}

func setupRouter(t *testing.T, username string, role domain.Role) (*hmocks.MockBookingSvc, *hmocks.MockAccountSvc, *hmocks.MockSchemaSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	accountSvc := hmocks.NewMockAccountSvc(t)
	schemaSvc := hmocks.NewMockSchemaSvc(t)

	h := NewHandler(bookingSvc, accountSvc, schemaSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		bookings := api.Group("/bookings", identity(username, role))
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("", h.ListBookings)
			bookings.GET("/stats", h.BookingStats)
			bookings.GET("/:id", h.GetBooking)
			bookings.POST("/:id/approve", h.ApproveBooking)
			bookings.POST("/:id/reject", h.RejectBooking)
			bookings.PATCH("/:id/notes", h.AmendNotes)
		}

		api.GET("/schema", h.SchemaInfo)
		api.POST("/admin/schema/migrate", h.MigrateSchema)
		api.POST("/admin/schema/repair", h.RepairSchema)
	}

	return bookingSvc, accountSvc, schemaSvc, r
}

func sampleBooking() *domain.BookingRequest {
	return &domain.BookingRequest{
		ID:        7,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Subject:   "Math",
		Equipment: []string{"Laptop", "Projector"},
		Slot:      "1",
		Shift:     "morning",
		Room:      "Sala 3",
		Requester: "ana.paula",
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
	}
}

// --- Accounts ---

func TestHandler_Register_Success(t *testing.T) {
	_, accountSvc, _, r := setupRouter(t, "", domain.RoleRequester)

	account := &domain.Account{ID: 1, Username: "ana.paula", CreatedAt: time.Now()}
	accountSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(account, nil)
	accountSvc.EXPECT().Role("ana.paula").Return(domain.RoleRequester)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "Ana.Paula", Password: "s3nha"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ana.paula", resp.Username)
	assert.Equal(t, "requester", resp.Role)
}

func TestHandler_Register_MissingFields(t *testing.T) {
	_, _, _, r := setupRouter(t, "", domain.RoleRequester)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_UsernameTaken(t *testing.T) {
	_, accountSvc, _, r := setupRouter(t, "", domain.RoleRequester)

	accountSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "taken", Password: "s3nha"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	_, accountSvc, _, r := setupRouter(t, "", domain.RoleRequester)

	account := &domain.Account{ID: 1, Username: "diretor", CreatedAt: time.Now()}
	accountSvc.EXPECT().Login(mock.Anything, "diretor", "s3nha").Return(account, "jwt-token", nil)
	accountSvc.EXPECT().Role("diretor").Return(domain.RoleApprover)

	body, _ := json.Marshal(dto.LoginRequest{Username: "diretor", Password: "s3nha"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "approver", resp.Account.Role)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	_, accountSvc, _, r := setupRouter(t, "", domain.RoleRequester)

	accountSvc.EXPECT().Login(mock.Anything, "ana", "errada").
		Return(nil, "", domain.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Username: "ana", Password: "errada"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "ana.paula", domain.RoleRequester)

	bookingSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(sampleBooking(), nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Date:      "2025-03-10",
		Subject:   "Math",
		Equipment: []string{"Laptop", "Projector"},
		Slot:      "1",
		Shift:     "morning",
		Room:      "Sala 3",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, []string{"Laptop", "Projector"}, resp.Equipment)
	assert.Equal(t, "Pending", resp.Status)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t, "ana.paula", domain.RoleRequester)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Date:      "10/03/2025",
		Subject:   "Math",
		Equipment: []string{"Laptop"},
		Slot:      "1",
		Shift:     "morning",
		Room:      "Sala 3",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_EmptyEquipment(t *testing.T) {
	_, _, _, r := setupRouter(t, "ana.paula", domain.RoleRequester)

	body := []byte(`{"date":"2025-03-10","subject":"Math","equipment":[],"slot":"1","shift":"morning","room":"Sala 3"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "diretor", domain.RoleApprover)

	bookingSvc.EXPECT().List(mock.Anything, "diretor", domain.ListFilter{Status: domain.StatusPending}).
		Return([]*domain.BookingRequest{sampleBooking()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=Pending", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetBooking(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "ana.paula", domain.RoleRequester)

	bookingSvc.EXPECT().GetByID(mock.Anything, int64(7)).Return(sampleBooking(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t, "ana.paula", domain.RoleRequester)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "ana.paula", domain.RoleRequester)

	bookingSvc.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ApproveBooking(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "diretor", domain.RoleApprover)

	bookingSvc.EXPECT().Decide(mock.Anything, "diretor", int64(7), domain.StatusApproved, "").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/7/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ApproveBooking_WithNotes(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "diretor", domain.RoleApprover)

	bookingSvc.EXPECT().Decide(mock.Anything, "diretor", int64(7), domain.StatusApproved, "ok").Return(nil)

	body, _ := json.Marshal(dto.DecisionRequest{Notes: "ok"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/7/approve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RejectBooking_AlreadyDecided(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "diretor", domain.RoleApprover)

	bookingSvc.EXPECT().Decide(mock.Anything, "diretor", int64(7), domain.StatusRejected, "").
		Return(domain.ErrAlreadyDecided)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/7/reject", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ApproveBooking_LegacyMode(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "diretor", domain.RoleApprover)

	bookingSvc.EXPECT().Decide(mock.Anything, "diretor", int64(7), domain.StatusApproved, "").
		Return(domain.ErrApprovalUnavailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/7/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestHandler_ApproveBooking_NotApprover(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "ana.paula", domain.RoleRequester)

	bookingSvc.EXPECT().Decide(mock.Anything, "ana.paula", int64(7), domain.StatusApproved, "").
		Return(domain.ErrNotApprover)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/7/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_AmendNotes(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "diretor", domain.RoleApprover)

	bookingSvc.EXPECT().AmendNotes(mock.Anything, "diretor", int64(7), "room changed").Return(nil)

	body, _ := json.Marshal(dto.NotesRequest{Notes: "room changed"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/7/notes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_BookingStats(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "ana.paula", domain.RoleRequester)

	bookingSvc.EXPECT().CountByStatus(mock.Anything).
		Return(domain.StatusCounts{Pending: 1, Approved: 2, Rejected: 0})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Pending)
	assert.Equal(t, 2, resp.Approved)
	assert.Equal(t, 0, resp.Rejected)
	assert.Equal(t, 3, resp.Total)
}

// --- Schema ---

func TestHandler_SchemaInfo_Workflow(t *testing.T) {
	_, _, schemaSvc, r := setupRouter(t, "ana.paula", domain.RoleRequester)

	schemaSvc.EXPECT().Capabilities().Return(true, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schema", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SchemaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "workflow", resp.Mode)
}

func TestHandler_SchemaInfo_Legacy(t *testing.T) {
	_, _, schemaSvc, r := setupRouter(t, "ana.paula", domain.RoleRequester)

	schemaSvc.EXPECT().Capabilities().Return(false, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schema", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SchemaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "legacy", resp.Mode)
	assert.False(t, resp.HasStatus)
}

func TestHandler_MigrateSchema(t *testing.T) {
	_, _, schemaSvc, r := setupRouter(t, "diretor", domain.RoleApprover)

	schemaSvc.EXPECT().MigrateWorkflow(mock.Anything).Return([]schema.MigrationResult{
		{Table: "booking_requests", Column: "status", Outcome: schema.OutcomeAdded},
		{Table: "booking_requests", Column: "notes", Outcome: schema.OutcomeAlreadyPresent},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/schema/migrate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already_present")
}

func TestHandler_RepairSchema_NotConfirmed(t *testing.T) {
	_, _, schemaSvc, r := setupRouter(t, "diretor", domain.RoleApprover)

	schemaSvc.EXPECT().Repair(mock.Anything, false).Return(domain.ErrRepairNotConfirmed)

	body, _ := json.Marshal(dto.RepairRequest{Confirm: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/schema/repair", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RepairSchema_Confirmed(t *testing.T) {
	_, _, schemaSvc, r := setupRouter(t, "diretor", domain.RoleApprover)

	schemaSvc.EXPECT().Repair(mock.Anything, true).Return(nil)

	body, _ := json.Marshal(dto.RepairRequest{Confirm: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/schema/repair", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
