package dto

import (
	"time"

	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID        int64    `json:"id"`
	Date      string   `json:"date"`
	Subject   string   `json:"subject"`
	Equipment []string `json:"equipment"`
	Slot      string   `json:"slot"`
	Shift     string   `json:"shift"`
	Room      string   `json:"room"`
	Requester string   `json:"requester"`
	Status    string   `json:"status"`
	Notes     string   `json:"notes,omitempty"`
	CreatedAt string   `json:"created_at"`
}

type AccountResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

type StatsResponse struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

type SchemaResponse struct {
	Mode      string `json:"mode"`
	HasStatus bool   `json:"has_status"`
	HasNotes  bool   `json:"has_notes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.BookingRequest) BookingResponse {
	equipment := b.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	return BookingResponse{
		ID:        b.ID,
		Date:      b.Date.Format(dateLayout),
		Subject:   b.Subject,
		Equipment: equipment,
		Slot:      b.Slot,
		Shift:     b.Shift,
		Room:      b.Room,
		Requester: b.Requester,
		Status:    string(b.Status),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToAccountResponse(a *domain.Account, role domain.Role) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Role:      string(role),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func ToStatsResponse(c domain.StatusCounts) StatsResponse {
	return StatsResponse{
		Pending:  c.Pending,
		Approved: c.Approved,
		Rejected: c.Rejected,
		Total:    c.Total(),
	}
}
