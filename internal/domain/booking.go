package domain

import "time"

// BookingRequest is one request to use a room and a set of equipment on a
// given day. The ID is assigned by the store and immutable, as is the
// requester once the row is written.
type BookingRequest struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Subject   string    `json:"subject"`
	Equipment []string  `json:"equipment"`
	Slot      string    `json:"slot"`
	Shift     string    `json:"shift"`
	Room      string    `json:"room"`
	Requester string    `json:"requester"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBookingInput struct {
	Date      time.Time
	Subject   string
	Equipment []string
	Slot      string
	Shift     string
	Room      string
	Requester string
}

// ListFilter narrows a booking listing. Zero values mean "no filter";
// both filters combine with AND.
type ListFilter struct {
	Status    Status
	Requester string
}
