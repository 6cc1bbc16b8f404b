package dto

type RegisterRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	AccessCode string `json:"access_code"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateBookingRequest struct {
	Date      string   `json:"date" binding:"required"`
	Subject   string   `json:"subject" binding:"required"`
	Equipment []string `json:"equipment" binding:"required,min=1"`
	Slot      string   `json:"slot" binding:"required"`
	Shift     string   `json:"shift" binding:"required"`
	Room      string   `json:"room" binding:"required"`
}

type DecisionRequest struct {
	Notes string `json:"notes"`
}

type NotesRequest struct {
	Notes string `json:"notes" binding:"required"`
}

type RepairRequest struct {
	Confirm bool `json:"confirm"`
}
