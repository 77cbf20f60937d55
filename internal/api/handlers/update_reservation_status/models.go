package update_reservation_status

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
