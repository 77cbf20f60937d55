package parkingapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// CreateReservation создает бронирование (POST /reservations)
// Требует доступности API: бронирование либо попадает в настоящее хранилище, либо отклоняется
func (c *Client) CreateReservation(ctx context.Context, req *ReservationRequest) (*domain.Reservation, error) {
	if !c.CheckAvailability(ctx) {
		c.log.Error("CreateReservation: parking API unavailable, rejecting reservation for parking id=%s", req.ParkingID)
		return nil, ErrServiceUnavailable
	}

	var raw json.RawMessage
	if err := c.doJSON(ctx, opCreateReservation, http.MethodPost, "/reservations", req, &raw); err != nil {
		c.log.Error("CreateReservation: failed to create reservation for parking id=%s: %v", req.ParkingID, err)
		return nil, err
	}

	var rec ReservationRecord
	if err := decodeEnvelope(raw, "reservation", &rec); err != nil {
		return nil, err
	}

	reservation := NormalizeReservation(rec)
	c.log.Info("CreateReservation: created reservation id=%s for parking id=%s", reservation.ID, req.ParkingID)
	return &reservation, nil
}

// ListAllReservations возвращает все бронирования (GET /reservations/admin/all)
func (c *Client) ListAllReservations(ctx context.Context) ([]domain.Reservation, error) {
	return c.listReservations(ctx, opListReservations, "/reservations/admin/all")
}

// ListPendingReservations возвращает бронирования в статусе pending (GET /reservations/admin/pending)
func (c *Client) ListPendingReservations(ctx context.Context) ([]domain.Reservation, error) {
	return c.listReservations(ctx, opListPending, "/reservations/admin/pending")
}

// UpdateReservationStatus переводит бронирование в confirmed или cancelled
// confirmed -> PUT /reservations/admin/:id/confirm, cancelled -> PUT /reservations/admin/:id/reject
func (c *Client) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	var action string
	switch status {
	case domain.StatusConfirmed:
		action = "confirm"
	case domain.StatusCancelled:
		action = "reject"
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	path := fmt.Sprintf("/reservations/admin/%s/%s", url.PathEscape(id), action)
	if err := c.doJSON(ctx, opUpdateReservation, http.MethodPut, path, struct{}{}, nil); err != nil {
		c.log.Error("UpdateReservationStatus: failed to set status=%s for reservation id=%s: %v", status, id, err)
		return err
	}

	c.log.Info("UpdateReservationStatus: reservation id=%s is now %s", id, status)
	return nil
}

// DeleteReservation удаляет бронирование (DELETE /reservations/admin/:id)
func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, opDeleteReservation, http.MethodDelete, "/reservations/admin/"+url.PathEscape(id), nil, nil); err != nil {
		c.log.Error("DeleteReservation: failed to delete reservation id=%s: %v", id, err)
		return err
	}

	c.log.Info("DeleteReservation: deleted reservation id=%s", id)
	return nil
}

func (c *Client) listReservations(ctx context.Context, op, path string) ([]domain.Reservation, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, op, http.MethodGet, path, nil, &raw); err != nil {
		c.log.Error("ListReservations: GET %s failed: %v", path, err)
		return nil, err
	}

	var records []ReservationRecord
	if err := decodeEnvelope(raw, "reservations", &records); err != nil {
		return nil, err
	}

	reservations := make([]domain.Reservation, 0, len(records))
	for _, rec := range records {
		reservations = append(reservations, NormalizeReservation(rec))
	}

	c.log.Info("ListReservations: fetched %d reservations from %s", len(reservations), path)
	return reservations, nil
}
