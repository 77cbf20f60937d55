package parkingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// ListParkings возвращает список парковок
// API недоступен, ошибка или пустой список (при TreatEmptyAsUnavailable) -> резервный набор без изменений
// "Нет данных" трактуется так же, как "нет связи": этого ждут существующие потребители
func (c *Client) ListParkings(ctx context.Context) ([]domain.Parking, Source) {
	if !c.CheckAvailability(ctx) {
		c.log.Warn("ListParkings: parking API unavailable, serving %d fallback parkings", len(c.fallback))
		c.metrics.IncFallback(opListParkings, "unavailable")
		return cloneParkings(c.fallback), SourceFallback
	}

	var records []ParkingRecord
	if err := c.doJSON(ctx, opListParkings, http.MethodGet, "/parkings", nil, &records); err != nil {
		c.log.Warn("ListParkings: remote list failed, serving fallback: %v", err)
		c.metrics.IncFallback(opListParkings, "error")
		return cloneParkings(c.fallback), SourceFallback
	}

	if len(records) == 0 {
		if c.treatEmptyAsUnavailable {
			c.log.Info("ListParkings: parking API returned no parkings, serving fallback")
			c.metrics.IncFallback(opListParkings, "empty")
			return cloneParkings(c.fallback), SourceFallback
		}
		return []domain.Parking{}, SourceRemote
	}

	parkings := make([]domain.Parking, 0, len(records))
	for _, rec := range records {
		parkings = append(parkings, NormalizeParking(rec, c.uploadsURL))
	}

	c.log.Info("ListParkings: fetched %d parkings from parking API", len(parkings))
	return parkings, SourceRemote
}

// GetParkingByID возвращает парковку по id
// При любой ошибке API ищет в резервном наборе; не нашли -> ErrParkingNotFound
func (c *Client) GetParkingByID(ctx context.Context, id string) (*domain.Parking, Source, error) {
	if c.CheckAvailability(ctx) {
		var rec ParkingRecord
		err := c.doJSON(ctx, opGetParking, http.MethodGet, "/parkings/"+url.PathEscape(id), nil, &rec)
		if err == nil {
			parking := NormalizeParking(rec, c.uploadsURL)
			c.log.Info("GetParkingByID: fetched parking id=%s from parking API", id)
			return &parking, SourceRemote, nil
		}

		if isRemoteNotFound(err) {
			c.log.Info("GetParkingByID: parking id=%s not found in parking API, checking fallback", id)
		} else {
			c.log.Warn("GetParkingByID: remote fetch failed for id=%s, checking fallback: %v", id, err)
		}
		c.metrics.IncFallback(opGetParking, "error")
	} else {
		c.log.Warn("GetParkingByID: parking API unavailable, checking fallback for id=%s", id)
		c.metrics.IncFallback(opGetParking, "unavailable")
	}

	for _, p := range c.fallback {
		if p.ID == id {
			parking := cloneParking(p)
			return &parking, SourceFallback, nil
		}
	}

	return nil, SourceFallback, ErrParkingNotFound
}

// CreateParking создает парковку (POST /parkings), без fallback
func (c *Client) CreateParking(ctx context.Context, payload ParkingPayload) (*domain.Parking, error) {
	parking, err := c.writeParking(ctx, opCreateParking, http.MethodPost, "/parkings", payload)
	if err != nil {
		c.log.Error("CreateParking: failed to create parking name=%s: %v", payload.Fields.Name, err)
		return nil, err
	}

	c.log.Info("CreateParking: created parking id=%s (multipart=%t)", parking.ID, payload.IsMultipart())
	return parking, nil
}

// UpdateParking обновляет парковку (PUT /parkings/:id), без fallback
func (c *Client) UpdateParking(ctx context.Context, id string, payload ParkingPayload) (*domain.Parking, error) {
	parking, err := c.writeParking(ctx, opUpdateParking, http.MethodPut, "/parkings/"+url.PathEscape(id), payload)
	if err != nil {
		c.log.Error("UpdateParking: failed to update parking id=%s: %v", id, err)
		return nil, err
	}

	c.log.Info("UpdateParking: updated parking id=%s (multipart=%t)", id, payload.IsMultipart())
	return parking, nil
}

// DeleteParking удаляет парковку (DELETE /parkings/:id), без fallback
func (c *Client) DeleteParking(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, opDeleteParking, http.MethodDelete, "/parkings/"+url.PathEscape(id), nil, nil); err != nil {
		c.log.Error("DeleteParking: failed to delete parking id=%s: %v", id, err)
		return err
	}

	c.log.Info("DeleteParking: deleted parking id=%s", id)
	return nil
}

func (c *Client) writeParking(ctx context.Context, op, method, path string, payload ParkingPayload) (*domain.Parking, error) {
	var raw json.RawMessage

	if payload.IsMultipart() {
		body, contentType, err := encodeParkingMultipart(payload)
		if err != nil {
			return nil, err
		}
		if err := c.do(ctx, op, method, path, body, contentType, &raw); err != nil {
			return nil, err
		}
	} else {
		if err := c.doJSON(ctx, op, method, path, payload.Fields, &raw); err != nil {
			return nil, err
		}
	}

	var rec ParkingRecord
	if err := decodeEnvelope(raw, "parking", &rec); err != nil {
		return nil, err
	}

	parking := NormalizeParking(rec, c.uploadsURL)
	return &parking, nil
}

// encodeParkingMultipart собирает multipart/form-data: поля, services повторяющимися частями, файл image
func encodeParkingMultipart(payload ParkingPayload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	f := payload.Fields
	fields := [][2]string{
		{"name", f.Name},
		{"address", f.Address},
		{"totalSpots", strconv.Itoa(f.TotalSpots)},
		{"pricePerHour", strconv.FormatFloat(f.PricePerHour, 'f', -1, 64)},
		{"description", f.Description},
		{"isActive", strconv.FormatBool(f.IsActive)},
		{"openingHours", f.OpeningHours},
	}
	if f.AvailableSpots != nil {
		fields = append(fields, [2]string{"availableSpots", strconv.Itoa(*f.AvailableSpots)})
	}
	for _, s := range f.Services {
		fields = append(fields, [2]string{"services", s})
	}

	for _, kv := range fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", fmt.Errorf("%w: failed to write field %s: %v", ErrInternal, kv[0], err)
		}
	}

	img := payload.Image
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, img.Filename))
	contentType := img.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to create image part: %v", ErrInternal, err)
	}
	if _, err := io.Copy(part, img.Content); err != nil {
		return nil, "", fmt.Errorf("%w: failed to copy image: %v", ErrInternal, err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: failed to close multipart writer: %v", ErrInternal, err)
	}

	return buf, w.FormDataContentType(), nil
}
