package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

const (
	maxUploadBytes = 10 << 20
	maxImageBytes  = 5 << 20
	imageFormField = "image"
)

var (
	// ErrInvalidForm возвращается при некорректной форме парковки
	ErrInvalidForm = errors.New("invalid parking form")

	// ErrInvalidImage возвращается, если файл не изображение или слишком большой
	ErrInvalidImage = errors.New("invalid parking image")
)

// ParkingForm поля парковки: JSON-тело или multipart/form-data с файлом image
type ParkingForm struct {
	Name           string   `json:"name" validate:"required"`
	Address        string   `json:"address" validate:"required"`
	TotalSpots     int      `json:"totalSpots" validate:"gt=0"`
	AvailableSpots *int     `json:"availableSpots" validate:"omitempty,gte=0"`
	PricePerHour   float64  `json:"pricePerHour" validate:"gte=0"`
	Description    string   `json:"description"`
	IsActive       *bool    `json:"isActive"`
	OpeningHours   string   `json:"openingHours"`
	Services       []string `json:"services" validate:"dive,required"`
}

// ParseParkingForm читает форму парковки из JSON или multipart; image == nil, если файла нет
func ParseParkingForm(r *http.Request) (*ParkingForm, *parkingapi.ImageFile, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var form ParkingForm
		if err := DecodeJSON(r, &form); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return &form, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	form, err := parkingFormFromValues(r)
	if err != nil {
		return nil, nil, err
	}

	image, err := readImage(r)
	if err != nil {
		return nil, nil, err
	}

	return form, image, nil
}

// ToPayload собирает данные для parking API; isActive по умолчанию true
func (f *ParkingForm) ToPayload(image *parkingapi.ImageFile) parkingapi.ParkingPayload {
	isActive := true
	if f.IsActive != nil {
		isActive = *f.IsActive
	}

	openingHours := strings.TrimSpace(f.OpeningHours)
	if openingHours == "" {
		openingHours = domain.DefaultOpeningHours
	}

	return parkingapi.ParkingPayload{
		Fields: parkingapi.ParkingFields{
			Name:           strings.TrimSpace(f.Name),
			Address:        strings.TrimSpace(f.Address),
			TotalSpots:     f.TotalSpots,
			AvailableSpots: f.AvailableSpots,
			PricePerHour:   f.PricePerHour,
			Description:    f.Description,
			IsActive:       isActive,
			OpeningHours:   openingHours,
			Services:       f.Services,
		},
		Image: image,
	}
}

func parkingFormFromValues(r *http.Request) (*ParkingForm, error) {
	form := &ParkingForm{
		Name:         r.FormValue("name"),
		Address:      r.FormValue("address"),
		Description:  r.FormValue("description"),
		OpeningHours: r.FormValue("openingHours"),
		Services:     r.MultipartForm.Value["services"],
	}

	var err error
	if form.TotalSpots, err = atoiField(r, "totalSpots"); err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(r.FormValue("availableSpots")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: availableSpots: %v", ErrInvalidForm, err)
		}
		form.AvailableSpots = &n
	}
	if v := strings.TrimSpace(r.FormValue("pricePerHour")); v != "" {
		if form.PricePerHour, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("%w: pricePerHour: %v", ErrInvalidForm, err)
		}
	}
	if v := strings.TrimSpace(r.FormValue("isActive")); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: isActive: %v", ErrInvalidForm, err)
		}
		form.IsActive = &active
	}

	return form, nil
}

func atoiField(r *http.Request, name string) (int, error) {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidForm, name, err)
	}
	return n, nil
}

func readImage(r *http.Request) (*parkingapi.ImageFile, error) {
	file, header, err := r.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		return nil, fmt.Errorf("%w: file is larger than %d bytes", ErrInvalidImage, maxImageBytes)
	}

	content, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(content) > maxImageBytes {
		return nil, fmt.Errorf("%w: file is larger than %d bytes", ErrInvalidImage, maxImageBytes)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: content type %s", ErrInvalidImage, contentType)
	}

	return &parkingapi.ImageFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Content:     bytes.NewReader(content),
	}, nil
}
