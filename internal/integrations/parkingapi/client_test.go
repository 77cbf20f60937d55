package parkingapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/pkg/logger"
	"github.com/m04kA/SMC-ParkingPortal/pkg/requestid"
)

const testUploadsURL = "https://cdn.example.com/uploads"

type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	ContentType   string
	Body          []byte
}

// fakeAPI поддельный parking API: /api/health + произвольные обработчики
type fakeAPI struct {
	server  *httptest.Server
	mux     *http.ServeMux
	mu      sync.Mutex
	healthy bool
	calls   []recordedRequest
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	f := &fakeAPI{mux: http.NewServeMux(), healthy: true}
	f.mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		healthy := f.healthy
		f.mu.Unlock()
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		f.mu.Lock()
		f.calls = append(f.calls, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get(requestid.Header),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          body,
		})
		f.mu.Unlock()

		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeAPI) setHealthy(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.healthy = v
}

func (f *fakeAPI) handle(pattern string, h http.HandlerFunc) {
	f.mux.HandleFunc(pattern, h)
}

// requests возвращает все запросы, кроме health probe
func (f *fakeAPI) requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []recordedRequest
	for _, c := range f.calls {
		if c.Path != "/api/health" {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeAPI) client(opts ...func(*Options)) *Client {
	o := Options{
		BaseURL:                 f.server.URL + "/api",
		UploadsURL:              testUploadsURL,
		Timeout:                 2 * time.Second,
		TreatEmptyAsUnavailable: true,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return NewClient(o, logger.NewNop(), nil)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// unreachableClient клиент, указывающий на закрытый сервер
func unreachableClient(t *testing.T) *Client {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL + "/api"
	srv.Close()

	return NewClient(Options{
		BaseURL:                 baseURL,
		UploadsURL:              testUploadsURL,
		Timeout:                 time.Second,
		TreatEmptyAsUnavailable: true,
	}, logger.NewNop(), nil)
}

func TestClient_CheckAvailability(t *testing.T) {
	api := newFakeAPI(t)
	c := api.client()

	assert.True(t, c.CheckAvailability(context.Background()))

	api.setHealthy(false)
	assert.False(t, c.CheckAvailability(context.Background()))

	assert.False(t, unreachableClient(t).CheckAvailability(context.Background()))
}

func TestClient_ListParkings(t *testing.T) {
	t.Run("remote records are normalized", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("GET /api/parkings", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[
				{"_id":"665f1","name":"Parking Port","address":"1 Quai","totalSpots":"40","availableSpots":12,
				 "pricePerHour":"1500","image":"port.jpg","isActive":true,"services":["Gardien"],"openingHours":"6h-22h"},
				{"_id":"665f2","name":"Parking Marché","totalSpots":10,"availableSpots":"3","pricePerHour":500,"image":null}
			]`)
		})

		parkings, source := api.client().ListParkings(context.Background())

		assert.Equal(t, SourceRemote, source)
		require.Len(t, parkings, 2)

		assert.Equal(t, "665f1", parkings[0].ID)
		assert.Equal(t, 40, parkings[0].TotalSpots)
		assert.Equal(t, 12, parkings[0].AvailableSpots)
		assert.Equal(t, 1500.0, parkings[0].PricePerHour)
		require.NotNil(t, parkings[0].Image)
		assert.Equal(t, testUploadsURL+"/port.jpg", *parkings[0].Image)
		assert.Equal(t, []string{"Gardien"}, parkings[0].Services)

		assert.Equal(t, 3, parkings[1].AvailableSpots)
		assert.Equal(t, domain.DefaultImagePath, *parkings[1].Image)
		assert.True(t, parkings[1].IsActive, "missing isActive defaults to true")
	})

	t.Run("health probe fails", func(t *testing.T) {
		api := newFakeAPI(t)
		api.setHealthy(false)
		api.handle("GET /api/parkings", func(w http.ResponseWriter, r *http.Request) {
			t.Error("list endpoint must not be called when the probe fails")
		})

		parkings, source := api.client().ListParkings(context.Background())

		assert.Equal(t, SourceFallback, source)
		assert.Equal(t, DefaultFallbackParkings(), parkings)
		assert.Len(t, parkings, 5)
	})

	t.Run("unreachable", func(t *testing.T) {
		parkings, source := unreachableClient(t).ListParkings(context.Background())

		assert.Equal(t, SourceFallback, source)
		assert.Len(t, parkings, 5)
	})

	t.Run("empty array is treated as unavailable", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("GET /api/parkings", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[]`)
		})

		parkings, source := api.client().ListParkings(context.Background())

		assert.Equal(t, SourceFallback, source)
		assert.Equal(t, DefaultFallbackParkings(), parkings)
	})

	t.Run("empty array kept when policy is off", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("GET /api/parkings", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[]`)
		})

		c := api.client(func(o *Options) { o.TreatEmptyAsUnavailable = false })
		parkings, source := c.ListParkings(context.Background())

		assert.Equal(t, SourceRemote, source)
		assert.Empty(t, parkings)
	})

	t.Run("remote error", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("GET /api/parkings", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "db down"})
		})

		parkings, source := api.client().ListParkings(context.Background())

		assert.Equal(t, SourceFallback, source)
		assert.Len(t, parkings, 5)
	})

	t.Run("fallback set cannot be mutated by callers", func(t *testing.T) {
		c := unreachableClient(t)

		first, _ := c.ListParkings(context.Background())
		first[0].Name = "changed"
		first[0].Services[0] = "changed"

		second, _ := c.ListParkings(context.Background())
		assert.Equal(t, "Parking Central", second[0].Name)
		assert.Equal(t, "Surveillance 24/7", second[0].Services[0])
	})
}

func TestClient_GetParkingByID(t *testing.T) {
	t.Run("fallback when unreachable", func(t *testing.T) {
		parking, source, err := unreachableClient(t).GetParkingByID(context.Background(), "2")

		require.NoError(t, err)
		assert.Equal(t, SourceFallback, source)
		assert.Equal(t, "Parking Gare Nord", parking.Name)
		assert.Equal(t, 4.0, parking.PricePerHour)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, _, err := unreachableClient(t).GetParkingByID(context.Background(), "42")
		assert.ErrorIs(t, err, ErrParkingNotFound)
	})

	t.Run("remote record", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("GET /api/parkings/{id}", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"_id":"`+r.PathValue("id")+`","name":"Parking Port","totalSpots":"40","availableSpots":"12","pricePerHour":"2.5"}`)
		})

		parking, source, err := api.client().GetParkingByID(context.Background(), "665f1")

		require.NoError(t, err)
		assert.Equal(t, SourceRemote, source)
		assert.Equal(t, "665f1", parking.ID)
		assert.Equal(t, 2.5, parking.PricePerHour)
	})

	t.Run("remote 404 falls back to bundled record", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("GET /api/parkings/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Parking non trouvé"})
		})

		parking, source, err := api.client().GetParkingByID(context.Background(), "3")

		require.NoError(t, err)
		assert.Equal(t, SourceFallback, source)
		assert.Equal(t, "Parking Shopping Mall", parking.Name)
	})
}

func TestClient_Login(t *testing.T) {
	t.Run("local admin", func(t *testing.T) {
		result, err := unreachableClient(t).Login(context.Background(), "salamjeanlouis8@gmail.com", "azertyui")

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, domain.RoleAdmin, result.User.Role)
		assert.Equal(t, "1", result.User.ID)
		assert.Equal(t, "salamjeanlouis8@gmail.com", result.User.Email)
	})

	t.Run("local wrong password", func(t *testing.T) {
		result, err := unreachableClient(t).Login(context.Background(), "salamjeanlouis8@gmail.com", "wrong")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("local token without secret", func(t *testing.T) {
		result, err := unreachableClient(t).Login(context.Background(), "john@example.com", "user123")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.Token, "mock-token-"))
		assert.Equal(t, domain.RoleUser, result.User.Role)
	})

	t.Run("local token signed with secret", func(t *testing.T) {
		api := newFakeAPI(t)
		api.setHealthy(false)
		c := api.client(func(o *Options) { o.LocalTokenSecret = "s3cret" })

		result, err := c.Login(context.Background(), "salamjeanlouis8@gmail.com", "azertyui")
		require.NoError(t, err)

		claims := &localClaims{}
		_, err = jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte("s3cret"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "1", claims.Subject)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, localIssuer, claims.Issuer)
	})

	t.Run("remote", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var req loginRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "admin@parking.fr", req.Email)
			_, _ = io.WriteString(w, `{"token":"remote-jwt","user":{"_id":"u1","email":"admin@parking.fr","role":"admin"}}`)
		})

		result, err := api.client().Login(context.Background(), "admin@parking.fr", "pw")

		require.NoError(t, err)
		assert.Equal(t, &AuthResult{
			Token: "remote-jwt",
			User:  domain.User{ID: "u1", Email: "admin@parking.fr", Role: domain.RoleAdmin},
		}, result)
	})

	t.Run("remote rejection is passed through", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Identifiants invalides"})
		})

		_, err := api.client().Login(context.Background(), "admin@parking.fr", "bad")

		var remoteErr *RemoteError
		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, http.StatusUnauthorized, remoteErr.Status)
		assert.Equal(t, "Identifiants invalides", remoteErr.Message)
	})
}

func TestHashLocalUsers(t *testing.T) {
	accounts := hashLocalUsers([]LocalUser{
		{ID: "7", Email: "a@b.c", Password: "secret", Role: domain.RoleUser},
	}, logger.NewNop())

	require.Len(t, accounts, 1)
	assert.Empty(t, accounts[0].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword(accounts[0].hash, []byte("secret")))
}

func TestClient_Register(t *testing.T) {
	t.Run("local duplicate", func(t *testing.T) {
		_, err := unreachableClient(t).Register(context.Background(), &RegisterRequest{Email: "john@example.com", Password: "x"})
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("local user is not persisted", func(t *testing.T) {
		c := unreachableClient(t)
		c.now = func() time.Time { return time.UnixMilli(1710900000000) }

		result, err := c.Register(context.Background(), &RegisterRequest{Name: "Awa", Email: "awa@example.com", Password: "pw123456"})

		require.NoError(t, err)
		assert.Equal(t, "mock-1710900000000", result.User.ID)
		assert.Equal(t, domain.RoleUser, result.User.Role)
		assert.NotEmpty(t, result.Token)

		_, err = c.Login(context.Background(), "awa@example.com", "pw123456")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("remote", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"token":"t","user":{"id":7,"email":"awa@example.com","role":"user"}}`)
		})

		result, err := api.client().Register(context.Background(), &RegisterRequest{Email: "awa@example.com", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "7", result.User.ID)
	})
}

func TestClient_CreateReservation(t *testing.T) {
	req := &ReservationRequest{
		ParkingID:     "2",
		FirstName:     "Jean",
		LastName:      "Dupont",
		Email:         "jean@exemple.fr",
		Phone:         "0612345678",
		StartDate:     time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
		Total:         8,
		DurationHours: 2,
	}

	t.Run("probe fails", func(t *testing.T) {
		api := newFakeAPI(t)
		api.setHealthy(false)

		_, err := api.client().CreateReservation(context.Background(), req)

		assert.ErrorIs(t, err, ErrServiceUnavailable)
		assert.Empty(t, api.requests(), "no write request may be issued")
	})

	t.Run("created", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("POST /api/reservations", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, map[string]interface{}{
				"reservation": map[string]interface{}{
					"_id": "r1", "parking": "2", "firstName": "Jean", "lastName": "Dupont",
					"startDate": "2024-03-20T10:00:00Z", "endDate": "2024-03-20T12:00:00Z",
					"duration": 2, "totalPrice": 8, "status": "pending", "createdAt": "2024-03-19T15:30:00",
				},
			})
		})

		c := api.client()
		c.Session(context.Background()).SetToken("abc")

		reservation, err := c.CreateReservation(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "r1", reservation.ID)
		assert.Equal(t, "2", reservation.ParkingID)
		assert.Equal(t, domain.StatusPending, reservation.Status)
		assert.Equal(t, 8.0, reservation.TotalPrice)

		calls := api.requests()
		require.Len(t, calls, 1)
		assert.Equal(t, "Bearer abc", calls[0].Authorization)

		var sent map[string]interface{}
		require.NoError(t, json.Unmarshal(calls[0].Body, &sent))
		assert.Equal(t, "2", sent["parkingId"])
		assert.Equal(t, 8.0, sent["total"])
		assert.Equal(t, 2.0, sent["duration"])
	})
}

func TestClient_UpdateReservationStatus(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("PUT /api/reservations/admin/{id}/confirm", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	api.handle("PUT /api/reservations/admin/{id}/reject", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	c := api.client()

	require.NoError(t, c.UpdateReservationStatus(context.Background(), "r1", domain.StatusConfirmed))
	require.NoError(t, c.UpdateReservationStatus(context.Background(), "r2", domain.StatusCancelled))

	err := c.UpdateReservationStatus(context.Background(), "r3", domain.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	calls := api.requests()
	require.Len(t, calls, 2)
	assert.Equal(t, "/api/reservations/admin/r1/confirm", calls[0].Path)
	assert.Equal(t, "/api/reservations/admin/r2/reject", calls[1].Path)
}

func TestClient_DeleteReservation(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("DELETE /api/reservations/admin/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
	})

	require.NoError(t, api.client().DeleteReservation(context.Background(), "r1"))

	calls := api.requests()
	require.Len(t, calls, 1)
	assert.Equal(t, "/api/reservations/admin/r1", calls[0].Path)
}

func TestClient_ListReservations(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/reservations/admin/all", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"reservations":[
			{"_id":"r1","parking":{"_id":"p1","name":"Parking Port"},"firstName":"Jean","lastName":"Dupont","status":"confirmed","totalPrice":"3000"},
			{"_id":"r2","parkingId":"p2","name":"Awa Diop","status":"cancelled"}
		]}`)
	})
	api.handle("GET /api/reservations/admin/pending", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"reservations":[]}`)
	})
	c := api.client()

	all, err := c.ListAllReservations(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "p1", all[0].ParkingID)
	assert.Equal(t, "Parking Port", all[0].ParkingName)
	assert.Equal(t, 3000.0, all[0].TotalPrice)
	assert.Equal(t, "p2", all[1].ParkingID)
	assert.Equal(t, "Awa", all[1].FirstName)
	assert.Equal(t, "Diop", all[1].LastName)

	pending, err := c.ListPendingReservations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestClient_WritesSurfaceRemoteErrors(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("POST /api/parkings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Le nom est requis"})
	})
	api.handle("DELETE /api/parkings/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	api.handle("DELETE /api/clients/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})
	c := api.client()

	_, err := c.CreateParking(context.Background(), ParkingPayload{Fields: ParkingFields{Address: "x"}})
	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusBadRequest, remoteErr.Status)
	assert.Equal(t, "Le nom est requis", remoteErr.Message)

	err = c.DeleteParking(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = c.DeleteClient(context.Background(), "c1")
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, genericRemoteMessage, remoteErr.Message)

	_, err = unreachableClient(t).CreateParking(context.Background(), ParkingPayload{})
	assert.ErrorIs(t, err, ErrServiceUnreachable)
}

func TestClient_CreateParkingMultipart(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("POST /api/parkings", func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		assert.Equal(t, "Parking Port", r.FormValue("name"))
		assert.Equal(t, "40", r.FormValue("totalSpots"))
		assert.Equal(t, "2.5", r.FormValue("pricePerHour"))
		assert.Equal(t, []string{"Gardien", "Lavage"}, r.MultipartForm.Value["services"])

		file, header, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "port.jpg", header.Filename)
		assert.Equal(t, "jpeg-bytes", string(content))

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"parking": map[string]interface{}{"_id": "p9", "name": "Parking Port", "image": "1700-port.jpg"},
		})
	})

	payload := ParkingPayload{
		Fields: ParkingFields{
			Name:         "Parking Port",
			Address:      "1 Quai",
			TotalSpots:   40,
			PricePerHour: 2.5,
			IsActive:     true,
			Services:     []string{"Gardien", "Lavage"},
		},
		Image: &ImageFile{Filename: "port.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpeg-bytes")},
	}

	parking, err := api.client().CreateParking(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, "p9", parking.ID)
	assert.Equal(t, testUploadsURL+"/1700-port.jpg", *parking.Image)
	assert.True(t, strings.HasPrefix(api.requests()[0].ContentType, "multipart/form-data"))
}

func TestClient_UpdateParkingJSON(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("PUT /api/parkings/{id}", func(w http.ResponseWriter, r *http.Request) {
		var fields ParkingFields
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, 3.0, fields.PricePerHour)
		_, _ = io.WriteString(w, `{"_id":"p1","name":"`+fields.Name+`","pricePerHour":3}`)
	})

	parking, err := api.client().UpdateParking(context.Background(), "p1", ParkingPayload{
		Fields: ParkingFields{Name: "Parking Central", PricePerHour: 3},
	})

	require.NoError(t, err)
	assert.Equal(t, "Parking Central", parking.Name)
	assert.Equal(t, "application/json", api.requests()[0].ContentType)
}

func TestClient_Clients(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/clients", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"clients":[{"_id":"c1","name":"Jean Dupont","parkingId":{"_id":"p1"},"startDate":"2024-03-20T10:00:00Z","reservations":2}]}`)
	})
	api.handle("POST /api/clients", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"message":"created"}`)
	})
	c := api.client()

	clients, err := c.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.NotNil(t, clients[0].ParkingID)
	assert.Equal(t, "p1", *clients[0].ParkingID)
	assert.NotNil(t, clients[0].StartDate)
	assert.Nil(t, clients[0].EndDate)
	assert.Equal(t, 2, clients[0].ReservationsCount)

	_, err = c.CreateClient(context.Background(), &ClientRequest{Name: "Jean"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_SessionAndRequestID(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /api/reservations/admin/pending", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	c := api.client()
	c.Session(context.Background()).SetToken("default-token")

	_, err := c.ListPendingReservations(context.Background())
	require.NoError(t, err)

	reqSession := NewSessionWithToken("request-token")
	ctx := ContextWithSession(requestid.WithID(context.Background(), "req-42"), reqSession)
	_, err = c.ListPendingReservations(ctx)
	require.NoError(t, err)

	reqSession.ClearToken()
	_, err = c.ListPendingReservations(ctx)
	require.NoError(t, err)

	calls := api.requests()
	require.Len(t, calls, 3)
	assert.Equal(t, "Bearer default-token", calls[0].Authorization)
	assert.Equal(t, "Bearer request-token", calls[1].Authorization)
	assert.Equal(t, "req-42", calls[1].RequestID)
	assert.Empty(t, calls[2].Authorization, "no client-side short-circuit, the API decides")
}
