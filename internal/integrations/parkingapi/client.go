package parkingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/pkg/requestid"
)

// Имена операций для логов и метрик
const (
	opHealth            = "health"
	opLogin             = "login"
	opRegister          = "register"
	opListParkings      = "list_parkings"
	opGetParking        = "get_parking"
	opCreateParking     = "create_parking"
	opUpdateParking     = "update_parking"
	opDeleteParking     = "delete_parking"
	opCreateReservation = "create_reservation"
	opListReservations  = "list_reservations"
	opListPending       = "list_pending_reservations"
	opUpdateReservation = "update_reservation_status"
	opDeleteReservation = "delete_reservation"
	opListClients       = "list_clients"
	opCreateClient      = "create_client"
	opDeleteClient      = "delete_client"
	maxErrorBodyBytes   = 4096
	contentTypeJSON     = "application/json"
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// Options настройки клиента
type Options struct {
	// BaseURL адрес API вместе с префиксом, например https://host/api
	BaseURL string
	// UploadsURL префикс для файлов изображений, например https://host/uploads
	UploadsURL string
	// Timeout таймаут HTTP-транспорта; ретраев нет
	Timeout time.Duration
	// TreatEmptyAsUnavailable пустой список парковок от API считается недоступностью
	TreatEmptyAsUnavailable bool
	// LocalTokenSecret ключ подписи локальных токенов; пусто - токен вида mock-token-<ms>
	LocalTokenSecret string
	// LocalUsers таблица пользователей для логина без API; nil - DefaultLocalUsers
	LocalUsers []LocalUser
	// FallbackParkings резервный набор; nil - DefaultFallbackParkings
	FallbackParkings []domain.Parking
}

// Client клиент для работы с parking API с резервными данными для чтения
type Client struct {
	baseURL                 string
	uploadsURL              string
	httpClient              *http.Client
	session                 *Session
	treatEmptyAsUnavailable bool
	tokenSecret             string
	users                   []localAccount
	fallback                []domain.Parking
	now                     func() time.Time
	log                     Logger
	metrics                 Recorder
}

// NewClient создает новый экземпляр клиента parking API
func NewClient(opts Options, log Logger, metrics Recorder) *Client {
	users := opts.LocalUsers
	if users == nil {
		users = DefaultLocalUsers()
	}

	fallback := opts.FallbackParkings
	if fallback == nil {
		fallback = DefaultFallbackParkings()
	}

	if metrics == nil {
		metrics = nopRecorder{}
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		uploadsURL: strings.TrimRight(opts.UploadsURL, "/"),
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		session:                 NewSession(),
		treatEmptyAsUnavailable: opts.TreatEmptyAsUnavailable,
		tokenSecret:             opts.LocalTokenSecret,
		users:                   hashLocalUsers(users, log),
		fallback:                cloneParkings(fallback),
		now:                     time.Now,
		log:                     log,
		metrics:                 metrics,
	}
}

// Session возвращает сессию, действующую для контекста:
// привязанную к запросу через ContextWithSession, иначе сессию клиента
func (c *Client) Session(ctx context.Context) *Session {
	if s, ok := sessionFromContext(ctx); ok {
		return s
	}
	return c.session
}

// CheckAvailability проверяет доступность API через GET /health
// Любая сетевая ошибка или статус, отличный от 200, дает false
func (c *Client) CheckAvailability(ctx context.Context) bool {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		c.log.Error("CheckAvailability: failed to create request: %v", err)
		return false
	}
	c.setCommonHeaders(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(opHealth, "unreachable", time.Since(start))
		c.log.Warn("CheckAvailability: parking API unreachable: %v", err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))

	if resp.StatusCode != http.StatusOK {
		c.metrics.ObserveUpstream(opHealth, "unavailable", time.Since(start))
		c.log.Warn("CheckAvailability: parking API answered status=%d", resp.StatusCode)
		return false
	}

	c.metrics.ObserveUpstream(opHealth, "success", time.Since(start))
	return true
}

// doJSON выполняет запрос с JSON-телом (или без тела, если in == nil)
func (c *Client) doJSON(ctx context.Context, op, method, path string, in, out interface{}) error {
	var (
		body        io.Reader
		contentType string
	)

	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(data)
		contentType = contentTypeJSON
	}

	return c.do(ctx, op, method, path, body, contentType, out)
}

// do выполняет запрос к API
// 2xx -> декодирует ответ в out (если не nil), иначе *RemoteError со статусом и сообщением API
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out interface{}) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	c.setCommonHeaders(ctx, req)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := c.Session(ctx).CurrentToken(); ok {
		req.Header.Set(authorizationHeader, bearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(op, "unreachable", time.Since(start))
		return fmt.Errorf("%w: %s %s: %v", ErrServiceUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.ObserveUpstream(op, "remote_error", time.Since(start))
		return newRemoteError(resp)
	}

	c.metrics.ObserveUpstream(op, "success", time.Since(start))

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty response body", ErrInvalidResponse)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) setCommonHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("Accept", contentTypeJSON)
	if id, ok := requestid.FromContext(ctx); ok {
		req.Header.Set(requestid.Header, id)
	}
}

// newRemoteError собирает RemoteError из ответа; сообщение берется из message или error
func newRemoteError(resp *http.Response) *RemoteError {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	message := ""
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		message = payload.Message
		if message == "" {
			message = payload.Error
		}
	}

	if message == "" {
		message = genericRemoteMessage
	}

	return &RemoteError{Status: resp.StatusCode, Message: message}
}

// decodeEnvelope достает значение по ключу ({"reservations": [...]}) или берет тело целиком
func decodeEnvelope(raw json.RawMessage, key string, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err == nil {
			if inner, ok := envelope[key]; ok {
				trimmed = inner
			}
		}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidResponse, key, err)
	}
	return nil
}

// isRemoteNotFound returns true when err is a 404 from the API
func isRemoteNotFound(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr) && remoteErr.IsNotFound()
}
