package parkingapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// ListClients возвращает клиентов (GET /clients)
func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, opListClients, http.MethodGet, "/clients", nil, &raw); err != nil {
		c.log.Error("ListClients: failed to list clients: %v", err)
		return nil, err
	}

	var records []ClientRecord
	if err := decodeEnvelope(raw, "clients", &records); err != nil {
		return nil, err
	}

	clients := make([]domain.Client, 0, len(records))
	for _, rec := range records {
		clients = append(clients, NormalizeClient(rec))
	}

	c.log.Info("ListClients: fetched %d clients", len(clients))
	return clients, nil
}

// CreateClient создает клиента (POST /clients); API отвечает {"client": {...}}
func (c *Client) CreateClient(ctx context.Context, req *ClientRequest) (*domain.Client, error) {
	var envelope struct {
		Client *ClientRecord `json:"client"`
	}
	if err := c.doJSON(ctx, opCreateClient, http.MethodPost, "/clients", req, &envelope); err != nil {
		c.log.Error("CreateClient: failed to create client email=%s: %v", req.Email, err)
		return nil, err
	}

	if envelope.Client == nil {
		c.log.Error("CreateClient: response without client for email=%s", req.Email)
		return nil, fmt.Errorf("%w: response without client", ErrInvalidResponse)
	}

	client := NormalizeClient(*envelope.Client)
	c.log.Info("CreateClient: created client id=%s", client.ID)
	return &client, nil
}

// DeleteClient удаляет клиента (DELETE /clients/:id)
func (c *Client) DeleteClient(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, opDeleteClient, http.MethodDelete, "/clients/"+url.PathEscape(id), nil, nil); err != nil {
		c.log.Error("DeleteClient: failed to delete client id=%s: %v", id, err)
		return err
	}

	c.log.Info("DeleteClient: deleted client id=%s", id)
	return nil
}
