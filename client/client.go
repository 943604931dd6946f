// Package client is a typed HTTP client for the storefront's consumed
// interfaces: the catalog document endpoint and order submission.
package client

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"bazar.GO/catalog"
	"bazar.GO/service/order"
)

// Client talks to a storefront server. The catalog fetch is a single
// attempt: no retry or timeout policy beyond the client-wide timeout.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}

// FetchCatalog retrieves the full catalog document from GET /api/data.
func (c *Client) FetchCatalog(ctx context.Context) (*catalog.Document, error) {
	var doc catalog.Document
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&doc).
		Get("/api/data")
	if err != nil {
		return nil, fmt.Errorf("client: fetch catalog: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("client: fetch catalog: HTTP %d", resp.StatusCode())
	}
	return &doc, nil
}

// OrderResult is the server's answer to an order submission. OK mirrors
// the HTTP-level success signal; Message is shown to the user either way.
type OrderResult struct {
	OK      bool
	Message string
}

type orderResponse struct {
	Message string `json:"message"`
}

// SubmitOrder posts the order to /send-email. A failed submission is not
// an error at this level: the caller keeps the cart and surfaces Message.
func (c *Client) SubmitOrder(ctx context.Context, payload order.Payload) (OrderResult, error) {
	var body orderResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&body).
		SetError(&body).
		Post("/send-email")
	if err != nil {
		return OrderResult{}, fmt.Errorf("client: submit order: %w", err)
	}
	msg := body.Message
	if msg == "" {
		msg = "Failed to place order. Please try again."
	}
	return OrderResult{OK: resp.IsSuccess(), Message: msg}, nil
}
