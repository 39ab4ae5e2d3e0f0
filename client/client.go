// Package client is the typed HTTP client for the festival-orders API, used
// by the admin dashboard and any other Go consumer. It tolerates the wire
// quirks the backend is known for: the items field of an order may arrive as
// a structured list or as a JSON-encoded string, and timestamps may lack a
// zone designator.
package client

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
	"strings"
	"time"

	"festival-orders/imaging"
	"festival-orders/models"
)

type Client struct {
	base string
	http *http.Client
}

// New builds a client for the given API base URL (e.g. http://localhost:8080).
func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Orders fetches the full order snapshot.
func (c *Client) Orders(ctx context.Context) ([]models.OrderView, error) {
	var orders []models.OrderView
	if err := c.getJSON(ctx, "/api/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ToggleProcessed flips an order between pending and done.
func (c *Client) ToggleProcessed(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d/toggle", id), "", nil, nil)
}

// CompleteOrder marks an order processed; the backend credits any unserved
// items to "system".
func (c *Client) CompleteOrder(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d/complete", id), "", nil, nil)
}

// ServeItem sets which staff member served one item of an order. An empty
// staff name clears the attribution. The change is not reflected locally;
// the next refresh picks it up from the backend.
func (c *Client) ServeItem(ctx context.Context, id uint, itemIndex int, staff string) error {
	form := url.Values{}
	form.Set("item_index", strconv.Itoa(itemIndex))
	form.Set("admin", staff)
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d/serve-item", id),
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()), nil)
}

// NewOrder is a customer order submission.
type NewOrder struct {
	Table          string
	Name           string
	Items          []string
	Total          int64
	Song           string
	TableSize      int
	ConsentPrivacy bool
	ConsentTerms   bool

	// PaymentImage, if set, is downscaled client-side before upload.
	PaymentImage     []byte
	PaymentImageName string
}

// SubmitOrder places an order via the multipart form endpoint and returns
// the new order id.
func (c *Client) SubmitOrder(ctx context.Context, o NewOrder) (uint, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return 0, err
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fields := map[string]string{
		"table":           o.Table,
		"name":            o.Name,
		"items":           string(itemsJSON),
		"total":           strconv.FormatInt(o.Total, 10),
		"song":            o.Song,
		"table_size":      strconv.Itoa(o.TableSize),
		"consent_privacy": strconv.FormatBool(o.ConsentPrivacy),
		"consent_terms":   strconv.FormatBool(o.ConsentTerms),
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return 0, err
		}
	}

	if len(o.PaymentImage) > 0 {
		data, ct, err := imaging.Downscale(o.PaymentImage, imaging.DefaultMaxEdge)
		if err != nil {
			// Keep the original bytes; a large upload beats a lost one.
			data = o.PaymentImage
		}
		name := o.PaymentImageName
		if name == "" {
			name = "payment.jpg"
		}
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="payment_image"; filename=%q`, name))
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return 0, err
		}
		if _, err := part.Write(data); err != nil {
			return 0, err
		}
	}
	if err := w.Close(); err != nil {
		return 0, err
	}

	var resp struct {
		OrderID uint `json:"order_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders", w.FormDataContentType(), &body, &resp); err != nil {
		return 0, err
	}
	return resp.OrderID, nil
}

// JoinWaiting registers a party on the waiting list. The returned view
// carries the masked phone number.
func (c *Client) JoinWaiting(ctx context.Context, name string, tableSize int, phone string, consent bool) (models.WaitingView, error) {
	form := url.Values{}
	form.Set("name", name)
	form.Set("tableSize", strconv.Itoa(tableSize))
	form.Set("phone", phone)
	form.Set("consent", strconv.FormatBool(consent))

	var resp struct {
		Entry models.WaitingView `json:"entry"`
	}
	err := c.do(ctx, http.MethodPost, "/api/waiting",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &resp)
	return resp.Entry, err
}

// WaitingList fetches the public (phone-masked) waiting list.
func (c *Client) WaitingList(ctx context.Context) ([]models.WaitingView, error) {
	var entries []models.WaitingView
	if err := c.getJSON(ctx, "/api/waiting", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AdminWaitingList fetches the full waiting list including phone numbers.
func (c *Client) AdminWaitingList(ctx context.Context) ([]models.WaitingView, error) {
	var entries []models.WaitingView
	if err := c.getJSON(ctx, "/api/admin/waiting", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteWaiting removes the caller's own entry; the phone number acts as a
// possession check and must match exactly.
func (c *Client) DeleteWaiting(ctx context.Context, id uint, phone string) error {
	body, err := json.Marshal(map[string]string{"phone": phone})
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/waiting/%d", id),
		"application/json", bytes.NewReader(body), nil)
}

// AdminDeleteWaiting removes an entry without a phone check. Completing a
// party and deleting it are the same operation.
func (c *Client) AdminDeleteWaiting(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/waiting/%d", id), "", nil, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
