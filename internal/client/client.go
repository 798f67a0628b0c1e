package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"medicare-booking/internal/delivery/dto"
	"medicare-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// Config configures the patient-side API client.
type Config struct {
	BaseURL string
	// StatePath is the file the client persists its session and
	// appointment list to.
	StatePath string

	HTTPClient *http.Client
	Now        func() time.Time
}

// Client talks to the booking API and keeps a durable local copy of the
// patient's appointments. Booking is optimistic: when the server cannot be
// reached or rejects the request at the transport level, the submission is
// still reflected locally as a pending record. Local and server copies are
// never reconciled retroactively.
type Client struct {
	baseURL string
	http    *http.Client
	store   *Storage
	now     func() time.Time
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("client: base url is required")
	}
	if cfg.StatePath == "" {
		return nil, errors.New("client: state path is required")
	}

	store, err := NewStorage(cfg.StatePath)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    httpClient,
		store:   store,
		now:     now,
	}, nil
}

// Session returns the persisted authenticated flag and display name.
func (c *Client) Session() (bool, string) {
	return c.store.Session()
}

// Appointments returns the local view of the appointment list.
func (c *Client) Appointments() []LocalAppointment {
	return c.store.Appointments()
}

// Login authenticates against the API and persists the session on success.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	body, err := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, "เข้าสู่ระบบไม่สำเร็จ")
	}

	var result dto.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if err := c.store.SetSession(true, result.User.Name); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout clears all locally held session and appointment state.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// BookAppointment submits a booking. On success the server's record is
// prepended locally as server-confirmed. On any transport failure or
// non-success response a locally synthesized pending record is prepended
// instead, so the submission is always visible to the patient.
func (c *Client) BookAppointment(ctx context.Context, payload entity.BookingPayload) (LocalAppointment, error) {
	serverAppt, err := c.postBooking(ctx, payload)
	if err == nil {
		local := LocalAppointment{Appointment: *serverAppt, Sync: SyncServerConfirmed}
		if err := c.store.Prepend(local); err != nil {
			return LocalAppointment{}, err
		}
		return local, nil
	}

	local := LocalAppointment{
		Appointment: entity.Appointment{
			ID:             uuid.NewString(),
			BookingPayload: payload,
			Status:         entity.StatusPending,
			CreatedAt:      c.now().UTC(),
		},
		Sync: SyncLocalOnly,
	}
	if err := c.store.Prepend(local); err != nil {
		return LocalAppointment{}, err
	}
	return local, nil
}

func (c *Client) postBooking(ctx context.Context, payload entity.BookingPayload) (*entity.Appointment, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/appointments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp, "ไม่สามารถจองได้")
	}

	var appt entity.Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// FetchAppointments replaces the local list with the server's view. A
// failed fetch leaves the local list untouched. Local-only records not
// known to the server are dropped by a successful fetch.
func (c *Client) FetchAppointments(ctx context.Context, q string, limit int) error {
	params := url.Values{}
	if q != "" {
		params.Set("q", q)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	u := c.baseURL + "/appointments"
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp, "ไม่สามารถดึงรายการนัดได้")
	}

	var list struct {
		Items []entity.Appointment `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return err
	}

	local := make([]LocalAppointment, len(list.Items))
	for i, item := range list.Items {
		local[i] = LocalAppointment{Appointment: item, Sync: SyncServerConfirmed}
	}
	return c.store.Replace(local)
}

// CancelAppointment deletes the appointment remotely. The local copy is
// removed whatever the remote outcome; a remote failure is still reported.
func (c *Client) CancelAppointment(ctx context.Context, id string) error {
	remoteErr := c.deleteRemote(ctx, id)
	if err := c.store.RemoveByID(id); err != nil {
		return err
	}
	return remoteErr
}

func (c *Client) deleteRemote(ctx context.Context, id string) error {
	u := c.baseURL + "/appointments?id=" + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp, "ลบนัดหมายไม่สำเร็จ")
	}
	return nil
}

// apiError extracts the server's {"error": ...} message, falling back to
// the given message and status code.
func apiError(resp *http.Response, fallback string) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	return fmt.Errorf("%s (status %d)", fallback, resp.StatusCode)
}
