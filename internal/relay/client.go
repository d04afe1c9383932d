// Package relay submits appointment requests to the third-party form-relay
// service. The service is an opaque black box: one multipart POST per
// submission, a JSON body with a success flag back. There is no retry; a
// failed submission leaves the form populated for the visitor to resubmit.
package relay

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"clinicaacosta.org/clinic-web/internal/contact"
)

const defaultTimeout = 8 * time.Second

// ErrRemote carries the failure reason supplied by the relay service, when
// it provided one.
type ErrRemote struct {
	Status int
	Reason string
}

func (e *ErrRemote) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("relay: status %d: %s", e.Status, e.Reason)
	}
	return fmt.Sprintf("relay: status %d", e.Status)
}

// Client posts submissions to the configured relay endpoint. When endpoint
// is empty the client accepts submissions without a network call, which
// keeps local development working without a live access key.
type Client struct {
	endpoint  string
	accessKey string
	http      *http.Client
}

// NewClient constructs a relay client. The access key is injected from
// configuration, never inlined.
func NewClient(endpoint, accessKey string) *Client {
	return &Client{
		endpoint:  strings.TrimSpace(endpoint),
		accessKey: strings.TrimSpace(accessKey),
		http:      &http.Client{Timeout: defaultTimeout},
	}
}

// Submit issues exactly one POST for the given submission. The caller is
// expected to have validated it already; Submit still refuses a populated
// honeypot so a bot can never reach the network even through a buggy
// handler.
func (c *Client) Submit(ctx context.Context, s contact.Submission) error {
	if strings.TrimSpace(s.Honeypot) != "" {
		return errors.New("relay: submission rejected")
	}
	if c.endpoint == "" {
		return nil
	}

	var body strings.Builder
	w := multipart.NewWriter(&body)
	fields := map[string]string{
		"access_key":       c.accessKey,
		"patient_name":     s.PatientName,
		"email":            s.Email,
		"phone":            s.Phone,
		"reason":           string(s.Reason),
		"appointment_type": string(s.AppointmentType),
		"preferred_doctor": s.PreferredDoctor,
		"message":          s.Message,
		"botcheck":         "",
	}
	for name, val := range fields {
		if err := w.WriteField(name, val); err != nil {
			return fmt.Errorf("relay: encode %s: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("relay: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body.String()))
	if err != nil {
		return fmt.Errorf("relay: build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("relay: %w", err)
	}
	defer resp.Body.Close()

	payload := decodeResponse(resp)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ErrRemote{Status: resp.StatusCode, Reason: payload.Message}
	}
	if !payload.Success {
		return &ErrRemote{Status: resp.StatusCode, Reason: payload.Message}
	}
	return nil
}
