package relay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"clinicaacosta.org/clinic-web/internal/contact"
)

func sample() contact.Submission {
	return contact.Submission{
		PatientName:     "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "4075551234",
		Reason:          contact.ReasonWell,
		AppointmentType: contact.TypeNew,
	}
}

func TestSubmitPostsMultipartOnce(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("access_key"); got != "test-key" {
			t.Errorf("access_key = %q", got)
		}
		if got := r.FormValue("patient_name"); got != "Jane Doe" {
			t.Errorf("patient_name = %q", got)
		}
		if got := r.FormValue("reason"); got != "well-visit" {
			t.Errorf("reason = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	if err := c.Submit(context.Background(), sample()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected exactly one POST, got %d", calls.Load())
	}
}

func TestSubmitSurfacesRemoteReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"message":"invalid access key"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key")
	err := c.Submit(context.Background(), sample())
	var remote *ErrRemote
	if !errors.As(err, &remote) {
		t.Fatalf("expected ErrRemote, got %v", err)
	}
	if remote.Reason != "invalid access key" {
		t.Fatalf("reason = %q", remote.Reason)
	}
}

func TestSubmitRejectsSuccessFalseOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"quota exceeded"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	err := c.Submit(context.Background(), sample())
	var remote *ErrRemote
	if !errors.As(err, &remote) {
		t.Fatalf("expected ErrRemote, got %v", err)
	}
	if remote.Reason != "quota exceeded" {
		t.Fatalf("reason = %q", remote.Reason)
	}
}

func TestSubmitHoneypotNeverReachesNetwork(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	s := sample()
	s.Honeypot = "link spam"
	if err := c.Submit(context.Background(), s); err == nil {
		t.Fatal("expected rejection")
	}
	if calls.Load() != 0 {
		t.Fatalf("honeypot submission reached the network %d times", calls.Load())
	}
}

func TestSubmitEmptyEndpointIsNoop(t *testing.T) {
	c := NewClient("", "")
	if err := c.Submit(context.Background(), sample()); err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}
}
