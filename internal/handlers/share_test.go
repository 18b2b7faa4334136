package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harshjindal13/brainly-fullStack/internal/models"
	"github.com/harshjindal13/brainly-fullStack/internal/service"
)

func TestShareHandlers_ToggleSharing(t *testing.T) {
	auth := &mockAuth{parseID: 5}
	sharing := &mockSharing{setHash: "a1B2c3D4e5"}
	s := &service.Service{Authorization: auth, Sharing: sharing}
	r := newTestRouter(s)

	// toggling requires auth → 403 without header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/brain/share", bytes.NewBufferString(`{"share":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without auth, got %d", w.Code)
	}

	// enable → 200 with the hash
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/brain/share", bytes.NewBufferString(`{"share":true}`))
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("enable status=%d, body=%s", w.Code, w.Body.String())
	}
	if !sharing.lastSetEnabled || sharing.lastSetUserID != 5 {
		t.Fatalf("SetSharing got (%d, %v)", sharing.lastSetUserID, sharing.lastSetEnabled)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["hash"] != "a1B2c3D4e5" {
		t.Fatalf("expected hash in body, got %v", m)
	}

	// disable → 200 with a confirmation message, no hash
	sharing.setHash = ""
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/brain/share", bytes.NewBufferString(`{"share":false}`))
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("disable status=%d, body=%s", w.Code, w.Body.String())
	}
	if sharing.lastSetEnabled {
		t.Fatalf("expected SetSharing(.., false)")
	}
	m = nil
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["message"] != msgLinkRemoved {
		t.Fatalf("expected message %q, got %v", msgLinkRemoved, m)
	}
	if _, ok := m["hash"]; ok {
		t.Fatalf("disable must not return a hash: %v", m)
	}

	// missing share field → 400: "share" is required even when false
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/brain/share", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing share field, got %d", w.Code)
	}
	if sharing.setCalls != 2 {
		t.Fatalf("SetSharing calls=%d, want 2", sharing.setCalls)
	}
}

func TestShareHandlers_PublicResolve(t *testing.T) {
	sharing := &mockSharing{
		resolveResp: service.SharedBrain{
			Username: "diana",
			Content: []models.Content{
				{ID: "c1", Type: models.ContentTypeYouTube},
			},
		},
	}
	// Authorization deliberately left nil: the route must never consult it.
	s := &service.Service{Sharing: sharing}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/brain/a1B2c3D4e5", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("resolve status=%d, body=%s", w.Code, w.Body.String())
	}
	if sharing.lastResolveHash != "a1B2c3D4e5" {
		t.Fatalf("Resolve got %q", sharing.lastResolveHash)
	}
	var brain service.SharedBrain
	if err := json.Unmarshal(w.Body.Bytes(), &brain); err != nil {
		t.Fatalf("unmarshal brain: %v", err)
	}
	if brain.Username != "diana" || len(brain.Content) != 1 {
		t.Fatalf("unexpected brain: %+v", brain)
	}
}

func TestShareHandlers_UnknownHashAnswers411(t *testing.T) {
	sharing := &mockSharing{resolveErr: service.ErrShareLinkNotFound}
	s := &service.Service{Sharing: sharing}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/brain/nosuchhash", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusLengthRequired {
		t.Fatalf("expected 411 for unknown hash, got %d (body=%s)", w.Code, w.Body.String())
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["message"] != "Sorry incorrect input" {
		t.Fatalf("unexpected message %q", m["message"])
	}
}
