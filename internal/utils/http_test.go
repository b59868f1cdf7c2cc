package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"reference": "John 3:16"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "Verse not found"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error for nil data, got: %v", err)
	}
	if w.Body.String() != "null" {
		t.Errorf("expected body 'null', got '%s'", w.Body.String())
	}
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSONError(w, "Missing reference parameter", http.StatusBadRequest)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if w.Body.String() != `{"error":"Missing reference parameter"}` {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := GetTraceIDFromContext(r.Context()); ok {
		t.Error("expected no trace ID in a fresh context")
	}

	ctx := ContextWithTraceID(r.Context(), "0199-abc")
	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok {
		t.Fatal("expected trace ID in context")
	}
	if traceID != "0199-abc" {
		t.Errorf("expected trace ID '0199-abc', got '%s'", traceID)
	}
}
