package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestTranslator(t *testing.T, response string) (*GoogleTranslator, *http.Request) {
	t.Helper()
	var recorded http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded = *r
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	return &GoogleTranslator{
		Endpoint: server.URL,
		Client:   server.Client(),
	}, &recorded
}

func TestTranslateJoinsSegments(t *testing.T) {
	translator, recorded := newTestTranslator(t,
		`[[["مرحبا ","Hello ",null,null,10],["بالعالم","world",null,null,10]],null,"en"]`)

	result, err := translator.Translate(context.Background(), "Hello world", "en", "ar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "مرحبا بالعالم" {
		t.Errorf("expected joined segments, got %q", result)
	}

	query := recorded.URL.Query()
	if query.Get("sl") != "en" || query.Get("tl") != "ar" {
		t.Errorf("unexpected language pair: sl=%q tl=%q", query.Get("sl"), query.Get("tl"))
	}
	if query.Get("q") != "Hello world" {
		t.Errorf("unexpected query text: %q", query.Get("q"))
	}
}

func TestDetectReturnsSourceLanguage(t *testing.T) {
	translator, recorded := newTestTranslator(t,
		`[[["Hello","مرحبا",null,null,10]],null,"ar"]`)

	detected, err := translator.Detect(context.Background(), "مرحبا")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detected != "ar" {
		t.Errorf("expected detected language ar, got %q", detected)
	}
	if recorded.URL.Query().Get("sl") != "auto" {
		t.Errorf("detection must use automatic source, got %q", recorded.URL.Query().Get("sl"))
	}
}

func TestTranslateRejectsMalformedResponse(t *testing.T) {
	for _, response := range []string{`not json`, `[]`, `["only","two"]`} {
		translator, _ := newTestTranslator(t, response)
		if _, err := translator.Translate(context.Background(), "Hello", "en", "ar"); err == nil {
			t.Errorf("expected an error for response %q", response)
		}
	}
}

func TestTranslateReportsHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	translator := &GoogleTranslator{Endpoint: server.URL, Client: server.Client()}
	if _, err := translator.Translate(context.Background(), "Hello", "en", "ar"); err == nil {
		t.Error("expected an error for a non-200 status")
	}
}
