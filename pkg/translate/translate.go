package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultEndpoint = "https://translate.googleapis.com/translate_a/single"

var errMalformedResponse = errors.New("malformed translation response")

// Translator detects the language of a text and translates it. The
// handler depends on this interface so tests can swap in a fake.
type Translator interface {
	Detect(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// GoogleTranslator calls the public Google translate endpoint. Endpoint
// is overridable for tests.
type GoogleTranslator struct {
	Endpoint string
	Client   *http.Client
}

func NewGoogleTranslator() *GoogleTranslator {
	return &GoogleTranslator{
		Endpoint: defaultEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Detect returns the ISO 639-1 code of the text's language, e.g. "en".
func (g *GoogleTranslator) Detect(ctx context.Context, text string) (string, error) {
	_, detected, err := g.request(ctx, text, "auto", "en")
	return detected, err
}

// Translate converts text from the source language to the target
// language, both given as ISO 639-1 codes.
func (g *GoogleTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	translated, _, err := g.request(ctx, text, source, target)
	return translated, err
}

// request performs one endpoint call. The response is a positional JSON
// array: element 0 holds the translated segments, element 2 the
// detected source language.
func (g *GoogleTranslator) request(ctx context.Context, text, source, target string) (string, string, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", source)
	query.Set("tl", target)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.Endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to build translation request: %w", err)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("translation endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read translation response: %w", err)
	}
	return parseResponse(body)
}

func parseResponse(body []byte) (string, string, error) {
	var payload []interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", "", fmt.Errorf("failed to decode translation response: %w", err)
	}
	if len(payload) < 3 {
		return "", "", errMalformedResponse
	}

	detected, _ := payload[2].(string)

	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", "", errMalformedResponse
	}
	var b strings.Builder
	for _, segment := range segments {
		parts, ok := segment.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if piece, ok := parts[0].(string); ok {
			b.WriteString(piece)
		}
	}
	return b.String(), detected, nil
}
