package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultMusicEndpoint = "https://api-inference.huggingface.co/models/facebook/musicgen-small"

// MusicGenerator turns a text prompt into audio bytes via a hosted
// inference endpoint. Generation can take a while; the timeout is sized
// accordingly.
type MusicGenerator struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// NewMusicGenerator creates a generator using the default endpoint.
func NewMusicGenerator(apiKey string) *MusicGenerator {
	return &MusicGenerator{
		client:   &http.Client{Timeout: 120 * time.Second},
		endpoint: defaultMusicEndpoint,
		apiKey:   apiKey,
	}
}

// NewMusicGeneratorWithEndpoint overrides the endpoint (for tests).
func NewMusicGeneratorWithEndpoint(apiKey, endpoint string) *MusicGenerator {
	g := NewMusicGenerator(apiKey)
	g.endpoint = endpoint
	return g
}

// Generate returns the raw audio for the given prompt.
func (g *MusicGenerator) Generate(prompt string) ([]byte, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("missing audio-generation API key")
	}

	reqBody, err := json.Marshal(map[string]string{"inputs": prompt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, g.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generating music: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("music generation failed: %s", resp.Status)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("music generation returned no audio")
	}
	return audio, nil
}
