package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultThemeEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// themePromptTemplate shapes the user's description into a short theme
// request. The model is asked for one or two laymen's words only.
const themePromptTemplate = `"Generate a creative and evocative one to two word theme for the following description: '%s'.
    The theme should evoke strong emotions, imagery, or moods, and align with the vibe of music creation.
    Use laymen's words. strictly return only one theme."`

// ThemeGenerator asks a generative-text endpoint for a short contest theme.
type ThemeGenerator struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// NewThemeGenerator creates a generator using the default endpoint.
func NewThemeGenerator(apiKey string) *ThemeGenerator {
	return &ThemeGenerator{
		client:   &http.Client{Timeout: 30 * time.Second},
		endpoint: defaultThemeEndpoint,
		apiKey:   apiKey,
	}
}

// NewThemeGeneratorWithEndpoint overrides the endpoint (for tests).
func NewThemeGeneratorWithEndpoint(apiKey, endpoint string) *ThemeGenerator {
	g := NewThemeGenerator(apiKey)
	g.endpoint = endpoint
	return g
}

// Generate returns a short theme string for the given description.
func (g *ThemeGenerator) Generate(prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("missing generative-text API key")
	}

	reqBody, err := json.Marshal(map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{
				{"text": fmt.Sprintf(themePromptTemplate, prompt)},
			}},
		},
	})
	if err != nil {
		return "", err
	}

	url := g.endpoint + "?key=" + g.apiKey
	resp, err := g.client.Post(url, "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("generating theme: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("theme generation failed: %s", resp.Status)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("parsing theme response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("theme response contained no candidates")
	}
	return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
}
