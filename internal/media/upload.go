// Package media wraps the three external media services the contest uses:
// object-storage upload, generative-text theme creation and audio
// generation. All three are opaque HTTP calls with no retry or backoff;
// failures surface straight to the caller.
package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Uploader pushes generated audio to a Cloudinary-style upload endpoint
// and returns the public URL.
type Uploader struct {
	client    *http.Client
	uploadURL string
	preset    string
}

// NewUploader creates an uploader for the given endpoint and unsigned
// upload preset.
func NewUploader(uploadURL, preset string) *Uploader {
	return &Uploader{
		client:    &http.Client{Timeout: 60 * time.Second},
		uploadURL: uploadURL,
		preset:    preset,
	}
}

// Upload sends the audio as multipart form data and returns the hosted
// file's public URL.
func (u *Uploader) Upload(audio io.Reader, filename string) (string, error) {
	if u.uploadURL == "" || u.preset == "" {
		return "", fmt.Errorf("missing upload endpoint configuration")
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("copying audio: %w", err)
	}
	if err := form.WriteField("upload_preset", u.preset); err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}

	resp, err := u.client.Post(u.uploadURL, form.FormDataContentType(), &body)
	if err != nil {
		return "", fmt.Errorf("uploading audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload failed: %s", resp.Status)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("parsing upload response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}
	return result.SecureURL, nil
}
