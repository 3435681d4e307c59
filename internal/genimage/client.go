package genimage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

// ErrContentPolicy is returned when the provider answers successfully but
// produces zero images (safety-filter rejection). Callers must surface it as
// its own user-reportable failure, not a generic error.
var ErrContentPolicy = errors.New("no images generated (blocked by safety filter)")

var ErrNotConfigured = errors.New("generative image API key is not configured")

type Image struct {
	MimeType string
	Data     string // base64 payload
}

type Request struct {
	ImageData     string // base64 source photo
	ImageMime     string
	ReferenceData string // optional base64 style-reference image
	Prompt        string
	AspectRatio   string // "9:16" or "16:9"
	Count         int
}

// Generator produces stylized images from a source photo.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]Image, error)
}

type Client struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

func NewClient(apiURL, apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

// --- wire types ---

type generateContentRequest struct {
	Contents         []content       `json:"contents"`
	GenerationConfig *generationConf `json:"generationConfig,omitempty"`
	SafetySettings   []safetySetting `json:"safetySettings,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConf struct {
	Seed        int          `json:"seed,omitempty"`
	ImageConfig *imageConfig `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Relaxed thresholds so creative styles are not over-blocked.
var relaxedSafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_ONLY_HIGH"},
}

// Generate requests req.Count images, each with an independent random seed.
// Responses that carry no inline image are skipped; an entirely empty batch
// is a content-policy rejection.
func (c *Client) Generate(ctx context.Context, req Request) ([]Image, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}

	images := make([]Image, 0, count)
	var lastErr error
	for i := 0; i < count; i++ {
		img, err := c.generateOne(ctx, req, rand.Intn(2147483647))
		if err != nil {
			lastErr = err
			continue
		}
		if img != nil {
			images = append(images, *img)
		}
	}

	if len(images) == 0 {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, ErrContentPolicy
	}
	return images, nil
}

func (c *Client) generateOne(ctx context.Context, req Request, seed int) (*Image, error) {
	parts := []part{
		{InlineData: &inlineData{MimeType: req.ImageMime, Data: req.ImageData}},
	}
	if req.ReferenceData != "" {
		parts = append(parts, part{InlineData: &inlineData{MimeType: "image/png", Data: req.ReferenceData}})
	}
	parts = append(parts, part{Text: req.Prompt})

	body := generateContentRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: &generationConf{
			Seed: seed,
			ImageConfig: &imageConfig{
				AspectRatio: req.AspectRatio,
				ImageSize:   "1K",
			},
		},
		SafetySettings: relaxedSafetySettings,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("image API error: status %d", resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse image API response: %w", err)
	}

	for _, cand := range parsed.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return &Image{MimeType: p.InlineData.MimeType, Data: p.InlineData.Data}, nil
			}
		}
	}
	return nil, nil
}

// DataURL renders the image as an inline data URL for direct client display.
func (i Image) DataURL() string {
	mime := i.MimeType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + i.Data
}
