// Package inference talks to the vision inference sidecar that hosts the
// face detection, OCR and content-richness models.
package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/vidqa/internal/analysis"
	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
)

const (
	facesPath    = "/v1/faces"
	ocrPath      = "/v1/ocr"
	richnessPath = "/v1/richness"

	// detection class the face model reports for people
	personClass = 0
	jpegQuality = 85
)

var watermarkKeywords = []string{"watermark", "logo", "copyright", "©", "®", "™", "水印", "标志", "版权"}

type Client struct {
	baseURL    string
	maxWidth   uint
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient returns a client for the sidecar at baseURL. Frames wider than
// maxWidth are downscaled before upload; 0 sends them unchanged.
func NewClient(baseURL string, timeout time.Duration, maxWidth uint) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxWidth: maxWidth,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.WithComponent("inference"),
	}
}

type imageRequest struct {
	Image string `json:"image"`
}

type detection struct {
	Class      int     `json:"class"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type facesResponse struct {
	Detections []detection `json:"detections"`
}

type ocrText struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

type ocrResponse struct {
	Texts []ocrText `json:"texts"`
}

// richnessResponse carries the mean similarity logits of the frame against
// the "rich content" and "poor content" prompt sets.
type richnessResponse struct {
	Rich float64 `json:"rich"`
	Poor float64 `json:"poor"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) DetectFaces(ctx context.Context, frame image.Image) (int, error) {
	var resp facesResponse
	if err := c.post(ctx, facesPath, frame, &resp); err != nil {
		return 0, domain.NewProviderError(domain.CapabilityFace, err)
	}

	count := 0
	for _, d := range resp.Detections {
		if d.Class == personClass {
			count++
		}
	}
	return count, nil
}

func (c *Client) DetectWatermark(ctx context.Context, frame image.Image) (bool, *string, error) {
	var resp ocrResponse
	if err := c.post(ctx, ocrPath, frame, &resp); err != nil {
		return false, nil, domain.NewProviderError(domain.CapabilityWatermark, err)
	}

	texts := make([]string, 0, len(resp.Texts))
	for _, t := range resp.Texts {
		if s := strings.TrimSpace(t.Text); s != "" {
			texts = append(texts, s)
		}
	}
	detected, text := ClassifyText(texts)
	return detected, text, nil
}

// ClassifyText applies the watermark rule to OCR output: any text counts as
// a detection, but the text is only reported when it looks like a
// watermark.
func ClassifyText(texts []string) (bool, *string) {
	if len(texts) == 0 {
		return false, nil
	}

	combined := strings.Join(texts, " ")
	lower := strings.ToLower(combined)
	for _, kw := range watermarkKeywords {
		if strings.Contains(lower, kw) {
			return true, &combined
		}
	}
	return true, nil
}

func (c *Client) ScoreContent(ctx context.Context, frame image.Image) (float64, error) {
	var resp richnessResponse
	if err := c.post(ctx, richnessPath, frame, &resp); err != nil {
		return 0, domain.NewProviderError(domain.CapabilityContent, err)
	}
	return RichnessFromLogits(resp.Rich, resp.Poor), nil
}

// RichnessFromLogits maps the rich/poor logit gap, expected in [-2, 2], onto
// 0-100.
func RichnessFromLogits(rich, poor float64) float64 {
	score := (rich - poor + 2) * 25
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func (c *Client) post(ctx context.Context, path string, frame image.Image, out any) error {
	var img bytes.Buffer
	if err := jpeg.Encode(&img, analysis.Bound(frame, c.maxWidth), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}

	body, err := json.Marshal(imageRequest{Image: base64.StdEncoding.EncodeToString(img.Bytes())})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	c.logger.Debug().Str("path", path).Int("status", resp.StatusCode).Dur("took", time.Since(start)).Msg("inference call")

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

var (
	_ port.FaceDetector      = (*Client)(nil)
	_ port.WatermarkDetector = (*Client)(nil)
	_ port.ContentScorer     = (*Client)(nil)
)
