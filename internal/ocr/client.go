package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/common"
	"github.com/qiwen-ops/passportd/internal/retry"
)

// Client posts images to the recognition service as multipart uploads.
// Transient failures (connection errors, non-200 responses, malformed
// JSON bodies) are retried per the policy; exhaustion surfaces as
// common.ErrServiceUnavailable.
type Client struct {
	url        string
	httpClient *http.Client
	policy     retry.Policy
	files      *async.IOPool
	logger     *slog.Logger
}

// NewClient returns a client for the service at url. File reads are
// offloaded to files so callers' scheduling never blocks on disk I/O.
func NewClient(url string, timeout time.Duration, policy retry.Policy, files *async.IOPool, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		policy:     policy,
		files:      files,
		logger:     logger,
	}
}

// Recognize uploads the image at imagePath and returns the raw JSON
// response body. The body is validated as JSON but not shape-decoded;
// callers pass it to Texts.
func (c *Client) Recognize(ctx context.Context, imagePath string) ([]byte, error) {
	reqID := common.TaskIDFromContext(ctx)
	if reqID == "" {
		reqID = uuid.New().String()
	}
	start := time.Now()
	attempt := 0

	var raw []byte
	err := c.policy.Do(ctx, func(ctx context.Context) error {
		attempt++
		body, err := c.attempt(ctx, reqID, imagePath)
		if err != nil {
			c.logger.Warn("ocr.attempt_failed",
				"req_id", reqID,
				"attempt", attempt,
				"image_path", imagePath,
				"error", err,
			)
			return err
		}
		raw = body
		return nil
	})
	if err != nil {
		c.logger.Error("ocr.exhausted",
			"req_id", reqID,
			"attempts", attempt,
			"image_path", imagePath,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", common.ErrServiceUnavailable, err)
	}

	c.logger.Info("ocr.response",
		"req_id", reqID,
		"attempts", attempt,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return raw, nil
}

func (c *Client) attempt(ctx context.Context, reqID, imagePath string) ([]byte, error) {
	var data []byte
	err := c.files.Do(ctx, func() error {
		var readErr error
		data, readErr = os.ReadFile(imagePath)
		return readErr
	})
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	body, contentType, err := encodeMultipart(data)
	if err != nil {
		return nil, fmt.Errorf("encode multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("ocr.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 status: %d", resp.StatusCode)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("malformed json response (%d bytes)", len(raw))
	}
	return raw, nil
}

// Healthy probes the service's health endpoint, derived from the OCR URL.
func (c *Client) Healthy(ctx context.Context) bool {
	url := strings.Replace(c.url, "/ocr", "/health", 1)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// encodeMultipart wraps image bytes in a single-part form upload under
// the field name the service expects.
func encodeMultipart(data []byte) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="image.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
