// Package extraction calls the external vision-model service that turns
// uploaded chord sheet images into candidate chart records. The service is
// an external collaborator: its only contract with the rest of the system
// is that the records it returns feed the batch chart creation operation.
package extraction

//go:generate mockgen -source=client.go -destination=../mocks/extraction/mock_client.go

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/fretlog/fretlog/internal/config"
)

// File is one uploaded chord sheet page.
type File struct {
	Name      string
	MediaType string
	Data      []byte
}

// Client extracts candidate chart records from uploaded files. Records come
// back in the flattened editor shape, ready for batch creation.
type Client interface {
	ExtractCharts(ctx context.Context, files []File) ([]map[string]any, error)
}

// HTTPClient implements Client against a vision-model messages API.
type HTTPClient struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates an extraction client from configuration.
func NewHTTPClient(cfg config.ExtractionConfig) *HTTPClient {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("x-api-key", cfg.APIKey)
	return &HTTPClient{
		httpClient:       client,
		model:            cfg.Model,
		maxRetryAttempts: uint(cfg.RetryAttempts),
	}
}

// Close releases the underlying HTTP client.
func (c *HTTPClient) Close() error {
	return c.httpClient.Close()
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

const extractPrompt = `Extract every chord diagram from the attached images. ` +
	`Return ONLY a JSON array; one object per chord with keys: title, fingers ` +
	`(array of [string, fret] pairs, fret > 0 only), barres, tuning, capo, ` +
	`startingFret, numFrets, numStrings, openStrings, mutedStrings, ` +
	`sectionLabel. Preserve the reading order of the sheet.`

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// ExtractCharts sends the files to the vision model and decodes the
// returned chart records.
func (c *HTTPClient) ExtractCharts(ctx context.Context, files []File) ([]map[string]any, error) {
	var records []map[string]any
	if err := retry.Do(
		func() error {
			result, err := c.extract(ctx, files)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			records = result
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, cfg *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, cfg)
		}),
	); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) extract(ctx context.Context, files []File) ([]map[string]any, error) {
	content := make([]contentBlock, 0, len(files)+1)
	for _, f := range files {
		content = append(content, contentBlock{
			Type: "image",
			Source: &imageSource{
				Type:      "base64",
				MediaType: f.MediaType,
				Data:      base64.StdEncoding.EncodeToString(f.Data),
			},
		})
	}
	content = append(content, contentBlock{Type: "text", Text: extractPrompt})

	var response messagesResponse
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(messagesRequest{
			Model:     c.model,
			MaxTokens: 4096,
			Messages:  []message{{Role: "user", Content: content}},
		}).
		SetResult(&response).
		Post("/v1/messages")
	if err != nil {
		return nil, fmt.Errorf("post messages: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("post messages: response error %d: %s", res.StatusCode(), res.String())
	}

	var text string
	for _, block := range response.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	text = strings.TrimSpace(text)
	// Models sometimes wrap the array in a code fence despite instructions.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var records []map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &records); err != nil {
		return nil, fmt.Errorf("json.Unmarshal extraction result: %w", err)
	}
	return records, nil
}
