// Package sheets talks to the spreadsheet-backed Apps Script endpoint
// the assessments are persisted in. It is a boundary adapter: whatever
// shape the sheet returns is normalized into the canonical stored-record
// form before the rest of the system sees it.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/vineland/vsms-api/internal/domain/archive"
)

// Config controls the outbound client.
type Config struct {
	URL string
	// FireAndForget accepts a submit without a readable acknowledgment.
	// The endpoint's legacy transport mode cannot always return a
	// response body; this degraded mode is a fallback, not the default.
	FireAndForget bool
	Timeout       time.Duration
}

// Client implements the assessment store against the remote sheet.
type Client struct {
	http   *resty.Client
	cfg    Config
	logger zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		http: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("Content-Type", "application/json"),
		cfg:    cfg,
		logger: logger,
	}
}

// Submit posts one record to the sheet. Any transport error or
// non-success status is a failure; in fire-and-forget mode a completed
// request counts as success regardless of status.
func (c *Client) Submit(ctx context.Context, rec archive.StoredRecord) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(rec).
		Post(c.cfg.URL)
	if err != nil {
		return fmt.Errorf("post to sheet: %w", err)
	}
	if c.cfg.FireAndForget {
		c.logger.Warn().
			Str("assessment_id", rec.AssessmentID).
			Msg("fire-and-forget submit, acknowledgment not checked")
		return nil
	}
	if resp.IsError() {
		return fmt.Errorf("sheet endpoint returned %s", resp.Status())
	}
	return nil
}

// FetchAll retrieves every persisted record. A non-array or otherwise
// malformed payload is treated as an empty archive, not an error.
func (c *Client) FetchAll(ctx context.Context) ([]archive.StoredRecord, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch from sheet: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("sheet endpoint returned %s", resp.Status())
	}

	var raw []map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		c.logger.Warn().Err(err).Msg("non-array sheet payload, treating archive as empty")
		return nil, nil
	}

	records := make([]archive.StoredRecord, 0, len(raw))
	for _, row := range raw {
		records = append(records, Normalize(row))
	}
	return records, nil
}
