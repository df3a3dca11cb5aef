// Package sheets is the spreadsheet backend: a client for the legacy
// spreadsheet gateway, which exposes per-entity CRUD keyed by external
// identifiers and already speaks the wire format natively. The gateway is
// an opaque, eventually consistent store; the client retries transport
// failures but never reconciles data.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/fretlog/fretlog/internal/chart"
	"github.com/fretlog/fretlog/internal/config"
	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/datalayer"
	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/wire"
)

// Client talks to the spreadsheet gateway. It implements the same backend
// surface as the relational store, with no identifier translation: the
// spreadsheet world knows only external identifiers.
type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

var _ datalayer.Backend = (*Client)(nil)

// NewClient creates a gateway client from configuration.
func NewClient(cfg config.SheetsConfig) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/") + "/spreadsheets/" + cfg.SpreadsheetID)
	client.SetHeader("Content-Type", "application/json")
	if cfg.APIToken != "" {
		client.SetHeader("Authorization", "Bearer "+cfg.APIToken)
	}
	return &Client{
		httpClient:       client,
		maxRetryAttempts: uint(cfg.RetryAttempts),
	}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// 5xx and rate limiting are worth retrying against the gateway.
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// call performs one gateway request with retries, decoding a JSON response
// into out when out is non-nil. A 404 maps to database.ErrNotFound so
// callers see the same error taxonomy as the relational backend.
func (c *Client) call(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	return retry.Do(
		func() error {
			req := c.httpClient.R().SetContext(ctx)
			if query != nil {
				req.SetQueryParams(query)
			}
			if body != nil {
				req.SetBody(body)
			}
			if out != nil {
				req.SetResult(out)
			}
			res, err := req.Execute(method, path)
			if err != nil {
				return fmt.Errorf("%s %s: %w", method, path, err)
			}
			if res.StatusCode() == http.StatusNotFound {
				return retry.Unrecoverable(fmt.Errorf("%s %s: %w", method, path, database.ErrNotFound))
			}
			if res.IsError() {
				err := fmt.Errorf("%s %s: response error %d: %s", method, path, res.StatusCode(), res.String())
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, cfg *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, cfg)
		}),
	)
}

// Available reports whether the gateway answers its health endpoint.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := c.httpClient.R().SetContext(ctx).Get("/health")
	return err == nil && res.IsSuccess()
}

func (c *Client) Items(ctx context.Context) ([]wire.Record, error) {
	var records []wire.Record
	if err := c.call(ctx, http.MethodGet, "/items", nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) ItemSummaries(ctx context.Context) ([]wire.Record, error) {
	var records []wire.Record
	if err := c.call(ctx, http.MethodGet, "/items/lightweight", nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) Item(ctx context.Context, ext id.External) (wire.Record, error) {
	var rec wire.Record
	if err := c.call(ctx, http.MethodGet, "/items/"+string(ext), nil, nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *Client) CreateItem(ctx context.Context, rec wire.Record) (wire.Record, error) {
	var created wire.Record
	if err := c.call(ctx, http.MethodPost, "/items", nil, rec, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateItem(ctx context.Context, ext id.External, rec wire.Record) (wire.Record, error) {
	var updated wire.Record
	if err := c.call(ctx, http.MethodPut, "/items/"+string(ext), nil, rec, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteItem(ctx context.Context, ext id.External) error {
	return c.call(ctx, http.MethodDelete, "/items/"+string(ext), nil, nil, nil)
}

func (c *Client) UpdateItemsOrder(ctx context.Context, recs []wire.Record) error {
	return c.call(ctx, http.MethodPut, "/items/order", nil, recs, nil)
}

func (c *Client) SearchItems(ctx context.Context, query string) ([]wire.Record, error) {
	var records []wire.Record
	if err := c.call(ctx, http.MethodGet, "/items/search", map[string]string{"q": query}, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) ItemsByTuning(ctx context.Context, tuning string) ([]wire.Record, error) {
	var records []wire.Record
	if err := c.call(ctx, http.MethodGet, "/items/tuning/"+tuning, nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) ItemNotes(ctx context.Context, ext id.External) (string, error) {
	var result struct {
		Notes string `json:"notes"`
	}
	if err := c.call(ctx, http.MethodGet, "/items/"+string(ext)+"/notes", nil, nil, &result); err != nil {
		return "", err
	}
	return result.Notes, nil
}

func (c *Client) SaveItemNotes(ctx context.Context, ext id.External, notes string) error {
	body := map[string]string{"notes": notes}
	return c.call(ctx, http.MethodPut, "/items/"+string(ext)+"/notes", nil, body, nil)
}

func (c *Client) ChartsForItem(ctx context.Context, ext id.External) ([]wire.Record, error) {
	var records []wire.Record
	if err := c.call(ctx, http.MethodGet, "/items/"+string(ext)+"/chord-charts", nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) ChartsForItems(ctx context.Context, exts []id.External) (map[id.External][]wire.Record, error) {
	result := make(map[id.External][]wire.Record, len(exts))
	for _, ext := range exts {
		records, err := c.ChartsForItem(ctx, ext)
		if err != nil {
			return nil, err
		}
		result[ext] = records
	}
	return result, nil
}

func (c *Client) CreateChart(ctx context.Context, ext id.External, rec map[string]any) (wire.Record, error) {
	records, err := c.BatchCreateCharts(ctx, ext, []map[string]any{rec}, nil)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("create chord chart for item %q: empty gateway response", ext)
	}
	return records[0], nil
}

func (c *Client) BatchCreateCharts(ctx context.Context, ext id.External, recs []map[string]any, insertAt *int) ([]wire.Record, error) {
	var query map[string]string
	if insertAt != nil {
		query = map[string]string{"insert_at": strconv.Itoa(*insertAt)}
	}
	var records []wire.Record
	if err := c.call(ctx, http.MethodPost, "/items/"+string(ext)+"/chord-charts/batch", query, recs, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) UpdateChart(ctx context.Context, chartID int64, rec wire.Record) (wire.Record, error) {
	var updated wire.Record
	path := "/chord-charts/" + strconv.FormatInt(chartID, 10)
	if err := c.call(ctx, http.MethodPut, path, nil, rec, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteChartFromItem(ctx context.Context, ext id.External, chartID int64) error {
	path := "/items/" + string(ext) + "/chord-charts/" + strconv.FormatInt(chartID, 10)
	return c.call(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) PurgeCharts(ctx context.Context, chartIDs []int64) (chart.BatchDeleteResult, error) {
	body := map[string][]int64{"ids": chartIDs}
	var result chart.BatchDeleteResult
	if err := c.call(ctx, http.MethodPost, "/chord-charts/batch-delete", nil, body, &result); err != nil {
		return chart.BatchDeleteResult{}, err
	}
	return result, nil
}

func (c *Client) UpdateChartsOrder(ctx context.Context, ext id.External, orderedIDs []int64) error {
	body := map[string][]int64{"ids": orderedIDs}
	return c.call(ctx, http.MethodPut, "/items/"+string(ext)+"/chord-charts/order", nil, body, nil)
}

func (c *Client) ChartSections(ctx context.Context, ext id.External) (map[string][]wire.Record, error) {
	var sections map[string][]wire.Record
	if err := c.call(ctx, http.MethodGet, "/items/"+string(ext)+"/chord-charts/sections", nil, nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (c *Client) CopyCharts(ctx context.Context, source id.External, targets []id.External) (chart.CopyResult, error) {
	body := map[string]any{"source": source, "targets": targets}
	var result chart.CopyResult
	if err := c.call(ctx, http.MethodPost, "/chord-charts/copy", nil, body, &result); err != nil {
		return chart.CopyResult{}, err
	}
	return result, nil
}

func (c *Client) CommonChords(ctx context.Context) ([]map[string]any, error) {
	var chords []map[string]any
	if err := c.call(ctx, http.MethodGet, "/common-chords", nil, nil, &chords); err != nil {
		return nil, err
	}
	return chords, nil
}

func (c *Client) FindCommonChord(ctx context.Context, name string) (map[string]any, error) {
	var chord map[string]any
	if err := c.call(ctx, http.MethodGet, "/common-chords/"+name, nil, nil, &chord); err != nil {
		return nil, err
	}
	return chord, nil
}

func (c *Client) SearchCommonChords(ctx context.Context, name string) ([]map[string]any, error) {
	var chords []map[string]any
	if err := c.call(ctx, http.MethodGet, "/common-chords/search", map[string]string{"q": name}, nil, &chords); err != nil {
		return nil, err
	}
	return chords, nil
}

func (c *Client) AutocreateCharts(ctx context.Context, ext id.External, names []string) ([]wire.Record, []string, error) {
	body := map[string][]string{"names": names}
	var result struct {
		Created []wire.Record `json:"created"`
		Missing []string      `json:"missing"`
	}
	if err := c.call(ctx, http.MethodPost, "/items/"+string(ext)+"/chord-charts/autocreate", nil, body, &result); err != nil {
		return nil, nil, err
	}
	return result.Created, result.Missing, nil
}

func (c *Client) Routines(ctx context.Context) ([]wire.Record, error) {
	var records []wire.Record
	if err := c.call(ctx, http.MethodGet, "/routines", nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) CreateRoutine(ctx context.Context, rec wire.Record) (wire.Record, error) {
	var created wire.Record
	if err := c.call(ctx, http.MethodPost, "/routines", nil, rec, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateRoutine(ctx context.Context, routineID int64, rec wire.Record) (wire.Record, error) {
	var updated wire.Record
	if err := c.call(ctx, http.MethodPut, routinePath(routineID), nil, rec, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteRoutine(ctx context.Context, routineID int64) error {
	return c.call(ctx, http.MethodDelete, routinePath(routineID), nil, nil, nil)
}

func (c *Client) RoutineWithItems(ctx context.Context, routineID int64) (wire.Record, error) {
	var rec wire.Record
	if err := c.call(ctx, http.MethodGet, routinePath(routineID), nil, nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *Client) RoutineEntries(ctx context.Context, routineID int64) ([]wire.Record, error) {
	var records []wire.Record
	if err := c.call(ctx, http.MethodGet, routinePath(routineID)+"/items", nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) AddRoutineItem(ctx context.Context, routineID int64, ext id.External, order *int) (wire.Record, error) {
	body := map[string]any{"item_id": ext}
	if order != nil {
		body["order"] = *order
	}
	var created wire.Record
	if err := c.call(ctx, http.MethodPost, routinePath(routineID)+"/items", nil, body, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) RemoveRoutineItem(ctx context.Context, routineID int64, ext id.External) error {
	return c.call(ctx, http.MethodDelete, routinePath(routineID)+"/items/by-item/"+string(ext), nil, nil, nil)
}

func (c *Client) RemoveRoutineEntry(ctx context.Context, routineID, entryID int64) error {
	return c.call(ctx, http.MethodDelete, entryPath(routineID, entryID), nil, nil, nil)
}

func (c *Client) UpdateRoutineEntriesOrder(ctx context.Context, routineID int64, recs []wire.Record) error {
	return c.call(ctx, http.MethodPut, routinePath(routineID)+"/items/order", nil, recs, nil)
}

func (c *Client) UpdateRoutinesOrder(ctx context.Context, recs []wire.Record) error {
	return c.call(ctx, http.MethodPut, "/routines/order", nil, recs, nil)
}

func (c *Client) UpdateRoutineEntry(ctx context.Context, routineID, entryID int64, rec wire.Record) (wire.Record, error) {
	var updated wire.Record
	if err := c.call(ctx, http.MethodPut, entryPath(routineID, entryID), nil, rec, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) SetRoutineEntryCompleted(ctx context.Context, routineID, entryID int64, completed bool) error {
	body := wire.Record{"D": wire.FormatBool(completed)}
	_, err := c.UpdateRoutineEntry(ctx, routineID, entryID, body)
	return err
}

func (c *Client) ResetRoutineProgress(ctx context.Context, routineID int64) error {
	return c.call(ctx, http.MethodPost, routinePath(routineID)+"/reset", nil, nil, nil)
}

func (c *Client) ActiveRoutine(ctx context.Context) (wire.Record, error) {
	var rec wire.Record
	err := c.call(ctx, http.MethodGet, "/routines/active", nil, nil, &rec)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(rec) == 0 {
		return nil, nil
	}
	return rec, nil
}

func (c *Client) SetActiveRoutine(ctx context.Context, routineID int64) error {
	body := map[string]int64{"routine_id": routineID}
	return c.call(ctx, http.MethodPut, "/routines/active", nil, body, nil)
}

func (c *Client) ClearActiveRoutine(ctx context.Context) error {
	return c.call(ctx, http.MethodDelete, "/routines/active", nil, nil, nil)
}

// Stats returns the gateway's merged statistics, tagged as spreadsheet
// numbers.
func (c *Client) Stats(ctx context.Context) (datalayer.Stats, error) {
	var stats datalayer.Stats
	if err := c.call(ctx, http.MethodGet, "/stats", nil, nil, &stats); err != nil {
		return datalayer.Stats{}, err
	}
	stats.Backend = datalayer.ModeSheets.String()
	return stats, nil
}

func routinePath(routineID int64) string {
	return "/routines/" + strconv.FormatInt(routineID, 10)
}

func entryPath(routineID, entryID int64) string {
	return routinePath(routineID) + "/items/" + strconv.FormatInt(entryID, 10)
}
