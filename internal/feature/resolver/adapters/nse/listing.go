package nse

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"finos_backend/internal/feature/resolver/domain/entity"
)

// listingPath is the equity master list published by the exchange archive.
const listingPath = "/content/equities/EQUITY_L.csv"

// Client downloads and parses the NSE equity listing.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a listing client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchListing downloads EQUITY_L.csv and returns one Instrument per row,
// with the exchange suffix already applied to the symbol.
func (c *Client) FetchListing(ctx context.Context) ([]entity.Instrument, error) {
	u := c.cfg.BaseURL + listingPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("nse archive http %d", res.StatusCode)
	}

	r := csv.NewReader(res.Body)
	r.FieldsPerRecord = -1 // the archive occasionally pads rows with trailing columns

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read listing header: %w", err)
	}
	symbolCol, nameCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.ToUpper(col)) {
		case "SYMBOL":
			symbolCol = i
		case "NAME OF COMPANY":
			nameCol = i
		}
	}
	if symbolCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("listing header missing SYMBOL/NAME OF COMPANY: %v", header)
	}

	var instruments []entity.Instrument
	for {
		row, err := r.Read()
		if err != nil {
			break // io.EOF ends the scan; a malformed tail row is not fatal
		}
		if symbolCol >= len(row) || nameCol >= len(row) {
			continue
		}
		symbol := strings.TrimSpace(row[symbolCol])
		name := strings.TrimSpace(row[nameCol])
		if symbol == "" || name == "" {
			continue
		}
		instruments = append(instruments, entity.Instrument{
			Symbol: strings.ToUpper(symbol) + ".NS",
			Name:   strings.ToUpper(name),
		})
	}
	if len(instruments) == 0 {
		return nil, fmt.Errorf("listing parsed to zero rows")
	}
	return instruments, nil
}
