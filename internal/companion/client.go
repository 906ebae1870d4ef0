package companion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/luachboard/luach/internal/model"
)

// Client is a typed HTTP client for the companion backend.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a client rooted at base, e.g. "http://localhost:8000".
// No request timeout is set; a hung backend leaves the caller waiting until
// its context is cancelled.
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{},
	}
}

// PrayerTimes fetches daily prayer times for the given coordinates.
func (c *Client) PrayerTimes(ctx context.Context, lat, lon float64) (model.PrayerTimes, error) {
	var out model.PrayerTimes
	err := c.getJSON(ctx, fmt.Sprintf("/prayer-times/%g/%g", lat, lon), &out)
	return out, err
}

// WeeklyParsha fetches the current week's parsha with insights.
func (c *Client) WeeklyParsha(ctx context.Context) (model.WeeklyParsha, error) {
	var out model.WeeklyParsha
	err := c.getJSON(ctx, "/weekly-parsha", &out)
	return out, err
}

// AstronomicalData fetches moon phase, tide and mazalot.
func (c *Client) AstronomicalData(ctx context.Context) (model.AstronomicalData, error) {
	var out model.AstronomicalData
	err := c.getJSON(ctx, "/astronomical-data", &out)
	return out, err
}

// PracticalReminders fetches the daily and weekly reminder lists.
func (c *Client) PracticalReminders(ctx context.Context) (model.PracticalReminders, error) {
	var out model.PracticalReminders
	err := c.getJSON(ctx, "/practical-reminders", &out)
	return out, err
}

// getJSON issues a GET and decodes the body into out. The backend does not
// signal errors through status codes the renderer reacts to, so any body
// that decodes as JSON is taken as data; anything else fails the decode.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", path, err)
	}
	return nil
}
