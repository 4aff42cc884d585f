// Package catalog fetches the station list from the remote catalog page.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"radiopotok-tui/model"
)

// ErrSourceUnavailable indicates the catalog page could not be fetched.
// A single failed fetch aborts startup; there are no retries.
var ErrSourceUnavailable = errors.New("station source unavailable")

// ParseError indicates the fetched document is missing the expected
// structural markers (station cards, embedded stream URL script).
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse station list: " + e.Reason
}

// Catalog retrieves stations from a radiopotok-style catalog page.
type Catalog struct {
	url    string
	client *http.Client
}

// New creates a catalog bound to the given page URL.
func New(url string) *Catalog {
	return &Catalog{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads the catalog page and extracts the station list in
// document order. The order matters: menu numbering is positional.
func (c *Catalog) Fetch(ctx context.Context) ([]model.Station, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}

	stations, err := parseStations(doc)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("stations", len(stations)).Str("url", c.url).Msg("catalog fetched")
	return stations, nil
}

// parseStations walks the station cards of the catalog document. Each card
// is a <button class="radio-card"> carrying a numeric data-id, an aria-label
// whose first word is a throwaway prefix, and an inline script with the
// stream URL as the third quoted field after the "file" marker.
func parseStations(doc *goquery.Document) ([]model.Station, error) {
	var stations []model.Station
	var parseErr error

	doc.Find("button.radio-card").EachWithBreak(func(i int, card *goquery.Selection) bool {
		st, err := parseCard(i, card)
		if err != nil {
			parseErr = err
			return false
		}
		stations = append(stations, st)
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	if len(stations) == 0 {
		return nil, &ParseError{Reason: "no station cards found"}
	}
	return stations, nil
}

func parseCard(i int, card *goquery.Selection) (model.Station, error) {
	rawID, ok := card.Attr("data-id")
	if !ok {
		return model.Station{}, &ParseError{Reason: fmt.Sprintf("card %d: missing data-id", i)}
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return model.Station{}, &ParseError{Reason: fmt.Sprintf("card %d: data-id %q is not a number", i, rawID)}
	}

	label, ok := card.Attr("aria-label")
	if !ok {
		return model.Station{}, &ParseError{Reason: fmt.Sprintf("card %d: missing aria-label", i)}
	}
	// The first whitespace-delimited token is a generic prefix; the
	// remainder is the station title.
	parts := strings.SplitN(strings.TrimSpace(label), " ", 2)
	if len(parts) < 2 || parts[1] == "" {
		return model.Station{}, &ParseError{Reason: fmt.Sprintf("card %d: aria-label %q has no title", i, label)}
	}
	title := parts[1]

	streamURL, err := extractStreamURL(card.Find("script").Text())
	if err != nil {
		return model.Station{}, &ParseError{Reason: fmt.Sprintf("card %d: %v", i, err)}
	}

	return model.Station{ID: id, Title: title, StreamURL: streamURL}, nil
}

// extractStreamURL pulls the stream locator out of the card's player setup
// script: the third double-quote-delimited field after the "file" key, with
// backslash escapes stripped.
func extractStreamURL(script string) (string, error) {
	script = strings.TrimSpace(script)
	_, after, found := strings.Cut(script, "file")
	if !found {
		return "", errors.New("script has no file marker")
	}

	fields := strings.Split(after, `"`)
	if len(fields) < 3 {
		return "", errors.New("script has no quoted stream URL")
	}

	url := strings.ReplaceAll(fields[2], `\`, "")
	if url == "" {
		return "", errors.New("script has an empty stream URL")
	}
	return url, nil
}
