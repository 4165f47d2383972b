package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hltv-players/internal/config"
)

// Scraper fetches and parses the stats page described by a config.Config.
type Scraper struct {
	client     *http.Client
	url        string
	userAgent  string
	tableClass string
}

// Page is the raw result of a fetch.
type Page struct {
	URL        string
	StatusCode int
	Body       string
}

// OK reports whether the response carried a 2xx status.
func (p *Page) OK() bool {
	return p.StatusCode >= 200 && p.StatusCode < 300
}

// New creates a Scraper for cfg. A zero cfg.Timeout leaves the request unbounded.
func New(cfg config.Config) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:        cfg.Endpoint,
		userAgent:  cfg.UserAgent,
		tableClass: cfg.TableClass,
	}
}

// Fetch performs one GET and returns the body. Non-2xx responses are returned as-is;
// only transport and read failures are errors.
func (s *Scraper) Fetch(ctx context.Context) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Page{
		URL:        s.url,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// Rows parses body and returns the extracted data rows of the marker-class table.
func (s *Scraper) Rows(body string) (*Extraction, error) {
	table, err := FindTable(strings.NewReader(body), s.tableClass)
	if err != nil {
		return nil, err
	}
	return ExtractRows(table.Find("tr")), nil
}

// FindTable parses markup from r and returns the first <table> whose class list
// contains class.
func FindTable(r io.Reader, class string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return sel.HasClass(class)
	}).First()

	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: table.%s", ErrTableNotFound, class)
	}
	return table, nil
}
