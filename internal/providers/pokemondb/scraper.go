package pokemondb

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/shinydex/internal/providers"
)

const DefaultBaseURL = "https://pokemondb.net/sprites/"

type Scraper struct {
	client  *http.Client
	baseURL string
	log     interface{ Debugf(string, ...any) }

	bytesRead atomic.Int64
}

func NewScraper(c *http.Client, baseURL string, log interface{ Debugf(string, ...any) }) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Scraper{
		client:  c,
		baseURL: baseURL,
		log:     log,
	}
}

// PageURL is the base path with the species identifier appended verbatim.
func (s *Scraper) PageURL(species string) string {
	return s.baseURL + species
}

// BytesRead reports the total size of all page bodies fetched so far.
func (s *Scraper) BytesRead() int64 {
	return s.bytesRead.Load()
}

func (s *Scraper) fetchDOM(ctx context.Context, target string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	// single attempt; the caller decides what a failure means
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &providers.StatusError{URL: target, Code: resp.StatusCode}
	}

	return goquery.NewDocumentFromReader(&countingReader{r: resp.Body, n: &s.bytesRead})
}

func (s *Scraper) Images(ctx context.Context, species string) ([]providers.Image, error) {
	target := s.PageURL(species)

	doc, err := s.fetchDOM(ctx, target)
	if err != nil {
		return nil, err
	}

	var out []providers.Image
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		// alt is always set on pokemondb and would relabel every base form
		title, _ := img.Attr("title")

		out = append(out, providers.Image{Src: src, Title: title})
	})

	if s.log != nil {
		s.log.Debugf("%s: %d <img> elements on %s\n", species, len(out), target)
	}

	return out, nil
}

type countingReader struct {
	r io.Reader
	n *atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}
