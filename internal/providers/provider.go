package providers

import (
	"context"
	"fmt"
	"net/http"
)

// Image is a single <img> element found on a species page.
type Image struct {
	Src   string
	Title string
}

type Source interface {
	Images(ctx context.Context, species string) ([]Image, error)
}

// StatusError is returned by a Source when the page answered with a
// non-success status code.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d %s (%s)", e.Code, http.StatusText(e.Code), e.URL)
}
