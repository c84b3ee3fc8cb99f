package httpfetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/leng404/gymshop/internal/catalog/app"
	"github.com/leng404/gymshop/internal/catalog/domain"
)

// Fetcher pulls the product feed once at startup. Any failure here is
// recoverable: the caller keeps serving with a degraded (error) grid.
type Fetcher struct {
	url    string
	client *http.Client
}

func NewFetcher(url string, client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{url: url, client: client}
}

func (f *Fetcher) Fetch(ctx context.Context) ([]domain.RawProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch catalog")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog body")
	}

	return decode(body)
}

// decode accepts only a JSON array of records. Anything else is a
// malformed payload; individual records stay loose and are normalized
// later by the store.
func decode(body []byte) ([]domain.RawProduct, error) {
	var records []domain.RawProduct
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrap(app.ErrMalformedPayload, err.Error())
	}
	return records, nil
}
