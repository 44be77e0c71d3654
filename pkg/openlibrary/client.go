package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	BaseURL  string        `envconfig:"OPENLIBRARY_BASE_URL" default:"https://openlibrary.org"`
	CoverURL string        `envconfig:"OPENLIBRARY_COVER_URL" default:"http://covers.openlibrary.org/b/olid"`
	Timeout  time.Duration `envconfig:"OPENLIBRARY_TIMEOUT" default:"10s"`
}

// Client talks to the OpenLibrary search and works endpoints plus the
// companion cover-image service.
type Client struct {
	cfg    Config
	client *http.Client
	log    *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.Named("openlibrary"),
	}
}

type SearchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

type Doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	EditionKey       []string `json:"edition_key"`
	FirstPublishYear int      `json:"first_publish_year"`
}

// Work is the follow-up lookup payload. Description arrives either as a plain
// string or wrapped in a {"type", "value"} object.
type Work struct {
	Description     any      `json:"description"`
	Subjects        []string `json:"subjects"`
	CoverEditionKey string   `json:"cover_edition_key"`
}

// DescriptionText normalizes the two description shapes to a plain string.
func (w Work) DescriptionText() string {
	switch v := w.Description.(type) {
	case string:
		return v
	case map[string]any:
		if val, ok := v["value"].(string); ok {
			return val
		}
	}
	return ""
}

// Search queries /search.json with whichever of title/author is set. The
// caller guarantees at least one is non-empty.
func (c *Client) Search(ctx context.Context, title, author string) (SearchResponse, error) {
	q := url.Values{}
	if title != "" {
		q.Set("title", title)
	}
	if author != "" {
		q.Set("author", author)
	}

	var resp SearchResponse
	if err := c.getJSON(ctx, c.cfg.BaseURL+"/search.json?"+q.Encode(), &resp); err != nil {
		return SearchResponse{}, errors.Wrap(err, "search")
	}
	return resp, nil
}

// Work fetches /{key}.json for the subjects and description the search
// endpoint omits. key is the work key as returned by Search, e.g. "/works/OL45883W".
func (c *Client) Work(ctx context.Context, key string) (Work, error) {
	var w Work
	if err := c.getJSON(ctx, c.cfg.BaseURL+key+".json", &w); err != nil {
		return Work{}, errors.Wrapf(err, "work %s", key)
	}
	return w, nil
}

// CoverURLs builds the medium and small cover image URLs for an edition id.
func (c *Client) CoverURLs(id string) (medium, small string) {
	return fmt.Sprintf("%s/%s-M.jpg", c.cfg.CoverURL, id),
		fmt.Sprintf("%s/%s-S.jpg", c.cfg.CoverURL, id)
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode")
	}
	return nil
}
