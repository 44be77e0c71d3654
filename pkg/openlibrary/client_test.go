package openlibrary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/booklandia/lending-service/pkg/openlibrary"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *openlibrary.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return openlibrary.NewClient(openlibrary.Config{
		BaseURL:  srv.URL,
		CoverURL: "http://covers.example/b/olid",
		Timeout:  time.Second,
	}, zap.NewNop())
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search.json", r.URL.Path)
		require.Equal(t, "dune", r.URL.Query().Get("title"))
		require.Equal(t, "herbert", r.URL.Query().Get("author"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"numFound": 2,
			"docs": [
				{"key": "/works/OL1W", "title": "Dune", "author_name": ["Frank Herbert"],
				 "edition_key": ["OL1M", "OL2M"], "first_publish_year": 1965},
				{"key": "/works/OL2W", "title": "Dune Messiah", "author_name": ["Frank Herbert"]}
			]
		}`))
	})

	resp, err := client.Search(context.Background(), "dune", "herbert")
	require.NoError(t, err)
	require.Equal(t, 2, resp.NumFound)
	require.Len(t, resp.Docs, 2)
	require.Equal(t, "/works/OL1W", resp.Docs[0].Key)
	require.Equal(t, []string{"OL1M", "OL2M"}, resp.Docs[0].EditionKey)
	require.Equal(t, 1965, resp.Docs[0].FirstPublishYear)
}

func TestClient_Search_OmitsEmptyParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "dune", r.URL.Query().Get("title"))
		require.False(t, r.URL.Query().Has("author"))
		_, _ = w.Write([]byte(`{"numFound": 0, "docs": []}`))
	})

	resp, err := client.Search(context.Background(), "dune", "")
	require.NoError(t, err)
	require.Empty(t, resp.Docs)
}

func TestClient_Search_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Search(context.Background(), "dune", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 502")
}

func TestClient_Work(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/works/OL1W.json", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"description": "Plain text.",
			"subjects": ["Science Fiction", "Deserts"],
			"cover_edition_key": "OL9M"
		}`))
	})

	work, err := client.Work(context.Background(), "/works/OL1W")
	require.NoError(t, err)
	require.Equal(t, "Plain text.", work.DescriptionText())
	require.Equal(t, []string{"Science Fiction", "Deserts"}, work.Subjects)
	require.Equal(t, "OL9M", work.CoverEditionKey)
}

func TestClient_Work_ObjectDescription(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"description": {"type": "/type/text", "value": "Wrapped."}}`))
	})

	work, err := client.Work(context.Background(), "/works/OL1W")
	require.NoError(t, err)
	require.Equal(t, "Wrapped.", work.DescriptionText())
}

func TestWork_DescriptionText(t *testing.T) {
	tests := []struct {
		name string
		desc any
		want string
	}{
		{name: "string", desc: "text", want: "text"},
		{name: "object", desc: map[string]any{"value": "text"}, want: "text"},
		{name: "object without value", desc: map[string]any{"type": "/type/text"}, want: ""},
		{name: "absent", desc: nil, want: ""},
		{name: "unexpected shape", desc: 42.0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := openlibrary.Work{Description: tt.desc}
			require.Equal(t, tt.want, w.DescriptionText())
		})
	}
}

func TestClient_CoverURLs(t *testing.T) {
	client := openlibrary.NewClient(openlibrary.Config{
		CoverURL: "http://covers.example/b/olid",
	}, zap.NewNop())

	m, s := client.CoverURLs("OL9M")
	require.Equal(t, "http://covers.example/b/olid/OL9M-M.jpg", m)
	require.Equal(t, "http://covers.example/b/olid/OL9M-S.jpg", s)
}
