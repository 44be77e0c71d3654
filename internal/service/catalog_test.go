package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/service"
	"github.com/booklandia/lending-service/pkg/openlibrary"
)

func TestService_SearchCatalog_EmptyQuery(t *testing.T) {
	catalog := &fakeCatalog{}
	svc := service.NewService(newFakeRepo(), catalog, nil, zap.NewNop())

	entries, err := svc.SearchCatalog(context.Background(), "", "")
	require.NoError(t, err)
	require.Empty(t, entries)
	require.Zero(t, catalog.searchCalls)
	require.Zero(t, catalog.workCalls)
}

func TestService_SearchCatalog_UpstreamDown(t *testing.T) {
	catalog := &fakeCatalog{searchErr: errors.New("connection refused")}
	svc := service.NewService(newFakeRepo(), catalog, nil, zap.NewNop())

	_, err := svc.SearchCatalog(context.Background(), "dune", "")
	require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
}

func TestService_SearchCatalog_CapsResults(t *testing.T) {
	docs := make([]openlibrary.Doc, 25)
	works := make(map[string]openlibrary.Work, 25)
	for i := range docs {
		key := "/works/OL" + string(rune('A'+i)) + "W"
		docs[i] = openlibrary.Doc{Key: key, Title: "t", AuthorName: []string{"a"}}
		works[key] = openlibrary.Work{Description: "d", Subjects: []string{"s"}}
	}
	catalog := &fakeCatalog{
		searchResp: openlibrary.SearchResponse{NumFound: 25, Docs: docs},
		works:      works,
	}
	repo := newFakeRepo()
	svc := service.NewService(repo, catalog, nil, zap.NewNop())

	entries, err := svc.SearchCatalog(context.Background(), "t", "a")
	require.NoError(t, err)
	require.Len(t, entries, 10)
	require.EqualValues(t, 10, catalog.workCalls)
	require.Len(t, repo.books, 10)
}

func TestService_SearchCatalog_ResolvesEntries(t *testing.T) {
	catalog := &fakeCatalog{
		searchResp: openlibrary.SearchResponse{NumFound: 2, Docs: []openlibrary.Doc{
			{
				Key:              "/works/OL1W",
				Title:            "Dune",
				AuthorName:       []string{"Frank Herbert", "Someone Else"},
				EditionKey:       []string{"OL1M", "OL2M"},
				FirstPublishYear: 1965,
			},
			{
				Key:        "/works/OL2W",
				Title:      "Bare",
				AuthorName: []string{"Nobody"},
			},
		}},
		works: map[string]openlibrary.Work{
			"/works/OL1W": {
				Description:     map[string]any{"type": "/type/text", "value": "Sand."},
				Subjects:        []string{"Science Fiction", "Deserts"},
				CoverEditionKey: "OL9M",
			},
		},
		workErrs: map[string]error{
			"/works/OL2W": errors.New("504"),
		},
	}
	repo := newFakeRepo()
	svc := service.NewService(repo, catalog, nil, zap.NewNop())

	entries, err := svc.SearchCatalog(context.Background(), "dune", "herbert")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "Frank Herbert, Someone Else", entries[0].Author)
	require.Equal(t, "Sand.", entries[0].Description)
	require.Equal(t, "Science Fiction, Deserts", entries[0].Subjects)
	// the work response wins over the search doc's edition key
	require.Equal(t, "http://covers.example/OL9M-M.jpg", entries[0].CoverImgURLM)
	require.Equal(t, 1965, entries[0].FirstPublishYear)

	// a failed follow-up degrades only its own entry
	require.Equal(t, "No Description", entries[1].Description)
	require.Equal(t, "No Subjects", entries[1].Subjects)

	require.Len(t, repo.books, 2)
}

func TestService_SearchCatalog_Idempotent(t *testing.T) {
	catalog := &fakeCatalog{
		searchResp: openlibrary.SearchResponse{NumFound: 1, Docs: []openlibrary.Doc{
			{Key: "/works/OL1W", Title: "Dune", AuthorName: []string{"Frank Herbert"}},
		}},
		works: map[string]openlibrary.Work{
			"/works/OL1W": {Description: "Sand.", Subjects: []string{"Deserts"}},
		},
	}
	repo := newFakeRepo()
	svc := service.NewService(repo, catalog, nil, zap.NewNop())

	for i := 0; i < 2; i++ {
		entries, err := svc.SearchCatalog(context.Background(), "dune", "")
		require.NoError(t, err)
		require.Len(t, entries, 1)
	}
	require.Len(t, repo.books, 1)
	require.Equal(t, 1, repo.books["/works/OL1W"].BookID)
}

func TestService_AddToShelf(t *testing.T) {
	repo := newFakeRepo()
	svc := service.NewService(repo, &fakeCatalog{}, nil, zap.NewNop())
	ctx := context.Background()

	require.ErrorIs(t, svc.AddToShelf(ctx, "/works/OL1W", 1), errs.ErrNotFound)

	require.NoError(t, repo.CreateBook(ctx, bookFixture("/works/OL1W")))
	require.NoError(t, svc.AddToShelf(ctx, "/works/OL1W", 1))

	st, err := repo.GetStatus(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, "On Shelf", string(st.Location))
	require.Equal(t, "Like New", string(st.Condition))
}
