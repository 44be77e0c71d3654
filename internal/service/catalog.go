package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/model"
	"github.com/booklandia/lending-service/pkg/openlibrary"
)

const (
	// maxSearchResults caps per-query processing regardless of what the
	// upstream index reports in numFound.
	maxSearchResults = 10
	// concurrent follow-up lookups per batch
	lookupWorkers = 4

	sentinelNoDescription = "No Description"
	sentinelNoSubjects    = "No Subjects"
)

// SearchCatalog queries the external catalog for title/author, resolves each
// result's subjects, description and cover, persists entries not yet known
// locally, and returns the whole processed batch.
//
// Both arguments empty is an explicit edge case: an empty batch, no external
// call.
func (s *Service) SearchCatalog(ctx context.Context, title, author string) ([]model.CatalogEntry, error) {
	if title == "" && author == "" {
		return []model.CatalogEntry{}, nil
	}

	var resp openlibrary.SearchResponse
	err := s.cb.Call(func() error {
		var err error
		resp, err = s.catalog.Search(ctx, title, author)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(errs.ErrUpstreamUnavailable, err.Error())
	}

	docs := resp.Docs
	if len(docs) > maxSearchResults {
		docs = docs[:maxSearchResults]
	}

	entries := make([]model.CatalogEntry, len(docs))
	g := errgroup.Group{}
	g.SetLimit(lookupWorkers)
	for i := range docs {
		i := i
		g.Go(func() error {
			entries[i] = s.resolveEntry(ctx, docs[i])
			return nil
		})
	}
	_ = g.Wait()

	for _, e := range entries {
		if err := s.repo.CreateBook(ctx, model.Book{
			Key:           e.Key,
			Title:         e.Title,
			Author:        e.Author,
			Description:   e.Description,
			Subjects:      e.Subjects,
			CoverImgURLM:  e.CoverImgURLM,
			CoverImgURLS:  e.CoverImgURLS,
			PublishedYear: e.FirstPublishYear,
		}); err != nil {
			s.log.Error("persist catalog entry", zap.String("key", e.Key), zap.Error(err))
		}
	}

	return entries, nil
}

// resolveEntry issues the follow-up work lookup the search endpoint cannot
// cover. A failed lookup degrades that one entry to sentinel values; it never
// fails the batch.
func (s *Service) resolveEntry(ctx context.Context, doc openlibrary.Doc) model.CatalogEntry {
	entry := model.CatalogEntry{
		Key:              doc.Key,
		Title:            doc.Title,
		Author:           JoinDisplayList(doc.AuthorName),
		Description:      sentinelNoDescription,
		Subjects:         sentinelNoSubjects,
		FirstPublishYear: doc.FirstPublishYear,
	}

	coverID := ""
	if len(doc.EditionKey) > 0 {
		coverID = doc.EditionKey[0]
	}

	work, err := s.catalog.Work(ctx, doc.Key)
	if err != nil {
		s.log.Warn("work lookup degraded", zap.String("key", doc.Key), zap.Error(err))
	} else {
		if d := work.DescriptionText(); d != "" {
			entry.Description = d
		}
		if len(work.Subjects) > 0 {
			entry.Subjects = JoinDisplayList(work.Subjects)
		}
		if work.CoverEditionKey != "" {
			coverID = work.CoverEditionKey
		}
	}

	entry.CoverImgURLM, entry.CoverImgURLS = s.catalog.CoverURLs(coverID)
	return entry
}

// AddToShelf puts an already-ingested book onto the actor's shelf.
func (s *Service) AddToShelf(ctx context.Context, key string, userID int) error {
	book, err := s.repo.GetBookByKey(ctx, key)
	if err != nil {
		return err
	}
	return s.repo.AddToShelf(ctx, book.BookID, userID)
}

func (s *Service) Shelf(ctx context.Context, userID int) ([]model.ShelfItem, error) {
	return s.repo.ListShelf(ctx, userID)
}

func (s *Service) SearchShelves(ctx context.Context, term string) ([]model.ShelfItem, error) {
	const searchLimit = 20
	return s.repo.SearchBooks(ctx, term, searchLimit)
}

func (s *Service) BookInfo(ctx context.Context, bookID int) (model.BookInfo, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BookInfo{}, err
	}
	statuses, err := s.repo.ListStatuses(ctx, bookID)
	if err != nil {
		return model.BookInfo{}, err
	}
	ratings, err := s.repo.ListBookRatings(ctx, bookID)
	if err != nil {
		return model.BookInfo{}, err
	}
	return model.BookInfo{Book: book, Statuses: statuses, Ratings: ratings}, nil
}
