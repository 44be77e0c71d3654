package service_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/model"
	"github.com/booklandia/lending-service/pkg/openlibrary"
)

type pair struct{ a, b int }

// fakeRepo is an in-memory Repository honoring the same contract as the
// postgres implementation: atomicity of the paired lending writes, at most
// one unresolved borrow record per (book, owner), resolved records kept as
// borrow history.
type fakeRepo struct {
	mu         sync.Mutex
	nextBookID int
	nextUserID int

	books         map[string]model.Book // by external key
	statuses      map[pair]model.ShelfStatus
	borrows       map[pair]model.BorrowRecord // unresolved, by (book, owner)
	borrowHistory []model.BorrowRecord
	bookRatings   map[pair]model.BookRating
	lenderRatings map[pair]model.LenderRating
	users         map[string]model.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		books:         make(map[string]model.Book),
		statuses:      make(map[pair]model.ShelfStatus),
		borrows:       make(map[pair]model.BorrowRecord),
		bookRatings:   make(map[pair]model.BookRating),
		lenderRatings: make(map[pair]model.LenderRating),
		users:         make(map[string]model.User),
	}
}

func (f *fakeRepo) CreateBook(_ context.Context, b model.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.books[b.Key]; ok {
		return nil
	}
	f.nextBookID++
	b.BookID = f.nextBookID
	f.books[b.Key] = b
	return nil
}

func (f *fakeRepo) GetBook(_ context.Context, bookID int) (model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.books {
		if b.BookID == bookID {
			return b, nil
		}
	}
	return model.Book{}, errs.ErrNotFound
}

func (f *fakeRepo) GetBookByKey(_ context.Context, key string) (model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.books[key]; ok {
		return b, nil
	}
	return model.Book{}, errs.ErrNotFound
}

func (f *fakeRepo) SearchBooks(context.Context, string, int) ([]model.ShelfItem, error) {
	return nil, nil
}

func (f *fakeRepo) AddToShelf(_ context.Context, bookID, userID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := pair{bookID, userID}
	if _, ok := f.statuses[k]; !ok {
		f.statuses[k] = model.ShelfStatus{
			BookID:    bookID,
			UserID:    userID,
			Location:  model.LocationOnShelf,
			Condition: model.ConditionLikeNew,
		}
	}
	return nil
}

func (f *fakeRepo) GetStatus(_ context.Context, bookID, ownerID int) (model.ShelfStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st, ok := f.statuses[pair{bookID, ownerID}]; ok {
		return st, nil
	}
	return model.ShelfStatus{}, errs.ErrNotFound
}

func (f *fakeRepo) ListStatuses(context.Context, int) ([]model.ShelfStatus, error) {
	return nil, nil
}

func (f *fakeRepo) ListShelf(context.Context, int) ([]model.ShelfItem, error) {
	return nil, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, bookID, ownerID int, loc model.Location, cond model.Condition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := pair{bookID, ownerID}
	st, ok := f.statuses[k]
	if !ok {
		return errs.ErrNotFound
	}
	st.Location = loc
	st.Condition = cond
	f.statuses[k] = st
	if loc == model.LocationOnShelf || loc == model.LocationOffShelf {
		f.resolveBorrow(k)
	}
	return nil
}

func (f *fakeRepo) DeleteStatus(_ context.Context, bookID, ownerID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := pair{bookID, ownerID}
	if _, ok := f.statuses[k]; !ok {
		return errs.ErrNotFound
	}
	delete(f.statuses, k)
	f.resolveBorrow(k)
	return nil
}

// resolveBorrow moves the unresolved record for the copy into borrow history.
func (f *fakeRepo) resolveBorrow(k pair) {
	if rec, ok := f.borrows[k]; ok {
		rec.Resolved = true
		f.borrowHistory = append(f.borrowHistory, rec)
		delete(f.borrows, k)
	}
}

func (f *fakeRepo) CreateRequest(_ context.Context, bookID, ownerID, borrowerID int) (model.BorrowRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := pair{bookID, ownerID}
	st, ok := f.statuses[k]
	if !ok {
		return model.BorrowRecord{}, errs.ErrNotFound
	}
	if st.Location != model.LocationOnShelf {
		return model.BorrowRecord{}, errs.ErrConflict
	}
	if _, ok := f.borrows[k]; ok {
		// mirrors the partial unique index on unresolved records
		return model.BorrowRecord{}, errors.New("duplicate unresolved borrow record")
	}
	st.Location = model.LocationRequested
	f.statuses[k] = st
	rec := model.BorrowRecord{BookID: bookID, OwnerID: ownerID, BorrowerID: borrowerID}
	f.borrows[k] = rec
	return rec, nil
}

func (f *fakeRepo) ApproveRequest(_ context.Context, bookID, ownerID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := pair{bookID, ownerID}
	st, ok := f.statuses[k]
	if !ok {
		return errs.ErrNotFound
	}
	if st.Location != model.LocationRequested {
		return errs.ErrConflict
	}
	st.Location = model.LocationCheckedOut
	f.statuses[k] = st
	return nil
}

func (f *fakeRepo) RejectRequest(_ context.Context, bookID, ownerID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := pair{bookID, ownerID}
	st, ok := f.statuses[k]
	if !ok {
		return errs.ErrNotFound
	}
	if _, ok := f.borrows[k]; !ok {
		// both writes roll back together: the status stays as it was
		return errs.ErrNotFound
	}
	st.Location = model.LocationOnShelf
	f.statuses[k] = st
	delete(f.borrows, k)
	return nil
}

func (f *fakeRepo) RequestsFor(context.Context, int) (model.RequestsView, error) {
	return model.RequestsView{}, nil
}

func (f *fakeRepo) HasBorrowed(_ context.Context, lenderID, borrowerID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.borrows {
		if rec.OwnerID == lenderID && rec.BorrowerID == borrowerID {
			return true, nil
		}
	}
	for _, rec := range f.borrowHistory {
		if rec.OwnerID == lenderID && rec.BorrowerID == borrowerID {
			return true, nil
		}
	}
	return false, nil
}

func roundAvg(ratings []int) float64 {
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}

func (f *fakeRepo) UpsertBookRating(_ context.Context, br model.BookRating) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookRatings[pair{br.BookID, br.UserID}] = br
	var all []int
	for k, r := range f.bookRatings {
		if k.a == br.BookID {
			all = append(all, r.Rating)
		}
	}
	avg := roundAvg(all)
	for key, b := range f.books {
		if b.BookID == br.BookID {
			b.AvgRating = avg
			f.books[key] = b
		}
	}
	return avg, nil
}

func (f *fakeRepo) UpsertLenderRating(_ context.Context, lr model.LenderRating) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lenderRatings[pair{lr.LenderID, lr.RaterID}] = lr
	var all []int
	for k, r := range f.lenderRatings {
		if k.a == lr.LenderID {
			all = append(all, r.Rating)
		}
	}
	avg := roundAvg(all)
	for name, u := range f.users {
		if u.UserID == lr.LenderID {
			u.AvgRating = avg
			f.users[name] = u
		}
	}
	return avg, nil
}

func (f *fakeRepo) ListBookRatings(context.Context, int) ([]model.BookRating, error) {
	return nil, nil
}

func (f *fakeRepo) CreateUser(_ context.Context, u model.User) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Username]; ok {
		return model.User{}, errs.ErrUserExists
	}
	f.nextUserID++
	u.UserID = f.nextUserID
	f.users[u.Username] = u
	return u, nil
}

func (f *fakeRepo) GetUser(_ context.Context, userID int) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return model.User{}, errs.ErrNotFound
}

func (f *fakeRepo) UpdateUser(_ context.Context, userID int, req model.UpdateProfileRequest) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for name, u := range f.users {
		if u.UserID != userID {
			continue
		}
		u.Email = req.Email
		u.FirstName = req.FirstName
		u.LastName = req.LastName
		u.Address1 = req.Address1
		u.Address2 = req.Address2
		u.Town = req.Town
		u.State = req.State
		u.Zip = req.Zip
		u.Phone = req.Phone
		u.Profile = req.Profile
		u.FavBook = req.FavBook
		u.FavAuthor = req.FavAuthor
		f.users[name] = u
		return u, nil
	}
	return model.User{}, errs.ErrNotFound
}

func (f *fakeRepo) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return model.User{}, errs.ErrNotFound
}

func (f *fakeRepo) ListUsers(context.Context) ([]model.User, error) {
	return nil, nil
}

func bookFixture(key string) model.Book {
	return model.Book{Key: key, Title: "Dune", Author: "Frank Herbert"}
}

// fakeCatalog stubs the OpenLibrary client and counts outbound calls.
type fakeCatalog struct {
	searchResp  openlibrary.SearchResponse
	searchErr   error
	works       map[string]openlibrary.Work
	workErrs    map[string]error
	searchCalls int32
	workCalls   int32
}

func (f *fakeCatalog) Search(context.Context, string, string) (openlibrary.SearchResponse, error) {
	atomic.AddInt32(&f.searchCalls, 1)
	if f.searchErr != nil {
		return openlibrary.SearchResponse{}, f.searchErr
	}
	return f.searchResp, nil
}

func (f *fakeCatalog) Work(_ context.Context, key string) (openlibrary.Work, error) {
	atomic.AddInt32(&f.workCalls, 1)
	if err, ok := f.workErrs[key]; ok {
		return openlibrary.Work{}, err
	}
	return f.works[key], nil
}

func (f *fakeCatalog) CoverURLs(id string) (string, string) {
	return "http://covers.example/" + id + "-M.jpg", "http://covers.example/" + id + "-S.jpg"
}
