package model

import (
	"time"
)

type Location string

const (
	LocationOnShelf    Location = "On Shelf"
	LocationRequested  Location = "Requested"
	LocationCheckedOut Location = "Checked Out"
	LocationOffShelf   Location = "Off Shelf"
)

type Condition string

const (
	ConditionLikeNew    Condition = "Like New"
	ConditionWorn       Condition = "Worn"
	ConditionHeldByTape Condition = "Held by Tape"
)

type Book struct {
	BookID        int     `json:"bookId" db:"book_id"`
	Key           string  `json:"key" db:"key"`
	Title         string  `json:"title" db:"title"`
	Author        string  `json:"author" db:"author"`
	Description   string  `json:"description" db:"description"`
	Subjects      string  `json:"subjects" db:"subjects"`
	CoverImgURLM  string  `json:"coverImgUrlM" db:"cover_img_url_m"`
	CoverImgURLS  string  `json:"coverImgUrlS" db:"cover_img_url_s"`
	PublishedYear int     `json:"publishedYear" db:"published_year"`
	AvgRating     float64 `json:"avgRating" db:"avg_rating"`
}

type User struct {
	UserID    int     `json:"userId" db:"user_id"`
	Username  string  `json:"username" db:"username"`
	Password  string  `json:"-" db:"password"`
	FirstName string  `json:"firstName" db:"first_name"`
	LastName  string  `json:"lastName" db:"last_name"`
	Address1  string  `json:"address1" db:"address1"`
	Address2  string  `json:"address2" db:"address2"`
	Town      string  `json:"town" db:"town"`
	State     string  `json:"state" db:"state"`
	Zip       string  `json:"zip" db:"zip"`
	Phone     string  `json:"phone" db:"phone"`
	Email     string  `json:"email" db:"email"`
	Profile   string  `json:"profile" db:"profile"`
	FavBook   string  `json:"favBook" db:"fav_book"`
	FavAuthor string  `json:"favAuthor" db:"fav_author"`
	AvgRating float64 `json:"avgRating" db:"avg_rating"`
}

// ShelfStatus is one person's copy of one book and its lending state.
// Identity is the (book, owner) pair.
type ShelfStatus struct {
	BookID    int       `json:"bookId" db:"book_id"`
	UserID    int       `json:"userId" db:"user_id"`
	Location  Location  `json:"location" db:"location"`
	Condition Condition `json:"condition" db:"condition"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// BorrowRecord links a borrower to a specific owned copy. Rejection deletes
// it; re-shelving the copy marks it resolved, which keeps it as borrow
// history and frees the copy for the next lending cycle.
type BorrowRecord struct {
	ID         int    `json:"-" db:"id"`
	RecordUid  string `json:"recordUid" db:"record_uid"`
	BookID     int    `json:"bookId" db:"book_id"`
	OwnerID    int    `json:"ownerId" db:"owner_id"`
	BorrowerID int    `json:"borrowerId" db:"borrower_id"`
	Resolved   bool   `json:"-" db:"resolved"`
}

type BookRating struct {
	BookID int    `json:"bookId" db:"book_id"`
	UserID int    `json:"userId" db:"user_id"`
	Rating int    `json:"rating" db:"rating"`
	Review string `json:"review" db:"review"`
}

type LenderRating struct {
	LenderID int    `json:"lenderId" db:"lender_id"`
	RaterID  int    `json:"raterId" db:"rater_id"`
	Rating   int    `json:"rating" db:"rating"`
	Review   string `json:"review" db:"review"`
}

// CatalogEntry is the serialized ingestion result returned per matched book,
// whether or not the entry was newly persisted.
type CatalogEntry struct {
	Key              string `json:"key"`
	Title            string `json:"title"`
	Author           string `json:"author"`
	Description      string `json:"description"`
	Subjects         string `json:"subjects"`
	CoverImgURLM     string `json:"coverImgUrlM"`
	CoverImgURLS     string `json:"coverImgUrlS"`
	FirstPublishYear int    `json:"firstPublishYear"`
}

// ShelfItem is a shelf row joined with its book for listing surfaces.
type ShelfItem struct {
	ShelfStatus
	Key    string  `json:"key" db:"key"`
	Title  string  `json:"title" db:"title"`
	Author string  `json:"author" db:"author"`
	Avg    float64 `json:"avgRating" db:"avg_rating"`
}

// BookInfo aggregates one book page: the book, every copy, and its reviews.
type BookInfo struct {
	Book     Book          `json:"book"`
	Statuses []ShelfStatus `json:"statuses"`
	Ratings  []BookRating  `json:"ratings"`
}

// RequestsView is everything relevant to one user on the requests page: their
// own copies with pending or approved requests, plus borrow records they are
// party to on either side.
type RequestsView struct {
	Statuses []ShelfItem    `json:"statuses"`
	Borrows  []BorrowRecord `json:"borrows"`
}

type RegisterRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address1  string `json:"address1" validate:"required"`
	Address2  string `json:"address2"`
	Town      string `json:"town" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
	Phone     string `json:"phone"`
	Profile   string `json:"profile"`
	FavBook   string `json:"favBook"`
	FavAuthor string `json:"favAuthor"`
}

// UpdateProfileRequest carries every editable profile attribute; username and
// password are fixed at registration.
type UpdateProfileRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address1  string `json:"address1" validate:"required"`
	Address2  string `json:"address2"`
	Town      string `json:"town" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
	Phone     string `json:"phone"`
	Profile   string `json:"profile"`
	FavBook   string `json:"favBook"`
	FavAuthor string `json:"favAuthor"`
}

type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	ExpiresIn   int    `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

type AddShelfRequest struct {
	Key string `json:"key" validate:"required"`
}

type UpdateStatusRequest struct {
	Location  Location  `json:"location" validate:"required,oneof='On Shelf' 'Requested' 'Checked Out' 'Off Shelf'"`
	Condition Condition `json:"condition" validate:"required,oneof='Like New' 'Worn' 'Held by Tape'"`
}

type RatingRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review"`
}

type RatingResponse struct {
	AvgRating float64 `json:"avgRating"`
}

// LendingEvent is published to kafka after every successful transition.
type LendingEvent struct {
	Type       string    `json:"type"`
	BookID     int       `json:"bookId"`
	OwnerID    int       `json:"ownerId"`
	BorrowerID int       `json:"borrowerId,omitempty"`
	At         time.Time `json:"at"`
}

// RatingMsg is a rating submission arriving over kafka.
type RatingMsg struct {
	BookID  int    `json:"bookId"`
	RaterID int    `json:"raterId"`
	Rating  int    `json:"rating"`
	Review  string `json:"review"`
}
