package entity

import (
	"fmt"
	"slices"
)

type PublishStatus string

const (
	Unpublished PublishStatus = "UNPUBLISHED"
	Published   PublishStatus = "PUBLISHED"
)

func ParsePublishStatus(s string) (PublishStatus, error) {
	switch status := PublishStatus(s); status {
	case Unpublished, Published:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown publish status %q", ErrInvalidArgument, s)
	}
}

// Book is the aggregate root of the catalog. Every way of obtaining a Book
// value, except LoadBook, runs the invariant checks, so an invalid aggregate
// can not leak out of this package.
type Book struct {
	id        int64
	title     string
	price     int64
	status    PublishStatus
	authorIDs []int64
}

// NewBook validates price and author list before constructing the aggregate.
// A freshly created book has no previous status, so no transition is checked.
func NewBook(id int64, title string, price int64, status PublishStatus, authorIDs []int64) (Book, error) {
	if err := validateInvariant(price, authorIDs); err != nil {
		return Book{}, err
	}

	return Book{
		id:        id,
		title:     title,
		price:     price,
		status:    status,
		authorIDs: slices.Clone(authorIDs),
	}, nil
}

// LoadBook rehydrates an aggregate from storage without re-running the
// creation invariants. Rows already passed them on the way in; a book whose
// junction rows are gone is tolerated with an empty author list.
func LoadBook(id int64, title string, price int64, status PublishStatus, authorIDs []int64) Book {
	return Book{
		id:        id,
		title:     title,
		price:     price,
		status:    status,
		authorIDs: slices.Clone(authorIDs),
	}
}

func (b Book) ID() int64 {
	return b.id
}

func (b Book) Title() string {
	return b.title
}

func (b Book) Price() int64 {
	return b.price
}

func (b Book) Status() PublishStatus {
	return b.status
}

func (b Book) AuthorIDs() []int64 {
	return slices.Clone(b.authorIDs)
}

// ChangeStatus returns a copy of the book with the new status. The transition
// is one-directional: a published book can not be unpublished.
func (b Book) ChangeStatus(next PublishStatus) (Book, error) {
	if b.status == Published && next == Unpublished {
		return Book{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, b.status, next)
	}

	b.status = next

	return b, nil
}

// BookAttributes carries the candidate values for ChangeAttributes. A nil
// field keeps the current value.
type BookAttributes struct {
	Title     *string
	Price     *int64
	Status    *PublishStatus
	AuthorIDs []int64
}

// ChangeAttributes applies all requested changes at once or none of them.
// The invariants are checked against the candidate values first, the status
// transition last, so an illegal transition never drops the other changes
// silently.
func (b Book) ChangeAttributes(attrs BookAttributes) (Book, error) {
	title := b.title
	if attrs.Title != nil {
		title = *attrs.Title
	}

	price := b.price
	if attrs.Price != nil {
		price = *attrs.Price
	}

	status := b.status
	if attrs.Status != nil {
		status = *attrs.Status
	}

	authorIDs := b.authorIDs
	if attrs.AuthorIDs != nil {
		authorIDs = attrs.AuthorIDs
	}

	if err := validateInvariant(price, authorIDs); err != nil {
		return Book{}, err
	}

	next := Book{
		id:        b.id,
		title:     title,
		price:     price,
		status:    b.status,
		authorIDs: slices.Clone(authorIDs),
	}

	return next.ChangeStatus(status)
}

// WithID reassigns the identity only. The store calls it once, right after
// insertion, to attach the id Postgres assigned.
func (b Book) WithID(id int64) Book {
	b.id = id
	return b
}

func validateInvariant(price int64, authorIDs []int64) error {
	if price < 0 {
		return fmt.Errorf("%w: price must be non-negative, got %d", ErrInvalidArgument, price)
	}

	if len(authorIDs) == 0 {
		return fmt.Errorf("%w: a book needs at least one author", ErrInvalidArgument)
	}

	return nil
}
