package repository

import (
	"context"

	"github.com/project/catalog/internal/entity"
)

type (
	AuthorRepository interface {
		SaveAuthor(ctx context.Context, author entity.Author) (entity.Author, error)
		UpdateAuthor(ctx context.Context, updAuthor entity.Author) error
		GetAuthor(ctx context.Context, idAuthor int64) (entity.Author, error)
		GetAuthorsByIDs(ctx context.Context, ids []int64) ([]entity.Author, error)
	}

	BooksRepository interface {
		SaveBook(ctx context.Context, book entity.Book) (entity.Book, error)
		UpdateBook(ctx context.Context, updBook entity.Book) error
		GetBook(ctx context.Context, idBook int64) (entity.Book, error)
		GetBooksByAuthor(ctx context.Context, idAuthor int64) ([]entity.Book, error)
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)
