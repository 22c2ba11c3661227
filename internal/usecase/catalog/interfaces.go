package catalog

import (
	"context"
	"time"

	"github.com/project/catalog/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/usecase_mocks.go -package=mocks

type (
	AuthorUseCase interface {
		RegisterAuthor(ctx context.Context, name string, birthDate time.Time) (entity.Author, error)
		ChangeAuthorInfo(ctx context.Context, idAuthor int64, newName string, newBirthDate time.Time) (entity.Author, error)
		GetAuthorBooks(ctx context.Context, idAuthor int64) (entity.Author, []entity.Book, error)
	}

	BooksUseCase interface {
		AddBook(ctx context.Context, title string, price int64, publishStatus string, authorIDs []int64) (entity.Book, []entity.Author, error)
		UpdateBook(ctx context.Context, id int64, newTitle string, newPrice int64, newPublishStatus string, newAuthorIDs []int64) (entity.Book, []entity.Author, error)
	}
)
