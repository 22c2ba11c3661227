package controller

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/project/catalog/internal/entity"
	"go.uber.org/zap"
)

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

type implementation struct {
	logger        *zap.Logger
	booksUseCase  BooksUseCase
	authorUseCase AuthorUseCase
}

func New(
	logger *zap.Logger,
	booksUseCase BooksUseCase,
	authorUseCase AuthorUseCase,
) *implementation {
	return &implementation{
		logger:        logger,
		booksUseCase:  booksUseCase,
		authorUseCase: authorUseCase,
	}
}

func (i *implementation) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api")

	api.POST("/authors", i.CreateAuthor)
	api.PUT("/authors/:id", i.UpdateAuthor)
	api.GET("/authors/:id/books", i.GetAuthorBooks)

	api.POST("/books", i.CreateBook)
	api.PUT("/books/:id", i.UpdateBook)
}
