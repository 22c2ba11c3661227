package catalog

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
)

func (c *catalogImpl) AddBook(ctx context.Context, title string, price int64, publishStatus string, authorIDs []int64) (entity.Book, []entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoAddBook(c.logger, "start of add book", traceID, title, authorIDs)

	status, err := entity.ParsePublishStatus(publishStatus)

	if log.ErrorAddBook(c.logger, err, "got invalid publish status", traceID, title, authorIDs) {
		span.RecordError(err)
		return entity.Book{}, nil, err
	}

	var (
		book    entity.Book
		authors []entity.Author
	)

	err = c.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error

		authors, txErr = c.resolveAuthors(ctx, authorIDs)

		if txErr != nil {
			return txErr
		}

		book, txErr = entity.NewBook(0, title, price, status, authorIDs)

		if txErr != nil {
			return txErr
		}

		book, txErr = c.booksRepository.SaveBook(ctx, book)
		return txErr
	})

	if log.ErrorAddBook(c.logger, err, "failed add book", traceID, title, authorIDs) {
		span.SetAttributes(attribute.String("book_title", title))
		span.RecordError(err)
		return entity.Book{}, nil, err
	}

	span.SetAttributes(attribute.Int64("book_id", book.ID()))
	log.InfoAddBook(c.logger, "added the book", traceID, title, authorIDs, book.ID())
	return book, authors, nil
}

func (c *catalogImpl) UpdateBook(ctx context.Context, id int64, newTitle string, newPrice int64, newPublishStatus string, newAuthorIDs []int64) (entity.Book, []entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", id))
	log.InfoUpdateBook(c.logger, "start of update book", traceID, id, newTitle, newAuthorIDs)

	status, err := entity.ParsePublishStatus(newPublishStatus)

	if log.ErrorUpdateBook(c.logger, err, "got invalid publish status", traceID, id, newTitle, newAuthorIDs) {
		span.RecordError(err)
		return entity.Book{}, nil, err
	}

	var (
		book    entity.Book
		authors []entity.Author
	)

	err = c.transactor.WithTx(ctx, func(ctx context.Context) error {
		existing, txErr := c.booksRepository.GetBook(ctx, id)

		if txErr != nil {
			return txErr
		}

		authors, txErr = c.resolveAuthors(ctx, newAuthorIDs)

		if txErr != nil {
			return txErr
		}

		book, txErr = existing.ChangeAttributes(entity.BookAttributes{
			Title:     &newTitle,
			Price:     &newPrice,
			Status:    &status,
			AuthorIDs: newAuthorIDs,
		})

		if txErr != nil {
			return txErr
		}

		return c.booksRepository.UpdateBook(ctx, book)
	})

	if log.ErrorUpdateBook(c.logger, err, "failed update book", traceID, id, newTitle, newAuthorIDs) {
		span.RecordError(err)
		return entity.Book{}, nil, err
	}

	log.InfoUpdateBook(c.logger, "updated the book", traceID, id, newTitle, newAuthorIDs)
	return book, authors, nil
}

// resolveAuthors loads the referenced authors and verifies all of them exist.
// The check is by count, duplicates in ids are not deduplicated.
func (c *catalogImpl) resolveAuthors(ctx context.Context, ids []int64) ([]entity.Author, error) {
	authors, err := c.authorRepository.GetAuthorsByIDs(ctx, ids)

	if err != nil {
		return nil, err
	}

	if len(authors) != len(ids) {
		return nil, fmt.Errorf("some of the referenced authors do not exist: %w", entity.ErrAuthorNotFound)
	}

	return authors, nil
}
