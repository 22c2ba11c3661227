package catalog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
)

func (c *catalogImpl) RegisterAuthor(ctx context.Context, name string, birthDate time.Time) (entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoRegisterAuthor(c.logger, "start of register author", traceID, name)

	author, err := c.authorRepository.SaveAuthor(ctx, entity.Author{
		Name:      name,
		BirthDate: birthDate,
	})

	if log.ErrorRegisterAuthor(c.logger, err, "failed register author", traceID, name) {
		span.SetAttributes(attribute.String("author_name", name))
		span.RecordError(err)
		return entity.Author{}, err
	}

	span.SetAttributes(attribute.Int64("author_id", author.ID))
	log.InfoRegisterAuthor(c.logger, "registered the author", traceID, name, author.ID)
	return author, nil
}

func (c *catalogImpl) ChangeAuthorInfo(ctx context.Context, idAuthor int64, newName string, newBirthDate time.Time) (entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("author_id", idAuthor))
	log.InfoChangeAuthorInfo(c.logger, "start of change author info", traceID, idAuthor, newName)

	author := entity.Author{
		ID:        idAuthor,
		Name:      newName,
		BirthDate: newBirthDate,
	}

	err := c.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, txErr := c.authorRepository.GetAuthor(ctx, idAuthor); txErr != nil {
			return txErr
		}

		return c.authorRepository.UpdateAuthor(ctx, author)
	})

	if log.ErrorChangeAuthorInfo(c.logger, err, "failed changing author", traceID, idAuthor, newName) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	log.InfoChangeAuthorInfo(c.logger, "changed the author with id", traceID, idAuthor, newName)
	return author, nil
}

func (c *catalogImpl) GetAuthorBooks(ctx context.Context, idAuthor int64) (entity.Author, []entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("author_id", idAuthor))
	log.InfoGetAuthorBooks(c.logger, "start of getting author books", traceID, idAuthor)

	var (
		author entity.Author
		books  []entity.Book
	)

	err := c.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error

		if author, txErr = c.authorRepository.GetAuthor(ctx, idAuthor); txErr != nil {
			return txErr
		}

		books, txErr = c.booksRepository.GetBooksByAuthor(ctx, idAuthor)
		return txErr
	})

	if log.ErrorGetAuthorBooks(c.logger, err, "failed get author books", traceID, idAuthor) {
		span.RecordError(err)
		return entity.Author{}, nil, err
	}

	log.InfoGetAuthorBooks(c.logger, "got the author books", traceID, idAuthor)
	return author, books, nil
}
