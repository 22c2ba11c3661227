package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/pkg/logger"
	"github.com/samber/lo"
)

const errForeignKeyViolation = "23503"

// DataBase is the subset of pgxpool.Pool the repository relies on. Tests
// substitute a pgxmock pool.
type DataBase interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// querier is satisfied by both DataBase and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var _ AuthorRepository = (*postgresRepository)(nil)
var _ BooksRepository = (*postgresRepository)(nil)

type postgresRepository struct {
	logger *zap.Logger
	db     DataBase
}

func New(logger *zap.Logger, db DataBase) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

// engine returns the transaction injected by the transactor when there is
// one, the pool otherwise. Single-statement operations use it directly.
func (p *postgresRepository) engine(ctx context.Context) querier {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}

	return p.db
}

// inTx runs fn on the context transaction when the transactor opened one,
// or wraps fn in its own transaction. Multi-statement operations on the book
// and junction tables always go through here, so a partial write is never
// visible outside the transaction.
func (p *postgresRepository) inTx(ctx context.Context, fn func(tx querier) error) (txErr error) {
	if tx, err := extractTx(ctx); err == nil {
		return fn(tx)
	}

	tx, err := p.db.Begin(ctx)

	if err != nil {
		return err
	}

	defer func() {
		if txErr != nil {
			err = tx.Rollback(ctx)
			logger.CheckError(err, p.logger, "failed rollback of tx", zap.Error(err))
			return
		}

		txErr = tx.Commit(ctx)
	}()

	return fn(tx)
}

func (p *postgresRepository) SaveAuthor(ctx context.Context, author entity.Author) (entity.Author, error) {
	const query = `
INSERT INTO author (name, birth_date)
VALUES ($1, $2)
RETURNING id
`
	result := entity.Author{
		Name:      author.Name,
		BirthDate: author.BirthDate,
	}

	err := p.engine(ctx).QueryRow(ctx, query, author.Name, author.BirthDate).Scan(&result.ID)

	if err != nil {
		return entity.Author{}, err
	}

	return result, nil
}

func (p *postgresRepository) UpdateAuthor(ctx context.Context, updAuthor entity.Author) error {
	const query = `
UPDATE author SET name=$1, birth_date=$2
WHERE id=$3
`
	// A missing id is a silent no-op, the use case checks existence first.
	_, err := p.engine(ctx).Exec(ctx, query, updAuthor.Name, updAuthor.BirthDate, updAuthor.ID)

	return err
}

func (p *postgresRepository) GetAuthor(ctx context.Context, idAuthor int64) (entity.Author, error) {
	const query = `
SELECT id, name, birth_date
FROM author
WHERE id = $1
`
	var author entity.Author
	err := p.engine(ctx).QueryRow(ctx, query, idAuthor).
		Scan(&author.ID, &author.Name, &author.BirthDate)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Author{}, entity.ErrAuthorNotFound
	}

	if err != nil {
		return entity.Author{}, err
	}

	return author, nil
}

func (p *postgresRepository) GetAuthorsByIDs(ctx context.Context, ids []int64) ([]entity.Author, error) {
	if len(ids) == 0 {
		return []entity.Author{}, nil
	}

	const query = `
SELECT id, name, birth_date
FROM author
WHERE id = ANY($1)
`
	rows, err := p.engine(ctx).Query(ctx, query, ids)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	authors := make([]entity.Author, 0, len(ids))

	for rows.Next() {
		var author entity.Author

		if err = rows.Scan(&author.ID, &author.Name, &author.BirthDate); err != nil {
			return nil, err
		}

		authors = append(authors, author)
	}

	return authors, rows.Err()
}

func (p *postgresRepository) SaveBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	const queryBook = `
INSERT INTO book (title, price, publish_status)
VALUES ($1, $2, $3)
RETURNING id
`
	const queryBookAuthor = `
INSERT INTO book_author (book_id, author_id)
VALUES ($1, $2)
`
	var bookID int64

	err := p.inTx(ctx, func(tx querier) error {
		err := tx.QueryRow(ctx, queryBook, book.Title(), book.Price(), string(book.Status())).Scan(&bookID)

		if err != nil {
			return err
		}

		for _, authorID := range book.AuthorIDs() {
			if _, err = tx.Exec(ctx, queryBookAuthor, bookID, authorID); err != nil {
				var pgErr *pgconn.PgError

				if errors.As(err, &pgErr) && pgErr.Code == errForeignKeyViolation {
					return fmt.Errorf("author with id %d does not exist: %w",
						authorID, entity.ErrAuthorNotFound)
				}

				return err
			}
		}

		return nil
	})

	if err != nil {
		return entity.Book{}, err
	}

	return book.WithID(bookID), nil
}

func (p *postgresRepository) UpdateBook(ctx context.Context, updBook entity.Book) error {
	const queryBook = `
UPDATE book SET title=$1, price=$2, publish_status=$3
WHERE id=$4
`
	const queryDeleteOldAuthors = `
DELETE FROM book_author WHERE book_id=$1
`
	const queryBookAuthor = `
INSERT INTO book_author (book_id, author_id)
VALUES ($1, $2)
`
	bookID := updBook.ID()

	return p.inTx(ctx, func(tx querier) error {
		_, err := tx.Exec(ctx, queryBook, updBook.Title(), updBook.Price(), string(updBook.Status()), bookID)

		if err != nil {
			return err
		}

		// The junction rows are replaced wholesale instead of diffed, the
		// relationship is small enough that recomputing it is not worth it.
		if _, err = tx.Exec(ctx, queryDeleteOldAuthors, bookID); err != nil {
			return err
		}

		for _, authorID := range updBook.AuthorIDs() {
			if _, err = tx.Exec(ctx, queryBookAuthor, bookID, authorID); err != nil {
				var pgErr *pgconn.PgError

				if errors.As(err, &pgErr) && pgErr.Code == errForeignKeyViolation {
					return fmt.Errorf("author with id %d does not exist: %w",
						authorID, entity.ErrAuthorNotFound)
				}

				return err
			}
		}

		return nil
	})
}

func (p *postgresRepository) GetBook(ctx context.Context, idBook int64) (entity.Book, error) {
	const queryBook = `
SELECT id, title, price, publish_status
FROM book
WHERE id = $1
`
	const queryAuthors = `
SELECT author_id
FROM book_author
WHERE book_id = $1
`
	var row bookRow
	var authorIDs []int64

	err := p.inTx(ctx, func(tx querier) error {
		err := tx.QueryRow(ctx, queryBook, idBook).
			Scan(&row.id, &row.title, &row.price, &row.status)

		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ErrBookNotFound
		}

		if err != nil {
			return err
		}

		rows, err := tx.Query(ctx, queryAuthors, idBook)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			var authorID int64

			if err = rows.Scan(&authorID); err != nil {
				return err
			}

			authorIDs = append(authorIDs, authorID)
		}

		return rows.Err()
	})

	if err != nil {
		return entity.Book{}, err
	}

	return entity.LoadBook(row.id, row.title, row.price, entity.PublishStatus(row.status), authorIDs), nil
}

type bookRow struct {
	id     int64
	title  string
	price  int64
	status string
}

func (p *postgresRepository) GetBooksByAuthor(ctx context.Context, idAuthor int64) ([]entity.Book, error) {
	const queryBooks = `
SELECT b.id, b.title, b.price, b.publish_status
FROM book b
JOIN book_author ba ON b.id = ba.book_id
WHERE ba.author_id = $1
`
	const queryAuthors = `
SELECT book_id, author_id
FROM book_author
WHERE book_id = ANY($1)
`
	var found []bookRow
	authorsByBook := make(map[int64][]int64)

	err := p.inTx(ctx, func(tx querier) error {
		rows, err := tx.Query(ctx, queryBooks, idAuthor)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			var row bookRow

			if err = rows.Scan(&row.id, &row.title, &row.price, &row.status); err != nil {
				return err
			}

			found = append(found, row)
		}

		if err = rows.Err(); err != nil {
			return err
		}

		if len(found) == 0 {
			return nil
		}

		// A book linked to the queried author may link to other authors as
		// well. One grouped query over all found books rebuilds the complete
		// author list of each.
		bookIDs := lo.Map(found, func(row bookRow, _ int) int64 { return row.id })
		junction, err := tx.Query(ctx, queryAuthors, bookIDs)

		if err != nil {
			return err
		}

		defer junction.Close()

		for junction.Next() {
			var bookID, authorID int64

			if err = junction.Scan(&bookID, &authorID); err != nil {
				return err
			}

			authorsByBook[bookID] = append(authorsByBook[bookID], authorID)
		}

		return junction.Err()
	})

	if err != nil {
		return nil, err
	}

	return lo.Map(found, func(row bookRow, _ int) entity.Book {
		return entity.LoadBook(row.id, row.title, row.price, entity.PublishStatus(row.status), authorsByBook[row.id])
	}), nil
}
