package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/project/catalog/internal/entity"
)

func testAuthors(ids ...int64) []entity.Author {
	authors := make([]entity.Author, 0, len(ids))
	for _, id := range ids {
		authors = append(authors, entity.Author{ID: id, Name: "Author", BirthDate: testBirthDate})
	}
	return authors
}

func TestAddBook(t *testing.T) {
	t.Parallel()

	const title = "Foo"
	authorIDs := []int64{1, 2}

	t.Run("valid add book", func(t *testing.T) {
		t.Parallel()

		ctx, mockAuthorRepo, mockBooksRepo, uc := initCatalogTest(t)

		mockAuthorRepo.EXPECT().GetAuthorsByIDs(gomock.Any(), authorIDs).Return(testAuthors(1, 2), nil)
		mockBooksRepo.EXPECT().SaveBook(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, input entity.Book) (entity.Book, error) {
			require.Equal(t, int64(0), input.ID())
			return input.WithID(10), nil
		})

		book, authors, err := uc.AddBook(ctx, title, 1000, "UNPUBLISHED", authorIDs)
		require.NoError(t, err)
		require.Equal(t, int64(10), book.ID())
		require.Equal(t, title, book.Title())
		require.Equal(t, int64(1000), book.Price())
		require.Equal(t, entity.Unpublished, book.Status())
		require.Equal(t, authorIDs, book.AuthorIDs())
		require.Len(t, authors, 2)
	})

	t.Run("unknown publish status", func(t *testing.T) {
		t.Parallel()

		ctx, _, _, uc := initCatalogTest(t)

		_, _, err := uc.AddBook(ctx, title, 1000, "DRAFT", authorIDs)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("missing author fails by count check", func(t *testing.T) {
		t.Parallel()

		ctx, mockAuthorRepo, _, uc := initCatalogTest(t)

		mockAuthorRepo.EXPECT().GetAuthorsByIDs(gomock.Any(), []int64{1, 999}).Return(testAuthors(1), nil)

		_, _, err := uc.AddBook(ctx, title, 1000, "UNPUBLISHED", []int64{1, 999})
		require.ErrorIs(t, err, entity.ErrAuthorNotFound)
	})

	t.Run("duplicate ids fail the count check", func(t *testing.T) {
		t.Parallel()

		ctx, mockAuthorRepo, _, uc := initCatalogTest(t)

		// The query returns each matching author once, so a duplicated id
		// makes the result shorter than the request.
		mockAuthorRepo.EXPECT().GetAuthorsByIDs(gomock.Any(), []int64{1, 1}).Return(testAuthors(1), nil)

		_, _, err := uc.AddBook(ctx, title, 1000, "UNPUBLISHED", []int64{1, 1})
		require.ErrorIs(t, err, entity.ErrAuthorNotFound)
	})

	t.Run("negative price", func(t *testing.T) {
		t.Parallel()

		ctx, mockAuthorRepo, _, uc := initCatalogTest(t)

		mockAuthorRepo.EXPECT().GetAuthorsByIDs(gomock.Any(), authorIDs).Return(testAuthors(1, 2), nil)

		_, _, err := uc.AddBook(ctx, title, -1, "UNPUBLISHED", authorIDs)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("save with internal error", func(t *testing.T) {
		t.Parallel()

		ctx, mockAuthorRepo, mockBooksRepo, uc := initCatalogTest(t)

		mockAuthorRepo.EXPECT().GetAuthorsByIDs(gomock.Any(), authorIDs).Return(testAuthors(1, 2), nil)
		mockBooksRepo.EXPECT().SaveBook(gomock.Any(), gomock.Any()).Return(entity.Book{}, errInternal)

		_, _, err := uc.AddBook(ctx, title, 1000, "UNPUBLISHED", authorIDs)
		require.ErrorIs(t, err, errInternal)
	})
}

func TestUpdateBook(t *testing.T) {
	t.Parallel()

	const id = int64(10)
	authorIDs := []int64{1}

	existing := func(status entity.PublishStatus) entity.Book {
		return entity.LoadBook(id, "Original", 1000, status, []int64{1, 2})
	}

	t.Run("valid update book", func(t *testing.T) {
		t.Parallel()

		ctx, mockAuthorRepo, mockBooksRepo, uc := initCatalogTest(t)

		mockBooksRepo.EXPECT().GetBook(gomock.Any(), id).Return(existing(entity.Unpublished), nil)
		mockAuthorRepo.EXPECT().GetAuthorsByIDs(gomock.Any(), authorIDs).Return(testAuthors(1), nil)
		mockBooksRepo.EXPECT().UpdateBook(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, updated entity.Book) error {
			require.Equal(t, id, updated.ID())
			require.Equal(t, "Updated", updated.Title())
			require.Equal(t, int64(2000), updated.Price())
			require.Equal(t, entity.Published, updated.Status())
			require.Equal(t, authorIDs, updated.AuthorIDs())
			return nil
		})

		book, authors, err := uc.UpdateBook(ctx, id, "Updated", 2000, "PUBLISHED", authorIDs)
		require.NoError(t, err)
		require.Equal(t, entity.Published, book.Status())
		require.Len(t, authors, 1)
	})

	t.Run("book does not exist", func(t *testing.T) {
		t.Parallel()

		ctx, _, mockBooksRepo, uc := initCatalogTest(t)

		mockBooksRepo.EXPECT().GetBook(gomock.Any(), id).Return(entity.Book{}, entity.ErrBookNotFound)

		_, _, err := uc.UpdateBook(ctx, id, "Updated", 2000, "PUBLISHED", authorIDs)
		require.ErrorIs(t, err, entity.ErrBookNotFound)
	})

	t.Run("missing author fails by count check", func(t *testing.T) {
		t.Parallel()

		ctx, mockAuthorRepo, mockBooksRepo, uc := initCatalogTest(t)

		mockBooksRepo.EXPECT().GetBook(gomock.Any(), id).Return(existing(entity.Unpublished), nil)
		mockAuthorRepo.EXPECT().GetAuthorsByIDs(gomock.Any(), []int64{999}).Return(testAuthors(), nil)

		_, _, err := uc.UpdateBook(ctx, id, "Updated", 2000, "PUBLISHED", []int64{999})
		require.ErrorIs(t, err, entity.ErrAuthorNotFound)
	})

	t.Run("unpublishing a published book is rejected", func(t *testing.T) {
		t.Parallel()

		ctx, mockAuthorRepo, mockBooksRepo, uc := initCatalogTest(t)

		mockBooksRepo.EXPECT().GetBook(gomock.Any(), id).Return(existing(entity.Published), nil)
		mockAuthorRepo.EXPECT().GetAuthorsByIDs(gomock.Any(), authorIDs).Return(testAuthors(1), nil)

		_, _, err := uc.UpdateBook(ctx, id, "Updated", 2000, "UNPUBLISHED", authorIDs)
		require.ErrorIs(t, err, entity.ErrIllegalTransition)
	})

	t.Run("unknown publish status", func(t *testing.T) {
		t.Parallel()

		ctx, _, _, uc := initCatalogTest(t)

		_, _, err := uc.UpdateBook(ctx, id, "Updated", 2000, "DRAFT", authorIDs)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}
