package controller

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/project/catalog/internal/entity"
)

func TestGetAuthorBooks(t *testing.T) {
	t.Parallel()

	author := entity.Author{
		ID:        5,
		Name:      "Italo Calvino",
		BirthDate: time.Date(1923, time.October, 15, 0, 0, 0, 0, time.UTC),
	}

	t.Run("lists author books", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		books := []entity.Book{
			entity.LoadBook(1, "Invisible Cities", 900, entity.Published, []int64{5}),
			entity.LoadBook(2, "The Baron in the Trees", 750, entity.Unpublished, []int64{5}),
		}

		ct.authors.EXPECT().
			GetAuthorBooks(gomock.Any(), int64(5)).
			Return(author, books, nil)

		recorder := ct.do(t, http.MethodGet, "/api/authors/5/books", nil)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp AuthorBooksResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.Equal(t, int64(5), resp.AuthorID)
		require.Equal(t, "Italo Calvino", resp.AuthorName)
		require.Len(t, resp.Books, 2)
		require.Equal(t, "Invisible Cities", resp.Books[0].Title)
		require.Equal(t, "PUBLISHED", resp.Books[0].PublishStatus)
	})

	t.Run("author without books", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		ct.authors.EXPECT().
			GetAuthorBooks(gomock.Any(), int64(5)).
			Return(author, nil, nil)

		recorder := ct.do(t, http.MethodGet, "/api/authors/5/books", nil)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp AuthorBooksResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.Empty(t, resp.Books)
	})

	t.Run("rejects non numeric id", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		recorder := ct.do(t, http.MethodGet, "/api/authors/abc/books", nil)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		require.Equal(t, "BAD_REQUEST", decodeError(t, recorder).ErrorCode)
	})

	t.Run("unknown author", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		ct.authors.EXPECT().
			GetAuthorBooks(gomock.Any(), int64(404)).
			Return(entity.Author{}, nil, entity.ErrAuthorNotFound)

		recorder := ct.do(t, http.MethodGet, "/api/authors/404/books", nil)

		require.Equal(t, http.StatusNotFound, recorder.Code)
		require.Equal(t, "NOT_FOUND", decodeError(t, recorder).ErrorCode)
	})
}
