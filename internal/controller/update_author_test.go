package controller

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/project/catalog/internal/entity"
)

func TestUpdateAuthor(t *testing.T) {
	t.Parallel()

	birthDate := time.Date(1923, time.November, 20, 0, 0, 0, 0, time.UTC)

	t.Run("updates author", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		ct.authors.EXPECT().
			ChangeAuthorInfo(gomock.Any(), int64(3), "Nadine Gordimer", birthDate).
			Return(entity.Author{ID: 3, Name: "Nadine Gordimer", BirthDate: birthDate}, nil)

		recorder := ct.do(t, http.MethodPut, "/api/authors/3",
			AuthorRequest{Name: "Nadine Gordimer", BirthDate: "1923-11-20"})

		require.Equal(t, http.StatusOK, recorder.Code)
		requireFieldValue(t, recorder, "id", 3)
		requireFieldValue(t, recorder, "name", "Nadine Gordimer")
	})

	t.Run("rejects non numeric id", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		recorder := ct.do(t, http.MethodPut, "/api/authors/abc",
			AuthorRequest{Name: "Nadine Gordimer", BirthDate: "1923-11-20"})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		require.Equal(t, "BAD_REQUEST", decodeError(t, recorder).ErrorCode)
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		recorder := ct.do(t, http.MethodPut, "/api/authors/3",
			AuthorRequest{Name: "", BirthDate: ""})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		require.Equal(t, "VALIDATION_FAILED", decodeError(t, recorder).ErrorCode)
	})

	t.Run("unknown author", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		ct.authors.EXPECT().
			ChangeAuthorInfo(gomock.Any(), int64(404), gomock.Any(), gomock.Any()).
			Return(entity.Author{}, entity.ErrAuthorNotFound)

		recorder := ct.do(t, http.MethodPut, "/api/authors/404",
			AuthorRequest{Name: "Nadine Gordimer", BirthDate: "1923-11-20"})

		require.Equal(t, http.StatusNotFound, recorder.Code)
		resp := decodeError(t, recorder)
		require.Equal(t, "NOT_FOUND", resp.ErrorCode)
		require.Contains(t, resp.Message, "author not found")
	})
}
