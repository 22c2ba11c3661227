package controller

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/project/catalog/internal/entity"
)

func TestCreateAuthor(t *testing.T) {
	t.Parallel()

	birthDate := time.Date(1960, time.March, 14, 0, 0, 0, 0, time.UTC)

	t.Run("registers author", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		ct.authors.EXPECT().
			RegisterAuthor(gomock.Any(), "Kurt Vonnegut", birthDate).
			Return(entity.Author{ID: 7, Name: "Kurt Vonnegut", BirthDate: birthDate}, nil)

		recorder := ct.do(t, http.MethodPost, "/api/authors",
			AuthorRequest{Name: "Kurt Vonnegut", BirthDate: "1960-03-14"})

		require.Equal(t, http.StatusCreated, recorder.Code)
		requireFieldValue(t, recorder, "id", 7)
		requireFieldValue(t, recorder, "name", "Kurt Vonnegut")
		requireFieldValue(t, recorder, "birthDate", "1960-03-14")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		recorder := ct.do(t, http.MethodPost, "/api/authors",
			AuthorRequest{Name: "", BirthDate: "1960-03-14"})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeError(t, recorder)
		require.Equal(t, "VALIDATION_FAILED", resp.ErrorCode)
		require.NotEmpty(t, resp.Errors)
	})

	t.Run("rejects future birth date", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		future := time.Now().UTC().AddDate(1, 0, 0).Format(dateLayout)
		recorder := ct.do(t, http.MethodPost, "/api/authors",
			AuthorRequest{Name: "Kurt Vonnegut", BirthDate: future})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		require.Equal(t, "VALIDATION_FAILED", decodeError(t, recorder).ErrorCode)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		recorder := ct.do(t, http.MethodPost, "/api/authors", "not an object")

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		require.Equal(t, "VALIDATION_FAILED", decodeError(t, recorder).ErrorCode)
	})

	t.Run("maps internal error", func(t *testing.T) {
		t.Parallel()
		ct := initControllerTest(t)

		ct.authors.EXPECT().
			RegisterAuthor(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entity.Author{}, errInternal)

		recorder := ct.do(t, http.MethodPost, "/api/authors",
			AuthorRequest{Name: "Kurt Vonnegut", BirthDate: "1960-03-14"})

		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		resp := decodeError(t, recorder)
		require.Equal(t, "INTERNAL_SERVER_ERROR", resp.ErrorCode)
		require.NotContains(t, resp.Message, errInternal.Error())
	})
}
