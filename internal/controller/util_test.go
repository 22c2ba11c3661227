package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/project/catalog/internal/usecase/catalog/mocks"
)

var errInternal = errors.New("internal error")

type controllerTest struct {
	router  *gin.Engine
	authors *mocks.MockAuthorUseCase
	books   *mocks.MockBooksUseCase
}

func initControllerTest(t *testing.T) controllerTest {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	authors := mocks.NewMockAuthorUseCase(ctrl)
	books := mocks.NewMockBooksUseCase(ctrl)

	router := gin.New()
	New(nil, books, authors).RegisterRoutes(router)

	return controllerTest{
		router:  router,
		authors: authors,
		books:   books,
	}
}

func (ct controllerTest) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	ct.router.ServeHTTP(recorder, req)

	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	return resp
}

func requireFieldValue(t *testing.T, recorder *httptest.ResponseRecorder, field string, want any) {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	require.EqualValues(t, want, payload[field])
}
