package catalog

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/project/catalog/internal/usecase/catalog/mocks"
)

var errInternal = errors.New("internal error")

// passThroughTransactor runs the function directly, transaction handling is
// covered by the repository package tests.
type passThroughTransactor struct{}

func (passThroughTransactor) WithTx(ctx context.Context, function func(ctx context.Context) error) error {
	return function(ctx)
}

func initCatalogTest(t *testing.T) (context.Context, *mocks.MockAuthorRepository, *mocks.MockBooksRepository, *catalogImpl) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAuthorRepo := mocks.NewMockAuthorRepository(ctrl)
	mockBooksRepo := mocks.NewMockBooksRepository(ctrl)
	ctx := context.Background()

	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}

	uc := New(logger, mockAuthorRepo, mockBooksRepo, passThroughTransactor{})
	return ctx, mockAuthorRepo, mockBooksRepo, uc
}
