package log

import (
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func InfoAddBook(l *zap.Logger, msg string, traceID, title string, authorIDs []int64, id ...int64) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("book_title", title),
			zap.Int64s("book_authors", authorIDs),
			zap.String("action", AddBook))
		return
	}
	logger.MakeInfo(l, "book was added",
		zap.String("trace_id", traceID),
		zap.Int64("book_id", id[0]),
		zap.String("book_title", title),
		zap.Int64s("book_authors", authorIDs),
		zap.String("action", AddBook))
}

func ErrorAddBook(l *zap.Logger, err error, msg string, traceID, title string, authorIDs []int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.Int64s("book_authors", authorIDs),
		zap.Error(err),
		zap.String("action", AddBook))
}

func InfoUpdateBook(l *zap.Logger, msg string, traceID string, id int64, newTitle string, newAuthorIDs []int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", id),
		zap.String("book_title", newTitle),
		zap.Int64s("book_authors", newAuthorIDs),
		zap.String("action", UpdateBook))
}

func ErrorUpdateBook(l *zap.Logger, err error, msg string, traceID string, id int64, newTitle string, newAuthorIDs []int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", id),
		zap.String("book_title", newTitle),
		zap.Int64s("book_authors", newAuthorIDs),
		zap.Error(err),
		zap.String("action", UpdateBook))
}
