package log

import (
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func InfoRegisterAuthor(l *zap.Logger, msg string, traceID, name string, id ...int64) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("author_name", name),
			zap.String("action", RegisterAuthor))
		return
	}
	logger.MakeInfo(l, "author was registered",
		zap.String("trace_id", traceID),
		zap.Int64("author_id", id[0]),
		zap.String("author_name", name),
		zap.String("action", RegisterAuthor))
}

func ErrorRegisterAuthor(l *zap.Logger, err error, msg string, traceID, name string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", name),
		zap.Error(err),
		zap.String("action", RegisterAuthor))
}

func InfoChangeAuthorInfo(l *zap.Logger, msg string, traceID string, id int64, newName string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", id),
		zap.String("author_name", newName),
		zap.String("action", ChangeAuthorInfo))
}

func ErrorChangeAuthorInfo(l *zap.Logger, err error, msg string, traceID string, id int64, newName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", id),
		zap.String("author_name", newName),
		zap.Error(err),
		zap.String("action", ChangeAuthorInfo))
}

func InfoGetAuthorBooks(l *zap.Logger, msg string, traceID string, authorID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.String("action", GetAuthorBooks))
}

func ErrorGetAuthorBooks(l *zap.Logger, err error, msg string, traceID string, authorID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.Error(err),
		zap.String("action", GetAuthorBooks))
}
