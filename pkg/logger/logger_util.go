package logger

import "go.uber.org/zap"

// CheckError reports whether err is set and, when a logger is configured for
// the calling layer, logs it. Layers pass a nil logger when their logging is
// disabled in the config.
func CheckError(err error, logger *zap.Logger, msg string, fields ...zap.Field) bool {
	if err != nil {
		if logger != nil {
			logger.Error(msg, fields...)
		}
		return true
	}
	return false
}

// MakeInfo logs at info level, tolerating a nil logger.
func MakeInfo(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}
