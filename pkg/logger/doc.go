// Package logger builds *slog.Logger values for the client and its CLI.
//
// New takes functional options for format, level, static attributes and
// context extractors. Extractors run on every record, which is how the
// request id of an outbound API call ends up in the log line of the hook
// that handled it:
//
//	log := logger.New(
//		logger.WithDevelopment("learnzone"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Attribute helpers (Error, Component, Method, Status, QueryKey, Transition
// and friends) keep key names consistent across packages. Helpers that take
// an optional value return an empty slog.Attr when it is missing, so callers
// do not need a nil check:
//
//	log.WarnContext(ctx, "logout cleanup failed", logger.Error(err))
package logger
