// Package logger provides slog attribute helpers shared across the SDK.
//
// Helpers follow the empty-Attr pattern: nil or zero input yields an empty
// attribute that slog drops silently, so call sites can pass values without
// guarding:
//
//	log.InfoContext(ctx, "request completed",
//		logger.Method(http.MethodGet),
//		logger.Path("/courses"),
//		logger.StatusCode(resp.StatusCode),
//		logger.Elapsed(start),
//		logger.Error(err), // no-op when err is nil
//	)
package logger
