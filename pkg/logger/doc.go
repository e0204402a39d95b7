// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New selects a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which adds attributes pulled from the
// logging context (for example the request id) on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("formrules"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "application rejected",
//	    logger.Valid(false),
//	    logger.Fields(res.Failed...),
//	)
//
// Services usually call NewFromConfig with a Config loaded by pkg/config.
//
// # Options
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment – presets.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel, WithOutput, WithAttr.
//   - WithContextExtractors / WithContextValue – context attributes.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
