// Package logger builds *slog.Logger values from functional options and
// provides attribute constructors with consistent keys.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler depending on the
// configured Format and applies static attributes to every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "datavalidator"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("check is not usable",
//	    logger.Field("email"),
//	    logger.Check("emial"),
//	    logger.Error(err),
//	)
//
// Error and Errors return an empty Attr for nil errors, so they can be
// passed without a nil check.
package logger
