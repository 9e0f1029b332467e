// Package errors provides the structured errors returned by szio.
//
// Every error produced by the data source and filesystem packages is a
// PlatformError: it carries an ErrorCode for programmatic matching, an
// ErrorClassification for retry decisions, a human-readable message, optional
// context metadata and, when wrapping, the original cause. Wrapped causes stay
// reachable through the standard library, so callers can mix both styles:
//
//	src, _ := types.Create("missing.bin")
//	_, err := src.Open()
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // handle missing file
//	}
//	if stderrors.Is(err, fs.ErrNotExist) {
//	    // same condition, matched on the cause
//	}
//
// # Creating errors
//
//	err := errors.New(errors.CodeInvalidInput, "name is required")
//	err := errors.Newf(errors.CodeUnsupportedType, "Unsupported source type: %T", v)
//
// # Wrapping errors
//
//	f, err := fsys.Open(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to open data source")
//	}
//
// Filesystem errors can be mapped onto codes in one step with FromFS, which
// recognizes fs.ErrNotExist, fs.ErrPermission and fs.ErrClosed.
//
// # Context
//
//	err = errors.WithContext(err, "path", "data/input.bin")
//
// # Serialization
//
// ToJSON flattens any error into an ErrorResponse. The cause chain is left
// out so that paths and system messages of wrapped errors are not leaked to
// consumers of the JSON form.
//
// # Immutability
//
// PlatformError values are immutable. WithContext and WithContextMap return
// new errors and never modify their input.
package errors
