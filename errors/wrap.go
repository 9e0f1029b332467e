package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Wrap wraps an error with a code and message while preserving the original
// error for errors.Is and errors.As.
//
// If err is already a PlatformError its classification is kept; otherwise the
// default classification for code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	info, err := fsys.Stat(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to stat data source")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in one step.
// The context map is copied.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeIO, "read failed", map[string]interface{}{
//	    "path": path,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = copyContext(ctx)
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        contextCopy,
		cause:          err,
	}
}

// FromFS wraps a filesystem error, choosing the code from the io/fs sentinel
// it matches:
//
//   - fs.ErrNotExist   -> CodeNotFound
//   - fs.ErrPermission -> CodeForbidden
//   - fs.ErrClosed     -> CodeClosed
//   - anything else    -> CodeIO
//
// Returns nil if err is nil.
func FromFS(err error, message string) PlatformError {
	if err == nil {
		return nil
	}

	return Wrap(err, fsCode(err), message)
}

// FromFSf is FromFS with a formatted message.
func FromFSf(err error, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}

	return FromFS(err, fmt.Sprintf(format, args...))
}

func fsCode(err error) ErrorCode {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case errors.Is(err, fs.ErrPermission):
		return CodeForbidden
	case errors.Is(err, fs.ErrClosed):
		return CodeClosed
	default:
		return CodeIO
	}
}
