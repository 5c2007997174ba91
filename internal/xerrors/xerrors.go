// Package xerrors draws the line between programming errors and
// domain errors: an unreachable invariant panics through Abort rather
// than threading an error value, since such failures are caller bugs,
// not recoverable outcomes. Domain errors (malformed input, failed
// primality witness, non-residue) stay boolean returns throughout the
// rest of the module and never pass through this package.
package xerrors

import "github.com/cockroachdb/errors"

// Abort reports a programming error: an invariant the caller was
// responsible for upholding (buffer too short, aliasing violation,
// even modulus where an odd one is required) has been violated. It
// never returns; the panic value is a *cockroachdb/errors.error
// carrying a stack trace, following the AssertionFailedf idiom.
func Abort(format string, args ...any) {
	panic(errors.AssertionFailedf(format, args...))
}

// AbortIf calls Abort(format, args...) when cond is true; a small
// guard for the common "check the invariant, then abort" shape.
func AbortIf(cond bool, format string, args ...any) {
	if cond {
		Abort(format, args...)
	}
}

// Wrap and New are re-exported so call sites that do need a real error
// value (I/O in cmd/bnconsole, config parsing) reach for one place
// rather than importing cockroachdb/errors directly, same shape as
// internal/xlog's zerolog facade.
func Wrap(err error, msg string) error                  { return errors.Wrap(err, msg) }
func Wrapf(err error, format string, args ...any) error { return errors.Wrapf(err, format, args...) }
func New(msg string) error                              { return errors.New(msg) }
func Newf(format string, args ...any) error             { return errors.Newf(format, args...) }
