// Package: frontierpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Constructors MUST NOT panic at runtime.
package builder

import "errors"

// ErrTooFewVertices indicates a numeric parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates BuildGraph could not apply a constructor,
// e.g. a nil Constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")
