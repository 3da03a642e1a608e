// Package checked implements overflow-aware arithmetic on native fixed-width
// integers. Every operation either returns the mathematically correct result,
// representable in the requested result type, or a classified failure. No
// operation ever performs the unchecked native computation before validating
// its operands: boundary conditions are tested first, so no call can wrap,
// truncate or invoke undefined two's-complement behavior.
//
// Operations are pure functions over their explicit inputs. They hold no
// state, never block, and are safe to call concurrently without
// synchronization. The result type R is chosen by the caller via the type
// parameter; both operands are first cast into R (first cast failure wins,
// t before u) and all subsequent checks run in the R domain.
//
// What to do with a failure — panic, clamp, substitute — is entirely the
// caller's policy. This package only detects and classifies.
package checked
