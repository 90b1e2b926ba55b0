// Package math32 provides a portable scalar math kernel over 32-bit
// floats: rounding, interpolation, and the full transcendental set
// (trigonometric, exponential, logarithmic, hyperbolic, root).
//
// Every transcendental function has two interchangeable realizations
// selected at build time:
//
//   - default: host-delegated, thin float32 wrappers over the platform
//     math package
//   - `-tags puremath`: self-contained, computed from first principles
//     using only add/multiply/compare on float32 (CORDIC sine/cosine,
//     minimax inverse trig polynomials, Taylor/alternating series for
//     exp and ln, Newton iteration for sqrt)
//
// Both realizations satisfy the same domain/range contract and agree
// within ~1e-4 relative tolerance. The self-contained build targets
// freestanding and embedded environments that expose no float
// intrinsics beyond basic arithmetic.
//
// Domain violations are signaled through IEEE sentinels (NaN, ±Inf),
// never through error values: the kernel allocates nothing and must be
// usable where no error-handling machinery exists. Given identical
// inputs and the same build tag, every function is bit-deterministic.
package math32
