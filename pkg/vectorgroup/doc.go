// Package vectorgroup decodes IEC transformer vector-group designation
// strings such as "YNd11" or "Dyn5" into winding connection types and the
// clock number.
//
// # Designation Grammar
//
// A designation is three fixed parts with no whitespace:
//
//	<FROM><TO><CLOCK>
//
//	FROM  - primary winding: Y, D or Z, optionally followed by N for an
//	        accessible (grounded) neutral
//	TO    - secondary winding: y, d or z, optionally followed by n
//	CLOCK - phase displacement in multiples of 30 degrees, 0 through 12
//
// The parser is a deterministic left-to-right scan with explicit
// character-class checks, so error reporting stays precise: an
// unrecognized winding letter, a missing descriptor and an out-of-range
// clock each fail with a typed invalid-input error naming the offending
// part of the code.
//
// All functions are pure: the result depends only on the designation
// string and the neutral-grounding flag, and repeated calls are safe from
// any number of goroutines.
package vectorgroup
