package fn

import "github.com/cespare/xxhash/v2"

// Shard routes every call to one of its operands, chosen by hashing the
// key derived from the argument. The same key always reaches the same
// operand, so per-key behavior stays stable as long as the operand list
// does. At least one operand is required by the signature.
func Shard[A, R any](keyFn func(A) string, f func(A) R, rest ...func(A) R) func(A) R {
	fns := append([]func(A) R{f}, rest...)
	n := uint64(len(fns))
	return func(a A) R {
		idx := xxhash.Sum64String(keyFn(a)) % n
		return fns[idx](a)
	}
}
