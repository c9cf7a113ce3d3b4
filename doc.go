// Package libargon2 implements the memory-hard core of the Argon2
// password-hashing family: allocation of the working matrix, the G
// compression function, reference-block addressing for the data-dependent,
// data-independent, hybrid, and S-box variants, per-lane segment scheduling
// with cross-lane synchronization, and tag finalization.
//
// The command-line driver, benchmark harness, test-vector generator, and
// the underlying Blake2b hash are treated as external collaborators:
// Blake2b is consumed through golang.org/x/crypto/blake2b as a black-box
// fixed/variable-output oracle (see prehash.go).
package libargon2
