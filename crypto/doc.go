// Package crypto contains the digest primitive shared by the
// authenticated skip list and its clients:
// - hash arbitrary data (`Digest`) with SHA-256 and render it as lowercase hex
// - check that a string is a well-formed hex digest (`ValidDigest`)
// - generate a random slice of bytes
//
// Alternative hash functions are registered in the hasher package,
// and ed25519 signing lives in the sign package.
package crypto
