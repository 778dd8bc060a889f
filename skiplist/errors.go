package skiplist

import "errors"

var (
	// ErrInvalidTree indicates a panic due to a broken structural
	// invariant. There is no safe way to continue after it.
	ErrInvalidTree = errors.New("[skiplist] Invalid tree")
	// ErrDuplicateKey is returned by Insert if the key is already stored.
	ErrDuplicateKey = errors.New("[skiplist] Duplicate key")
	// ErrMalformedKey is returned by Insert if the key is not a hex digest
	// strictly between MinKey and MaxKey.
	ErrMalformedKey = errors.New("[skiplist] Malformed key")
	// ErrIndexOutOfRange is returned by ReadBlock for an index
	// that was never inserted.
	ErrIndexOutOfRange = errors.New("[skiplist] Index out of range")
	// ErrNotFound is returned by ProveBlock for an index
	// that was never inserted.
	ErrNotFound = errors.New("[skiplist] Not found")
	// ErrProofTooLong is returned by ProveBlock if the path to the
	// block has more than MaxProofSteps steps. Verify would reject
	// such a proof.
	ErrProofTooLong = errors.New("[skiplist] Proof too long")
	// ErrKeyNotFound is returned by Get for a key that is not stored.
	ErrKeyNotFound = errors.New("[skiplist] Key not found")
	// ErrProofMalformed indicates a structurally invalid proof.
	ErrProofMalformed = errors.New("[skiplist] Malformed proof")
	// ErrMalformedDigest indicates a root digest that is not
	// a hex digest of the hasher's size.
	ErrMalformedDigest = errors.New("[skiplist] Malformed digest")
	// ErrMalformedSignedRoot indicates bytes that do not decode
	// to a signed root.
	ErrMalformedSignedRoot = errors.New("[skiplist] Malformed signed root")
)
