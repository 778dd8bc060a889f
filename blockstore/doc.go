/*
Package blockstore serves an authenticated skip list to concurrent
callers.

A Store holds one list behind a readers-writer lock: insertions and
ingestion take it exclusively, reads, proofs and root queries share it.
Ingestion appends blocks after the highest index stored so far and
takes the write lock once per block. Snapshot returns an independent
copy that can be read without any lock.
*/
package blockstore
