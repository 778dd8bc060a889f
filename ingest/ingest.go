package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrSourceUnavailable indicates that the block source failed.
	ErrSourceUnavailable = errors.New("[ingest] Block source unavailable")
	// ErrBadBlockSize indicates a non-positive block size.
	ErrBadBlockSize = errors.New("[ingest] Bad block size")
)

// An Inserter stores a block under its index.
type Inserter interface {
	InsertBlock(index uint64, block []byte) error
}

// InserterFunc adapts a function to the Inserter interface.
type InserterFunc func(index uint64, block []byte) error

func (f InserterFunc) InsertBlock(index uint64, block []byte) error {
	return f(index, block)
}

// Reader cuts r into blocks of blockSize bytes and inserts them into dst
// with consecutive indices starting at first. The last block may be
// shorter. A read error discards the partial block it interrupted.
// It returns the number of inserted blocks.
// ctx is checked between blocks.
func Reader(ctx context.Context, r io.Reader, blockSize int, dst Inserter, first uint64) (uint64, error) {
	if blockSize <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadBlockSize, blockSize)
	}
	buf := make([]byte, blockSize)
	var n uint64
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		read, err := io.ReadFull(r, buf)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return n, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		if read > 0 {
			if ierr := dst.InsertBlock(first+n, buf[:read]); ierr != nil {
				return n, fmt.Errorf("ingest: block %d: %w", first+n, ierr)
			}
			n++
		}
		if err != nil {
			return n, nil
		}
	}
}

// File ingests the file at path with Reader.
func File(ctx context.Context, path string, blockSize int, dst Inserter, first uint64) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()
	return Reader(ctx, f, blockSize, dst, first)
}
