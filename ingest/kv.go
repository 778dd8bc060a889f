package ingest

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/coniks-sys/authskiplist/storage/kv"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// BlockIdentifier prefixes the keys of stored blocks.
const BlockIdentifier = 'B'

var blockPrefix = []byte{BlockIdentifier}

// BlockKey returns the database key of the block at index:
// BlockIdentifier followed by the big-endian index, so the
// database orders blocks by index.
func BlockKey(index uint64) []byte {
	key := make([]byte, 1+8)
	key[0] = BlockIdentifier
	binary.BigEndian.PutUint64(key[1:], index)
	return key
}

// BlockIndex decodes a key written by BlockKey.
func BlockIndex(key []byte) (uint64, error) {
	if len(key) != 1+8 || key[0] != BlockIdentifier {
		return 0, kv.ErrorBadBufferLength
	}
	return binary.BigEndian.Uint64(key[1:]), nil
}

// KV inserts every block stored in db into dst, in index order.
// It returns the number of inserted blocks.
func KV(ctx context.Context, db kv.DB, dst Inserter) (uint64, error) {
	iter := db.NewIterator(util.BytesPrefix(blockPrefix))
	defer iter.Release()

	var n uint64
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		index, err := BlockIndex(iter.Key())
		if err != nil {
			return n, fmt.Errorf("%w: key %x: %v", ErrSourceUnavailable, iter.Key(), err)
		}
		if err := dst.InsertBlock(index, iter.Value()); err != nil {
			return n, fmt.Errorf("ingest: block %d: %w", index, err)
		}
		n++
	}
	if err := iter.Error(); err != nil {
		return n, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return n, nil
}

// NextIndex returns the index after the highest block stored in db,
// or 0 if db holds no block.
func NextIndex(db kv.DB) (uint64, error) {
	iter := db.NewIterator(util.BytesPrefix(blockPrefix))
	defer iter.Release()
	if !iter.Last() {
		return 0, iter.Error()
	}
	index, err := BlockIndex(iter.Key())
	if err != nil {
		return 0, err
	}
	return index + 1, nil
}

// DefaultBatchSize is the number of blocks a KVSink buffers
// before writing them out.
const DefaultBatchSize = 256

// A KVSink is an Inserter that writes blocks into a kv.DB under
// BlockKey(index), so a later KV call can replay them.
// Blocks are written in batches; call Flush after the last one.
type KVSink struct {
	db    kv.DB
	batch kv.Batch
	size  int
}

// NewKVSink returns a sink writing to db in batches of size blocks,
// or DefaultBatchSize if size <= 0.
func NewKVSink(db kv.DB, size int) *KVSink {
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &KVSink{db: db, batch: db.NewBatch(), size: size}
}

func (s *KVSink) InsertBlock(index uint64, block []byte) error {
	s.batch.Put(BlockKey(index), append([]byte(nil), block...))
	if s.batch.Len() >= s.size {
		return s.Flush()
	}
	return nil
}

// Flush writes the buffered blocks.
func (s *KVSink) Flush() error {
	if s.batch.Len() == 0 {
		return nil
	}
	if err := s.db.Write(s.batch); err != nil {
		return err
	}
	s.batch.Reset()
	return nil
}
