package blockstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/coniks-sys/authskiplist/application"
	"github.com/coniks-sys/authskiplist/crypto/sign"
	"github.com/coniks-sys/authskiplist/ingest"
	"github.com/coniks-sys/authskiplist/skiplist"
	"github.com/coniks-sys/authskiplist/storage/kv"
)

// ErrBlockTooLarge is returned by InsertBlock for a block
// longer than the configured block size.
var ErrBlockTooLarge = errors.New("[blockstore] Block too large")

// Store is a skip list guarded for concurrent use.
type Store struct {
	mu        sync.RWMutex
	list      *skiplist.SkipList
	next      uint64
	blockSize int

	// ingestMu serializes ingestion runs so each one
	// gets a contiguous range of indices.
	ingestMu sync.Mutex

	logger *application.Logger
}

var _ ingest.Inserter = (*Store)(nil)

// New returns an empty store configured by conf.
// A nil logger discards all output.
func New(conf *Config, logger *application.Logger) (*Store, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	opts, err := conf.Options()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = application.NewNopLogger()
	}
	opts.Observer = &logObserver{logger: logger}
	s := &Store{
		list:      skiplist.New(opts),
		blockSize: conf.BlockSize,
		logger:    logger,
	}
	logger.Debug("Created block store",
		"hasher", conf.Hasher,
		"levels", conf.LevelPolicy,
		"block_size", conf.BlockSize,
		"root", s.list.Root())
	return s, nil
}

type logObserver struct {
	logger *application.Logger
}

func (o *logObserver) Inserted(ev skiplist.InsertEvent) {
	o.logger.Debug("Inserted",
		"key", ev.Key,
		"level", ev.Level,
		"rotations", ev.Rotations,
		"len", ev.Len,
		"root", ev.Root)
}

// InsertBlock stores block at index.
func (s *Store) InsertBlock(index uint64, block []byte) error {
	if len(block) > s.blockSize {
		return fmt.Errorf("%w: %d > %d bytes", ErrBlockTooLarge, len(block), s.blockSize)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.list.InsertBlock(index, block); err != nil {
		return err
	}
	if index >= s.next {
		s.next = index + 1
	}
	return nil
}

// Insert stores value under an arbitrary key.
func (s *Store) Insert(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Insert(key, value)
}

// ReadBlock returns a copy of the block stored at index.
func (s *Store) ReadBlock(index uint64) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.ReadBlock(index)
}

// ProveBlock returns a proof of inclusion for the block at index.
func (s *Store) ProveBlock(index uint64) (*skiplist.Proof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.ProveBlock(index)
}

// ProveBlockWithRoot returns a proof for the block at index together
// with the root it verifies against, taken under the same lock.
func (s *Store) ProveBlockWithRoot(index uint64) (*skiplist.Proof, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, err := s.list.ProveBlock(index)
	if err != nil {
		return nil, "", err
	}
	return p, s.list.Root(), nil
}

// Root returns the current root digest.
func (s *Store) Root() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Root()
}

// Len returns the number of stored blocks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Len()
}

// Height returns the height of the list's tower.
func (s *Store) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Height()
}

// Next returns the index the next ingested block gets.
func (s *Store) Next() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.next
}

// Snapshot returns a copy of the current list. The copy is not
// affected by later insertions and needs no locking for reads.
// It may be extended on its own while the store keeps ingesting.
func (s *Store) Snapshot() *skiplist.SkipList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Clone()
}

// SignRoot signs the current root with key.
func (s *Store) SignRoot(key sign.PrivateKey) *skiplist.SignedRoot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return skiplist.NewSignedRoot(key, s.list)
}

// Validate checks the structural invariants of the list.
func (s *Store) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Validate()
}

// Sync flushes buffered log entries of the store's logger.
func (s *Store) Sync() error {
	return s.logger.Sync()
}

// Ingest cuts r into blocks and appends them after the highest
// stored index. It returns the number of appended blocks. On a
// source failure, the blocks appended before it stay in the store.
func (s *Store) Ingest(ctx context.Context, r io.Reader) (uint64, error) {
	s.ingestMu.Lock()
	defer s.ingestMu.Unlock()
	first := s.Next()
	n, err := ingest.Reader(ctx, r, s.blockSize, s, first)
	s.logIngest("reader", first, n, err)
	return n, err
}

// IngestFile is Ingest for the file at path.
func (s *Store) IngestFile(ctx context.Context, path string) (uint64, error) {
	s.ingestMu.Lock()
	defer s.ingestMu.Unlock()
	first := s.Next()
	n, err := ingest.File(ctx, path, s.blockSize, s, first)
	s.logIngest(path, first, n, err)
	return n, err
}

// IngestKV inserts every block stored in db at its stored index.
func (s *Store) IngestKV(ctx context.Context, db kv.DB) (uint64, error) {
	s.ingestMu.Lock()
	defer s.ingestMu.Unlock()
	first := s.Next()
	n, err := ingest.KV(ctx, db, s)
	s.logIngest("kv", first, n, err)
	return n, err
}

func (s *Store) logIngest(source string, first, n uint64, err error) {
	if err != nil {
		s.logger.Error("Ingestion stopped",
			"source", source,
			"first", first,
			"blocks", n,
			"error", err.Error())
		return
	}
	s.logger.Info("Ingested",
		"source", source,
		"first", first,
		"blocks", n,
		"root", s.Root())
}
