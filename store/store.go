// Package store implements the persistence layer of the CMS: a
// bbolt-backed document store keeping primary records by id plus
// secondary slug indexes, with status-filtered pagination and
// previous/next navigation on top.
//
// Every mutation that touches a document's slug updates the slug index
// in the same bbolt transaction as the primary write, so an index entry
// always resolves to a live record whose slug matches the index key.
package store

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"
)

// Store is the process-wide store handle. Open it once at startup and
// pass it by reference to all consumers.
type Store struct {
	db  *bolt.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
	log zerolog.Logger

	now func() time.Time
}

// Options tunes Open. The zero value is usable.
type Options struct {
	// Timeout bounds how long Open waits for the file lock (default 10s).
	Timeout time.Duration
	// Logger receives store-level events. Defaults to a disabled logger.
	Logger *zerolog.Logger
}

// Open opens or creates the store at the given file path.
func Open(path string, opts *Options) (*Store, error) {
	if opts == nil {
		opts = &Options{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	db, err := bolt.Open(path, 0644, &bolt.Options{
		Timeout:      timeout,
		FreelistType: bolt.FreelistArrayType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = enc.Close()
		_ = db.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}

	s := &Store{
		db:  db,
		enc: enc,
		dec: dec,
		log: log,
		now: time.Now,
	}

	if err := s.initSchema(); err != nil {
		_ = s.Close()
		return nil, txErr(err)
	}

	log.Debug().Str("path", path).Msg("store opened")
	return s, nil
}

// Close releases the store handle.
func (s *Store) Close() error {
	if s.enc != nil {
		_ = s.enc.Close()
	}
	if s.dec != nil {
		s.dec.Close()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// initSchema creates all buckets and records the schema version.
func (s *Store) initSchema() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range AllBuckets() {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}

		meta := tx.Bucket([]byte(BucketMeta))
		if meta.Get([]byte(KeySchemaVersion)) == nil {
			v := make([]byte, 4)
			binary.BigEndian.PutUint32(v, SchemaVersion)
			if err := meta.Put([]byte(KeySchemaVersion), v); err != nil {
				return err
			}
		}
		return nil
	})
}

// DB returns the underlying bbolt handle.
func (s *Store) DB() *bolt.DB {
	return s.db
}

// Stats holds document counts per kind.
type Stats struct {
	Posts      int
	Categories int
	Pages      int
}

// Stats returns document counts for all kinds.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	err := s.db.View(func(tx *bolt.Tx) error {
		stats.Posts = tx.Bucket([]byte(BucketPosts)).Stats().KeyN
		stats.Categories = tx.Bucket([]byte(BucketCategories)).Stats().KeyN
		stats.Pages = tx.Bucket([]byte(BucketPages)).Stats().KeyN
		return nil
	})
	if err != nil {
		return nil, txErr(err)
	}
	return stats, nil
}
