package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// getByID retrieves a record from its primary bucket.
func getByID[T any](s *Store, bucket, id string) (*T, error) {
	var result *T
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucket)).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%s/%s: %w", bucket, id, ErrNotFound)
		}
		var item T
		if err := s.decode(data, &item); err != nil {
			return err
		}
		result = &item
		return nil
	})
	if err != nil {
		return nil, txErr(err)
	}
	return result, nil
}

// getBySlug resolves a slug through the index bucket and loads the
// primary record in the same transaction. An index entry whose primary
// record is gone means a past write bypassed the single-transaction
// invariant; that is surfaced as ErrIndexCorrupted, never as ErrNotFound.
func getBySlug[T any](s *Store, primary, index, slug string) (*T, error) {
	var result *T
	err := s.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket([]byte(index)).Get([]byte(slug))
		if id == nil {
			return fmt.Errorf("%s/%s: %w", index, slug, ErrNotFound)
		}
		data := tx.Bucket([]byte(primary)).Get(id)
		if data == nil {
			s.log.Error().Str("bucket", index).Str("slug", slug).Str("id", string(id)).
				Msg("slug index references missing record")
			return fmt.Errorf("%s/%s -> %s: %w", index, slug, id, ErrIndexCorrupted)
		}
		var item T
		if err := s.decode(data, &item); err != nil {
			return err
		}
		result = &item
		return nil
	})
	if err != nil {
		return nil, txErr(err)
	}
	return result, nil
}

// listAll scans a primary bucket and decodes every record. Iteration
// order is store order; callers sort explicitly.
func listAll[T any](s *Store, bucket string) ([]*T, error) {
	var items []*T
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).ForEach(func(_, v []byte) error {
			item := new(T)
			if err := s.decode(v, item); err != nil {
				return err
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, txErr(err)
	}
	return items, nil
}

// deleteByID removes a record and its slug index entry in one
// transaction. A missing id is a no-op, not an error.
func deleteByID[T any](s *Store, primary, index, id string, slugOf func(*T) string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(primary))
		data := bucket.Get([]byte(id))
		if data == nil {
			return nil
		}
		item := new(T)
		if err := s.decode(data, item); err != nil {
			return err
		}
		if err := tx.Bucket([]byte(index)).Delete([]byte(slugOf(item))); err != nil {
			return err
		}
		return bucket.Delete([]byte(id))
	})
	return txErr(err)
}
