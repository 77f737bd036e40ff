package store

import (
	"bytes"
	"strings"

	bolt "github.com/coreos/bbolt"
)

// MaxAncestorDepth bounds the ancestor walk so that a pathological or
// hostile reply chain can never cause unbounded work, per spec §9 (cyclic
// risk is impossible by construction, but implementations must still cap
// depth defensively).
const MaxAncestorDepth = 1024

func encodeSqueakEntry(e *SqueakEntry) ([]byte, error) {
	buf := newBuf()
	if err := writeFixed(buf, e.Hash[:]); err != nil {
		return nil, err
	}
	if err := writeVarString(buf, e.AuthorAddress); err != nil {
		return nil, err
	}
	if err := writeVarBytes(buf, e.SerializedSqueak); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, int32ToBytes(e.BlockHeight)); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, e.BlockHash[:]); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, int64ToBytes(e.SqueakTime)); err != nil {
		return nil, err
	}
	if e.ReplyTo != nil {
		if err := writeBool(buf, true); err != nil {
			return nil, err
		}
		if err := writeFixed(buf, e.ReplyTo[:]); err != nil {
			return nil, err
		}
	} else {
		if err := writeBool(buf, false); err != nil {
			return nil, err
		}
	}
	if e.SecretKey != nil {
		if err := writeBool(buf, true); err != nil {
			return nil, err
		}
		if err := writeFixed(buf, e.SecretKey[:]); err != nil {
			return nil, err
		}
	} else {
		if err := writeBool(buf, false); err != nil {
			return nil, err
		}
	}
	if err := writeVarString(buf, e.Content); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, int64ToBytes(e.CreatedTimeMs)); err != nil {
		return nil, err
	}
	if e.LikedTimeMs != nil {
		if err := writeBool(buf, true); err != nil {
			return nil, err
		}
		if err := writeFixed(buf, int64ToBytes(*e.LikedTimeMs)); err != nil {
			return nil, err
		}
	} else {
		if err := writeBool(buf, false); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func decodeSqueakEntry(data []byte) (*SqueakEntry, error) {
	r := bytes.NewReader(data)
	e := &SqueakEntry{}

	hashBytes, err := readFixed(r, 32)
	if err != nil {
		return nil, err
	}
	copy(e.Hash[:], hashBytes)

	addr, err := readVarString(r)
	if err != nil {
		return nil, err
	}
	e.AuthorAddress = addr

	sq, err := readVarBytes(r)
	if err != nil {
		return nil, err
	}
	e.SerializedSqueak = sq

	bh, err := readFixed(r, 4)
	if err != nil {
		return nil, err
	}
	e.BlockHeight = bytesToInt32(bh)

	blockHash, err := readFixed(r, 32)
	if err != nil {
		return nil, err
	}
	copy(e.BlockHash[:], blockHash)

	st, err := readFixed(r, 8)
	if err != nil {
		return nil, err
	}
	e.SqueakTime = bytesToInt64(st)

	hasReply, err := readBool(r)
	if err != nil {
		return nil, err
	}
	if hasReply {
		rt, err := readFixed(r, 32)
		if err != nil {
			return nil, err
		}
		var h [32]byte
		copy(h[:], rt)
		e.ReplyTo = &h
	}

	hasKey, err := readBool(r)
	if err != nil {
		return nil, err
	}
	if hasKey {
		sk, err := readFixed(r, 32)
		if err != nil {
			return nil, err
		}
		var h [32]byte
		copy(h[:], sk)
		e.SecretKey = &h
	}

	content, err := readVarString(r)
	if err != nil {
		return nil, err
	}
	e.Content = content

	created, err := readFixed(r, 8)
	if err != nil {
		return nil, err
	}
	e.CreatedTimeMs = bytesToInt64(created)

	hasLiked, err := readBool(r)
	if err != nil {
		return nil, err
	}
	if hasLiked {
		lt, err := readFixed(r, 8)
		if err != nil {
			return nil, err
		}
		v := bytesToInt64(lt)
		e.LikedTimeMs = &v
	}

	return e, nil
}

// InsertSqueak stores a new squeak entry. If a squeak with the same hash
// already exists, it is a no-op and InsertSqueak returns (nil, nil) — the
// idempotent-skip behavior spec §4.2/§7 calls for on AlreadyExists.
func (db *DB) InsertSqueak(e *SqueakEntry) (*[32]byte, error) {
	e.CreatedTimeMs = nowMs()

	var inserted bool
	err := db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(squeakBucket)
		if b.Get(e.Hash[:]) != nil {
			return nil // idempotent skip, already exists
		}

		encoded, err := encodeSqueakEntry(e)
		if err != nil {
			return err
		}
		if err := b.Put(e.Hash[:], encoded); err != nil {
			return err
		}

		idx := tx.Bucket(squeakOrderIndex)
		if err := idx.Put(squeakOrderKey(e.BlockHeight, e.SqueakTime, e.Hash), e.Hash[:]); err != nil {
			return err
		}

		if e.ReplyTo != nil {
			replies := tx.Bucket(repliesByParent)
			key := append(append([]byte{}, e.ReplyTo[:]...), squeakOrderKey(e.BlockHeight, e.SqueakTime, e.Hash)...)
			if err := replies.Put(key, e.Hash[:]); err != nil {
				return err
			}
		}

		inserted = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !inserted {
		log.Debugf("squeak %x already exists, skipping insert", e.Hash)
		return nil, nil
	}
	hash := e.Hash
	return &hash, nil
}

// GetSqueakEntry returns the stored entry for hash, or ErrNotFound.
func (db *DB) GetSqueakEntry(hash [32]byte) (*SqueakEntry, error) {
	var entry *SqueakEntry
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(squeakBucket)
		data := b.Get(hash[:])
		if data == nil {
			return ErrNotFound
		}
		e, err := decodeSqueakEntry(data)
		if err != nil {
			return err
		}
		entry = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// SetSqueakDecryptionKey sets secretKey and content atomically for the
// squeak identified by hash.
func (db *DB) SetSqueakDecryptionKey(hash [32]byte, secretKey [32]byte, content string) error {
	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(squeakBucket)
		data := b.Get(hash[:])
		if data == nil {
			return ErrNotFound
		}
		e, err := decodeSqueakEntry(data)
		if err != nil {
			return err
		}
		e.SecretKey = &secretKey
		e.Content = content
		encoded, err := encodeSqueakEntry(e)
		if err != nil {
			return err
		}
		return b.Put(hash[:], encoded)
	})
}

// SetSqueakLiked marks hash as liked at the current time.
func (db *DB) SetSqueakLiked(hash [32]byte) error {
	return db.updateLiked(hash, true)
}

// SetSqueakUnliked clears the liked state of hash.
func (db *DB) SetSqueakUnliked(hash [32]byte) error {
	return db.updateLiked(hash, false)
}

func (db *DB) updateLiked(hash [32]byte, liked bool) error {
	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(squeakBucket)
		data := b.Get(hash[:])
		if data == nil {
			return ErrNotFound
		}
		e, err := decodeSqueakEntry(data)
		if err != nil {
			return err
		}

		likedIdx := tx.Bucket(squeakLikedIndex)
		if e.LikedTimeMs != nil {
			likedIdx.Delete(squeakLikedKey(*e.LikedTimeMs, hash))
		}

		if liked {
			now := nowMs()
			e.LikedTimeMs = &now
			if err := likedIdx.Put(squeakLikedKey(now, hash), hash[:]); err != nil {
				return err
			}
		} else {
			e.LikedTimeMs = nil
		}

		encoded, err := encodeSqueakEntry(e)
		if err != nil {
			return err
		}
		return b.Put(hash[:], encoded)
	})
}

// DeleteSqueak removes a squeak and its index entries.
func (db *DB) DeleteSqueak(hash [32]byte) error {
	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(squeakBucket)
		data := b.Get(hash[:])
		if data == nil {
			return nil
		}
		e, err := decodeSqueakEntry(data)
		if err != nil {
			return err
		}

		tx.Bucket(squeakOrderIndex).Delete(squeakOrderKey(e.BlockHeight, e.SqueakTime, e.Hash))
		if e.LikedTimeMs != nil {
			tx.Bucket(squeakLikedIndex).Delete(squeakLikedKey(*e.LikedTimeMs, hash))
		}
		if e.ReplyTo != nil {
			key := append(append([]byte{}, e.ReplyTo[:]...), squeakOrderKey(e.BlockHeight, e.SqueakTime, e.Hash)...)
			tx.Bucket(repliesByParent).Delete(key)
		}
		return b.Delete(hash[:])
	})
}

// pageFilter decides whether an entry belongs in a particular listing.
type pageFilter func(*SqueakEntry) bool

// walkOrderIndex walks squeakOrderIndex strictly past lastHash's position
// (or from the very start, if last is nil), returning up to limit entries
// that satisfy filter, in (block_height, squeak_time, hash) descending
// order.
func (db *DB) walkOrderIndex(limit int, last *SqueakEntry, filter pageFilter) ([]*SqueakEntry, error) {
	var results []*SqueakEntry
	err := db.View(func(tx *bolt.Tx) error {
		idx := tx.Bucket(squeakOrderIndex)
		squeaks := tx.Bucket(squeakBucket)
		c := idx.Cursor()

		var k, v []byte
		if last != nil {
			startKey := squeakOrderKey(last.BlockHeight, last.SqueakTime, last.Hash)
			k, v = c.Seek(startKey)
			if k != nil && bytes.Equal(k, startKey) {
				k, v = c.Next()
			}
		} else {
			k, v = c.First()
		}

		for ; k != nil && len(results) < limit; k, v = c.Next() {
			data := squeaks.Get(v)
			if data == nil {
				continue
			}
			e, err := decodeSqueakEntry(data)
			if err != nil {
				return err
			}
			if filter == nil || filter(e) {
				results = append(results, e)
			}
		}
		return nil
	})
	return results, err
}

// GetTimelineSqueakEntries returns squeaks authored by any address in
// following, newest-first, keyset-paginated after last.
func (db *DB) GetTimelineSqueakEntries(following map[string]bool, limit int, last *SqueakEntry) ([]*SqueakEntry, error) {
	return db.walkOrderIndex(limit, last, func(e *SqueakEntry) bool {
		return following[e.AuthorAddress]
	})
}

// GetSqueakEntriesForAddress returns squeaks authored by address,
// newest-first, keyset-paginated after last.
func (db *DB) GetSqueakEntriesForAddress(address string, limit int, last *SqueakEntry) ([]*SqueakEntry, error) {
	return db.walkOrderIndex(limit, last, func(e *SqueakEntry) bool {
		return e.AuthorAddress == address
	})
}

// GetSqueakEntriesForTextSearch returns unlocked squeaks whose content
// contains text (case-insensitive substring match), newest-first.
func (db *DB) GetSqueakEntriesForTextSearch(text string, limit int, last *SqueakEntry) ([]*SqueakEntry, error) {
	lower := strings.ToLower(text)
	return db.walkOrderIndex(limit, last, func(e *SqueakEntry) bool {
		return e.IsUnlocked() && strings.Contains(strings.ToLower(e.Content), lower)
	})
}

// GetLikedSqueakEntries returns liked squeaks ordered by (liked_time_ms,
// hash) descending, keyset-paginated after last.
func (db *DB) GetLikedSqueakEntries(limit int, last *SqueakEntry) ([]*SqueakEntry, error) {
	var results []*SqueakEntry
	err := db.View(func(tx *bolt.Tx) error {
		idx := tx.Bucket(squeakLikedIndex)
		squeaks := tx.Bucket(squeakBucket)
		c := idx.Cursor()

		var k, v []byte
		if last != nil && last.LikedTimeMs != nil {
			startKey := squeakLikedKey(*last.LikedTimeMs, last.Hash)
			k, v = c.Seek(startKey)
			if k != nil && bytes.Equal(k, startKey) {
				k, v = c.Next()
			}
		} else {
			k, v = c.First()
		}

		for ; k != nil && len(results) < limit; k, v = c.Next() {
			data := squeaks.Get(v)
			if data == nil {
				continue
			}
			e, err := decodeSqueakEntry(data)
			if err != nil {
				return err
			}
			results = append(results, e)
		}
		return nil
	})
	return results, err
}

// GetReplySqueakEntries returns direct replies to squeakHash, newest-first,
// keyset-paginated after last.
func (db *DB) GetReplySqueakEntries(squeakHash [32]byte, limit int, last *SqueakEntry) ([]*SqueakEntry, error) {
	var results []*SqueakEntry
	err := db.View(func(tx *bolt.Tx) error {
		replies := tx.Bucket(repliesByParent)
		squeaks := tx.Bucket(squeakBucket)
		c := replies.Cursor()
		prefix := squeakHash[:]

		var k, v []byte
		if last != nil {
			startKey := append(append([]byte{}, prefix...), squeakOrderKey(last.BlockHeight, last.SqueakTime, last.Hash)...)
			k, v = c.Seek(startKey)
			if k != nil && bytes.Equal(k, startKey) {
				k, v = c.Next()
			}
		} else {
			k, v = c.Seek(prefix)
		}

		for ; k != nil && bytes.HasPrefix(k, prefix) && len(results) < limit; k, v = c.Next() {
			data := squeaks.Get(v)
			if data == nil {
				continue
			}
			e, err := decodeSqueakEntry(data)
			if err != nil {
				return err
			}
			results = append(results, e)
		}
		return nil
	})
	return results, err
}

// GetAncestorSqueakEntries walks the reply_to chain upward from squeakHash,
// capped at MaxAncestorDepth, and returns the chain ordered root-to-leaf
// (the squeak itself is the last element).
func (db *DB) GetAncestorSqueakEntries(squeakHash [32]byte) ([]*SqueakEntry, error) {
	var chain []*SqueakEntry
	current := squeakHash
	for depth := 0; depth < MaxAncestorDepth; depth++ {
		e, err := db.GetSqueakEntry(current)
		if err == ErrNotFound {
			break
		}
		if err != nil {
			return nil, err
		}
		chain = append(chain, e)
		if e.ReplyTo == nil {
			break
		}
		current = *e.ReplyTo
	}

	// chain is currently leaf-first; reverse to root-first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// RunRetentionSweep deletes squeaks eligible per spec §4.2: created more
// than retentionS seconds ago, not liked, and not authored by a locally
// owned profile (ownedAddresses).
func (db *DB) RunRetentionSweep(retentionS int64, ownedAddresses map[string]bool) (int, error) {
	cutoff := nowMs() - retentionS*1000
	var toDelete [][32]byte

	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(squeakBucket)
		return b.ForEach(func(k, v []byte) error {
			e, err := decodeSqueakEntry(v)
			if err != nil {
				return err
			}
			if e.CreatedTimeMs > cutoff {
				return nil
			}
			if e.IsLiked() {
				return nil
			}
			if ownedAddresses[e.AuthorAddress] {
				return nil
			}
			toDelete = append(toDelete, e.Hash)
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	for _, h := range toDelete {
		if err := db.DeleteSqueak(h); err != nil {
			return 0, err
		}
	}
	return len(toDelete), nil
}
