// Package store implements the durable, transactional persistence contract
// of spec §4.2 on top of a single bbolt database file, mirroring the bucket
// layout conventions of channeldb in the teacher repo (one top-level bucket
// per logical table, composite keys standing in for SQL indexes).
package store

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	bolt "github.com/coreos/bbolt"
)

var (
	squeakBucket     = []byte("squeak")
	profileBucket    = []byte("profile")
	peerBucket       = []byte("peer")
	sentOfferBucket  = []byte("sent-offer")
	recvOfferBucket  = []byte("received-offer")
	sentPayBucket    = []byte("sent-payment")
	recvPayBucket    = []byte("received-payment")

	// squeakOrderIndex maps an inverted (blockHeight, squeakTime, hash)
	// key to a squeak hash, giving ascending bbolt iteration the same
	// order as the "ORDER BY block_height DESC, squeak_time DESC, hash
	// DESC" queries in spec §4.2. Reused by the timeline, address and
	// text-search queries, each of which applies its own predicate while
	// walking the shared index.
	squeakOrderIndex = []byte("squeak-order-index")

	// squeakLikedIndex maps an inverted (likedTimeMs, hash) key to a
	// squeak hash, populated only for liked squeaks.
	squeakLikedIndex = []byte("squeak-liked-index")

	// repliesByParent maps replyTo||childHash -> struct{}, letting the
	// ancestor/reply walks find a squeak's children without a table
	// scan.
	repliesByParent = []byte("replies-by-parent")

	// paymentHashIndex (per sent/received offer) enforces the unique
	// payment_hash constraint and gives O(1) lookup by payment hash.
	sentOfferByPaymentHash = []byte("sent-offer-by-payment-hash")
	recvOfferByPaymentHash = []byte("recv-offer-by-payment-hash")
	sentPayByPaymentHash   = []byte("sent-payment-by-payment-hash")
	recvPayByPaymentHash   = []byte("recv-payment-by-payment-hash")

	peerByHostPort = []byte("peer-by-host-port")

	profileByName    = []byte("profile-by-name")
	profileByAddress = []byte("profile-by-address")
)

var allBuckets = [][]byte{
	squeakBucket, profileBucket, peerBucket, sentOfferBucket,
	recvOfferBucket, sentPayBucket, recvPayBucket, squeakOrderIndex,
	squeakLikedIndex, repliesByParent, sentOfferByPaymentHash,
	recvOfferByPaymentHash, sentPayByPaymentHash, recvPayByPaymentHash,
	peerByHostPort, profileByName, profileByAddress,
}

// DB is the concrete store: a bbolt file plus the bucket layout above.
type DB struct {
	*bolt.DB
	path string
}

// Open creates or opens the store at path and ensures every bucket exists.
func Open(path string) (*DB, error) {
	bdb, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 10 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	db := &DB{DB: bdb, path: path}
	if err := db.Init(); err != nil {
		bdb.Close()
		return nil, err
	}

	return db, nil
}

// Init creates every top-level bucket this package relies on. It is
// idempotent and safe to call on an already-initialized database.
func (db *DB) Init() error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("store: create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// Close releases the underlying bbolt file.
func (db *DB) Close() error {
	return db.DB.Close()
}

// nowMs returns the current time in unix milliseconds, the unit
// created_time_ms/liked_time_ms are stored in.
func nowMs() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// timeNowUnix returns the current time in unix seconds, the unit
// invoice_timestamp/invoice_expiry comparisons are made in.
func timeNowUnix() int64 {
	return time.Now().Unix()
}

// --- composite-key helpers ---
//
// bbolt iterates keys in ascending lexicographic byte order. To get a
// descending (block_height, squeak_time, hash) ordering "for free" via
// Cursor.Next, every component is stored inverted (math.MaxUint32 - value,
// etc.) so that a larger real value sorts as a smaller byte string.

func invertUint32(v uint32) uint32 { return math.MaxUint32 - v }
func invertInt64(v int64) uint64   { return math.MaxUint64 - uint64(v) }

// invertHash flips every byte so that a lexicographically larger hash
// sorts as a smaller byte string, keeping ties in a composite descending
// key strictly decreasing all the way through its last component.
func invertHash(hash [32]byte) [32]byte {
	var out [32]byte
	for i, b := range hash {
		out[i] = ^b
	}
	return out
}

func putUint32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }
func putUint64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

// squeakOrderKey builds the inverted (blockHeight, squeakTime, hash) index
// key used by squeakOrderIndex.
func squeakOrderKey(blockHeight int32, squeakTime int64, hash [32]byte) []byte {
	key := make([]byte, 4+8+32)
	putUint32(key[0:4], invertUint32(uint32(blockHeight)))
	putUint64(key[4:12], invertInt64(squeakTime))
	inverted := invertHash(hash)
	copy(key[12:], inverted[:])
	return key
}

// squeakLikedKey builds the inverted (likedTimeMs, hash) index key used by
// squeakLikedIndex.
func squeakLikedKey(likedTimeMs int64, hash [32]byte) []byte {
	key := make([]byte, 8+32)
	putUint64(key[0:8], invertInt64(likedTimeMs))
	inverted := invertHash(hash)
	copy(key[8:], inverted[:])
	return key
}

func peerHostPortKey(host string, port uint16) []byte {
	key := make([]byte, len(host)+1+2)
	copy(key, host)
	key[len(host)] = ':'
	binary.BigEndian.PutUint16(key[len(host)+1:], port)
	return key
}
