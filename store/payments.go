package store

import (
	"bytes"
	"encoding/binary"

	bolt "github.com/coreos/bbolt"
)

func sentPayIDKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func encodeSentPayment(p *SentPayment) ([]byte, error) {
	buf := newBuf()
	if err := binary.Write(buf, binary.BigEndian, p.SentPaymentID); err != nil {
		return nil, err
	}
	if err := encodePeerAddress(buf, p.PeerAddress); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, p.SqueakHash[:]); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, p.PaymentHash[:]); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, p.SecretKey[:]); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, p.PriceMsat); err != nil {
		return nil, err
	}
	if err := writeVarString(buf, p.NodePubkey); err != nil {
		return nil, err
	}
	if err := writeBool(buf, p.Valid); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, p.CreatedTimeMs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeSentPayment(data []byte) (*SentPayment, error) {
	r := bytes.NewReader(data)
	p := &SentPayment{}
	if err := binary.Read(r, binary.BigEndian, &p.SentPaymentID); err != nil {
		return nil, err
	}
	var err error
	if p.PeerAddress, err = decodePeerAddress(r); err != nil {
		return nil, err
	}
	b, err := readFixed(r, 32)
	if err != nil {
		return nil, err
	}
	copy(p.SqueakHash[:], b)
	if b, err = readFixed(r, 32); err != nil {
		return nil, err
	}
	copy(p.PaymentHash[:], b)
	if b, err = readFixed(r, 32); err != nil {
		return nil, err
	}
	copy(p.SecretKey[:], b)
	if err := binary.Read(r, binary.BigEndian, &p.PriceMsat); err != nil {
		return nil, err
	}
	if p.NodePubkey, err = readVarString(r); err != nil {
		return nil, err
	}
	if p.Valid, err = readBool(r); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.CreatedTimeMs); err != nil {
		return nil, err
	}
	return p, nil
}

// InsertSentPayment records a completed buy-path payment attempt. Unlike
// the offer tables, payment_hash is not required unique here: a seller
// could (maliciously or not) reuse a payment hash, and the ledger records
// every attempt rather than deduplicating, with Valid distinguishing a
// preimage that matched the offer's k XOR n from one that didn't.
func (db *DB) InsertSentPayment(p *SentPayment) (uint64, error) {
	var id uint64
	err := db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sentPayBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		id = seq
		p.SentPaymentID = id
		p.CreatedTimeMs = nowMs()

		encoded, err := encodeSentPayment(p)
		if err != nil {
			return err
		}
		if err := b.Put(sentPayIDKey(id), encoded); err != nil {
			return err
		}

		byHash := tx.Bucket(sentPayByPaymentHash)
		idxKey := append(append([]byte{}, p.PaymentHash[:]...), sentPayIDKey(id)...)
		return byHash.Put(idxKey, sentPayIDKey(id))
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetSentPayments returns every recorded sent payment.
func (db *DB) GetSentPayments() ([]*SentPayment, error) {
	var results []*SentPayment
	err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(sentPayBucket).ForEach(func(k, v []byte) error {
			p, err := decodeSentPayment(v)
			if err != nil {
				return err
			}
			results = append(results, p)
			return nil
		})
	})
	return results, err
}

// GetSentPayment returns a single recorded sent payment by ID.
func (db *DB) GetSentPayment(id uint64) (*SentPayment, error) {
	var p *SentPayment
	err := db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(sentPayBucket).Get(sentPayIDKey(id))
		if data == nil {
			return ErrNotFound
		}
		var err error
		p, err = decodeSentPayment(data)
		return err
	})
	return p, err
}

// --- received payments ---

func recvPayIDKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func encodeReceivedPayment(p *ReceivedPayment) ([]byte, error) {
	buf := newBuf()
	if err := binary.Write(buf, binary.BigEndian, p.ReceivedPaymentID); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, p.SqueakHash[:]); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, p.PaymentHash[:]); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, p.PriceMsat); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, p.SettleIndex); err != nil {
		return nil, err
	}
	if err := encodePeerAddress(buf, p.PeerAddress); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, p.CreatedTimeMs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeReceivedPayment(data []byte) (*ReceivedPayment, error) {
	r := bytes.NewReader(data)
	p := &ReceivedPayment{}
	if err := binary.Read(r, binary.BigEndian, &p.ReceivedPaymentID); err != nil {
		return nil, err
	}
	b, err := readFixed(r, 32)
	if err != nil {
		return nil, err
	}
	copy(p.SqueakHash[:], b)
	if b, err = readFixed(r, 32); err != nil {
		return nil, err
	}
	copy(p.PaymentHash[:], b)
	if err := binary.Read(r, binary.BigEndian, &p.PriceMsat); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.SettleIndex); err != nil {
		return nil, err
	}
	if p.PeerAddress, err = decodePeerAddress(r); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.CreatedTimeMs); err != nil {
		return nil, err
	}
	return p, nil
}

// InsertReceivedPayment records a settled sell-path invoice. A duplicate
// payment_hash is an idempotent skip, matching the invoice-subscription
// handler's at-least-once delivery semantics.
func (db *DB) InsertReceivedPayment(p *ReceivedPayment) (*uint64, error) {
	var id uint64
	var inserted bool
	err := db.Update(func(tx *bolt.Tx) error {
		byHash := tx.Bucket(recvPayByPaymentHash)
		if byHash.Get(p.PaymentHash[:]) != nil {
			return nil
		}

		b := tx.Bucket(recvPayBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		id = seq
		p.ReceivedPaymentID = id
		p.CreatedTimeMs = nowMs()

		encoded, err := encodeReceivedPayment(p)
		if err != nil {
			return err
		}
		if err := b.Put(recvPayIDKey(id), encoded); err != nil {
			return err
		}
		if err := byHash.Put(p.PaymentHash[:], recvPayIDKey(id)); err != nil {
			return err
		}
		inserted = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !inserted {
		log.Debugf("received payment with payment hash %x already exists, skipping", p.PaymentHash)
		return nil, nil
	}
	return &id, nil
}

// GetReceivedPayments returns every recorded received payment.
func (db *DB) GetReceivedPayments() ([]*ReceivedPayment, error) {
	var results []*ReceivedPayment
	err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(recvPayBucket).ForEach(func(k, v []byte) error {
			p, err := decodeReceivedPayment(v)
			if err != nil {
				return err
			}
			results = append(results, p)
			return nil
		})
	})
	return results, err
}

// GetReceivedPayment returns a single recorded received payment by ID.
func (db *DB) GetReceivedPayment(id uint64) (*ReceivedPayment, error) {
	var p *ReceivedPayment
	err := db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(recvPayBucket).Get(recvPayIDKey(id))
		if data == nil {
			return ErrNotFound
		}
		var err error
		p, err = decodeReceivedPayment(data)
		return err
	})
	return p, err
}

// GetReceivedPaymentByPaymentHash looks up a received payment by its
// payment hash, used to detect a seller who settles twice with
// inconsistent preimages.
func (db *DB) GetReceivedPaymentByPaymentHash(paymentHash [32]byte) (*ReceivedPayment, error) {
	var p *ReceivedPayment
	err := db.View(func(tx *bolt.Tx) error {
		idBytes := tx.Bucket(recvPayByPaymentHash).Get(paymentHash[:])
		if idBytes == nil {
			return ErrNotFound
		}
		data := tx.Bucket(recvPayBucket).Get(idBytes)
		if data == nil {
			return ErrNotFound
		}
		var err error
		p, err = decodeReceivedPayment(data)
		return err
	})
	return p, err
}
