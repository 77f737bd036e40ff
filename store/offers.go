package store

import (
	"bytes"
	"encoding/binary"

	bolt "github.com/coreos/bbolt"
)

func sentOfferIDKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func encodeSentOffer(o *SentOffer) ([]byte, error) {
	buf := newBuf()
	if err := binary.Write(buf, binary.BigEndian, o.SentOfferID); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, o.SqueakHash[:]); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, o.PaymentHash[:]); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, o.SecretKey[:]); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, o.Nonce[:]); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, o.PriceMsat); err != nil {
		return nil, err
	}
	if err := writeVarString(buf, o.PaymentRequest); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, o.InvoiceTimestamp); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, o.InvoiceExpiry); err != nil {
		return nil, err
	}
	if err := encodePeerAddress(buf, o.PeerAddress); err != nil {
		return nil, err
	}
	if err := writeBool(buf, o.Paid); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, o.CreatedTimeMs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeSentOffer(data []byte) (*SentOffer, error) {
	r := bytes.NewReader(data)
	o := &SentOffer{}
	if err := binary.Read(r, binary.BigEndian, &o.SentOfferID); err != nil {
		return nil, err
	}
	b, err := readFixed(r, 32)
	if err != nil {
		return nil, err
	}
	copy(o.SqueakHash[:], b)
	if b, err = readFixed(r, 32); err != nil {
		return nil, err
	}
	copy(o.PaymentHash[:], b)
	if b, err = readFixed(r, 32); err != nil {
		return nil, err
	}
	copy(o.SecretKey[:], b)
	if b, err = readFixed(r, 32); err != nil {
		return nil, err
	}
	copy(o.Nonce[:], b)
	if err := binary.Read(r, binary.BigEndian, &o.PriceMsat); err != nil {
		return nil, err
	}
	if o.PaymentRequest, err = readVarString(r); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &o.InvoiceTimestamp); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &o.InvoiceExpiry); err != nil {
		return nil, err
	}
	if o.PeerAddress, err = decodePeerAddress(r); err != nil {
		return nil, err
	}
	if o.Paid, err = readBool(r); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &o.CreatedTimeMs); err != nil {
		return nil, err
	}
	return o, nil
}

// InsertSentOffer stores a newly minted sent offer. A payment_hash
// collision (practically impossible given a fresh random nonce) returns
// ErrAlreadyExists.
func (db *DB) InsertSentOffer(o *SentOffer) (uint64, error) {
	var id uint64
	err := db.Update(func(tx *bolt.Tx) error {
		byHash := tx.Bucket(sentOfferByPaymentHash)
		if byHash.Get(o.PaymentHash[:]) != nil {
			return ErrAlreadyExists
		}

		b := tx.Bucket(sentOfferBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		id = seq
		o.SentOfferID = id
		o.CreatedTimeMs = nowMs()

		encoded, err := encodeSentOffer(o)
		if err != nil {
			return err
		}
		if err := b.Put(sentOfferIDKey(id), encoded); err != nil {
			return err
		}
		return byHash.Put(o.PaymentHash[:], sentOfferIDKey(id))
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetSentOfferByPaymentHash looks up a sent offer by its payment hash, used
// by the invoice-settlement worker when an ACCEPTED event arrives.
func (db *DB) GetSentOfferByPaymentHash(paymentHash [32]byte) (*SentOffer, error) {
	var o *SentOffer
	err := db.View(func(tx *bolt.Tx) error {
		idBytes := tx.Bucket(sentOfferByPaymentHash).Get(paymentHash[:])
		if idBytes == nil {
			return ErrNotFound
		}
		data := tx.Bucket(sentOfferBucket).Get(idBytes)
		if data == nil {
			return ErrNotFound
		}
		var err error
		o, err = decodeSentOffer(data)
		return err
	})
	return o, err
}

// GetSentOffers returns every currently stored sent offer.
func (db *DB) GetSentOffers() ([]*SentOffer, error) {
	var results []*SentOffer
	err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(sentOfferBucket).ForEach(func(k, v []byte) error {
			o, err := decodeSentOffer(v)
			if err != nil {
				return err
			}
			results = append(results, o)
			return nil
		})
	})
	return results, err
}

// SetSentOfferPaid marks a sent offer as paid after the seller observes a
// SETTLED invoice.
func (db *DB) SetSentOfferPaid(id uint64) error {
	return db.Update(func(tx *bolt.Tx) error {
		data := tx.Bucket(sentOfferBucket).Get(sentOfferIDKey(id))
		if data == nil {
			return ErrNotFound
		}
		o, err := decodeSentOffer(data)
		if err != nil {
			return err
		}
		o.Paid = true
		encoded, err := encodeSentOffer(o)
		if err != nil {
			return err
		}
		return tx.Bucket(sentOfferBucket).Put(sentOfferIDKey(id), encoded)
	})
}

func (db *DB) deleteSentOffer(tx *bolt.Tx, o *SentOffer) error {
	tx.Bucket(sentOfferByPaymentHash).Delete(o.PaymentHash[:])
	return tx.Bucket(sentOfferBucket).Delete(sentOfferIDKey(o.SentOfferID))
}

// SweepSentOffers deletes sent offers whose invoice expired more than
// graceS seconds ago, giving a late-settling buyer time to finish paying.
func (db *DB) SweepSentOffers(graceS int64) (int, error) {
	now := timeNowUnix()
	var toDelete []*SentOffer

	err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(sentOfferBucket).ForEach(func(k, v []byte) error {
			o, err := decodeSentOffer(v)
			if err != nil {
				return err
			}
			if now >= o.InvoiceTimestamp+o.InvoiceExpiry+graceS {
				toDelete = append(toDelete, o)
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, o := range toDelete {
			if err := db.deleteSentOffer(tx, o); err != nil {
				return err
			}
		}
		return nil
	})
	return len(toDelete), err
}

// --- received offers ---

func recvOfferIDKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func encodeReceivedOffer(o *ReceivedOffer) ([]byte, error) {
	buf := newBuf()
	if err := binary.Write(buf, binary.BigEndian, o.ReceivedOfferID); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, o.SqueakHash[:]); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, o.PaymentHash[:]); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, o.Nonce[:]); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, o.PaymentPoint[:]); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, o.InvoiceTimestamp); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, o.InvoiceExpiry); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, o.PriceMsat); err != nil {
		return nil, err
	}
	if err := writeVarString(buf, o.PaymentRequest); err != nil {
		return nil, err
	}
	if err := writeFixed(buf, o.Destination[:]); err != nil {
		return nil, err
	}
	if err := writeVarString(buf, o.LightningHost); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, o.LightningPort); err != nil {
		return nil, err
	}
	if err := encodePeerAddress(buf, o.PeerAddress); err != nil {
		return nil, err
	}
	if err := writeBool(buf, o.Paid); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, o.CreatedTimeMs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeReceivedOffer(data []byte) (*ReceivedOffer, error) {
	r := bytes.NewReader(data)
	o := &ReceivedOffer{}
	if err := binary.Read(r, binary.BigEndian, &o.ReceivedOfferID); err != nil {
		return nil, err
	}
	b, err := readFixed(r, 32)
	if err != nil {
		return nil, err
	}
	copy(o.SqueakHash[:], b)
	if b, err = readFixed(r, 32); err != nil {
		return nil, err
	}
	copy(o.PaymentHash[:], b)
	if b, err = readFixed(r, 32); err != nil {
		return nil, err
	}
	copy(o.Nonce[:], b)
	if b, err = readFixed(r, 33); err != nil {
		return nil, err
	}
	copy(o.PaymentPoint[:], b)
	if err := binary.Read(r, binary.BigEndian, &o.InvoiceTimestamp); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &o.InvoiceExpiry); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &o.PriceMsat); err != nil {
		return nil, err
	}
	if o.PaymentRequest, err = readVarString(r); err != nil {
		return nil, err
	}
	if b, err = readFixed(r, 33); err != nil {
		return nil, err
	}
	copy(o.Destination[:], b)
	if o.LightningHost, err = readVarString(r); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &o.LightningPort); err != nil {
		return nil, err
	}
	if o.PeerAddress, err = decodePeerAddress(r); err != nil {
		return nil, err
	}
	if o.Paid, err = readBool(r); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &o.CreatedTimeMs); err != nil {
		return nil, err
	}
	return o, nil
}

// InsertReceivedOffer stores an offer a peer sent us. A duplicate
// payment_hash is an idempotent skip: InsertReceivedOffer returns
// (nil, nil) rather than an error, per spec §4.7.
func (db *DB) InsertReceivedOffer(o *ReceivedOffer) (*uint64, error) {
	var id uint64
	var inserted bool
	err := db.Update(func(tx *bolt.Tx) error {
		byHash := tx.Bucket(recvOfferByPaymentHash)
		if byHash.Get(o.PaymentHash[:]) != nil {
			return nil
		}

		b := tx.Bucket(recvOfferBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		id = seq
		o.ReceivedOfferID = id
		o.CreatedTimeMs = nowMs()

		encoded, err := encodeReceivedOffer(o)
		if err != nil {
			return err
		}
		if err := b.Put(recvOfferIDKey(id), encoded); err != nil {
			return err
		}
		if err := byHash.Put(o.PaymentHash[:], recvOfferIDKey(id)); err != nil {
			return err
		}
		inserted = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !inserted {
		log.Debugf("received offer with payment hash %x already exists, skipping", o.PaymentHash)
		return nil, nil
	}
	return &id, nil
}

// GetReceivedOffers returns the non-expired received offers for a squeak,
// per spec §4.2 ("Received offers are filtered out of normal queries once
// expired").
func (db *DB) GetReceivedOffers(squeakHash [32]byte) ([]*ReceivedOffer, error) {
	now := timeNowUnix()
	var results []*ReceivedOffer
	err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(recvOfferBucket).ForEach(func(k, v []byte) error {
			o, err := decodeReceivedOffer(v)
			if err != nil {
				return err
			}
			if o.SqueakHash != squeakHash {
				return nil
			}
			if o.IsExpired(now) {
				return nil
			}
			results = append(results, o)
			return nil
		})
	})
	return results, err
}

// GetReceivedOffer returns a single received offer by ID, regardless of
// expiry.
func (db *DB) GetReceivedOffer(id uint64) (*ReceivedOffer, error) {
	var o *ReceivedOffer
	err := db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(recvOfferBucket).Get(recvOfferIDKey(id))
		if data == nil {
			return ErrNotFound
		}
		var err error
		o, err = decodeReceivedOffer(data)
		return err
	})
	return o, err
}

// GetReceivedOfferForSqueakAndPeer finds an existing, non-expired received
// offer for squeakHash from peerAddr, used to avoid re-requesting an offer
// we already have.
func (db *DB) GetReceivedOfferForSqueakAndPeer(squeakHash [32]byte, peerAddr PeerAddress) (*ReceivedOffer, error) {
	offers, err := db.GetReceivedOffers(squeakHash)
	if err != nil {
		return nil, err
	}
	for _, o := range offers {
		if o.PeerAddress == peerAddr {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

// SetReceivedOfferPaid marks a received offer as paid after a successful
// pay_offer.
func (db *DB) SetReceivedOfferPaid(id uint64) error {
	return db.Update(func(tx *bolt.Tx) error {
		data := tx.Bucket(recvOfferBucket).Get(recvOfferIDKey(id))
		if data == nil {
			return ErrNotFound
		}
		o, err := decodeReceivedOffer(data)
		if err != nil {
			return err
		}
		o.Paid = true
		encoded, err := encodeReceivedOffer(o)
		if err != nil {
			return err
		}
		return tx.Bucket(recvOfferBucket).Put(recvOfferIDKey(id), encoded)
	})
}

// DeleteOffersForSqueak removes every received offer for squeakHash, used
// once the squeak has been unlocked and further offers are moot.
func (db *DB) DeleteOffersForSqueak(squeakHash [32]byte) error {
	var toDelete []*ReceivedOffer
	err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(recvOfferBucket).ForEach(func(k, v []byte) error {
			o, err := decodeReceivedOffer(v)
			if err != nil {
				return err
			}
			if o.SqueakHash == squeakHash {
				toDelete = append(toDelete, o)
			}
			return nil
		})
	})
	if err != nil {
		return err
	}
	return db.Update(func(tx *bolt.Tx) error {
		for _, o := range toDelete {
			tx.Bucket(recvOfferByPaymentHash).Delete(o.PaymentHash[:])
			if err := tx.Bucket(recvOfferBucket).Delete(recvOfferIDKey(o.ReceivedOfferID)); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteExpiredReceivedOffers sweeps every received offer whose invoice
// window has passed, per spec §4.2.
func (db *DB) DeleteExpiredReceivedOffers() (int, error) {
	now := timeNowUnix()
	var toDelete []*ReceivedOffer
	err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(recvOfferBucket).ForEach(func(k, v []byte) error {
			o, err := decodeReceivedOffer(v)
			if err != nil {
				return err
			}
			if o.IsExpired(now) {
				toDelete = append(toDelete, o)
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, o := range toDelete {
			tx.Bucket(recvOfferByPaymentHash).Delete(o.PaymentHash[:])
			if err := tx.Bucket(recvOfferBucket).Delete(recvOfferIDKey(o.ReceivedOfferID)); err != nil {
				return err
			}
		}
		return nil
	})
	return len(toDelete), err
}
