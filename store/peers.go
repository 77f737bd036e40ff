package store

import (
	"bytes"
	"encoding/binary"

	bolt "github.com/coreos/bbolt"
)

func peerIDKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func encodePeer(p *PeerRecord) ([]byte, error) {
	buf := newBuf()
	if err := binary.Write(buf, binary.BigEndian, p.PeerID); err != nil {
		return nil, err
	}
	if err := writeVarString(buf, p.PeerName); err != nil {
		return nil, err
	}
	if err := encodePeerAddress(buf, p.Address); err != nil {
		return nil, err
	}
	if err := writeBool(buf, p.Autoconnect); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, p.CreatedTimeMs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodePeer(data []byte) (*PeerRecord, error) {
	r := bytes.NewReader(data)
	p := &PeerRecord{}
	if err := binary.Read(r, binary.BigEndian, &p.PeerID); err != nil {
		return nil, err
	}
	var err error
	if p.PeerName, err = readVarString(r); err != nil {
		return nil, err
	}
	if p.Address, err = decodePeerAddress(r); err != nil {
		return nil, err
	}
	if p.Autoconnect, err = readBool(r); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.CreatedTimeMs); err != nil {
		return nil, err
	}
	return p, nil
}

// InsertPeer stores a new saved peer. A duplicate (host, port) returns
// ErrAlreadyExists.
func (db *DB) InsertPeer(p *PeerRecord) (uint64, error) {
	var id uint64
	err := db.Update(func(tx *bolt.Tx) error {
		hostPort := tx.Bucket(peerByHostPort)
		key := peerHostPortKey(p.Address.Host, p.Address.Port)
		if hostPort.Get(key) != nil {
			return ErrAlreadyExists
		}

		b := tx.Bucket(peerBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		id = seq
		p.PeerID = id
		p.CreatedTimeMs = nowMs()

		encoded, err := encodePeer(p)
		if err != nil {
			return err
		}
		if err := b.Put(peerIDKey(id), encoded); err != nil {
			return err
		}
		return hostPort.Put(key, peerIDKey(id))
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (db *DB) getPeer(tx *bolt.Tx, id uint64) (*PeerRecord, error) {
	data := tx.Bucket(peerBucket).Get(peerIDKey(id))
	if data == nil {
		return nil, ErrNotFound
	}
	return decodePeer(data)
}

// GetPeer returns the saved peer with the given ID.
func (db *DB) GetPeer(id uint64) (*PeerRecord, error) {
	var p *PeerRecord
	err := db.View(func(tx *bolt.Tx) error {
		var err error
		p, err = db.getPeer(tx, id)
		return err
	})
	return p, err
}

// GetPeerByAddress returns the saved peer at the given host/port.
func (db *DB) GetPeerByAddress(addr PeerAddress) (*PeerRecord, error) {
	var p *PeerRecord
	err := db.View(func(tx *bolt.Tx) error {
		idBytes := tx.Bucket(peerByHostPort).Get(peerHostPortKey(addr.Host, addr.Port))
		if idBytes == nil {
			return ErrNotFound
		}
		var err error
		p, err = db.getPeer(tx, binary.BigEndian.Uint64(idBytes))
		return err
	})
	return p, err
}

// GetPeers returns every saved peer.
func (db *DB) GetPeers() ([]*PeerRecord, error) {
	var results []*PeerRecord
	err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(peerBucket).ForEach(func(k, v []byte) error {
			p, err := decodePeer(v)
			if err != nil {
				return err
			}
			results = append(results, p)
			return nil
		})
	})
	return results, err
}

// GetAutoconnectPeers returns every saved peer with autoconnect enabled.
func (db *DB) GetAutoconnectPeers() ([]*PeerRecord, error) {
	peers, err := db.GetPeers()
	if err != nil {
		return nil, err
	}
	var out []*PeerRecord
	for _, p := range peers {
		if p.Autoconnect {
			out = append(out, p)
		}
	}
	return out, nil
}

// SetPeerAutoconnect updates a saved peer's autoconnect flag.
func (db *DB) SetPeerAutoconnect(id uint64, autoconnect bool) error {
	return db.Update(func(tx *bolt.Tx) error {
		p, err := db.getPeer(tx, id)
		if err != nil {
			return err
		}
		p.Autoconnect = autoconnect
		encoded, err := encodePeer(p)
		if err != nil {
			return err
		}
		return tx.Bucket(peerBucket).Put(peerIDKey(id), encoded)
	})
}

// SetPeerName renames a saved peer.
func (db *DB) SetPeerName(id uint64, name string) error {
	return db.Update(func(tx *bolt.Tx) error {
		p, err := db.getPeer(tx, id)
		if err != nil {
			return err
		}
		p.PeerName = name
		encoded, err := encodePeer(p)
		if err != nil {
			return err
		}
		return tx.Bucket(peerBucket).Put(peerIDKey(id), encoded)
	})
}

// DeletePeer removes a saved peer and its host/port index entry.
func (db *DB) DeletePeer(id uint64) error {
	return db.Update(func(tx *bolt.Tx) error {
		p, err := db.getPeer(tx, id)
		if err != nil {
			return err
		}
		tx.Bucket(peerByHostPort).Delete(peerHostPortKey(p.Address.Host, p.Address.Port))
		return tx.Bucket(peerBucket).Delete(peerIDKey(id))
	})
}
