package store

import (
	"bytes"
	"encoding/binary"

	bolt "github.com/coreos/bbolt"
)

func profileIDKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func encodeProfile(p *Profile) ([]byte, error) {
	buf := newBuf()
	if err := binary.Write(buf, binary.BigEndian, p.ProfileID); err != nil {
		return nil, err
	}
	if err := writeVarString(buf, p.ProfileName); err != nil {
		return nil, err
	}
	if err := writeVarString(buf, p.Address); err != nil {
		return nil, err
	}
	if err := writeVarBytes(buf, p.PrivateKey); err != nil {
		return nil, err
	}
	if err := writeBool(buf, p.Following); err != nil {
		return nil, err
	}
	if err := writeBool(buf, p.UseCustomPrice); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, p.CustomPriceMsat); err != nil {
		return nil, err
	}
	if err := writeVarBytes(buf, p.ProfileImage); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, p.CreatedTimeMs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeProfile(data []byte) (*Profile, error) {
	r := bytes.NewReader(data)
	p := &Profile{}
	if err := binary.Read(r, binary.BigEndian, &p.ProfileID); err != nil {
		return nil, err
	}
	var err error
	if p.ProfileName, err = readVarString(r); err != nil {
		return nil, err
	}
	if p.Address, err = readVarString(r); err != nil {
		return nil, err
	}
	if p.PrivateKey, err = readVarBytes(r); err != nil {
		return nil, err
	}
	if p.Following, err = readBool(r); err != nil {
		return nil, err
	}
	if p.UseCustomPrice, err = readBool(r); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.CustomPriceMsat); err != nil {
		return nil, err
	}
	if p.ProfileImage, err = readVarBytes(r); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.CreatedTimeMs); err != nil {
		return nil, err
	}
	return p, nil
}

// InsertProfile stores a new profile and assigns it an autoincrement ID.
// A duplicate profile_name or address returns ErrAlreadyExists.
func (db *DB) InsertProfile(p *Profile) (uint64, error) {
	var id uint64
	err := db.Update(func(tx *bolt.Tx) error {
		names := tx.Bucket(profileByName)
		if names.Get([]byte(p.ProfileName)) != nil {
			return ErrAlreadyExists
		}
		addrs := tx.Bucket(profileByAddress)
		if addrs.Get([]byte(p.Address)) != nil {
			return ErrAlreadyExists
		}

		b := tx.Bucket(profileBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		id = seq
		p.ProfileID = id
		p.CreatedTimeMs = nowMs()

		encoded, err := encodeProfile(p)
		if err != nil {
			return err
		}
		if err := b.Put(profileIDKey(id), encoded); err != nil {
			return err
		}
		if err := names.Put([]byte(p.ProfileName), profileIDKey(id)); err != nil {
			return err
		}
		return addrs.Put([]byte(p.Address), profileIDKey(id))
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (db *DB) getProfile(tx *bolt.Tx, id uint64) (*Profile, error) {
	data := tx.Bucket(profileBucket).Get(profileIDKey(id))
	if data == nil {
		return nil, ErrNotFound
	}
	return decodeProfile(data)
}

// GetProfile returns the profile with the given ID.
func (db *DB) GetProfile(id uint64) (*Profile, error) {
	var p *Profile
	err := db.View(func(tx *bolt.Tx) error {
		var err error
		p, err = db.getProfile(tx, id)
		return err
	})
	return p, err
}

// GetProfileByAddress returns the profile with the given squeak address.
func (db *DB) GetProfileByAddress(address string) (*Profile, error) {
	var p *Profile
	err := db.View(func(tx *bolt.Tx) error {
		idBytes := tx.Bucket(profileByAddress).Get([]byte(address))
		if idBytes == nil {
			return ErrNotFound
		}
		var err error
		p, err = db.getProfile(tx, binary.BigEndian.Uint64(idBytes))
		return err
	})
	return p, err
}

// GetProfileByName returns the profile with the given profile name.
func (db *DB) GetProfileByName(name string) (*Profile, error) {
	var p *Profile
	err := db.View(func(tx *bolt.Tx) error {
		idBytes := tx.Bucket(profileByName).Get([]byte(name))
		if idBytes == nil {
			return ErrNotFound
		}
		var err error
		p, err = db.getProfile(tx, binary.BigEndian.Uint64(idBytes))
		return err
	})
	return p, err
}

// profileFilter selects which profiles GetProfilesFiltered returns.
type profileFilter func(*Profile) bool

func (db *DB) getProfilesFiltered(filter profileFilter) ([]*Profile, error) {
	var results []*Profile
	err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(profileBucket).ForEach(func(k, v []byte) error {
			p, err := decodeProfile(v)
			if err != nil {
				return err
			}
			if filter == nil || filter(p) {
				results = append(results, p)
			}
			return nil
		})
	})
	return results, err
}

// GetProfiles returns every profile.
func (db *DB) GetProfiles() ([]*Profile, error) { return db.getProfilesFiltered(nil) }

// GetSigningProfiles returns every profile that owns a private key.
func (db *DB) GetSigningProfiles() ([]*Profile, error) {
	return db.getProfilesFiltered(func(p *Profile) bool { return p.IsSigningProfile() })
}

// GetContactProfiles returns every profile that does not own a private key.
func (db *DB) GetContactProfiles() ([]*Profile, error) {
	return db.getProfilesFiltered(func(p *Profile) bool { return !p.IsSigningProfile() })
}

// GetFollowingProfiles returns every profile currently being followed.
func (db *DB) GetFollowingProfiles() ([]*Profile, error) {
	return db.getProfilesFiltered(func(p *Profile) bool { return p.Following })
}

// GetFollowingProfilesFromAddresses returns the followed profiles whose
// address is in addresses.
func (db *DB) GetFollowingProfilesFromAddresses(addresses []string) ([]*Profile, error) {
	want := make(map[string]bool, len(addresses))
	for _, a := range addresses {
		want[a] = true
	}
	return db.getProfilesFiltered(func(p *Profile) bool {
		return p.Following && want[p.Address]
	})
}

func (db *DB) updateProfile(id uint64, mutate func(*Profile)) error {
	return db.Update(func(tx *bolt.Tx) error {
		p, err := db.getProfile(tx, id)
		if err != nil {
			return err
		}
		mutate(p)
		encoded, err := encodeProfile(p)
		if err != nil {
			return err
		}
		return tx.Bucket(profileBucket).Put(profileIDKey(id), encoded)
	})
}

// SetProfileFollowing updates whether a profile's squeaks appear on the
// timeline.
func (db *DB) SetProfileFollowing(id uint64, following bool) error {
	return db.updateProfile(id, func(p *Profile) { p.Following = following })
}

// SetProfileUseCustomPrice toggles whether a profile's custom price
// overrides the node-wide default when selling its squeaks' keys.
func (db *DB) SetProfileUseCustomPrice(id uint64, use bool) error {
	return db.updateProfile(id, func(p *Profile) { p.UseCustomPrice = use })
}

// SetProfileCustomPriceMsat sets the per-profile sale price.
func (db *DB) SetProfileCustomPriceMsat(id uint64, priceMsat int64) error {
	return db.updateProfile(id, func(p *Profile) { p.CustomPriceMsat = priceMsat })
}

// SetProfileName renames a profile. Does not affect its address index.
func (db *DB) SetProfileName(id uint64, name string) error {
	return db.Update(func(tx *bolt.Tx) error {
		p, err := db.getProfile(tx, id)
		if err != nil {
			return err
		}
		names := tx.Bucket(profileByName)
		if existing := names.Get([]byte(name)); existing != nil {
			return ErrAlreadyExists
		}
		names.Delete([]byte(p.ProfileName))
		p.ProfileName = name
		if err := names.Put([]byte(name), profileIDKey(id)); err != nil {
			return err
		}
		encoded, err := encodeProfile(p)
		if err != nil {
			return err
		}
		return tx.Bucket(profileBucket).Put(profileIDKey(id), encoded)
	})
}

// SetProfileImage sets a profile's avatar bytes.
func (db *DB) SetProfileImage(id uint64, image []byte) error {
	return db.updateProfile(id, func(p *Profile) { p.ProfileImage = image })
}

// DeleteProfile removes a profile and its name/address indexes.
func (db *DB) DeleteProfile(id uint64) error {
	return db.Update(func(tx *bolt.Tx) error {
		p, err := db.getProfile(tx, id)
		if err != nil {
			return err
		}
		tx.Bucket(profileByName).Delete([]byte(p.ProfileName))
		tx.Bucket(profileByAddress).Delete([]byte(p.Address))
		return tx.Bucket(profileBucket).Delete(profileIDKey(id))
	})
}
