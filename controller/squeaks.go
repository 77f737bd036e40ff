package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcec"

	"github.com/jzernik/squeaknode/squeak"
	"github.com/jzernik/squeaknode/store"
)

// MakeSqueak authors and stores a new squeak, per §6 (make_squeak). The
// block anchor is resolved and verified against the bitcoin adapter
// before the squeak is persisted, per §3's block-hash invariant.
func (c *Controller) MakeSqueak(profile *store.Profile, content string, blockHeight int32, replyTo *[32]byte) (*store.SqueakEntry, error) {
	if !profile.IsSigningProfile() {
		return nil, fmt.Errorf("controller: profile %q cannot sign", profile.ProfileName)
	}

	signingKey, _ := btcec.PrivKeyFromBytes(btcec.S256(), profile.PrivateKey)

	block, err := c.cfg.Bitcoin.GetBlockInfo(blockHeight)
	if err != nil {
		return nil, fmt.Errorf("controller: resolve block anchor: %w", err)
	}

	var replyHash *squeak.Hash
	if replyTo != nil {
		h := squeak.Hash(*replyTo)
		replyHash = &h
	}

	s, secretKey, err := squeak.MakeSqueak(signingKey, c.cfg.Params, content, blockHeight, squeak.Hash(block.Hash), time.Now().Unix(), replyHash)
	if err != nil {
		return nil, err
	}

	return c.insertSqueak(s, &secretKey)
}

func (c *Controller) insertSqueak(s *squeak.Squeak, secretKey *[32]byte) (*store.SqueakEntry, error) {
	var buf bytes.Buffer
	if err := s.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("controller: serialize squeak: %w", err)
	}

	var replyTo *[32]byte
	if s.ReplyTo != nil {
		r := [32]byte(*s.ReplyTo)
		replyTo = &r
	}

	hash := [32]byte(s.Hash())
	entry := &store.SqueakEntry{
		Hash:             hash,
		AuthorAddress:    s.AuthorAddress,
		SerializedSqueak: buf.Bytes(),
		BlockHeight:      s.BlockHeight,
		BlockHash:        [32]byte(s.BlockHash),
		SqueakTime:       s.SqueakTime,
		ReplyTo:          replyTo,
		SecretKey:        secretKey,
		CreatedTimeMs:    time.Now().UnixNano() / int64(time.Millisecond),
	}
	if secretKey != nil {
		content, err := squeak.Decrypt(s, *secretKey)
		if err != nil {
			return nil, err
		}
		entry.Content = content
	}

	if _, err := c.cfg.Store.InsertSqueak(entry); err != nil {
		return nil, err
	}

	c.subs.Publish(topicNewSqueaks, entry)
	return entry, nil
}

// InsertReceivedSqueak validates and stores a squeak received from a
// peer, per §4.5 ("recv squeak: validate + offer to controller").
func (c *Controller) InsertReceivedSqueak(s *squeak.Squeak) (*store.SqueakEntry, error) {
	if err := squeak.Verify(s); err != nil {
		return nil, err
	}

	block, err := c.cfg.Bitcoin.GetBlockInfo(s.BlockHeight)
	if err != nil {
		return nil, fmt.Errorf("controller: resolve block anchor: %w", err)
	}
	if err := squeak.VerifyBlockAnchor(s, squeak.Hash(block.Hash)); err != nil {
		return nil, err
	}

	return c.insertSqueak(s, nil)
}

// GetSqueak returns the raw serialized squeak bytes for hash, if stored.
func (c *Controller) GetSqueak(hash [32]byte) ([]byte, error) {
	entry, err := c.cfg.Store.GetSqueakEntry(hash)
	if err != nil {
		return nil, err
	}
	return entry.SerializedSqueak, nil
}

// GetSqueakEntry returns the full entry for hash, per §6
// (get_squeak_entry).
func (c *Controller) GetSqueakEntry(hash [32]byte) (*store.SqueakEntry, error) {
	return c.cfg.Store.GetSqueakEntry(hash)
}

// GetTimelineSqueakEntries lists squeaks from followed authors, per §6.
func (c *Controller) GetTimelineSqueakEntries(limit int, last *store.SqueakEntry) ([]*store.SqueakEntry, error) {
	profiles, err := c.cfg.Store.GetFollowingProfiles()
	if err != nil {
		return nil, err
	}
	following := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		following[p.Address] = true
	}
	return c.cfg.Store.GetTimelineSqueakEntries(following, limit, last)
}

// GetSqueakEntriesForAddress lists squeaks by a single author, per §6.
func (c *Controller) GetSqueakEntriesForAddress(address string, limit int, last *store.SqueakEntry) ([]*store.SqueakEntry, error) {
	return c.cfg.Store.GetSqueakEntriesForAddress(address, limit, last)
}

// GetSqueakEntriesForTextSearch substring-searches squeak content, per §6.
func (c *Controller) GetSqueakEntriesForTextSearch(text string, limit int, last *store.SqueakEntry) ([]*store.SqueakEntry, error) {
	return c.cfg.Store.GetSqueakEntriesForTextSearch(text, limit, last)
}

// GetAncestorSqueakEntries walks the reply_to chain root-first, per §6.
func (c *Controller) GetAncestorSqueakEntries(hash [32]byte) ([]*store.SqueakEntry, error) {
	return c.cfg.Store.GetAncestorSqueakEntries(hash)
}

// GetReplySqueakEntries lists direct replies to hash, per §6.
func (c *Controller) GetReplySqueakEntries(hash [32]byte, limit int, last *store.SqueakEntry) ([]*store.SqueakEntry, error) {
	return c.cfg.Store.GetReplySqueakEntries(hash, limit, last)
}

// GetLikedSqueakEntries lists liked squeaks newest-first, per §6.
func (c *Controller) GetLikedSqueakEntries(limit int, last *store.SqueakEntry) ([]*store.SqueakEntry, error) {
	return c.cfg.Store.GetLikedSqueakEntries(limit, last)
}

// LikeSqueak marks hash liked, per §6.
func (c *Controller) LikeSqueak(hash [32]byte) error {
	if err := c.cfg.Store.SetSqueakLiked(hash); err != nil {
		return err
	}
	c.publishSqueakEntryUpdate(hash)
	return nil
}

// UnlikeSqueak clears hash's liked flag, per §6.
func (c *Controller) UnlikeSqueak(hash [32]byte) error {
	if err := c.cfg.Store.SetSqueakUnliked(hash); err != nil {
		return err
	}
	c.publishSqueakEntryUpdate(hash)
	return nil
}

// DeleteSqueak removes hash and its offers, per §6.
func (c *Controller) DeleteSqueak(hash [32]byte) error {
	if err := c.cfg.Store.DeleteSqueak(hash); err != nil {
		return err
	}
	return c.cfg.Store.DeleteOffersForSqueak(hash)
}

func (c *Controller) publishSqueakEntryUpdate(hash [32]byte) {
	entry, err := c.cfg.Store.GetSqueakEntry(hash)
	if err != nil {
		return
	}
	c.subs.Publish(squeakTopic(hash), entry)
}
