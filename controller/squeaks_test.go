package controller

import (
	"testing"

	"github.com/btcsuite/btcd/btcec"

	"github.com/jzernik/squeaknode/squeak"
)

// makeTestSqueak builds and inserts a signed, unlocked squeak without
// going through MakeSqueak, so the test doesn't need a bitcoin adapter to
// resolve a block anchor.
func makeTestSqueak(t *testing.T, c *Controller, content string, blockHeight int32, replyTo *squeak.Hash) *squeak.Squeak {
	t.Helper()

	signingKey, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}

	var blockHash squeak.Hash
	blockHash[0] = byte(blockHeight)

	s, secretKey, err := squeak.MakeSqueak(signingKey, c.cfg.Params, content, blockHeight, blockHash, 1700000000, replyTo)
	if err != nil {
		t.Fatalf("MakeSqueak: %v", err)
	}

	if _, err := c.insertSqueak(s, &secretKey); err != nil {
		t.Fatalf("insertSqueak: %v", err)
	}
	return s
}

func TestInsertSqueakAndGetSqueakEntry(t *testing.T) {
	c := newTestController(t)

	s := makeTestSqueak(t, c, "hello world", 100, nil)

	entry, err := c.GetSqueakEntry([32]byte(s.Hash()))
	if err != nil {
		t.Fatalf("GetSqueakEntry: %v", err)
	}
	if entry.Content != "hello world" {
		t.Fatalf("unexpected content: %q", entry.Content)
	}
	if !entry.IsUnlocked() {
		t.Fatalf("expected squeak to be unlocked, since its own node authored it")
	}

	raw, err := c.GetSqueak([32]byte(s.Hash()))
	if err != nil {
		t.Fatalf("GetSqueak: %v", err)
	}
	if len(raw) == 0 {
		t.Fatalf("expected serialized squeak bytes")
	}
}

func TestLikeAndUnlikeSqueak(t *testing.T) {
	c := newTestController(t)
	s := makeTestSqueak(t, c, "likeable", 100, nil)
	hash := [32]byte(s.Hash())

	if err := c.LikeSqueak(hash); err != nil {
		t.Fatalf("LikeSqueak: %v", err)
	}
	entry, err := c.GetSqueakEntry(hash)
	if err != nil {
		t.Fatalf("GetSqueakEntry: %v", err)
	}
	if !entry.IsLiked() {
		t.Fatalf("expected squeak to be liked")
	}

	liked, err := c.GetLikedSqueakEntries(10, nil)
	if err != nil {
		t.Fatalf("GetLikedSqueakEntries: %v", err)
	}
	if len(liked) != 1 || liked[0].Hash != hash {
		t.Fatalf("unexpected liked entries: %+v", liked)
	}

	if err := c.UnlikeSqueak(hash); err != nil {
		t.Fatalf("UnlikeSqueak: %v", err)
	}
	entry, err = c.GetSqueakEntry(hash)
	if err != nil {
		t.Fatalf("GetSqueakEntry: %v", err)
	}
	if entry.IsLiked() {
		t.Fatalf("expected squeak to no longer be liked")
	}
}

func TestDeleteSqueakRemovesEntry(t *testing.T) {
	c := newTestController(t)
	s := makeTestSqueak(t, c, "ephemeral", 100, nil)
	hash := [32]byte(s.Hash())

	if err := c.DeleteSqueak(hash); err != nil {
		t.Fatalf("DeleteSqueak: %v", err)
	}
	if _, err := c.GetSqueakEntry(hash); err == nil {
		t.Fatalf("expected error looking up deleted squeak")
	}
}

func TestGetSqueakEntriesForAddress(t *testing.T) {
	c := newTestController(t)
	s := makeTestSqueak(t, c, "by author", 100, nil)

	entries, err := c.GetSqueakEntriesForAddress(s.AuthorAddress, 10, nil)
	if err != nil {
		t.Fatalf("GetSqueakEntriesForAddress: %v", err)
	}
	if len(entries) != 1 || entries[0].Hash != [32]byte(s.Hash()) {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestReplyAndAncestorSqueakEntries(t *testing.T) {
	c := newTestController(t)

	root := makeTestSqueak(t, c, "root", 100, nil)
	rootHash := root.Hash()
	reply := makeTestSqueak(t, c, "reply", 101, &rootHash)

	replies, err := c.GetReplySqueakEntries([32]byte(rootHash), 10, nil)
	if err != nil {
		t.Fatalf("GetReplySqueakEntries: %v", err)
	}
	if len(replies) != 1 || replies[0].Hash != [32]byte(reply.Hash()) {
		t.Fatalf("unexpected replies: %+v", replies)
	}

	ancestors, err := c.GetAncestorSqueakEntries([32]byte(reply.Hash()))
	if err != nil {
		t.Fatalf("GetAncestorSqueakEntries: %v", err)
	}
	if len(ancestors) != 2 {
		t.Fatalf("expected root + reply in ancestor chain, got %d", len(ancestors))
	}
}

func TestGetTimelineSqueakEntriesFollowsProfiles(t *testing.T) {
	c := newTestController(t)

	s := makeTestSqueak(t, c, "timeline", 100, nil)

	empty, err := c.GetTimelineSqueakEntries(10, nil)
	if err != nil {
		t.Fatalf("GetTimelineSqueakEntries: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty timeline before following the author, got %+v", empty)
	}

	if _, err := c.CreateContactProfile("author", s.AuthorAddress); err != nil {
		t.Fatalf("CreateContactProfile: %v", err)
	}

	entries, err := c.GetTimelineSqueakEntries(10, nil)
	if err != nil {
		t.Fatalf("GetTimelineSqueakEntries: %v", err)
	}
	if len(entries) != 1 || entries[0].Hash != [32]byte(s.Hash()) {
		t.Fatalf("unexpected timeline entries: %+v", entries)
	}
}
