package store

import (
	"io/ioutil"
	"os"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	f, err := ioutil.TempFile("", "squeaknode-store-*.db")
	if err != nil {
		t.Fatalf("TempFile: %v", err)
	}
	path := f.Name()
	f.Close()
	os.Remove(path)

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(path)
	})
	return db
}

func testHash(b byte) [32]byte {
	var h [32]byte
	h[0] = b
	return h
}

func TestInsertAndGetSqueak(t *testing.T) {
	db := openTestDB(t)

	entry := &SqueakEntry{
		Hash:             testHash(1),
		AuthorAddress:    "addr1",
		SerializedSqueak: []byte("serialized"),
		BlockHeight:      100,
		BlockHash:        testHash(2),
		SqueakTime:       1000,
		Content:          "",
	}

	hash, err := db.InsertSqueak(entry)
	if err != nil {
		t.Fatalf("InsertSqueak: %v", err)
	}
	if hash == nil || *hash != entry.Hash {
		t.Fatalf("expected returned hash to match inserted hash")
	}

	got, err := db.GetSqueakEntry(entry.Hash)
	if err != nil {
		t.Fatalf("GetSqueakEntry: %v", err)
	}
	if got.AuthorAddress != "addr1" || got.BlockHeight != 100 {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if got.IsUnlocked() {
		t.Fatalf("expected squeak to start locked")
	}
}

func TestInsertSqueakIdempotent(t *testing.T) {
	db := openTestDB(t)

	entry := &SqueakEntry{Hash: testHash(1), AuthorAddress: "addr1", SqueakTime: 1000}
	if _, err := db.InsertSqueak(entry); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	dup := &SqueakEntry{Hash: testHash(1), AuthorAddress: "addr2", SqueakTime: 2000}
	hash, err := db.InsertSqueak(dup)
	if err != nil {
		t.Fatalf("duplicate insert returned error: %v", err)
	}
	if hash != nil {
		t.Fatalf("expected (nil, nil) on duplicate insert, got hash %x", *hash)
	}

	got, err := db.GetSqueakEntry(testHash(1))
	if err != nil {
		t.Fatalf("GetSqueakEntry: %v", err)
	}
	if got.AuthorAddress != "addr1" {
		t.Fatalf("duplicate insert must not overwrite original row, got author %q", got.AuthorAddress)
	}
}

func TestSetSqueakDecryptionKeyAndLike(t *testing.T) {
	db := openTestDB(t)
	entry := &SqueakEntry{Hash: testHash(1), AuthorAddress: "addr1", SqueakTime: 1000}
	if _, err := db.InsertSqueak(entry); err != nil {
		t.Fatalf("InsertSqueak: %v", err)
	}

	key := testHash(9)
	if err := db.SetSqueakDecryptionKey(entry.Hash, key, "hello world"); err != nil {
		t.Fatalf("SetSqueakDecryptionKey: %v", err)
	}
	got, err := db.GetSqueakEntry(entry.Hash)
	if err != nil {
		t.Fatalf("GetSqueakEntry: %v", err)
	}
	if !got.IsUnlocked() || got.Content != "hello world" {
		t.Fatalf("expected squeak to be unlocked with decrypted content, got %+v", got)
	}

	if err := db.SetSqueakLiked(entry.Hash); err != nil {
		t.Fatalf("SetSqueakLiked: %v", err)
	}
	got, err = db.GetSqueakEntry(entry.Hash)
	if err != nil {
		t.Fatalf("GetSqueakEntry: %v", err)
	}
	if !got.IsLiked() {
		t.Fatalf("expected squeak to be liked")
	}

	liked, err := db.GetLikedSqueakEntries(10, nil)
	if err != nil {
		t.Fatalf("GetLikedSqueakEntries: %v", err)
	}
	if len(liked) != 1 || liked[0].Hash != entry.Hash {
		t.Fatalf("expected liked list to contain inserted squeak, got %+v", liked)
	}

	if err := db.SetSqueakUnliked(entry.Hash); err != nil {
		t.Fatalf("SetSqueakUnliked: %v", err)
	}
	liked, err = db.GetLikedSqueakEntries(10, nil)
	if err != nil {
		t.Fatalf("GetLikedSqueakEntries: %v", err)
	}
	if len(liked) != 0 {
		t.Fatalf("expected no liked squeaks after unlike, got %d", len(liked))
	}
}

func TestTimelinePaginationOrder(t *testing.T) {
	db := openTestDB(t)
	following := map[string]bool{"addr1": true}

	for i := byte(1); i <= 5; i++ {
		e := &SqueakEntry{
			Hash:          testHash(i),
			AuthorAddress: "addr1",
			BlockHeight:   int32(i),
			SqueakTime:    int64(i) * 1000,
		}
		if _, err := db.InsertSqueak(e); err != nil {
			t.Fatalf("InsertSqueak %d: %v", i, err)
		}
	}

	page1, err := db.GetTimelineSqueakEntries(following, 2, nil)
	if err != nil {
		t.Fatalf("GetTimelineSqueakEntries: %v", err)
	}
	if len(page1) != 2 || page1[0].BlockHeight != 5 || page1[1].BlockHeight != 4 {
		t.Fatalf("expected descending page starting at height 5, got %+v", page1)
	}

	page2, err := db.GetTimelineSqueakEntries(following, 2, page1[len(page1)-1])
	if err != nil {
		t.Fatalf("GetTimelineSqueakEntries page2: %v", err)
	}
	if len(page2) != 2 || page2[0].BlockHeight != 3 || page2[1].BlockHeight != 2 {
		t.Fatalf("expected page2 to continue strictly after last, got %+v", page2)
	}
}

func TestReplyAndAncestorWalk(t *testing.T) {
	db := openTestDB(t)

	root := &SqueakEntry{Hash: testHash(1), AuthorAddress: "addr1", SqueakTime: 1000}
	if _, err := db.InsertSqueak(root); err != nil {
		t.Fatalf("insert root: %v", err)
	}
	rootHash := root.Hash
	child := &SqueakEntry{Hash: testHash(2), AuthorAddress: "addr1", SqueakTime: 2000, ReplyTo: &rootHash}
	if _, err := db.InsertSqueak(child); err != nil {
		t.Fatalf("insert child: %v", err)
	}
	childHash := child.Hash
	grandchild := &SqueakEntry{Hash: testHash(3), AuthorAddress: "addr1", SqueakTime: 3000, ReplyTo: &childHash}
	if _, err := db.InsertSqueak(grandchild); err != nil {
		t.Fatalf("insert grandchild: %v", err)
	}

	replies, err := db.GetReplySqueakEntries(rootHash, 10, nil)
	if err != nil {
		t.Fatalf("GetReplySqueakEntries: %v", err)
	}
	if len(replies) != 1 || replies[0].Hash != childHash {
		t.Fatalf("expected single direct reply, got %+v", replies)
	}

	chain, err := db.GetAncestorSqueakEntries(grandchild.Hash)
	if err != nil {
		t.Fatalf("GetAncestorSqueakEntries: %v", err)
	}
	if len(chain) != 3 || chain[0].Hash != rootHash || chain[2].Hash != grandchild.Hash {
		t.Fatalf("expected root-to-leaf chain of 3, got %+v", chain)
	}
}

func TestProfileCRUD(t *testing.T) {
	db := openTestDB(t)

	p := &Profile{ProfileName: "alice", Address: "SqAddr1", PrivateKey: []byte{1, 2, 3}, Following: true}
	id, err := db.InsertProfile(p)
	if err != nil {
		t.Fatalf("InsertProfile: %v", err)
	}

	if _, err := db.InsertProfile(&Profile{ProfileName: "alice", Address: "SqAddr2"}); err != ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists for duplicate name, got %v", err)
	}
	if _, err := db.InsertProfile(&Profile{ProfileName: "bob", Address: "SqAddr1"}); err != ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists for duplicate address, got %v", err)
	}

	got, err := db.GetProfile(id)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if !got.IsSigningProfile() {
		t.Fatalf("expected signing profile")
	}

	byAddr, err := db.GetProfileByAddress("SqAddr1")
	if err != nil || byAddr.ProfileID != id {
		t.Fatalf("GetProfileByAddress mismatch: %v %+v", err, byAddr)
	}

	if err := db.SetProfileName(id, "alice2"); err != nil {
		t.Fatalf("SetProfileName: %v", err)
	}
	if _, err := db.GetProfileByName("alice"); err != ErrNotFound {
		t.Fatalf("expected old name to be gone, got %v", err)
	}
	if _, err := db.GetProfileByName("alice2"); err != nil {
		t.Fatalf("expected new name to resolve: %v", err)
	}

	if err := db.DeleteProfile(id); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	if _, err := db.GetProfile(id); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPeerCRUD(t *testing.T) {
	db := openTestDB(t)

	addr := PeerAddress{Host: "example.com", Port: 8336}
	id, err := db.InsertPeer(&PeerRecord{PeerName: "node1", Address: addr, Autoconnect: false})
	if err != nil {
		t.Fatalf("InsertPeer: %v", err)
	}

	if _, err := db.InsertPeer(&PeerRecord{PeerName: "node2", Address: addr}); err != ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists for duplicate host/port, got %v", err)
	}

	if err := db.SetPeerAutoconnect(id, true); err != nil {
		t.Fatalf("SetPeerAutoconnect: %v", err)
	}
	autos, err := db.GetAutoconnectPeers()
	if err != nil || len(autos) != 1 {
		t.Fatalf("expected one autoconnect peer: %v %+v", err, autos)
	}

	if err := db.DeletePeer(id); err != nil {
		t.Fatalf("DeletePeer: %v", err)
	}
	if _, err := db.GetPeerByAddress(addr); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestReceivedOfferIdempotentAndExpiry(t *testing.T) {
	db := openTestDB(t)

	now := timeNowUnix()
	offer := &ReceivedOffer{
		SqueakHash:       testHash(1),
		PaymentHash:      testHash(5),
		InvoiceTimestamp: now,
		InvoiceExpiry:    3600,
		PriceMsat:        1000,
	}
	id, err := db.InsertReceivedOffer(offer)
	if err != nil {
		t.Fatalf("InsertReceivedOffer: %v", err)
	}
	if id == nil {
		t.Fatalf("expected non-nil id on first insert")
	}

	dup := &ReceivedOffer{SqueakHash: testHash(2), PaymentHash: testHash(5)}
	dupID, err := db.InsertReceivedOffer(dup)
	if err != nil {
		t.Fatalf("duplicate InsertReceivedOffer returned error: %v", err)
	}
	if dupID != nil {
		t.Fatalf("expected nil id on duplicate payment_hash insert")
	}

	offers, err := db.GetReceivedOffers(testHash(1))
	if err != nil {
		t.Fatalf("GetReceivedOffers: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("expected one offer, got %d", len(offers))
	}

	expired, err := db.GetReceivedOffer(*id)
	if err != nil {
		t.Fatalf("GetReceivedOffer: %v", err)
	}
	if expired.IsExpired(now + 3600 + 1) != true {
		t.Fatalf("expected offer to report expired past invoice window")
	}
}

func TestSentOfferSweep(t *testing.T) {
	db := openTestDB(t)

	o := &SentOffer{
		SqueakHash:       testHash(1),
		PaymentHash:      testHash(2),
		InvoiceTimestamp: 0,
		InvoiceExpiry:    10,
	}
	if _, err := db.InsertSentOffer(o); err != nil {
		t.Fatalf("InsertSentOffer: %v", err)
	}

	n, err := db.SweepSentOffers(1000000)
	if err != nil {
		t.Fatalf("SweepSentOffers: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected sweep to delete the expired+grace-passed offer, got %d", n)
	}

	if _, err := db.GetSentOfferByPaymentHash(testHash(2)); err != ErrNotFound {
		t.Fatalf("expected offer to be gone after sweep, got %v", err)
	}
}

func TestReceivedPaymentIdempotent(t *testing.T) {
	db := openTestDB(t)

	p := &ReceivedPayment{SqueakHash: testHash(1), PaymentHash: testHash(3), PriceMsat: 1000}
	id, err := db.InsertReceivedPayment(p)
	if err != nil {
		t.Fatalf("InsertReceivedPayment: %v", err)
	}
	if id == nil {
		t.Fatalf("expected non-nil id")
	}

	dupID, err := db.InsertReceivedPayment(&ReceivedPayment{SqueakHash: testHash(2), PaymentHash: testHash(3)})
	if err != nil {
		t.Fatalf("duplicate InsertReceivedPayment returned error: %v", err)
	}
	if dupID != nil {
		t.Fatalf("expected nil id for duplicate payment hash")
	}
}

func TestRetentionSweep(t *testing.T) {
	db := openTestDB(t)

	owned := map[string]bool{"mine": true}
	old := &SqueakEntry{Hash: testHash(1), AuthorAddress: "other", SqueakTime: 1}
	if _, err := db.InsertSqueak(old); err != nil {
		t.Fatalf("insert old: %v", err)
	}
	mine := &SqueakEntry{Hash: testHash(2), AuthorAddress: "mine", SqueakTime: 1}
	if _, err := db.InsertSqueak(mine); err != nil {
		t.Fatalf("insert mine: %v", err)
	}

	n, err := db.RunRetentionSweep(0, owned)
	if err != nil {
		t.Fatalf("RunRetentionSweep: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one deletion (owned squeak retained), got %d", n)
	}
	if _, err := db.GetSqueakEntry(testHash(2)); err != nil {
		t.Fatalf("expected owned squeak to survive sweep: %v", err)
	}
	if _, err := db.GetSqueakEntry(testHash(1)); err != ErrNotFound {
		t.Fatalf("expected non-owned squeak to be swept, got %v", err)
	}
}
