package store

// PeerAddress identifies a remote node's network location, per spec §3.
type PeerAddress struct {
	Host   string
	Port   uint16
	UseTor bool
}

// SqueakEntry is the full row of a stored squeak, joined with whether it is
// currently liked, per spec §3.
type SqueakEntry struct {
	Hash           [32]byte
	AuthorAddress  string
	SerializedSqueak []byte
	BlockHeight    int32
	BlockHash      [32]byte
	SqueakTime     int64
	ReplyTo        *[32]byte
	SecretKey      *[32]byte
	Content        string
	CreatedTimeMs  int64
	LikedTimeMs    *int64
}

// IsUnlocked reports whether this entry's content has been decrypted.
func (e *SqueakEntry) IsUnlocked() bool {
	return e.SecretKey != nil
}

// IsLiked reports whether this entry has been liked.
func (e *SqueakEntry) IsLiked() bool {
	return e.LikedTimeMs != nil
}

// Profile is a signing or contact profile, per spec §3.
type Profile struct {
	ProfileID       uint64
	ProfileName     string
	Address         string
	PrivateKey      []byte // nil for a contact profile
	Following       bool
	UseCustomPrice  bool
	CustomPriceMsat int64
	ProfileImage    []byte
	CreatedTimeMs   int64
}

// IsSigningProfile reports whether this profile can author squeaks.
func (p *Profile) IsSigningProfile() bool {
	return len(p.PrivateKey) > 0
}

// PeerRecord is a saved peer, per spec §3.
type PeerRecord struct {
	PeerID        uint64
	PeerName      string
	Address       PeerAddress
	Autoconnect   bool
	CreatedTimeMs int64
}

// SentOffer is an offer this node minted for a buyer, per spec §3.
type SentOffer struct {
	SentOfferID      uint64
	SqueakHash       [32]byte
	PaymentHash      [32]byte
	SecretKey        [32]byte
	Nonce            [32]byte
	PriceMsat        int64
	PaymentRequest   string
	InvoiceTimestamp int64
	InvoiceExpiry    int64
	PeerAddress      PeerAddress
	Paid             bool
	CreatedTimeMs    int64
}

// IsExpired reports whether the offer's invoice window has passed nowUnix.
func (o *SentOffer) IsExpired(nowUnix int64) bool {
	return nowUnix >= o.InvoiceTimestamp+o.InvoiceExpiry
}

// ReceivedOffer is an offer a peer sent us, per spec §3.
type ReceivedOffer struct {
	ReceivedOfferID  uint64
	SqueakHash       [32]byte
	PaymentHash      [32]byte
	Nonce            [32]byte
	PaymentPoint     [33]byte
	InvoiceTimestamp int64
	InvoiceExpiry    int64
	PriceMsat        int64
	PaymentRequest   string
	Destination      [33]byte
	LightningHost    string
	LightningPort    uint16
	PeerAddress      PeerAddress
	Paid             bool
	CreatedTimeMs    int64
}

// IsExpired reports whether the offer's invoice window has passed nowUnix.
func (o *ReceivedOffer) IsExpired(nowUnix int64) bool {
	return nowUnix >= o.InvoiceTimestamp+o.InvoiceExpiry
}

// SentPayment is a ledger row written after a buy-path settlement attempt,
// per spec §4.7.
type SentPayment struct {
	SentPaymentID uint64
	PeerAddress   PeerAddress
	SqueakHash    [32]byte
	PaymentHash   [32]byte
	SecretKey     [32]byte
	PriceMsat     int64
	NodePubkey    string
	Valid         bool
	CreatedTimeMs int64
}

// ReceivedPayment is a ledger row written after a sell-path settlement, per
// spec §4.7.
//
// SettleIndex is the settle index of the invoice update that produced this
// row; received-payment rows are written only from the seller's live
// invoice subscription (controller/invoice_subscription.go).
type ReceivedPayment struct {
	ReceivedPaymentID uint64
	SqueakHash        [32]byte
	PaymentHash       [32]byte
	PriceMsat         int64
	SettleIndex       uint64
	PeerAddress       PeerAddress
	CreatedTimeMs     int64
}
