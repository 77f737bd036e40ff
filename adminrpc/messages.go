// Package adminrpc is the wire protocol of the admin RPC surface named in
// §6 ("Environment" — rpcenabled/rpchost/rpcport), a gRPC service in the
// same shape lnrpc's generated LightningClient/LightningServer take,
// grounded on lnrpc's request/response-message-per-call layout.
package adminrpc

import (
	"github.com/golang/protobuf/proto"
)

// Empty is the request or response message for calls that carry no
// payload, mirroring lnrpc.Empty's role in the teacher's own RPC surface.
type Empty struct{}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return proto.CompactTextString(m) }
func (*Empty) ProtoMessage()    {}

// ProfileMsg is the wire form of a store.Profile, per §6's
// get_profile(s)/create_*_profile family.
type ProfileMsg struct {
	ProfileId       uint64 `protobuf:"varint,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	ProfileName     string `protobuf:"bytes,2,opt,name=profile_name,json=profileName,proto3" json:"profile_name,omitempty"`
	Address         string `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	IsSigningProfile bool  `protobuf:"varint,4,opt,name=is_signing_profile,json=isSigningProfile,proto3" json:"is_signing_profile,omitempty"`
	Following       bool   `protobuf:"varint,5,opt,name=following,proto3" json:"following,omitempty"`
	UseCustomPrice  bool   `protobuf:"varint,6,opt,name=use_custom_price,json=useCustomPrice,proto3" json:"use_custom_price,omitempty"`
	CustomPriceMsat int64  `protobuf:"varint,7,opt,name=custom_price_msat,json=customPriceMsat,proto3" json:"custom_price_msat,omitempty"`
}

func (m *ProfileMsg) Reset()         { *m = ProfileMsg{} }
func (m *ProfileMsg) String() string { return proto.CompactTextString(m) }
func (*ProfileMsg) ProtoMessage()    {}

type CreateSigningProfileRequest struct {
	ProfileName string `protobuf:"bytes,1,opt,name=profile_name,json=profileName,proto3" json:"profile_name,omitempty"`
}

func (m *CreateSigningProfileRequest) Reset()         { *m = CreateSigningProfileRequest{} }
func (m *CreateSigningProfileRequest) String() string { return proto.CompactTextString(m) }
func (*CreateSigningProfileRequest) ProtoMessage()    {}

type ImportSigningProfileRequest struct {
	ProfileName string `protobuf:"bytes,1,opt,name=profile_name,json=profileName,proto3" json:"profile_name,omitempty"`
	PrivateKey  []byte `protobuf:"bytes,2,opt,name=private_key,json=privateKey,proto3" json:"private_key,omitempty"`
}

func (m *ImportSigningProfileRequest) Reset()         { *m = ImportSigningProfileRequest{} }
func (m *ImportSigningProfileRequest) String() string { return proto.CompactTextString(m) }
func (*ImportSigningProfileRequest) ProtoMessage()    {}

type CreateContactProfileRequest struct {
	ProfileName string `protobuf:"bytes,1,opt,name=profile_name,json=profileName,proto3" json:"profile_name,omitempty"`
	Address     string `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *CreateContactProfileRequest) Reset()         { *m = CreateContactProfileRequest{} }
func (m *CreateContactProfileRequest) String() string { return proto.CompactTextString(m) }
func (*CreateContactProfileRequest) ProtoMessage()    {}

type GetProfilesResponse struct {
	Profiles []*ProfileMsg `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
}

func (m *GetProfilesResponse) Reset()         { *m = GetProfilesResponse{} }
func (m *GetProfilesResponse) String() string { return proto.CompactTextString(m) }
func (*GetProfilesResponse) ProtoMessage()    {}

type GetSqueakProfileRequest struct {
	ProfileId uint64 `protobuf:"varint,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
}

func (m *GetSqueakProfileRequest) Reset()         { *m = GetSqueakProfileRequest{} }
func (m *GetSqueakProfileRequest) String() string { return proto.CompactTextString(m) }
func (*GetSqueakProfileRequest) ProtoMessage()    {}

type DeleteSqueakProfileRequest struct {
	ProfileId uint64 `protobuf:"varint,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
}

func (m *DeleteSqueakProfileRequest) Reset()         { *m = DeleteSqueakProfileRequest{} }
func (m *DeleteSqueakProfileRequest) String() string { return proto.CompactTextString(m) }
func (*DeleteSqueakProfileRequest) ProtoMessage()    {}

// SqueakEntryMsg is the wire form of a store.SqueakEntry, per §6's
// get_squeak_entry/get_timeline_squeak_entries family.
type SqueakEntryMsg struct {
	Hash          []byte `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
	AuthorAddress string `protobuf:"bytes,2,opt,name=author_address,json=authorAddress,proto3" json:"author_address,omitempty"`
	Content       string `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	BlockHeight   int32  `protobuf:"varint,4,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	SqueakTime    int64  `protobuf:"varint,5,opt,name=squeak_time,json=squeakTime,proto3" json:"squeak_time,omitempty"`
	ReplyTo       []byte `protobuf:"bytes,6,opt,name=reply_to,json=replyTo,proto3" json:"reply_to,omitempty"`
	Liked         bool   `protobuf:"varint,7,opt,name=liked,proto3" json:"liked,omitempty"`
	Unlocked      bool   `protobuf:"varint,8,opt,name=unlocked,proto3" json:"unlocked,omitempty"`
}

func (m *SqueakEntryMsg) Reset()         { *m = SqueakEntryMsg{} }
func (m *SqueakEntryMsg) String() string { return proto.CompactTextString(m) }
func (*SqueakEntryMsg) ProtoMessage()    {}

type MakeSqueakRequest struct {
	ProfileId   uint64 `protobuf:"varint,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Content     string `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	BlockHeight int32  `protobuf:"varint,3,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	ReplyTo     []byte `protobuf:"bytes,4,opt,name=reply_to,json=replyTo,proto3" json:"reply_to,omitempty"`
}

func (m *MakeSqueakRequest) Reset()         { *m = MakeSqueakRequest{} }
func (m *MakeSqueakRequest) String() string { return proto.CompactTextString(m) }
func (*MakeSqueakRequest) ProtoMessage()    {}

type GetSqueakEntryRequest struct {
	Hash []byte `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *GetSqueakEntryRequest) Reset()         { *m = GetSqueakEntryRequest{} }
func (m *GetSqueakEntryRequest) String() string { return proto.CompactTextString(m) }
func (*GetSqueakEntryRequest) ProtoMessage()    {}

type LikeSqueakRequest struct {
	Hash []byte `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *LikeSqueakRequest) Reset()         { *m = LikeSqueakRequest{} }
func (m *LikeSqueakRequest) String() string { return proto.CompactTextString(m) }
func (*LikeSqueakRequest) ProtoMessage()    {}

type UnlikeSqueakRequest struct {
	Hash []byte `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *UnlikeSqueakRequest) Reset()         { *m = UnlikeSqueakRequest{} }
func (m *UnlikeSqueakRequest) String() string { return proto.CompactTextString(m) }
func (*UnlikeSqueakRequest) ProtoMessage()    {}

type DeleteSqueakRequest struct {
	Hash []byte `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *DeleteSqueakRequest) Reset()         { *m = DeleteSqueakRequest{} }
func (m *DeleteSqueakRequest) String() string { return proto.CompactTextString(m) }
func (*DeleteSqueakRequest) ProtoMessage()    {}

type GetTimelineRequest struct {
	Limit int32 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *GetTimelineRequest) Reset()         { *m = GetTimelineRequest{} }
func (m *GetTimelineRequest) String() string { return proto.CompactTextString(m) }
func (*GetTimelineRequest) ProtoMessage()    {}

type GetTimelineResponse struct {
	Entries []*SqueakEntryMsg `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (m *GetTimelineResponse) Reset()         { *m = GetTimelineResponse{} }
func (m *GetTimelineResponse) String() string { return proto.CompactTextString(m) }
func (*GetTimelineResponse) ProtoMessage()    {}

// PeerAddressMsg is the wire form of a store.PeerAddress.
type PeerAddressMsg struct {
	Host string `protobuf:"bytes,1,opt,name=host,proto3" json:"host,omitempty"`
	Port uint32 `protobuf:"varint,2,opt,name=port,proto3" json:"port,omitempty"`
}

func (m *PeerAddressMsg) Reset()         { *m = PeerAddressMsg{} }
func (m *PeerAddressMsg) String() string { return proto.CompactTextString(m) }
func (*PeerAddressMsg) ProtoMessage()    {}

// PeerMsg is the wire form of a store.PeerRecord, per §6's get_peer(s)
// family.
type PeerMsg struct {
	PeerId      uint64          `protobuf:"varint,1,opt,name=peer_id,json=peerId,proto3" json:"peer_id,omitempty"`
	PeerName    string          `protobuf:"bytes,2,opt,name=peer_name,json=peerName,proto3" json:"peer_name,omitempty"`
	Address     *PeerAddressMsg `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	Autoconnect bool            `protobuf:"varint,4,opt,name=autoconnect,proto3" json:"autoconnect,omitempty"`
}

func (m *PeerMsg) Reset()         { *m = PeerMsg{} }
func (m *PeerMsg) String() string { return proto.CompactTextString(m) }
func (*PeerMsg) ProtoMessage()    {}

type CreatePeerRequest struct {
	PeerName string          `protobuf:"bytes,1,opt,name=peer_name,json=peerName,proto3" json:"peer_name,omitempty"`
	Address  *PeerAddressMsg `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *CreatePeerRequest) Reset()         { *m = CreatePeerRequest{} }
func (m *CreatePeerRequest) String() string { return proto.CompactTextString(m) }
func (*CreatePeerRequest) ProtoMessage()    {}

type ConnectPeerRequest struct {
	Address   *PeerAddressMsg `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Permanent bool            `protobuf:"varint,2,opt,name=permanent,proto3" json:"permanent,omitempty"`
}

func (m *ConnectPeerRequest) Reset()         { *m = ConnectPeerRequest{} }
func (m *ConnectPeerRequest) String() string { return proto.CompactTextString(m) }
func (*ConnectPeerRequest) ProtoMessage()    {}

type DisconnectPeerRequest struct {
	Address *PeerAddressMsg `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *DisconnectPeerRequest) Reset()         { *m = DisconnectPeerRequest{} }
func (m *DisconnectPeerRequest) String() string { return proto.CompactTextString(m) }
func (*DisconnectPeerRequest) ProtoMessage()    {}

type GetPeersResponse struct {
	Peers []*PeerMsg `protobuf:"bytes,1,rep,name=peers,proto3" json:"peers,omitempty"`
}

func (m *GetPeersResponse) Reset()         { *m = GetPeersResponse{} }
func (m *GetPeersResponse) String() string { return proto.CompactTextString(m) }
func (*GetPeersResponse) ProtoMessage()    {}

type GetConnectedPeersResponse struct {
	Peers []*PeerMsg `protobuf:"bytes,1,rep,name=peers,proto3" json:"peers,omitempty"`
}

func (m *GetConnectedPeersResponse) Reset()         { *m = GetConnectedPeersResponse{} }
func (m *GetConnectedPeersResponse) String() string { return proto.CompactTextString(m) }
func (*GetConnectedPeersResponse) ProtoMessage()    {}

type DownloadOffersRequest struct {
	SqueakHash []byte `protobuf:"bytes,1,opt,name=squeak_hash,json=squeakHash,proto3" json:"squeak_hash,omitempty"`
}

func (m *DownloadOffersRequest) Reset()         { *m = DownloadOffersRequest{} }
func (m *DownloadOffersRequest) String() string { return proto.CompactTextString(m) }
func (*DownloadOffersRequest) ProtoMessage()    {}

type PayOfferRequest struct {
	ReceivedOfferId  uint64 `protobuf:"varint,1,opt,name=received_offer_id,json=receivedOfferId,proto3" json:"received_offer_id,omitempty"`
	PriceCeilingMsat int64  `protobuf:"varint,2,opt,name=price_ceiling_msat,json=priceCeilingMsat,proto3" json:"price_ceiling_msat,omitempty"`
}

func (m *PayOfferRequest) Reset()         { *m = PayOfferRequest{} }
func (m *PayOfferRequest) String() string { return proto.CompactTextString(m) }
func (*PayOfferRequest) ProtoMessage()    {}

type PayOfferResponse struct {
	DecryptedContent string `protobuf:"bytes,1,opt,name=decrypted_content,json=decryptedContent,proto3" json:"decrypted_content,omitempty"`
}

func (m *PayOfferResponse) Reset()         { *m = PayOfferResponse{} }
func (m *PayOfferResponse) String() string { return proto.CompactTextString(m) }
func (*PayOfferResponse) ProtoMessage()    {}

type PaymentSummaryMsg struct {
	NumPayments     int32 `protobuf:"varint,1,opt,name=num_payments,json=numPayments,proto3" json:"num_payments,omitempty"`
	TotalAmountMsat int64 `protobuf:"varint,2,opt,name=total_amount_msat,json=totalAmountMsat,proto3" json:"total_amount_msat,omitempty"`
}

func (m *PaymentSummaryMsg) Reset()         { *m = PaymentSummaryMsg{} }
func (m *PaymentSummaryMsg) String() string { return proto.CompactTextString(m) }
func (*PaymentSummaryMsg) ProtoMessage()    {}

type GetNetworkResponse struct {
	Network         string `protobuf:"bytes,1,opt,name=network,proto3" json:"network,omitempty"`
	ExternalAddress string `protobuf:"bytes,2,opt,name=external_address,json=externalAddress,proto3" json:"external_address,omitempty"`
	DefaultPeerPort uint32 `protobuf:"varint,3,opt,name=default_peer_port,json=defaultPeerPort,proto3" json:"default_peer_port,omitempty"`
}

func (m *GetNetworkResponse) Reset()         { *m = GetNetworkResponse{} }
func (m *GetNetworkResponse) String() string { return proto.CompactTextString(m) }
func (*GetNetworkResponse) ProtoMessage()    {}

// NewSqueakEvent is streamed by SubscribeNewSqueaks, per §6
// (subscribe_new_squeaks).
type NewSqueakEvent struct {
	Entry *SqueakEntryMsg `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
}

func (m *NewSqueakEvent) Reset()         { *m = NewSqueakEvent{} }
func (m *NewSqueakEvent) String() string { return proto.CompactTextString(m) }
func (*NewSqueakEvent) ProtoMessage()    {}

// ReceivedPaymentEvent is streamed by SubscribeReceivedPayments, per §6
// (subscribe_received_payments).
type ReceivedPaymentEvent struct {
	PaymentHash []byte `protobuf:"bytes,1,opt,name=payment_hash,json=paymentHash,proto3" json:"payment_hash,omitempty"`
	PriceMsat   int64  `protobuf:"varint,2,opt,name=price_msat,json=priceMsat,proto3" json:"price_msat,omitempty"`
}

func (m *ReceivedPaymentEvent) Reset()         { *m = ReceivedPaymentEvent{} }
func (m *ReceivedPaymentEvent) String() string { return proto.CompactTextString(m) }
func (*ReceivedPaymentEvent) ProtoMessage()    {}
