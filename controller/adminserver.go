package controller

import (
	"context"

	"github.com/jzernik/squeaknode/adminrpc"
	"github.com/jzernik/squeaknode/store"
)

// AdminServer adapts a Controller to the adminrpc.AdminServer interface,
// translating wire messages to and from store/controller types, grounded
// on rpcserver.go's thin RPC-to-wallet/channeldb translation layer.
type AdminServer struct {
	c *Controller
}

// NewAdminServer wraps c for serving over adminrpc.
func NewAdminServer(c *Controller) *AdminServer {
	return &AdminServer{c: c}
}

func profileToMsg(p *store.Profile) *adminrpc.ProfileMsg {
	return &adminrpc.ProfileMsg{
		ProfileId:        p.ProfileID,
		ProfileName:      p.ProfileName,
		Address:          p.Address,
		IsSigningProfile: p.IsSigningProfile(),
		Following:        p.Following,
		UseCustomPrice:   p.UseCustomPrice,
		CustomPriceMsat:  p.CustomPriceMsat,
	}
}

func entryToMsg(e *store.SqueakEntry) *adminrpc.SqueakEntryMsg {
	msg := &adminrpc.SqueakEntryMsg{
		Hash:          e.Hash[:],
		AuthorAddress: e.AuthorAddress,
		Content:       e.Content,
		BlockHeight:   e.BlockHeight,
		SqueakTime:    e.SqueakTime,
		Liked:         e.IsLiked(),
		Unlocked:      e.IsUnlocked(),
	}
	if e.ReplyTo != nil {
		msg.ReplyTo = e.ReplyTo[:]
	}
	return msg
}

func peerAddressFromMsg(m *adminrpc.PeerAddressMsg) store.PeerAddress {
	if m == nil {
		return store.PeerAddress{}
	}
	return store.PeerAddress{Host: m.Host, Port: uint16(m.Port)}
}

func peerAddressToMsg(a store.PeerAddress) *adminrpc.PeerAddressMsg {
	return &adminrpc.PeerAddressMsg{Host: a.Host, Port: uint32(a.Port)}
}

func peerToMsg(p *store.PeerRecord) *adminrpc.PeerMsg {
	return &adminrpc.PeerMsg{
		PeerId:      p.PeerID,
		PeerName:    p.PeerName,
		Address:     peerAddressToMsg(p.Address),
		Autoconnect: p.Autoconnect,
	}
}

func hash32(b []byte) [32]byte {
	var h [32]byte
	copy(h[:], b)
	return h
}

func (s *AdminServer) CreateSigningProfile(ctx context.Context, req *adminrpc.CreateSigningProfileRequest) (*adminrpc.ProfileMsg, error) {
	p, err := s.c.CreateSigningProfile(req.ProfileName)
	if err != nil {
		return nil, err
	}
	return profileToMsg(p), nil
}

func (s *AdminServer) ImportSigningProfile(ctx context.Context, req *adminrpc.ImportSigningProfileRequest) (*adminrpc.ProfileMsg, error) {
	p, err := s.c.ImportSigningProfile(req.ProfileName, req.PrivateKey)
	if err != nil {
		return nil, err
	}
	return profileToMsg(p), nil
}

func (s *AdminServer) CreateContactProfile(ctx context.Context, req *adminrpc.CreateContactProfileRequest) (*adminrpc.ProfileMsg, error) {
	p, err := s.c.CreateContactProfile(req.ProfileName, req.Address)
	if err != nil {
		return nil, err
	}
	return profileToMsg(p), nil
}

func (s *AdminServer) GetProfiles(ctx context.Context, req *adminrpc.Empty) (*adminrpc.GetProfilesResponse, error) {
	profiles, err := s.c.GetProfiles()
	if err != nil {
		return nil, err
	}
	out := make([]*adminrpc.ProfileMsg, len(profiles))
	for i, p := range profiles {
		out[i] = profileToMsg(p)
	}
	return &adminrpc.GetProfilesResponse{Profiles: out}, nil
}

func (s *AdminServer) GetSqueakProfile(ctx context.Context, req *adminrpc.GetSqueakProfileRequest) (*adminrpc.ProfileMsg, error) {
	p, err := s.c.GetSqueakProfile(req.ProfileId)
	if err != nil {
		return nil, err
	}
	return profileToMsg(p), nil
}

func (s *AdminServer) DeleteSqueakProfile(ctx context.Context, req *adminrpc.DeleteSqueakProfileRequest) (*adminrpc.Empty, error) {
	if err := s.c.DeleteSqueakProfile(req.ProfileId); err != nil {
		return nil, err
	}
	return &adminrpc.Empty{}, nil
}

func (s *AdminServer) MakeSqueak(ctx context.Context, req *adminrpc.MakeSqueakRequest) (*adminrpc.SqueakEntryMsg, error) {
	profile, err := s.c.GetSqueakProfile(req.ProfileId)
	if err != nil {
		return nil, err
	}
	var replyTo *[32]byte
	if len(req.ReplyTo) > 0 {
		h := hash32(req.ReplyTo)
		replyTo = &h
	}
	entry, err := s.c.MakeSqueak(profile, req.Content, req.BlockHeight, replyTo)
	if err != nil {
		return nil, err
	}
	return entryToMsg(entry), nil
}

func (s *AdminServer) GetSqueakEntry(ctx context.Context, req *adminrpc.GetSqueakEntryRequest) (*adminrpc.SqueakEntryMsg, error) {
	entry, err := s.c.GetSqueakEntry(hash32(req.Hash))
	if err != nil {
		return nil, err
	}
	return entryToMsg(entry), nil
}

func (s *AdminServer) GetTimelineSqueakEntries(ctx context.Context, req *adminrpc.GetTimelineRequest) (*adminrpc.GetTimelineResponse, error) {
	limit := int(req.Limit)
	if limit == 0 {
		limit = 100
	}
	entries, err := s.c.GetTimelineSqueakEntries(limit, nil)
	if err != nil {
		return nil, err
	}
	out := make([]*adminrpc.SqueakEntryMsg, len(entries))
	for i, e := range entries {
		out[i] = entryToMsg(e)
	}
	return &adminrpc.GetTimelineResponse{Entries: out}, nil
}

func (s *AdminServer) LikeSqueak(ctx context.Context, req *adminrpc.LikeSqueakRequest) (*adminrpc.Empty, error) {
	if err := s.c.LikeSqueak(hash32(req.Hash)); err != nil {
		return nil, err
	}
	return &adminrpc.Empty{}, nil
}

func (s *AdminServer) UnlikeSqueak(ctx context.Context, req *adminrpc.UnlikeSqueakRequest) (*adminrpc.Empty, error) {
	if err := s.c.UnlikeSqueak(hash32(req.Hash)); err != nil {
		return nil, err
	}
	return &adminrpc.Empty{}, nil
}

func (s *AdminServer) DeleteSqueak(ctx context.Context, req *adminrpc.DeleteSqueakRequest) (*adminrpc.Empty, error) {
	if err := s.c.DeleteSqueak(hash32(req.Hash)); err != nil {
		return nil, err
	}
	return &adminrpc.Empty{}, nil
}

func (s *AdminServer) CreatePeer(ctx context.Context, req *adminrpc.CreatePeerRequest) (*adminrpc.PeerMsg, error) {
	p, err := s.c.CreatePeer(req.PeerName, peerAddressFromMsg(req.Address))
	if err != nil {
		return nil, err
	}
	return peerToMsg(p), nil
}

func (s *AdminServer) GetPeers(ctx context.Context, req *adminrpc.Empty) (*adminrpc.GetPeersResponse, error) {
	peers, err := s.c.GetPeers()
	if err != nil {
		return nil, err
	}
	out := make([]*adminrpc.PeerMsg, len(peers))
	for i, p := range peers {
		out[i] = peerToMsg(p)
	}
	return &adminrpc.GetPeersResponse{Peers: out}, nil
}

func (s *AdminServer) ConnectPeer(ctx context.Context, req *adminrpc.ConnectPeerRequest) (*adminrpc.Empty, error) {
	if err := s.c.ConnectPeer(peerAddressFromMsg(req.Address), req.Permanent); err != nil {
		return nil, err
	}
	return &adminrpc.Empty{}, nil
}

func (s *AdminServer) DisconnectPeer(ctx context.Context, req *adminrpc.DisconnectPeerRequest) (*adminrpc.Empty, error) {
	if err := s.c.DisconnectPeer(peerAddressFromMsg(req.Address)); err != nil {
		return nil, err
	}
	return &adminrpc.Empty{}, nil
}

func (s *AdminServer) GetConnectedPeers(ctx context.Context, req *adminrpc.Empty) (*adminrpc.GetConnectedPeersResponse, error) {
	peers := s.c.GetConnectedPeers()
	out := make([]*adminrpc.PeerMsg, len(peers))
	for i, p := range peers {
		out[i] = peerToMsg(p)
	}
	return &adminrpc.GetConnectedPeersResponse{Peers: out}, nil
}

func (s *AdminServer) DownloadOffers(ctx context.Context, req *adminrpc.DownloadOffersRequest) (*adminrpc.Empty, error) {
	s.c.DownloadOffers(hash32(req.SqueakHash))
	return &adminrpc.Empty{}, nil
}

func (s *AdminServer) PayOffer(ctx context.Context, req *adminrpc.PayOfferRequest) (*adminrpc.PayOfferResponse, error) {
	content, err := s.c.PayOffer(ctx, req.ReceivedOfferId, req.PriceCeilingMsat)
	if err != nil {
		return nil, err
	}
	return &adminrpc.PayOfferResponse{DecryptedContent: content}, nil
}

func (s *AdminServer) GetReceivedPaymentSummary(ctx context.Context, req *adminrpc.Empty) (*adminrpc.PaymentSummaryMsg, error) {
	summary, err := s.c.GetReceivedPaymentSummary()
	if err != nil {
		return nil, err
	}
	return &adminrpc.PaymentSummaryMsg{NumPayments: int32(summary.NumPayments), TotalAmountMsat: summary.TotalAmountMsat}, nil
}

func (s *AdminServer) GetSentPaymentSummary(ctx context.Context, req *adminrpc.Empty) (*adminrpc.PaymentSummaryMsg, error) {
	summary, err := s.c.GetSentPaymentSummary()
	if err != nil {
		return nil, err
	}
	return &adminrpc.PaymentSummaryMsg{NumPayments: int32(summary.NumPayments), TotalAmountMsat: summary.TotalAmountMsat}, nil
}

func (s *AdminServer) GetNetwork(ctx context.Context, req *adminrpc.Empty) (*adminrpc.GetNetworkResponse, error) {
	return &adminrpc.GetNetworkResponse{
		Network:         s.c.GetNetwork(),
		ExternalAddress: s.c.GetExternalAddress(),
		DefaultPeerPort: uint32(s.c.GetDefaultPeerPort()),
	}, nil
}

func (s *AdminServer) SubscribeNewSqueaks(req *adminrpc.Empty, stream adminrpc.Admin_SubscribeNewSqueaksServer) error {
	ch, stop := s.c.SubscribeNewSqueaks()
	defer stop()

	for {
		select {
		case event, open := <-ch:
			if !open {
				return nil
			}
			entry, ok := event.(*store.SqueakEntry)
			if !ok {
				continue
			}
			if err := stream.Send(&adminrpc.NewSqueakEvent{Entry: entryToMsg(entry)}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}

func (s *AdminServer) SubscribeReceivedPayments(req *adminrpc.Empty, stream adminrpc.Admin_SubscribeReceivedPaymentsServer) error {
	ch, stop := s.c.SubscribeReceivedPayments()
	defer stop()

	for {
		select {
		case event, open := <-ch:
			if !open {
				return nil
			}
			payment, ok := event.(*store.ReceivedPayment)
			if !ok {
				continue
			}
			if err := stream.Send(&adminrpc.ReceivedPaymentEvent{
				PaymentHash: payment.PaymentHash[:],
				PriceMsat:   payment.PriceMsat,
			}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}
