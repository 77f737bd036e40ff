package adminrpc

import (
	"context"

	"google.golang.org/grpc"
)

// AdminClient is the client API for the admin RPC surface, the same
// shape protoc-gen-go would emit for a service with this method set.
type AdminClient interface {
	CreateSigningProfile(ctx context.Context, in *CreateSigningProfileRequest, opts ...grpc.CallOption) (*ProfileMsg, error)
	ImportSigningProfile(ctx context.Context, in *ImportSigningProfileRequest, opts ...grpc.CallOption) (*ProfileMsg, error)
	CreateContactProfile(ctx context.Context, in *CreateContactProfileRequest, opts ...grpc.CallOption) (*ProfileMsg, error)
	GetProfiles(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetProfilesResponse, error)
	GetSqueakProfile(ctx context.Context, in *GetSqueakProfileRequest, opts ...grpc.CallOption) (*ProfileMsg, error)
	DeleteSqueakProfile(ctx context.Context, in *DeleteSqueakProfileRequest, opts ...grpc.CallOption) (*Empty, error)

	MakeSqueak(ctx context.Context, in *MakeSqueakRequest, opts ...grpc.CallOption) (*SqueakEntryMsg, error)
	GetSqueakEntry(ctx context.Context, in *GetSqueakEntryRequest, opts ...grpc.CallOption) (*SqueakEntryMsg, error)
	GetTimelineSqueakEntries(ctx context.Context, in *GetTimelineRequest, opts ...grpc.CallOption) (*GetTimelineResponse, error)
	LikeSqueak(ctx context.Context, in *LikeSqueakRequest, opts ...grpc.CallOption) (*Empty, error)
	UnlikeSqueak(ctx context.Context, in *UnlikeSqueakRequest, opts ...grpc.CallOption) (*Empty, error)
	DeleteSqueak(ctx context.Context, in *DeleteSqueakRequest, opts ...grpc.CallOption) (*Empty, error)

	CreatePeer(ctx context.Context, in *CreatePeerRequest, opts ...grpc.CallOption) (*PeerMsg, error)
	GetPeers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetPeersResponse, error)
	ConnectPeer(ctx context.Context, in *ConnectPeerRequest, opts ...grpc.CallOption) (*Empty, error)
	DisconnectPeer(ctx context.Context, in *DisconnectPeerRequest, opts ...grpc.CallOption) (*Empty, error)
	GetConnectedPeers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetConnectedPeersResponse, error)

	DownloadOffers(ctx context.Context, in *DownloadOffersRequest, opts ...grpc.CallOption) (*Empty, error)
	PayOffer(ctx context.Context, in *PayOfferRequest, opts ...grpc.CallOption) (*PayOfferResponse, error)
	GetReceivedPaymentSummary(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PaymentSummaryMsg, error)
	GetSentPaymentSummary(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PaymentSummaryMsg, error)

	GetNetwork(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetNetworkResponse, error)

	SubscribeNewSqueaks(ctx context.Context, in *Empty, opts ...grpc.CallOption) (Admin_SubscribeNewSqueaksClient, error)
	SubscribeReceivedPayments(ctx context.Context, in *Empty, opts ...grpc.CallOption) (Admin_SubscribeReceivedPaymentsClient, error)
}

type adminClient struct {
	cc *grpc.ClientConn
}

// NewAdminClient wraps an already-dialed connection to the admin RPC
// server, the way lnrpc.NewLightningClient wraps a connection to lnd.
func NewAdminClient(cc *grpc.ClientConn) AdminClient {
	return &adminClient{cc}
}

func (c *adminClient) call(ctx context.Context, method string, in, out interface{}, opts ...grpc.CallOption) error {
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *adminClient) CreateSigningProfile(ctx context.Context, in *CreateSigningProfileRequest, opts ...grpc.CallOption) (*ProfileMsg, error) {
	out := new(ProfileMsg)
	if err := c.call(ctx, "/adminrpc.Admin/CreateSigningProfile", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) ImportSigningProfile(ctx context.Context, in *ImportSigningProfileRequest, opts ...grpc.CallOption) (*ProfileMsg, error) {
	out := new(ProfileMsg)
	if err := c.call(ctx, "/adminrpc.Admin/ImportSigningProfile", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) CreateContactProfile(ctx context.Context, in *CreateContactProfileRequest, opts ...grpc.CallOption) (*ProfileMsg, error) {
	out := new(ProfileMsg)
	if err := c.call(ctx, "/adminrpc.Admin/CreateContactProfile", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) GetProfiles(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetProfilesResponse, error) {
	out := new(GetProfilesResponse)
	if err := c.call(ctx, "/adminrpc.Admin/GetProfiles", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) GetSqueakProfile(ctx context.Context, in *GetSqueakProfileRequest, opts ...grpc.CallOption) (*ProfileMsg, error) {
	out := new(ProfileMsg)
	if err := c.call(ctx, "/adminrpc.Admin/GetSqueakProfile", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) DeleteSqueakProfile(ctx context.Context, in *DeleteSqueakProfileRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.call(ctx, "/adminrpc.Admin/DeleteSqueakProfile", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) MakeSqueak(ctx context.Context, in *MakeSqueakRequest, opts ...grpc.CallOption) (*SqueakEntryMsg, error) {
	out := new(SqueakEntryMsg)
	if err := c.call(ctx, "/adminrpc.Admin/MakeSqueak", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) GetSqueakEntry(ctx context.Context, in *GetSqueakEntryRequest, opts ...grpc.CallOption) (*SqueakEntryMsg, error) {
	out := new(SqueakEntryMsg)
	if err := c.call(ctx, "/adminrpc.Admin/GetSqueakEntry", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) GetTimelineSqueakEntries(ctx context.Context, in *GetTimelineRequest, opts ...grpc.CallOption) (*GetTimelineResponse, error) {
	out := new(GetTimelineResponse)
	if err := c.call(ctx, "/adminrpc.Admin/GetTimelineSqueakEntries", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) LikeSqueak(ctx context.Context, in *LikeSqueakRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.call(ctx, "/adminrpc.Admin/LikeSqueak", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) UnlikeSqueak(ctx context.Context, in *UnlikeSqueakRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.call(ctx, "/adminrpc.Admin/UnlikeSqueak", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) DeleteSqueak(ctx context.Context, in *DeleteSqueakRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.call(ctx, "/adminrpc.Admin/DeleteSqueak", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) CreatePeer(ctx context.Context, in *CreatePeerRequest, opts ...grpc.CallOption) (*PeerMsg, error) {
	out := new(PeerMsg)
	if err := c.call(ctx, "/adminrpc.Admin/CreatePeer", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) GetPeers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetPeersResponse, error) {
	out := new(GetPeersResponse)
	if err := c.call(ctx, "/adminrpc.Admin/GetPeers", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) ConnectPeer(ctx context.Context, in *ConnectPeerRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.call(ctx, "/adminrpc.Admin/ConnectPeer", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) DisconnectPeer(ctx context.Context, in *DisconnectPeerRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.call(ctx, "/adminrpc.Admin/DisconnectPeer", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) GetConnectedPeers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetConnectedPeersResponse, error) {
	out := new(GetConnectedPeersResponse)
	if err := c.call(ctx, "/adminrpc.Admin/GetConnectedPeers", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) DownloadOffers(ctx context.Context, in *DownloadOffersRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.call(ctx, "/adminrpc.Admin/DownloadOffers", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) PayOffer(ctx context.Context, in *PayOfferRequest, opts ...grpc.CallOption) (*PayOfferResponse, error) {
	out := new(PayOfferResponse)
	if err := c.call(ctx, "/adminrpc.Admin/PayOffer", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) GetReceivedPaymentSummary(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PaymentSummaryMsg, error) {
	out := new(PaymentSummaryMsg)
	if err := c.call(ctx, "/adminrpc.Admin/GetReceivedPaymentSummary", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) GetSentPaymentSummary(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PaymentSummaryMsg, error) {
	out := new(PaymentSummaryMsg)
	if err := c.call(ctx, "/adminrpc.Admin/GetSentPaymentSummary", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) GetNetwork(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetNetworkResponse, error) {
	out := new(GetNetworkResponse)
	if err := c.call(ctx, "/adminrpc.Admin/GetNetwork", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminClient) SubscribeNewSqueaks(ctx context.Context, in *Empty, opts ...grpc.CallOption) (Admin_SubscribeNewSqueaksClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Admin_serviceDesc.Streams[0], "/adminrpc.Admin/SubscribeNewSqueaks", opts...)
	if err != nil {
		return nil, err
	}
	x := &adminSubscribeNewSqueaksClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Admin_SubscribeNewSqueaksClient interface {
	Recv() (*NewSqueakEvent, error)
	grpc.ClientStream
}

type adminSubscribeNewSqueaksClient struct {
	grpc.ClientStream
}

func (x *adminSubscribeNewSqueaksClient) Recv() (*NewSqueakEvent, error) {
	m := new(NewSqueakEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *adminClient) SubscribeReceivedPayments(ctx context.Context, in *Empty, opts ...grpc.CallOption) (Admin_SubscribeReceivedPaymentsClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Admin_serviceDesc.Streams[1], "/adminrpc.Admin/SubscribeReceivedPayments", opts...)
	if err != nil {
		return nil, err
	}
	x := &adminSubscribeReceivedPaymentsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Admin_SubscribeReceivedPaymentsClient interface {
	Recv() (*ReceivedPaymentEvent, error)
	grpc.ClientStream
}

type adminSubscribeReceivedPaymentsClient struct {
	grpc.ClientStream
}

func (x *adminSubscribeReceivedPaymentsClient) Recv() (*ReceivedPaymentEvent, error) {
	m := new(ReceivedPaymentEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// AdminServer is the server API for the admin RPC surface. It is
// implemented by controller.AdminServer, which wraps a *controller.Controller
// (see controller/adminserver.go).
type AdminServer interface {
	CreateSigningProfile(context.Context, *CreateSigningProfileRequest) (*ProfileMsg, error)
	ImportSigningProfile(context.Context, *ImportSigningProfileRequest) (*ProfileMsg, error)
	CreateContactProfile(context.Context, *CreateContactProfileRequest) (*ProfileMsg, error)
	GetProfiles(context.Context, *Empty) (*GetProfilesResponse, error)
	GetSqueakProfile(context.Context, *GetSqueakProfileRequest) (*ProfileMsg, error)
	DeleteSqueakProfile(context.Context, *DeleteSqueakProfileRequest) (*Empty, error)

	MakeSqueak(context.Context, *MakeSqueakRequest) (*SqueakEntryMsg, error)
	GetSqueakEntry(context.Context, *GetSqueakEntryRequest) (*SqueakEntryMsg, error)
	GetTimelineSqueakEntries(context.Context, *GetTimelineRequest) (*GetTimelineResponse, error)
	LikeSqueak(context.Context, *LikeSqueakRequest) (*Empty, error)
	UnlikeSqueak(context.Context, *UnlikeSqueakRequest) (*Empty, error)
	DeleteSqueak(context.Context, *DeleteSqueakRequest) (*Empty, error)

	CreatePeer(context.Context, *CreatePeerRequest) (*PeerMsg, error)
	GetPeers(context.Context, *Empty) (*GetPeersResponse, error)
	ConnectPeer(context.Context, *ConnectPeerRequest) (*Empty, error)
	DisconnectPeer(context.Context, *DisconnectPeerRequest) (*Empty, error)
	GetConnectedPeers(context.Context, *Empty) (*GetConnectedPeersResponse, error)

	DownloadOffers(context.Context, *DownloadOffersRequest) (*Empty, error)
	PayOffer(context.Context, *PayOfferRequest) (*PayOfferResponse, error)
	GetReceivedPaymentSummary(context.Context, *Empty) (*PaymentSummaryMsg, error)
	GetSentPaymentSummary(context.Context, *Empty) (*PaymentSummaryMsg, error)

	GetNetwork(context.Context, *Empty) (*GetNetworkResponse, error)

	SubscribeNewSqueaks(*Empty, Admin_SubscribeNewSqueaksServer) error
	SubscribeReceivedPayments(*Empty, Admin_SubscribeReceivedPaymentsServer) error
}

type Admin_SubscribeNewSqueaksServer interface {
	Send(*NewSqueakEvent) error
	grpc.ServerStream
}

type adminSubscribeNewSqueaksServer struct {
	grpc.ServerStream
}

func (x *adminSubscribeNewSqueaksServer) Send(m *NewSqueakEvent) error {
	return x.ServerStream.SendMsg(m)
}

type Admin_SubscribeReceivedPaymentsServer interface {
	Send(*ReceivedPaymentEvent) error
	grpc.ServerStream
}

type adminSubscribeReceivedPaymentsServer struct {
	grpc.ServerStream
}

func (x *adminSubscribeReceivedPaymentsServer) Send(m *ReceivedPaymentEvent) error {
	return x.ServerStream.SendMsg(m)
}

func _Admin_CreateSigningProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSigningProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).CreateSigningProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/CreateSigningProfile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).CreateSigningProfile(ctx, req.(*CreateSigningProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_ImportSigningProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportSigningProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).ImportSigningProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/ImportSigningProfile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).ImportSigningProfile(ctx, req.(*ImportSigningProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_CreateContactProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateContactProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).CreateContactProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/CreateContactProfile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).CreateContactProfile(ctx, req.(*CreateContactProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_GetProfiles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).GetProfiles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/GetProfiles"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).GetProfiles(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_GetSqueakProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSqueakProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).GetSqueakProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/GetSqueakProfile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).GetSqueakProfile(ctx, req.(*GetSqueakProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_DeleteSqueakProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteSqueakProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).DeleteSqueakProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/DeleteSqueakProfile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).DeleteSqueakProfile(ctx, req.(*DeleteSqueakProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_MakeSqueak_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MakeSqueakRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).MakeSqueak(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/MakeSqueak"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).MakeSqueak(ctx, req.(*MakeSqueakRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_GetSqueakEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSqueakEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).GetSqueakEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/GetSqueakEntry"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).GetSqueakEntry(ctx, req.(*GetSqueakEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_GetTimelineSqueakEntries_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTimelineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).GetTimelineSqueakEntries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/GetTimelineSqueakEntries"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).GetTimelineSqueakEntries(ctx, req.(*GetTimelineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_LikeSqueak_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LikeSqueakRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).LikeSqueak(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/LikeSqueak"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).LikeSqueak(ctx, req.(*LikeSqueakRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_UnlikeSqueak_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnlikeSqueakRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).UnlikeSqueak(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/UnlikeSqueak"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).UnlikeSqueak(ctx, req.(*UnlikeSqueakRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_DeleteSqueak_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteSqueakRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).DeleteSqueak(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/DeleteSqueak"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).DeleteSqueak(ctx, req.(*DeleteSqueakRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_CreatePeer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePeerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).CreatePeer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/CreatePeer"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).CreatePeer(ctx, req.(*CreatePeerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_GetPeers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).GetPeers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/GetPeers"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).GetPeers(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_ConnectPeer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConnectPeerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).ConnectPeer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/ConnectPeer"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).ConnectPeer(ctx, req.(*ConnectPeerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_DisconnectPeer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisconnectPeerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).DisconnectPeer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/DisconnectPeer"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).DisconnectPeer(ctx, req.(*DisconnectPeerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_GetConnectedPeers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).GetConnectedPeers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/GetConnectedPeers"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).GetConnectedPeers(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_DownloadOffers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DownloadOffersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).DownloadOffers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/DownloadOffers"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).DownloadOffers(ctx, req.(*DownloadOffersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_PayOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PayOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).PayOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/PayOffer"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).PayOffer(ctx, req.(*PayOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_GetReceivedPaymentSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).GetReceivedPaymentSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/GetReceivedPaymentSummary"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).GetReceivedPaymentSummary(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_GetSentPaymentSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).GetSentPaymentSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/GetSentPaymentSummary"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).GetSentPaymentSummary(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_GetNetwork_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServer).GetNetwork(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/adminrpc.Admin/GetNetwork"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServer).GetNetwork(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Admin_SubscribeNewSqueaks_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AdminServer).SubscribeNewSqueaks(m, &adminSubscribeNewSqueaksServer{stream})
}

func _Admin_SubscribeReceivedPayments_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AdminServer).SubscribeReceivedPayments(m, &adminSubscribeReceivedPaymentsServer{stream})
}

var _Admin_serviceDesc = grpc.ServiceDesc{
	ServiceName: "adminrpc.Admin",
	HandlerType: (*AdminServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateSigningProfile", Handler: _Admin_CreateSigningProfile_Handler},
		{MethodName: "ImportSigningProfile", Handler: _Admin_ImportSigningProfile_Handler},
		{MethodName: "CreateContactProfile", Handler: _Admin_CreateContactProfile_Handler},
		{MethodName: "GetProfiles", Handler: _Admin_GetProfiles_Handler},
		{MethodName: "GetSqueakProfile", Handler: _Admin_GetSqueakProfile_Handler},
		{MethodName: "DeleteSqueakProfile", Handler: _Admin_DeleteSqueakProfile_Handler},
		{MethodName: "MakeSqueak", Handler: _Admin_MakeSqueak_Handler},
		{MethodName: "GetSqueakEntry", Handler: _Admin_GetSqueakEntry_Handler},
		{MethodName: "GetTimelineSqueakEntries", Handler: _Admin_GetTimelineSqueakEntries_Handler},
		{MethodName: "LikeSqueak", Handler: _Admin_LikeSqueak_Handler},
		{MethodName: "UnlikeSqueak", Handler: _Admin_UnlikeSqueak_Handler},
		{MethodName: "DeleteSqueak", Handler: _Admin_DeleteSqueak_Handler},
		{MethodName: "CreatePeer", Handler: _Admin_CreatePeer_Handler},
		{MethodName: "GetPeers", Handler: _Admin_GetPeers_Handler},
		{MethodName: "ConnectPeer", Handler: _Admin_ConnectPeer_Handler},
		{MethodName: "DisconnectPeer", Handler: _Admin_DisconnectPeer_Handler},
		{MethodName: "GetConnectedPeers", Handler: _Admin_GetConnectedPeers_Handler},
		{MethodName: "DownloadOffers", Handler: _Admin_DownloadOffers_Handler},
		{MethodName: "PayOffer", Handler: _Admin_PayOffer_Handler},
		{MethodName: "GetReceivedPaymentSummary", Handler: _Admin_GetReceivedPaymentSummary_Handler},
		{MethodName: "GetSentPaymentSummary", Handler: _Admin_GetSentPaymentSummary_Handler},
		{MethodName: "GetNetwork", Handler: _Admin_GetNetwork_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "SubscribeNewSqueaks", Handler: _Admin_SubscribeNewSqueaks_Handler, ServerStreams: true},
		{StreamName: "SubscribeReceivedPayments", Handler: _Admin_SubscribeReceivedPayments_Handler, ServerStreams: true},
	},
	Metadata: "adminrpc/admin.proto",
}

// RegisterAdminServer registers an AdminServer implementation with a
// gRPC server, the same call shape lnrpc.RegisterLightningServer takes.
func RegisterAdminServer(s *grpc.Server, srv AdminServer) {
	s.RegisterService(&_Admin_serviceDesc, srv)
}
