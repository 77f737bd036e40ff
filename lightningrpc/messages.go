package lightningrpc

// messages.go hand-authors the wire messages for the handful of lnd RPC
// calls this adapter needs, in lieu of vendoring the full lnrpc/
// protoc-generated stub tree. Each type implements proto.Message via the
// trivial Reset/String/ProtoMessage trio so it can go through grpc's
// default protobuf codec despite not having been generated by protoc.

import "fmt"

type addHoldInvoiceRequest struct {
	Hash      []byte `protobuf:"bytes,1,opt,name=hash,proto3"`
	ValueMsat int64  `protobuf:"varint,2,opt,name=value_msat,proto3"`
	Expiry    int64  `protobuf:"varint,3,opt,name=expiry,proto3"`
}

func (m *addHoldInvoiceRequest) Reset()         { *m = addHoldInvoiceRequest{} }
func (m *addHoldInvoiceRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*addHoldInvoiceRequest) ProtoMessage()    {}

type addHoldInvoiceResponse struct {
	PaymentRequest string `protobuf:"bytes,1,opt,name=payment_request,proto3"`
}

func (m *addHoldInvoiceResponse) Reset()         { *m = addHoldInvoiceResponse{} }
func (m *addHoldInvoiceResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*addHoldInvoiceResponse) ProtoMessage()    {}

type settleInvoiceMsg struct {
	Preimage []byte `protobuf:"bytes,1,opt,name=preimage,proto3"`
}

func (m *settleInvoiceMsg) Reset()         { *m = settleInvoiceMsg{} }
func (m *settleInvoiceMsg) String() string { return fmt.Sprintf("%+v", *m) }
func (*settleInvoiceMsg) ProtoMessage()    {}

type settleInvoiceResp struct{}

func (m *settleInvoiceResp) Reset()         { *m = settleInvoiceResp{} }
func (m *settleInvoiceResp) String() string { return "settleInvoiceResp{}" }
func (*settleInvoiceResp) ProtoMessage()    {}

type cancelInvoiceMsg struct {
	PaymentHash []byte `protobuf:"bytes,1,opt,name=payment_hash,proto3"`
}

func (m *cancelInvoiceMsg) Reset()         { *m = cancelInvoiceMsg{} }
func (m *cancelInvoiceMsg) String() string { return fmt.Sprintf("%+v", *m) }
func (*cancelInvoiceMsg) ProtoMessage()    {}

type cancelInvoiceResp struct{}

func (m *cancelInvoiceResp) Reset()         { *m = cancelInvoiceResp{} }
func (m *cancelInvoiceResp) String() string { return "cancelInvoiceResp{}" }
func (*cancelInvoiceResp) ProtoMessage()    {}

type invoiceSubscription struct {
	AddIndex    uint64 `protobuf:"varint,1,opt,name=add_index,proto3"`
	SettleIndex uint64 `protobuf:"varint,2,opt,name=settle_index,proto3"`
}

func (m *invoiceSubscription) Reset()         { *m = invoiceSubscription{} }
func (m *invoiceSubscription) String() string { return fmt.Sprintf("%+v", *m) }
func (*invoiceSubscription) ProtoMessage()    {}

// invoiceUpdate mirrors the subset of lnrpc.Invoice fields the exchange
// engine needs from the SubscribeInvoices stream.
type invoiceUpdate struct {
	RHash       []byte `protobuf:"bytes,1,opt,name=r_hash,proto3"`
	SettleIndex uint64 `protobuf:"varint,2,opt,name=settle_index,proto3"`
	State       int32  `protobuf:"varint,3,opt,name=state,proto3"`
}

func (m *invoiceUpdate) Reset()         { *m = invoiceUpdate{} }
func (m *invoiceUpdate) String() string { return fmt.Sprintf("%+v", *m) }
func (*invoiceUpdate) ProtoMessage()    {}

type sendRequest struct {
	PaymentRequest string `protobuf:"bytes,1,opt,name=payment_request,proto3"`
}

func (m *sendRequest) Reset()         { *m = sendRequest{} }
func (m *sendRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*sendRequest) ProtoMessage()    {}

type sendResponse struct {
	PaymentError   string `protobuf:"bytes,1,opt,name=payment_error,proto3"`
	PaymentPreimage []byte `protobuf:"bytes,2,opt,name=payment_preimage,proto3"`
	PaymentRoute   *paymentRoute `protobuf:"bytes,3,opt,name=payment_route,proto3"`
}

func (m *sendResponse) Reset()         { *m = sendResponse{} }
func (m *sendResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*sendResponse) ProtoMessage()    {}

type paymentRoute struct {
	TotalAmtMsat int64 `protobuf:"varint,1,opt,name=total_amt_msat,proto3"`
}

func (m *paymentRoute) Reset()         { *m = paymentRoute{} }
func (m *paymentRoute) String() string { return fmt.Sprintf("%+v", *m) }
func (*paymentRoute) ProtoMessage()    {}

type payReqString struct {
	PayReq string `protobuf:"bytes,1,opt,name=pay_req,proto3"`
}

func (m *payReqString) Reset()         { *m = payReqString{} }
func (m *payReqString) String() string { return fmt.Sprintf("%+v", *m) }
func (*payReqString) ProtoMessage()    {}

// payReq mirrors the subset of lnrpc.PayReq fields DecodePayReq needs:
// the invoice's own payment hash and its creation/expiry, independent of
// whatever the advertising peer claims.
type payReq struct {
	Destination string `protobuf:"bytes,1,opt,name=destination,proto3"`
	PaymentHash string `protobuf:"bytes,2,opt,name=payment_hash,proto3"`
	NumMsat     int64  `protobuf:"varint,3,opt,name=num_msat,proto3"`
	Timestamp   int64  `protobuf:"varint,4,opt,name=timestamp,proto3"`
	Expiry      int64  `protobuf:"varint,5,opt,name=expiry,proto3"`
}

func (m *payReq) Reset()         { *m = payReq{} }
func (m *payReq) String() string { return fmt.Sprintf("%+v", *m) }
func (*payReq) ProtoMessage()    {}
