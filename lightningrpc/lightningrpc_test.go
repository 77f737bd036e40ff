package lightningrpc

import "testing"

func TestInvoiceStateString(t *testing.T) {
	cases := []struct {
		state InvoiceState
		want  string
	}{
		{InvoiceOpen, "OPEN"},
		{InvoiceAccepted, "ACCEPTED"},
		{InvoiceSettled, "SETTLED"},
		{InvoiceCanceled, "CANCELED"},
		{InvoiceState(99), "UNKNOWN"},
	}
	for _, c := range cases {
		if got := c.state.String(); got != c.want {
			t.Errorf("InvoiceState(%d).String() = %q, want %q", c.state, got, c.want)
		}
	}
}

func TestMessageTypesSatisfyProtoMessage(t *testing.T) {
	var msgs = []interface {
		Reset()
		String() string
		ProtoMessage()
	}{
		&addHoldInvoiceRequest{},
		&addHoldInvoiceResponse{},
		&settleInvoiceMsg{},
		&settleInvoiceResp{},
		&cancelInvoiceMsg{},
		&cancelInvoiceResp{},
		&invoiceSubscription{},
		&invoiceUpdate{},
		&sendRequest{},
		&sendResponse{},
		&paymentRoute{},
	}
	for _, m := range msgs {
		m.Reset()
		if m.String() == "" {
			t.Errorf("%T.String() returned empty", m)
		}
	}
}
