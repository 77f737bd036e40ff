package controller

import (
	"github.com/jzernik/squeaknode/wire"
)

// buildSubscribeMessage encodes addresses into a MsgSubscribe for the
// given block range, per §4.8 ("Block-height updates").
func (c *Controller) buildSubscribeMessage(addresses []string, minBlock, maxBlock int32) (*wire.MsgSubscribe, error) {
	authors := make([]wire.Author, 0, len(addresses))
	for _, addr := range addresses {
		a, err := wire.EncodeAuthor(addr, c.cfg.Params)
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}

	return &wire.MsgSubscribe{
		Authors:  authors,
		MinBlock: minBlock,
		MaxBlock: maxBlock,
	}, nil
}
