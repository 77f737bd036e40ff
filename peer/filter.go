package peer

import "sync"

// Filter is the subscription filter a peer advertises via `subscribe`:
// the set of author addresses and block-height range it wants inv
// announcements for, per §4.5.
type Filter struct {
	mu       sync.RWMutex
	authors  map[string]bool
	minBlock int32
	maxBlock int32
}

// NewFilter builds a Filter from an author list and block range.
func NewFilter(authors []string, minBlock, maxBlock int32) *Filter {
	f := &Filter{
		authors:  make(map[string]bool, len(authors)),
		minBlock: minBlock,
		maxBlock: maxBlock,
	}
	for _, a := range authors {
		f.authors[a] = true
	}
	return f
}

// Matches reports whether a squeak authored by address at blockHeight
// passes this filter.
func (f *Filter) Matches(address string, blockHeight int32) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.authors[address] {
		return false
	}
	return blockHeight >= f.minBlock && blockHeight <= f.maxBlock
}

// Update replaces the filter's contents, used when re-advertising on a
// new block (§4.8: "the filter's max_block advances").
func (f *Filter) Update(authors []string, minBlock, maxBlock int32) {
	authorSet := make(map[string]bool, len(authors))
	for _, a := range authors {
		authorSet[a] = true
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.authors = authorSet
	f.minBlock = minBlock
	f.maxBlock = maxBlock
}
