package controller

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/jzernik/squeaknode/store"
)

// newTestController builds a Controller backed by a real, temporary
// store.DB but with no network/bitcoin/lightning adapters wired in. It is
// only suitable for exercising methods that don't reach those adapters.
func newTestController(t *testing.T) *Controller {
	t.Helper()
	f, err := ioutil.TempFile("", "squeaknode-controller-*.db")
	if err != nil {
		t.Fatalf("TempFile: %v", err)
	}
	path := f.Name()
	f.Close()
	os.Remove(path)

	db, err := store.Open(path)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(path)
	})

	return New(Config{
		Store:  db,
		Params: &chaincfg.RegressionNetParams,
	})
}
