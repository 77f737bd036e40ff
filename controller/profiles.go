package controller

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec"

	"github.com/jzernik/squeaknode/squeak"
	"github.com/jzernik/squeaknode/store"
)

// CreateSigningProfile generates a fresh signing key and stores a new
// signing profile under name, per §6 (create_signing_profile).
func (c *Controller) CreateSigningProfile(name string) (*store.Profile, error) {
	privKey, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, fmt.Errorf("controller: generate signing key: %w", err)
	}
	return c.importSigningProfile(name, privKey)
}

// ImportSigningProfile stores a new signing profile using an
// externally-supplied private key, per §6 (import_signing_profile).
func (c *Controller) ImportSigningProfile(name string, privKeyBytes []byte) (*store.Profile, error) {
	privKey, _ := btcec.PrivKeyFromBytes(btcec.S256(), privKeyBytes)
	return c.importSigningProfile(name, privKey)
}

func (c *Controller) importSigningProfile(name string, privKey *btcec.PrivateKey) (*store.Profile, error) {
	address, err := squeak.DeriveAddress(privKey.PubKey(), c.cfg.Params)
	if err != nil {
		return nil, err
	}

	profile := &store.Profile{
		ProfileName:   name,
		Address:       address,
		PrivateKey:    privKey.Serialize(),
		CreatedTimeMs: c.now().UnixNano() / 1e6,
	}
	id, err := c.cfg.Store.InsertProfile(profile)
	if err != nil {
		return nil, err
	}
	profile.ProfileID = id
	return profile, nil
}

// CreateContactProfile stores a follow-only profile for address, per §6
// (create_contact_profile).
func (c *Controller) CreateContactProfile(name string, address string) (*store.Profile, error) {
	profile := &store.Profile{
		ProfileName:   name,
		Address:       address,
		Following:     true,
		CreatedTimeMs: c.now().UnixNano() / 1e6,
	}
	id, err := c.cfg.Store.InsertProfile(profile)
	if err != nil {
		return nil, err
	}
	profile.ProfileID = id
	return profile, nil
}

// GetProfiles lists every profile, per §6 (get_profiles).
func (c *Controller) GetProfiles() ([]*store.Profile, error) {
	return c.cfg.Store.GetProfiles()
}

// GetSigningProfiles lists profiles this node can author with, per §6.
func (c *Controller) GetSigningProfiles() ([]*store.Profile, error) {
	return c.cfg.Store.GetSigningProfiles()
}

// GetContactProfiles lists follow-only profiles, per §6.
func (c *Controller) GetContactProfiles() ([]*store.Profile, error) {
	return c.cfg.Store.GetContactProfiles()
}

// GetSqueakProfile returns a profile by ID, per §6 (get_squeak_profile).
func (c *Controller) GetSqueakProfile(id uint64) (*store.Profile, error) {
	return c.cfg.Store.GetProfile(id)
}

// GetSqueakProfileByAddress returns a profile by address, per §6.
func (c *Controller) GetSqueakProfileByAddress(address string) (*store.Profile, error) {
	return c.cfg.Store.GetProfileByAddress(address)
}

// RenameSqueakProfile changes a profile's display name, per §6.
func (c *Controller) RenameSqueakProfile(id uint64, name string) error {
	return c.cfg.Store.SetProfileName(id, name)
}

// DeleteSqueakProfile removes a profile, per §6.
func (c *Controller) DeleteSqueakProfile(id uint64) error {
	return c.cfg.Store.DeleteProfile(id)
}

// SetSqueakProfileFollowing toggles whether a contact profile's squeaks
// appear in the timeline, per §6.
func (c *Controller) SetSqueakProfileFollowing(id uint64, following bool) error {
	return c.cfg.Store.SetProfileFollowing(id, following)
}

// SetSqueakProfileUseCustomPrice toggles per-profile custom pricing, per
// §6.
func (c *Controller) SetSqueakProfileUseCustomPrice(id uint64, use bool) error {
	return c.cfg.Store.SetProfileUseCustomPrice(id, use)
}

// SetSqueakProfileCustomPrice sets a profile's custom unlock price, per
// §6.
func (c *Controller) SetSqueakProfileCustomPrice(id uint64, priceMsat int64) error {
	return c.cfg.Store.SetProfileCustomPriceMsat(id, priceMsat)
}

// SetSqueakProfileImage sets a profile's avatar image, per §6.
func (c *Controller) SetSqueakProfileImage(id uint64, image []byte) error {
	return c.cfg.Store.SetProfileImage(id, image)
}
