package controller

import "testing"

func TestCreateSigningProfileIsSigningProfile(t *testing.T) {
	c := newTestController(t)

	profile, err := c.CreateSigningProfile("alice")
	if err != nil {
		t.Fatalf("CreateSigningProfile: %v", err)
	}
	if !profile.IsSigningProfile() {
		t.Fatalf("expected a signing profile, got %+v", profile)
	}
	if profile.Address == "" {
		t.Fatalf("expected a derived address")
	}

	got, err := c.GetSqueakProfile(profile.ProfileID)
	if err != nil {
		t.Fatalf("GetSqueakProfile: %v", err)
	}
	if got.Address != profile.Address {
		t.Fatalf("address mismatch: got %q want %q", got.Address, profile.Address)
	}
}

func TestImportSigningProfileRoundTrips(t *testing.T) {
	c := newTestController(t)

	created, err := c.CreateSigningProfile("bob")
	if err != nil {
		t.Fatalf("CreateSigningProfile: %v", err)
	}

	imported, err := c.ImportSigningProfile("bob-imported", created.PrivateKey)
	if err != nil {
		t.Fatalf("ImportSigningProfile: %v", err)
	}
	if imported.Address != created.Address {
		t.Fatalf("expected same derived address, got %q want %q", imported.Address, created.Address)
	}
}

func TestCreateContactProfileIsNotSigning(t *testing.T) {
	c := newTestController(t)

	profile, err := c.CreateContactProfile("carol", "some-address")
	if err != nil {
		t.Fatalf("CreateContactProfile: %v", err)
	}
	if profile.IsSigningProfile() {
		t.Fatalf("contact profile should not be a signing profile")
	}
	if !profile.Following {
		t.Fatalf("contact profile should default to following")
	}
}

func TestGetSigningAndContactProfilesPartition(t *testing.T) {
	c := newTestController(t)

	if _, err := c.CreateSigningProfile("signer"); err != nil {
		t.Fatalf("CreateSigningProfile: %v", err)
	}
	if _, err := c.CreateContactProfile("contact", "addr"); err != nil {
		t.Fatalf("CreateContactProfile: %v", err)
	}

	signing, err := c.GetSigningProfiles()
	if err != nil {
		t.Fatalf("GetSigningProfiles: %v", err)
	}
	if len(signing) != 1 || signing[0].ProfileName != "signer" {
		t.Fatalf("unexpected signing profiles: %+v", signing)
	}

	contacts, err := c.GetContactProfiles()
	if err != nil {
		t.Fatalf("GetContactProfiles: %v", err)
	}
	if len(contacts) != 1 || contacts[0].ProfileName != "contact" {
		t.Fatalf("unexpected contact profiles: %+v", contacts)
	}

	all, err := c.GetProfiles()
	if err != nil {
		t.Fatalf("GetProfiles: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(all))
	}
}

func TestRenameAndDeleteSqueakProfile(t *testing.T) {
	c := newTestController(t)

	profile, err := c.CreateContactProfile("dave", "addr")
	if err != nil {
		t.Fatalf("CreateContactProfile: %v", err)
	}

	if err := c.RenameSqueakProfile(profile.ProfileID, "dave2"); err != nil {
		t.Fatalf("RenameSqueakProfile: %v", err)
	}
	renamed, err := c.GetSqueakProfile(profile.ProfileID)
	if err != nil {
		t.Fatalf("GetSqueakProfile: %v", err)
	}
	if renamed.ProfileName != "dave2" {
		t.Fatalf("expected renamed profile, got %q", renamed.ProfileName)
	}

	if err := c.DeleteSqueakProfile(profile.ProfileID); err != nil {
		t.Fatalf("DeleteSqueakProfile: %v", err)
	}
	if _, err := c.GetSqueakProfile(profile.ProfileID); err == nil {
		t.Fatalf("expected error looking up deleted profile")
	}
}

func TestSetSqueakProfileFollowingAndPricing(t *testing.T) {
	c := newTestController(t)

	profile, err := c.CreateContactProfile("erin", "addr")
	if err != nil {
		t.Fatalf("CreateContactProfile: %v", err)
	}

	if err := c.SetSqueakProfileFollowing(profile.ProfileID, false); err != nil {
		t.Fatalf("SetSqueakProfileFollowing: %v", err)
	}
	if err := c.SetSqueakProfileUseCustomPrice(profile.ProfileID, true); err != nil {
		t.Fatalf("SetSqueakProfileUseCustomPrice: %v", err)
	}
	if err := c.SetSqueakProfileCustomPrice(profile.ProfileID, 5000); err != nil {
		t.Fatalf("SetSqueakProfileCustomPrice: %v", err)
	}

	got, err := c.GetSqueakProfile(profile.ProfileID)
	if err != nil {
		t.Fatalf("GetSqueakProfile: %v", err)
	}
	if got.Following {
		t.Fatalf("expected following to be cleared")
	}
	if !got.UseCustomPrice || got.CustomPriceMsat != 5000 {
		t.Fatalf("unexpected pricing fields: %+v", got)
	}
}
