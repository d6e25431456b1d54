package vnode

import (
	"errors"
	"testing"
)

// TestRegistry_Register verifies CIDs are unique and names default to id.
func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	home, err := r.Register("home-view", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if home.Name != "home-view" {
		t.Errorf("Name = %q, want home-view", home.Name)
	}

	settings, err := r.Register("settings-view", "Settings")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if settings.Name != "Settings" {
		t.Errorf("Name = %q, want Settings", settings.Name)
	}
	if home.CID == settings.CID {
		t.Error("CIDs should be distinct")
	}

	again, err := r.Register("home-view", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if again.CID == home.CID {
		t.Error("re-registration should mint a new CID")
	}
	got, ok := r.Lookup("home-view")
	if !ok || got != again {
		t.Error("Lookup should return the latest registration")
	}
}

// TestRegistry_RegisterErrors verifies invalid ids are rejected.
func TestRegistry_RegisterErrors(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Register("", "x"); !errors.Is(err, ErrEmptyID) {
		t.Errorf("empty id error = %v, want ErrEmptyID", err)
	}
	if _, err := r.Register("div", ""); !errors.Is(err, ErrReservedTag) {
		t.Errorf("reserved id error = %v, want ErrReservedTag", err)
	}
	if _, err := r.Register("Slot", ""); !errors.Is(err, ErrReservedTag) {
		t.Errorf("reserved id error = %v, want ErrReservedTag", err)
	}
}

// TestRegistry_Component verifies VNode construction from a registration.
func TestRegistry_Component(t *testing.T) {
	r := NewRegistry()
	ctor, _ := r.Register("home-view", "Home")

	v := r.Component("home-view", "home", "k1")
	if v == nil {
		t.Fatal("Component returned nil")
	}
	if v.ComponentOptions.Ctor != ctor {
		t.Error("Ctor should be the registered constructor")
	}
	if v.ComponentOptions.Tag != "home" || v.Key != "k1" {
		t.Errorf("unexpected node: tag=%q key=%q", v.ComponentOptions.Tag, v.Key)
	}
	if r.Component("missing", "x", "") != nil {
		t.Error("Component for unknown id should be nil")
	}
}
