package prefstore

import (
	"context"
	"testing"
)

// countingSchema records how often each property's declaration is consulted.
type countingSchema struct {
	inner   Declarations
	lookups map[string]int
}

func (c *countingSchema) Routing(name string) (Routing, bool) {
	c.lookups[name]++
	return c.inner.Routing(name)
}

func TestDeclarations_Routing(t *testing.T) {
	d := Declarations{
		"Theme":    RoamingEligible,
		"DeviceId": LocalPinned,
	}

	if r, ok := d.Routing("DeviceId"); !ok || r != LocalPinned {
		t.Errorf("Routing(DeviceId) = %v, %v; want LocalPinned, true", r, ok)
	}
	if r, ok := d.Routing("Theme"); !ok || r != RoamingEligible {
		t.Errorf("Routing(Theme) = %v, %v; want RoamingEligible, true", r, ok)
	}
	if _, ok := d.Routing("Missing"); ok {
		t.Error("Routing(Missing) should report ok=false")
	}
}

func TestResolveRouting_CachedAfterFirstLookup(t *testing.T) {
	schema := &countingSchema{
		inner:   testSchema(),
		lookups: make(map[string]int),
	}
	s := New(schema)
	ctx := context.Background()

	Get[string](ctx, s, "Theme")
	Set(ctx, s, "Theme", "dark")
	Get[string](ctx, s, "Theme")
	GetDefault(ctx, s, "Theme", "light")

	if n := schema.lookups["Theme"]; n != 1 {
		t.Errorf("schema consulted %d times for Theme, want 1", n)
	}

	Get[string](ctx, s, "DeviceId")
	Get[string](ctx, s, "DeviceId")
	if n := schema.lookups["DeviceId"]; n != 1 {
		t.Errorf("schema consulted %d times for DeviceId, want 1", n)
	}
}

// mutableSchema flips its answer after the first lookup; the accessor must
// keep the first resolution for its whole lifetime.
type mutableSchema struct {
	asked bool
}

func (m *mutableSchema) Routing(name string) (Routing, bool) {
	if m.asked {
		return RoamingEligible, true
	}
	m.asked = true
	return LocalPinned, true
}

func TestResolveRouting_StableForProcessLifetime(t *testing.T) {
	s := New(&mutableSchema{})
	ctx := context.Background()

	Set(ctx, s, "Flag", true)
	Set(ctx, s, "Flag", false)

	// Both writes must have used the first (pinned) resolution.
	if ok, _ := s.local.Contains(ctx, "Flag"); !ok {
		t.Error("second write used re-resolved routing; cache must be stable")
	}
	if ok, _ := s.roaming.Contains(ctx, "Flag"); ok {
		t.Error("second write landed in the roaming store")
	}
}

func TestResolveRouting_ReservedToggleSkipsSchema(t *testing.T) {
	schema := &countingSchema{
		inner:   Declarations{},
		lookups: make(map[string]int),
	}
	s := New(schema)
	ctx := context.Background()

	// The toggle is implicitly declared; the schema is never consulted
	// even though it declares nothing.
	s.SetRoamingEnabled(ctx, false)
	s.RoamingEnabled(ctx)

	if n := schema.lookups[RoamingEnabledKey]; n != 0 {
		t.Errorf("schema consulted %d times for the toggle, want 0", n)
	}
}

func TestRouting_String(t *testing.T) {
	if got := LocalPinned.String(); got != "local" {
		t.Errorf("LocalPinned.String() = %q, want %q", got, "local")
	}
	if got := RoamingEligible.String(); got != "roaming" {
		t.Errorf("RoamingEligible.String() = %q, want %q", got, "roaming")
	}
	if got := Routing(42).String(); got != "Routing(42)" {
		t.Errorf("Routing(42).String() = %q, want %q", got, "Routing(42)")
	}
}
