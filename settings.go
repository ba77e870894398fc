package prefstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// RoamingEnabledKey is the reserved property name of the global roaming
// toggle. The toggle is always local-pinned and defaults to true.
const RoamingEnabledKey = "RoamingEnabled"

// Settings routes typed configuration properties between a device-local
// store and a roaming store. Routing is declared per property in a Schema
// and resolved at most once per property for the lifetime of the accessor.
//
// Reads honor the roaming toggle; writes do not. A roaming-eligible property
// is always written to the roaming store, even while the toggle is off — the
// toggle only changes where reads look first. Safe for concurrent use.
type Settings struct {
	schema  Schema
	local   Store
	roaming Store
	logger  Logger
	logTag  string

	mu      sync.Mutex
	routing map[string]Routing

	subMu  sync.Mutex
	subSeq uint64
	subs   []subscription
}

// New creates a Settings accessor over the given schema.
// If no stores are provided via WithLocalStore/WithRoamingStore, each tier
// defaults to an independent NewMemory() instance.
// If no logger is provided via WithLogger, a no-op logger is used.
func New(schema Schema, opts ...Option) *Settings {
	s := &Settings{
		schema:  schema,
		local:   NewMemory(),
		roaming: NewMemory(),
		logger:  defaultLogger,
		routing: make(map[string]Routing),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// resolveRouting returns the routing for name, consulting the schema at most
// once per property. Undeclared names are a programming error (a missing or
// misspelled declaration) and panic rather than being absorbed.
func (s *Settings) resolveRouting(name string) Routing {
	if name == RoamingEnabledKey {
		return LocalPinned
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.routing[name]; ok {
		return r
	}

	r, ok := s.schema.Routing(name)
	if !ok {
		panic(fmt.Sprintf("prefstore: property %q is not declared", name))
	}

	s.routing[name] = r
	return r
}

// roamingOn reads the toggle directly from the local store, defaulting to
// true. The general read path cannot be used here: it would need the
// toggle's own value to decide whether to fall back.
func (s *Settings) roamingOn(ctx context.Context) bool {
	data, err := s.local.Get(ctx, RoamingEnabledKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logf("warn", ctx, "read %s failed: %v", RoamingEnabledKey, err)
		}
		return true
	}

	var enabled bool
	if err := json.Unmarshal(data, &enabled); err != nil {
		s.logf("warn", ctx, "decode %s failed: %v", RoamingEnabledKey, err)
		return true
	}
	return enabled
}

// load fetches the raw bytes for name following the read-routing policy:
// roaming-eligible properties read from the roaming store while the toggle
// is on; local-routed reads check the local store first and fall back to the
// roaming store only while the toggle is off.
func (s *Settings) load(ctx context.Context, name string) ([]byte, error) {
	pinned := s.resolveRouting(name) == LocalPinned
	roaming := s.roamingOn(ctx)

	if roaming && !pinned {
		return s.roaming.Get(ctx, name)
	}

	data, err := s.local.Get(ctx, name)
	if err != nil && !roaming {
		// A value written while roaming was on may still live in the
		// roaming store.
		return s.roaming.Get(ctx, name)
	}
	return data, err
}

// Get returns the stored value for name, or the zero value of T when the
// property is absent or unreadable. It never fails: store errors and type
// mismatches resolve to the default.
func Get[T any](ctx context.Context, s *Settings, name string) T {
	var zero T
	return GetDefault(ctx, s, name, zero)
}

// GetDefault returns the stored value for name, or def when the property is
// absent or unreadable. Absence, store failures, and values that do not
// decode into T all resolve to def; nothing is surfaced to the caller.
func GetDefault[T any](ctx context.Context, s *Settings, name string, def T) T {
	data, err := s.load(ctx, name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logf("warn", ctx, "Get %s failed: %v", name, err)
		}
		return def
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.logf("warn", ctx, "Get %s: %v: %v", name, ErrTypeMismatch, err)
		return def
	}
	return value
}

// Set writes value for name and notifies subscribers. The write lands in the
// store selected by the property's routing alone: local if pinned, roaming
// otherwise, regardless of the roaming toggle. On failure nothing is written,
// no notification is emitted, and no error is surfaced.
func Set[T any](ctx context.Context, s *Settings, name string, value T) {
	target := s.roaming
	if s.resolveRouting(name) == LocalPinned {
		target = s.local
	}

	data, err := json.Marshal(value)
	if err != nil {
		s.logf("error", ctx, "Set %s encode failed: %v", name, err)
		return
	}

	if err := target.Set(ctx, name, data); err != nil {
		s.logf("error", ctx, "Set %s failed: %v", name, err)
		return
	}

	s.notify(name)
}

// RoamingEnabled reports whether roaming-eligible properties currently read
// from the roaming store. Defaults to true when the toggle was never set.
func (s *Settings) RoamingEnabled(ctx context.Context) bool {
	return s.roamingOn(ctx)
}

// SetRoamingEnabled persists the roaming toggle. The toggle itself lives in
// the local store and its change is notified under RoamingEnabledKey.
func (s *Settings) SetRoamingEnabled(ctx context.Context, enabled bool) {
	Set(ctx, s, RoamingEnabledKey, enabled)
}

func (s *Settings) logf(level string, ctx context.Context, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if s.logTag != "" {
		msg = s.logTag + " " + msg
	}
	switch level {
	case "info":
		s.logger.Info(ctx, msg)
	case "warn":
		s.logger.Warn(ctx, msg)
	case "error":
		s.logger.Error(ctx, msg)
	case "debug":
		s.logger.Debug(ctx, msg)
	}
}
