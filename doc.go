// Package prefstore provides a typed settings accessor over a two-tier
// key-value store: a "local" tier scoped to one device and a "roaming" tier
// synchronized across a user's devices.
//
// # Overview
//
// prefstore lets application code declare named, typed configuration
// properties without touching the raw stores. Each property is declared
// local-pinned or roaming-eligible; the accessor routes reads and writes to
// the right tier, substitutes defaults for absent or unreadable values, and
// notifies subscribers after each write. Persistence belongs entirely to the
// backing Store implementations.
//
// # Architecture
//
// The package consists of three abstractions:
//
// 1. Settings: the accessor applying routing, defaults, and notifications
// 2. Schema: static per-property routing declarations
// 3. Store: the backing key-value store interface (two instances per accessor)
//
// # Quick Start
//
//	schema := prefstore.Declarations{
//		"Theme":    prefstore.RoamingEligible,
//		"DeviceId": prefstore.LocalPinned,
//	}
//	settings := prefstore.New(schema)
//	ctx := context.Background()
//
//	prefstore.Set(ctx, settings, "Theme", "dark")
//	theme := prefstore.GetDefault(ctx, settings, "Theme", "light")
//
// # Routing
//
// Local-pinned properties always live on the local store. Roaming-eligible
// properties are written to the roaming store unconditionally, but read from
// it only while the RoamingEnabled toggle (itself a local-pinned property,
// default true) is on. While the toggle is off, reads check the local store
// first and fall back to the roaming store. The asymmetry is deliberate:
// turning roaming off changes where reads look, never where writes land.
//
// # Backing Stores
//
// Memory is the default for both tiers. RedisStore suits the roaming tier;
// BadgerStore and SQLiteStore suit the local tier:
//
//	local, _ := prefstore.OpenSQLiteStore("/var/lib/app/settings.db")
//	roaming, _ := prefstore.NewRedisStore(prefstore.RedisConfig{Addr: "localhost:6379"})
//
//	settings := prefstore.New(schema,
//		prefstore.WithLocalStore(local),
//		prefstore.WithRoamingStore(roaming))
//
// Implement the Store interface to delegate to any other key-value store.
//
// # Error Handling
//
// Reads never fail: absence, store errors, and type mismatches all resolve
// to the caller-supplied default. Writes that fail are silent no-ops and emit
// no notification. This favors availability of the configuration surface over
// correctness signaling, which is acceptable for non-critical preferences.
// The one loud failure is reading or writing a property name missing from the
// Schema: that is a programming error and panics.
//
// # Change Notification
//
//	cancel := settings.OnChange(func(name string) {
//		log.Printf("setting %s changed", name)
//	})
//	defer cancel()
//
// Subscribers run synchronously, in subscription order, before Set returns.
//
// # Thread Safety
//
// All operations are thread-safe. Multiple goroutines can safely share the
// same Settings instance. Store implementations must also be thread-safe.
package prefstore
