package prefstore

import "fmt"

// Routing selects which backing store a property is bound to.
type Routing int

const (
	// RoamingEligible properties read from the roaming store while the
	// roaming toggle is on. This is the zero value.
	RoamingEligible Routing = iota

	// LocalPinned properties stay on the device-local store regardless of
	// the roaming toggle.
	LocalPinned
)

func (r Routing) String() string {
	switch r {
	case RoamingEligible:
		return "roaming"
	case LocalPinned:
		return "local"
	default:
		return fmt.Sprintf("Routing(%d)", int(r))
	}
}

// Schema resolves the declared routing for a property name. Resolution must
// not touch any backing store; it depends only on static declarations made
// when the configuration type is defined.
type Schema interface {
	// Routing returns the routing declared for name, or ok=false when the
	// property is not declared.
	Routing(name string) (Routing, bool)
}

// Declarations is a static property table mapping each declared property
// name to its routing. It is the usual way to build a Schema:
//
//	schema := prefstore.Declarations{
//		"Theme":    prefstore.RoamingEligible,
//		"DeviceId": prefstore.LocalPinned,
//	}
type Declarations map[string]Routing

func (d Declarations) Routing(name string) (Routing, bool) {
	r, ok := d[name]
	return r, ok
}
