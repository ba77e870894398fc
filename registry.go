package prefstore

import "sync"

var (
	registryMu sync.Mutex
	registry   = make(map[string]*Settings)
)

// Instance returns the process-wide Settings registered under name,
// invoking init to construct it on first use. Construction is serialized:
// init runs at most once per name, and concurrent first access observes a
// fully constructed accessor. init must not call Instance itself.
func Instance(name string, init func() *Settings) *Settings {
	registryMu.Lock()
	defer registryMu.Unlock()

	if s, ok := registry[name]; ok {
		return s
	}

	s := init()
	registry[name] = s
	return s
}
