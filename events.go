package prefstore

// ChangeFunc receives the name of a property after a successful write.
type ChangeFunc func(name string)

type subscription struct {
	id uint64
	fn ChangeFunc
}

// OnChange registers fn to be called synchronously after every successful
// write, before Set returns. Subscribers are invoked in subscription order.
// The returned func cancels the subscription; calling it more than once is
// harmless.
func (s *Settings) OnChange(fn ChangeFunc) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.subSeq++
	id := s.subSeq
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// notify invokes subscribers without holding the subscriber lock, so a
// callback may subscribe or cancel without deadlocking.
func (s *Settings) notify(name string) {
	s.subMu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(name)
	}
}
