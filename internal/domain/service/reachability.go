package service

// Reachability mirrors the runtime's live network reachability signal: a
// current boolean plus a subscribe/unsubscribe pair for transition events.
type Reachability interface {
	// Online reports the current reachability state.
	Online() bool

	// Subscribe registers fn to be called on every reachability transition
	// with the new state. The returned function deregisters the listener.
	Subscribe(fn func(online bool)) (unsubscribe func())
}
