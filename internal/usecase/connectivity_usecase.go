package usecase

import "context"

// ConnectivityUsecase observes network reachability transitions for the
// session. It registers exactly one listener pair for its lifetime, emits a
// notification per real transition, and signals reconnect subscribers that
// deferred remote operations may be retried.
type ConnectivityUsecase interface {
	// Online reports the current reachability state.
	Online() bool

	// OnReconnect registers fn to run after every offline-to-online
	// transition. The returned function deregisters it.
	OnReconnect(fn func()) (unsubscribe func())

	// Start registers the reachability listener and attempts the one-shot
	// update-worker registration. Worker failures are logged, never fatal.
	Start(ctx context.Context) error

	// Close deregisters the reachability listener.
	Close()
}
