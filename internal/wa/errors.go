package wa

import "errors"

// State-precondition errors. These are not retryable without a state change
// and are surfaced by the RPC facade as refusals, not transport errors.
var (
	ErrNotConnected    = errors.New("not connected to WhatsApp")
	ErrNotLoggedIn     = errors.New("no linked device, pair first")
	ErrAlreadyLoggedIn = errors.New("already logged in")
)
