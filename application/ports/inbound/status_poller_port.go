package inbound

// StatusPollerPort supervises one background reconciliation goroutine per
// session. Start is idempotent while a poller is already running; the
// goroutine stops itself once no result matches the pending guard, and
// Stop cancels it early.
type StatusPollerPort interface {
	Start(sessionKey string) error
	Stop(sessionKey string)
	Running(sessionKey string) bool
}
