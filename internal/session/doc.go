// Package session holds the per-user state bag and the in-memory store that
// keeps it between requests.
//
// A Session owns one Guided Study Wizard, one Chavruta session and the most
// recently uploaded document. Callers must hold the session via Acquire for
// the whole of an action; a second action on the same session while one is
// running is rejected with ErrBusy. Idle sessions expire after the configured
// TTL and are dropped, which ends any flow they contained.
package session
