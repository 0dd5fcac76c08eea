// Package auth holds the in-memory token registry and the verified-identity
// context plumbing shared by the call verifier and the RPC handlers.
package auth

import (
	"sync"
	"time"

	"github.com/soteriapass/pswmgr/internal/cryptox"
)

// record is the single identity record per username. It is indexed under
// both the token string and the username; the registry never duplicates it.
type record struct {
	token    string
	username string
	issuedAt time.Time
}

// Registry maps issued tokens and usernames to identity records. It is
// written by the authentication service and read by the call verifier on
// every protected call, so it is safe for concurrent read-heavy access.
//
// Invariants:
//   - at most one live token per username;
//   - byToken and byUser always point at the same record for an identity;
//   - issuing a new token removes the previous token key in the same
//     critical section, never leaving an orphaned entry.
type Registry struct {
	mu      sync.RWMutex
	byToken map[string]*record
	byUser  map[string]*record
	ttl     time.Duration
	now     func() time.Time
}

// DefaultTokenTTL bounds token lifetime when no TTL is configured.
// Tokens older than this resolve as unknown and are evicted.
const DefaultTokenTTL = 12 * time.Hour

func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Registry{
		byToken: make(map[string]*record),
		byUser:  make(map[string]*record),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue generates a fresh opaque token for username and indexes the
// identity record under both the token and the username. A previous token
// for the same username stops resolving atomically with the replacement.
func (r *Registry) Issue(username string) (string, error) {
	token, err := cryptox.NewAuthToken()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byUser[username]; ok {
		delete(r.byToken, old.token)
	}

	rec := &record{token: token, username: username, issuedAt: r.now()}
	r.byToken[token] = rec
	r.byUser[username] = rec

	return token, nil
}

// ResolveToken returns the username bound to token. Expired or unknown
// tokens resolve as not found; expired records are evicted on the spot.
func (r *Registry) ResolveToken(token string) (string, bool) {
	r.mu.RLock()
	rec, ok := r.byToken[token]
	r.mu.RUnlock()

	if !ok {
		return "", false
	}

	if r.now().Sub(rec.issuedAt) > r.ttl {
		r.evict(rec)
		return "", false
	}

	return rec.username, true
}

// ResolveUser returns the live token for username, if any.
func (r *Registry) ResolveUser(username string) (string, bool) {
	r.mu.RLock()
	rec, ok := r.byUser[username]
	r.mu.RUnlock()

	if !ok {
		return "", false
	}

	if r.now().Sub(rec.issuedAt) > r.ttl {
		r.evict(rec)
		return "", false
	}

	return rec.token, true
}

// Revoke removes the identity record for username under both keys.
// Reports whether a record was present.
func (r *Registry) Revoke(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byUser[username]
	if !ok {
		return false
	}

	delete(r.byToken, rec.token)
	delete(r.byUser, username)
	return true
}

func (r *Registry) evict(rec *record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// The record may have been replaced since the read lock was dropped;
	// only evict if both keys still point at it.
	if cur, ok := r.byUser[rec.username]; ok && cur == rec {
		delete(r.byUser, rec.username)
	}
	if cur, ok := r.byToken[rec.token]; ok && cur == rec {
		delete(r.byToken, rec.token)
	}
}
