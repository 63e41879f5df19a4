// Package users maps numeric user ids to login names.
package users

import (
	"os/user"
	"sync"
)

// Resolver turns a numeric uid string into a username.
type Resolver interface {
	LookupUID(uid string) (string, error)
}

// System resolves through the host's identity database (passwd, NSS).
// Results, including misses, are memoized because a task list asks for
// the same handful of uids over and over.
type System struct {
	mu    sync.Mutex
	cache map[string]lookupResult
}

type lookupResult struct {
	name string
	err  error
}

// NewSystem returns an empty caching resolver.
func NewSystem() *System {
	return &System{cache: make(map[string]lookupResult)}
}

// LookupUID implements Resolver.
func (s *System) LookupUID(uid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.cache[uid]; ok {
		return r.name, r.err
	}
	u, err := user.LookupId(uid)
	r := lookupResult{err: err}
	if err == nil {
		r.name = u.Username
	}
	s.cache[uid] = r
	return r.name, r.err
}

// Static is a fixed uid -> name table.
type Static map[string]string

// LookupUID implements Resolver.
func (s Static) LookupUID(uid string) (string, error) {
	if name, ok := s[uid]; ok {
		return name, nil
	}
	return "", user.UnknownUserIdError(int(parseUID(uid)))
}

// NameOrUID returns the resolved name, or uid itself when lookup fails.
func NameOrUID(r Resolver, uid string) string {
	if r == nil || uid == "" {
		return uid
	}
	name, err := r.LookupUID(uid)
	if err != nil || name == "" {
		return uid
	}
	return name
}

func parseUID(uid string) int64 {
	var v int64
	for i := 0; i < len(uid); i++ {
		if uid[i] < '0' || uid[i] > '9' {
			return -1
		}
		v = v*10 + int64(uid[i]-'0')
	}
	return v
}
