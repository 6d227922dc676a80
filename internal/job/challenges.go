package job

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// challengeStore holds at most one pending work challenge per user. Entries outlive their
// answer deadline so a late answer can still be told apart from no challenge at all.
type challengeStore struct {
	lru *expirable.LRU[int64, domain.WorkChallenge]
}

func newChallengeStore(size int, answerWindow time.Duration) *challengeStore {
	return &challengeStore{
		lru: expirable.NewLRU[int64, domain.WorkChallenge](size, nil, 2*answerWindow),
	}
}

// Put replaces any challenge the user already had
func (c *challengeStore) Put(ch domain.WorkChallenge) {
	c.lru.Add(ch.UserID, ch)
}

// Take removes and returns the user's challenge
func (c *challengeStore) Take(userID int64) (domain.WorkChallenge, bool) {
	ch, ok := c.lru.Get(userID)
	if ok {
		c.lru.Remove(userID)
	}
	return ch, ok
}

// Discard drops the user's challenge if present
func (c *challengeStore) Discard(userID int64) {
	c.lru.Remove(userID)
}
