package core

import "github.com/dkeye/Roulette/internal/domain"

type waitEntry struct {
	sid  SessionID
	user *domain.User
}

// WaitQueue is the FIFO of connections seeking a partner. It is not
// internally locked; the orchestrator serializes all access under its
// own mutex so that scan-and-remove stays indivisible.
type WaitQueue struct {
	entries []waitEntry
	index   map[SessionID]struct{}
}

func NewWaitQueue() *WaitQueue {
	return &WaitQueue{index: make(map[SessionID]struct{})}
}

func (q *WaitQueue) Len() int { return len(q.entries) }

func (q *WaitQueue) Contains(sid SessionID) bool {
	_, ok := q.index[sid]
	return ok
}

// Enqueue appends sid at the tail. A sid already queued is a no-op;
// re-enqueueing requires a Withdraw (or a match) first.
func (q *WaitQueue) Enqueue(sid SessionID, user *domain.User) bool {
	if _, ok := q.index[sid]; ok {
		return false
	}
	q.entries = append(q.entries, waitEntry{sid: sid, user: user})
	q.index[sid] = struct{}{}
	return true
}

// Withdraw removes sid if present. Safe to call redundantly: an
// explicit leave_queue and a disconnect cleanup may race on it.
func (q *WaitQueue) Withdraw(sid SessionID) bool {
	if _, ok := q.index[sid]; !ok {
		return false
	}
	delete(q.index, sid)
	for i, e := range q.entries {
		if e.sid == sid {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			break
		}
	}
	return true
}

// Refresh swaps the stored profile for sid after a re-profile,
// keeping its queue position. The caller holds the same lock that
// guards ScanFor.
func (q *WaitQueue) Refresh(sid SessionID, user *domain.User) bool {
	if _, ok := q.index[sid]; !ok {
		return false
	}
	for i := range q.entries {
		if q.entries[i].sid == sid {
			q.entries[i].user = user
			return true
		}
	}
	return false
}

// ScanFor walks head to tail and returns the first entry mutually
// compatible with user. Read-only: the caller decides whether to
// remove the candidate while still holding its lock.
func (q *WaitQueue) ScanFor(user *domain.User) (SessionID, bool) {
	for _, e := range q.entries {
		if domain.Compatible(user, e.user) {
			return e.sid, true
		}
	}
	return "", false
}
