/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package writer

import (
	"sync"

	"go.uber.org/atomic"

	"dirpx.dev/gedcom/gdcore/errors"
)

// DefaultNotificationRate is the default number of lines between two
// progress notifications.
const DefaultNotificationRate = 500

// ConstructProgress reports lines built in memory.
type ConstructProgress struct {
	// LinesProcessed is the number of lines built so far.
	LinesProcessed int

	// Complete is set on the single notification sent after the trailer.
	Complete bool
}

// FileProgress reports lines handed to the output.
type FileProgress struct {
	// LinesWritten is the number of lines written so far.
	LinesWritten int

	// Complete is set on the single notification sent after the last line.
	Complete bool
}

// Subscription identifies an observer in a Registry.
type Subscription uint64

type subscriber[E any] struct {
	id Subscription
	fn func(E)
}

// Registry holds the observers of one kind of progress event.
//
// Delivery iterates an immutable snapshot, so observers may subscribe or
// unsubscribe from any goroutine while a notification is being delivered.
// An observer added during delivery may miss that notification. The zero
// value is ready to use.
type Registry[E any] struct {
	mu   sync.Mutex // serializes writers of subs
	next atomic.Uint64
	subs atomic.Pointer[[]subscriber[E]]
}

// Subscribe adds fn and returns a handle for Unsubscribe.
func (r *Registry[E]) Subscribe(fn func(E)) Subscription {
	id := Subscription(r.next.Inc())
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.snapshot()
	subs := make([]subscriber[E], len(old), len(old)+1)
	copy(subs, old)
	subs = append(subs, subscriber[E]{id: id, fn: fn})
	r.subs.Store(&subs)
	return id
}

// Unsubscribe removes the observer with handle s. It reports whether the
// observer was present.
func (r *Registry[E]) Unsubscribe(s Subscription) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.snapshot()
	subs := make([]subscriber[E], 0, len(old))
	for _, sub := range old {
		if sub.id != s {
			subs = append(subs, sub)
		}
	}
	if len(subs) == len(old) {
		return false
	}
	r.subs.Store(&subs)
	return true
}

// Len returns the number of current observers.
func (r *Registry[E]) Len() int { return len(r.snapshot()) }

// Notify delivers ev to every observer in the current snapshot, in
// subscription order.
func (r *Registry[E]) Notify(ev E) {
	for _, sub := range r.snapshot() {
		sub.fn(ev)
	}
}

func (r *Registry[E]) snapshot() []subscriber[E] {
	if p := r.subs.Load(); p != nil {
		return *p
	}
	return nil
}

// throttle decides when a line count is worth a notification.
type throttle struct {
	rate int
	last int
}

// due reports whether more than rate lines were produced since the last
// notification, and if so records n as the new mark.
func (t *throttle) due(n int) bool {
	if n-t.last <= t.rate {
		return false
	}
	t.last = n
	return true
}

func validateRate(option string, n int) error {
	if n < 1 {
		return &errors.ConfigError{Option: option, Value: n, Reason: "must be at least 1"}
	}
	return nil
}
