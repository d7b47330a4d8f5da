package commands

import (
	"fmt"
	"slices"
	"sync"

	"github.com/renato0307/noted/internal/logging"
)

// Listener reacts to a command being emitted. detail is whatever the
// emitter passed, possibly nil.
type Listener func(detail any) error

// Subscription is the handle returned by Subscribe
type Subscription struct {
	registry  *Registry
	commandID string
	id        uint64
	listener  Listener
	once      sync.Once
}

// Unsubscribe removes this listener. Calling it more than once is harmless.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.registry != nil {
			s.registry.remove(s)
		}
	})
}

// Subscribe registers l to run whenever cmd is emitted. Listeners run in
// subscription order. Listeners are keyed by command ID, so cmd does not
// have to belong to the registry. A nil cmd or l yields a subscription
// that is never notified.
func (r *Registry) Subscribe(cmd *Command, l Listener) *Subscription {
	if cmd == nil || l == nil {
		return &Subscription{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSubID++
	sub := &Subscription{
		registry:  r,
		commandID: cmd.ID,
		id:        r.nextSubID,
		listener:  l,
	}
	r.listeners[cmd.ID] = append(r.listeners[cmd.ID], sub)
	return sub
}

// Unsubscribe removes the listener behind sub; see Subscription.Unsubscribe
func (r *Registry) Unsubscribe(sub *Subscription) {
	sub.Unsubscribe()
}

func (r *Registry) remove(sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.listeners[sub.commandID]
	idx := slices.IndexFunc(subs, func(s *Subscription) bool { return s.id == sub.id })
	if idx < 0 {
		return
	}

	// Build a new slice so snapshots taken by an in-flight Emit stay intact
	remaining := make([]*Subscription, 0, len(subs)-1)
	remaining = append(remaining, subs[:idx]...)
	remaining = append(remaining, subs[idx+1:]...)
	if len(remaining) == 0 {
		delete(r.listeners, sub.commandID)
		return
	}
	r.listeners[sub.commandID] = remaining
}

// Emit synchronously calls every listener subscribed to cmd, in
// subscription order, with detail.
//
// Delivery is best effort: the first listener error stops the remaining
// notifications and is returned. A panicking listener propagates to the
// caller the same way. Listeners may subscribe or unsubscribe while Emit
// runs; the set notified is the one in place when Emit started.
func (r *Registry) Emit(cmd *Command, detail any) error {
	if cmd == nil {
		return nil
	}

	r.mu.RLock()
	snapshot := slices.Clone(r.listeners[cmd.ID])
	r.mu.RUnlock()

	if len(snapshot) == 0 {
		r.logger.Debug("emit without listeners", "command", cmd.ID)
		return nil
	}

	timer := logging.Start("emit " + cmd.ID)
	delivered := 0
	defer func() {
		logging.EndWithCount(timer, delivered)
	}()

	for _, sub := range snapshot {
		if err := sub.listener(detail); err != nil {
			r.logger.Warn("listener failed", "command", cmd.ID, "error", err)
			return fmt.Errorf("command %s: %w", cmd.ID, err)
		}
		delivered++
	}
	return nil
}

// ListenerCount returns how many listeners are subscribed to cmd
func (r *Registry) ListenerCount(cmd *Command) int {
	if cmd == nil {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners[cmd.ID])
}
