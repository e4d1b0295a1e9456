// Package services contains the application services for the DocHub client:
// the generic per-screen resource controller and the auth service.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/young-sensey/dochub/internal/client/client"
)

// NotificationTTL is how long a success or error banner stays before it
// auto-clears, unless a newer message restarts the clock.
const NotificationTTL = 4000 * time.Millisecond

// Entity is anything with a server-assigned integer identity.
type Entity interface {
	EntityID() int
}

// Resource is the remote collection a controller drives. T is the entity,
// F its mutable fields.
type Resource[T Entity, F any] interface {
	List(ctx context.Context, filter client.ListFilter) ([]T, error)
	Create(ctx context.Context, fields F, attachment *client.Attachment) (T, error)
	Update(ctx context.Context, id int, fields F) (T, error)
	Delete(ctx context.Context, id int) error
}

// Controller owns one screen's collection state: the items in server order,
// the loading flag, and the transient success/error banners. One instance
// backs one screen and is closed when the screen goes away; its state is
// never shared.
//
// Operations apply their effect only after the server round-trip resolves;
// nothing is applied speculatively. Failures never escape as errors to the
// screen loop — every operation lands in either updated items or a captured
// banner — except Create/Update, which additionally report failure so the
// calling form knows whether to navigate away.
type Controller[T Entity, F any] struct {
	res   Resource[T, F]
	label string
	ttl   time.Duration

	mu      sync.Mutex
	items   []T
	loading bool
	errMsg  string
	okMsg   string
	timer   *time.Timer
	gen     uint64
	closed  bool
}

// NewController builds a controller over res. label names the entity in
// banner messages ("document", "category"). ttl is the banner lifetime;
// callers normally pass NotificationTTL.
func NewController[T Entity, F any](res Resource[T, F], label string, ttl time.Duration) *Controller[T, F] {
	return &Controller[T, F]{res: res, label: label, ttl: ttl, items: []T{}}
}

// Load fetches the collection and replaces items with the server's response
// verbatim — no client-side re-sorting. On failure items become empty (never
// a stale list masking the failure) and an error banner is set.
func (c *Controller[T, F]) Load(ctx context.Context, filter client.ListFilter) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.mu.Unlock()

	items, err := c.res.List(ctx, filter)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		// the screen unmounted while the call was in flight
		return
	}
	c.loading = false
	if err != nil {
		c.items = []T{}
		c.notifyLocked("", fmt.Sprintf("failed to load %ss: %v", c.label, err))
		return
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.errMsg = ""
}

// Create submits a creation request. On success the caller is expected to
// navigate away; items are not touched — the next Load reflects the new
// entity. On failure an error banner is set and the error returned.
func (c *Controller[T, F]) Create(ctx context.Context, fields F, attachment *client.Attachment) (T, error) {
	created, err := c.res.Create(ctx, fields, attachment)
	if err != nil {
		c.mu.Lock()
		if !c.closed {
			c.notifyLocked("", fmt.Sprintf("failed to create %s: %v", c.label, err))
		}
		c.mu.Unlock()
		return created, err
	}
	return created, nil
}

// Update submits an update under the same navigate-away contract as Create.
func (c *Controller[T, F]) Update(ctx context.Context, id int, fields F) (T, error) {
	updated, err := c.res.Update(ctx, id, fields)
	if err != nil {
		c.mu.Lock()
		if !c.closed {
			c.notifyLocked("", fmt.Sprintf("failed to update %s: %v", c.label, err))
		}
		c.mu.Unlock()
		return updated, err
	}
	return updated, nil
}

// Remove asks confirm first, then issues the deletion. Only after the server
// confirms is the entity removed from items, by identity match and in place,
// so the displayed list does not flash through a refetch. On failure items
// are untouched.
func (c *Controller[T, F]) Remove(ctx context.Context, id int, confirm func() bool) {
	if confirm != nil && !confirm() {
		return
	}

	err := c.res.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if err != nil {
		c.notifyLocked("", fmt.Sprintf("failed to delete %s: %v", c.label, err))
		return
	}

	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.notifyLocked(fmt.Sprintf("%s deleted", c.label), "")
}

// Items returns a copy of the current collection in server order.
func (c *Controller[T, F]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether a fetch is in flight.
func (c *Controller[T, F]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Notice returns the current success and error banners ("" when absent).
func (c *Controller[T, F]) Notice() (success, errMsg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.okMsg, c.errMsg
}

// Close marks the screen unmounted: the pending banner timer is cancelled
// and any still-in-flight operation results are discarded instead of
// mutating discarded state.
func (c *Controller[T, F]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// notifyLocked sets the banners and arms the auto-clear timer. Re-arming
// cancels the previous timer: only the newest message's timer governs
// clearing. The generation counter makes a timer that already fired but
// lost the race a no-op. Callers hold c.mu.
func (c *Controller[T, F]) notifyLocked(success, errMsg string) {
	c.okMsg = success
	c.errMsg = errMsg

	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(c.ttl, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || gen != c.gen {
			return
		}
		c.okMsg = ""
		c.errMsg = ""
		c.timer = nil
	})
}
