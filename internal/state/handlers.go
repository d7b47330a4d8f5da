package state

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/renato0307/noted/internal/commands"
	"github.com/renato0307/noted/internal/logging"
)

// ErrNoActiveTab is returned by handlers that need an open file
var ErrNoActiveTab = errors.New("no active file")

// Handlers binds built-in commands to a Store
type Handlers struct {
	store    *Store
	copyText func(string) error
	logger   *logging.Logger
}

// NewHandlers creates handlers acting on store. The copy-path handler writes
// to the system clipboard.
func NewHandlers(store *Store) *Handlers {
	return &Handlers{
		store:    store,
		copyText: clipboard.WriteAll,
		logger:   logging.Get().With("component", "state"),
	}
}

// WithClipboard replaces the clipboard writer
func (h *Handlers) WithClipboard(fn func(string) error) *Handlers {
	h.copyText = fn
	return h
}

// Bind subscribes every handler to its command in reg. All built-in
// commands it handles must be registered; on error nothing stays subscribed.
func (h *Handlers) Bind(reg *commands.Registry) ([]*commands.Subscription, error) {
	bindings := []struct {
		id       string
		listener commands.Listener
	}{
		{commands.IDCommandPalette, h.togglePalette},
		{commands.IDSidebarToggle, h.guarded(toggleSidebar)},
		{commands.IDNotespaceFind, h.guarded(showGrep)},
		{commands.IDFileBookmark, h.toggleBookmark},
		{commands.IDSettings, h.guarded(openSettings)},
		{commands.IDFileCopyPath, h.copyActivePath},
	}

	subs := make([]*commands.Subscription, 0, len(bindings))
	for _, b := range bindings {
		cmd := reg.FindByID(b.id)
		if cmd == nil {
			for _, sub := range subs {
				sub.Unsubscribe()
			}
			return nil, fmt.Errorf("%w: %q", commands.ErrUnknownCommand, b.id)
		}
		subs = append(subs, reg.Subscribe(cmd, b.listener))
	}

	h.logger.Debug("handlers bound", "count", len(subs))
	return subs, nil
}

// guarded wraps a transition with DisableWhenDialog
func (h *Handlers) guarded(transition func(State) State) commands.Listener {
	return func(any) error {
		h.store.Update(func(prev State) State {
			return DisableWhenDialog(prev, transition(prev.clone()))
		})
		return nil
	}
}

func (h *Handlers) togglePalette(any) error {
	h.store.Update(func(s State) State {
		if s.Dialog == DialogCommandPalette {
			s.Dialog = DialogNone
		} else {
			s.Dialog = DialogCommandPalette
		}
		return s
	})
	return nil
}

func (h *Handlers) toggleBookmark(any) error {
	h.store.Update(func(prev State) State {
		if prev.ActiveTab == "" {
			return prev
		}

		next := prev.clone()
		if next.IsBookmarked(next.ActiveTab) {
			next.Bookmarks = removeString(next.Bookmarks, next.ActiveTab)
		} else {
			next.Bookmarks = append(next.Bookmarks, next.ActiveTab)
		}
		return DisableWhenDialog(prev, next)
	})
	return nil
}

func (h *Handlers) copyActivePath(any) error {
	path := h.store.Get().ActiveTab
	if path == "" {
		return ErrNoActiveTab
	}
	if err := h.copyText(path); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	h.logger.Info("copied path", "path", path)
	return nil
}

func toggleSidebar(s State) State {
	s.Sidebar = !s.Sidebar
	return s
}

func showGrep(s State) State {
	s.SidebarTab = SidebarGrep
	return s
}

func openSettings(s State) State {
	s.Dialog = DialogSettings
	return s
}

func removeString(items []string, target string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item != target {
			result = append(result, item)
		}
	}
	return result
}
