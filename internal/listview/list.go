// Package listview implements the generic admin list: fetch, optional
// client-side filter, delete-then-reload, per-row fields and extra actions.
package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"clubhub-app/internal/model"
)

var (
	ErrNoDelete      = errors.New("list has no delete function")
	ErrUnknownRow    = errors.New("unknown row")
	ErrUnknownAction = errors.New("unknown action")
)

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Action[T any] struct {
	Name    string
	Icon    string
	Color   string
	Tooltip string
	Run     func(ctx context.Context, item T) error
}

type ActionView struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	Tooltip string `json:"tooltip"`
}

type Row struct {
	ID      string       `json:"id"`
	Fields  []Field      `json:"fields"`
	Actions []ActionView `json:"actions"`
}

type Config[T any] struct {
	ID           func(T) string
	Fetch        func(ctx context.Context) ([]T, error)
	Delete       func(ctx context.Context, id string) (model.Result, error)
	Filter       func([]T) []T
	OnEdit       func(T)
	Fields       func(T) []Field
	ExtraActions []Action[T]
}

// List owns the fetched items. Every Reload is a full re-fetch.
type List[T any] struct {
	cfg   Config[T]
	mu    sync.RWMutex
	items []T
}

func New[T any](cfg Config[T]) *List[T] {
	return &List[T]{cfg: cfg}
}

// Reload fetches, filters and replaces the items. On error the previous
// items stay in place.
func (l *List[T]) Reload(ctx context.Context) error {
	items, err := l.cfg.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if l.cfg.Filter != nil {
		items = l.cfg.Filter(items)
	}
	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
	return nil
}

// Delete removes one item through the delete function, then reloads.
func (l *List[T]) Delete(ctx context.Context, id string) (model.Result, error) {
	if l.cfg.Delete == nil {
		return model.Result{}, ErrNoDelete
	}
	res, err := l.cfg.Delete(ctx, id)
	if err != nil {
		return res, err
	}
	if !res.Success {
		return res, fmt.Errorf("delete %s: %s", id, res.Message)
	}
	return res, l.Reload(ctx)
}

func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List[T]) Find(id string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, item := range l.items {
		if l.cfg.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Edit hands the item with the given id to OnEdit.
func (l *List[T]) Edit(id string) error {
	item, ok := l.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRow, id)
	}
	if l.cfg.OnEdit != nil {
		l.cfg.OnEdit(item)
	}
	return nil
}

func (l *List[T]) RunAction(ctx context.Context, name, id string) error {
	item, ok := l.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRow, id)
	}
	for _, a := range l.cfg.ExtraActions {
		if a.Name == name {
			return a.Run(ctx, item)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

func (l *List[T]) Rows() []Row {
	items := l.Items()
	actions := make([]ActionView, 0, len(l.cfg.ExtraActions))
	for _, a := range l.cfg.ExtraActions {
		actions = append(actions, ActionView{Name: a.Name, Icon: a.Icon, Color: a.Color, Tooltip: a.Tooltip})
	}
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		row := Row{ID: l.cfg.ID(item), Actions: actions}
		if l.cfg.Fields != nil {
			row.Fields = l.cfg.Fields(item)
		}
		rows = append(rows, row)
	}
	return rows
}
