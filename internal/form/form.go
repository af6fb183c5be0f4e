// Package form holds the admin edit forms for matches, news articles and
// shop products. Each form is one state object updated field by field
// through Apply; Controller drives the tab, validate, save and reset
// lifecycle around it.
package form

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"clubhub-app/internal/assets"
)

var (
	ErrUnknownField = errors.New("unknown form field")
	ErrUnknownTab   = errors.New("unknown form tab")
	ErrNoSuchItem   = errors.New("no such item in form")
	ErrSaveFailed   = errors.New("could not save, please try again")
)

type Tab string

// Errors maps a field name to the message shown next to it.
type Errors map[string]string

func (e Errors) add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

func (e Errors) required(field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		e.add(field, msg)
	}
}

func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type ValidationError struct {
	Errors Errors
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("form has %d invalid field(s): %s", len(v.Errors), strings.Join(v.Errors.Fields(), ", "))
}

// Form is the state behind one edit screen.
type Form[E any] interface {
	Tabs() []Tab
	Fields(tab Tab) []string
	Apply(field, value string) error
	Values() map[string]string
	Validate(now time.Time) Errors
	Load(entity E)
	ResolveMedia(ctx context.Context, r assets.Resolver) error
	Build(id string) (E, error)
	Reset()
}

// Reloader is the list a form refreshes after a successful save.
type Reloader interface {
	Reload(ctx context.Context) error
}

// field binds a form field name to its tab and its backing value.
type field struct {
	tab Tab
	get func() string
	set func(string) error
}

func text(tab Tab, p *string) field {
	return field{
		tab: tab,
		get: func() string { return *p },
		set: func(v string) error { *p = v; return nil },
	}
}

func flag(tab Tab, p *bool) field {
	return field{
		tab: tab,
		get: func() string { return formatBool(*p) },
		set: func(v string) error {
			b, err := parseBool(v)
			if err != nil {
				return err
			}
			*p = b
			return nil
		},
	}
}

func applyField(fields map[string]field, name, value string) error {
	f, ok := fields[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if err := f.set(value); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func fieldValues(fields map[string]field) map[string]string {
	out := make(map[string]string, len(fields))
	for name, f := range fields {
		out[name] = f.get()
	}
	return out
}

func fieldsOn(fields map[string]field, tab Tab) []string {
	var out []string
	for name, f := range fields {
		if f.tab == tab {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
