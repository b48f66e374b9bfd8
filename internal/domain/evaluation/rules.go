package evaluation

import (
	"fmt"
	"strings"
)

// FieldError is a field-addressed validation message. Validation errors are
// recovered locally: the stage refuses to advance and the message is surfaced
// next to the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldWrite is a single user edit to a stage draft. Exactly one of the value
// members must be set; which one is dictated by the field's kind.
type FieldWrite struct {
	Field string   `json:"field"`
	Bool  *bool    `json:"bool,omitempty"`
	Text  *string  `json:"text,omitempty"`
	Int   *int     `json:"int,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// Each stage declares its fields and rules as data; a single enforcement
// routine applies mutual exclusions and conditional-reveal resets on every
// write, so no switch handler can forget to clear a dependent of another
// switch.

type boolField[T any] struct {
	name string
	get  func(*T) bool
	set  func(*T, bool)
}

type textField[T any] struct {
	name string
	set  func(*T, string)
}

// selectField is a single choice from a closed vocabulary; the empty string
// clears the selection.
type selectField[T any] struct {
	name  string
	vocab []string
	set   func(*T, string)
}

// tagField is a multi-selection from a closed vocabulary.
type tagField[T any] struct {
	name  string
	vocab []string
	set   func(*T, []string)
}

type intField[T any] struct {
	name    string
	allowed []int
	set     func(*T, int)
}

// exclusion names a set of boolean fields of which at most one may be true.
type exclusion struct {
	members []string
}

// reveal ties a parent boolean to a reset of its dependent sub-fields. The
// reset runs whenever the parent transitions to false, including implicitly
// through an exclusion.
type reveal[T any] struct {
	parent string
	clear  func(*T)
}

// check is a required-when predicate with its human-readable message.
type check[T any] struct {
	field   string
	message string
	when    func(*T) bool
	met     func(*T) bool
}

type stageDef[T any] struct {
	bools   []boolField[T]
	texts   []textField[T]
	selects []selectField[T]
	tags    []tagField[T]
	ints    []intField[T]

	exclusions []exclusion
	reveals    []reveal[T]
	checks     []check[T]

	// after runs once per boolean write, after exclusions and reveal resets.
	// Escape hatch for cross-cutting clears that have no single parent field.
	after func(*T, string, bool)
}

func (d *stageDef[T]) boolByName(name string) *boolField[T] {
	for i := range d.bools {
		if d.bools[i].name == name {
			return &d.bools[i]
		}
	}
	return nil
}

// collapse resets the dependents of a parent that is no longer true.
func (d *stageDef[T]) collapse(s *T, parent string) {
	for _, r := range d.reveals {
		if r.parent == parent {
			r.clear(s)
		}
	}
}

func (d *stageDef[T]) setBool(s *T, name string, v bool) error {
	f := d.boolByName(name)
	if f == nil {
		return FieldError{Field: name, Message: "campo desconocido"}
	}
	if v {
		// Exclusion side-effects first, then the reveal resets of the
		// members they cleared.
		for _, ex := range d.exclusions {
			if !containsField(ex.members, name) {
				continue
			}
			for _, m := range ex.members {
				if m == name {
					continue
				}
				if other := d.boolByName(m); other != nil && other.get(s) {
					other.set(s, false)
					d.collapse(s, m)
				}
			}
		}
	}
	f.set(s, v)
	if !v {
		d.collapse(s, name)
	}
	if d.after != nil {
		d.after(s, name, v)
	}
	return nil
}

// apply routes one field write to its declared field, enforcing vocabulary
// membership and exclusion/reveal rules.
func (d *stageDef[T]) apply(s *T, w FieldWrite) error {
	switch {
	case w.Bool != nil:
		return d.setBool(s, w.Field, *w.Bool)
	case w.Int != nil:
		for _, f := range d.ints {
			if f.name != w.Field {
				continue
			}
			if *w.Int != 0 && len(f.allowed) > 0 && !intAllowed(f.allowed, *w.Int) {
				return FieldError{Field: w.Field, Message: "valor fuera del vocabulario"}
			}
			f.set(s, *w.Int)
			return nil
		}
		return FieldError{Field: w.Field, Message: "campo desconocido"}
	case w.Tags != nil:
		for _, f := range d.tags {
			if f.name != w.Field {
				continue
			}
			for _, t := range w.Tags {
				if !vocabContains(f.vocab, t) {
					return FieldError{Field: w.Field, Message: fmt.Sprintf("opción desconocida: %s", t)}
				}
			}
			f.set(s, cloneStrings(w.Tags))
			return nil
		}
		return FieldError{Field: w.Field, Message: "campo desconocido"}
	case w.Text != nil:
		for _, f := range d.selects {
			if f.name != w.Field {
				continue
			}
			if *w.Text != "" && !vocabContains(f.vocab, *w.Text) {
				return FieldError{Field: w.Field, Message: "opción fuera del vocabulario"}
			}
			f.set(s, *w.Text)
			return nil
		}
		for _, f := range d.texts {
			if f.name != w.Field {
				continue
			}
			f.set(s, *w.Text)
			return nil
		}
		return FieldError{Field: w.Field, Message: "campo desconocido"}
	}
	return FieldError{Field: w.Field, Message: "escritura sin valor"}
}

func (d *stageDef[T]) validate(s *T) []FieldError {
	var errs []FieldError
	for _, c := range d.checks {
		if c.when != nil && !c.when(s) {
			continue
		}
		if !c.met(s) {
			errs = append(errs, FieldError{Field: c.field, Message: c.message})
		}
	}
	return errs
}

func containsField(members []string, name string) bool {
	for _, m := range members {
		if m == name {
			return true
		}
	}
	return false
}

func intAllowed(allowed []int, v int) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

func notBlank(s string) bool { return strings.TrimSpace(s) != "" }
