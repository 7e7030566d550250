package hako

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/rotisserie/eris"
)

var (
	// ErrComponentNotFound is returned when no table exists for a component
	// type, i.e. no value of that type was ever stored in the registry.
	ErrComponentNotFound = errors.New("component not found")
	// ErrEntityNotFound is returned when an entity is not live, or has no row
	// for the component type in question.
	ErrEntityNotFound = errors.New("entity not found")
)

// ComponentNotFoundError carries the component type that has no table.
type ComponentNotFoundError struct {
	Type reflect.Type
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component %q not found", typeName(e.Type))
}

func (e *ComponentNotFoundError) Unwrap() error {
	return ErrComponentNotFound
}

// EntityNotFoundError carries the entity that is unknown or lacks a row.
type EntityNotFoundError struct {
	Entity Entity
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *EntityNotFoundError) Unwrap() error {
	return ErrEntityNotFound
}

func componentNotFound(t reflect.Type) error {
	return eris.Wrap(&ComponentNotFoundError{Type: t}, "")
}

func entityNotFound(e Entity) error {
	return eris.Wrap(&EntityNotFoundError{Entity: e}, "")
}

// aliasViolation is the panic value for overlapping access to a row held by
// BorrowMut.
func aliasViolation(t reflect.Type, e Entity) string {
	return fmt.Sprintf("hako: component %s of %s is already mutably borrowed", typeName(t), e)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
