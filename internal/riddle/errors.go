package riddle

import (
	"fmt"

	"github.com/ratioSolver/riddle/internal/errors"
)

// DuplicateNameError is raised when a field, type, or predicate is
// added under a name already occupied in its scope. Method overloads
// and constructors are not checked for duplicates.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string { return fmt.Sprintf("duplicate name %q", e.Name) }
func (e *DuplicateNameError) Kind() errors.Kind { return errors.DuplicateName }

// UnresolvedNameError is raised when a qualified name does not resolve
// to a type, predicate, field, or method.
type UnresolvedNameError struct {
	Name string
}

func (e *UnresolvedNameError) Error() string { return fmt.Sprintf("unresolved name %q", e.Name) }
func (e *UnresolvedNameError) Kind() errors.Kind { return errors.UnresolvedName }

// TypeMismatchError is raised when a parameter or assignment violates
// assignability.
type TypeMismatchError struct {
	Message string
}

func (e *TypeMismatchError) Error() string { return e.Message }
func (e *TypeMismatchError) Kind() errors.Kind { return errors.TypeMismatch }

// InconsistencyError is raised when no instances are available to bind
// a non-primitive field.
type InconsistencyError struct {
	TypeName string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("no instances of %q available to bind field", e.TypeName)
}
func (e *InconsistencyError) Kind() errors.Kind { return errors.Inconsistency }

// IoError wraps a failure to read a source file during multi-file
// ingestion.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string  { return fmt.Sprintf("reading %s: %v", e.Path, e.Err) }
func (e *IoError) Unwrap() error  { return e.Err }
func (e *IoError) Kind() errors.Kind { return errors.IoError }

// NotImplementedError marks a stub path that should never fire in a
// complete build. It exists so the elaborator can fail loudly instead
// of panicking when it reaches code intentionally left unfinished.
type NotImplementedError struct {
	What string
}

func (e *NotImplementedError) Error() string    { return fmt.Sprintf("not implemented: %s", e.What) }
func (e *NotImplementedError) Kind() errors.Kind { return errors.NotImplemented }

// UnsolvableError is reserved for the solver backend; the frontend
// never constructs one. It is declared here only so Factory
// implementations have a standard sentinel type to return.
type UnsolvableError struct {
	Reason string
}

func (e *UnsolvableError) Error() string { return fmt.Sprintf("unsolvable: %s", e.Reason) }
