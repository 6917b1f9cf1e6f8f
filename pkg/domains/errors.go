package domains

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is. Each typed error below reports
// its sentinel through an Is method.
var (
	ErrMalformedBoundingBox  = errors.New("malformed bounding box")
	ErrUnsupportedProjection = errors.New("unsupported projection")
	ErrEmptyWindow           = errors.New("empty window")
	ErrUnknownDomain         = errors.New("unknown domain")
	ErrUnknownProjection     = errors.New("unknown projection")
	ErrShapeMismatch         = errors.New("grid shape mismatch")
)

// MalformedBoundingBoxError indicates a non-finite or structurally invalid box.
type MalformedBoundingBoxError struct {
	Bounds BoundingBox
	Reason string
}

func (e *MalformedBoundingBoxError) Error() string {
	return fmt.Sprintf("malformed bounding box [%g, %g, %g, %g]: %s",
		e.Bounds.MinX, e.Bounds.MaxX, e.Bounds.MinY, e.Bounds.MaxY, e.Reason)
}

func (e *MalformedBoundingBoxError) Is(target error) bool {
	return target == ErrMalformedBoundingBox
}

// UnsupportedProjectionError indicates a projection family that breaks the
// corner-sampling assumption of ProjectBounds, or a family with no point
// transform available.
type UnsupportedProjectionError struct {
	Family Family
	Reason string
}

func (e *UnsupportedProjectionError) Error() string {
	return fmt.Sprintf("unsupported projection %s: %s", e.Family, e.Reason)
}

func (e *UnsupportedProjectionError) Is(target error) bool {
	return target == ErrUnsupportedProjection
}

// EmptyWindowError indicates a window that selects no grid cells.
type EmptyWindowError struct {
	Bounds BoundingBox
}

func (e *EmptyWindowError) Error() string {
	return fmt.Sprintf("bounding box [%g, %g, %g, %g] does not intersect the grid",
		e.Bounds.MinX, e.Bounds.MaxX, e.Bounds.MinY, e.Bounds.MaxY)
}

func (e *EmptyWindowError) Is(target error) bool {
	return target == ErrEmptyWindow
}

// UnknownDomainError indicates a domain name missing from the catalog.
type UnknownDomainError struct {
	Name string
}

func (e *UnknownDomainError) Error() string {
	return fmt.Sprintf("no domain named %q", e.Name)
}

func (e *UnknownDomainError) Is(target error) bool {
	return target == ErrUnknownDomain
}

// UnknownProjectionError indicates a projection name ParseCRS cannot build.
type UnknownProjectionError struct {
	Name string
}

func (e *UnknownProjectionError) Error() string {
	return fmt.Sprintf("no projection named %q", e.Name)
}

func (e *UnknownProjectionError) Is(target error) bool {
	return target == ErrUnknownProjection
}

// ShapeMismatchError indicates grid arrays that do not share one shape.
type ShapeMismatchError struct {
	Name       string
	Rows, Cols int
	WantRows   int
	WantCols   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s has shape (%d, %d), want (%d, %d)",
		e.Name, e.Rows, e.Cols, e.WantRows, e.WantCols)
}

func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}
