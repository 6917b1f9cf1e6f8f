package domains

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// WindowedFields holds several fields cut to one window of a shared grid.
type WindowedFields struct {
	Values []*mat.Dense // In the order the fields were given
	X, Y   *mat.Dense
}

// WindowFields crops every field in fields, all defined on the (x, y) grid,
// to bounds. The window is planned once and applied to the fields
// concurrently using up to cfg.Workers goroutines.
//
// This is how the u and v components of a vector field, or the members of
// an ensemble, are cut consistently.
//
// Example:
//
//	out, err := domains.WindowFields(ctx, []*mat.Dense{u, v}, lons, lats,
//	    &box, domains.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	u, v = out.Values[0], out.Values[1]
func WindowFields(ctx context.Context, fields []*mat.Dense, x, y *mat.Dense, bounds *BoundingBox, cfg Config) (*WindowedFields, error) {
	plan, err := PlanWindow(x, y, bounds, cfg)
	if err != nil {
		return nil, err
	}
	out := &WindowedFields{
		Values: make([]*mat.Dense, len(fields)),
		X:      plan.X(),
		Y:      plan.Y(),
	}
	if len(fields) == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for i, field := range fields {
		i, field := i, field
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := plan.Apply(field)
			if err != nil {
				return fmt.Errorf("field %d: %w", i, err)
			}
			out.Values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
