// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package value

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cmflannery/units/unit"
)

// ConvertAll converts values to system concurrently, keeping their order.
// The registry is the only shared state and it is read-only.
func ConvertAll(ctx context.Context, values []Value, system unit.System) ([]Value, error) {
	converted := make([]Value, len(values))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			converted[i] = v.To(system)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return converted, nil
}
