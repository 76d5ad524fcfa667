package runs

import (
	"context"

	"github.com/reusee/bfvm/bfconfigs"
	"golang.org/x/sync/errgroup"
)

// RunAll runs specs concurrently. Reports keep the order of specs;
// the first error cancels the runs not yet finished.
type RunAll func(ctx context.Context, specs []Spec) ([]*Report, error)

func (Module) RunAll(
	run Run,
	parallel bfconfigs.Parallel,
) RunAll {
	return func(ctx context.Context, specs []Spec) ([]*Report, error) {
		reports := make([]*Report, len(specs))
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(int(parallel))
		for i, spec := range specs {
			g.Go(func() error {
				report, err := run(ctx, spec)
				reports[i] = report
				return err
			})
		}
		err := g.Wait()
		return reports, err
	}
}
