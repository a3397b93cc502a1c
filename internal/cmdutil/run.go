package cmdutil

import (
	"context"

	"herd/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor to every finished
// star, and streams the outputs via send. It returns the number of sent
// outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	stars []pipeline.Star,
	visit func(pipeline.Result) ([]T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachStar(ctx, cfg, stars, func(r pipeline.Result) error {
		outs, vErr := visit(r)
		if vErr != nil {
			return vErr
		}
		for _, out := range outs {
			if err := send(out); err != nil {
				return err
			}
			total++
		}
		return nil
	})
	return total, err
}
