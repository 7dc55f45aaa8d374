package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/noted-input/noted-analyze/internal/app"
	"github.com/noted-input/noted-analyze/internal/app/appcontext"
)

func Start(opts ...fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), opts...).Start(context.Background())
}

// DepsFn returns a lazy constructor for the fx.In struct T. The graph is only
// built once a command actually runs, so that `--help` and argument errors
// never touch configuration or logging.
func DepsFn[T any](opts ...fx.Option) func() (T, error) {
	return func() (T, error) {
		var deps T
		all := make([]fx.Option, 0, len(opts)+1)
		all = append(all, opts...)
		err := Start(append(all, fx.Populate(&deps))...)
		return deps, err
	}
}
