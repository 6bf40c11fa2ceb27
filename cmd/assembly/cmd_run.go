package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-leo/assembly/event"
	"github.com/go-leo/assembly/factory"
	"github.com/go-leo/assembly/product"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runConfig struct {
	product string
	lines   int
	rounds  int
}

func newRunCmd() *cobra.Command {
	cfg := runConfig{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build a factory, add lines and produce in rounds",
		Long: `Each round adds --lines production lines and then runs every line once.
The final factory report is printed as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := product.ParseKind(cfg.product)
			if err != nil {
				return err
			}
			if cfg.lines < 0 || cfg.rounds < 0 {
				return errors.New("lines and rounds must not be negative")
			}
			var report factory.Report
			switch kind {
			case product.KindCar:
				report, err = runFactory[product.Car](cmd.Context(), cmd.OutOrStdout(), cfg)
			case product.KindChocolate:
				report, err = runFactory[product.Chocolate](cmd.Context(), cmd.OutOrStdout(), cfg)
			}
			if err != nil {
				return err
			}
			data, err := report.JSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVarP(&cfg.product, "product", "p", "chocolate", "product to make: car or chocolate")
	cmd.Flags().IntVarP(&cfg.lines, "lines", "l", 1, "lines added per round")
	cmd.Flags().IntVarP(&cfg.rounds, "rounds", "r", 2, "production rounds")
	return cmd
}

// announcer writes a banner after every production batch.
type announcer struct {
	w io.Writer
}

func (a *announcer) Handle(e event.Event) error {
	finished, ok := e.Body().(event.ProductionFinished)
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(a.w, "Finished Production: %d new, %d in stock\n-------------------\n", finished.Produced, finished.Stock)
	return err
}

func runFactory[P any, PP product.Product[P]](ctx context.Context, w io.Writer, cfg runConfig) (factory.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	bus := event.NewBus(event.Logger(logger))
	if err := bus.On(event.New(event.ProductionFinished{}), &announcer{w: w}); err != nil {
		return factory.Report{}, err
	}
	f := factory.New[P, PP](factory.Name(cfg.product), factory.Logger(logger), factory.Bus(bus))
	for round := 0; round < cfg.rounds; round++ {
		for i := 0; i < cfg.lines; i++ {
			f.AddProductionLine()
		}
		for _, item := range f.Produce() {
			logger.Debug("produced", zap.String("item", fmt.Sprint(item)))
		}
	}
	if err := bus.Close(ctx); err != nil {
		return factory.Report{}, err
	}
	return f.Report(), nil
}
