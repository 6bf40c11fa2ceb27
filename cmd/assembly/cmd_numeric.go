package main

import (
	"fmt"
	"strconv"

	"github.com/go-leo/assembly/numeric"
	"github.com/spf13/cobra"
)

func newEvenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "even <number>",
		Short: "Round a number toward zero to an even number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := numeric.ToEven(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
}

func newDivideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divide <x> <y>",
		Short: "Integer division that refuses a zero divisor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("x: %w", numeric.ErrNotANumber)
			}
			y, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("y: %w", numeric.ErrNotANumber)
			}
			q, err := numeric.Divide(x, y)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), q)
			return err
		},
	}
}
