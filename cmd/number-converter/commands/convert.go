package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"number-converter/internal/converter"
)

func convertCmd(opts *rootOptions) *cobra.Command {
	var (
		modeName string
		raw      bool
	)

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a single value and print the result",
		Example: `  number-converter convert --mode hex2dec 1A
  number-converter convert --mode dec2bin --raw 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := opts.cfg.Mode()
			if modeName != "" {
				m, err := converter.ParseMode(modeName)
				if err != nil {
					return err
				}
				mode = m
			}

			formatter := converter.NewFormatter(opts.cfg.Language())
			result, err := converter.NewService(formatter, opts.log).Convert(mode, args[0])
			if err != nil {
				var vErr *converter.ValidationError
				if errors.As(err, &vErr) {
					return errors.New(vErr.Message())
				}
				return err
			}

			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), result.Output)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Display)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "conversion mode (dec2bin, bin2dec, hex2dec, dec2hex)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print only the converted value")
	return cmd
}
