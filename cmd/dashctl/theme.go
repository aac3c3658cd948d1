package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/theme"
)

func newThemeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the stored light/dark preference",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective theme",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				mode, err := opts.currentTheme(cmd)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), mode)
				return err
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Flip between light and dark and store the result",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				mode, err := opts.currentTheme(cmd)
				if err != nil {
					return err
				}
				return opts.saveTheme(cmd, theme.Toggle(mode))
			},
		},
		&cobra.Command{
			Use:       "set {light|dark}",
			Short:     "Store a theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(theme.Light), string(theme.Dark)},
			RunE: func(cmd *cobra.Command, args []string) error {
				mode, ok := theme.Parse(args[0])
				if !ok {
					return fmt.Errorf("invalid theme %q: want light or dark", args[0])
				}
				return opts.saveTheme(cmd, mode)
			},
		},
	)
	return cmd
}

func (o *options) currentTheme(cmd *cobra.Command) (theme.Mode, error) {
	fs, err := o.themeStore()
	if err != nil {
		return "", err
	}
	return fs.Resolve(newPrinter(cmd.OutOrStdout(), theme.Light).renderer.HasDarkBackground())
}

func (o *options) saveTheme(cmd *cobra.Command, mode theme.Mode) error {
	fs, err := o.themeStore()
	if err != nil {
		return err
	}
	if err := fs.Save(mode); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), mode)
	return err
}
