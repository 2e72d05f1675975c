package main

import (
	"github.com/spf13/cobra"

	"primering/internal/diary"
	"primering/internal/event"
)

func newEventsCmd(opts *options) *cobra.Command {
	var from, to, categoryID string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events, optionally within a date window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			input := event.ListInput{CategoryID: categoryID}
			if input.From, input.To, err = s.window(from, to); err != nil {
				return err
			}

			out, err := s.app.Events.List(cmd.Context(), s.scope, input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out.Events)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id")
	return cmd
}

func newDiariesCmd(opts *options) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "diaries",
		Short: "List diary entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			var input diary.ListInput
			if input.From, input.To, err = s.window(from, to); err != nil {
				return err
			}

			out, err := s.app.Diaries.List(cmd.Context(), s.scope, input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out.Diaries)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day, inclusive (YYYY-MM-DD)")
	return cmd
}
