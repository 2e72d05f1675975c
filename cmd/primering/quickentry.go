package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"primering/internal/quickentry"
)

type draftView struct {
	Title      string    `json:"title"`
	Date       time.Time `json:"date"`
	CategoryID string    `json:"categoryId"`
}

func newParseCmd(opts *options) *cobra.Command {
	var now string

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Preview the event a quick entry would create",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseNow(now)
			if err != nil {
				return err
			}
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			out, err := s.app.QuickEntry.Preview(cmd.Context(), s.scope, quickentry.PreviewInput{
				Input: strings.Join(args, " "),
				Now:   ref,
			})
			if err != nil {
				return err
			}
			if !out.Found {
				fmt.Fprintln(cmd.OutOrStdout(), "날짜를 찾지 못했습니다 (no date found)")
				return nil
			}
			return printJSON(cmd.OutOrStdout(), draftView{
				Title:      out.Draft.Title,
				Date:       out.Draft.Date,
				CategoryID: out.Draft.CategoryID,
			})
		},
	}
	cmd.Flags().StringVar(&now, "now", "", "reference time (RFC3339), default: current time")
	return cmd
}

func newAddCmd(opts *options) *cobra.Command {
	var now string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Create a one-hour event from quick-entry text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseNow(now)
			if err != nil {
				return err
			}
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			out, err := s.app.QuickEntry.Commit(cmd.Context(), s.scope, quickentry.CommitInput{
				Input: strings.Join(args, " "),
				Now:   ref,
			})
			if errors.Is(err, quickentry.ErrNoDateFound) {
				return fmt.Errorf("날짜를 찾지 못했습니다 (no date found)")
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out.Event)
		},
	}
	cmd.Flags().StringVar(&now, "now", "", "reference time (RFC3339), default: current time")
	return cmd
}
