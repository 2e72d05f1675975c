package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"primering/internal/analysis"
)

type analysisView struct {
	Summary  string   `json:"summary"`
	Flow     []string `json:"flow"`
	Tips     string   `json:"tips"`
	Parsed   bool     `json:"parsed"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
}

func newAnalyzeCmd(opts *options) *cobra.Command {
	var diaryID, date string

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Summarize a diary entry with the configured language model",
		Example: `  $ primering analyze --diary 4f1c...
  $ primering analyze --date 2024-05-01 "오늘은 발표를 마쳤다"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args, " ")
			if diaryID == "" && strings.TrimSpace(content) == "" {
				return errors.New("pass diary text or --diary <id>")
			}

			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			day, err := s.day(date)
			if err != nil {
				return err
			}

			out, err := s.app.Analysis.Analyze(cmd.Context(), s.scope, analysis.AnalyzeInput{
				DiaryID: diaryID,
				Content: content,
				Date:    day,
			})
			if err != nil {
				return err
			}

			flow := out.Result.Flow
			if flow == nil {
				flow = []string{}
			}
			return printJSON(cmd.OutOrStdout(), analysisView{
				Summary:  out.Result.Summary,
				Flow:     flow,
				Tips:     out.Result.Tips,
				Parsed:   out.Parsed,
				Provider: out.Provider,
				Model:    out.Model,
			})
		},
	}
	cmd.Flags().StringVar(&diaryID, "diary", "", "analyze a stored diary entry by id")
	cmd.Flags().StringVar(&date, "date", "", "entry date for free text (YYYY-MM-DD), default: today")
	return cmd
}
