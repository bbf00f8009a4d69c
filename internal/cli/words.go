package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/words"
)

func newWordsCmd() *cobra.Command {
	var tierName string

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show the candidate words for a difficulty, or counts per difficulty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := newSource(cfg)
			out := cmd.OutOrStdout()

			if tierName == "" {
				stats, err := src.Stats()
				if err != nil {
					return err
				}
				p := src.Policy()
				for _, t := range words.Tiers {
					b := p[t]
					fmt.Fprintf(out, "%-7s %2d-%-2d letters  %d words\n", t, b.Min, b.Max, stats[t])
				}
				return nil
			}

			tier, err := words.ParseTier(tierName)
			if err != nil {
				return err
			}
			cands, err := src.Candidates(tier)
			if err != nil {
				return err
			}
			for _, w := range cands {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tierName, "tier", "t", "", "Difficulty (easy|medium|hard)")
	return cmd
}
