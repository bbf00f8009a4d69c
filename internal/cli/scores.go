package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/scores"
)

func newScoresCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show high scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			th := theme()

			var rows []scores.PlayerStats
			if cfg.DBPath != "" {
				st, err := openStore(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer func() {
					if err := st.Close(); err != nil {
						log.Warn().Err(err).Msg("close results store")
					}
				}()
				if rows, err = st.Top(cmd.Context(), limit); err != nil {
					return err
				}
			} else {
				var err error
				if rows, err = (scores.HighScoreFile{Path: cfg.HighScoresFile}).Ranked(limit); err != nil {
					return err
				}
			}

			if len(rows) == 0 {
				fmt.Fprintln(out, th.Muted("No scores yet."))
				return nil
			}
			fmt.Fprintln(out, th.Title(fmt.Sprintf("%-20s %5s %7s %7s", "PLAYER", "WINS", "PLAYED", "STREAK")))
			for _, r := range rows {
				fmt.Fprintf(out, "%-20s %5d %7d %7d\n", r.Player, r.Wins, r.GamesPlayed, r.Streak)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Number of players to show")
	return cmd
}
