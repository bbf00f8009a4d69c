package cli

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/scores"
	"github.com/robalobadob/hangman/internal/words"
)

func newPlayCmd() *cobra.Command {
	var tierName string
	var name string
	var seed int64
	var isDaily bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play Hangman in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var tier words.Tier
			if tierName != "" {
				t, err := words.ParseTier(tierName)
				if err != nil {
					return err
				}
				tier = t
			}

			if isDaily && seed != 0 {
				return errors.New("--daily and --seed cannot be combined")
			}

			now := time.Now()
			var opts []game.Option
			switch {
			case isDaily:
				opts = append(opts, game.WithPicker(daily.Picker(now, cfg.DailySalt)))
			case seed != 0:
				opts = append(opts, game.WithSeed(seed))
			}

			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := st.Close(); err != nil {
					log.Warn().Err(err).Msg("close results store")
				}
			}()

			if name == "" {
				name = cfg.PlayerName
			}
			s := &Session{
				Engine:     game.New(newSource(cfg), opts...),
				Store:      st,
				HighScores: &scores.HighScoreFile{Path: cfg.HighScoresFile},
				Theme:      theme(),
				Log:        log.Logger,
				In:         os.Stdin,
				Out:        cmd.OutOrStdout(),
				Player:     name,
				Tier:       tier,
				Now:        func() time.Time { return now },
			}
			if isDaily {
				s.Daily = daily.DateKey(now)
			}
			return s.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&tierName, "tier", "t", "", "Difficulty (easy|medium|hard); asked each round when empty")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Player name (default $PLAYER_NAME, else asked)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for word selection (0 = random; not allowed with --daily)")
	cmd.Flags().BoolVar(&isDaily, "daily", false, "Play today's word (one round)")
	return cmd
}
