package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/rpsgame/internal/dependencies/clock"
	"github.com/mcoot/rpsgame/internal/factory"
	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/reveal"
	"github.com/mcoot/rpsgame/internal/services/auth"
	"github.com/mcoot/rpsgame/internal/services/match"
)

func newPlayCmd() *cobra.Command {
	var rounds int
	var mode, name string
	var fast bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match in this terminal",
		Long: `Play a best-of-N match against the computer without a server.

Type rock, paper or scissors (or r, p, s) to play a card, q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode != "" {
				preset, err := model.PresetByName(mode)
				if err != nil {
					return err
				}
				rounds = preset.TotalRounds
			}

			var logger *slog.Logger
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			app, err := factory.New(factory.Config{Logger: logger})
			if err != nil {
				return err
			}

			timing := reveal.DefaultTiming()
			if fast {
				timing = reveal.Timing{}
			}

			g := &localGame{
				matches: app.MatchController,
				auth:    app.AuthService,
				clock:   app.Clock,
				timing:  timing,
				in:      bufio.NewScanner(cmd.InOrStdin()),
				out:     cmd.OutOrStdout(),
			}
			return g.run(cmd.Context(), name, rounds)
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", model.DefaultTotalRounds, "Total rounds (best of N)")
	cmd.Flags().StringVar(&mode, "mode", "", "Preset: quick, standard or marathon")
	cmd.Flags().StringVar(&name, "name", "", "Your display name")
	cmd.Flags().BoolVar(&fast, "fast", false, "Skip the pauses between reveal steps")
	cmd.MarkFlagsMutuallyExclusive("rounds", "mode")

	return cmd
}

// localGame runs a match against an in-process controller
type localGame struct {
	matches *match.Controller
	auth    *auth.Service
	clock   clock.Clock
	timing  reveal.Timing
	in      *bufio.Scanner
	out     io.Writer
}

func (g *localGame) run(ctx context.Context, name string, rounds int) error {
	session, err := g.auth.CreateGuestPlayer(ctx, name)
	if err != nil {
		return err
	}
	playerID := session.Player.ID

	m, err := g.matches.StartMatch(ctx, playerID, rounds)
	if err != nil {
		return err
	}

	fmt.Fprintf(g.out, "Hi %s! Best of %d, first to %d wins.\n",
		session.Player.DisplayName, m.Config.TotalRounds, m.Config.MajorityThreshold())

	for {
		switch m.Phase {
		case model.PhaseIdle:
			fmt.Fprintf(g.out, "\nRound %d of %d. Your move [rock/paper/scissors, q to quit]: ",
				m.CurrentRound(), m.Config.TotalRounds)
			line, ok := g.readLine()
			if !ok || isQuit(line) {
				fmt.Fprintln(g.out, "\nBye!")
				return nil
			}

			move, err := parseMoveArg(line)
			if err != nil {
				fmt.Fprintln(g.out, err)
				continue
			}

			result, err := g.matches.SubmitMove(ctx, m.ID, playerID, move)
			if err != nil {
				return err
			}
			if err := g.showReveal(ctx, result.Round); err != nil {
				return err
			}
			fmt.Fprintf(g.out, "Score: you %d - %d computer\n",
				result.Match.Score.PlayerWins, result.Match.Score.ComputerWins)

			if m, err = g.matches.Advance(ctx, m.ID, playerID); err != nil {
				return err
			}

		case model.PhaseMatchComplete:
			fmt.Fprintf(g.out, "\n%s\nFinal score: you %d - %d computer\n",
				m.Result.Message(), m.Score.PlayerWins, m.Score.ComputerWins)
			fmt.Fprint(g.out, "Play again? [y/N]: ")
			line, ok := g.readLine()
			if !ok || !strings.HasPrefix(strings.ToLower(line), "y") {
				fmt.Fprintln(g.out, "\nThanks for playing!")
				return nil
			}
			if m, err = g.matches.ResetMatch(ctx, m.ID, playerID, nil); err != nil {
				return err
			}

		default:
			return fmt.Errorf("match %s is in unexpected phase %s", m.ID, m.Phase)
		}
	}
}

// showReveal prints the round one card at a time
func (g *localGame) showReveal(ctx context.Context, round model.Round) error {
	frames := reveal.Timeline(round, g.timing)
	return reveal.Play(ctx, g.clock, frames, func(f reveal.Frame) error {
		switch f.Step {
		case reveal.StepPlayerCard:
			fmt.Fprintf(g.out, "You played %s %s\n", f.Move.Icon(), f.Move.DisplayName())
		case reveal.StepComputerCard:
			fmt.Fprintf(g.out, "Computer played %s %s\n", f.Move.Icon(), f.Move.DisplayName())
		case reveal.StepResult:
			fmt.Fprintln(g.out, f.Message)
		}
		return nil
	})
}

func (g *localGame) readLine() (string, bool) {
	if !g.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(g.in.Text()), true
}

func isQuit(s string) bool {
	s = strings.ToLower(s)
	return s == "q" || s == "quit" || s == "exit"
}
