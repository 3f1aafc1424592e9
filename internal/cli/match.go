package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/rpsgame/internal/model"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match commands",
	}

	cmd.AddCommand(newMatchStartCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchListCmd())
	cmd.AddCommand(newMatchMoveCmd())
	cmd.AddCommand(newMatchAdvanceCmd())
	cmd.AddCommand(newMatchResetCmd())
	cmd.AddCommand(newMatchRoundsCmd())
	cmd.AddCommand(newMatchDeleteCmd())

	return cmd
}

func matchPath(id string) string {
	return "/api/v1/matches/" + id
}

func newMatchStartCmd() *cobra.Command {
	var rounds int
	var mode string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new match",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("rounds") {
				req["total_rounds"] = rounds
			}
			if mode != "" {
				req["mode"] = mode
			}

			var result Match
			if err := client.Post("/api/v1/matches", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", model.DefaultTotalRounds, "Total rounds (best of N)")
	cmd.Flags().StringVar(&mode, "mode", "", "Preset: quick, standard or marathon")
	cmd.MarkFlagsMutuallyExclusive("rounds", "mode")

	return cmd
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match
			if err := client.Get(matchPath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchList
			if err := client.Get("/api/v1/matches", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <rock|paper|scissors>",
		Short: "Play a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			move, err := parseMoveArg(args[1])
			if err != nil {
				return err
			}

			req := map[string]string{"move": string(move)}
			var result MoveResult
			if err := client.Post(matchPath(args[0])+"/moves", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance <id>",
		Short: "Move on to the next round or the match result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match
			if err := client.Post(matchPath(args[0])+"/advance", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchResetCmd() *cobra.Command {
	var rounds int

	cmd := &cobra.Command{
		Use:   "reset <id>",
		Short: "Start the match over",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req any
			if cmd.Flags().Changed("rounds") {
				req = map[string]int{"total_rounds": rounds}
			}

			var result Match
			if err := client.Post(matchPath(args[0])+"/reset", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 0, "New total rounds (keeps the current count if unset)")

	return cmd
}

func newMatchRoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rounds <id> <n>",
		Short: "Change the round count before the first move or after the match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := model.ParseTotalRounds(args[1])
			if err != nil {
				return err
			}

			req := map[string]int{"total_rounds": n}
			var result Match
			if err := client.Patch(matchPath(args[0])+"/rounds", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(matchPath(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted match %s", args[0]))
			return nil
		},
	}
}

// parseMoveArg accepts a move name or its first letter
func parseMoveArg(s string) (model.Move, error) {
	switch s {
	case "r", "R":
		return model.MoveRock, nil
	case "p", "P":
		return model.MovePaper, nil
	case "s", "S":
		return model.MoveScissors, nil
	}
	move, err := model.ParseMove(s)
	if err != nil {
		return "", fmt.Errorf("%q is not a move: pick rock, paper or scissors", s)
	}
	return move, nil
}
