package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/notation"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print the active session's move log",
	Long: `Print the moves applied to the active cube since it was created, reset,
scrambled or restored.

With --simplify, turns of the same layer are folded together first.
With --describe, each move is printed on its own line in words.`,
	RunE: runLog,
}

var (
	logSimplify bool
	logDescribe bool
)

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().BoolVarP(&logSimplify, "simplify", "s", false, "Fold redundant turns")
	logCmd.Flags().BoolVarP(&logDescribe, "describe", "d", false, "Describe each move in words")
}

func runLog(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sess, _, err := s.active()
	if err != nil {
		return err
	}
	moves, err := s.moves.Moves(sess.SessionID)
	if err != nil {
		return err
	}

	if logSimplify {
		moves = notation.Simplify(moves)
	}
	if len(moves) == 0 {
		fmt.Println("No moves.")
		return nil
	}

	if !logDescribe {
		fmt.Println(moveStyle.Render(nxncube.FormatMoves(moves)))
		return nil
	}
	for i, m := range moves {
		fmt.Printf("%4d  %-5s %s\n", i+1, moveStyle.Render(m.Notation()), notation.Describe(m, sess.Size))
	}
	return nil
}
