package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/scramble"
)

var moveCmd = &cobra.Command{
	Use:   "move <notation>...",
	Short: "Apply moves to the active cube",
	Long: `Apply a move sequence to the active cube. All tokens are parsed before any
move is applied, so a typo leaves the cube untouched.

Examples:
  nxncube move H0 V2' S1
  nxncube move "R U R' U'"
  nxncube move F2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMove,
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the last move of the active cube",
	RunE:  runUndo,
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Reset the active cube and apply a random scramble",
	RunE:  runScramble,
}

var (
	scrambleCount int
	scrambleSeed  int64
)

func init() {
	rootCmd.AddCommand(moveCmd, undoCmd, scrambleCmd)

	scrambleCmd.Flags().IntVarP(&scrambleCount, "moves", "m", 0, "Number of moves (default from config)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (default: current time)")
}

func runMove(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sess, cube, err := s.active()
	if err != nil {
		return err
	}

	moves, err := nxncube.ParseMoves(strings.Join(args, " "), cube.Size())
	if err != nil {
		return err
	}
	if err := cube.Apply(moves...); err != nil {
		return err
	}
	if err := s.sessions.Commit(sess.SessionID, cube, moves); err != nil {
		return err
	}

	logger.Debug("applied moves",
		slog.String("session_id", sess.SessionID),
		slog.Int("count", len(moves)),
		slog.String("cube", cube.Debug()),
	)
	fmt.Printf("%s  %s\n", moveStyle.Render(nxncube.FormatMoves(moves)), solvedLabel(cube.IsSolved()))
	return nil
}

func runUndo(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sess, tr, err := s.activeTracker()
	if err != nil {
		return err
	}

	last, err := tr.Undo()
	if err != nil {
		return err
	}
	if err := s.sessions.PopMove(sess.SessionID, tr.Cube()); err != nil {
		return err
	}
	fmt.Printf("Undid %s  %s\n", moveStyle.Render(last.Notation()), solvedLabel(tr.IsSolved()))
	return nil
}

func runScramble(cmd *cobra.Command, args []string) error {
	count := scrambleCount
	if count < 0 {
		return fmt.Errorf("%w: --moves %d", scramble.ErrNegativeCount, count)
	}
	if count == 0 {
		count = cfg.ScrambleMoves
	}
	seed := scrambleSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sess, cube, err := s.active()
	if err != nil {
		return err
	}

	gen, err := scramble.New(cube.Size(), seed)
	if err != nil {
		return err
	}
	cube.Reset()
	moves, err := gen.Apply(cube, count)
	if err != nil {
		return err
	}

	text := nxncube.FormatMoves(moves)
	if err := s.sessions.Replace(sess.SessionID, cube, text); err != nil {
		return err
	}

	logger.Debug("scrambled", slog.String("session_id", sess.SessionID), slog.Int64("seed", seed))
	fmt.Println(moveStyle.Render(text))
	return nil
}
