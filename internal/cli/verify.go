package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/scramble"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the move engine on many random cubes in parallel",
	Long: `Scramble independent cubes of each size and check, for every trial, that
colour counts are preserved, that each quarter turn applied four times is the
identity, and that the inverse sequence returns the cube to solved.

Does not touch the database.`,
	RunE: runVerify,
}

var (
	verifySizes   []int
	verifyTrials  int
	verifyMoves   int
	verifySeed    int64
	verifyWorkers int
)

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().IntSliceVar(&verifySizes, "sizes", []int{1, 2, 3, 4, 5}, "Cube sizes to check")
	verifyCmd.Flags().IntVar(&verifyTrials, "trials", 50, "Trials per size")
	verifyCmd.Flags().IntVarP(&verifyMoves, "moves", "m", 0, "Scramble length (default from config)")
	verifyCmd.Flags().Int64Var(&verifySeed, "seed", 1, "Base random seed")
	verifyCmd.Flags().IntVarP(&verifyWorkers, "workers", "w", 0, "Parallel workers (default from config)")
}

// verifyPlan describes one verification run.
type verifyPlan struct {
	Sizes   []int
	Trials  int
	Moves   int
	Seed    int64
	Workers int
}

// verifyResult counts the checks that passed.
type verifyResult struct {
	Trials int
	Moves  int
}

// errVerifyFailed marks a broken engine invariant.
var errVerifyFailed = errors.New("verification failed")

// runVerification runs every trial of plan on its own cube, at most
// plan.Workers at a time. The first failure cancels the rest.
func runVerification(ctx context.Context, plan verifyPlan) (verifyResult, error) {
	if plan.Workers < 1 {
		plan.Workers = 1
	}
	if plan.Moves < 0 {
		return verifyResult{}, fmt.Errorf("%w: --moves %d", scramble.ErrNegativeCount, plan.Moves)
	}
	if plan.Trials < 0 {
		return verifyResult{}, fmt.Errorf("verify: negative trial count %d", plan.Trials)
	}
	for _, n := range plan.Sizes {
		if n < 1 {
			return verifyResult{}, fmt.Errorf("%w: size %d", nxncube.ErrBadShape, n)
		}
	}

	type trial struct {
		size int
		seed int64
	}
	var trials []trial
	for _, n := range plan.Sizes {
		for i := 0; i < plan.Trials; i++ {
			trials = append(trials, trial{size: n, seed: plan.Seed + int64(n)*1_000_003 + int64(i)})
		}
	}

	moves := make([]int, len(trials))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(plan.Workers)

	for i, tr := range trials {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := verifyTrial(tr.size, tr.seed, plan.Moves)
			if err != nil {
				return fmt.Errorf("size %d seed %d: %w", tr.size, tr.seed, err)
			}
			moves[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return verifyResult{}, err
	}

	res := verifyResult{Trials: len(trials)}
	for _, n := range moves {
		res.Moves += n
	}
	return res, nil
}

// verifyTrial scrambles one cube and checks the engine invariants on it.
// It returns the number of moves applied.
func verifyTrial(size int, seed int64, count int) (int, error) {
	gen, err := scramble.New(size, seed)
	if err != nil {
		return 0, err
	}
	cube := nxncube.MustNew(size)
	moves, err := gen.Apply(cube, count)
	if err != nil {
		return 0, err
	}
	applied := len(moves)

	want := size * size
	for color, got := range cube.ColorCounts() {
		if got != want {
			return applied, fmt.Errorf("%w: colour %s has %d stickers, want %d",
				errVerifyFailed, nxncube.Color(color), got, want)
		}
	}

	// Every quarter turn has order four, from any state.
	for _, m := range gen.Moves(4) {
		probe := cube.Clone()
		for range 4 {
			if err := probe.ApplyMove(m); err != nil {
				return applied, err
			}
		}
		applied += 4
		if !probe.Equal(cube) {
			return applied, fmt.Errorf("%w: %s four times is not the identity", errVerifyFailed, m)
		}
	}

	inverse := nxncube.InverseSequence(moves)
	if err := cube.Apply(inverse...); err != nil {
		return applied, err
	}
	applied += len(inverse)
	if !cube.IsSolved() {
		return applied, fmt.Errorf("%w: inverse of %q did not solve the cube",
			errVerifyFailed, nxncube.FormatMoves(moves))
	}
	return applied, nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	plan := verifyPlan{
		Sizes:   verifySizes,
		Trials:  verifyTrials,
		Moves:   verifyMoves,
		Seed:    verifySeed,
		Workers: verifyWorkers,
	}
	if plan.Moves == 0 {
		plan.Moves = cfg.ScrambleMoves
	}
	if plan.Workers == 0 {
		plan.Workers = cfg.VerifyWorkers
	}

	logger.Debug("verifying",
		slog.Any("sizes", plan.Sizes),
		slog.Int("trials", plan.Trials),
		slog.Int("workers", plan.Workers),
	)

	start := time.Now()
	res, err := runVerification(cmd.Context(), plan)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d trials, %d moves in %s\n",
		solvedStyle.Render("OK"), res.Trials, res.Moves, time.Since(start).Round(time.Millisecond))
	return nil
}
