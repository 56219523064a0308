package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/scramble"
)

func TestRunVerificationPasses(t *testing.T) {
	res, err := runVerification(context.Background(), verifyPlan{
		Sizes:   []int{1, 2, 3, 4},
		Trials:  5,
		Moves:   20,
		Seed:    42,
		Workers: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, res.Trials)
	// Each trial: scramble, four order checks of four turns, inverse.
	assert.Equal(t, 20*(20+16+20), res.Moves)
}

func TestRunVerificationRejectsBadSize(t *testing.T) {
	_, err := runVerification(context.Background(), verifyPlan{Sizes: []int{3, 0}, Trials: 1, Moves: 5})
	assert.ErrorIs(t, err, nxncube.ErrBadShape)
}

func TestRunVerificationHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runVerification(ctx, verifyPlan{Sizes: []int{3}, Trials: 10, Moves: 5, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerifyTrialWithoutScramble(t *testing.T) {
	n, err := verifyTrial(5, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
}

func TestRunVerificationRejectsNegativeMoves(t *testing.T) {
	_, err := runVerification(context.Background(), verifyPlan{Sizes: []int{3}, Trials: 2, Moves: -1, Workers: 2})
	assert.ErrorIs(t, err, scramble.ErrNegativeCount)
}
