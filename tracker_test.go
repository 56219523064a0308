package nxncube

import (
	"errors"
	"testing"
)

func TestTrackerReset(t *testing.T) {
	tr, err := NewTracker(3)
	if err != nil {
		t.Fatal(err)
	}
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	if err := tr.ApplyMove(Move{Column, 2, CW}); err != nil {
		t.Fatal(err)
	}
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.IsSolved() || tr.MoveCount() != 0 || len(tr.Moves()) != 0 {
		t.Error("Tracker should be solved with no history after reset")
	}
}

func TestTrackerSolvedCallback(t *testing.T) {
	var fired []int
	tr, err := NewTracker(3, WithSolvedCallback(func(moves int) {
		fired = append(fired, moves)
	}))
	if err != nil {
		t.Fatal(err)
	}

	if err := tr.ApplyNotation("R U F"); err != nil {
		t.Fatal(err)
	}
	if len(fired) != 0 {
		t.Errorf("callback fired while scrambled: %v", fired)
	}

	if err := tr.ApplyNotation("F' U' R'"); err != nil {
		t.Fatal(err)
	}
	if len(fired) != 1 || fired[0] != 6 {
		t.Errorf("callback calls = %v, want [6]", fired)
	}
}

func TestTrackerSolvedCallbackNeedsTransition(t *testing.T) {
	var fired []int
	tr, err := NewTracker(1, WithSolvedCallback(func(moves int) {
		fired = append(fired, moves)
	}))
	if err != nil {
		t.Fatal(err)
	}

	// Every face of a 1×1×1 cube is a single sticker, so it stays solved.
	if err := tr.ApplyNotation("H0 V0 S0'"); err != nil {
		t.Fatal(err)
	}
	if !tr.IsSolved() {
		t.Fatal("a 1×1×1 cube is always solved")
	}
	if len(fired) != 0 {
		t.Errorf("callback should only fire on a transition, got %v", fired)
	}
}

func TestTrackerUndo(t *testing.T) {
	tr, err := NewTracker(4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo on empty history error = %v, want ErrNothingToUndo", err)
	}

	if err := tr.ApplyNotation("H1 V2' S3"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := tr.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	if !tr.IsSolved() || tr.MoveCount() != 0 {
		t.Error("undoing every move should restore the solved cube")
		t.Log(tr.CubeString())
	}
}

func TestTrackerRejectedMoveNotRecorded(t *testing.T) {
	tr, err := NewTracker(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.ApplyMove(Move{Row, 2, CW}); !errors.Is(err, ErrLayerOutOfRange) {
		t.Fatalf("error = %v, want ErrLayerOutOfRange", err)
	}
	if tr.MoveCount() != 0 || len(tr.Moves()) != 0 {
		t.Error("a rejected move must not be counted")
	}
}

func TestTrackerWithoutHistory(t *testing.T) {
	tr, err := NewTracker(3, WithMoveHistory(false))
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.ApplyNotation("R U"); err != nil {
		t.Fatal(err)
	}
	if tr.MoveCount() != 2 {
		t.Errorf("MoveCount() = %d, want 2", tr.MoveCount())
	}
	if len(tr.Moves()) != 0 {
		t.Error("history should be empty when disabled")
	}
	if _, err := tr.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo without history error = %v, want ErrNothingToUndo", err)
	}
}

func TestTrackCubeStartsFromGivenState(t *testing.T) {
	c, moves := scrambled(t, 3, 15, 11)
	var solvedAt int
	tr := TrackCube(c, WithSolvedCallback(func(n int) { solvedAt = n }))
	if err := tr.ApplyMoves(InverseSequence(moves)); err != nil {
		t.Fatal(err)
	}
	if !tr.IsSolved() {
		t.Fatal("inverse sequence should solve the tracked cube")
	}
	if solvedAt == 0 {
		t.Error("callback should fire when the tracked cube becomes solved")
	}
}

func TestResumeUndoesEarlierMoves(t *testing.T) {
	c, moves := scrambled(t, 4, 6, 3)
	tr := Resume(c, moves)
	if tr.MoveCount() != len(moves) {
		t.Fatalf("MoveCount() = %d, want %d", tr.MoveCount(), len(moves))
	}
	for range moves {
		if _, err := tr.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	if !tr.IsSolved() {
		t.Error("undoing the resumed history should return to solved")
	}
	if _, err := tr.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo past the history error = %v, want ErrNothingToUndo", err)
	}
}
