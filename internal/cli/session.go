package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a solved cube and make it the active session",
	RunE:  runNew,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sessions, most recent first",
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show a session's cube state",
	Long: `Print the encoded state and the rows of every face. Without an argument
the active session is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var useCmd = &cobra.Command{
	Use:   "use <session-id>",
	Short: "Make a stored session the active one",
	Args:  cobra.ExactArgs(1),
	RunE:  runUse,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session with its moves and snapshots",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return the active cube to the solved state",
	RunE:  runReset,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [name]",
	Short: "Save the active cube under a name, or list snapshots",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSnapshot,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Restore the active cube from a named snapshot",
	Long: `Replace the active cube with a snapshot. The move log is cleared because it
no longer leads to the restored state.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

var (
	newSize   int
	newNotes  string
	listLimit int
)

func init() {
	rootCmd.AddCommand(newCmd, listCmd, showCmd, useCmd, deleteCmd, resetCmd, snapshotCmd, restoreCmd)

	newCmd.Flags().IntVarP(&newSize, "size", "n", 0, "Cube size (default from config)")
	newCmd.Flags().StringVar(&newNotes, "notes", "", "Free-form notes")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum sessions to list")
}

func runNew(cmd *cobra.Command, args []string) error {
	size := newSize
	if size == 0 {
		size = cfg.DefaultSize
	}
	cube, err := nxncube.New(size)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.sessions.Create(cube, "", newNotes)
	if err != nil {
		return err
	}
	if err := s.state.SetActiveSession(id); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	logger.Info("session created", slog.String("session_id", id), slog.Int("size", size))
	fmt.Printf("%s %s (%d×%d×%d)\n", titleStyle.Render("New session"), id, size, size, size)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sessions, err := s.sessions.List(listLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions.")
		return nil
	}

	active := s.state.ActiveSessionID()
	fmt.Printf("%-2s %-8s  %-4s  %-5s  %-8s  %s\n", "", "ID", "N", "MOVES", "STATE", "UPDATED")
	for _, sess := range sessions {
		count, err := s.moves.Count(sess.SessionID)
		if err != nil {
			return err
		}
		cube, err := sess.Cube()
		if err != nil {
			return err
		}
		marker := ""
		if sess.SessionID == active {
			marker = "*"
		}
		fmt.Printf("%-2s %-8s  %-4d  %-5d  %-8s  %s\n",
			marker, shortID(sess.SessionID), sess.Size, count,
			solvedLabel(cube.IsSolved()), sess.UpdatedAt.Local().Format(time.DateTime))
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	id := s.state.ActiveSessionID()
	if len(args) == 1 {
		id = args[0]
	}
	if id == "" {
		return errNoActiveSession
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		return err
	}
	cube, err := sess.Cube()
	if err != nil {
		return err
	}
	count, err := s.moves.Count(id)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Session " + sess.SessionID))
	fmt.Printf("Size:    %d\n", sess.Size)
	fmt.Printf("Moves:   %d\n", count)
	fmt.Printf("Status:  %s\n", solvedLabel(cube.IsSolved()))
	if sess.ScrambleText != nil {
		fmt.Printf("Scramble: %s\n", moveStyle.Render(*sess.ScrambleText))
	}
	if sess.Notes != nil {
		fmt.Printf("Notes:   %s\n", *sess.Notes)
	}
	fmt.Printf("State:   %s\n\n", cube.Encode())
	fmt.Print(renderCube(cube))
	return nil
}

func runUse(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sess, err := s.sessions.Get(args[0])
	if err != nil {
		return err
	}
	if err := s.state.SetActiveSession(sess.SessionID); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	fmt.Printf("Active session: %s\n", sess.SessionID)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.sessions.Delete(args[0]); err != nil {
		return err
	}
	if s.state.ActiveSessionID() == args[0] {
		if err := s.state.ClearActiveSession(); err != nil {
			return fmt.Errorf("failed to save state: %w", err)
		}
	}
	logger.Info("session deleted", slog.String("session_id", args[0]))
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sess, cube, err := s.active()
	if err != nil {
		return err
	}
	cube.Reset()
	if err := s.sessions.Replace(sess.SessionID, cube, ""); err != nil {
		return err
	}
	fmt.Println(solvedLabel(true))
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sess, cube, err := s.active()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		names, err := s.snapshots.ListNames(sess.SessionID)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No snapshots.")
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	count, err := s.moves.Count(sess.SessionID)
	if err != nil {
		return err
	}
	if err := s.snapshots.Save(sess.SessionID, args[0], cube, count); err != nil {
		return err
	}
	fmt.Printf("Saved snapshot %q after %d moves\n", args[0], count)
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sess, _, err := s.active()
	if err != nil {
		return err
	}
	snap, err := s.snapshots.Get(sess.SessionID, args[0])
	if err != nil {
		return err
	}
	cube, err := snap.Cube()
	if err != nil {
		return err
	}
	if err := s.sessions.Replace(sess.SessionID, cube, ""); err != nil {
		return err
	}

	logger.Debug("restored snapshot",
		slog.String("session_id", sess.SessionID),
		slog.String("name", snap.Name),
	)
	fmt.Printf("Restored %q (%s)\n", snap.Name, solvedLabel(cube.IsSolved()))
	return nil
}
