package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"daypicker/internal/daypicker"
	"daypicker/internal/storage"
)

var selectedCmd = &cobra.Command{
	Use:   "selected",
	Short: "List selected days",
	Args:  cobra.NoArgs,
	RunE:  runSelected,
}

func init() {
	rootCmd.AddCommand(selectedCmd)
}

func runSelected(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	sels, err := store.Selections()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(sels) == 0 {
		fmt.Fprintln(out, "No days selected.")
		return nil
	}
	for _, s := range sels {
		line := fmt.Sprintf("%s  %s", s.Day, s.Day.Weekday().String()[:3])
		if s.Note != "" {
			line += "  " + s.Note
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

var noteCmd = &cobra.Command{
	Use:   "note DAY TEXT",
	Short: "Attach a note to a selected day (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(2),
	RunE:  runNote,
}

func init() {
	rootCmd.AddCommand(noteCmd)
}

func runNote(cmd *cobra.Command, args []string) error {
	day, err := daypicker.ParseDate(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	if err := store.SetNote(day, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Noted %s\n", day)
	return nil
}
