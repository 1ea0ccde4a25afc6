package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"uniflow/internal/service"
)

// classCmd groups class-schedule operations
var classCmd = &cobra.Command{
	Use:   "class",
	Short: "Schedule and list class sessions",
}

var (
	classDate     string
	classTime     string
	classLocation string
	classTopic    string
	classNotes    string
)

var classAddCmd = &cobra.Command{
	Use:   "add <course-id>",
	Short: "Schedule a class session",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassAdd,
}

var classListCmd = &cobra.Command{
	Use:   "list <course-id>",
	Short: "List a course's sessions, earliest date first",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassList,
}

func init() {
	classAddCmd.Flags().StringVar(&classDate, "date", "", "session date, e.g. 2026-09-15")
	classAddCmd.Flags().StringVar(&classTime, "time", "", "session time, e.g. 10:00")
	classAddCmd.Flags().StringVar(&classLocation, "location", "", "room or link")
	classAddCmd.Flags().StringVar(&classTopic, "topic", "", "session topic")
	classAddCmd.Flags().StringVar(&classNotes, "notes", "", "free-form notes")
	classCmd.AddCommand(classAddCmd, classListCmd)
	rootCmd.AddCommand(classCmd)
}

func runClassAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if _, err := a.requireSession(ctx); err != nil {
		return err
	}
	session, err := a.classes.Create(ctx, service.ClassInput{
		CourseID: args[0],
		Date:     classDate,
		Time:     classTime,
		Location: classLocation,
		Topic:    classTopic,
		Notes:    classNotes,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Scheduled %q on %s %s (id %s)\n", session.Topic, session.Date, session.Time, session.ID)
	return nil
}

func runClassList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if _, err := a.requireSession(ctx); err != nil {
		return err
	}
	sessions, err := a.classes.List(ctx, args[0])
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions scheduled")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTIME\tLOCATION\tTOPIC\tSTATUS")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Date, s.Time, s.Location, s.Topic, s.Status)
	}
	return w.Flush()
}
