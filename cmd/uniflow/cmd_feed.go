package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"uniflow/internal/model"
	"uniflow/internal/service"
)

// announceCmd groups announcement operations
var announceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Post and read course announcements",
}

var announcePin bool

var announceAddCmd = &cobra.Command{
	Use:   "add <course-id> <content>",
	Short: "Post an announcement to a course feed",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnnounceAdd,
}

var announceListCmd = &cobra.Command{
	Use:   "list <course-id>",
	Short: "Show a course feed, pinned posts first",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnnounceList,
}

// observationCmd groups observation operations
var observationCmd = &cobra.Command{
	Use:   "observation",
	Short: "Record and read private per-student observations",
}

var observationAddCmd = &cobra.Command{
	Use:   "add <course-id> <student-id> <content>",
	Short: "Record an observation about a student (course admins only)",
	Args:  cobra.ExactArgs(3),
	RunE:  runObservationAdd,
}

var observationListCmd = &cobra.Command{
	Use:   "list <course-id> <student-id>",
	Short: "List the observations about a student",
	Args:  cobra.ExactArgs(2),
	RunE:  runObservationList,
}

func init() {
	announceAddCmd.Flags().BoolVar(&announcePin, "pin", false, "pin the announcement to the top of the feed")
	announceCmd.AddCommand(announceAddCmd, announceListCmd)
	observationCmd.AddCommand(observationAddCmd, observationListCmd)
	rootCmd.AddCommand(announceCmd, observationCmd)
}

func runAnnounceAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.requireSession(ctx)
	if err != nil {
		return err
	}
	if _, err := a.feed.CreateAnnouncement(ctx, service.AnnouncementInput{
		CourseID: args[0],
		AuthorID: user.ID,
		Content:  args[1],
		IsPinned: announcePin,
	}); err != nil {
		return err
	}
	fmt.Println("Announcement posted")
	return nil
}

func runAnnounceList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if _, err := a.requireSession(ctx); err != nil {
		return err
	}
	items, err := a.feed.Announcements(ctx, args[0])
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No announcements yet")
		return nil
	}
	for _, item := range items {
		pin := ""
		if item.IsPinned {
			pin = " [pinned]"
		}
		fmt.Printf("%s  %s%s\n  %s\n", item.CreatedAt.Local().Format(time.DateTime), item.AuthorName, pin, item.Content)
	}
	return nil
}

func runObservationAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.requireSession(ctx)
	if err != nil {
		return err
	}
	// Display convention, not enforcement: only course admins write
	// observations. Storage itself stays unrestricted.
	role, err := a.roleIn(ctx, args[0], user.ID)
	if err != nil {
		return err
	}
	if role != model.RoleAdmin {
		return fmt.Errorf("only course admins can record observations")
	}
	if _, err := a.feed.CreateObservation(ctx, service.ObservationInput{
		CourseID:  args[0],
		StudentID: args[1],
		AuthorID:  user.ID,
		Content:   args[2],
	}); err != nil {
		return err
	}
	fmt.Println("Observation recorded")
	return nil
}

func runObservationList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.requireSession(ctx)
	if err != nil {
		return err
	}
	// Visible to course admins and to the student the notes are about.
	if user.ID != args[1] {
		role, err := a.roleIn(ctx, args[0], user.ID)
		if err != nil {
			return err
		}
		if role != model.RoleAdmin {
			return fmt.Errorf("observations are visible to course admins and the student only")
		}
	}
	items, err := a.feed.Observations(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No observations recorded")
		return nil
	}
	for _, o := range items {
		fmt.Printf("%s  %s\n", o.CreatedAt.Local().Format(time.DateTime), o.Content)
	}
	return nil
}
