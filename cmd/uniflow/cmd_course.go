package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"uniflow/internal/service"
)

// courseCmd groups course operations
var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Create, join, and list courses",
}

var (
	courseSubject     string
	courseDescription string
)

var courseCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a course and become its admin",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourseCreate,
}

var courseJoinCmd = &cobra.Command{
	Use:   "join <code>",
	Short: "Join a course by its access code",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourseJoin,
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the courses you belong to",
	Args:  cobra.NoArgs,
	RunE:  runCourseList,
}

var courseMembersCmd = &cobra.Command{
	Use:   "members <course-id>",
	Short: "List a course's members and roles",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourseMembers,
}

func init() {
	courseCreateCmd.Flags().StringVar(&courseSubject, "subject", "", "course subject")
	courseCreateCmd.Flags().StringVar(&courseDescription, "description", "", "course description")
	courseCmd.AddCommand(courseCreateCmd, courseJoinCmd, courseListCmd, courseMembersCmd)
	rootCmd.AddCommand(courseCmd)
}

func runCourseCreate(cmd *cobra.Command, args []string) error {
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
	course, err := a.courses.Create(ctx, user.ID, service.CourseInput{
		Name:        args[0],
		Subject:     courseSubject,
		Description: courseDescription,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created %q (id %s)\nAccess code: %s\n", course.Name, course.ID, course.Code)
	return nil
}

func runCourseJoin(cmd *cobra.Command, args []string) error {
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
	res, err := a.courses.Join(ctx, user.ID, args[0])
	if err != nil {
		return err
	}
	fmt.Println(res.Message)
	return nil
}

func runCourseList(cmd *cobra.Command, _ []string) error {
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
	courses, err := a.courses.MyCourses(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Println("No courses yet")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tSUBJECT\tROLE")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Code, c.Name, c.Subject, c.MyRole)
	}
	return w.Flush()
}

func runCourseMembers(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if _, err := a.requireSession(ctx); err != nil {
		return err
	}
	members, err := a.courses.Members(ctx, args[0])
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
	for _, m := range members {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Email, m.Role)
	}
	return w.Flush()
}
