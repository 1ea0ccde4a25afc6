package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uniflow/internal/model"
)

var loginName string

// loginCmd logs in by email, registering a new account when needed
var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in, registering a new account when the email is unknown",
	Long: `Log in with an email address. A known email resumes that account; an
unknown one registers a new account, which requires --name.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session's profile",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

// profileCmd groups profile operations
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the current user's profile",
}

var (
	profileName        string
	profileAvatar      string
	profileInstitution string
	profileMajor       string
	profileSemester    string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields; unset flags keep their stored values",
	Args:  cobra.NoArgs,
	RunE:  runProfileUpdate,
}

func init() {
	loginCmd.Flags().StringVar(&loginName, "name", "", "display name (required for new accounts)")

	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileUpdateCmd.Flags().StringVar(&profileAvatar, "avatar", "", "avatar URL")
	profileUpdateCmd.Flags().StringVar(&profileInstitution, "institution", "", "institution")
	profileUpdateCmd.Flags().StringVar(&profileMajor, "major", "", "major or profession")
	profileUpdateCmd.Flags().StringVar(&profileSemester, "semester", "", "semester")
	profileCmd.AddCommand(profileUpdateCmd)

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, profileCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.auth.Login(ctx, args[0], loginName)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
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
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	if user.Institution != "" {
		fmt.Println("Institution:", user.Institution)
	}
	if user.Major != "" {
		fmt.Println("Major:", user.Major)
	}
	if user.Semester != "" {
		fmt.Println("Semester:", user.Semester)
	}
	return nil
}

func runProfileUpdate(cmd *cobra.Command, _ []string) error {
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

	upd := model.UserUpdate{}
	if cmd.Flags().Changed("name") {
		upd.Name = &profileName
	}
	if cmd.Flags().Changed("avatar") {
		upd.Avatar = &profileAvatar
	}
	if cmd.Flags().Changed("institution") {
		upd.Institution = &profileInstitution
	}
	if cmd.Flags().Changed("major") {
		upd.Major = &profileMajor
	}
	if cmd.Flags().Changed("semester") {
		upd.Semester = &profileSemester
	}

	updated, err := a.auth.UpdateUser(ctx, user.ID, upd)
	if err != nil {
		return err
	}
	fmt.Printf("Profile updated for %s\n", updated.Name)
	return nil
}
