package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"worklog-tracker/internal/config"
	"worklog-tracker/internal/models"
	"worklog-tracker/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "worklogctl",
	Short: "Admin utilities for the work-log tracker",
	Long:  `Provision and inspect credential records against the configured store, without going through the web UI.`,
}

var (
	createUsername   string
	createPassword   string
	createRole       string
	createDepartment string
	createShift      string
	createLocation   string
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a credential record",
	RunE: func(cmd *cobra.Command, args []string) error {
		if createUsername == "" || createPassword == "" || createDepartment == "" ||
			createShift == "" || createLocation == "" {
			return errors.New("all of --username, --password, --department, --shift, --location are required")
		}
		if len(createPassword) < 8 {
			return errors.New("password must be at least 8 characters long")
		}
		role := models.UserRole(createRole)
		if role != models.RoleAdmin && role != models.RoleEmployee {
			return fmt.Errorf("invalid role %q (admin or employee)", createRole)
		}

		users, err := openUsers()
		if err != nil {
			return err
		}

		ctx := context.Background()
		if _, err := users.ByUsername(ctx, createUsername); err == nil {
			return fmt.Errorf("user %q already exists", createUsername)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(createPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Username:     createUsername,
			PasswordHash: string(hash),
			Role:         role,
			Department:   createDepartment,
			Shift:        createShift,
			Location:     createLocation,
		}
		if err := users.Create(ctx, &user); err != nil {
			return err
		}

		fmt.Printf("created %s user %q\n", role, createUsername)
		return nil
	},
}

var listUsersCmd = &cobra.Command{
	Use:   "list-users",
	Short: "List credential records",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := openUsers()
		if err != nil {
			return err
		}

		all, err := users.List(context.Background())
		if err != nil {
			return err
		}
		for _, u := range all {
			fmt.Printf("%-20s %-10s %-15s %s\n", u.Username, u.Role, u.Department, u.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

func openUsers() (*store.Users, error) {
	cfg := config.Load()
	db, err := store.Open(cfg, zap.NewNop())
	if err != nil {
		return nil, err
	}
	return store.NewUsers(db), nil
}

func main() {
	createUserCmd.Flags().StringVar(&createUsername, "username", "", "Username (unique).")
	createUserCmd.Flags().StringVar(&createPassword, "password", "", "Password (min 8 characters).")
	createUserCmd.Flags().StringVar(&createRole, "role", "employee", "Role: admin or employee.")
	createUserCmd.Flags().StringVar(&createDepartment, "department", "", "Department.")
	createUserCmd.Flags().StringVar(&createShift, "shift", "", "Shift.")
	createUserCmd.Flags().StringVar(&createLocation, "location", "", "Location.")

	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(listUsersCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
