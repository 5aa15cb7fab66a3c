// Package main is the entry point for the backupseeker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/RaSan147/BackupSeeker/cmd/backupseeker/commands"
	"github.com/RaSan147/BackupSeeker/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(errors.ExitUser)
}
