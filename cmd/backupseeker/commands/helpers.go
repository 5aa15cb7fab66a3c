package commands

import (
	"fmt"
	"log/slog"

	"github.com/RaSan147/BackupSeeker/cmd/backupseeker/commands/flags"
	"github.com/RaSan147/BackupSeeker/internal/cli"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// openApp assembles the application services from the loaded runtime config.
func openApp() (*cli.App, error) {
	return cli.Open(flags.RuntimeConfig(), slog.Default())
}

// formatSize renders a byte count for table display.
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMG"[exp])
}
