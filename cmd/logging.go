package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// setupLogging routes debug logs to a per-run log file, or discards them.
// The returned func closes the file and tells the user where it went.
func setupLogging(debug bool) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	name := fmt.Sprintf("create-agentverse-agent-%s-cli-execution-%s.log", Version, uuid.NewString())
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetReportTimestamp(true)
	log.Debug("debug logging enabled")

	return func() {
		f.Close()
		fmt.Printf("Debug log saved to %q\n", name)
	}, nil
}
