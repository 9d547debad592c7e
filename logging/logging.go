package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// Init sets up Apex with a custom handler and a log level from the
// LISTINGS_LOG env variable.
func Init() {
	level := strings.ToUpper(os.Getenv("LISTINGS_LOG"))
	if level == "" {
		level = "INFO"
	}
	log.SetHandler(&Handler{})
	log.SetLevelFromString(level)
}

// Handler formats log messages and writes to stdout
type Handler struct{}

// HandleLog implements the log.Handler interface
func (h *Handler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	fields := ""
	for _, f := range e.Fields.Names() {
		fields += fmt.Sprintf(" %s=%v", f, e.Fields.Get(f))
	}
	fmt.Fprintf(os.Stdout, "%s %.1s %s%s\n", timestamp, level, e.Message, fields)
	return nil
}
