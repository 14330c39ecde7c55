// Package logger provides diagnostic logging and crash recovery for taskpanel.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const (
	// CrashLogDir is the directory for crash logs relative to the base dir
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep
	MaxCrashLogs = 10
)

// CrashContext stores context for crash logging.
type CrashContext struct {
	mu          sync.RWMutex
	fs          afero.Fs
	lastCommand string
	command     string
	version     string
	basePath    string
	// exit is os.Exit outside tests
	exit func(int)
	out  io.Writer
}

func newCrashContext() *CrashContext {
	return &CrashContext{fs: afero.NewOsFs(), exit: os.Exit, out: os.Stderr}
}

// globalContext is the singleton crash context.
var globalContext = newCrashContext()

// SetFs replaces the filesystem crash logs are written to.
func SetFs(fs afero.Fs) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.fs = fs
}

// SetBasePath sets the base path for crash logs.
func SetBasePath(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.basePath = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand sets the CLI command being executed.
func SetCommand(cmd string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
}

// SetLastCommand records the last panel action, e.g. "toggle 3".
func SetLastCommand(action string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.lastCommand = truncateForLog(strings.TrimSpace(action), 500)
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog represents a crash log entry.
type CrashLog struct {
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Command     string    `json:"command"`
	PanicValue  string    `json:"panic_value"`
	StackTrace  string    `json:"stack_trace"`
	LastCommand string    `json:"last_command,omitempty"`
	GoVersion   string    `json:"go_version"`
	OS          string    `json:"os"`
	Arch        string    `json:"arch"`
}

// HandlePanic is a deferred function that recovers from panics and logs them.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	globalContext.mu.RLock()
	out, exit := globalContext.out, globalContext.exit
	globalContext.mu.RUnlock()

	log := createCrashLog(r)
	if err := writeCrashLog(log); err != nil {
		fmt.Fprintf(out, "\n[CRASH] Failed to write crash log: %v\n", err)
		fmt.Fprintf(out, "[CRASH] Panic: %v\n%s\n", r, log.StackTrace)
	} else {
		fmt.Fprintf(out, "\n")
		fmt.Fprintf(out, "╭──────────────────────────────────────────────────────╮\n")
		fmt.Fprintf(out, "│ taskpanel encountered an unexpected error            │\n")
		fmt.Fprintf(out, "╰──────────────────────────────────────────────────────╯\n")
		fmt.Fprintf(out, "\n")
		fmt.Fprintf(out, "A crash log has been saved to:\n")
		fmt.Fprintf(out, "  %s\n\n", getCrashLogPath(log.Timestamp))
	}

	exit(1)
}

// createCrashLog creates a CrashLog from a panic value.
func createCrashLog(panicValue any) CrashLog {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	return CrashLog{
		Timestamp:   time.Now(),
		Version:     globalContext.version,
		Command:     globalContext.command,
		PanicValue:  fmt.Sprintf("%v", panicValue),
		StackTrace:  string(debug.Stack()),
		LastCommand: globalContext.lastCommand,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
}

func crashFs() afero.Fs {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()
	return globalContext.fs
}

// writeCrashLog writes a crash log to disk.
func writeCrashLog(log CrashLog) error {
	fs := crashFs()
	dir := getCrashLogDir()

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create crash log dir: %w", err)
	}

	if err := cleanOldCrashLogs(fs, dir); err != nil {
		// Non-fatal, continue with writing
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	path := getCrashLogPath(log.Timestamp)
	if err := afero.WriteFile(fs, path, []byte(formatCrashLog(log)), 0644); err != nil {
		return fmt.Errorf("write crash log: %w", err)
	}
	return nil
}

// getCrashLogDir returns the directory for crash logs.
func getCrashLogDir() string {
	globalContext.mu.RLock()
	basePath := globalContext.basePath
	globalContext.mu.RUnlock()

	if basePath == "" {
		basePath = ".taskpanel"
	}
	return filepath.Join(basePath, CrashLogDir)
}

// getCrashLogPath returns the path for a crash log file.
func getCrashLogPath(t time.Time) string {
	filename := fmt.Sprintf("crash_%s.log", t.Format("20060102_150405"))
	return filepath.Join(getCrashLogDir(), filename)
}

// formatCrashLog formats a CrashLog as human-readable text.
func formatCrashLog(log CrashLog) string {
	var sb strings.Builder
	rule := strings.Repeat("-", 80) + "\n"
	banner := strings.Repeat("=", 80) + "\n"

	sb.WriteString(banner)
	sb.WriteString("TASKPANEL CRASH LOG\n")
	sb.WriteString(banner + "\n")

	fmt.Fprintf(&sb, "Timestamp: %s\n", log.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Version:   %s\n", log.Version)
	fmt.Fprintf(&sb, "Command:   %s\n", log.Command)
	fmt.Fprintf(&sb, "Go:        %s\n", log.GoVersion)
	fmt.Fprintf(&sb, "OS/Arch:   %s/%s\n", log.OS, log.Arch)

	sb.WriteString("\n" + rule + "PANIC VALUE\n" + rule)
	sb.WriteString(log.PanicValue + "\n")

	sb.WriteString("\n" + rule + "STACK TRACE\n" + rule)
	sb.WriteString(log.StackTrace)

	if log.LastCommand != "" {
		sb.WriteString("\n" + rule + "LAST PANEL ACTION\n" + rule)
		sb.WriteString(log.LastCommand + "\n")
	}

	sb.WriteString("\n" + banner + "END OF CRASH LOG\n" + banner)
	return sb.String()
}

func crashLogNames(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "crash_") && strings.HasSuffix(e.Name(), ".log") {
			names = append(names, e.Name())
		}
	}
	// Names embed the timestamp, so lexical order is oldest first.
	sort.Strings(names)
	return names, nil
}

// cleanOldCrashLogs removes old crash logs so that, once the next one is
// written, at most MaxCrashLogs remain.
func cleanOldCrashLogs(fs afero.Fs, dir string) error {
	names, err := crashLogNames(fs, dir)
	if err != nil {
		return err
	}
	if len(names) < MaxCrashLogs {
		return nil
	}
	toRemove := len(names) - MaxCrashLogs + 1
	for _, name := range names[:toRemove] {
		if err := fs.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", name, err)
		}
	}
	return nil
}

// ListCrashLogs returns the paths of all crash logs, oldest first.
func ListCrashLogs() ([]string, error) {
	dir := getCrashLogDir()
	names, err := crashLogNames(crashFs(), dir)
	if err != nil {
		return nil, err
	}
	logs := make([]string, 0, len(names))
	for _, name := range names {
		logs = append(logs, filepath.Join(dir, name))
	}
	return logs, nil
}
