// internal/logbook/logbook.go
//
// Append-only session log. Page behaviors degrade silently on screen, so the
// logbook is where suppressed failures end up; the TUI tails it into a small
// panel instead of interrupting the page.

package logbook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level tags an entry's severity.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logbook appends timestamped entries to a plain text file. Writes never
// return errors to the caller; a log line that cannot be written is dropped.
type Logbook struct {
	mu   sync.Mutex
	path string
}

// New creates a logbook backed by path, creating parent directories as
// needed.
func New(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &Logbook{path: path}, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes one entry. Nil receivers and write failures are silent.
func (l *Logbook) Append(level Level, message string) {
	if l == nil {
		return
	}
	l.write(fmt.Sprintf("%s %-5s %s\n",
		time.Now().UTC().Format(time.RFC3339),
		string(level),
		strings.TrimSpace(message),
	))
}

func (l *Logbook) write(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.WriteString(line)
}

// Tail returns up to maxLines of the newest entries, oldest first.
func (l *Logbook) Tail(maxLines int) []string {
	if l == nil || maxLines <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.Open(l.path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	if len(lines) == 0 {
		return nil
	}
	return lines
}

// Info appends an informational entry.
func (l *Logbook) Info(format string, args ...any) {
	l.Append(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn appends a warning entry.
func (l *Logbook) Warn(format string, args ...any) {
	l.Append(LevelWarn, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (l *Logbook) Error(format string, args ...any) {
	l.Append(LevelError, fmt.Sprintf(format, args...))
}

// Scoped returns a view of the logbook that prefixes every entry with a
// component id, so a suppressed behavior failure names its source.
func (l *Logbook) Scoped(id string) *Scoped {
	return &Scoped{book: l, id: strings.TrimSpace(id)}
}

// Scoped is a Logbook bound to one component id.
type Scoped struct {
	book *Logbook
	id   string
}

func (s *Scoped) append(level Level, format string, args ...any) {
	if s == nil || s.book == nil {
		return
	}
	message := fmt.Sprintf(format, args...)
	if s.id != "" {
		message = fmt.Sprintf("%s · %s", s.id, message)
	}
	s.book.Append(level, message)
}

// Info appends an informational entry under the component id.
func (s *Scoped) Info(format string, args ...any) { s.append(LevelInfo, format, args...) }

// Warn appends a warning entry under the component id.
func (s *Scoped) Warn(format string, args ...any) { s.append(LevelWarn, format, args...) }

// Error appends an error entry under the component id.
func (s *Scoped) Error(format string, args ...any) { s.append(LevelError, format, args...) }
