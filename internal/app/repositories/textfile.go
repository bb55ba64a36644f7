package repositories

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// TimestampLayout is the wall-clock format used across every data file.
const TimestampLayout = "2006-01-02 15:04:05"

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readDataLines returns the record lines of a data file, skipping comment
// lines (leading '#') and blank lines. Lines are returned in file order.
func readDataLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if isDataLine(line) {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// readAllLines returns every line of a file, comments included. Used by the
// activity log reader, which treats lines as opaque text.
func readAllLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func isDataLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}

// backupFile snapshots path to path+".backup", replacing any earlier backup.
// A missing source is not an error; failing to read an existing source is.
func backupFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer src.Close()

	dst, err := os.Create(path + ".backup")
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Sync()
}

// appendLine opens, appends one newline-terminated line, and closes the file.
// Each append is an independent open-append-close; concurrent writers are
// last-writer-wins at line granularity.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return err
	}
	return nil
}

// now returns the current time formatted with TimestampLayout.
func now() string {
	return time.Now().Format(TimestampLayout)
}
