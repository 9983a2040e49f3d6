package batch

import (
	"bufio"
	"io"
	"strings"

	apperrors "github.com/allisson/cardvault/internal/errors"
)

// ReadLines reads the uploaded file as text lines, tolerating \n and \r\n
// line endings, and discards blank lines up front. Blank-line filtering
// happens once here, not per processing phase.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	// Batch lines are fixed-width and short, but leave headroom for files
	// with padded records.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read batch file")
	}

	return lines, nil
}
