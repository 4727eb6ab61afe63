package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CommentPrefix marks a line that MeaningfulLineCount ignores.
const CommentPrefix = "#"

// MeaningfulLineCount counts the lines of r that are not blank and whose
// first non-whitespace character is not CommentPrefix.
func MeaningfulLineCount(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	count := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, CommentPrefix) {
			count++
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading lines: %w", err)
	}

	return count, nil
}
