package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// loadEmbedded reads one entry per line from the embedded dictionary.
func loadEmbedded(name string) ([]string, error) {
	f, err := dataFS.Open("data/" + name + ".txt")
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close for embedded read.
			_ = cerr
		}
	}()
	return readLines(f)
}

// LoadFile reads one entry per line from a user-provided word list.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	lines, err := readLines(f)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
