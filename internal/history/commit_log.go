package history

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/store"
	"github.com/trknhr/kanarank/internal/utils"
)

// The commit log holds one committed word per line as
//
//	key<TAB>value[<TAB>lid<TAB>rid]
//
// and a blank line closes a sentence. Lines without a tab are plain text
// and get segmented when parsed.

// Segmenter splits plain text into words with readings.
type Segmenter interface {
	Segment(text string) []lexicon.Word
}

// AppendCommits writes one sentence to the log at path.
func AppendCommits(path string, sentence []store.Commit) error {
	if len(sentence) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, c := range sentence {
		key := strings.ReplaceAll(c.Key, "\t", " ")
		value := strings.ReplaceAll(c.Value, "\t", " ")
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", key, value, c.LeftID, c.RightID)
	}
	w.WriteString("\n")
	return w.Flush()
}

// ParseSentences groups log lines into sentences. seg may be nil, in which case plain text lines are dropped.
func ParseSentences(lines []string, seg Segmenter) [][]store.Commit {
	var (
		sentences [][]store.Commit
		current   []store.Commit
	)
	flush := func() {
		if len(current) > 0 {
			sentences = append(sentences, current)
			current = nil
		}
	}

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if !strings.Contains(line, "\t") {
			flush()
			if seg == nil {
				continue
			}
			for _, w := range seg.Segment(strings.TrimSpace(line)) {
				current = append(current, store.Commit{Key: w.Key, Value: w.Value, LeftID: w.LeftID, RightID: w.RightID})
			}
			flush()
			continue
		}
		if c, ok := parseCommit(line); ok {
			current = append(current, c)
		}
	}
	flush()
	return sentences
}

func parseCommit(line string) (store.Commit, bool) {
	fields := strings.Split(line, "\t")
	key := utils.NormalizeKey(strings.TrimSpace(fields[0]))
	value := strings.TrimSpace(fields[1])
	if key == "" || value == "" {
		return store.Commit{}, false
	}
	c := store.Commit{Key: key, Value: value}
	if len(fields) >= 4 {
		c.LeftID, _ = strconv.Atoi(fields[2])
		c.RightID, _ = strconv.Atoi(fields[3])
	}
	return c, true
}

func loadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// loadTail reads the last maxLines lines of path, blank lines included, in file order.
func loadTail(path string, maxLines int) ([]string, error) {
	const readBlockSize = 4096

	if maxLines <= 0 {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil {
		return nil, err
	}

	var (
		offset   = fi.Size()
		leftover []byte
		lines    []string
		first    = true
	)

	for offset > 0 && len(lines) < maxLines {
		blockSize := int64(readBlockSize)
		if offset < blockSize {
			blockSize = offset
		}
		offset -= blockSize

		block := make([]byte, blockSize)
		if _, err := file.ReadAt(block, offset); err != nil && err != io.EOF {
			return nil, fmt.Errorf("read error: %w", err)
		}

		buf := append(block, leftover...)
		blockLines := bytes.Split(buf, []byte("\n"))
		if first && len(blockLines) > 1 && len(blockLines[len(blockLines)-1]) == 0 {
			// the file ends with a newline
			blockLines = blockLines[:len(blockLines)-1]
		}
		first = false

		// the first piece may continue in the previous block
		leftover = blockLines[0]
		for i := len(blockLines) - 1; i > 0 && len(lines) < maxLines; i-- {
			lines = append(lines, string(blockLines[i]))
		}
	}
	if offset == 0 && len(lines) < maxLines && len(leftover) > 0 {
		lines = append(lines, string(leftover))
	}

	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}
