package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CommentChars are the characters which start a comment line.
const CommentChars = "#%;"

// LabelKind tells what kind of label a sample carries.
type LabelKind int

// Samples are unlabeled, labeled with a derivation count or labeled with
// a grammaticality judgement.
const (
	Unlabeled LabelKind = iota
	CountLabel
	BoolLabel
)

// Sample is a single test sentence.
type Sample struct {
	Tokens      []string
	Label       LabelKind
	Expected    int  // expected number of derivations, for CountLabel
	Grammatical bool // expected grammaticality, for BoolLabel
	Line        int  // line number in the input, starting at 1
}

func (s Sample) String() string {
	sentence := strings.Join(s.Tokens, " ")
	switch s.Label {
	case CountLabel:
		return fmt.Sprintf("%d:%s", s.Expected, sentence)
	case BoolLabel:
		return fmt.Sprintf("%v:%s", s.Grammatical, sentence)
	}
	return sentence
}

// Read reads samples from r. Empty lines and comment lines are skipped.
func Read(r io.Reader) ([]Sample, error) {
	var samples []Sample
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line == "" || strings.ContainsRune(CommentChars, rune(line[0])) {
			continue
		}
		sample, err := parseLine(line)
		if err != nil {
			return samples, errors.Wrapf(err, "line %d", lineno)
		}
		if len(sample.Tokens) == 0 {
			continue
		}
		sample.Line = lineno
		samples = append(samples, sample)
	}
	if err := scanner.Err(); err != nil {
		return samples, errors.Wrap(err, "reading sentences")
	}
	tracer().Infof("read %d sentences", len(samples))
	return samples, nil
}

// ReadFile reads samples from a file.
func ReadFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening sentence file")
	}
	defer f.Close()
	samples, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return samples, nil
}

func parseLine(line string) (Sample, error) {
	var sample Sample
	parts := strings.SplitN(line, ":", 2)
	if len(parts) == 2 {
		label := strings.TrimSpace(parts[0])
		switch label {
		case "true", "True":
			sample.Label, sample.Grammatical = BoolLabel, true
		case "false", "False":
			sample.Label, sample.Grammatical = BoolLabel, false
		default:
			n, err := strconv.Atoi(label)
			if err != nil || n < 0 {
				return sample, errors.Errorf("invalid label %q", parts[0])
			}
			sample.Label, sample.Expected = CountLabel, n
		}
		line = parts[1]
	}
	sample.Tokens = strings.Fields(line)
	return sample, nil
}
