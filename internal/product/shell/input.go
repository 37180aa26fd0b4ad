package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// lineReader reads lines on its own goroutine so a blocked read never holds up cancellation.
type lineReader struct {
	lines chan string
	done  chan struct{}
	err   error
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(lr.lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lr.lines <- scanner.Text():
			case <-lr.done:
				return
			}
		}
		lr.err = scanner.Err()
	}()
	return lr
}

// ReadLine returns the next line without its terminator, io.EOF at the end of
// input, or the context error once ctx is done.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return strings.TrimSuffix(line, "\r"), nil
	}
}

// Close stops the reading goroutine at its next line.
func (lr *lineReader) Close() {
	close(lr.done)
}

// prompt prints label and returns the raw answer.
func (s *Shell) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.in.ReadLine(ctx)
}

// promptInt asks until it gets a non-negative whole number.
func (s *Shell) promptInt(ctx context.Context, label string) (int, error) {
	for {
		answer, err := s.prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			fmt.Fprintf(s.out, "Invalid input: %q is not a whole number.\n", answer)
			continue
		}
		if n < 0 {
			fmt.Fprintln(s.out, "Invalid input: Value cannot be negative.")
			continue
		}
		return n, nil
	}
}

// promptFloat asks until it gets a non-negative finite number.
func (s *Shell) promptFloat(ctx context.Context, label string) (float64, error) {
	for {
		answer, err := s.prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		f, ok := s.parseFloat(answer)
		if ok {
			return f, nil
		}
	}
}

// promptOptionalFloat is promptFloat that also accepts a blank answer as "no value".
func (s *Shell) promptOptionalFloat(ctx context.Context, label string) (*float64, error) {
	for {
		answer, err := s.prompt(ctx, label)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(answer) == "" {
			return nil, nil
		}
		if f, ok := s.parseFloat(answer); ok {
			return &f, nil
		}
	}
}

// parseFloat reports why answer was rejected, if it was.
func (s *Shell) parseFloat(answer string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		fmt.Fprintf(s.out, "Invalid input: %q is not a number.\n", answer)
		return 0, false
	}
	if f < 0 {
		fmt.Fprintln(s.out, "Invalid input: Value cannot be negative.")
		return 0, false
	}
	return f, true
}
