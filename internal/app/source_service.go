package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

type SourceKind int

const (
	SourceStdin SourceKind = iota
	SourceFile
)

func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	default:
		return "stdin"
	}
}

// Source says where the text comes from: a named file or standard input.
type Source struct {
	Kind SourceKind
	Path string
}

func FileSource(path string) Source {
	return Source{Kind: SourceFile, Path: path}
}

func StdinSource() Source {
	return Source{Kind: SourceStdin}
}

func (s Source) String() string {
	if s.Kind == SourceFile {
		return s.Path
	}
	return "(standard input)"
}

// Open returns a reader for the source. For stdin the returned closer does
// not close the underlying stream.
func (s Source) Open(stdin io.Reader) (io.ReadCloser, error) {
	if s.Kind == SourceFile {
		return os.Open(s.Path)
	}
	return io.NopCloser(stdin), nil
}

// Input reads the whole source and returns its lines without line endings.
// A final line without a trailing newline is kept.
func Input(src Source, stdin io.Reader) ([]string, error) {
	rc, err := src.Open(stdin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer func() {
		// ошибка закрытия после полного чтения ничего не меняет для результата
		_ = rc.Close()
	}()

	reader := bufio.NewReader(rc)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, trimLineEnding(line))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, src, err)
		}
	}
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Run reads cfg.Source, searches it and writes every match on its own line.
// Nothing is written when the source cannot be read.
func Run(cfg SearchConfig, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	lines, err := Input(cfg.Source, stdin)
	if err != nil {
		return err
	}
	logger.Debug("source read",
		zap.Stringer("kind", cfg.Source.Kind),
		zap.Stringer("source", cfg.Source),
		zap.Int("lines", len(lines)),
	)

	results := NewGrep(cfg, lines).Matches()
	logger.Debug("search finished",
		zap.Bool("case_sensitive", cfg.CaseSensitive),
		zap.Int("matches", len(results)),
	)

	w := bufio.NewWriter(stdout)
	for _, line := range results {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}
