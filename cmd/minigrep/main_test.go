package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minigrep/internal/cli"
)

func noEnv(string) (string, bool) { return "", false }

func ignoreCaseEnv(key string) (string, bool) {
	if key == "IGNORE_CASE" {
		return "1", true
	}
	return "", false
}

func writePoem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	content := "I'm nobody! Who are you?\nAre you nobody, too?\nThen there's a pair of us - don't tell!\nHow dreary to be somebody!\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write poem: %v", err)
	}
	return path
}

func usageText() string {
	var b bytes.Buffer
	cli.Usage(&b)
	return b.String()
}

func TestRun(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	poem := writePoem(t)

	tests := []struct {
		name     string
		args     []string
		env      func(string) (string, bool)
		stdin    string
		wantCode int
		wantOut  string
	}{
		{
			name:    "file source",
			args:    []string{"nobody", poem},
			env:     noEnv,
			wantOut: "I'm nobody! Who are you?\nAre you nobody, too?\n",
		},
		{
			name:    "stdin source",
			args:    []string{"fox"},
			env:     noEnv,
			stdin:   "The quick brown fox\njumps over the lazy dog.\n",
			wantOut: "The quick brown fox\n",
		},
		{
			name:    "env ignore case",
			args:    []string{"how", poem},
			env:     ignoreCaseEnv,
			wantOut: "How dreary to be somebody!\n",
		},
		{
			name:    "flag overrides env",
			args:    []string{"how", poem, "-ni"},
			env:     ignoreCaseEnv,
			wantOut: "",
		},
		{
			name:    "no match exits zero",
			args:    []string{"zebra", poem},
			env:     noEnv,
			wantOut: "",
		},
		{
			name:     "missing query",
			args:     nil,
			env:      noEnv,
			wantCode: exitUsageError,
		},
		{
			name:     "missing file",
			args:     []string{"x", filepath.Join(t.TempDir(), "missing.txt")},
			env:      noEnv,
			wantCode: exitSourceError,
		},
		{
			name:     "help",
			args:     []string{"--help"},
			env:      noEnv,
			wantCode: exitOK,
			wantOut:  usageText(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, tt.env, strings.NewReader(tt.stdin), &stdout, &stderr)
			if code != tt.wantCode {
				t.Fatalf("exit code %d, want %d (stderr: %q)", code, tt.wantCode, stderr.String())
			}
			if stdout.String() != tt.wantOut {
				t.Fatalf("stdout %q, want %q", stdout.String(), tt.wantOut)
			}
			if tt.wantCode != exitOK && stderr.Len() == 0 {
				t.Fatal("expected a message on stderr")
			}
		})
	}
}
