package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/iotest"
	"time"
)

// isolate keeps the user's config file and WCR_* variables out of a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"WCR_LINES", "WCR_WORDS", "WCR_BYTES", "WCR_CHARS", "WCR_WATCH", "WCR_DEBOUNCE", "WCR_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return home
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Stdin(t *testing.T) {
	isolate(t)

	code, out, errOut := execute(t, "a b\nc\n")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}
	if want := "       2       3       6\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_FilesWithTotal(t *testing.T) {
	dir := isolate(t)
	empty := writeFile(t, dir, "empty.txt", "")
	b := writeFile(t, dir, "b.txt", "a b\nc\n")

	code, out, _ := execute(t, "", empty, b)
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("output lines = %d, want 3: %q", len(lines), out)
	}
	if want := "       2       3       6 total"; lines[2] != want {
		t.Errorf("total line = %q, want %q", lines[2], want)
	}
}

func TestRun_WordsOnly(t *testing.T) {
	dir := isolate(t)
	f := writeFile(t, dir, "f.txt", "I don't want the world. I just want your half.\r\n")

	code, out, _ := execute(t, "", "-w", f)
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	fields := strings.Fields(out)
	if len(fields) != 2 || fields[0] != "10" {
		t.Errorf("fields = %q, want [10 %s]", fields, f)
	}
}

func TestRun_LinesWordsChars(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, "héllo\n", "-lwm")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if want := "       1       1       6\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_MissingFile(t *testing.T) {
	dir := isolate(t)
	one := writeFile(t, dir, "one.txt", "one\n")
	missing := filepath.Join(dir, "missing.txt")
	three := writeFile(t, dir, "three.txt", "three three\n")

	code, out, errOut := execute(t, "", one, missing, three)
	if code != 1 {
		t.Errorf("exit = %d, want 1 when a source cannot be opened", code)
	}

	if !strings.Contains(out, one) || !strings.Contains(out, three) {
		t.Errorf("output %q should list both readable files", out)
	}
	if !strings.Contains(out, "       2       3      16 total") {
		t.Errorf("output %q should total only the readable files", out)
	}
	if want := missing + ": no such file or directory\n"; !strings.Contains(errOut, want) {
		t.Errorf("stderr = %q, want it to contain %q", errOut, want)
	}
}

func TestRun_Directory(t *testing.T) {
	dir := isolate(t)

	code, _, errOut := execute(t, "", dir)
	if code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if !strings.Contains(errOut, dir+": is a directory") {
		t.Errorf("stderr = %q, want is a directory", errOut)
	}
}

func TestRun_BytesAndCharsConflict(t *testing.T) {
	isolate(t)

	code, out, errOut := execute(t, "x", "-c", "-m")
	if code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if out != "" {
		t.Errorf("output = %q, want nothing counted", out)
	}
	if errOut == "" {
		t.Error("expected an error on stderr")
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := isolate(t)
	cfgPath := writeFile(t, dir, "wcr.toml", "chars = true\nlines = true\n")

	code, out, errOut := execute(t, "日本\n", "--config", cfgPath)
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}
	if want := "       1       3\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_DefaultConfigFile(t *testing.T) {
	home := isolate(t)
	if err := os.MkdirAll(filepath.Join(home, ".wcr"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(home, ".wcr"), "config.toml", "bytes = true\n")

	code, out, _ := execute(t, "abc\n")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if want := "       4\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	// a metric flag replaces the file's selection
	code, out, _ = execute(t, "abc\n", "-l")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if want := "       1\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_ConfigBytesWithCharsFlag(t *testing.T) {
	dir := isolate(t)
	cfgPath := writeFile(t, dir, "wcr.toml", "bytes = true\n")

	code, out, errOut := execute(t, "日本\n", "--config", cfgPath, "-m")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}
	if want := "       3\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_EnvBytesWithCharsFlag(t *testing.T) {
	isolate(t)
	t.Setenv("WCR_BYTES", "true")

	code, out, errOut := execute(t, "日本\n", "-m")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}
	if want := "       3\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_InvalidConfigFile(t *testing.T) {
	dir := isolate(t)
	cfgPath := writeFile(t, dir, "bad.toml", "not toml at all\n")

	code, out, _ := execute(t, "x", "--config", cfgPath)
	if code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestRun_EnvConfig(t *testing.T) {
	isolate(t)
	t.Setenv("WCR_WORDS", "true")

	code, out, _ := execute(t, "one two\n")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if want := "       2\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_WatchStdinRejected(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, "x", "--watch")
	if code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestRun_ReadFailureReportedAtAnyLevel(t *testing.T) {
	for _, level := range []string{"warn", "fatal", "disabled"} {
		t.Run(level, func(t *testing.T) {
			isolate(t)
			var out, errOut bytes.Buffer
			stdin := iotest.ErrReader(errors.New("device went away"))

			code := run(context.Background(), []string{"--log-level", level}, stdin, &out, &errOut)
			if code != 1 {
				t.Errorf("exit = %d, want 1", code)
			}
			if out.Len() != 0 {
				t.Errorf("output = %q, want nothing counted", out.String())
			}
			if want := "-: device went away\n"; !strings.Contains(errOut.String(), want) {
				t.Errorf("stderr = %q, want it to contain %q", errOut.String(), want)
			}
		})
	}
}

func TestRun_ConfigErrorReportedAtAnyLevel(t *testing.T) {
	isolate(t)

	code, _, errOut := execute(t, "", "--log-level", "disabled", "--debounce", "0s", "--watch", "f")
	if code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if !strings.Contains(errOut, "debounce must be positive") {
		t.Errorf("stderr = %q, want the validation error", errOut)
	}
}

func TestRun_DiagnosticsHaveNoColour(t *testing.T) {
	isolate(t)

	_, _, errOut := execute(t, "", "--log-level", "debug", "-")
	if errOut == "" {
		t.Fatal("expected debug log lines on stderr")
	}
	if strings.Contains(errOut, "\x1b[") {
		t.Errorf("stderr = %q, want no colour escapes", errOut)
	}
}

// syncBuffer lets the test poll output written by the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRun_WatchExitFollowsLastCount(t *testing.T) {
	dir := isolate(t)
	present := writeFile(t, dir, "present.txt", "one\n")
	late := filepath.Join(dir, "late.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out, errOut syncBuffer
	done := make(chan int, 1)
	go func() {
		done <- run(ctx, []string{"--watch", "--debounce", "20ms", present, late}, strings.NewReader(""), &out, &errOut)
	}()

	// late.txt is missing on the first count; keep touching it until a
	// recount picks it up
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for !strings.Contains(out.String(), late) {
		select {
		case <-tick.C:
			if err := os.WriteFile(late, []byte("two words\n"), 0644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			cancel()
			t.Fatalf("late.txt was never recounted; output = %q", out.String())
		}
	}

	// let any recount scheduled by the last write finish
	time.Sleep(300 * time.Millisecond)
	cancel()
	select {
	case code := <-done:
		if code != 0 {
			t.Errorf("exit = %d, want 0 after a clean recount; stderr = %q", code, errOut.String())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
	if !strings.Contains(errOut.String(), late+": no such file or directory") {
		t.Errorf("stderr = %q, want the initial open failure", errOut.String())
	}
}

func TestRun_Version(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, "", "--version")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.HasPrefix(out, "wcr version ") {
		t.Errorf("version output = %q", out)
	}
}
