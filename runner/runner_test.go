package runner

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pontaoski/lovego/errors"
	"github.com/ztrue/tracerr"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "lovego")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := writeFile(t, dir, "story.love", `
// a small love letter
devotion add(x: number, y: number) -> number {
    promise x cuddle y;
}
heart total match add(3, 4);
whisper total;
`)

	var out bytes.Buffer
	r := New(&out, false)
	if err := r.RunFile(path); err != nil {
		t.Fatalf("unexpected error: %s", errors.Format(err))
	}

	got := out.String()
	for _, want := range []string{"Reading love story from: " + path, "Number(7.0)\n", "Love story executed successfully!"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if v, ok := r.Interpreter().Environment().Get("total"); !ok || v.Debug() != "Number(7.0)" {
		t.Errorf("total not bound after run")
	}
}

func TestRunFileReportsFailures(t *testing.T) {
	dir, err := ioutil.TempDir("", "lovego")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := writeFile(t, dir, "broken.love", "whisper 1 split 0;")

	var out bytes.Buffer
	err = New(&out, false).RunFile(path)
	if errors.KindOf(err) != errors.Runtime {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(out.String(), "Runtime error: cannot divide by zero") {
		t.Errorf("got output:\n%s", out.String())
	}
}

func TestRunFileExtension(t *testing.T) {
	tests := []struct {
		name string
		msg  string
	}{
		{"story.txt", "Only .love files can contain our love story!"},
		{"story", "File must have a .love extension!"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		err := New(&out, false).RunFile(tt.name)
		if err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
		if got := tracerr.Unwrap(err).Error(); got != tt.msg {
			t.Errorf("%s: got %q", tt.name, got)
		}
		if out.Len() != 0 {
			t.Errorf("%s: wrote output before validating: %q", tt.name, out.String())
		}
	}
}

func TestRunFileMissing(t *testing.T) {
	err := New(&bytes.Buffer{}, false).RunFile(filepath.Join(os.TempDir(), "nobody-wrote-this.love"))
	if err == nil || !strings.HasPrefix(tracerr.Unwrap(err).Error(), "Failed to read love letter") {
		t.Fatalf("got %v", err)
	}
}

func TestBorder(t *testing.T) {
	want := "♥♥♥♥♥♥\n♥ hi ♥\n♥♥♥♥♥♥"
	if got := Border("hi"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
