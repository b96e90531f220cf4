package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// fakeInput reports input as ready while unread bytes remain.
type fakeInput struct {
	r *bytes.Reader
}

func newFakeReader(input string) *KeyReader {
	f := &fakeInput{r: bytes.NewReader([]byte(input))}
	return &KeyReader{
		in:    f.r,
		ready: func(time.Duration) (bool, error) { return f.r.Len() > 0, nil },
	}
}

func TestReadKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"letters", "wasd", []string{"w", "a", "s", "d"}},
		{"ctrl c", "\x03", []string{"ctrl+c"}},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []string{"up", "down", "right", "left"}},
		{"ss3 arrow", "\x1bOA", []string{"up"}},
		{"lone escape", "\x1b", []string{"esc"}},
		{"alt", "\x1bx", []string{"alt+x"}},
		{"enter and space", "\r ", []string{"enter", " "}},
		{"modified arrows", "\x1b[1;5A\x1b[1;2D\x1b[1;3C", []string{"ctrl+up", "shift+left", "alt+right"}},
		{"tilde keys", "\x1b[5~\x1b[6~\x1b[3~\x1b[2~", []string{"pgup", "pgdown", "delete", "insert"}},
		{"modified tilde", "\x1b[3;5~", []string{"ctrl+delete"}},
		{"function keys", "\x1bOP\x1b[15~\x1b[24~", []string{"f1", "f5", "f12"}},
		{"shift tab", "\x1b[Z", []string{"shift+tab"}},
		{"unknown csi consumed whole", "\x1b[200~x", []string{"esc[200~", "x"}},
		{"csi cut by control byte", "\x1b[1\x03", []string{"esc[1", "ctrl+c"}},
		{"lone csi introducer", "\x1b[", []string{"alt+["}},
		{"utf8 runes", "é→😀", []string{"é", "→", "😀"}},
		{"alt rune", "\x1bé", []string{"alt+é"}},
		{"broken utf8", "\xe2w", []string{"\uFFFD", "w"}},
		{"alt escape", "\x1b\x1b", []string{"alt+esc"}},
		{"backspace bytes", "\x08\x7f", []string{"ctrl+h", "backspace"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := newFakeReader(tc.input)
			for i, want := range tc.expected {
				got, err := k.ReadKey()
				if err != nil {
					t.Fatalf("key %d: unexpected error: %v", i, err)
				}
				if got != want {
					t.Errorf("key %d = %q, expected %q", i, got, want)
				}
			}
			if _, err := k.ReadKey(); !errors.Is(err, io.EOF) {
				t.Errorf("after input: error = %v, expected EOF", err)
			}
		})
	}
}

func TestReadKeyWithoutReadyCheck(t *testing.T) {
	r := bytes.NewReader([]byte("\x1bq"))
	k := &KeyReader{
		in:    r,
		ready: func(time.Duration) (bool, error) { return false, errors.ErrUnsupported },
	}
	for _, want := range []string{"esc", "q"} {
		got, err := k.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey() error = %v", err)
		}
		if got != want {
			t.Errorf("ReadKey() = %q, expected %q", got, want)
		}
	}
}

func TestKeyAvailableWithPendingByte(t *testing.T) {
	k := newFakeReader("\xe2w")
	if _, err := k.ReadKey(); err != nil {
		t.Fatal(err)
	}
	ok, err := k.KeyAvailable()
	if err != nil || !ok {
		t.Errorf("KeyAvailable() = %v, %v, expected the pushed back byte", ok, err)
	}
}

func TestKeyAvailable(t *testing.T) {
	k := newFakeReader("q")
	ok, err := k.KeyAvailable()
	if err != nil || !ok {
		t.Fatalf("KeyAvailable() = %v, %v, expected true", ok, err)
	}
	_, _ = k.ReadKey()
	ok, _ = k.KeyAvailable()
	if ok {
		t.Error("KeyAvailable() = true after input drained")
	}
}

func TestKeyName(t *testing.T) {
	tests := map[byte]string{
		'q':  "q",
		0x01: "ctrl+a",
		0x1a: "ctrl+z",
		0x09: "tab",
		0x08: "ctrl+h",
		0x0d: "enter",
		0x7f: "backspace",
	}
	for b, want := range tests {
		if got := KeyName(b); got != want {
			t.Errorf("KeyName(%#x) = %q, expected %q", b, got, want)
		}
	}
}

func TestCursorPosition(t *testing.T) {
	k := newFakeReader("\x1b[12;40R")
	var out strings.Builder
	col, row, err := k.CursorPosition(&out)
	if err != nil {
		t.Fatalf("CursorPosition() error = %v", err)
	}
	if out.String() != ReportPosition {
		t.Errorf("query = %q, expected %q", out.String(), ReportPosition)
	}
	if col != 40 || row != 12 {
		t.Errorf("CursorPosition() = (%d, %d), expected (40, 12)", col, row)
	}
}

func TestParsePositionReport(t *testing.T) {
	col, row, err := ParsePositionReport([]byte("junk\x1b[3;7R"))
	if err != nil || col != 7 || row != 3 {
		t.Errorf("ParsePositionReport() = (%d, %d, %v), expected (7, 3, nil)", col, row, err)
	}
	for _, bad := range []string{"", "\x1b[3R", "\x1b[a;bR", "3;7R", "\x1b[3;7"} {
		if _, _, err := ParsePositionReport([]byte(bad)); !errors.Is(err, ErrBadReport) {
			t.Errorf("ParsePositionReport(%q) error = %v, expected ErrBadReport", bad, err)
		}
	}
}

func TestCloseIdempotent(t *testing.T) {
	calls := 0
	k := &KeyReader{restore: func() error { calls++; return nil }}
	_ = k.Close()
	_ = k.Close()
	if calls != 1 {
		t.Errorf("restore called %d times, expected 1", calls)
	}
}
