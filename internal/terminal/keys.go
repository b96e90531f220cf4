package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/term"
)

// escapeWait bounds how long ReadKey waits for the rest of an escape sequence
// after a lone ESC byte.
const escapeWait = 25 * time.Millisecond

// ErrBadReport is returned for a malformed cursor position report.
var ErrBadReport = errors.New("malformed cursor position report")

// maxCSI bounds the parameter and final bytes scanned for one CSI sequence.
const maxCSI = 16

// KeyReader reads raw keystrokes. Key names follow the bubbletea convention
// ("w", "up", "ctrl+c") so one set of bindings serves every frontend.
type KeyReader struct {
	in      io.Reader
	ready   func(timeout time.Duration) (bool, error)
	restore func() error
	pending []byte // Bytes read past the end of the previous key
}

// NewKeyReader puts f into raw mode. Close restores the previous mode.
func NewKeyReader(f *os.File) (*KeyReader, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("terminal: %s: %w", f.Name(), ErrNotTerminal)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal: raw mode: %w", err)
	}
	return &KeyReader{
		in:      f,
		ready:   pollReady(fd),
		restore: func() error { return term.Restore(fd, state) },
	}, nil
}

// Close restores the terminal mode. Safe to call more than once.
func (k *KeyReader) Close() error {
	if k.restore == nil {
		return nil
	}
	restore := k.restore
	k.restore = nil
	return restore()
}

// KeyAvailable reports whether a key can be read without blocking.
func (k *KeyReader) KeyAvailable() (bool, error) {
	if len(k.pending) > 0 {
		return true, nil
	}
	return k.ready(0)
}

// ReadByte blocks until one byte of input is available.
func (k *KeyReader) ReadByte() (byte, error) {
	if len(k.pending) > 0 {
		b := k.pending[0]
		k.pending = k.pending[1:]
		return b, nil
	}
	var buf [1]byte
	for {
		n, err := k.in.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (k *KeyReader) unread(b byte) {
	k.pending = append(k.pending, b)
}

// next reads the following byte of a sequence if it arrives within
// escapeWait. A platform that cannot wait on input has no following byte.
func (k *KeyReader) next() (byte, bool, error) {
	if len(k.pending) == 0 {
		ok, err := k.ready(escapeWait)
		if errors.Is(err, errors.ErrUnsupported) {
			return 0, false, nil
		}
		if err != nil || !ok {
			return 0, false, err
		}
	}
	b, err := k.ReadByte()
	if err != nil {
		return 0, false, err
	}
	return b, true, nil
}

// ReadKey blocks for one keystroke and returns its name. A whole escape
// sequence or UTF-8 rune is one keystroke.
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.ReadByte()
	if err != nil {
		return "", err
	}
	switch {
	case b == 0x1b:
		return k.readEscape()
	case b >= utf8.RuneSelf:
		return k.readRune(b)
	}
	return KeyName(b), nil
}

func (k *KeyReader) readEscape() (string, error) {
	b, ok, err := k.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "esc", nil
	}
	switch {
	case b == '[':
		return k.readCSI()
	case b == 'O':
		return k.readSS3()
	case b == 0x1b:
		return "alt+esc", nil
	case b >= utf8.RuneSelf:
		name, err := k.readRune(b)
		return "alt+" + name, err
	}
	return "alt+" + KeyName(b), nil
}

// readCSI scans parameter bytes up to a final byte in A-Z, a-z or '~'.
// Unknown sequences are consumed whole and named "esc[<body>".
func (k *KeyReader) readCSI() (string, error) {
	var body []byte
	for len(body) < maxCSI {
		b, ok, err := k.next()
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		if b < 0x20 || b > 0x7e {
			k.unread(b)
			break
		}
		body = append(body, b)
		if isFinal(b) {
			return csiName(string(body)), nil
		}
	}
	if len(body) == 0 {
		return "alt+[", nil
	}
	return "esc[" + string(body), nil
}

func (k *KeyReader) readSS3() (string, error) {
	b, ok, err := k.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "alt+O", nil
	}
	if name, found := letterKeys[b]; found {
		return name, nil
	}
	return "escO" + string(rune(b)), nil
}

// readRune collects the continuation bytes of a UTF-8 sequence. Invalid
// input decodes to U+FFFD and the offending byte is left for the next key.
func (k *KeyReader) readRune(lead byte) (string, error) {
	buf := []byte{lead}
	for len(buf) < runeLen(lead) {
		b, ok, err := k.next()
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		if !utf8.RuneStart(b) {
			buf = append(buf, b)
			continue
		}
		k.unread(b)
		break
	}
	r, _ := utf8.DecodeRune(buf)
	return string(r), nil
}

// runeLen returns the sequence length announced by a UTF-8 lead byte.
func runeLen(b byte) int {
	switch {
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 1
}

func isFinal(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

var letterKeys = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
	'P': "f1",
	'Q': "f2",
	'R': "f3",
	'S': "f4",
}

var tildeKeys = map[string]string{
	"1":  "home",
	"2":  "insert",
	"3":  "delete",
	"4":  "end",
	"5":  "pgup",
	"6":  "pgdown",
	"7":  "home",
	"8":  "end",
	"11": "f1",
	"12": "f2",
	"13": "f3",
	"14": "f4",
	"15": "f5",
	"17": "f6",
	"18": "f7",
	"19": "f8",
	"20": "f9",
	"21": "f10",
	"23": "f11",
	"24": "f12",
}

// modifierPrefix maps the xterm modifier parameter to a key name prefix.
var modifierPrefix = map[string]string{
	"2": "shift+",
	"3": "alt+",
	"4": "alt+shift+",
	"5": "ctrl+",
	"6": "ctrl+shift+",
	"7": "alt+ctrl+",
	"8": "alt+ctrl+shift+",
}

// csiName names a CSI body such as "A", "1;5A", "5~" or "3;2~".
func csiName(body string) string {
	unknown := "esc[" + body
	final := body[len(body)-1]
	code, mod, hasMod := strings.Cut(body[:len(body)-1], ";")

	var name string
	switch {
	case body == "Z":
		return "shift+tab"
	case final == '~':
		name = tildeKeys[code]
	case code == "" || code == "1":
		name = letterKeys[final]
	}
	if name == "" {
		return unknown
	}
	if !hasMod {
		return name
	}
	prefix, ok := modifierPrefix[mod]
	if !ok {
		if mod == "1" {
			return name
		}
		return unknown
	}
	return prefix + name
}

// CursorPosition asks the terminal where the cursor is. The reply is read
// from the key input, so this must not race with ReadKey.
func (k *KeyReader) CursorPosition(out io.Writer) (col, row int, err error) {
	if _, err := io.WriteString(out, ReportPosition); err != nil {
		return 0, 0, err
	}
	var reply []byte
	for {
		b, err := k.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		reply = append(reply, b)
		if b == 'R' {
			break
		}
	}
	return ParsePositionReport(reply)
}

// ParsePositionReport parses ESC[row;colR. Leading input that is not part of
// the report is skipped.
func ParsePositionReport(reply []byte) (col, row int, err error) {
	start := bytes.LastIndex(reply, []byte(CSI))
	if start < 0 || len(reply) == 0 || reply[len(reply)-1] != 'R' {
		return 0, 0, fmt.Errorf("terminal: %q: %w", reply, ErrBadReport)
	}
	body := reply[start+len(CSI) : len(reply)-1]
	r, c, found := bytes.Cut(body, []byte{';'})
	if !found {
		return 0, 0, fmt.Errorf("terminal: %q: %w", reply, ErrBadReport)
	}
	row, err = strconv.Atoi(string(r))
	if err != nil {
		return 0, 0, fmt.Errorf("terminal: %q: %w", reply, ErrBadReport)
	}
	col, err = strconv.Atoi(string(c))
	if err != nil {
		return 0, 0, fmt.Errorf("terminal: %q: %w", reply, ErrBadReport)
	}
	return col, row, nil
}

// KeyName names a single input byte. 0x08 is "ctrl+h" and 0x7f is
// "backspace", the names bubbletea gives them, so terminals that send 0x08
// for Backspace report ctrl+h in both frontends.
func KeyName(b byte) string {
	switch b {
	case 0x09:
		return "tab"
	case 0x0d, 0x0a:
		return "enter"
	case 0x1b:
		return "esc"
	case 0x7f:
		return "backspace"
	case 0x00:
		return "ctrl+@"
	case ' ':
		return " "
	}
	if b >= 0x01 && b <= 0x1a {
		return "ctrl+" + string(rune('a'+b-1))
	}
	return string(rune(b))
}
