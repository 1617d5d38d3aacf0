package input

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"testing"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"letter", []byte("n"), "n"},
		{"enter", []byte{'\r'}, KeyEnter},
		{"ctrl c", []byte{3}, KeyCtrlC},
		{"csi right", []byte{0x1b, '[', 'C'}, KeyArrowRight},
		{"ss3 left", []byte{0x1b, 'O', 'D'}, KeyArrowLeft},
		{"csi up", []byte{0x1b, '[', 'A'}, KeyArrowUp},
		{"lone escape", []byte{0x1b}, KeyEscape},
		{"unknown sequence", []byte{0x1b, '[', 'Z'}, KeyEscape},
		{"control byte", []byte{1}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeKey(bytes.NewReader(tt.in))
			if err != nil {
				t.Fatalf("DecodeKey error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeKey_Empty(t *testing.T) {
	if _, err := DecodeKey(bytes.NewReader(nil)); err == nil {
		t.Error("DecodeKey on empty input returned no error")
	}
}

// chunkReader hands out one chunk per Read, like a terminal delivering key
// presses, and fails once the chunks run out
type chunkReader struct {
	chunks [][]byte
}

var errNoInput = errors.New("read would block")

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, errNoInput
	}
	n := copy(p, c.chunks[0])
	c.chunks = c.chunks[1:]
	return n, nil
}

func TestDecodeKey_BareEscapeDoesNotWait(t *testing.T) {
	r := bufio.NewReader(&chunkReader{chunks: [][]byte{{0x1b}, []byte("n")}})

	got, err := DecodeKey(r)
	if err != nil {
		t.Fatalf("DecodeKey error = %v", err)
	}
	if got != KeyEscape {
		t.Errorf("DecodeKey = %q, want %q", got, KeyEscape)
	}
	if got, _ := DecodeKey(r); got != "n" {
		t.Errorf("key after escape = %q, want n", got)
	}
}

func TestDecodeKey_KeepsTypeAhead(t *testing.T) {
	r := bufio.NewReader(&chunkReader{chunks: [][]byte{{0x1b, '[', 'C', 'q'}}})

	for _, want := range []string{KeyArrowRight, "q"} {
		got, err := DecodeKey(r)
		if err != nil {
			t.Fatalf("DecodeKey error = %v", err)
		}
		if got != want {
			t.Errorf("DecodeKey = %q, want %q", got, want)
		}
	}
	if _, err := DecodeKey(r); !errors.Is(err, errNoInput) {
		t.Errorf("DecodeKey on drained input = %v, want errNoInput", err)
	}
}

func TestBufferFor_ReusesReader(t *testing.T) {
	if bufferFor(os.Stdin) != bufferFor(os.Stdin) {
		t.Error("bufferFor built a new reader for the same file")
	}
}

func TestLookup(t *testing.T) {
	if got := Lookup(KeyArrowRight); got != ActionNextSeed {
		t.Errorf("Lookup(arrow_right) = %v, want ActionNextSeed", got)
	}
	if got := Lookup("q"); got != ActionQuit {
		t.Errorf("Lookup(q) = %v, want ActionQuit", got)
	}
	if got := Lookup(KeyEscape); got != ActionQuit {
		t.Errorf("Lookup(escape) = %v, want ActionQuit", got)
	}
	if got := Lookup("z"); got != ActionNone {
		t.Errorf("Lookup(z) = %v, want ActionNone", got)
	}
}

func TestEveryActionIsBound(t *testing.T) {
	byAction := BindingsByAction()
	for _, a := range Actions() {
		codes := byAction[a]
		if len(codes) == 0 {
			t.Errorf("action %d has no binding", a)
			continue
		}
		for i := 1; i < len(codes); i++ {
			if codes[i-1] > codes[i] {
				t.Errorf("codes for action %d are not sorted: %v", a, codes)
			}
		}
	}
}
