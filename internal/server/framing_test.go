package server_test

import (
	"errors"
	"io"
	"pylintd/internal/server"
	"pylintd/pkg/serrors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

const delim = "<<EOF>>"

// chunkReader returns its parts one Read at a time.
type chunkReader struct {
	parts []string
	err   error
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.parts) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		return 0, io.EOF
	}
	n := copy(p, r.parts[0])
	r.parts[0] = r.parts[0][n:]
	if r.parts[0] == "" {
		r.parts = r.parts[1:]
	}

	return n, nil
}

func TestReadRequest(t *testing.T) {
	tests := []struct {
		name      string
		parts     []string
		chunkSize int
		maxBytes  int
		want      string
	}{
		{
			name:  "single chunk",
			parts: []string{"print('hi')\n" + delim},
			want:  "print('hi')\n",
		},
		{
			name:  "delimiter split across reads",
			parts: []string{"x = 1\n<<E", "OF", ">>"},
			want:  "x = 1\n",
		},
		{
			name:      "small chunks",
			parts:     []string{"def f():\n    return 1\n" + delim},
			chunkSize: 3,
			want:      "def f():\n    return 1\n",
		},
		{
			name:  "data after delimiter is ignored",
			parts: []string{"a = 1\n" + delim + "b = 2\n" + delim},
			want:  "a = 1\n",
		},
		{
			name:  "eof without delimiter",
			parts: []string{"a = 1\n", "b = 2\n"},
			want:  "a = 1\nb = 2\n",
		},
		{
			name:  "empty request",
			parts: nil,
			want:  "",
		},
		{
			name:     "source exactly at limit",
			parts:    []string{"12345", delim},
			maxBytes: 5,
			want:     "12345",
		},
		{
			name:      "partial delimiter at limit",
			parts:     []string{"12345<<EOF", ">>"},
			chunkSize: 1,
			maxBytes:  5,
			want:      "12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &chunkReader{parts: append([]string(nil), tt.parts...)}
			got, err := server.ReadRequest(r, delim, tt.chunkSize, tt.maxBytes)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReadRequest_TooLarge(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
	}{
		{name: "with delimiter", parts: []string{"123456" + delim}},
		{name: "without delimiter", parts: []string{strings.Repeat("x", 100)}},
		{name: "eof just above limit", parts: []string{"123456"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := server.ReadRequest(&chunkReader{parts: tt.parts}, delim, 4096, 5)
			require.ErrorIs(t, err, serrors.ErrPayloadTooLarge)
			require.Equal(t, "payload too large", serrors.MessageOf(err, ""))
		})
	}
}

func TestReadRequest_ReadError(t *testing.T) {
	boom := errors.New("boom")

	_, err := server.ReadRequest(&chunkReader{parts: []string{"x"}, err: boom}, delim, 4096, 0)
	require.ErrorIs(t, err, boom)

	_, err = server.ReadRequest(iotest.TimeoutReader(strings.NewReader("abc")), delim, 1, 0)
	require.ErrorIs(t, err, iotest.ErrTimeout)
}
