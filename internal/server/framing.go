package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"pylintd/pkg/serrors"
)

// ReadRequest reads r in chunks of chunkSize bytes until delimiter shows up or
// r reports EOF, and returns the text before the first delimiter. Anything
// after the delimiter is discarded. A request whose source is longer than
// maxBytes fails with serrors.ErrPayloadTooLarge; maxBytes <= 0 disables the
// check.
func ReadRequest(r io.Reader, delimiter string, chunkSize, maxBytes int) (string, error) {
	if chunkSize <= 0 {
		chunkSize = 4096
	}
	delim := []byte(delimiter)

	var buf bytes.Buffer
	chunk := make([]byte, chunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			// only the tail can contain a delimiter that was not there before
			from := max(buf.Len()-len(delim)+1, 0)
			buf.Write(chunk[:n])

			if len(delim) > 0 {
				if idx := bytes.Index(buf.Bytes()[from:], delim); idx >= 0 {
					end := from + idx
					if maxBytes > 0 && end > maxBytes {
						return "", tooLarge(maxBytes)
					}

					return string(buf.Bytes()[:end]), nil
				}
			}

			if maxBytes > 0 && buf.Len() > maxBytes+len(delim)-1 {
				return "", tooLarge(maxBytes)
			}
		}

		switch {
		case errors.Is(err, io.EOF):
			if maxBytes > 0 && buf.Len() > maxBytes {
				return "", tooLarge(maxBytes)
			}

			return buf.String(), nil
		case err != nil:
			return "", fmt.Errorf("could not read request: %w", err)
		}
	}
}

func tooLarge(maxBytes int) error {
	return serrors.Wrap(serrors.ErrPayloadTooLarge,
		fmt.Errorf("limit is %d bytes", maxBytes), "payload too large")
}
