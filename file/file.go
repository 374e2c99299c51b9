/*
File    : go-tiny/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package file implements the source/sink contract shared by every
// stage driver: zero to two positional arguments, where zero reads
// stdin and writes stdout, one reads the named file and writes stdout,
// and two read from the first name and write to the second.
package file

import (
	"io"
	"os"

	"github.com/akashmaji946/go-tiny/tinyerr"
)

// ReadInput returns the whole input text for a driver invoked with
// args (the positional arguments, not including the program name).
func ReadInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", tinyerr.Newf(tinyerr.ReadError, "read failed: %v", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", tinyerr.Newf(tinyerr.ReadError, "cannot open file: %v", err)
	}
	return string(data), nil
}

// OpenOutput returns the output sink for a driver invoked with args.
// Closing the returned sink is always safe; stdout is handed out
// behind a no-op closer.
func OpenOutput(args []string) (io.WriteCloser, error) {
	if len(args) < 2 {
		return nopCloser{os.Stdout}, nil
	}

	f, err := os.Create(args[1])
	if err != nil {
		return nil, tinyerr.Newf(tinyerr.ReadError, "cannot create file: %v", err)
	}
	return f, nil
}

// nopCloser wraps stdout so callers can close their sink
// unconditionally.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
