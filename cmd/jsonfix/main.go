package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/xarantolus/jsonfixer"
)

type args struct {
	Input  string `arg:"positional" help:"file path or http(s) URL to read, standard input if empty or -"`
	Output string `arg:"-o,--output" help:"write to this file instead of standard output"`
	Check  bool   `arg:"--check" help:"exit with an error if the result is not valid JSON"`
}

func (args) Description() string {
	return "jsonfix removes comments and trailing commas from JSON"
}

var errInvalid = errors.New("output is not valid JSON")

func main() {
	var a args
	arg.MustParse(&a)

	in, err := openInput(a.Input)
	if err != nil {
		log.Fatalln("Opening input:", err.Error())
	}
	defer in.Close()

	out, err := createOutput(a.Output)
	if err != nil {
		log.Fatalln("Creating output:", err.Error())
	}

	err = runAndClose(jsonfixer.NewReader(in), out, a.Check)
	if err != nil {
		log.Fatalln("Error while fixing:", err.Error())
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// createOutput returns the file at path, or standard output if path is empty
func createOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// runAndClose is run followed by closing out. The error of Close is returned unless run already failed.
func runAndClose(fx io.Reader, out io.WriteCloser, check bool) error {
	err := run(fx, out, check)

	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing output: %w", cerr)
	}

	return err
}

// run copies fixed JSON from fx to out. With check, the output is also kept
// in memory to validate it once the input ended.
func run(fx io.Reader, out io.Writer, check bool) error {
	w := bufio.NewWriter(out)

	var src io.Reader = fx
	var copied bytes.Buffer
	if check {
		src = io.TeeReader(fx, &copied)
	}

	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("copying: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing: %w", err)
	}

	if check && !json.Valid(copied.Bytes()) {
		return errInvalid
	}

	return nil
}

// openInput returns a reader for a URL, a file or standard input
func openInput(arg string) (io.ReadCloser, error) {
	if arg == "" || arg == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	// Check if it's an URL or file
	u, err := url.ParseRequestURI(arg)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("downloading: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("downloading: unexpected status %s", resp.Status)
		}

		return resp.Body, nil
	}

	// So it must be a file
	f, err := os.Open(arg)
	if err != nil {
		return nil, err
	}

	return f, nil
}
