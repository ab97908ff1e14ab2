// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Source is a named byte stream. Callers close what Open returns.
type Source interface {
	Description() string
	Open() (io.ReadCloser, error)
}

var _ []Source = []Source{BytesSource{}, StdinSource{}, LocalSource{}, HTTPSource{}}

// NewSources maps each path to a Source: "-" is stdin, http(s):// prefixes
// are fetched, everything else must be a regular local file.
func NewSources(paths []string) ([]Source, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("Expected at least one file (use -f)")
	}

	var srcs []Source
	var seenStdin bool

	for _, path := range paths {
		switch {
		case path == "-":
			if seenStdin {
				return nil, fmt.Errorf("Expected '-' (standard input) to be specified at most once")
			}
			seenStdin = true
			srcs = append(srcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			srcs = append(srcs, NewHTTPSource(path))

		default:
			fileInfo, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("Checking file '%s': %w", path, err)
			}
			if fileInfo.IsDir() {
				return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
			}
			srcs = append(srcs, NewLocalSource(path))
		}
	}

	return srcs, nil
}

type BytesSource struct {
	description string
	data        []byte
}

func NewBytesSource(description string, data []byte) BytesSource {
	return BytesSource{description, data}
}

func (s BytesSource) Description() string { return s.description }

func (s BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

type LocalSource struct {
	path string
}

func NewLocalSource(path string) LocalSource { return LocalSource{path} }

func (s LocalSource) Description() string { return fmt.Sprintf("file '%s'", s.path) }

func (s LocalSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("Opening %s: %w", s.Description(), err)
	}
	return f, nil
}

type HTTPSource struct {
	url    string
	Client *http.Client
}

func NewHTTPSource(url string) HTTPSource { return HTTPSource{url, &http.Client{}} }

func (s HTTPSource) Description() string {
	return fmt.Sprintf("HTTP URL '%s'", s.url)
}

// Open returns the response body of a GET request. Non-2xx responses are errors.
func (s HTTPSource) Open() (io.ReadCloser, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, resp.Status)
	}

	return resp.Body, nil
}

// ReadAll opens src and reads it to the end.
func ReadAll(src Source) ([]byte, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("Reading %s: %w", src.Description(), err)
	}
	return data, nil
}
