// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filetests houses a test harness for parsing YAML test cases and
asserting the resulting event stream.
*/
package filetests

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/yamlevents/pkg/yamlevents"
)

// Result is the outcome of evaluating a single test case.
type Result struct {
	Events []yamlevents.Event
}

// Evaluate is the processing desired from a source document to its events.
type Evaluate func(src string) (Result, *TestErr)

// FileTests contain a suite of test cases, each described in a separate file, verifying parser and emitter behavior.
//
// Test cases:
// - are found within the directory at "PathToTests"
// - conventionally have a .evtest extension
// - top-half is the YAML input; bottom-half is the expected output; divided by `+++` and a blank line.
//
// Types of tests:
// - expected output starting with `ERR:` indicate that expected output is an error message
// - expected output starting with `OUTPUT POSITION:` indicate that each event is prefixed with its start and end position
// - expected output starting with `ROUNDTRIP:` indicate that expected output is the emitted YAML
// - otherwise expected output is one event per line in yaml-test-suite notation
//
// For example:
//
//	key: value
//	+++
//
//	+STR
//	+DOC
//	+MAP
//	=VAL :key
//	=VAL :value
//	-MAP
//	-DOC
//	-STR
type FileTests struct {
	PathToTests string
	EvalFunc    Evaluate
	EmitterOpts yamlevents.EmitterOpts
}

// Run runs each tests: enumerates each file within FileTests.PathToTests; splits and evaluates using FileTests.EvalFunc.
func (f FileTests) Run(t *testing.T) {
	var files []string

	err := filepath.Walk(f.PathToTests, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to enumerate filetests: %s", err)
	}
	if len(files) == 0 {
		t.Fatalf("Expected to find filetests in %s", f.PathToTests)
	}

	if f.EvalFunc == nil {
		f.EvalFunc = DefaultEval
	}

	for _, filePath := range files {
		t.Run(filePath, func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatal(err)
			}

			pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)

			if len(pieces) != 2 {
				t.Fatalf("expected file %s to include +++ separator", filePath)
			}
			src := pieces[0] + "\n"
			expectedStr := pieces[1]

			result, testErr := f.EvalFunc(src)

			switch {
			case strings.HasPrefix(expectedStr, "ERR:"):
				if testErr == nil {
					err = fmt.Errorf("expected parse error, but did not receive it")
				} else {
					resultStr := TrimTrailingMultilineWhitespace(testErr.UserErr().Error())

					expectedStr = strings.TrimPrefix(expectedStr, "ERR:")
					expectedStr = strings.TrimPrefix(expectedStr, " ")
					expectedStr = TrimTrailingMultilineWhitespace(expectedStr)
					err = f.expectEquals(resultStr, expectedStr)
				}
			case testErr != nil:
				err = testErr.TestErr()
			case strings.HasPrefix(expectedStr, "OUTPUT POSITION:"):
				expectedStr = strings.TrimPrefix(expectedStr, "OUTPUT POSITION:\n")
				err = f.expectEquals(f.asPositionsStr(result), expectedStr)
			case strings.HasPrefix(expectedStr, "ROUNDTRIP:"):
				resultStr, emitErr := f.asEmittedStr(result)
				if emitErr != nil {
					err = emitErr
				} else {
					expectedStr = strings.TrimPrefix(expectedStr, "ROUNDTRIP:\n")
					err = f.expectEquals(resultStr, expectedStr)
				}
			default:
				err = f.expectEquals(f.asNotationStr(result), expectedStr)
			}

			if err != nil {
				t.Fatalf("%s", err)
			}
		})
	}
}

func (f FileTests) asNotationStr(result Result) string {
	var buf bytes.Buffer
	for _, ev := range result.Events {
		// Writes to a bytes.Buffer do not fail.
		_ = yamlevents.WriteNotation(&buf, ev)
	}
	return buf.String()
}

func (f FileTests) asPositionsStr(result Result) string {
	var sb strings.Builder
	for _, ev := range result.Events {
		fmt.Fprintf(&sb, "%s-%s %s\n", ev.Start().AsCompactString(), ev.End().AsCompactString(), yamlevents.NotationString(ev))
	}
	return sb.String()
}

func (f FileTests) asEmittedStr(result Result) (string, error) {
	var buf bytes.Buffer
	err := yamlevents.EmitAll(&buf, result.Events, f.EmitterOpts)
	if err != nil {
		return "", fmt.Errorf("emit error: %v", err)
	}
	return buf.String(), nil
}

// TestErr captures an error result from a single test.
type TestErr struct {
	realErr error
	testErr error
}

// NewTestErr creates a new TestErr
func NewTestErr(realErr, testErr error) *TestErr {
	return &TestErr{realErr, testErr}
}

// UserErr yields the error returned to the user
func (e TestErr) UserErr() error { return e.realErr }

// TestErr yields the error wrapped with helpful test context
func (e TestErr) TestErr() error { return e.testErr }

func (f FileTests) expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		return fmt.Errorf("not equal\n\n### result %d chars:\n>>>%s<<<\n###expected %d chars:\n>>>%s<<<", len(resultStr), resultStr, len(expectedStr), expectedStr)
	}
	return nil
}

// DefaultEval parses "src" into its complete event stream.
func DefaultEval(src string) (Result, *TestErr) {
	events, err := yamlevents.ReadAll(strings.NewReader(src))
	if err != nil {
		return Result{}, NewTestErr(err, fmt.Errorf("parse error: %v", err))
	}
	return Result{Events: events}, nil
}

// TrimTrailingMultilineWhitespace returns a string with trailing whitespace trimmed from every line as well
// as trimmed trailing empty lines
func TrimTrailingMultilineWhitespace(s string) string {
	var trimmedLines []string
	for _, line := range strings.Split(s, "\n") {
		trimmedLine := strings.TrimRight(line, "\t ")
		trimmedLines = append(trimmedLines, trimmedLine)
	}
	multiline := strings.Join(trimmedLines, "\n")
	return strings.TrimRight(multiline, "\n")
}
