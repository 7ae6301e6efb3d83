package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunSuccessExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"a | !a"}, &out, &errBuf)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(out.String(), "Solution in 2 dimensions") {
		t.Errorf("stdout = %q, want a success message", out.String())
	}
}

func TestRunFailureExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"a & !a"}, &out, &errBuf)
	if code != -1 {
		t.Errorf("exit code = %d, want -1", code)
	}
	if !strings.Contains(out.String(), "No solution found") {
		t.Errorf("stdout = %q, want a failure message", out.String())
	}
}

func TestRunJSONMode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"-json", "a | !a"}, &out, &errBuf)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(out.String(), `"success":true`) {
		t.Errorf("stdout = %q, want a JSON report with success:true", out.String())
	}
}

func TestRunParseError(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"a @ b"}, &out, &errBuf)
	if code != 1 {
		t.Errorf("exit code = %d, want 1 on parse error", code)
	}
}

func TestRunUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{}, &out, &errBuf)
	if code != 1 {
		t.Errorf("exit code = %d, want 1 with no formula argument", code)
	}
}
