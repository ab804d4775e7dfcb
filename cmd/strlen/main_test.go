/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// helperEnv makes the test binary behave as the strlen command.
const helperEnv = "STRLEN_MAIN_HELPER"

func TestMain(m *testing.M) {
	if args := os.Getenv(helperEnv); args != "" {
		os.Args = append([]string{"strlen"}, strings.Fields(args)...)
		main()
		// Returning from main ends a real process with status 0.
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out, errOut bytes.Buffer
	cmd := newApp(&errOut).command()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestLengthArgs(t *testing.T) {
	out, err := run(t, "", "abc", "")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "3\tabc\n0\t\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestLengthStdin(t *testing.T) {
	out, err := run(t, "one\nfour\n")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "3\tone\n4\tfour\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestLengthSubcommandNames(t *testing.T) {
	out, err := run(t, "", "--", "check", "serve")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "5\tcheck\n5\tserve\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestLengthStdinLongAndCRLF(t *testing.T) {
	long := strings.Repeat("x", 70000)
	out, err := run(t, long+"\nab\r\n\nlast")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := "70000\t" + long + "\n3\tab\r\n0\t\n4\tlast\n"
	if out != want {
		t.Fatalf("out has %d bytes, want %d", len(out), len(want))
	}
}

func TestLengthEscapes(t *testing.T) {
	out, err := run(t, "", "--escapes", `a\0b`)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "1\ta\\0b\n" {
		t.Fatalf("out = %q", out)
	}

	t.Setenv("STRLEN_ESCAPES", "true")
	if out, _ = run(t, "", `a\0b`); out != "1\ta\\0b\n" {
		t.Fatalf("env escapes: out = %q", out)
	}
	if out, _ = run(t, "", "--escapes=false", `a\0b`); out != "4\ta\\0b\n" {
		t.Fatalf("flag over env: out = %q", out)
	}
}

func TestLengthBadEscape(t *testing.T) {
	if _, err := run(t, "", "--escapes", `\q`); err == nil {
		t.Fatal("want decode error")
	}
}

func TestBadConfig(t *testing.T) {
	if _, err := run(t, "", "--log-level", "loud", "abc"); err == nil {
		t.Fatal("want validation error")
	}
	if _, err := run(t, "", "--config", "/does/not/exist.toml", "abc"); err == nil {
		t.Fatal("want missing config error")
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "check")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{
		"ok\tLen(\"\") == 0\n",
		"ok\tLen(\"abc\") == 3\n",
		"ok\tLen(\"a\\0b\") == 1\n",
		"ok\tLen(null) raises (",
		"literal != nil",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("out = %q, missing %q", out, want)
		}
	}
}

func TestCheckExitsZero(t *testing.T) {
	cmd := exec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(), helperEnv+"=check --no-color", "HOME="+t.TempDir())
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("subprocess: %v, stderr %q", err, stderr.String())
	}
	if got := strings.Count(stdout.String(), "ok\t"); got != 4 {
		t.Fatalf("stdout = %q, want 4 ok lines", stdout.String())
	}
}

func TestConfigErrorExitsOne(t *testing.T) {
	cmd := exec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(), helperEnv+"=--log-level=loud abc", "HOME="+t.TempDir())
	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("subprocess error = %v, want exit status 1", err)
	}
}

func TestNullExitsProcess(t *testing.T) {
	cmd := exec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(), helperEnv+"=--null --no-color", "HOME="+t.TempDir())
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("subprocess error = %v, want exit error", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if stdout.Len() != 0 {
		t.Fatalf("stdout = %q, want nothing", stdout.String())
	}
	if !strings.Contains(stderr.String(), "require failed:") || !strings.Contains(stderr.String(), "literal != nil") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}
