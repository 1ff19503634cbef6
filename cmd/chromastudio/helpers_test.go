package main

import (
	"bytes"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := executeSplit(t, args...)
	return stdout, err
}

func executeSplit(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}
