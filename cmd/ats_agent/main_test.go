package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/testutil"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	// Try to load .env file - ignore error if it doesn't exist (CI environment)
	_ = godotenv.Load()

	os.Exit(m.Run())
}

// executeCommand runs the CLI in-process and returns what it wrote to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// isolateEnv clears the environment the commands read so a developer's .env does not leak in.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "ATS_DATABASE_URL", "JWT_SECRET", "JWT_ISSUER", "JWT_EXPIRATION_HOURS", resumeStoreTokenEnv} {
		t.Setenv(key, "")
	}
}

// writeResume writes a one-page PDF resume with the given lines and returns its path.
func writeResume(t *testing.T, name string, lines ...string) string {
	t.Helper()
	if len(lines) == 0 {
		lines = []string{"Jane Doe", "jane.doe@example.com", "Skills: React, Node.js, Docker"}
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, testutil.BuildPDF(lines), 0o600))
	return path
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"React", "Node.js"}, splitList(" React, ,Node.js,"))
	require.Equal(t, []string{}, splitList(""))
}

func TestConfigFileNotFound(t *testing.T) {
	isolateEnv(t)

	_, err := executeCommand(t, "score", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file not found")
}
