package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-portal-search/internal/database"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck_EmbeddedSeed(t *testing.T) {
	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Regexp(t, `jobs\s+Jobs\s+4`, out)
	assert.Regexp(t, `courses\s+Courses\s+2`, out)
	assert.Regexp(t, `all\s+All\s+18`, out)
}

func TestCheck_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	content := `
[[jobs]]
id = "j-1"
title = "Platform Engineer"
company = "Acme"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := execute(t, "check", "--file", path)
	require.NoError(t, err)
	assert.Regexp(t, `jobs\s+Jobs\s+1`, out)
	assert.Regexp(t, `posts\s+Posts\s+0`, out)
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := execute(t, "check", "-f", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseCommandsRequireDSN(t *testing.T) {
	for _, name := range []string{"migrate", "seed", "list"} {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, name)
			assert.ErrorIs(t, err, database.ErrMissingDSN)
		})
	}
}
