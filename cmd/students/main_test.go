package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/service/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectOutput = `All Students:
Id      : 1
Name    : Aadarsh
Age     : 20
Course  : CSE
Marks   : 85
Email   : aadarsh@email.com
---------------------------
Id      : 2
Name    : Rahul
Age     : 21
Course  : ECE
Marks   : 78
Email   : rahul@email.com
---------------------------

Searching for student with ID 1:
Found: Aadarsh

Deleting student with ID 2

After Deletion:
Id      : 1
Name    : Aadarsh
Age     : 20
Course  : CSE
Marks   : 85
Email   : aadarsh@email.com
---------------------------
`

func TestRun(t *testing.T) {
	var useCases = []struct {
		description string
		driver      string
	}{
		{description: "memory backend", driver: "memory"},
		{description: "sqlite backend", driver: "sqlite"},
	}

	for _, useCase := range useCases {
		cfg := &config.Config{
			Env:     "dev",
			Storage: config.Storage{Driver: useCase.driver, Path: ":memory:"},
		}

		store, closeStore, err := openStorage(cfg)
		require.NoError(t, err, useCase.description)

		var out, logs bytes.Buffer
		err = run(&out, student.New(store, setupLogger(cfg.Env, &logs)))
		assert.NoError(t, err, useCase.description)
		assert.Equal(t, expectOutput, out.String(), useCase.description)
		assert.NotEmpty(t, logs.String(), useCase.description)

		require.NoError(t, closeStore())
	}
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, _, err := openStorage(&config.Config{Storage: config.Storage{Driver: "postgres"}})
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()

	assert.False(t, setupLogger("prod", &buf).Enabled(ctx, slog.LevelDebug))
	assert.True(t, setupLogger("prod", &buf).Enabled(ctx, slog.LevelInfo))
	assert.True(t, setupLogger("staging", &buf).Enabled(ctx, slog.LevelDebug))
	assert.True(t, setupLogger("dev", &buf).Enabled(ctx, slog.LevelDebug))

	setupLogger("prod", &buf).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
