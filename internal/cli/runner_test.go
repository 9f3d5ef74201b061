package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akwright/studybuddy/internal/csvstore"
	"github.com/akwright/studybuddy/internal/domain/session"
	"github.com/akwright/studybuddy/internal/domain/student"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, in string) (*Runner, *bytes.Buffer, string) {
	t.Helper()
	dataDir := filepath.Join(t.TempDir(), "data")
	store := csvstore.New(dataDir)
	require.NoError(t, store.Load())

	studentRepo := csvstore.NewStudentRepository(store)
	sessionRepo := csvstore.NewSessionRepository(store)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	out := &bytes.Buffer{}
	runner := New(
		student.NewService(studentRepo, logger),
		session.NewService(studentRepo, sessionRepo, logger),
		store,
		filepath.Join(t.TempDir(), "exports"),
		logger,
		strings.NewReader(in),
		out,
	)
	return runner, out, dataDir
}

func TestExecute_FullWorkflow(t *testing.T) {
	ctx := context.Background()
	runner, out, _ := newTestRunner(t, "")

	script := []string{
		`profile create --name "Avery Quinn" --email avery@clemson.edu`,
		`profile create --name Blake --email blake@clemson.edu`,
		`course add --id s1 --course CPSC-3720`,
		`course add --id s2 --course CPSC-3720`,
		`availability add --id s1 --dow TUE --start 15:00 --end 17:00`,
		`availability add --id s2 --dow TUE --start 16:00 --end 18:00`,
	}
	for _, line := range script {
		require.NoError(t, runner.Execute(ctx, line), "command %q", line)
	}

	out.Reset()
	require.NoError(t, runner.Execute(ctx, `match suggest --id s1 --course CPSC-3720`))
	require.Equal(t, "id,name,email\ns2,Blake,blake@clemson.edu\n", out.String())

	out.Reset()
	require.NoError(t, runner.Execute(ctx, `session propose --id s1 --course CPSC-3720 --slot "TUE 16:00-17:00" --invitees s2`))
	require.Equal(t,
		"id,course,slot,status,participants\nS1,CPSC-3720,TUESDAY 16:00-17:00,PENDING,s1;s2\n",
		out.String())

	out.Reset()
	require.NoError(t, runner.Execute(ctx, `session respond --id s2 --session S1 --accept true`))
	require.Equal(t, "OK\n", out.String())

	out.Reset()
	require.NoError(t, runner.Execute(ctx, `session list --id s1`))
	require.Equal(t,
		"id,course,slot,status,participants,inviter\nS1,CPSC-3720,TUESDAY 16:00-17:00,CONFIRMED,s1;s2,s1\n",
		out.String())
}

func TestExecute_ClassmatesIncludesEveryone(t *testing.T) {
	ctx := context.Background()
	runner, out, _ := newTestRunner(t, "")

	for _, line := range []string{
		`profile create --name Avery --email avery@clemson.edu`,
		`profile create --name Blake --email blake@clemson.edu`,
		`course add --id s1 --course CPSC-3720`,
		`course add --id s2 --course CPSC-3720`,
	} {
		require.NoError(t, runner.Execute(ctx, line))
	}

	out.Reset()
	require.NoError(t, runner.Execute(ctx, `classmates --course CPSC-3720`))
	require.Equal(t, "id,name,email\ns1,Avery,avery@clemson.edu\ns2,Blake,blake@clemson.edu\n", out.String())
}

func TestExecute_QuotesCommaFields(t *testing.T) {
	ctx := context.Background()
	runner, out, _ := newTestRunner(t, "")

	require.NoError(t, runner.Execute(ctx, `profile create --name "Quinn, Avery" --email avery@clemson.edu`))
	require.Contains(t, out.String(), `s1,"Quinn, Avery",avery@clemson.edu`)
}

func TestExecute_ProposeFailureLeavesNoSession(t *testing.T) {
	ctx := context.Background()
	runner, out, _ := newTestRunner(t, "")

	for _, line := range []string{
		`profile create --name Avery --email avery@clemson.edu`,
		`profile create --name Blake --email blake@clemson.edu`,
		`course add --id s1 --course CPSC-3720`,
		`course add --id s2 --course CPSC-3720`,
		`availability add --id s1 --dow TUE --start 15:00 --end 16:00`,
		`availability add --id s2 --dow TUE --start 17:00 --end 18:00`,
	} {
		require.NoError(t, runner.Execute(ctx, line))
	}

	err := runner.Execute(ctx, `session propose --id s1 --course CPSC-3720 --slot "TUE 15:00-16:00" --invitees s2`)
	require.ErrorIs(t, err, session.ErrNotAvailable)
	require.ErrorContains(t, err, "s2")

	out.Reset()
	require.NoError(t, runner.Execute(ctx, `session list --id s1`))
	require.Equal(t, "id,course,slot,status,participants,inviter\n", out.String())
}

func TestExecute_UnknownCommandsAndFlags(t *testing.T) {
	ctx := context.Background()
	runner, out, _ := newTestRunner(t, "")

	require.Error(t, runner.Execute(ctx, `frobnicate --id s1`))
	require.Error(t, runner.Execute(ctx, `profile delete --id s1`))
	require.Error(t, runner.Execute(ctx, `profile create --name OnlyName`))

	require.NoError(t, runner.Execute(ctx, `profile create --name Avery --email avery@clemson.edu --shoesize 11`))
	require.Contains(t, out.String(), "WARNING: ignored flags [shoesize]")
}

func TestRun_SavesOnExit(t *testing.T) {
	input := strings.Join([]string{
		`profile create --name Avery --email avery@clemson.edu`,
		`course add --id s1 --course CPSC-3720`,
		`bogus command`,
		`exit`,
	}, "\n") + "\n"

	runner, out, dataDir := newTestRunner(t, input)
	require.NoError(t, runner.Run(context.Background()))
	require.Contains(t, out.String(), "ERROR:")
	require.Contains(t, out.String(), "Saved. Bye!")

	raw, err := os.ReadFile(filepath.Join(dataDir, "students.csv"))
	require.NoError(t, err)
	require.Contains(t, string(raw), "s1,Avery,avery@clemson.edu,CPSC-3720")
}

func TestExecute_ExportCopiesFiles(t *testing.T) {
	ctx := context.Background()
	runner, out, dataDir := newTestRunner(t, "")

	require.NoError(t, runner.Execute(ctx, `profile create --name Avery --email avery@clemson.edu`))

	exportDir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, runner.Execute(ctx, `export csv --dir `+exportDir))
	require.Contains(t, out.String(), "EXPORTED to "+exportDir)

	want, err := os.ReadFile(filepath.Join(dataDir, "students.csv"))
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(exportDir, "students.csv"))
	require.NoError(t, err)
	require.Equal(t, want, got)
}
