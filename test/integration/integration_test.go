package integration_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/akwright/studybuddy/internal/csvstore"
	"github.com/akwright/studybuddy/internal/domain/schedule"
	"github.com/akwright/studybuddy/internal/domain/session"
	"github.com/akwright/studybuddy/internal/domain/student"
	"github.com/stretchr/testify/require"
)

type app struct {
	store    *csvstore.Store
	students *student.Service
	sessions *session.Service
}

func newApp(t *testing.T, dataDir string) *app {
	t.Helper()
	store := csvstore.New(dataDir)
	require.NoError(t, store.Load())

	studentRepo := csvstore.NewStudentRepository(store)
	sessionRepo := csvstore.NewSessionRepository(store)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	return &app{
		store:    store,
		students: student.NewService(studentRepo, logger),
		sessions: session.NewService(studentRepo, sessionRepo, logger),
	}
}

func mustSlot(t *testing.T, text string) schedule.Slot {
	t.Helper()
	slot, err := schedule.ParseSlot(text)
	require.NoError(t, err)
	return slot
}

// The full workflow: register, enroll, declare availability, match, propose,
// respond, persist, reload, and keep going with recovered id sequences.
func TestWorkflowSurvivesReload(t *testing.T) {
	ctx := context.Background()
	dataDir := filepath.Join(t.TempDir(), "data")

	first := newApp(t, dataDir)

	avery, err := first.students.CreateProfile(ctx, "Avery", "avery@clemson.edu")
	require.NoError(t, err)
	blake, err := first.students.CreateProfile(ctx, "Blake", "blake@clemson.edu")
	require.NoError(t, err)

	for _, id := range []string{avery.ID, blake.ID} {
		require.NoError(t, first.students.AddCourse(ctx, id, "CPSC-3720"))
	}
	require.NoError(t, first.students.AddAvailability(ctx, avery.ID, schedule.Tuesday, 15*60, 17*60))
	require.NoError(t, first.students.AddAvailability(ctx, blake.ID, schedule.Tuesday, 16*60, 18*60))

	matches, err := first.students.SuggestMatches(ctx, avery.ID, "CPSC-3720")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, blake.ID, matches[0].ID)

	proposed, err := first.sessions.Propose(ctx, avery.ID, "CPSC-3720", mustSlot(t, "TUE 16:00-17:00"), []string{blake.ID})
	require.NoError(t, err)
	require.Equal(t, session.StatusPending, proposed.Status)

	_, err = first.sessions.Respond(ctx, blake.ID, proposed.ID, true)
	require.NoError(t, err)
	require.NoError(t, first.store.Save())

	// A fresh process over the same data directory.
	second := newApp(t, dataDir)

	reloaded, err := second.sessions.ListFor(ctx, blake.ID)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	require.Equal(t, proposed.ID, reloaded[0].ID)
	require.Equal(t, session.StatusConfirmed, reloaded[0].Status)
	require.Equal(t, []string{avery.ID, blake.ID}, reloaded[0].Participants)

	// New records never collide with reloaded ids.
	casey, err := second.students.CreateProfile(ctx, "Casey", "casey@clemson.edu")
	require.NoError(t, err)
	require.Equal(t, "s3", casey.ID)

	require.NoError(t, second.students.AddCourse(ctx, casey.ID, "CPSC-3720"))
	require.NoError(t, second.students.AddAvailability(ctx, casey.ID, schedule.Tuesday, 16*60, 17*60))

	next, err := second.sessions.Propose(ctx, casey.ID, "CPSC-3720", mustSlot(t, "TUE 16:00-17:00"), nil)
	require.NoError(t, err)
	require.Equal(t, "S2", next.ID)

	// A declined response later freely overwrites the confirmed status.
	declined, err := second.sessions.Respond(ctx, avery.ID, proposed.ID, false)
	require.NoError(t, err)
	require.Equal(t, session.StatusDeclined, declined.Status)
}

func TestExportMirrorsDataDir(t *testing.T) {
	ctx := context.Background()
	dataDir := filepath.Join(t.TempDir(), "data")

	app := newApp(t, dataDir)
	stu, err := app.students.CreateProfile(ctx, "Avery", "avery@clemson.edu")
	require.NoError(t, err)
	require.NoError(t, app.students.AddAvailability(ctx, stu.ID, schedule.Friday, 9*60, 10*60))
	require.NoError(t, app.store.Save())

	exportDir := filepath.Join(t.TempDir(), "exports")
	require.NoError(t, app.store.ExportTo(exportDir))

	for _, name := range []string{"students.csv", "availability.csv", "sessions.csv"} {
		want, err := os.ReadFile(filepath.Join(dataDir, name))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(exportDir, name))
		require.NoError(t, err)
		require.Equal(t, want, got, "file %s", name)
	}
}
