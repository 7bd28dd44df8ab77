package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"action-tracker/internal/config"
	"action-tracker/internal/repository/turso"
	"action-tracker/internal/services"
	"action-tracker/internal/session"
)

func setupApp(t *testing.T) (*App, *bytes.Buffer) {
	dir := t.TempDir()

	repo, err := turso.New(filepath.Join(dir, "tracker.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	cfg := config.NewConfig()
	cfg.Preferences.Dir = dir

	resolver := session.NewResolver(session.OpenPreferences(cfg.GetPreferencesPath()))
	svcs := services.NewServices(repo, resolver, cfg)

	out := &bytes.Buffer{}
	app := &App{
		services: svcs,
		session:  resolver,
		config:   cfg,
		out:      out,
		errors:   NewErrorHandler(),
	}
	return app, out
}

func selectProfile(t *testing.T, app *App, name string) {
	require.NoError(t, NewUserCommand(app).Select([]string{name}))
}

func TestUserSelectShowClear(t *testing.T) {
	app, out := setupApp(t)
	cmd := NewUserCommand(app)

	require.NoError(t, cmd.Show())
	assert.Contains(t, out.String(), "No profile selected")
	out.Reset()

	require.NoError(t, cmd.Select([]string{"kevin"}))
	assert.Contains(t, out.String(), "Selected profile Kevin")
	out.Reset()

	require.NoError(t, cmd.Show())
	assert.Contains(t, out.String(), "Kevin")
	out.Reset()

	// Selection by id
	require.NoError(t, cmd.Select([]string{"2"}))
	assert.Contains(t, out.String(), "Fanny")
	out.Reset()

	require.NoError(t, cmd.Clear())
	require.NoError(t, cmd.Show())
	assert.Contains(t, out.String(), "No profile selected")
}

func TestUserSelectUnknownProfile(t *testing.T) {
	app, _ := setupApp(t)

	err := NewUserCommand(app).Select([]string{"Bob"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown profile")
	assert.Contains(t, err.Error(), "Kevin")
}

func TestCategoryCommandsWithoutProfileFail(t *testing.T) {
	app, _ := setupApp(t)

	err := NewCategoryCommand(app).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No profile selected")
}

func TestCategoryAddAndList(t *testing.T) {
	app, out := setupApp(t)
	selectProfile(t, app, "Kevin")
	out.Reset()

	cmd := NewCategoryCommand(app)
	ctx := context.Background()

	require.NoError(t, cmd.Add(ctx, []string{"Car"}, "🚗", "#ef4444"))
	assert.Contains(t, out.String(), `Added category "Car"`)
	out.Reset()

	require.NoError(t, cmd.List(ctx))
	assert.Contains(t, out.String(), "🚗 Car")
}

func TestActionListShowsRelativeLabels(t *testing.T) {
	app, out := setupApp(t)
	selectProfile(t, app, "Kevin")

	ctx := context.Background()
	require.NoError(t, NewCategoryCommand(app).Add(ctx, []string{"Car"}, "", ""))
	require.NoError(t, NewActionCommand(app).Add(ctx, []string{"1", "Oil", "change"}, false))
	out.Reset()

	require.NoError(t, NewActionCommand(app).List(ctx, []string{"1"}))
	assert.Contains(t, out.String(), "Oil change")
	assert.Contains(t, out.String(), "(last: Never)")
	out.Reset()

	require.NoError(t, NewLogCommand(app).Execute(ctx, []string{"1"}, ""))
	out.Reset()

	require.NoError(t, NewActionCommand(app).List(ctx, []string{"1"}))
	assert.Contains(t, out.String(), "(last: Today)")
}

func TestLogAndHistory(t *testing.T) {
	app, out := setupApp(t)
	selectProfile(t, app, "Kevin")

	ctx := context.Background()
	require.NoError(t, NewCategoryCommand(app).Add(ctx, []string{"Car"}, "", ""))
	require.NoError(t, NewActionCommand(app).Add(ctx, []string{"1", "Fuel"}, true))
	require.NoError(t, NewFieldCommand(app).Add(ctx, []string{"1", "Liters"}, "number", 1))
	out.Reset()

	require.NoError(t, NewLogCommand(app).Execute(ctx, []string{"1", "Liters=4.5"}, "motorway"))
	assert.Contains(t, out.String(), "Logged entry")
	out.Reset()

	require.NoError(t, NewHistoryCommand(app).Execute(ctx, nil, 0))
	output := out.String()
	assert.Contains(t, output, "Car / Fuel")
	assert.Contains(t, output, "Liters=4.5")
	assert.Contains(t, output, "motorway")
	assert.Contains(t, output, "Today")
}

func TestLogRejectsMalformedPairs(t *testing.T) {
	app, _ := setupApp(t)
	selectProfile(t, app, "Kevin")

	ctx := context.Background()
	require.NoError(t, NewCategoryCommand(app).Add(ctx, []string{"Car"}, "", ""))
	require.NoError(t, NewActionCommand(app).Add(ctx, []string{"1", "Fuel"}, true))

	err := NewLogCommand(app).Execute(ctx, []string{"1", "Liters"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected name=value")
}

func TestEntryDateCommand(t *testing.T) {
	app, out := setupApp(t)
	selectProfile(t, app, "Kevin")

	ctx := context.Background()
	require.NoError(t, NewCategoryCommand(app).Add(ctx, []string{"Me"}, "", ""))
	require.NoError(t, NewActionCommand(app).Add(ctx, []string{"1", "Dentist"}, false))
	require.NoError(t, NewLogCommand(app).Execute(ctx, []string{"1"}, ""))
	out.Reset()

	require.NoError(t, NewEntryCommand(app).Date(ctx, []string{"1", "2026-01-05"}))
	assert.Contains(t, out.String(), "Moved entry 1 to 2026-01-05")

	err := NewEntryCommand(app).Date(ctx, []string{"1", "05/01/2026"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

func TestWipeRequiresForce(t *testing.T) {
	app, out := setupApp(t)
	selectProfile(t, app, "Kevin")

	ctx := context.Background()
	err := NewDemoCommand(app).Wipe(ctx, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, NewDemoCommand(app).Seed(ctx))
	out.Reset()

	require.NoError(t, NewDemoCommand(app).Wipe(ctx, true))
	assert.Contains(t, out.String(), "Wiped all data")
	out.Reset()

	require.NoError(t, NewCategoryCommand(app).List(ctx))
	assert.Contains(t, out.String(), "No categories found")
}

func TestParseID(t *testing.T) {
	id, err := parseID("42", "entry id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"0", "-3", "abc", ""} {
		_, err := parseID(bad, "entry id")
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseFieldValueArgs(t *testing.T) {
	values, err := parseFieldValueArgs(nil)
	require.NoError(t, err)
	assert.Nil(t, values)

	values, err = parseFieldValueArgs([]string{"Liters=4.5", "Brand=Shell V-Power"})
	require.NoError(t, err)
	assert.Equal(t, "4.5", values["Liters"])
	assert.Equal(t, "Shell V-Power", values["Brand"])

	_, err = parseFieldValueArgs([]string{"=5"})
	assert.Error(t, err)
}
