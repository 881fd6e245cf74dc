package schema

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p3rf/explorer/pkg/types"
)

// recordingChain builds a registry V1..Vn whose updates append their id to
// the document's "steps" field. failAt names a version whose Verify fails.
func recordingChain(t *testing.T, ids []types.VersionID, failAt types.VersionID) (*Registry, *[]types.VersionID) {
	t.Helper()
	calls := []types.VersionID{}
	r := NewRegistry()
	for _, id := range ids {
		update := func(doc types.Document) {
			calls = append(calls, id)
			steps, _ := doc["steps"].([]string)
			doc["steps"] = append(steps, string(id))
		}
		verify := func(doc types.Document) bool { return id != failAt }
		require.NoError(t, r.RegisterVersion(id, verify, update))
	}
	return r, &calls
}

func quietMigrator(r *Registry) *Migrator {
	logger, _ := test.NewNullLogger()
	return NewMigrator(r, WithLogger(logger))
}

func TestMigrateAppliesStepsAfterDeclaredVersion(t *testing.T) {
	chain := []types.VersionID{"1", "2", "3", "4"}

	tests := []struct {
		name    string
		doc     types.Document
		from    types.VersionID
		applied []types.VersionID
	}{
		{"missing version starts at earliest", types.Document{"type": "x"}, "1", []types.VersionID{"2", "3", "4"}},
		{"string version", types.Document{"version": "2"}, "2", []types.VersionID{"3", "4"}},
		{"numeric version", types.Document{"version": float64(3)}, "3", []types.VersionID{"4"}},
		{"latest version is a no-op", types.Document{"version": "4"}, "4", []types.VersionID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, calls := recordingChain(t, chain, "")
			report, err := quietMigrator(r).Migrate(tt.doc)
			require.NoError(t, err)

			assert.Equal(t, tt.from, report.From)
			assert.Equal(t, types.VersionID("4"), report.To)
			assert.Equal(t, tt.applied, report.Applied)
			assert.Equal(t, tt.applied, *calls)
			assert.Equal(t, "4", tt.doc["version"])
			assert.NotEmpty(t, report.RunID)
		})
	}
}

func TestReportAppliedEncodesAsEmptyList(t *testing.T) {
	report, err := quietMigrator(DefaultRegistry()).Migrate(types.Document{"type": "dashboard"})
	require.NoError(t, err)
	require.NotNil(t, report.Applied)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"applied":[]`)

	report, err = quietMigrator(NewRegistry()).Migrate(types.Document{})
	require.Error(t, err)
	assert.NotNil(t, report.Applied)
}

func TestMigrateIsIdempotent(t *testing.T) {
	r, calls := recordingChain(t, []types.VersionID{"1", "2"}, "")
	m := quietMigrator(r)
	doc := types.Document{"version": "1"}

	_, err := m.Migrate(doc)
	require.NoError(t, err)
	snapshot := map[string]any{"version": doc["version"], "steps": doc["steps"]}

	report, err := m.Migrate(doc)
	require.NoError(t, err)
	assert.Empty(t, report.Applied)
	assert.Equal(t, []types.VersionID{"2"}, *calls)
	assert.Equal(t, snapshot["version"], doc["version"])
	assert.Equal(t, snapshot["steps"], doc["steps"])
}

func TestMigrateFailsFast(t *testing.T) {
	r, calls := recordingChain(t, []types.VersionID{"1", "2", "3", "4"}, "3")
	doc := types.Document{"version": "1"}

	report, err := quietMigrator(r).Migrate(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidDocument)

	var invalid *types.InvalidDocumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, types.VersionID("3"), invalid.Version)

	// Step 3 ran its update before verify failed; step 4 never ran.
	assert.Equal(t, []types.VersionID{"2", "3"}, *calls)
	assert.Equal(t, []types.VersionID{"2"}, report.Applied)

	// No rollback: partial changes stay and the version is not advanced.
	assert.Equal(t, []string{"2", "3"}, doc["steps"])
	assert.Equal(t, "1", doc["version"])
}

func TestMigrateUnknownVersion(t *testing.T) {
	r, calls := recordingChain(t, []types.VersionID{"1", "2"}, "")
	doc := types.Document{"version": "7"}

	_, err := quietMigrator(r).Migrate(doc)
	assert.ErrorIs(t, err, types.ErrUnknownVersion)
	assert.Empty(t, *calls)
	assert.Equal(t, "7", doc["version"])
}

func TestMigrateRejectsMalformedVersion(t *testing.T) {
	r, _ := recordingChain(t, []types.VersionID{"1"}, "")
	_, err := quietMigrator(r).Migrate(types.Document{"version": []any{"1"}})
	assert.ErrorIs(t, err, types.ErrInvalidDocument)
}

func TestMigrateEmptyRegistry(t *testing.T) {
	_, err := quietMigrator(NewRegistry()).Migrate(types.Document{})
	assert.ErrorIs(t, err, types.ErrEmptyRegistry)
}

func TestMigrateDefaultChain(t *testing.T) {
	m := quietMigrator(DefaultRegistry())

	t.Run("document with type", func(t *testing.T) {
		doc := types.Document{"type": "dashboard", "widgets": []any{}}
		report, err := m.Migrate(doc)
		require.NoError(t, err)
		assert.Equal(t, types.VersionV1, report.From)
		assert.Empty(t, report.Applied)
		assert.Equal(t, "1", doc["version"])
	})

	t.Run("check reports a missing type", func(t *testing.T) {
		_, err := m.Check(types.Document{"title": "untyped"})
		assert.ErrorIs(t, err, types.ErrInvalidDocument)
	})
}

func TestMigrateLogsSteps(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r, _ := recordingChain(t, []types.VersionID{"1", "2", "3"}, "")

	report, err := NewMigrator(r, WithLogger(logger)).Migrate(types.Document{"version": "1"})
	require.NoError(t, err)

	var stepLines int
	for _, e := range hook.AllEntries() {
		assert.Equal(t, report.RunID, e.Data["run"])
		if e.Message == "schema step applied" {
			stepLines++
		}
	}
	assert.Equal(t, 2, stepLines)
}

func TestCurrent(t *testing.T) {
	r, _ := recordingChain(t, []types.VersionID{"1", "2"}, "")
	m := quietMigrator(r)

	ok, err := m.Current(types.Document{"version": "2"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Current(types.Document{})
	require.NoError(t, err)
	assert.False(t, ok)
}
