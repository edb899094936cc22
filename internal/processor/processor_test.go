package processor

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-exporter/internal/analyze"
	"shape-exporter/internal/diagnostic"
	"shape-exporter/internal/emit"
	"shape-exporter/internal/model"
)

type staticEnv struct {
	marked  []model.Element
	members map[string][]model.Element
}

func (e staticEnv) MarkedElements() []model.Element { return e.marked }
func (e staticEnv) AllMembers(decl string) []model.Element { return e.members[decl] }

func newProcessor(t *testing.T, dir string, format emit.Format, buf *bytes.Buffer) *Processor {
	t.Helper()

	em, err := emit.New(emit.Options{OutputDir: dir, Format: format})
	require.NoError(t, err)

	logger := log.New(buf)
	logger.SetLevel(log.DebugLevel)

	return New(em, logger)
}

func readDescriptor(t *testing.T, dir, name string) string {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)

	return string(b)
}

func TestProcess_PersonScenario(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	env := staticEnv{marked: []model.Element{
		{Kind: model.KindDeclaration, Name: "com.example.Person"},
		{Kind: model.KindField, Owner: "com.example.Person", Name: "name", Type: "java.lang.String"},
		{Kind: model.KindField, Owner: "com.example.Person", Name: "age", Type: "int"},
	}}

	handled, result := newProcessor(t, dir, emit.FormatLegacy, &buf).Process(env)

	assert.True(t, handled)
	require.NoError(t, result.Summary.Err())
	assert.Equal(t,
		"{class:\"com.example.Person\",\n fields:\n {\n  name:\"java.lang.String\",\n  age:\"int\"\n }\n}",
		readDescriptor(t, dir, "com_example_Person.json"))
	assert.Contains(t, buf.String(), "mapping dump")
}

func TestProcess_WriteFailureIsReportedNotFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a_Locked.json"), 0o755))

	var buf bytes.Buffer
	env := staticEnv{marked: []model.Element{
		{Kind: model.KindDeclaration, Name: "a.Locked"},
		{Kind: model.KindDeclaration, Name: "a.Open"},
		{Kind: model.KindField, Owner: "", Name: "Orphan", Type: "int"},
	}}

	handled, result := newProcessor(t, dir, emit.FormatLegacy, &buf).Process(env)

	assert.True(t, handled)
	assert.Len(t, result.Summary.Failed(), 1)
	assert.FileExists(t, filepath.Join(dir, "a_Open.json"))

	require.Len(t, result.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeWriteFailed, result.Diagnostics.Errors[0].Code)
	require.Len(t, result.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnresolvedOwner, result.Diagnostics.Warnings[0].Code)

	assert.Contains(t, buf.String(), "failed to write descriptor")
}

func TestProcess_NilLogger(t *testing.T) {
	em, err := emit.New(emit.Options{OutputDir: t.TempDir()})
	require.NoError(t, err)

	handled, result := New(em, nil).Process(staticEnv{})
	assert.True(t, handled)
	assert.Empty(t, result.Summary.Results)
}

func TestProcess_Fixtures(t *testing.T) {
	env, err := analyze.NewAnalyzer(analyze.Options{Qualifier: analyze.QualifierPackage}).
		LoadPackages("shape-exporter/store", "shape-exporter/warehouse")
	require.NoError(t, err)

	dir := t.TempDir()
	var buf bytes.Buffer

	_, result := newProcessor(t, dir, emit.FormatLegacy, &buf).Process(env)
	require.NoError(t, result.Summary.Err())

	tests := []struct {
		file string
		want string
	}{
		{
			file: "shape-exporter_store_Person.json",
			want: "{class:\"shape-exporter/store.Person\",\n fields:\n {\n  Name:\"string\",\n  Age:\"int\"\n }\n}",
		},
		{
			file: "shape-exporter_store_Empty.json",
			want: "{class:\"shape-exporter/store.Empty\",\n fields:\n {\n  ID:\"int64\"\n }\n}",
		},
		{
			file: "shape-exporter_store_Nothing.json",
			want: "{class:\"shape-exporter/store.Nothing\",\n fields:\n {\n\n }\n}",
		},
		{
			file: "shape-exporter_store_Diamond.json",
			want: "{class:\"shape-exporter/store.Diamond\",\n fields:\n {\n  Label:\"string\"\n }\n}",
		},
		{
			file: "shape-exporter_store_OrderItem.json",
			want: "{class:\"shape-exporter/store.OrderItem\",\n fields:\n {\n  ProductID:\"int64\"\n }\n}",
		},
		{
			file: "shape-exporter_warehouse_Shipment.json",
			want: "{class:\"shape-exporter/warehouse.Shipment\",\n fields:\n {\n" +
				"  Destination:\"*warehouse.Address\",\n  ShippedAt:\"time.Time\"\n }\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, readDescriptor(t, dir, tt.file))
		})
	}

	assert.NoFileExists(t, filepath.Join(dir, "shape-exporter_store_OrderStatus.json"))
	assert.NoFileExists(t, filepath.Join(dir, "shape-exporter_store_Envelope.json"))
	assert.Len(t, result.Summary.Results, 10)
}

func TestProcess_Idempotent(t *testing.T) {
	env, err := analyze.NewAnalyzer(analyze.Options{}).LoadPackages("shape-exporter/store")
	require.NoError(t, err)

	first, second := t.TempDir(), t.TempDir()
	var buf bytes.Buffer

	newProcessor(t, first, emit.FormatJSON, &buf).Process(env)
	newProcessor(t, second, emit.FormatJSON, &buf).Process(env)

	entries, err := os.ReadDir(first)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		assert.Equal(t, readDescriptor(t, first, e.Name()), readDescriptor(t, second, e.Name()), e.Name())
	}
}
