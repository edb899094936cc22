package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "message only",
			diag: Diagnostic{Message: "something happened"},
			want: "something happened",
		},
		{
			name: "with code",
			diag: Diagnostic{Code: CodeIgnoredElement, Message: "ignored"},
			want: "[ignored-element] ignored",
		},
		{
			name: "with declaration and member",
			diag: Diagnostic{
				Code:        CodeUnresolvedOwner,
				Message:     "owner not found",
				Declaration: "store.Person",
				Member:      "Name",
			},
			want: "[store.Person] Name: [unresolved-owner] owner not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnostics_ErrorAndMerge(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning(CodeUnresolvedOwner, "skipped", "", "X")

	var other Diagnostics
	other.AddError(CodeWriteFailed, "permission denied", "a.B", "")
	other.AddInfo(CodeExpandedMembers, "expanded", "a.C", "")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	require.EqualError(t, d.Error(), "[a.B]: [write-failed] permission denied")
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
