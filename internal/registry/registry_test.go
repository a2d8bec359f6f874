package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	r := New()
	r.Register(Command{Name: "projects", HTTPMethod: "GET", Path: "/projects", Paginated: true})

	cmd, err := r.Lookup("projects")
	require.NoError(t, err)
	assert.Equal(t, "GET", cmd.HTTPMethod)

	_, err = r.Lookup("nonsense")
	require.Error(t, err)
	var unknown *UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nonsense", unknown.Name)
	assert.Contains(t, err.Error(), "unknown command 'nonsense'")
}

func TestCommand_BindPath(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		args    []string
		want    string
		wantErr string
	}{
		{
			name: "No Placeholders",
			cmd:  Command{Name: "projects", Path: "/projects"},
			args: nil,
			want: "/projects",
		},
		{
			name: "Single Placeholder",
			cmd:  Command{Name: "project", Path: "/projects/:id"},
			args: []string{"42"},
			want: "/projects/42",
		},
		{
			name: "Multiple Placeholders",
			cmd:  Command{Name: "issue", Path: "/projects/:id/issues/:issue_iid"},
			args: []string{"42", "7"},
			want: "/projects/42/issues/7",
		},
		{
			name: "Escapes Namespaced Project Path",
			cmd:  Command{Name: "project", Path: "/projects/:id"},
			args: []string{"group/repo"},
			want: "/projects/group%2Frepo",
		},
		{
			name:    "Too Few Args",
			cmd:     Command{Name: "issue", Path: "/projects/:id/issues/:issue_iid"},
			args:    []string{"42"},
			wantErr: "takes 2 argument(s), got 1",
		},
		{
			name:    "Too Many Args",
			cmd:     Command{Name: "projects", Path: "/projects"},
			args:    []string{"42"},
			wantErr: "takes 0 argument(s), got 1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cmd.BindPath(tc.args)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDefault_Table(t *testing.T) {
	r := Default()

	// Spot checks on the built-in surface.
	for _, tc := range []struct {
		name      string
		method    string
		paginated bool
	}{
		{"projects", "GET", true},
		{"groups", "GET", true},
		{"create_issue", "POST", false},
		{"edit_project_member", "PUT", false},
		{"delete_branch", "DELETE", false},
		{"version", "GET", false},
	} {
		cmd, err := r.Lookup(tc.name)
		require.NoError(t, err, "expected %q to be registered", tc.name)
		assert.Equal(t, tc.method, cmd.HTTPMethod, tc.name)
		assert.Equal(t, tc.paginated, cmd.Paginated, tc.name)
	}

	names := r.Names()
	assert.True(t, len(names) > 30)
	assert.IsIncreasing(t, names)
}
