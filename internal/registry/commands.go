package registry

// Default returns the built-in command table covering the common GitLab API
// surface. Paths follow the v4 REST API.
func Default() *Registry {
	r := New()
	for _, cmd := range []Command{
		// Projects
		{Name: "projects", HTTPMethod: "GET", Path: "/projects", Paginated: true},
		{Name: "project", HTTPMethod: "GET", Path: "/projects/:id"},
		{Name: "create_project", HTTPMethod: "POST", Path: "/projects"},
		{Name: "edit_project", HTTPMethod: "PUT", Path: "/projects/:id"},
		{Name: "delete_project", HTTPMethod: "DELETE", Path: "/projects/:id"},

		// Groups
		{Name: "groups", HTTPMethod: "GET", Path: "/groups", Paginated: true},
		{Name: "group", HTTPMethod: "GET", Path: "/groups/:id"},
		{Name: "create_group", HTTPMethod: "POST", Path: "/groups"},
		{Name: "delete_group", HTTPMethod: "DELETE", Path: "/groups/:id"},
		{Name: "group_projects", HTTPMethod: "GET", Path: "/groups/:id/projects", Paginated: true},
		{Name: "group_members", HTTPMethod: "GET", Path: "/groups/:id/members", Paginated: true},
		{Name: "add_group_member", HTTPMethod: "POST", Path: "/groups/:id/members"},
		{Name: "edit_group_member", HTTPMethod: "PUT", Path: "/groups/:id/members/:user_id"},
		{Name: "remove_group_member", HTTPMethod: "DELETE", Path: "/groups/:id/members/:user_id"},

		// Users
		{Name: "users", HTTPMethod: "GET", Path: "/users", Paginated: true},
		{Name: "user", HTTPMethod: "GET", Path: "/users/:id"},
		{Name: "current_user", HTTPMethod: "GET", Path: "/user"},
		{Name: "create_user", HTTPMethod: "POST", Path: "/users"},
		{Name: "delete_user", HTTPMethod: "DELETE", Path: "/users/:id"},

		// Issues
		{Name: "issues", HTTPMethod: "GET", Path: "/issues", Paginated: true},
		{Name: "project_issues", HTTPMethod: "GET", Path: "/projects/:id/issues", Paginated: true},
		{Name: "issue", HTTPMethod: "GET", Path: "/projects/:id/issues/:issue_iid"},
		{Name: "create_issue", HTTPMethod: "POST", Path: "/projects/:id/issues"},
		{Name: "edit_issue", HTTPMethod: "PUT", Path: "/projects/:id/issues/:issue_iid"},
		{Name: "delete_issue", HTTPMethod: "DELETE", Path: "/projects/:id/issues/:issue_iid"},

		// Merge requests
		{Name: "merge_requests", HTTPMethod: "GET", Path: "/projects/:id/merge_requests", Paginated: true},
		{Name: "merge_request", HTTPMethod: "GET", Path: "/projects/:id/merge_requests/:merge_request_iid"},
		{Name: "create_merge_request", HTTPMethod: "POST", Path: "/projects/:id/merge_requests"},
		{Name: "update_merge_request", HTTPMethod: "PUT", Path: "/projects/:id/merge_requests/:merge_request_iid"},
		{Name: "accept_merge_request", HTTPMethod: "PUT", Path: "/projects/:id/merge_requests/:merge_request_iid/merge"},

		// Repository
		{Name: "branches", HTTPMethod: "GET", Path: "/projects/:id/repository/branches", Paginated: true},
		{Name: "branch", HTTPMethod: "GET", Path: "/projects/:id/repository/branches/:branch"},
		{Name: "create_branch", HTTPMethod: "POST", Path: "/projects/:id/repository/branches"},
		{Name: "delete_branch", HTTPMethod: "DELETE", Path: "/projects/:id/repository/branches/:branch"},
		{Name: "tags", HTTPMethod: "GET", Path: "/projects/:id/repository/tags", Paginated: true},
		{Name: "create_tag", HTTPMethod: "POST", Path: "/projects/:id/repository/tags"},
		{Name: "commits", HTTPMethod: "GET", Path: "/projects/:id/repository/commits", Paginated: true},
		{Name: "commit", HTTPMethod: "GET", Path: "/projects/:id/repository/commits/:sha"},
		{Name: "commit_diff", HTTPMethod: "GET", Path: "/projects/:id/repository/commits/:sha/diff"},

		// Project members and hooks
		{Name: "project_members", HTTPMethod: "GET", Path: "/projects/:id/members", Paginated: true},
		{Name: "add_project_member", HTTPMethod: "POST", Path: "/projects/:id/members"},
		{Name: "edit_project_member", HTTPMethod: "PUT", Path: "/projects/:id/members/:user_id"},
		{Name: "remove_project_member", HTTPMethod: "DELETE", Path: "/projects/:id/members/:user_id"},
		{Name: "project_hooks", HTTPMethod: "GET", Path: "/projects/:id/hooks", Paginated: true},
		{Name: "add_project_hook", HTTPMethod: "POST", Path: "/projects/:id/hooks"},
		{Name: "delete_project_hook", HTTPMethod: "DELETE", Path: "/projects/:id/hooks/:hook_id"},

		// Misc
		{Name: "todos", HTTPMethod: "GET", Path: "/todos", Paginated: true},
		{Name: "namespaces", HTTPMethod: "GET", Path: "/namespaces", Paginated: true},
		{Name: "version", HTTPMethod: "GET", Path: "/version"},
	} {
		r.Register(cmd)
	}
	return r
}
