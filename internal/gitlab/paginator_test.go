package gitlab

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"gitlab-cli/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchAll_XNextPage(t *testing.T) {
	pages := map[string]string{
		"1": `[{"id":1},{"id":2}]`,
		"2": `[{"id":3}]`,
		"3": `[{"id":4}]`,
	}
	var perPageSeen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		if page == "" {
			page = "1"
		}
		perPageSeen = r.URL.Query().Get("per_page")
		if next := strconv.Itoa(mustAtoi(t, page) + 1); pages[next] != "" {
			w.Header().Set("X-Next-Page", next)
		}
		w.Write([]byte(pages[page]))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.PerPage = 2
	c, err := NewClient(cfg)
	require.NoError(t, err)

	cmd := registry.Command{Name: "projects", HTTPMethod: "GET", Path: "/projects", Paginated: true}
	body, err := c.FetchAll(context.Background(), cmd, newDescriptor(nil, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1},{"id":2},{"id":3},{"id":4}]`, string(body))
	assert.Equal(t, "2", perPageSeen, "per_page default from config should be applied")
}

func TestClient_FetchAll_LinkHeaderFallback(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.Write([]byte(`[{"id":2}]`))
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/api/v4/groups?page=2>; rel="next", <%s/api/v4/groups?page=1>; rel="first"`, server.URL, server.URL))
		w.Write([]byte(`[{"id":1}]`))
	}))
	defer server.Close()

	c, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	cmd := registry.Command{Name: "groups", HTTPMethod: "GET", Path: "/groups", Paginated: true}
	body, err := c.FetchAll(context.Background(), cmd, newDescriptor(nil, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1},{"id":2}]`, string(body))
}

func TestClient_FetchAll_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	cmd := registry.Command{Name: "todos", HTTPMethod: "GET", Path: "/todos", Paginated: true}
	body, err := c.FetchAll(context.Background(), cmd, newDescriptor(nil, nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestClient_FetchAll_NonArrayFirstPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":"17.0"}`))
	}))
	defer server.Close()

	c, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	cmd := registry.Command{Name: "version", HTTPMethod: "GET", Path: "/version"}
	body, err := c.FetchAll(context.Background(), cmd, newDescriptor(nil, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"17.0"}`, string(body))
}

func TestClient_FetchAll_RejectsNonGET(t *testing.T) {
	c, err := NewClient(testConfig("https://gitlab.example.com"))
	require.NoError(t, err)

	cmd := registry.Command{Name: "create_project", HTTPMethod: "POST", Path: "/projects"}
	_, err = c.FetchAll(context.Background(), cmd, newDescriptor(nil, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be paginated")
}

func TestParseLinkHeader(t *testing.T) {
	tests := []struct {
		name  string
		links []string
		want  string
		found bool
	}{
		{
			name:  "Next Present",
			links: []string{`<https://x.test/p?page=2>; rel="next", <https://x.test/p?page=9>; rel="last"`},
			want:  "https://x.test/p?page=2",
			found: true,
		},
		{
			name:  "Unquoted Rel",
			links: []string{`<https://x.test/p?page=2>; rel=next`},
			want:  "https://x.test/p?page=2",
			found: true,
		},
		{
			name:  "No Next",
			links: []string{`<https://x.test/p?page=1>; rel="first"`},
			found: false,
		},
		{
			name:  "No Header",
			links: nil,
			found: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			headers := http.Header{}
			for _, l := range tc.links {
				headers.Add("Link", l)
			}
			got, found := parseLinkHeader(headers)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.want, got)
		})
	}
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}
