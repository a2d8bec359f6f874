package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"gitlab-cli/internal/cliargs"
	"gitlab-cli/internal/logging"
	"gitlab-cli/internal/registry"

	"github.com/tidwall/gjson"
)

// perPageParam is set on paginated listings when the caller did not choose one.
const perPageParam = "per_page"

// FetchAll drives the pagination helper: it fetches every page of a listing
// command and merges the per-page arrays into one JSON array. The next page is
// taken from the X-Next-Page header, falling back to the Link rel="next"
// header for instances that omit it.
func (c *Client) FetchAll(ctx context.Context, cmd registry.Command, desc *cliargs.Descriptor) ([]byte, error) {
	if cmd.HTTPMethod != http.MethodGet {
		return nil, fmt.Errorf("command '%s' is not a listing and cannot be paginated", cmd.Name)
	}
	if !cmd.Paginated {
		logging.Logf(logging.Warn, "Command '%s' is not a known listing; fetching all pages anyway.", cmd.Name)
	}

	if _, ok := desc.Params[perPageParam]; !ok {
		desc.Params[perPageParam] = cliargs.IntValue(c.perPage)
	}

	req, err := c.newRequest(ctx, cmd, desc.Args, desc.Params)
	if err != nil {
		return nil, err
	}

	var merged []json.RawMessage
	for page := 1; ; page++ {
		resp, body, err := c.do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", page, err)
		}

		parsed := gjson.ParseBytes(body)
		if !parsed.IsArray() {
			if page == 1 {
				// Not a paged listing after all; hand the body back untouched.
				return body, nil
			}
			return nil, fmt.Errorf("page %d is not a JSON array", page)
		}
		for _, item := range parsed.Array() {
			merged = append(merged, json.RawMessage(item.Raw))
		}
		logging.Logf(logging.Debug, "Pagination: page %d fetched, %d items so far", page, len(merged))

		nextURL := nextPageURL(req, resp)
		if nextURL == "" {
			break
		}
		nextReq, err := http.NewRequestWithContext(ctx, http.MethodGet, nextURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request for next page: %w", err)
		}
		nextReq.Header = req.Header.Clone()
		req = nextReq
	}
	return marshalItems(merged), nil
}

// nextPageURL derives the URL of the following page, or "" on the last page.
func nextPageURL(req *http.Request, resp *http.Response) string {
	if next := resp.Header.Get("X-Next-Page"); next != "" {
		u := *req.URL
		query := u.Query()
		query.Set("page", next)
		u.RawQuery = query.Encode()
		return u.String()
	}
	if link, ok := parseLinkHeader(resp.Header); ok {
		return link
	}
	return ""
}

// linkHeaderRegex captures the URL and the rel value of one Link header part.
var linkHeaderRegex = regexp.MustCompile(`<([^>]+)>\s*;\s*rel\s*=\s*"?([^"]*)"?`)

// parseLinkHeader finds the URL for rel="next" in Link headers.
func parseLinkHeader(headers http.Header) (string, bool) {
	for _, linkValue := range headers.Values("Link") {
		for _, part := range strings.Split(linkValue, ",") {
			matches := linkHeaderRegex.FindStringSubmatch(strings.TrimSpace(part))
			if len(matches) == 3 && strings.EqualFold(strings.TrimSpace(matches[2]), "next") {
				return strings.TrimSpace(matches[1]), true
			}
		}
	}
	return "", false
}

// marshalItems joins raw JSON items into a single array document.
func marshalItems(items []json.RawMessage) []byte {
	if len(items) == 0 {
		return []byte("[]")
	}
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, item := range items {
		buf.Write(item)
		if i < len(items)-1 {
			buf.WriteString(",")
		}
	}
	buf.WriteString("]")
	return buf.Bytes()
}
