// Package output writes the result of an API call to stdout as a single
// JSON document, compact by default, indented on request.
package output

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Print writes body to w followed by a newline. Valid JSON is re-rendered in
// compact or indented form; anything else passes through verbatim.
func Print(w io.Writer, body []byte, indent bool) error {
	out := body
	if gjson.ValidBytes(body) {
		if indent {
			out = pretty.Pretty(body)
			// pretty.Pretty already terminates with a newline.
			if _, err := w.Write(out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		}
		out = pretty.Ugly(body)
	}
	if _, err := fmt.Fprintln(w, string(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
