package json_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/apidoc"
	"github.com/fwojciec/apidoc/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Encoder implements apidoc.Encoder at compile time.
var _ apidoc.Encoder = (*json.Encoder)(nil)

func testCatalogue() *apidoc.Catalogue {
	issues := apidoc.NewSection("Issues")
	issues.Set(&apidoc.Endpoint{
		Name:   "List issues",
		Method: "GET",
		URI:    "/api/v1/issues/list{?api_token}",
		Link:   "https://apidocs.okdesk.com/apidoc#list",
		Description: []apidoc.DescriptionItem{
			apidoc.Paragraph{Text: "Returns <b>issues</b> & more"},
			apidoc.Heading{Text: "Parameters"},
			apidoc.Table{Rows: [][]string{{"Name", "Type"}, {"id"}}},
			apidoc.Note{Segments: []string{"One", "Two"}},
		},
	})
	zeta := apidoc.NewSection("Заявки")
	zeta.Set(&apidoc.Endpoint{Name: "B", Method: "POST", URI: "/b", Link: "https://x/#b"})
	zeta.Set(&apidoc.Endpoint{Name: "A", Method: "GET", URI: "/a", Link: "https://x/#a"})

	c := apidoc.NewCatalogue()
	c.Set(zeta)
	c.Set(issues)
	return c
}

// compact encodes r without indentation and without the trailing newline.
func compact(t *testing.T, r *apidoc.Result) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(json.WithIndent("")).Encode(&buf, r))
	return strings.TrimSuffix(buf.String(), "\n")
}

func TestEncoder_Encode_Compact(t *testing.T) {
	t.Parallel()

	t.Run("success shape keeps document order", func(t *testing.T) {
		t.Parallel()

		got := compact(t, apidoc.NewResult(testCatalogue()))

		assert.Equal(t, `{"data":{`+
			`"Заявки":{`+
			`"B":{"endpoint_link":"https://x/#b","method":"POST","uri":"/b","description":[]},`+
			`"A":{"endpoint_link":"https://x/#a","method":"GET","uri":"/a","description":[]}},`+
			`"Issues":{"List issues":{"endpoint_link":"https://apidocs.okdesk.com/apidoc#list","method":"GET","uri":"/api/v1/issues/list{?api_token}","description":[`+
			`["p","Returns <b>issues</b> & more"],`+
			`["h4","Parameters"],`+
			`["table",[["Name","Type"],["id"]]],`+
			`["note","One","Two"]]}}}}`, got)
	})

	t.Run("error shape", func(t *testing.T) {
		t.Parallel()

		r := &apidoc.Result{Error: "boom", Trace: "boom\nmain.run\n\tmain.go:1"}

		got := compact(t, r)

		assert.Equal(t, `{"error":"boom","traceback":"boom\nmain.run\n\tmain.go:1"}`, got)
	})

	t.Run("empty catalogue", func(t *testing.T) {
		t.Parallel()

		got := compact(t, apidoc.NewResult(apidoc.NewCatalogue()))

		assert.Equal(t, `{"data":{}}`, got)
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		s := apidoc.NewSection("S")
		s.Set(&apidoc.Endpoint{Name: "E", Description: []apidoc.DescriptionItem{apidoc.Table{}}})
		c := apidoc.NewCatalogue()
		c.Set(s)

		got := compact(t, apidoc.NewResult(c))

		assert.Contains(t, got, `"description":[["table",[]]]`)
	})
}

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("indents with four spaces", func(t *testing.T) {
		t.Parallel()

		s := apidoc.NewSection("Issues")
		s.Set(&apidoc.Endpoint{Name: "List", Method: "GET", URI: "/l", Link: "https://x/#l",
			Description: []apidoc.DescriptionItem{apidoc.Paragraph{Text: "Hi"}}})
		c := apidoc.NewCatalogue()
		c.Set(s)

		var buf bytes.Buffer
		err := json.NewEncoder().Encode(&buf, apidoc.NewResult(c))

		require.NoError(t, err)
		assert.Equal(t, `{
    "data": {
        "Issues": {
            "List": {
                "endpoint_link": "https://x/#l",
                "method": "GET",
                "uri": "/l",
                "description": [
                    [
                        "p",
                        "Hi"
                    ]
                ]
            }
        }
    }
}
`, buf.String())
	})

	t.Run("compact without indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := json.NewEncoder(json.WithIndent("")).Encode(&buf, apidoc.NewErrorResult(errors.New("boom")))

		require.NoError(t, err)
		assert.Equal(t, "{\"error\":\"boom\",\"traceback\":\"boom\"}\n", buf.String())
	})
}
