package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func TestJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, JSON(map[string]int{"a": 1}))
	assert.Equal(t, "{}", JSON(make(chan int)))
}

func TestScriptJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ScriptJSON("cfg", map[string]string{"q": "</script><script>alert(1)"}).Render(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<script type="application/json" id="cfg">`))
	assert.Equal(t, 1, strings.Count(out, "</script>"), "only the element's own closing tag")
	assert.Contains(t, out, `\u003c/script\u003e`)
}

func TestTemplAdapters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Templ(P(g.Text("<hi>"))).Render(context.Background(), &buf))
	assert.Equal(t, "<p>&lt;hi&gt;</p>", buf.String())

	buf.Reset()
	node := Node(context.Background(), templ.Raw("<b>x</b>"))
	require.NoError(t, Div(node).Render(&buf))
	assert.Equal(t, "<div><b>x</b></div>", buf.String())
}
