package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNormaliser(t *testing.T) *Normaliser {
	t.Helper()
	n, err := New()
	require.NoError(t, err)
	return n
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(WithBaseURL("https://"))
	assert.Error(t, err)
}

func TestNew_UnknownStage(t *testing.T) {
	_, err := New(WithStages("no-such-stage"))
	assert.Error(t, err)
}

func TestStages(t *testing.T) {
	n := newNormaliser(t)
	stages := n.Stages()
	require.NotEmpty(t, stages)
	assert.Equal(t, StageMarkdown, stages[0])
	assert.Contains(t, stages, "dimension-caption")
	assert.Contains(t, stages, "blank-lines")
}

func TestNormalise_Empty(t *testing.T) {
	n := newNormaliser(t)
	assert.Equal(t, "", n.Normalise(""))
	assert.Equal(t, "", n.Normalise("   \n\t "))
}

func TestNormalise_Paragraphs(t *testing.T) {
	n := newNormaliser(t)
	got := n.Normalise("<p>Hello <strong>world</strong></p><p>Second line</p>")

	assert.Contains(t, got, "Hello **world**")
	assert.Contains(t, got, "Second line")
	assert.NotContains(t, got, "<p>")
	assert.Equal(t, strings.TrimSpace(got), got)
}

func TestNormalise_Link(t *testing.T) {
	n := newNormaliser(t)
	got := n.Normalise(`<p>See <a href="https://example.com/docs">the docs</a></p>`)
	assert.Contains(t, got, "[the docs](https://example.com/docs)")
}

func TestNormalise_StripsImages(t *testing.T) {
	n := newNormaliser(t)
	got := n.Normalise(`<p>Before <img src="https://linux.do/uploads/a.png" alt="screenshot"> after</p>`)

	assert.NotContains(t, got, "![")
	assert.NotContains(t, got, "a.png")
	assert.NotContains(t, got, "screenshot")
	assert.Contains(t, got, "Before")
	assert.Contains(t, got, "after")
}

func TestNormalise_DimensionCaption(t *testing.T) {
	n := newNormaliser(t)
	got := n.Normalise(`<a href="https://linux.do/uploads/x.png">photo 800x600</a>`)
	assert.Equal(t, "[image]", got)
}

func TestNormalise_Lightbox(t *testing.T) {
	n := newNormaliser(t)
	cooked := `<p>Look:</p>` +
		`<div class="lightbox-wrapper"><a class="lightbox" href="https://linux.do/uploads/default/original/4X/b.png">` +
		`<img src="https://linux.do/uploads/default/optimized/4X/b_690x388.png" alt="image" width="690" height="388">` +
		`<div class="meta"><svg class="fa d-icon"><use href="#far-image"></use></svg>` +
		`<span class="filename">image</span><span class="informations">1920×1080 234 KB</span></div></a></div>`

	got := n.Normalise(cooked)
	assert.Contains(t, got, "Look:")
	assert.Contains(t, got, "[image]")
	assert.NotContains(t, got, "1920×1080")
	assert.NotContains(t, got, "b_690x388")
}

func TestNormalise_EmptyImageLink(t *testing.T) {
	n := newNormaliser(t)
	got := n.Normalise(`<a href="https://linux.do/uploads/x.png"><img src="https://linux.do/uploads/x.png"></a>`)
	assert.Equal(t, "", got)
}

func TestNormalise_MalformedHTML(t *testing.T) {
	n := newNormaliser(t)
	got := n.Normalise("<p>unclosed <b>bold")
	assert.Contains(t, got, "unclosed")
	assert.Contains(t, got, "bold")
}

func TestNormalise_PlainText(t *testing.T) {
	n := newNormaliser(t)
	assert.Equal(t, "just text", n.Normalise("just text"))
}

func TestClean_EmptyLabel(t *testing.T) {
	n := newNormaliser(t)
	assert.Equal(t, "", n.Clean("[](https://linux.do/uploads/x.png)"))
}

func TestClean_BlankLines(t *testing.T) {
	n := newNormaliser(t)
	assert.Equal(t, "a\n\nb", n.Clean("a\n\n\n\n\nb"))
}

func TestClean_UploadLine(t *testing.T) {
	n := newNormaliser(t)
	got := n.Clean("first\n(https://linux.do/uploads/default/original/a.png)\nsecond")
	assert.Equal(t, "first\nsecond", got)
}

func TestClean_UploadLineCustomForum(t *testing.T) {
	n, err := New(WithBaseURL("https://forum.example.org"))
	require.NoError(t, err)

	got := n.Clean("first\n(https://forum.example.org/uploads/a.png)\nsecond")
	assert.Equal(t, "first\nsecond", got)

	kept := "first\n(https://linux.do/uploads/a.png)\nsecond"
	assert.Equal(t, kept, n.Clean(kept))
}

func TestClean_Idempotent(t *testing.T) {
	n := newNormaliser(t)
	inputs := []string{
		"",
		"plain",
		"[photo 800x600](https://linux.do/uploads/x.png)",
		"x[[]()]()y",
		"a\n\n\n\n\n\nb\n\n\n\nc",
		"  padded  \n\n\n",
		"top\n  (https://linux.do/uploads/y.jpg)  \n\n\n[](u)\nend",
	}
	for _, in := range inputs {
		once := n.Clean(in)
		assert.Equal(t, once, n.Clean(once), "input %q", in)
	}
}

func TestNormalise_Idempotent(t *testing.T) {
	n := newNormaliser(t)
	inputs := []string{
		"<p>Hello</p>",
		"<p>Hello <strong>world</strong> and <em>you</em></p>",
		`<p>See <a href="https://example.com/docs">the docs</a></p>`,
		`<a href="https://linux.do/uploads/x.png">photo 800x600</a>`,
		"<p>a</p><p></p><p></p><p></p><p>b</p>",
		"<ul><li>one</li><li>two</li></ul>",
		"<ol><li>first</li><li>second</li></ol>",
		"<p>use <code>go test ./...</code> here</p>",
		"<pre><code>x := 1\n\n\n\ny := 2</code></pre>",
		"<p>x &lt; y &amp;&amp; z &gt; 0</p>",
		"<blockquote><p>quoted *stars* and_under_scores</p></blockquote>",
		"<h2>Title</h2><p>body</p>",
		"[image]",
		"plain text",
	}
	for _, in := range inputs {
		once := n.Normalise(in)
		assert.Equal(t, once, n.Normalise(once), "input %q", in)
		assert.Equal(t, once, n.Clean(once), "input %q", in)
		assert.NotContains(t, once, "\n\n\n", "input %q", in)
	}
}

func TestNormalise_NoMarkdownEscaping(t *testing.T) {
	n := newNormaliser(t)

	assert.Equal(t, "Hello **world**", n.Normalise("<p>Hello <strong>world</strong></p>"))
	assert.Equal(t, "[image]", n.Normalise(`<a href="https://linux.do/uploads/x.png">photo 800x600</a>`))
	assert.Equal(t, "1 * 2 = 2", n.Normalise("<p>1 * 2 = 2</p>"))
	assert.NotContains(t, n.Normalise("<p>snake_case_name</p>"), "\\")
}

func TestNormalise_DecodesEntities(t *testing.T) {
	n := newNormaliser(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "comparison", input: "<p>x &lt; y &amp;&amp; z &gt; 0</p>", want: "x < y && z > 0"},
		{name: "tag text", input: "<p>tag &lt;div&gt;</p>", want: "tag <div>"},
		{name: "ampersand", input: "<p>Tom &amp; Jerry</p>", want: "Tom & Jerry"},
		{name: "double encoded", input: "<p>write &amp;lt; for &lt;</p>", want: "write &lt; for <"},
		{name: "code block", input: "<pre><code>if a &lt; b &amp;&amp; c &gt; d {}</code></pre>", want: "```\nif a < b && c > d {}\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalise(tt.input))
		})
	}
}

func TestNormalise_MarkdownStaysLiteral(t *testing.T) {
	n := newNormaliser(t)

	for _, in := range []string{
		"Hello **world**",
		"- one\n- two",
		"```\nx := 1\n```",
		"[the docs](https://example.com/docs)",
		"a < b and c > d",
	} {
		assert.Equal(t, in, n.Normalise(in))
	}
}
