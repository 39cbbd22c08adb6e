package html

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
)

// strippedElements never reach the converter: images leave no alt text and
// inline svg icons (lightbox chrome) leave nothing at all.
const strippedElements = "img, svg"

// markdownConverter renders for a terminal: markdown characters in prose are
// not backslash-escaped and entities come out as the characters they stand for.
var markdownConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		plainTextPlugin{},
	),
	converter.WithEscapeMode(converter.EscapeModeDisabled),
)

// entityDecoder reverses the base plugin's text-node encoding of <, > and &.
var entityDecoder = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
)

// plainTextPlugin decodes entities in text nodes after the base plugin
// encoded them. Code spans and blocks never pass through text transformers.
type plainTextPlugin struct{}

func (plainTextPlugin) Name() string { return "plain-text" }

func (plainTextPlugin) Init(conv *converter.Converter) error {
	conv.Register.TextTransformer(func(_ converter.Context, content string) string {
		return entityDecoder.Replace(content)
	}, converter.PriorityLate)
	return nil
}

// toMarkdown converts cooked HTML to markdown. It never fails: input that is
// not HTML, or does not parse, is kept as literal text, and a conversion error
// falls back to the document's text content.
func toMarkdown(cooked string) string {
	text := strings.TrimSpace(cooked)
	if text == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	if !isMarkup(text, doc) {
		return text
	}
	doc.Find(strippedElements).Remove()

	body := doc.Find("body")
	fragment, err := body.Html()
	if err != nil {
		return strings.TrimSpace(body.Text())
	}

	markdown, err := markdownConverter.ConvertString(fragment)
	if err != nil {
		return strings.TrimSpace(body.Text())
	}
	return strings.TrimSpace(markdown)
}

// isMarkup reports whether text is an HTML fragment: it opens with a tag and
// parses to at least one element. Markdown produced by a previous conversion
// fails this test, so Normalise is idempotent.
func isMarkup(text string, doc *goquery.Document) bool {
	return strings.HasPrefix(text, "<") && doc.Find("body *").Length() > 0
}
