package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ldo-cli/internal/normalisers/html"
)

// Mode selects the kind of output a Formatter produces.
type Mode int

const (
	// ModeHuman produces Table and ThreadView models.
	ModeHuman Mode = iota

	// ModeJSON produces field-preserving records.
	ModeJSON
)

// ModeFor maps a --json style flag onto a Mode.
func ModeFor(jsonOutput bool) Mode {
	if jsonOutput {
		return ModeJSON
	}
	return ModeHuman
}

// String returns the string representation.
func (m Mode) String() string {
	if m == ModeJSON {
		return "json"
	}
	return "human"
}

// maxTags is how many tags are appended to a title.
const maxTags = 3

// ReadTip is the footer of every topic table.
const ReadTip = "Tip: ldo read <ID> to read a topic"

// Output is the result of a formatting call. Exactly one of Table, Thread or
// Records is set: Records in JSON mode, Table or Thread in human mode.
type Output struct {
	Mode    Mode
	Table   *Table
	Thread  *ThreadView
	Records any
}

// Formatter builds display models for one output mode.
type Formatter struct {
	mode       Mode
	now        func() time.Time
	baseURL    string
	normaliser driven.ContentNormaliser
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock sets the clock used for relative times.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		f.now = now
	}
}

// WithBaseURL sets the forum base used for topic URLs.
func WithBaseURL(base string) Option {
	return func(f *Formatter) {
		f.baseURL = strings.TrimRight(base, "/")
	}
}

// WithNormaliser sets the normaliser applied to post bodies.
func WithNormaliser(n driven.ContentNormaliser) Option {
	return func(f *Formatter) {
		f.normaliser = n
	}
}

// New creates a Formatter. Without WithNormaliser, post bodies go through the
// HTML normaliser for the configured base URL.
func New(mode Mode, opts ...Option) *Formatter {
	f := &Formatter{
		mode:    mode,
		now:     time.Now,
		baseURL: domain.DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.normaliser == nil {
		n, err := html.New(html.WithBaseURL(f.baseURL))
		if err != nil {
			f.normaliser = passthrough{}
		} else {
			f.normaliser = n
		}
	}
	return f
}

// Mode returns the formatter's output mode.
func (f *Formatter) Mode() Mode {
	return f.mode
}

// Topics formats the first limit topics. A limit of zero or less, or one
// beyond the input length, keeps every topic. The input slice is not modified.
func (f *Formatter) Topics(title string, topics []domain.Topic, limit int) Output {
	shown := head(topics, limit)

	if f.mode == ModeJSON {
		records := make([]domain.Topic, len(shown))
		copy(records, shown)
		return Output{Mode: f.mode, Records: records}
	}

	now := f.now()
	t := &Table{
		Title: title,
		Columns: []Column{
			{Header: "ID", Align: AlignRight, Role: RoleID, Width: 7},
			{Header: "Title", Align: AlignLeft, Role: RoleText},
			{Header: "Views", Align: AlignRight, Role: RoleCount, Width: 7},
			{Header: "Likes", Align: AlignRight, Role: RoleLikes, Width: 7},
			{Header: "Replies", Align: AlignRight, Role: RoleCount, Width: 7},
			{Header: "Activity", Align: AlignRight, Role: RoleMuted, Width: 8},
		},
		Rows:   make([]Row, 0, len(shown)),
		Footer: ReadTip,
	}

	for _, topic := range shown {
		titleCell := Cell{Text: topic.Title, Suffix: tagTokens(topic.Tags)}
		if topic.Pinned {
			titleCell.Emphasis = EmphasisPinned
		}
		t.Rows = append(t.Rows, Row{
			{Text: strconv.Itoa(topic.ID)},
			titleCell,
			{Text: CompactCount(topic.Views)},
			{Text: CompactCount(topic.LikeCount)},
			{Text: CompactCount(topic.ReplyCount)},
			{Text: RelativeTime(topic.LastPostedAt, now)},
		})
	}

	return Output{Mode: f.mode, Table: t}
}

// Categories formats every category.
func (f *Formatter) Categories(categories []domain.Category) Output {
	if f.mode == ModeJSON {
		records := make([]domain.Category, len(categories))
		copy(records, categories)
		return Output{Mode: f.mode, Records: records}
	}

	t := &Table{
		Title: "Categories",
		Columns: []Column{
			{Header: "ID", Align: AlignRight, Role: RoleText, Width: 5},
			{Header: "Name", Align: AlignLeft, Role: RoleText},
			{Header: "Slug", Align: AlignLeft, Role: RoleMuted},
			{Header: "Topics", Align: AlignRight, Role: RoleCount, Width: 8},
			{Header: "Posts", Align: AlignRight, Role: RoleCount, Width: 10},
		},
		Rows: make([]Row, 0, len(categories)),
	}

	for _, c := range categories {
		t.Rows = append(t.Rows, Row{
			{Text: strconv.Itoa(c.ID)},
			{Text: c.Name},
			{Text: c.Slug},
			{Text: CompactCount(c.TopicCount)},
			{Text: CompactCount(c.PostCount)},
		})
	}

	return Output{Mode: f.mode, Table: t}
}

// Thread formats the first limit posts of a thread page.
func (f *Formatter) Thread(thread domain.Thread, limit int) Output {
	posts := head(thread.Posts, limit)
	url := thread.URL(f.baseURL)

	if f.mode == ModeJSON {
		record := ThreadRecord{
			ID:    thread.ID,
			Title: thread.Title,
			URL:   url,
			Page:  thread.Page,
			Posts: make([]PostRecord, len(posts)),
		}
		for i, p := range posts {
			record.Posts[i] = PostRecord{
				PostNumber: p.Number,
				Username:   p.Username,
				CreatedAt:  p.CreatedAt,
				LikeCount:  p.LikeCount,
				Content:    f.normaliser.Normalise(p.Cooked),
			}
		}
		return Output{Mode: f.mode, Records: record}
	}

	now := f.now()
	view := &ThreadView{
		ID:    thread.ID,
		Title: thread.Title,
		URL:   url,
		Page:  thread.Page,
		Posts: make([]PostView, len(posts)),
	}
	for i, p := range posts {
		view.Posts[i] = PostView{
			Number:   p.Number,
			Username: p.Username,
			Age:      RelativeTime(p.CreatedAt, now),
			Likes:    p.LikeCount,
			Content:  f.normaliser.Normalise(p.Cooked),
		}
	}
	return Output{Mode: f.mode, Thread: view}
}

// TopicsTitle returns the table title for a listing request.
func TopicsTitle(req domain.ListingRequest) string {
	var title string
	switch req.Kind {
	case domain.ListingTop:
		period := req.Period
		if period == "" {
			period = domain.DefaultPeriod
		}
		title = fmt.Sprintf("Top Topics (%s)", period)
	case domain.ListingHot:
		title = "Hot Topics"
	default:
		title = "Latest Topics"
	}
	if !req.Category.IsZero() {
		title += " in " + req.Category.Slug
	}
	return title
}

func tagTokens(tags []string) []string {
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	tokens := make([]string, 0, len(tags))
	for _, tag := range tags {
		tokens = append(tokens, "["+tag+"]")
	}
	return tokens
}

func head[T any](items []T, limit int) []T {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}

type passthrough struct{}

func (passthrough) Normalise(s string) string { return s }
