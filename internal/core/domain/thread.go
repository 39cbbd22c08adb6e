package domain

const (
	// UnknownTitle is shown when a topic detail has no title.
	UnknownTitle = "Unknown"

	// UnknownUser is shown when a post has no username.
	UnknownUser = "?"
)

// Post is one entry of a topic's post stream.
// Posts have no identity beyond their position in the stream.
type Post struct {
	Number    int
	Username  string
	CreatedAt string
	LikeCount int
	Cooked    string
}

// PostFromDocument builds a Post from a post_stream.posts entry.
func PostFromDocument(d Document) Post {
	return Post{
		Number:    d.Int("post_number", 0),
		Username:  d.String("username", UnknownUser),
		CreatedAt: d.String("created_at", ""),
		LikeCount: d.Int("like_count", 0),
		Cooked:    d.String("cooked", ""),
	}
}

// Thread is a topic detail document with one page of its post stream.
type Thread struct {
	ID         int
	Title      string
	Slug       string
	PostsCount int
	Page       int
	Posts      []Post
}

// ThreadFromDocument builds a Thread from a /t/{id}.json document.
// id and page describe the request; the document's own id wins when present.
func ThreadFromDocument(d Document, id, page int) Thread {
	raw := d.Object("post_stream").Objects("posts")
	posts := make([]Post, len(raw))
	for i := range raw {
		posts[i] = PostFromDocument(raw[i])
	}

	return Thread{
		ID:         d.Int("id", id),
		Title:      d.String("title", UnknownTitle),
		Slug:       d.String("slug", DefaultSlug),
		PostsCount: d.Int("posts_count", len(posts)),
		Page:       page,
		Posts:      posts,
	}
}

// URL returns the canonical topic URL under base.
func (t Thread) URL(base string) string {
	return topicURL(base, t.Slug, t.ID)
}
