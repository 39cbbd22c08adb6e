package domain

import "fmt"

// DefaultSlug is used when the forum omits a topic slug.
const DefaultSlug = "topic"

// Topic is a thread summary as it appears in a listing.
// Field order matches the JSON output of the listing commands.
type Topic struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Slug               string   `json:"slug"`
	CategoryID         int      `json:"category_id"`
	Views              int      `json:"views"`
	PostsCount         int      `json:"posts_count"`
	ReplyCount         int      `json:"reply_count"`
	LikeCount          int      `json:"like_count"`
	CreatedAt          string   `json:"created_at"`
	LastPostedAt       string   `json:"last_posted_at"`
	LastPosterUsername string   `json:"last_poster_username"`
	Pinned             bool     `json:"pinned"`
	Excerpt            string   `json:"excerpt"`
	Tags               []string `json:"tags"`
	OPLikeCount        int      `json:"op_like_count"`
	HasAcceptedAnswer  bool     `json:"has_accepted_answer"`
}

// TopicFromDocument builds a Topic from a topic_list entry.
// Absent fields take their zero-equivalent defaults.
func TopicFromDocument(d Document) Topic {
	return Topic{
		ID:                 d.Int("id", 0),
		Title:              d.String("title", ""),
		Slug:               d.String("slug", DefaultSlug),
		CategoryID:         d.Int("category_id", 0),
		Views:              d.Int("views", 0),
		PostsCount:         d.Int("posts_count", 0),
		ReplyCount:         d.Int("reply_count", 0),
		LikeCount:          d.Int("like_count", 0),
		CreatedAt:          d.String("created_at", ""),
		LastPostedAt:       d.String("last_posted_at", ""),
		LastPosterUsername: d.String("last_poster_username", ""),
		Pinned:             d.Bool("pinned", false),
		Excerpt:            d.String("excerpt", ""),
		Tags:               d.Strings("tags"),
		OPLikeCount:        d.Int("op_like_count", 0),
		HasAcceptedAnswer:  d.Bool("has_accepted_answer", false),
	}
}

// TopicsFromListing extracts topic_list.topics[] from a listing document.
func TopicsFromListing(d Document) []Topic {
	raw := d.Object("topic_list").Objects("topics")
	topics := make([]Topic, len(raw))
	for i := range raw {
		topics[i] = TopicFromDocument(raw[i])
	}
	return topics
}

// URL returns the canonical topic URL under base.
func (t Topic) URL(base string) string {
	return topicURL(base, t.Slug, t.ID)
}

func topicURL(base, slug string, id int) string {
	if slug == "" {
		slug = DefaultSlug
	}
	return fmt.Sprintf("%s/t/%s/%d", base, slug, id)
}
