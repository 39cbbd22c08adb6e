package listing

// ThreadView is the human rendering model of one page of a topic.
type ThreadView struct {
	ID    int
	Title string
	URL   string
	Page  int
	Posts []PostView
}

// PostView is one rendered post.
type PostView struct {
	Number   int
	Username string
	Age      string
	Likes    int
	Content  string
}

// ThreadRecord is the machine-readable form of one page of a topic.
type ThreadRecord struct {
	ID    int          `json:"id"`
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Page  int          `json:"page"`
	Posts []PostRecord `json:"posts"`
}

// PostRecord is the machine-readable form of one post.
type PostRecord struct {
	PostNumber int    `json:"post_number"`
	Username   string `json:"username"`
	CreatedAt  string `json:"created_at"`
	LikeCount  int    `json:"like_count"`
	Content    string `json:"content"`
}
