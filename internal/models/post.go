package models

import "time"

// Post visibility
const (
	VisibilityFamily = "family"
	VisibilityPublic = "public"
)

// Post is an entry in the family social feed
type Post struct {
	ID         int64     `json:"id"`
	FamilyID   int64     `json:"family_id"`
	AuthorID   int64     `json:"author_id"`
	Content    string    `json:"content"`
	Visibility string    `json:"visibility"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostLike records a user liking a post
type PostLike struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PostComment is a comment on a post
type PostComment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PostWithCounts decorates a post with author name and engagement counts
type PostWithCounts struct {
	Post
	AuthorName   string `json:"author_name"`
	LikeCount    int    `json:"like_count"`
	CommentCount int    `json:"comment_count"`
	LikedByMe    bool   `json:"liked_by_me"`
}
