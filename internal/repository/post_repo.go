package repository

import (
	"database/sql"
	"fmt"
	"time"

	"famify/internal/database"
	"famify/internal/models"
)

// PostRepository handles database operations for the family feed
type PostRepository struct {
	db *database.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *database.DB) *PostRepository {
	return &PostRepository{db: db}
}

// CreatePost inserts a post
func (r *PostRepository) CreatePost(post *models.Post) (*models.Post, error) {
	query := "INSERT INTO posts (family_id, author_id, content, visibility) VALUES (?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, post.FamilyID, post.AuthorID, post.Content, post.Visibility)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	post.ID = id
	post.CreatedAt = time.Now()
	return post, nil
}

// GetPostByID retrieves a post by ID
func (r *PostRepository) GetPostByID(postID int64) (*models.Post, error) {
	query := `
		SELECT id, family_id, COALESCE(author_id, 0), COALESCE(content, ''), visibility, created_at
		FROM posts WHERE id = ?
	`
	post := &models.Post{}
	err := r.db.QueryRow(query, postID).Scan(
		&post.ID, &post.FamilyID, &post.AuthorID, &post.Content, &post.Visibility, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// ListByFamily retrieves a family's feed, newest first, decorated with the
// author's name, like/comment counts, and whether the viewer liked each post.
func (r *PostRepository) ListByFamily(familyID, viewerID int64) ([]models.PostWithCounts, error) {
	query := `
		SELECT p.id, p.family_id, COALESCE(p.author_id, 0), COALESCE(p.content, ''), p.visibility, p.created_at,
		       COALESCE(u.name, ''),
		       (SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id),
		       (SELECT COUNT(*) FROM post_comments pc WHERE pc.post_id = p.id),
		       (SELECT COUNT(*) FROM post_likes pl2 WHERE pl2.post_id = p.id AND pl2.user_id = ?)
		FROM posts p
		LEFT JOIN users u ON p.author_id = u.id
		WHERE p.family_id = ?
		ORDER BY p.created_at DESC, p.id DESC
	`
	rows, err := r.db.Query(query, viewerID, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []models.PostWithCounts
	for rows.Next() {
		var p models.PostWithCounts
		var likedCount int
		if err := rows.Scan(&p.ID, &p.FamilyID, &p.AuthorID, &p.Content, &p.Visibility,
			&p.CreatedAt, &p.AuthorName, &p.LikeCount, &p.CommentCount, &likedCount); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		p.LikedByMe = likedCount > 0
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// AddLike records a like. Duplicate likes violate the unique constraint.
func (r *PostRepository) AddLike(postID, userID int64) (*models.PostLike, error) {
	query := "INSERT INTO post_likes (post_id, user_id) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to like post: %w", err)
	}
	return &models.PostLike{ID: id, PostID: postID, UserID: userID, CreatedAt: time.Now()}, nil
}

// HasLike checks whether a user has liked a post
func (r *PostRepository) HasLike(postID, userID int64) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM post_likes WHERE post_id = ? AND user_id = ?"
	if err := r.db.QueryRow(query, postID, userID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

// RemoveLike removes a user's like from a post
func (r *PostRepository) RemoveLike(postID, userID int64) error {
	query := "DELETE FROM post_likes WHERE post_id = ? AND user_id = ?"
	if _, err := r.db.Exec(query, postID, userID); err != nil {
		return fmt.Errorf("failed to unlike post: %w", err)
	}
	return nil
}

// AddComment inserts a comment on a post
func (r *PostRepository) AddComment(postID, userID int64, content string) (*models.PostComment, error) {
	query := "INSERT INTO post_comments (post_id, user_id, content) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, postID, userID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &models.PostComment{
		ID:        id,
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}, nil
}

// GetComments retrieves a post's comments, oldest first
func (r *PostRepository) GetComments(postID int64) ([]models.PostComment, error) {
	query := `
		SELECT id, post_id, COALESCE(user_id, 0), content, created_at
		FROM post_comments
		WHERE post_id = ?
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []models.PostComment
	for rows.Next() {
		var c models.PostComment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
