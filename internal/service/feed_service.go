package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"famify/internal/models"
	"famify/internal/repository"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyContent = errors.New("content is required")
)

// FeedService manages the family social feed. User-authored content is
// sanitized before it reaches the database.
type FeedService struct {
	postRepo         *repository.PostRepository
	notificationRepo *repository.NotificationRepository
	sanitizer        *bluemonday.Policy
}

// NewFeedService creates a new feed service
func NewFeedService(postRepo *repository.PostRepository, notificationRepo *repository.NotificationRepository) *FeedService {
	return &FeedService{
		postRepo:         postRepo,
		notificationRepo: notificationRepo,
		sanitizer:        bluemonday.StrictPolicy(),
	}
}

// sanitize strips markup from user-authored text
func (s *FeedService) sanitize(content string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(content))
}

// CreatePost publishes a post to the family feed
func (s *FeedService) CreatePost(familyID, authorID int64, content, visibility string) (*models.Post, error) {
	content = s.sanitize(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	switch visibility {
	case models.VisibilityFamily, models.VisibilityPublic:
	case "":
		visibility = models.VisibilityFamily
	default:
		return nil, fmt.Errorf("invalid visibility %q", visibility)
	}
	return s.postRepo.CreatePost(&models.Post{
		FamilyID:   familyID,
		AuthorID:   authorID,
		Content:    content,
		Visibility: visibility,
	})
}

// GetFeed retrieves a family's posts with engagement counts, newest first
func (s *FeedService) GetFeed(familyID, viewerID int64) ([]models.PostWithCounts, error) {
	return s.postRepo.ListByFamily(familyID, viewerID)
}

// getFamilyPost loads a post and verifies it belongs to the family
func (s *FeedService) getFamilyPost(postID, familyID int64) (*models.Post, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.FamilyID != familyID {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// LikePost records a like and notifies the post author. Liking an already
// liked post is a no-op.
func (s *FeedService) LikePost(postID, familyID int64, liker *models.User) error {
	post, err := s.getFamilyPost(postID, familyID)
	if err != nil {
		return err
	}

	liked, err := s.postRepo.HasLike(postID, liker.ID)
	if err != nil {
		return err
	}
	if liked {
		return nil
	}

	if _, err := s.postRepo.AddLike(postID, liker.ID); err != nil {
		return err
	}

	if post.AuthorID != liker.ID {
		s.notify(post.AuthorID, familyID, models.NotificationLike,
			"New like", fmt.Sprintf("%s liked your post", liker.Name))
	}
	return nil
}

// UnlikePost removes a like
func (s *FeedService) UnlikePost(postID, familyID, userID int64) error {
	if _, err := s.getFamilyPost(postID, familyID); err != nil {
		return err
	}
	return s.postRepo.RemoveLike(postID, userID)
}

// CommentOnPost adds a comment and notifies the post author
func (s *FeedService) CommentOnPost(postID, familyID int64, commenter *models.User, content string) (*models.PostComment, error) {
	post, err := s.getFamilyPost(postID, familyID)
	if err != nil {
		return nil, err
	}

	content = s.sanitize(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	comment, err := s.postRepo.AddComment(postID, commenter.ID, content)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != commenter.ID {
		s.notify(post.AuthorID, familyID, models.NotificationComment,
			"New comment", fmt.Sprintf("%s commented on your post", commenter.Name))
	}
	return comment, nil
}

// GetComments retrieves a post's comments, oldest first
func (s *FeedService) GetComments(postID, familyID int64) ([]models.PostComment, error) {
	if _, err := s.getFamilyPost(postID, familyID); err != nil {
		return nil, err
	}
	return s.postRepo.GetComments(postID)
}

// notify writes a notification row. Failures are logged, not propagated: the
// triggering action already succeeded.
func (s *FeedService) notify(userID, familyID int64, notifType, title, message string) {
	_, err := s.notificationRepo.Create(&models.Notification{
		UserID:   userID,
		FamilyID: familyID,
		Type:     notifType,
		Title:    title,
		Message:  message,
	})
	if err != nil {
		log.Printf("Failed to create %s notification for user %d: %v", notifType, userID, err)
	}
}
