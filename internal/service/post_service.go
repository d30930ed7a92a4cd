package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// PostService provides post and like business logic.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePostInput carries the fields accepted at post creation.
type CreatePostInput struct {
	UserID uint   `json:"userId"`
	Desc   string `json:"desc"`
	Img    string `json:"img"`
}

// UpdatePostInput is the allow-list of fields a post update may touch. The
// author, like set and timestamps are not client-writable.
type UpdatePostInput struct {
	Desc *string `json:"desc"`
	Img  *string `json:"img"`
}

func validatePostFields(desc string) error {
	if len(desc) > 500 {
		return models.NewValidationError("Description too long (max 500 characters)")
	}
	return nil
}

// CreatePost creates a post authored by the given user.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validatePostFields(in.Desc); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: in.UserID,
		Desc:   in.Desc,
		Img:    in.Img,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns the post with the given id, author fields attached when the
// author still resolves.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.enrichAuthors(ctx, []*models.Post{post})
	return post, nil
}

// UpdatePost applies the patch to the post. Only the author may update.
func (s *PostService) UpdatePost(ctx context.Context, postID, requesterID uint, patch UpdatePostInput) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return models.NewForbiddenError(models.MsgCanNotUpdatePost)
	}

	if patch.Desc != nil {
		if err := validatePostFields(*patch.Desc); err != nil {
			return err
		}
		post.Desc = *patch.Desc
	}
	if patch.Img != nil {
		post.Img = *patch.Img
	}

	return s.postRepo.Update(ctx, post)
}

// DeletePost removes the post and its likes. Only the author may delete.
func (s *PostService) DeletePost(ctx context.Context, postID, requesterID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return models.NewForbiddenError(models.MsgCanNotDeletePost)
	}
	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike likes the post when the user has not liked it yet, otherwise
// removes the like. Returns the message describing which way it went.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID uint) (string, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return "", err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return "", err
	}

	liked, err := s.postRepo.HasLike(ctx, userID, postID)
	if err != nil {
		return "", err
	}
	if liked {
		if err := s.postRepo.RemoveLike(ctx, userID, postID); err != nil {
			return "", err
		}
		return models.MsgPostUnliked, nil
	}
	if err := s.postRepo.AddLike(ctx, userID, postID); err != nil {
		return "", err
	}
	return models.MsgPostLiked, nil
}

// enrichAuthors attaches author display fields to the posts. Authors that no
// longer resolve leave their post untouched; enrichment never fails the read.
func (s *PostService) enrichAuthors(ctx context.Context, posts []*models.Post) {
	if len(posts) == 0 {
		return
	}

	seen := make(map[uint]struct{}, len(posts))
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.UserID]; ok {
			continue
		}
		seen[p.UserID] = struct{}{}
		ids = append(ids, p.UserID)
	}

	profiles, err := s.userRepo.ListBasicProfiles(ctx, ids)
	if err != nil {
		return
	}
	byID := make(map[uint]models.BasicProfile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	for _, p := range posts {
		author, ok := byID[p.UserID]
		if !ok {
			continue
		}
		p.Username = author.Username
		p.FirstName = author.FirstName
		p.LastName = author.LastName
		p.ProfilePicture = author.ProfilePicture
	}
}
