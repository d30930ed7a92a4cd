// Package service implements the business logic between the HTTP handlers
// and the repositories.
package service

import (
	"context"
	"fmt"

	"ripple/internal/auth"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// UserService provides account and social-graph business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profilePicture"`
	CoverPicture   string `json:"coverPicture"`
	Bio            string `json:"bio"`
	City           string `json:"city"`
	State          string `json:"state"`
	Relationship   *int   `json:"relationship"`
}

// UpdateUserInput is the explicit allow-list of fields a profile update may
// touch. Admin status, follower sets and timestamps are not client-writable.
type UpdateUserInput struct {
	Username       *string `json:"username"`
	FirstName      *string `json:"firstName"`
	MiddleName     *string `json:"middleName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	ProfilePicture *string `json:"profilePicture"`
	CoverPicture   *string `json:"coverPicture"`
	Bio            *string `json:"bio"`
	City           *string `json:"city"`
	State          *string `json:"state"`
	Relationship   *int    `json:"relationship"`
}

func validateRelationship(r *int) error {
	if r == nil {
		return nil
	}
	switch *r {
	case models.RelationshipSingle, models.RelationshipMarried, models.RelationshipOther:
		return nil
	}
	return models.NewValidationError("Relationship must be 1, 2 or 3")
}

func validateAccountFields(in RegisterInput) error {
	if len(in.Username) < 3 || len(in.Username) > 20 {
		return models.NewValidationError("Username must be 3-20 characters")
	}
	if len(in.FirstName) < 3 {
		return models.NewValidationError("First name must be at least 3 characters")
	}
	if len(in.LastName) < 3 {
		return models.NewValidationError("Last name must be at least 3 characters")
	}
	if len(in.Email) > 60 {
		return models.NewValidationError("Email too long (max 60 characters)")
	}
	if len(in.Password) < 6 {
		return models.NewValidationError("Password must be at least 6 characters")
	}
	if len(in.Bio) > 100 {
		return models.NewValidationError("Bio too long (max 100 characters)")
	}
	if len(in.City) > 45 {
		return models.NewValidationError("City too long (max 45 characters)")
	}
	if len(in.State) > 45 {
		return models.NewValidationError("State too long (max 45 characters)")
	}
	return validateRelationship(in.Relationship)
}

// Register creates a new account. The password is hashed before persistence;
// a duplicate username or email is reported as a conflict.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateAccountFields(in); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:       in.Username,
		FirstName:      in.FirstName,
		MiddleName:     in.MiddleName,
		LastName:       in.LastName,
		Email:          in.Email,
		Password:       hashed,
		ProfilePicture: in.ProfilePicture,
		CoverPicture:   in.CoverPicture,
		Bio:            in.Bio,
		City:           in.City,
		State:          in.State,
		Relationship:   in.Relationship,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate resolves the user by username when provided, otherwise by
// email, then verifies the password.
func (s *UserService) Authenticate(ctx context.Context, username, email, password string) (*models.User, error) {
	var (
		user *models.User
		err  error
	)
	if username != "" {
		user, err = s.userRepo.GetByUsername(ctx, username)
	} else {
		user, err = s.userRepo.GetByEmail(ctx, email)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError(models.MsgUserNotFound)
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, models.NewInvalidCredentialsError(models.MsgInvalidPassword)
	}
	return user, nil
}

// GetUser returns the user with the given id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser applies the patch to the target account. Permitted only for the
// account owner or an admin requester. A password in the patch is re-hashed.
func (s *UserService) UpdateUser(ctx context.Context, targetID, requesterID uint, isAdminRequester bool, patch UpdateUserInput) error {
	if requesterID != targetID && !isAdminRequester {
		return models.NewForbiddenError(models.MsgCanNotUpdateUser)
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.MiddleName != nil {
		user.MiddleName = *patch.MiddleName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		hashed, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return models.NewInternalError(err)
		}
		user.Password = hashed
	}
	if patch.ProfilePicture != nil {
		user.ProfilePicture = *patch.ProfilePicture
	}
	if patch.CoverPicture != nil {
		user.CoverPicture = *patch.CoverPicture
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.City != nil {
		user.City = *patch.City
	}
	if patch.State != nil {
		user.State = *patch.State
	}
	if patch.Relationship != nil {
		if err := validateRelationship(patch.Relationship); err != nil {
			return err
		}
		user.Relationship = patch.Relationship
	}

	return s.userRepo.Update(ctx, user)
}

// DeleteUser hard-deletes the target account under the same authorization
// rule as UpdateUser.
func (s *UserService) DeleteUser(ctx context.Context, targetID, requesterID uint, isAdminRequester bool) error {
	if requesterID != targetID && !isAdminRequester {
		return models.NewForbiddenError(models.MsgCanNotDeleteUser)
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, targetID)
}

// Follow adds the requester -> target edge. Self-follows and duplicate
// follows are rejected. Returns the success message naming the target.
func (s *UserService) Follow(ctx context.Context, targetID, requesterID uint) (string, error) {
	if requesterID == targetID {
		return "", models.NewForbiddenError(models.MsgCanNotFollowSelf)
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return "", err
	}
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return "", err
	}

	following, err := s.userRepo.IsFollowing(ctx, requesterID, targetID)
	if err != nil {
		return "", err
	}
	if following {
		return "", models.NewForbiddenError(models.MsgAlreadyFollowing)
	}

	if err := s.userRepo.AddFollow(ctx, requesterID, targetID); err != nil {
		return "", err
	}
	return fmt.Sprintf("You have started following %s", target.Username), nil
}

// Unfollow removes the requester -> target edge; the mirror of Follow.
func (s *UserService) Unfollow(ctx context.Context, targetID, requesterID uint) (string, error) {
	if requesterID == targetID {
		return "", models.NewForbiddenError(models.MsgCanNotUnfollowSelf)
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return "", err
	}

	following, err := s.userRepo.IsFollowing(ctx, requesterID, targetID)
	if err != nil {
		return "", err
	}
	if !following {
		return "", models.NewForbiddenError(models.MsgNotFollowing)
	}

	if err := s.userRepo.RemoveFollow(ctx, requesterID, targetID); err != nil {
		return "", err
	}
	return fmt.Sprintf("You have unfollowed %s", target.Username), nil
}

// BasicProfiles is a fail-soft batch lookup used for display enrichment:
// any storage error degrades to an empty result instead of failing the
// caller's request.
func (s *UserService) BasicProfiles(ctx context.Context, ids []uint) []models.BasicProfile {
	profiles, err := s.userRepo.ListBasicProfiles(ctx, ids)
	if err != nil {
		return []models.BasicProfile{}
	}
	return profiles
}
