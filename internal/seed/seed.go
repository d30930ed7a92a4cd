// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/auth"
	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	now := time.Now().UnixNano()
	gofakeit.Seed(now)
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{db: db, r: rand.New(rand.NewSource(now))}
}

// ClearAll removes all seeded data.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{&models.Like{}, &models.Follow{}, &models.Post{}, &models.User{}} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving. All seeded users
// share the password "password123".
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := auth.HashPassword("password123")
	if err != nil {
		return nil, err
	}

	relationship := s.r.Intn(3) + 1
	user := &models.User{
		Username:       fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		FirstName:      gofakeit.FirstName(),
		LastName:       gofakeit.LastName(),
		Email:          gofakeit.Email(),
		Password:       hashed,
		ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		CoverPicture:   fmt.Sprintf("https://picsum.photos/seed/%s/1200/400", gofakeit.UUID()),
		Bio:            truncate(gofakeit.Sentence(8), 100),
		City:           truncate(gofakeit.City(), 45),
		State:          truncate(gofakeit.State(), 45),
		Relationship:   &relationship,
	}
	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post for the given author with
// a realistic created_at spread over the last 90 days.
func (s *Seeder) CreatePost(author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:    author.ID,
		Desc:      truncate(gofakeit.Paragraph(1, 2, 8, " "), 500),
		CreatedAt: time.Now().Add(-time.Duration(s.r.Intn(90*24)) * time.Hour),
	}
	if s.r.Intn(2) == 0 {
		post.Img = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}
	for _, override := range overrides {
		override(post)
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// SeedSocialMesh creates n users and a random follow graph among them.
func (s *Seeder) SeedSocialMesh(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}

	// each user follows a handful of others
	for _, follower := range users {
		for _, followee := range s.pickOthers(users, follower, 5) {
			edge := &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
			if err := s.db.Create(edge).Error; err != nil {
				return nil, fmt.Errorf("failed to create follow edge: %w", err)
			}
		}
	}

	log.Printf("seeded %d users with follow mesh", len(users))
	return users, nil
}

// SeedEngagement creates n posts spread over the users plus random likes.
func (s *Seeder) SeedEngagement(users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to seed posts for")
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.r.Intn(len(users))]
		post, err := s.CreatePost(author)
		if err != nil {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}

	for _, post := range posts {
		author := &models.User{ID: post.UserID}
		for _, fan := range s.pickOthers(users, author, 4) {
			like := &models.Like{UserID: fan.ID, PostID: post.ID}
			if err := s.db.Create(like).Error; err != nil {
				return nil, fmt.Errorf("failed to create like: %w", err)
			}
		}
	}

	log.Printf("seeded %d posts with likes", len(posts))
	return posts, nil
}

// pickOthers selects up to max distinct users other than self.
func (s *Seeder) pickOthers(users []*models.User, self *models.User, max int) []*models.User {
	perm := s.r.Perm(len(users))
	picked := make([]*models.User, 0, max)
	for _, i := range perm {
		if users[i].ID == self.ID {
			continue
		}
		picked = append(picked, users[i])
		if len(picked) == max {
			break
		}
	}
	return picked
}

func truncate(v string, max int) string {
	if len(v) <= max {
		return v
	}
	return v[:max]
}
