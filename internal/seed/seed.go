package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers   int
	NumPosts   int
	MaxDays    int
	SkipBcrypt bool
}

// Seeder populates the database with a connected set of users, posts and
// engagement rows.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll removes all seeded rows in dependency order.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	tables := []string{"likes", "shares", "comments", "follows", "posts", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// SeedUsers creates `count` users, always including a deterministic "test"
// account so developers can log in without digging through generated names.
func (s *Seeder) SeedUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	if count >= 1 {
		user, err := s.factory.CreateUser(func(u *models.User) {
			u.Username = "test"
			u.Email = "test@example.com"
			u.Name = "Test User"
		})
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	for i := len(users); i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)
		logProgress("users", i)
	}
	return users, nil
}

// SeedPosts creates `count` posts spread across the given users.
func (s *Seeder) SeedPosts(users []*models.User, count int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[s.factory.rnd.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
		logProgress("posts", i)
	}
	return posts, nil
}

// SeedEngagement wires comments, likes, shares and follow edges across the
// given users and posts.
func (s *Seeder) SeedEngagement(users []*models.User, posts []*models.Post) error {
	rnd := s.factory.rnd

	for _, post := range posts {
		for i, n := 0, rnd.Intn(5); i < n; i++ {
			commenter := users[rnd.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
		}
		for i, n := 0, rnd.Intn(8); i < n; i++ {
			if err := s.factory.CreateLike(users[rnd.Intn(len(users))], post); err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
		}
		if rnd.Float32() < 0.2 {
			if err := s.factory.CreateShare(users[rnd.Intn(len(users))], post); err != nil {
				return fmt.Errorf("failed to create share: %w", err)
			}
		}
	}

	for _, follower := range users {
		for i, n := 0, rnd.Intn(6); i < n; i++ {
			followee := users[rnd.Intn(len(users))]
			if err := s.factory.CreateFollow(follower, followee); err != nil {
				return fmt.Errorf("failed to create follow: %w", err)
			}
		}
	}
	return nil
}

// Run executes the full seeding pipeline.
func (s *Seeder) Run(opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	users, err := s.SeedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	posts, err := s.SeedPosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	if err := s.SeedEngagement(users, posts); err != nil {
		return fmt.Errorf("failed to seed engagement: %w", err)
	}

	log.Println("Database seeding completed")
	return nil
}
