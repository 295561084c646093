// Package seed fills an empty database with sample club content for local
// development and demos.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/aiclub/website-backend/models"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	porPositions = []string{
		"President",
		"Vice President",
		"Secretary",
		"Treasurer",
		"Technical Lead",
		"Design Lead",
		"Content Lead",
		"PR Lead",
	}
	surnames       = []string{"Smith", "Johnson", "Williams", "Jones", "Brown"}
	memberSurnames = []string{"Anderson", "Taylor", "Thomas", "Jackson", "White", "Harris", "Martin", "Thompson"}
	designations   = []string{"Member", "ML Engineer", "Research Assistant", "Developer", "Data Scientist", "AI Enthusiast"}
	interests      = []string{"computer vision", "NLP", "reinforcement learning", "deep learning", "GANs"}

	blogTitles = []string{
		"Introduction to Neural Networks",
		"The Future of AI Ethics",
		"Building Your First Machine Learning Model",
		"Deep Learning vs Traditional Machine Learning",
		"Understanding Transformers in NLP",
		"Reinforcement Learning Explained",
		"Computer Vision Applications in Healthcare",
		"GANs: Creative AI Systems",
		"The AI Revolution in Education",
		"Quantum Computing and AI",
		"Explainable AI: Making AI Transparent",
		"AI for Climate Change Solutions",
	}

	projectNames = []string{
		"AI Image Generator",
		"Sentiment Analysis Tool",
		"Smart Chatbot",
		"Object Detection System",
		"Music Recommendation Engine",
		"Automated Essay Grader",
		"Stock Price Predictor",
	}
	techStacks = []string{
		"Python, TensorFlow, Flask, React",
		"Python, PyTorch, Django, Next.js",
		"JavaScript, Node.js, Express, MongoDB",
		"Python, scikit-learn, Streamlit",
		"Python, Keras, FastAPI, Vue.js",
	}
)

// Summary reports how many rows of each kind were created.
type Summary struct {
	Members   int
	BlogPosts int
	Projects  int
}

// Seeder generates sample content. The same seed and clock produce the same data.
type Seeder struct {
	db     *gorm.DB
	rng    *rand.Rand
	now    time.Time
	logger zerolog.Logger
}

func New(db *gorm.DB, seed uint64, now time.Time) *Seeder {
	return &Seeder{
		db:     db,
		rng:    rand.New(rand.NewPCG(seed, seed)),
		now:    now.UTC(),
		logger: log.With().Str("component", "seed").Logger(),
	}
}

// Run deletes every member, blog post and project and creates a fresh set. The
// whole replacement happens in one transaction, so a failed run leaves the
// previous content in place.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	members := s.members()
	var posts []models.BlogPost
	var projects []models.Project

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s.logger.Info().Msg("Clearing existing data...")
		for _, table := range []string{"blog_post_author_members", "blog_posts", "projects", "members"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return errors.Wrapf(err, "clear %s", table)
			}
		}

		if err := tx.Create(&members).Error; err != nil {
			return errors.Wrap(err, "create members")
		}
		s.logger.Info().Int("count", len(members)).Msg("Created members")

		posts = s.blogPosts(members)
		for i := range posts {
			if err := tx.Create(&posts[i]).Error; err != nil {
				return errors.Wrapf(err, "create blog post %q", *posts[i].Title)
			}
		}

		projects = s.projects()
		return errors.Wrap(tx.Create(&projects).Error, "create projects")
	})
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Members: len(members), BlogPosts: len(posts), Projects: len(projects)}
	s.logger.Info().
		Int("members", summary.Members).
		Int("blogPosts", summary.BlogPosts).
		Int("projects", summary.Projects).
		Msg("Sample data created")
	return summary, nil
}

func (s *Seeder) members() []models.Member {
	members := make([]models.Member, 0, len(porPositions)+15)

	for i, position := range porPositions {
		name := fmt.Sprintf("%s %s", strings.Fields(position)[0], surnames[i%len(surnames)])
		members = append(members, models.Member{
			Name:         ptr(name),
			Email:        ptr(strings.ToLower(strings.ReplaceAll(position, " ", ".")) + "@aiclub.org"),
			Bio:          ptr(fmt.Sprintf("Passionate AI enthusiast with expertise in %s.", s.pick(interests))),
			Batch:        ptr(fmt.Sprintf("20%d", 18+s.rng.IntN(5))),
			Designation:  ptr(position),
			IsPorHolder:  true,
			IsActive:     ptr(true),
			GithubLink:   ptr(fmt.Sprintf("https://github.com/user%d", i+1)),
			LinkedinLink: ptr(fmt.Sprintf("https://linkedin.com/in/user%d", i+1)),
			JoinedDate:   s.daysAgo(30, 365),
		})
	}

	for i := 0; i < 15; i++ {
		members = append(members, models.Member{
			Name:         ptr(fmt.Sprintf("Member %s %d", memberSurnames[i%len(memberSurnames)], i+1)),
			Email:        ptr(fmt.Sprintf("member%d@aiclub.org", i+1)),
			Bio:          ptr(fmt.Sprintf("Working on AI projects with focus on %s.", s.pick(interests))),
			Batch:        ptr(fmt.Sprintf("20%d", 18+s.rng.IntN(5))),
			Designation:  ptr(s.pick(designations)),
			IsActive:     ptr(s.rng.Float64() > 0.3),
			GithubLink:   ptr(fmt.Sprintf("https://github.com/member%d", i+1)),
			LinkedinLink: ptr(fmt.Sprintf("https://linkedin.com/in/member%d", i+1)),
			JoinedDate:   s.daysAgo(30, 730),
		})
	}
	return members
}

func (s *Seeder) blogPosts(members []models.Member) []models.BlogPost {
	posts := make([]models.BlogPost, 0, len(blogTitles))
	for i, title := range blogTitles {
		authors := s.sample(members, 1+s.rng.IntN(3))
		names := make([]string, 0, len(authors))
		for _, m := range authors {
			names = append(names, *m.Name)
		}

		published := s.now.Add(-time.Duration(1+s.rng.IntN(180)) * 24 * time.Hour)
		posts = append(posts, models.BlogPost{
			Title:            ptr(title),
			Author:           ptr(strings.Join(names, ", ")),
			AuthorMembers:    authors,
			DatePublished:    &published,
			BlogContent:      ptr(blogContent(title)),
			SmallDescription: ptr(fmt.Sprintf("Learn about %s and its impact on AI technology.", strings.ToLower(title))),
			BlogImageLink:    ptr(fmt.Sprintf("https://picsum.photos/id/%d/800/400", i+100)),
			LinkedinLink:     ptr("https://linkedin.com/company/ai-club"),
			GithubLink:       ptr("https://github.com/ai-club"),
			ViewsCount:       ptr(10 + s.rng.IntN(491)),
			IsPublished:      ptr(true),
		})
	}
	return posts
}

func (s *Seeder) projects() []models.Project {
	projects := make([]models.Project, 0, len(projectNames))
	for i, name := range projectNames {
		status := models.ProjectStatuses[i%len(models.ProjectStatuses)]
		stack := techStacks[i%len(techStacks)]

		start := s.now.Add(-time.Duration(30+s.rng.IntN(151)) * 24 * time.Hour)
		var end *datatypes.Date
		if status != models.StatusOngoing {
			end = dateOf(start.Add(time.Duration(30+s.rng.IntN(61)) * 24 * time.Hour))
		}

		projects = append(projects, models.Project{
			Name:                 ptr(name),
			ShortDescription:     ptr("A project to build " + strings.ToLower(name)),
			Description:          ptr(projectDescription(name)),
			Tagline:              ptr(fmt.Sprintf("Next-generation %s for everyone", strings.ToLower(name))),
			TechnologiesUsed:     ptr(strings.ReplaceAll(stack, ", ", ",")),
			TechStack:            ptr(stack),
			HeroSectionImageLink: ptr(fmt.Sprintf("https://picsum.photos/id/%d/1200/600", i+200)),
			Image1Link:           ptr(fmt.Sprintf("https://picsum.photos/id/%d/800/600", i+205)),
			WebsiteLink:          ptr("https://aiclub-project.example.com"),
			GithubLink:           ptr("https://github.com/ai-club/project"),
			DemoLink:             ptr("https://demo.aiclub-project.example.com"),
			StartDate:            dateOf(start),
			EndDate:              end,
			Status:               ptr(status),
		})
	}
	return projects
}

func (s *Seeder) pick(options []string) string {
	return options[s.rng.IntN(len(options))]
}

// sample returns n distinct members in random order.
func (s *Seeder) sample(members []models.Member, n int) []models.Member {
	n = min(n, len(members))
	out := make([]models.Member, 0, n)
	for _, i := range s.rng.Perm(len(members))[:n] {
		out = append(out, members[i])
	}
	return out
}

func (s *Seeder) daysAgo(minDays, maxDays int) *datatypes.Date {
	return dateOf(s.now.Add(-time.Duration(minDays+s.rng.IntN(maxDays-minDays+1)) * 24 * time.Hour))
}

func dateOf(t time.Time) *datatypes.Date {
	y, m, d := t.Date()
	date := datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &date
}

func ptr[T any](v T) *T {
	return &v
}

func blogContent(title string) string {
	return fmt.Sprintf(`# %s

Lorem ipsum dolor sit amet, consectetur adipiscing elit. Nullam auctor, nisl nec ultricies lacinia,
nisl nisl aliquam nisl, nec ultricies nisl nisl nec nisl.

## Key Points

- Point 1: Important concept in AI
- Point 2: Technical details and implementation
- Point 3: Practical applications
`, title)
}

func projectDescription(name string) string {
	return fmt.Sprintf(`# %s

%s is a state-of-the-art AI project developed by our club members. It uses machine learning techniques to solve real-world problems.

## Project Goals

1. Develop a robust AI system that can handle complex inputs
2. Create an intuitive user interface for non-technical users
3. Deploy the system in a scalable, cloud-based environment
`, name, name)
}
