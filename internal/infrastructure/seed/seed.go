package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/shared/logger"
)

type articleFixture struct {
	Title string   `yaml:"title"`
	Body  string   `yaml:"body"`
	Tags  []string `yaml:"tags"`
}

type fixtureFile struct {
	Articles []articleFixture `yaml:"articles"`
}

// Seeder loads fixture data into an empty database at startup.
type Seeder struct {
	kbRepo kb.Repository
	logger logger.Interface
}

func NewSeeder(kbRepo kb.Repository, log logger.Interface) *Seeder {
	return &Seeder{
		kbRepo: kbRepo,
		logger: log.With("component", "seed"),
	}
}

// SeedKBArticles loads knowledge-base articles from a YAML file. It is a
// no-op when the path is empty or articles already exist, so it is safe to
// run on every boot.
func (s *Seeder) SeedKBArticles(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	existing, err := s.kbRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing articles: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Debugw("knowledge base already populated, skipping seed",
			"articles", len(existing))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, fx := range file.Articles {
		article, err := kb.NewArticle(fx.Title, fx.Body, fx.Tags)
		if err != nil {
			return fmt.Errorf("invalid seed article %q: %w", fx.Title, err)
		}
		if err := s.kbRepo.Create(ctx, article); err != nil {
			return fmt.Errorf("failed to seed article %q: %w", fx.Title, err)
		}
	}

	s.logger.Infow("seeded knowledge base", "articles", len(file.Articles))
	return nil
}
