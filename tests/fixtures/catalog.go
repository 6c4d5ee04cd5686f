// Package fixtures provides reusable test data for the catalog test suites.
// The canonical fixture is a small YAML-described catalog (two magazines, two
// authors, three articles) seeded through the regular use case services so
// tests exercise the same registration paths as production callers.
package fixtures

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"newsstand/internal/domain/entity"
	articleUC "newsstand/internal/usecase/article"
	authorUC "newsstand/internal/usecase/author"
	magazineUC "newsstand/internal/usecase/magazine"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog describes a set of magazines, authors, and articles to register.
// Articles reference their author and magazine by name.
type Catalog struct {
	Magazines []MagazineFixture `yaml:"magazines"`
	Authors   []AuthorFixture   `yaml:"authors"`
	Articles  []ArticleFixture  `yaml:"articles"`
}

// MagazineFixture describes a magazine to register.
type MagazineFixture struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// AuthorFixture describes an author to register.
type AuthorFixture struct {
	Name string `yaml:"name"`
}

// ArticleFixture describes an article to register, referencing its author and
// magazine by fixture name.
type ArticleFixture struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// Seeded holds the entities registered from a catalog, keyed by fixture name.
type Seeded struct {
	Authors   map[string]*entity.Author
	Magazines map[string]*entity.Magazine
	Articles  []*entity.Article
}

// LoadCatalog parses the embedded canonical catalog.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog fixture: %w", err)
	}
	return &c, nil
}

// Seed registers the catalog contents through the given services, in fixture
// order, and returns the created entities keyed by name.
func (c *Catalog) Seed(
	ctx context.Context,
	authors *authorUC.Service,
	magazines *magazineUC.Service,
	articles *articleUC.Service,
) (*Seeded, error) {
	seeded := &Seeded{
		Authors:   make(map[string]*entity.Author, len(c.Authors)),
		Magazines: make(map[string]*entity.Magazine, len(c.Magazines)),
	}

	for _, f := range c.Magazines {
		mag, err := magazines.Create(ctx, magazineUC.CreateInput{Name: f.Name, Category: f.Category})
		if err != nil {
			return nil, fmt.Errorf("seed magazine %q: %w", f.Name, err)
		}
		seeded.Magazines[f.Name] = mag
	}

	for _, f := range c.Authors {
		author, err := authors.Create(ctx, authorUC.CreateInput{Name: f.Name})
		if err != nil {
			return nil, fmt.Errorf("seed author %q: %w", f.Name, err)
		}
		seeded.Authors[f.Name] = author
	}

	for _, f := range c.Articles {
		author, ok := seeded.Authors[f.Author]
		if !ok {
			return nil, fmt.Errorf("article %q references unknown author %q", f.Title, f.Author)
		}
		magazine, ok := seeded.Magazines[f.Magazine]
		if !ok {
			return nil, fmt.Errorf("article %q references unknown magazine %q", f.Title, f.Magazine)
		}

		art, err := articles.Create(ctx, articleUC.CreateInput{
			AuthorID:   author.ID,
			MagazineID: magazine.ID,
			Title:      f.Title,
		})
		if err != nil {
			return nil, fmt.Errorf("seed article %q: %w", f.Title, err)
		}
		seeded.Articles = append(seeded.Articles, art)
	}

	return seeded, nil
}
