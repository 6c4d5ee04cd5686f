package fixtures_test

import (
	"context"
	"testing"

	"newsstand/internal/infra/adapter/persistence/memory"
	articleUC "newsstand/internal/usecase/article"
	authorUC "newsstand/internal/usecase/author"
	magazineUC "newsstand/internal/usecase/magazine"
	"newsstand/tests/fixtures"
)

type services struct {
	authors   *authorUC.Service
	magazines *magazineUC.Service
	articles  *articleUC.Service
}

func newServices() services {
	authorRepo := memory.NewAuthorRepo()
	magazineRepo := memory.NewMagazineRepo()
	articleRepo := memory.NewArticleRepo()

	articles := &articleUC.Service{
		ArticleRepo:  articleRepo,
		AuthorRepo:   authorRepo,
		MagazineRepo: magazineRepo,
	}
	return services{
		authors: &authorUC.Service{
			AuthorRepo:   authorRepo,
			ArticleRepo:  articleRepo,
			MagazineRepo: magazineRepo,
			Publisher:    articles,
		},
		magazines: &magazineUC.Service{
			MagazineRepo: magazineRepo,
			ArticleRepo:  articleRepo,
			AuthorRepo:   authorRepo,
		},
		articles: articles,
	}
}

func seed(t *testing.T) (services, *fixtures.Seeded) {
	t.Helper()

	catalog, err := fixtures.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	svcs := newServices()
	seeded, err := catalog.Seed(context.Background(), svcs.authors, svcs.magazines, svcs.articles)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return svcs, seeded
}

/* カタログ全体を通した結合シナリオ */

func TestCatalog_TopPublisher(t *testing.T) {
	svcs, seeded := seed(t)

	top, err := svcs.magazines.TopPublisher(context.Background())
	if err != nil {
		t.Fatalf("TopPublisher: %v", err)
	}
	if top == nil || top.ID != seeded.Magazines["Tech Today"].ID {
		t.Fatalf("want Tech Today as top publisher, got %v", top)
	}
}

func TestCatalog_AuthorQueries(t *testing.T) {
	svcs, seeded := seed(t)
	ctx := context.Background()
	alice := seeded.Authors["Alice"]

	arts, err := svcs.authors.Articles(ctx, alice.ID)
	if err != nil {
		t.Fatalf("Articles: %v", err)
	}
	if len(arts) != 2 {
		t.Fatalf("want 2 articles for Alice, got %d", len(arts))
	}

	areas, err := svcs.authors.TopicAreas(ctx, alice.ID)
	if err != nil {
		t.Fatalf("TopicAreas: %v", err)
	}
	if len(areas) != 2 || areas[0] != "Technology" || areas[1] != "Health" {
		t.Fatalf("want [Technology Health], got %v", areas)
	}
}

func TestCatalog_MagazineQueries(t *testing.T) {
	svcs, seeded := seed(t)
	ctx := context.Background()
	tech := seeded.Magazines["Tech Today"]

	titles, err := svcs.magazines.ArticleTitles(ctx, tech.ID)
	if err != nil {
		t.Fatalf("ArticleTitles: %v", err)
	}
	if len(titles) != 2 || titles[0] != "Latest Tech Trends" || titles[1] != "AI in Healthcare" {
		t.Fatalf("unexpected titles: %v", titles)
	}

	contributors, err := svcs.magazines.Contributors(ctx, tech.ID)
	if err != nil {
		t.Fatalf("Contributors: %v", err)
	}
	if len(contributors) != 2 {
		t.Fatalf("want 2 contributors, got %d", len(contributors))
	}

	// 誰も3本以上書いていないので nil
	frequent, err := svcs.magazines.ContributingAuthors(ctx, tech.ID)
	if err != nil {
		t.Fatalf("ContributingAuthors: %v", err)
	}
	if frequent != nil {
		t.Fatalf("want nil contributing authors, got %v", frequent)
	}
}

func TestCatalog_RegistryOrder(t *testing.T) {
	svcs, seeded := seed(t)

	all, err := svcs.articles.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != len(seeded.Articles) {
		t.Fatalf("want %d articles, got %d", len(seeded.Articles), len(all))
	}
	for i, art := range seeded.Articles {
		if all[i].ID != art.ID {
			t.Fatalf("registry order mismatch at %d", i)
		}
	}
}
