package magazine_test

import (
	"context"
	"errors"
	"testing"

	"newsstand/internal/domain/entity"
	"newsstand/internal/infra/adapter/persistence/memory"
	articleUC "newsstand/internal/usecase/article"
	magazineUC "newsstand/internal/usecase/magazine"
)

/*────────────────────  テストヘルパー  ────────────────────*/

type env struct {
	svc       *magazineUC.Service
	articles  *articleUC.Service
	authors   *memory.AuthorRepo
	magazines *memory.MagazineRepo
	registry  *memory.ArticleRepo
}

func newEnv() *env {
	e := &env{
		authors:   memory.NewAuthorRepo(),
		magazines: memory.NewMagazineRepo(),
		registry:  memory.NewArticleRepo(),
	}
	e.svc = &magazineUC.Service{
		MagazineRepo: e.magazines,
		ArticleRepo:  e.registry,
		AuthorRepo:   e.authors,
	}
	e.articles = &articleUC.Service{
		ArticleRepo:  e.registry,
		AuthorRepo:   e.authors,
		MagazineRepo: e.magazines,
	}
	return e
}

func (e *env) addAuthor(t *testing.T, name string) *entity.Author {
	t.Helper()
	author, err := entity.NewAuthor(name)
	if err != nil {
		t.Fatalf("NewAuthor: %v", err)
	}
	if err := e.authors.Add(context.Background(), author); err != nil {
		t.Fatalf("Add author: %v", err)
	}
	return author
}

func (e *env) addMagazine(t *testing.T, name, category string) *entity.Magazine {
	t.Helper()
	mag, err := e.svc.Create(context.Background(), magazineUC.CreateInput{
		Name: name, Category: category,
	})
	if err != nil {
		t.Fatalf("Create magazine %q: %v", name, err)
	}
	return mag
}

func (e *env) publish(t *testing.T, authorID, magazineID int64, title string) {
	t.Helper()
	if _, err := e.articles.Create(context.Background(), articleUC.CreateInput{
		AuthorID: authorID, MagazineID: magazineID, Title: title,
	}); err != nil {
		t.Fatalf("publish %q: %v", title, err)
	}
}

/*────────────────────  テストケース  ────────────────────*/

/* 1. Create: 名前長のバリデーション */
func TestService_Create_validation(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	var vErr *entity.ValidationError
	if _, err := e.svc.Create(ctx, magazineUC.CreateInput{Name: "T", Category: "Tech"}); !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError for 1-char name, got %v", err)
	}
	if _, err := e.svc.Create(ctx, magazineUC.CreateInput{Name: "This Name Is Too Long For A Magazine", Category: "Tech"}); !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError for 17+-char name, got %v", err)
	}
	if _, err := e.svc.Create(ctx, magazineUC.CreateInput{Name: "Tech Today"}); !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError for empty category, got %v", err)
	}
}

/* 2. Rename/Recategorize: 書き込み毎に再バリデーション、失敗時は旧値を保持 */
func TestService_Rename_revalidates(t *testing.T) {
	e := newEnv()
	mag := e.addMagazine(t, "Tech Today", "Technology")
	ctx := context.Background()

	var vErr *entity.ValidationError
	if err := e.svc.Rename(ctx, mag.ID, "T"); !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}

	got, err := e.svc.Get(ctx, mag.ID)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.Name() != "Tech Today" {
		t.Fatalf("stored name changed on failed rename: %q", got.Name())
	}

	if err := e.svc.Rename(ctx, mag.ID, "Tech Weekly"); err != nil {
		t.Fatalf("Rename err=%v", err)
	}
	if err := e.svc.Recategorize(ctx, mag.ID, ""); !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}

	got, err = e.svc.Get(ctx, mag.ID)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.Name() != "Tech Weekly" || got.Category() != "Technology" {
		t.Fatalf("unexpected state: name=%q category=%q", got.Name(), got.Category())
	}
}

/* 3. ArticleTitles: 記事なしは nil、あればレジストリ順のタイトル */
func TestService_ArticleTitles(t *testing.T) {
	e := newEnv()
	alice := e.addAuthor(t, "Alice")
	tech := e.addMagazine(t, "Tech Today", "Technology")
	ctx := context.Background()

	titles, err := e.svc.ArticleTitles(ctx, tech.ID)
	if err != nil {
		t.Fatalf("ArticleTitles err=%v", err)
	}
	if titles != nil {
		t.Fatalf("want nil for magazine without articles, got %v", titles)
	}

	e.publish(t, alice.ID, tech.ID, "Latest Tech Trends")
	e.publish(t, alice.ID, tech.ID, "AI in Healthcare")

	titles, err = e.svc.ArticleTitles(ctx, tech.ID)
	if err != nil {
		t.Fatalf("ArticleTitles err=%v", err)
	}
	if len(titles) != 2 || titles[0] != "Latest Tech Trends" || titles[1] != "AI in Healthcare" {
		t.Fatalf("unexpected titles: %v", titles)
	}
}

/* 4. Contributors: 著者の重複は畳み込まれる */
func TestService_Contributors_distinct(t *testing.T) {
	e := newEnv()
	alice := e.addAuthor(t, "Alice")
	bob := e.addAuthor(t, "Bob")
	tech := e.addMagazine(t, "Tech Today", "Technology")

	e.publish(t, alice.ID, tech.ID, "Latest Tech Trends")
	e.publish(t, alice.ID, tech.ID, "More Tech Trends")
	e.publish(t, bob.ID, tech.ID, "AI in Healthcare")

	got, err := e.svc.Contributors(context.Background(), tech.ID)
	if err != nil {
		t.Fatalf("Contributors err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 distinct contributors, got %d", len(got))
	}
	if got[0].Name != "Alice" || got[1].Name != "Bob" {
		t.Fatalf("wrong contributors: %q, %q", got[0].Name, got[1].Name)
	}
}

/* 5. ContributingAuthors: 3本以上書いた著者のみ、いなければ nil */
func TestService_ContributingAuthors(t *testing.T) {
	e := newEnv()
	alice := e.addAuthor(t, "Alice")
	bob := e.addAuthor(t, "Bob")
	tech := e.addMagazine(t, "Tech Today", "Technology")
	ctx := context.Background()

	// 記事ゼロ → nil
	got, err := e.svc.ContributingAuthors(ctx, tech.ID)
	if err != nil {
		t.Fatalf("ContributingAuthors err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil for magazine without contributors, got %v", got)
	}

	// 2本では足りない → nil
	e.publish(t, alice.ID, tech.ID, "Latest Tech Trends")
	e.publish(t, alice.ID, tech.ID, "More Tech Trends")
	got, err = e.svc.ContributingAuthors(ctx, tech.ID)
	if err != nil {
		t.Fatalf("ContributingAuthors err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil when nobody has more than 2 articles, got %v", got)
	}

	// 3本目で閾値を超える
	e.publish(t, alice.ID, tech.ID, "Even More Tech Trends")
	e.publish(t, bob.ID, tech.ID, "AI in Healthcare")
	got, err = e.svc.ContributingAuthors(ctx, tech.ID)
	if err != nil {
		t.Fatalf("ContributingAuthors err=%v", err)
	}
	if len(got) != 1 || got[0].Name != "Alice" {
		t.Fatalf("want exactly Alice, got %v", got)
	}
}

/* 6. TopPublisher: 空レジストリは nil、それ以外は最多記事の雑誌 */
func TestService_TopPublisher(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	top, err := e.svc.TopPublisher(ctx)
	if err != nil {
		t.Fatalf("TopPublisher err=%v", err)
	}
	if top != nil {
		t.Fatalf("want nil on empty registry, got %v", top)
	}

	alice := e.addAuthor(t, "Alice")
	tech := e.addMagazine(t, "Tech Today", "Technology")
	health := e.addMagazine(t, "Health Matters", "Health")

	// 記事数 {3, 1}
	e.publish(t, alice.ID, tech.ID, "Latest Tech Trends")
	e.publish(t, alice.ID, tech.ID, "More Tech Trends")
	e.publish(t, alice.ID, tech.ID, "Even More Tech Trends")
	e.publish(t, alice.ID, health.ID, "Dietary Tips for 2024")

	top, err = e.svc.TopPublisher(ctx)
	if err != nil {
		t.Fatalf("TopPublisher err=%v", err)
	}
	if top == nil || top.ID != tech.ID {
		t.Fatalf("want Tech Today as top publisher, got %v", top)
	}
}

/* 7. TopPublisher: 同数なら先に登録された雑誌が勝つ */
func TestService_TopPublisher_tieBreak(t *testing.T) {
	e := newEnv()
	alice := e.addAuthor(t, "Alice")
	tech := e.addMagazine(t, "Tech Today", "Technology")
	health := e.addMagazine(t, "Health Matters", "Health")
	ctx := context.Background()

	e.publish(t, alice.ID, health.ID, "Dietary Tips for 2024")
	e.publish(t, alice.ID, tech.ID, "Latest Tech Trends")

	top, err := e.svc.TopPublisher(ctx)
	if err != nil {
		t.Fatalf("TopPublisher err=%v", err)
	}
	if top == nil || top.ID != tech.ID {
		t.Fatalf("tie should go to first-registered magazine, got %v", top)
	}
}

/* 8. TopPublisher: 記事がどの登録雑誌にも属さない縮退ケースは nil */
func TestService_TopPublisher_allCountsZero(t *testing.T) {
	e := newEnv()
	e.addMagazine(t, "Tech Today", "Technology")
	ctx := context.Background()

	// レジストリへ直接投入して、登録済み雑誌を指さない記事を作る
	art, err := entity.NewArticle(1, 99, "Orphaned But Valid Title")
	if err != nil {
		t.Fatalf("NewArticle: %v", err)
	}
	if err := e.registry.Add(ctx, art); err != nil {
		t.Fatalf("Add: %v", err)
	}

	top, err := e.svc.TopPublisher(ctx)
	if err != nil {
		t.Fatalf("TopPublisher err=%v", err)
	}
	if top != nil {
		t.Fatalf("want nil when every magazine count is zero, got %v", top)
	}
}

/* 9. Articles: 未登録の雑誌は ErrMagazineNotFound */
func TestService_Articles_unknownMagazine(t *testing.T) {
	e := newEnv()

	_, err := e.svc.Articles(context.Background(), 42)
	if !errors.Is(err, magazineUC.ErrMagazineNotFound) {
		t.Fatalf("want ErrMagazineNotFound, got %v", err)
	}
	if _, err := e.svc.Get(context.Background(), 0); !errors.Is(err, magazineUC.ErrInvalidMagazineID) {
		t.Fatalf("want ErrInvalidMagazineID, got %v", err)
	}
}
