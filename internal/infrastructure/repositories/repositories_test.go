package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&DBAccount{}, &DBPaper{}, &DBActivity{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM users")
		db.Exec("DELETE FROM research_papers")
		db.Exec("DELETE FROM activity_log")
	})
	return db
}

func seedAccount(t *testing.T, repo domain.AccountRepository, email string, verified, admin bool) *domain.Account {
	t.Helper()
	code := "123456"
	account := &domain.Account{
		Name:             "Grace",
		Email:            email,
		PasswordHash:     "hashed",
		Verified:         verified,
		VerificationCode: &code,
		IsAdmin:          admin,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := repo.Create(context.Background(), account); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account
}

func TestAccountRepositoryImpl_CreateAndFind(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	account := seedAccount(t, repo, "grace@example.com", false, false)
	if account.ID == "" {
		t.Fatal("expected generated id")
	}

	byEmail, err := repo.FindByEmail(ctx, "grace@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if byEmail.ID != account.ID {
		t.Errorf("expected id %s, got %s", account.ID, byEmail.ID)
	}

	byID, err := repo.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if byID.Email != "grace@example.com" {
		t.Errorf("unexpected email %s", byID.Email)
	}

	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountRepositoryImpl_MarkVerified(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	account := seedAccount(t, repo, "cas@example.com", false, false)

	flipped, err := repo.MarkVerified(ctx, account.ID)
	if err != nil {
		t.Fatalf("mark verified: %v", err)
	}
	if !flipped {
		t.Fatal("first flip must report true")
	}

	// The second writer loses the compare-and-set.
	flipped, err = repo.MarkVerified(ctx, account.ID)
	if err != nil {
		t.Fatalf("second mark verified: %v", err)
	}
	if flipped {
		t.Error("second flip must report false")
	}

	got, err := repo.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !got.Verified {
		t.Error("account must be verified")
	}
	if got.VerificationCode != nil {
		t.Error("verification code must be cleared on flip")
	}
}

func TestAccountRepositoryImpl_DeleteAndCount(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	a := seedAccount(t, repo, "a@example.com", true, true)
	seedAccount(t, repo, "b@example.com", true, false)
	seedAccount(t, repo, "c@example.com", false, false)

	total, verified, admins, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 3 || verified != 2 || admins != 1 {
		t.Errorf("unexpected counts: total=%d verified=%d admins=%d", total, verified, admins)
	}

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}

	accounts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(accounts) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(accounts))
	}
}

func TestPaperRepositoryImpl_RoundTrip(t *testing.T) {
	repo := NewPaperRepository(newTestDB(t))
	ctx := context.Background()

	paper := &domain.ResearchPaper{
		Title:      "Tunnelling",
		Abstract:   "Results.",
		Tags:       []string{"b-tag", "a-tag"},
		AuthorID:   "acc-1",
		AuthorName: "Grace",
		FileURL:    "https://blobs.test/papers/p.pdf",
		CreatedAt:  time.Now(),
	}
	if err := repo.Create(ctx, paper); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByID(ctx, paper.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "b-tag" || got.Tags[1] != "a-tag" {
		t.Errorf("tag order must survive storage, got %v", got.Tags)
	}
	if got.UpdatedAt != nil {
		t.Error("a fresh paper has no UpdatedAt")
	}

	now := time.Now()
	got.Title = "Tunnelling, Revised"
	got.UpdatedAt = &now
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got2, _ := repo.FindByID(ctx, paper.ID)
	if got2.Title != "Tunnelling, Revised" || got2.UpdatedAt == nil {
		t.Errorf("update not persisted: %+v", got2)
	}
}

func TestPaperRepositoryImpl_ListFilterAndOrder(t *testing.T) {
	repo := NewPaperRepository(newTestDB(t))
	ctx := context.Background()

	older := &domain.ResearchPaper{Title: "Old", AuthorID: "acc-1", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &domain.ResearchPaper{Title: "New", AuthorID: "acc-2", CreatedAt: time.Now()}
	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].Title != "New" {
		t.Errorf("expected newest first, got %+v", all)
	}

	mine, err := repo.List(ctx, "acc-1")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "Old" {
		t.Errorf("expected author filter, got %+v", mine)
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 2 {
		t.Errorf("expected count 2, got %d (%v)", n, err)
	}
}

func TestActivityRepositoryImpl_AppendAndList(t *testing.T) {
	repo := NewActivityRepository(newTestDB(t))
	ctx := context.Background()

	for i, action := range []string{"User Registered", "User Login", "Paper Uploaded"} {
		err := repo.Append(ctx, &domain.ActivityEntry{
			Action:    action,
			UserID:    "acc-1",
			Timestamp: time.Now().Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected limit 2, got %d", len(entries))
	}
	if entries[0].Action != "Paper Uploaded" {
		t.Errorf("expected newest first, got %s", entries[0].Action)
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 3 {
		t.Errorf("expected count 3, got %d (%v)", n, err)
	}
}
