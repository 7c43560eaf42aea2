package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dotpro/tutorial-web/internal/domain"
	"github.com/dotpro/tutorial-web/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createUser(t *testing.T, repo *sqlite.UserRepository, name string, age int, hobby string) *domain.User {
	t.Helper()
	user := &domain.User{Name: name, Age: age, Hobby: hobby}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create %s: %v", name, err)
	}
	return user
}

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	user := createUser(t, repo, "Alice", 30, "reading")

	if user.ID == 0 {
		t.Fatal("expected user ID to be set after create")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestUserRepository_Create_AssignsIncreasingIDs(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	first := createUser(t, repo, "A", 1, "a")
	second := createUser(t, repo, "B", 2, "b")

	if second.ID <= first.ID {
		t.Fatalf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}
}

func TestUserRepository_Create_DoesNotReuseDeletedIDs(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	first := createUser(t, repo, "A", 1, "a")
	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	second := createUser(t, repo, "B", 2, "b")

	if second.ID <= first.ID {
		t.Fatalf("expected id greater than deleted id %d, got %d", first.ID, second.ID)
	}
}

func TestUserRepository_Create_DuplicateNamesAllowed(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	createUser(t, repo, "Same", 10, "x")
	createUser(t, repo, "Same", 11, "y")

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserRepository_List_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected no users, got %d", len(users))
	}
}

func TestUserRepository_List_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	a := createUser(t, repo, "A", 1, "a")
	b := createUser(t, repo, "B", 2, "b")
	c := createUser(t, repo, "C", 3, "c")

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []int64{c.ID, b.ID, a.ID}
	var got []int64
	for _, u := range users {
		got = append(got, u.ID)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
	if users[0].Name != "C" || users[0].Age != 3 || users[0].Hobby != "c" {
		t.Fatalf("unexpected head row: %+v", users[0])
	}
}

func TestUserRepository_List_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	createUser(t, repo, "A", 1, "a")
	createUser(t, repo, "B", 2, "b")

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("first List: %v", err)
	}
	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("second List: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical listings, got %+v and %+v", first, second)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	a := createUser(t, repo, "A", 1, "a")
	b := createUser(t, repo, "B", 2, "b")
	c := createUser(t, repo, "C", 3, "c")

	if err := repo.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 || users[0].ID != c.ID || users[1].ID != a.ID {
		t.Fatalf("expected only %d and %d to remain, got %+v", c.ID, a.ID, users)
	}
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	createUser(t, repo, "A", 1, "a")
	before, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	err = repo.Delete(ctx, 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected table unchanged, got %+v", after)
	}
}

func TestUserRepository_ClosedDatabase(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()
	db.Close()

	err := repo.Create(ctx, &domain.User{Name: "A", Age: 1, Hobby: "a"})
	if err == nil {
		t.Fatal("expected an error from a closed database")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("storage failure must not look like not found: %v", err)
	}

	if _, err := repo.List(ctx); err == nil {
		t.Fatal("expected List to fail on a closed database")
	}
}
