package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doruk/portfolio/internal/app/migrations"
	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
)

// testDB opens a throwaway sqlite database with the real schema applied
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening sqlite failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	migrator := migrations.NewMigrator(db)
	if err := migrator.MigrateFromDirectory(filepath.Join("..", "..", "..", "migrations", "sqlite")); err != nil {
		t.Fatalf("applying migrations failed: %v", err)
	}

	return db
}

func TestProjectRepository_CreateAndGet(t *testing.T) {
	repo := NewProjectRepository(testDB(t))
	ctx := context.Background()

	project := &models.Project{
		Title:       "Portfolio Site",
		Subtitle:    "This site",
		Description: "A server-rendered portfolio",
		TechStack:   "Go, Gin, SQLite",
		GithubURL:   "https://github.com/example/portfolio",
		Image:       "abc.png",
		CreatedAt:   time.Now().UTC(),
	}

	if err := repo.Create(ctx, project); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if project.ID == 0 {
		t.Fatal("expected ID to be set after Create")
	}

	found, err := repo.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Title != project.Title {
		t.Errorf("expected title %q, got %q", project.Title, found.Title)
	}
	if found.Image != "abc.png" {
		t.Errorf("expected image %q, got %q", "abc.png", found.Image)
	}
}

func TestProjectRepository_GetByID_NotFound(t *testing.T) {
	repo := NewProjectRepository(testDB(t))

	_, err := repo.GetByID(context.Background(), 12345)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestProjectRepository_List_NewestFirst(t *testing.T) {
	repo := NewProjectRepository(testDB(t))
	ctx := context.Background()

	older := &models.Project{Title: "Older", CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &models.Project{Title: "Newer", CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	for _, p := range []*models.Project{older, newer} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	projects, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Title != "Newer" || projects[1].Title != "Older" {
		t.Errorf("expected newest first, got %q then %q", projects[0].Title, projects[1].Title)
	}
}

func TestProjectRepository_Update(t *testing.T) {
	repo := NewProjectRepository(testDB(t))
	ctx := context.Background()

	project := &models.Project{Title: "Before", CreatedAt: time.Now().UTC()}
	if err := repo.Create(ctx, project); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	project.Title = "After"
	project.Image = "new.png"
	if err := repo.Update(ctx, project); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Title != "After" || found.Image != "new.png" {
		t.Errorf("unexpected row after update: %+v", found)
	}
}

func TestProjectRepository_Update_NotFound(t *testing.T) {
	repo := NewProjectRepository(testDB(t))

	err := repo.Update(context.Background(), &models.Project{ID: 9999, Title: "Ghost"})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestProjectRepository_Delete(t *testing.T) {
	repo := NewProjectRepository(testDB(t))
	ctx := context.Background()

	project := &models.Project{Title: "Doomed", CreatedAt: time.Now().UTC()}
	if err := repo.Create(ctx, project); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(ctx, project.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, project.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected row gone, got %v", err)
	}

	if err := repo.Delete(ctx, project.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
