package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/bugbee/internal/core/project"
	"github.com/colonyops/bugbee/internal/data/db"
	"github.com/colonyops/bugbee/pkg/randid"
)

// ProjectStore implements project.Store using SQLite.
type ProjectStore struct {
	db *db.DB
}

var _ project.Store = (*ProjectStore)(nil)

// NewProjectStore creates a new SQLite-backed project store.
func NewProjectStore(db *db.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// Create persists a new project. Returns ErrDuplicate when the key is
// already in use (enforced by unique index).
func (s *ProjectStore) Create(ctx context.Context, p *project.Project) error {
	if p.ID == "" {
		p.ID = randid.Generate(8)
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	err := s.db.Queries().CreateProject(ctx, db.CreateProjectParams{
		ID:          p.ID,
		Key:         p.Key,
		Name:        p.Name,
		Description: toNullString(p.Description),
		CreatedAt:   p.CreatedAt.UnixNano(),
		UpdatedAt:   p.UpdatedAt.UnixNano(),
	})
	if err != nil {
		if isUniqueConstraintError(err) {
			return project.ErrDuplicate
		}
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

// Get returns a single project by ID.
func (s *ProjectStore) Get(ctx context.Context, id string) (project.Project, error) {
	row, err := s.db.Queries().GetProject(ctx, id)
	if err != nil {
		if IsNotFoundError(err) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, fmt.Errorf("get project: %w", err)
	}

	return rowToProject(row), nil
}

// List returns all projects ordered by key.
func (s *ProjectStore) List(ctx context.Context) ([]project.Project, error) {
	rows, err := s.db.Queries().ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]project.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, rowToProject(row))
	}

	return projects, nil
}

func rowToProject(row db.Project) project.Project {
	return project.Project{
		ID:          row.ID,
		Key:         row.Key,
		Name:        row.Name,
		Description: fromNullString(row.Description),
		CreatedAt:   time.Unix(0, row.CreatedAt),
		UpdatedAt:   time.Unix(0, row.UpdatedAt),
	}
}
