package bugbee

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/bugbee/internal/core/member"
	"github.com/colonyops/bugbee/internal/core/project"
	"github.com/colonyops/bugbee/internal/core/workitem"
)

// DirectoryService manages the member and project directories.
type DirectoryService struct {
	members  member.Store
	projects project.Store
	log      zerolog.Logger
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(members member.Store, projects project.Store, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{
		members:  members,
		projects: projects,
		log:      log.With().Str("component", "directory-service").Logger(),
	}
}

// CreateMember registers a new team member.
func (s *DirectoryService) CreateMember(ctx context.Context, m member.Member) (member.Member, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)

	if m.Name == "" {
		return member.Member{}, &workitem.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if m.Email == "" || !strings.Contains(m.Email, "@") {
		return member.Member{}, &workitem.ValidationError{Field: "email", Value: m.Email, Reason: "must be an email address"}
	}
	if m.Role != "" && m.Role != member.RoleMember && m.Role != member.RoleLead {
		return member.Member{}, &workitem.ValidationError{
			Field: "role", Value: string(m.Role),
			Allowed: []string{string(member.RoleMember), string(member.RoleLead)},
		}
	}

	if err := s.members.Create(ctx, &m); err != nil {
		return member.Member{}, err
	}

	return m, nil
}

// GetMember returns a member by ID.
func (s *DirectoryService) GetMember(ctx context.Context, id string) (member.Member, error) {
	return s.members.Get(ctx, id)
}

// ListMembers returns all members ordered by name.
func (s *DirectoryService) ListMembers(ctx context.Context) ([]member.Member, error) {
	return s.members.List(ctx)
}

// CreateProject registers a new project. Keys are lowercased so rule
// patterns and URLs stay case insensitive.
func (s *DirectoryService) CreateProject(ctx context.Context, p project.Project) (project.Project, error) {
	p.Key = strings.ToLower(strings.TrimSpace(p.Key))
	p.Name = strings.TrimSpace(p.Name)

	if p.Key == "" || strings.ContainsAny(p.Key, " \t") {
		return project.Project{}, &workitem.ValidationError{Field: "key", Value: p.Key, Reason: "must be a non-empty key without spaces"}
	}
	if p.Name == "" {
		return project.Project{}, &workitem.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	if err := s.projects.Create(ctx, &p); err != nil {
		return project.Project{}, err
	}

	return p, nil
}

// GetProject returns a project by ID.
func (s *DirectoryService) GetProject(ctx context.Context, id string) (project.Project, error) {
	return s.projects.Get(ctx, id)
}

// ListProjects returns all projects ordered by key.
func (s *DirectoryService) ListProjects(ctx context.Context) ([]project.Project, error) {
	return s.projects.List(ctx)
}
