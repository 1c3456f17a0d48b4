package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/bugbee/internal/core/member"
	"github.com/colonyops/bugbee/internal/data/db"
	"github.com/colonyops/bugbee/pkg/randid"
)

// MemberStore implements member.Store using SQLite.
type MemberStore struct {
	db *db.DB
}

var _ member.Store = (*MemberStore)(nil)

// NewMemberStore creates a new SQLite-backed member store.
func NewMemberStore(db *db.DB) *MemberStore {
	return &MemberStore{db: db}
}

// Create persists a new member. Returns ErrDuplicate when the email is
// already registered (enforced by unique index).
func (s *MemberStore) Create(ctx context.Context, m *member.Member) error {
	if m.ID == "" {
		m.ID = randid.Generate(8)
	}

	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}
	if m.Role == "" {
		m.Role = member.RoleMember
	}

	err := s.db.Queries().CreateMember(ctx, db.CreateMemberParams{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt.UnixNano(),
		UpdatedAt: m.UpdatedAt.UnixNano(),
	})
	if err != nil {
		if isUniqueConstraintError(err) {
			return member.ErrDuplicate
		}
		return fmt.Errorf("create member: %w", err)
	}

	return nil
}

// Get returns a single member by ID.
func (s *MemberStore) Get(ctx context.Context, id string) (member.Member, error) {
	row, err := s.db.Queries().GetMember(ctx, id)
	if err != nil {
		if IsNotFoundError(err) {
			return member.Member{}, member.ErrNotFound
		}
		return member.Member{}, fmt.Errorf("get member: %w", err)
	}

	return rowToMember(row), nil
}

// List returns all members ordered by name.
func (s *MemberStore) List(ctx context.Context) ([]member.Member, error) {
	rows, err := s.db.Queries().ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	members := make([]member.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, rowToMember(row))
	}

	return members, nil
}

func rowToMember(row db.Member) member.Member {
	return member.Member{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      member.Role(row.Role),
		CreatedAt: time.Unix(0, row.CreatedAt),
		UpdatedAt: time.Unix(0, row.UpdatedAt),
	}
}
