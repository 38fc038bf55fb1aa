package usecase

import (
	"context"

	"librarysvc/internal/entity"
)

type MemberPatch struct {
	Name  *string
	Email *string
}

type MemberRepository interface {
	List(ctx context.Context) ([]entity.Member, error)
	GetByMemberID(ctx context.Context, memberID int64) (entity.Member, error)
	// Create fills in the surrogate ID and timestamps on success.
	Create(ctx context.Context, m *entity.Member) error
	Update(ctx context.Context, memberID int64, patch MemberPatch) (entity.Member, error)
	Delete(ctx context.Context, memberID int64) error
}
