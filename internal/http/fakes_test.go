package http

import (
	"context"
	"strings"
	"sync"
	"time"

	"librarysvc/internal/entity"
	"librarysvc/internal/usecase"
)

// In-memory repositories with the same contract as the Postgres ones,
// including uniqueness enforcement and all-or-nothing batches.

type fakeBookRepo struct {
	mu     sync.Mutex
	nextID int64
	books  []entity.Book
}

func newFakeBookRepo() *fakeBookRepo { return &fakeBookRepo{} }

func (f *fakeBookRepo) List(ctx context.Context) ([]entity.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Book, len(f.books))
	copy(out, f.books)
	return out, nil
}

func (f *fakeBookRepo) FindAvailableByAuthor(ctx context.Context, substr string) (entity.Book, error) {
	return f.findAvailable(substr, func(b entity.Book) string { return b.Author })
}

func (f *fakeBookRepo) FindAvailableByTitle(ctx context.Context, substr string) (entity.Book, error) {
	return f.findAvailable(substr, func(b entity.Book) string { return b.Title })
}

func (f *fakeBookRepo) findAvailable(substr string, field func(entity.Book) string) (entity.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	needle := strings.ToLower(substr)
	for _, b := range f.books {
		if b.Available && strings.Contains(strings.ToLower(field(b)), needle) {
			return b, nil
		}
	}
	return entity.Book{}, usecase.ErrNotFound
}

func (f *fakeBookRepo) AddMany(ctx context.Context, inputs []usecase.BookInput) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[int64]bool)
	for _, b := range f.books {
		seen[b.BookID] = true
	}
	for _, in := range inputs {
		if seen[in.BookID] {
			return 0, usecase.ErrDuplicateID
		}
		seen[in.BookID] = true
	}
	now := time.Now()
	for _, in := range inputs {
		f.nextID++
		f.books = append(f.books, entity.Book{
			ID:        f.nextID,
			BookID:    in.BookID,
			Title:     in.Title,
			Author:    in.Author,
			Available: in.Available,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return len(inputs), nil
}

func (f *fakeBookRepo) Update(ctx context.Context, bookID int64, patch usecase.BookPatch) (entity.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.books {
		if f.books[i].BookID != bookID {
			continue
		}
		if patch.BookID != nil && *patch.BookID != bookID {
			for _, other := range f.books {
				if other.BookID == *patch.BookID {
					return entity.Book{}, usecase.ErrDuplicateID
				}
			}
			f.books[i].BookID = *patch.BookID
		}
		if patch.Title != nil {
			f.books[i].Title = *patch.Title
		}
		if patch.Author != nil {
			f.books[i].Author = *patch.Author
		}
		if patch.Available != nil {
			f.books[i].Available = *patch.Available
		}
		f.books[i].UpdatedAt = time.Now()
		return f.books[i], nil
	}
	return entity.Book{}, usecase.ErrNotFound
}

func (f *fakeBookRepo) Delete(ctx context.Context, bookID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.books {
		if f.books[i].BookID == bookID {
			f.books = append(f.books[:i], f.books[i+1:]...)
			return nil
		}
	}
	return usecase.ErrNotFound
}

type fakeMemberRepo struct {
	mu      sync.Mutex
	nextID  int64
	members []entity.Member
}

func newFakeMemberRepo() *fakeMemberRepo { return &fakeMemberRepo{} }

func (f *fakeMemberRepo) List(ctx context.Context) ([]entity.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Member, len(f.members))
	copy(out, f.members)
	return out, nil
}

func (f *fakeMemberRepo) GetByMemberID(ctx context.Context, memberID int64) (entity.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.MemberID == memberID {
			return m, nil
		}
	}
	return entity.Member{}, usecase.ErrNotFound
}

func (f *fakeMemberRepo) Create(ctx context.Context, m *entity.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.members {
		if existing.Email == m.Email {
			return usecase.ErrDuplicateEmail
		}
		if existing.MemberID == m.MemberID {
			return usecase.ErrDuplicateID
		}
	}
	f.nextID++
	m.ID = f.nextID
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	f.members = append(f.members, *m)
	return nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, memberID int64, patch usecase.MemberPatch) (entity.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.members {
		if f.members[i].MemberID != memberID {
			continue
		}
		if patch.Email != nil {
			for j, other := range f.members {
				if j != i && other.Email == *patch.Email {
					return entity.Member{}, usecase.ErrDuplicateEmail
				}
			}
			f.members[i].Email = *patch.Email
		}
		if patch.Name != nil {
			f.members[i].Name = *patch.Name
		}
		f.members[i].UpdatedAt = time.Now()
		return f.members[i], nil
	}
	return entity.Member{}, usecase.ErrNotFound
}

func (f *fakeMemberRepo) Delete(ctx context.Context, memberID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.members {
		if f.members[i].MemberID == memberID {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return usecase.ErrNotFound
}
