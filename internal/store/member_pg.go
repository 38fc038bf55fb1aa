package store

import (
	"context"
	"errors"

	"librarysvc/internal/entity"
	"librarysvc/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MemberPG struct {
	db *pgxpool.Pool
}

func NewMemberPG(db *pgxpool.Pool) *MemberPG {
	return &MemberPG{db: db}
}

const memberColumns = "id, member_id, name, email, created_at, updated_at"

func scanMember(row pgx.Row) (entity.Member, error) {
	var m entity.Member
	err := row.Scan(&m.ID, &m.MemberID, &m.Name, &m.Email, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Member{}, usecase.ErrNotFound
		}
		return entity.Member{}, err
	}
	return m, nil
}

func (r *MemberPG) List(ctx context.Context) ([]entity.Member, error) {
	const query = `
	SELECT ` + memberColumns + `
	FROM members
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []entity.Member
	for rows.Next() {
		var m entity.Member
		if err := rows.Scan(&m.ID, &m.MemberID, &m.Name, &m.Email, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberPG) GetByMemberID(ctx context.Context, memberID int64) (entity.Member, error) {
	const query = `
	SELECT ` + memberColumns + `
	FROM members
	WHERE member_id = $1
	LIMIT 1
	`
	return scanMember(r.db.QueryRow(ctx, query, memberID))
}

func (r *MemberPG) Create(ctx context.Context, m *entity.Member) error {
	const query = `
	INSERT INTO members (member_id, name, email)
	VALUES ($1, $2, $3)
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, m.MemberID, m.Name, m.Email).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *MemberPG) Update(ctx context.Context, memberID int64, patch usecase.MemberPatch) (entity.Member, error) {
	const query = `
	UPDATE members
	SET name  = COALESCE($2, name),
	    email = COALESCE($3, email),
	    updated_at = now()
	WHERE member_id = $1
	RETURNING ` + memberColumns + `
	`
	m, err := scanMember(r.db.QueryRow(ctx, query, memberID, patch.Name, patch.Email))
	if err != nil {
		return entity.Member{}, translateConstraint(err)
	}
	return m, nil
}

func (r *MemberPG) Delete(ctx context.Context, memberID int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM members WHERE member_id = $1`, memberID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
