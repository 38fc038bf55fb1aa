package entity

import "time"

type Member struct {
	ID        int64     `json:"-"`
	MemberID  int64     `json:"member_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
