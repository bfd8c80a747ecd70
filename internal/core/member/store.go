// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"context"
	"time"
)

// Repository persists members. Lookups that miss return [dberr.ErrNotFound].
type Repository interface {
	Find(context context.Context, id string) (*Member, error)
	Exists(context context.Context, id string) (bool, error)
	List(context context.Context, filter Filter, limit, offset int) ([]*Member, int, error)

	// ListDeceased returns every member with a recorded death date.
	ListDeceased(context context.Context) ([]*Member, error)

	Create(context context.Context, member *Member) error
	Update(context context.Context, member *Member) error
	Delete(context context.Context, id string) error

	// ClearSoloArtist drops the solo link of every member pointing at artistID
	// and returns how many members changed.
	ClearSoloArtist(context context.Context, artistID string, at time.Time) (int, error)
}
