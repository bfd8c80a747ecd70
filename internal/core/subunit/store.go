// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subunit

import (
	"context"
	"time"
)

// Repository persists subunits. Lookups that miss return [dberr.ErrNotFound].
type Repository interface {
	Find(context context.Context, id string) (*Subunit, error)
	Exists(context context.Context, id string) (bool, error)
	List(context context.Context, filter Filter, limit, offset int) ([]*Subunit, int, error)
	Create(context context.Context, subunit *Subunit) error
	Update(context context.Context, subunit *Subunit) error
	Delete(context context.Context, id string) error

	// ClearGroupIdentity drops the group identity of every subunit pointing at
	// artistID and returns how many subunits changed.
	ClearGroupIdentity(context context.Context, artistID string, at time.Time) (int, error)

	// DeleteByMainGroup removes every subunit of a group and returns their ids.
	DeleteByMainGroup(context context.Context, groupID string) ([]string, error)
}
