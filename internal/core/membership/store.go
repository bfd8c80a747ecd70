// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership

import "context"

// Repository persists the group ledger. Lookups that miss return [dberr.ErrNotFound].
type Repository interface {
	Find(context context.Context, groupID, memberID string) (*GroupMembership, error)
	Exists(context context.Context, groupID, memberID string) (bool, error)
	List(context context.Context, filter Filter, limit, offset int) ([]*GroupMembership, int, error)
	ListByMember(context context.Context, memberID string) ([]*GroupMembership, error)
	Count(context context.Context, groupID string, status *Status) (int, error)
	Create(context context.Context, membership *GroupMembership) error
	Update(context context.Context, membership *GroupMembership) error

	// UpdateMany writes every row or none.
	UpdateMany(context context.Context, memberships []*GroupMembership) error
	Delete(context context.Context, groupID, memberID string) error

	// DeleteByGroup and DeleteByMember remove every row of one owner and
	// return how many rows went.
	DeleteByGroup(context context.Context, groupID string) (int, error)
	DeleteByMember(context context.Context, memberID string) (int, error)
}

// SubunitRepository persists the subunit ledger.
type SubunitRepository interface {
	Add(context context.Context, membership *SubunitMembership) error
	Remove(context context.Context, subunitID, memberID string) error
	Exists(context context.Context, subunitID, memberID string) (bool, error)
	ListBySubunit(context context.Context, subunitID string) ([]*SubunitMembership, error)
	ListByMember(context context.Context, memberID string) ([]*SubunitMembership, error)
	DeleteBySubunit(context context.Context, subunitID string) (int, error)
	DeleteByMember(context context.Context, memberID string) (int, error)
}
