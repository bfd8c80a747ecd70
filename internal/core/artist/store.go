// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import "context"

// Repository persists artists together with their extensions.
//
// Create and Update write the base row and the extension row atomically.
// Lookups that miss return [dberr.ErrNotFound].
type Repository interface {
	FindProfile(context context.Context, id string) (*Profile, error)
	FindBySpotifyID(context context.Context, spotifyID string) (*Profile, error)
	Exists(context context.Context, id string) (bool, error)

	List(context context.Context, filter Filter, limit, offset int) ([]*Artist, int, error)
	ListSolos(context context.Context, filter SoloFilter, limit, offset int) ([]*Profile, int, error)
	ListGroups(context context.Context, filter GroupFilter, limit, offset int) ([]*Profile, int, error)

	// Create persists every profile or none of them.
	Create(context context.Context, profiles ...*Profile) error
	Update(context context.Context, profile *Profile) error
	Delete(context context.Context, id string) error
}
