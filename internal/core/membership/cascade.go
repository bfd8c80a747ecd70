// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership

import (
	"context"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/core/member"
	"github.com/sdikyarts/musicopedia/internal/core/subunit"
)

/*
Cascade registers the delete hooks that keep links and ledger rows in step
with deletions, the way the catalog schema's ON DELETE rules do.

Description: With the postgres driver the database has already applied the
rules when a hook runs and the hooks find nothing left to do. The memory
driver relies on them.

  - Artist deleted: members and subunits lose their link to it, its subunits
    and group memberships are removed.
  - Member deleted: its group and subunit memberships are removed.
  - Subunit deleted: its member rows are removed.
*/
func Cascade(artists *artist.Service, members *member.Service, subunits *subunit.Service, memberships *Service) {
	artists.OnDelete(
		func(context context.Context, artistID string) error {
			_, err := members.ClearSoloArtist(context, artistID)
			return err
		},
		subunits.DetachArtist,
		func(context context.Context, artistID string) error {
			_, err := memberships.PurgeGroup(context, artistID)
			return err
		},
	)

	members.OnDelete(func(context context.Context, memberID string) error {
		_, err := memberships.PurgeMember(context, memberID)
		return err
	})

	subunits.OnDelete(func(context context.Context, subunitID string) error {
		_, err := memberships.ClearSubunit(context, subunitID)
		return err
	})
}
