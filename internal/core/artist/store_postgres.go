// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sdikyarts/musicopedia/internal/platform/database/schema"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/internal/platform/postgres"
	"github.com/sdikyarts/musicopedia/pkg/slug"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed artist store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	artistTable = schema.CatalogArtist
	soloTable   = schema.CatalogSolo
	groupTable  = schema.CatalogMusicGroup

	// profileSelect reads an artist with both optional extensions in one round trip.
	profileSelect = fmt.Sprintf(`
		SELECT %s,
			s.%s, s.%s, s.%s, s.%s, s.%s,
			g.%s, g.%s, g.%s, g.%s, g.%s
		FROM %s a
		LEFT JOIN %s s ON s.%s = a.%s
		LEFT JOIN %s g ON g.%s = a.%s
	`,
		schema.Qualified("a", artistTable.Columns()),
		soloTable.ArtistID, soloTable.BirthDate, soloTable.DeathDate, soloTable.Gender, soloTable.AffiliationStatus,
		groupTable.ArtistID, groupTable.FormationDate, groupTable.DisbandDate, groupTable.Gender, groupTable.ActivityStatus,
		artistTable.Table,
		soloTable.Table, soloTable.ArtistID, artistTable.ID,
		groupTable.Table, groupTable.ArtistID, artistTable.ID,
	)
)

// # Row Scanning

type scanner interface {
	Scan(dest ...any) error
}

// profileRow holds the nullable columns of the extension joins.
type profileRow struct {
	artist Artist

	soloArtistID        *string
	soloBirthDate       *time.Time
	soloDeathDate       *time.Time
	soloGender          *string
	soloAffiliation     *string
	groupArtistID       *string
	groupFormationDate  *time.Time
	groupDisbandDate    *time.Time
	groupGender         *string
	groupActivityStatus *string
}

func scanProfile(row scanner, extra ...any) (*Profile, error) {
	var record profileRow
	var artistType string

	targets := []any{
		&record.artist.ID, &record.artist.SpotifyID, &record.artist.Name, &record.artist.Slug,
		&record.artist.SearchName, &artistType, &record.artist.Description, &record.artist.Image,
		&record.artist.PrimaryLanguage, &record.artist.Genre, &record.artist.OriginCountry,
		&record.artist.CreatedAt, &record.artist.UpdatedAt,
		&record.soloArtistID, &record.soloBirthDate, &record.soloDeathDate, &record.soloGender, &record.soloAffiliation,
		&record.groupArtistID, &record.groupFormationDate, &record.groupDisbandDate, &record.groupGender, &record.groupActivityStatus,
	}

	if err := row.Scan(append(targets, extra...)...); err != nil {
		return nil, err
	}

	record.artist.Type = Type(artistType)
	profile := &Profile{Artist: &record.artist}

	if record.soloArtistID != nil {
		profile.Solo = &Solo{
			ArtistID:          *record.soloArtistID,
			BirthDate:         record.soloBirthDate,
			DeathDate:         record.soloDeathDate,
			Gender:            Gender(deref(record.soloGender)),
			AffiliationStatus: AffiliationStatus(deref(record.soloAffiliation)),
		}
	}

	if record.groupArtistID != nil {
		profile.Group = &Group{
			ArtistID:       *record.groupArtistID,
			FormationDate:  record.groupFormationDate,
			DisbandDate:    record.groupDisbandDate,
			Gender:         Gender(deref(record.groupGender)),
			ActivityStatus: ActivityStatus(deref(record.groupActivityStatus)),
		}
	}

	return profile, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// # Artist Retrieval

func (repository *PostgresRepository) FindProfile(context context.Context, id string) (*Profile, error) {
	query := profileSelect + fmt.Sprintf(" WHERE a.%s = $1", artistTable.ID)

	profile, err := scanProfile(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get artist")
	}
	return profile, nil
}

func (repository *PostgresRepository) FindBySpotifyID(context context.Context, spotifyID string) (*Profile, error) {
	query := profileSelect + fmt.Sprintf(" WHERE a.%s = $1", artistTable.SpotifyID)

	profile, err := scanProfile(repository.db.QueryRow(context, query, spotifyID))
	if err != nil {
		return nil, dberr.Wrap(err, "get artist by spotify id")
	}
	return profile, nil
}

func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, artistTable.Table, artistTable.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check artist existence")
	}
	return exists, nil
}

/*
List returns a filtered and paginated list of artists.

Description: Matches the accent-folded search name and uses COUNT(*) OVER() for total metadata.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Artist, int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		WHERE TRUE
	`, schema.List(artistTable.Columns()), artistTable.Table))

	args := []any{}
	argID := 1

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s LIKE $%d", artistTable.SearchName, argID))
		args = append(args, slug.Pattern(filter.Query))
		argID++
	}

	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, artistType := range filter.Types {
			types[i] = string(artistType)
		}
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = ANY($%d)", artistTable.Type, argID))
		args = append(args, types)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC, %s ASC LIMIT $%d OFFSET $%d",
		artistTable.Name, artistTable.ID, argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list artists")
	}
	defer rows.Close()

	artists := []*Artist{}
	var total int
	for rows.Next() {
		artist := &Artist{}
		var artistType string
		err := rows.Scan(
			&artist.ID, &artist.SpotifyID, &artist.Name, &artist.Slug, &artist.SearchName, &artistType,
			&artist.Description, &artist.Image, &artist.PrimaryLanguage, &artist.Genre, &artist.OriginCountry,
			&artist.CreatedAt, &artist.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan artist")
		}
		artist.Type = Type(artistType)
		artists = append(artists, artist)
	}

	return artists, total, dberr.Wrap(rows.Err(), "list artists")
}

// ListSolos returns SOLO profiles matching the filter.
func (repository *PostgresRepository) ListSolos(context context.Context, filter SoloFilter, limit, offset int) ([]*Profile, int, error) {
	conditions := []string{fmt.Sprintf("s.%s IS NOT NULL", soloTable.ArtistID)}
	args := []any{}

	add := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.Query != "" {
		add("a."+artistTable.SearchName+" LIKE $%d", slug.Pattern(filter.Query))
	}
	if filter.Gender != "" {
		add("s."+soloTable.Gender+" = $%d", string(filter.Gender))
	}
	if filter.Deceased != nil {
		if *filter.Deceased {
			conditions = append(conditions, fmt.Sprintf("s.%s IS NOT NULL", soloTable.DeathDate))
		} else {
			conditions = append(conditions, fmt.Sprintf("s.%s IS NULL", soloTable.DeathDate))
		}
	}
	if filter.BornFrom != nil {
		add("s."+soloTable.BirthDate+" >= $%d", *filter.BornFrom)
	}
	if filter.BornTo != nil {
		add("s."+soloTable.BirthDate+" <= $%d", *filter.BornTo)
	}

	return repository.listProfiles(context, "list solos", conditions, args, limit, offset)
}

// ListGroups returns GROUP profiles matching the filter.
func (repository *PostgresRepository) ListGroups(context context.Context, filter GroupFilter, limit, offset int) ([]*Profile, int, error) {
	conditions := []string{fmt.Sprintf("g.%s IS NOT NULL", groupTable.ArtistID)}
	args := []any{}

	add := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.Query != "" {
		add("a."+artistTable.SearchName+" LIKE $%d", slug.Pattern(filter.Query))
	}
	if filter.Gender != "" {
		add("g."+groupTable.Gender+" = $%d", string(filter.Gender))
	}
	if filter.Disbanded != nil {
		if *filter.Disbanded {
			conditions = append(conditions, fmt.Sprintf("g.%s IS NOT NULL", groupTable.DisbandDate))
		} else {
			conditions = append(conditions, fmt.Sprintf("g.%s IS NULL", groupTable.DisbandDate))
		}
	}
	if filter.FormedFrom != nil {
		add("g."+groupTable.FormationDate+" >= $%d", *filter.FormedFrom)
	}
	if filter.FormedTo != nil {
		add("g."+groupTable.FormationDate+" <= $%d", *filter.FormedTo)
	}

	return repository.listProfiles(context, "list groups", conditions, args, limit, offset)
}

func (repository *PostgresRepository) listProfiles(context context.Context, action string, conditions []string, args []any, limit, offset int) ([]*Profile, int, error) {
	query := strings.Replace(profileSelect, "SELECT ", "SELECT COUNT(*) OVER() AS total, ", 1) +
		" WHERE " + strings.Join(conditions, " AND ") +
		fmt.Sprintf(" ORDER BY a.%s ASC, a.%s ASC LIMIT $%d OFFSET $%d", artistTable.Name, artistTable.ID, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, action)
	}
	defer rows.Close()

	profiles := []*Profile{}
	var total int
	for rows.Next() {
		profile, err := scanProfile(prefixed{rows: rows, first: &total})
		if err != nil {
			return nil, 0, dberr.Wrap(err, action)
		}
		profiles = append(profiles, profile)
	}

	return profiles, total, dberr.Wrap(rows.Err(), action)
}

// prefixed scans a leading column (the window total) ahead of the profile columns.
type prefixed struct {
	rows  pgx.Rows
	first any
}

func (row prefixed) Scan(dest ...any) error {
	return row.rows.Scan(append([]any{row.first}, dest...)...)
}

// # Artist Persistence

// Create inserts every profile (base row plus extension) in one transaction.
func (repository *PostgresRepository) Create(context context.Context, profiles ...*Profile) error {
	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		for _, profile := range profiles {
			if err := insertArtist(context, tx, profile.Artist); err != nil {
				return err
			}
			if err := upsertExtension(context, tx, profile); err != nil {
				return err
			}
		}
		return nil
	})
	return dberr.Wrap(err, "create artist")
}

// Update rewrites the base row and upserts the extension in one transaction.
func (repository *PostgresRepository) Update(context context.Context, profile *Profile) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11
		WHERE %s = $1
	`,
		artistTable.Table,
		artistTable.SpotifyID, artistTable.Name, artistTable.Slug, artistTable.SearchName, artistTable.Description,
		artistTable.Image, artistTable.PrimaryLanguage, artistTable.Genre, artistTable.OriginCountry, artistTable.UpdatedAt,
		artistTable.ID,
	)

	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		artist := profile.Artist
		tag, err := tx.Exec(context, query,
			artist.ID, artist.SpotifyID, artist.Name, artist.Slug, artist.SearchName, artist.Description,
			artist.Image, artist.PrimaryLanguage, artist.Genre, artist.OriginCountry, artist.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return dberr.ErrNotFound
		}
		return upsertExtension(context, tx, profile)
	})
	return dberr.Wrap(err, "update artist")
}

// Delete removes the artist; extensions cascade, weak references are nulled by the schema.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, artistTable.Table, artistTable.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete artist")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func insertArtist(context context.Context, tx pgx.Tx, artist *Artist) error {
	columns := artistTable.Columns()
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		artistTable.Table, schema.List(columns), strings.Join(placeholders, ", "))

	_, err := tx.Exec(context, query,
		artist.ID, artist.SpotifyID, artist.Name, artist.Slug, artist.SearchName, string(artist.Type),
		artist.Description, artist.Image, artist.PrimaryLanguage, artist.Genre, artist.OriginCountry,
		artist.CreatedAt, artist.UpdatedAt,
	)
	return err
}

func upsertExtension(context context.Context, tx pgx.Tx, profile *Profile) error {
	if solo := profile.Solo; solo != nil {
		query := fmt.Sprintf(`
			INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
		`,
			soloTable.Table, schema.List(soloTable.Columns()), soloTable.ArtistID,
			soloTable.BirthDate, soloTable.BirthDate, soloTable.DeathDate, soloTable.DeathDate,
			soloTable.Gender, soloTable.Gender, soloTable.AffiliationStatus, soloTable.AffiliationStatus,
		)
		if _, err := tx.Exec(context, query,
			solo.ArtistID, solo.BirthDate, solo.DeathDate, string(solo.Gender), string(solo.AffiliationStatus),
		); err != nil {
			return err
		}
	}

	if group := profile.Group; group != nil {
		query := fmt.Sprintf(`
			INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
		`,
			groupTable.Table, schema.List(groupTable.Columns()), groupTable.ArtistID,
			groupTable.FormationDate, groupTable.FormationDate, groupTable.DisbandDate, groupTable.DisbandDate,
			groupTable.Gender, groupTable.Gender, groupTable.ActivityStatus, groupTable.ActivityStatus,
		)
		if _, err := tx.Exec(context, query,
			group.ArtistID, group.FormationDate, group.DisbandDate, string(group.Gender), string(group.ActivityStatus),
		); err != nil {
			return err
		}
	}

	return nil
}
