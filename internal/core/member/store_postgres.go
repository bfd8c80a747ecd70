// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sdikyarts/musicopedia/internal/platform/database/schema"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/pkg/slug"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed member store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var memberTable = schema.CatalogMember

type scanner interface {
	Scan(dest ...any) error
}

func scanMember(row scanner, extra ...any) (*Member, error) {
	member := &Member{}
	targets := []any{
		&member.ID, &member.MemberName, &member.RealName, &member.SearchName, &member.Description,
		&member.Image, &member.BirthDate, &member.DeathDate, &member.Nationality, &member.SoloArtistID,
		&member.CreatedAt, &member.UpdatedAt,
	}
	if err := row.Scan(append(targets, extra...)...); err != nil {
		return nil, err
	}
	return member, nil
}

func memberArgs(member *Member) []any {
	return []any{
		member.ID, member.MemberName, member.RealName, member.SearchName, member.Description,
		member.Image, member.BirthDate, member.DeathDate, member.Nationality, member.SoloArtistID,
		member.CreatedAt, member.UpdatedAt,
	}
}

func (repository *PostgresRepository) Find(context context.Context, id string) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.List(memberTable.Columns()), memberTable.Table, memberTable.ID)

	member, err := scanMember(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get member")
	}
	return member, nil
}

func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, memberTable.Table, memberTable.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check member existence")
	}
	return exists, nil
}

/*
List returns a filtered and paginated list of members ordered by stage name.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Member, int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		WHERE TRUE
	`, schema.List(memberTable.Columns()), memberTable.Table))

	args := []any{}
	argID := 1

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s LIKE $%d", memberTable.SearchName, argID))
		args = append(args, slug.Pattern(filter.Query))
		argID++
	}
	if filter.Nationality != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND LOWER(%s) = LOWER($%d)", memberTable.Nationality, argID))
		args = append(args, filter.Nationality)
		argID++
	}
	if filter.WithSoloCareer != nil {
		if *filter.WithSoloCareer {
			queryBuilder.WriteString(fmt.Sprintf(" AND %s IS NOT NULL", memberTable.SoloArtistID))
		} else {
			queryBuilder.WriteString(fmt.Sprintf(" AND %s IS NULL", memberTable.SoloArtistID))
		}
	}
	if filter.BornFrom != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s >= $%d", memberTable.BirthDate, argID))
		args = append(args, *filter.BornFrom)
		argID++
	}
	if filter.BornTo != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s <= $%d", memberTable.BirthDate, argID))
		args = append(args, *filter.BornTo)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC, %s ASC LIMIT $%d OFFSET $%d",
		memberTable.MemberName, memberTable.ID, argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list members")
	}
	defer rows.Close()

	members := []*Member{}
	var total int
	for rows.Next() {
		member, err := scanMember(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan member")
		}
		members = append(members, member)
	}

	return members, total, dberr.Wrap(rows.Err(), "list members")
}

func (repository *PostgresRepository) ListDeceased(context context.Context) ([]*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s`,
		schema.List(memberTable.Columns()), memberTable.Table, memberTable.DeathDate, memberTable.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list deceased members")
	}
	defer rows.Close()

	members := []*Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan member")
		}
		members = append(members, member)
	}
	return members, dberr.Wrap(rows.Err(), "list deceased members")
}

func (repository *PostgresRepository) Create(context context.Context, member *Member) error {
	columns := memberTable.Columns()
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		memberTable.Table, schema.List(columns), strings.Join(placeholders, ", "))

	_, err := repository.db.Exec(context, query, memberArgs(member)...)
	return dberr.Wrap(err, "create member")
}

func (repository *PostgresRepository) Update(context context.Context, member *Member) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11
		WHERE %s = $1
	`,
		memberTable.Table,
		memberTable.MemberName, memberTable.RealName, memberTable.SearchName, memberTable.Description,
		memberTable.Image, memberTable.BirthDate, memberTable.DeathDate, memberTable.Nationality,
		memberTable.SoloArtistID, memberTable.UpdatedAt,
		memberTable.ID,
	)

	tag, err := repository.db.Exec(context, query,
		member.ID, member.MemberName, member.RealName, member.SearchName, member.Description,
		member.Image, member.BirthDate, member.DeathDate, member.Nationality, member.SoloArtistID,
		member.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update member")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, memberTable.Table, memberTable.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete member")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ClearSoloArtist(context context.Context, artistID string, at time.Time) (int, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = NULL, %s = $2 WHERE %s = $1`,
		memberTable.Table, memberTable.SoloArtistID, memberTable.UpdatedAt, memberTable.SoloArtistID)

	tag, err := repository.db.Exec(context, query, artistID, at)
	if err != nil {
		return 0, dberr.Wrap(err, "clear member solo artist")
	}
	return int(tag.RowsAffected()), nil
}
