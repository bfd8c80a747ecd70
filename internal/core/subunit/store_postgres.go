// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subunit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/platform/database/schema"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed subunit store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var subunitTable = schema.CatalogSubunit

type scanner interface {
	Scan(dest ...any) error
}

func scanSubunit(row scanner, extra ...any) (*Subunit, error) {
	subunit := &Subunit{}
	var gender, activityStatus string

	targets := []any{
		&subunit.ID, &subunit.MainGroupID, &subunit.GroupIdentityID, &subunit.Name, &subunit.Description,
		&subunit.Image, &subunit.FormationDate, &subunit.DisbandDate, &gender, &activityStatus,
		&subunit.OriginCountry, &subunit.CreatedAt, &subunit.UpdatedAt,
	}
	if err := row.Scan(append(targets, extra...)...); err != nil {
		return nil, err
	}

	subunit.Gender = artist.Gender(gender)
	subunit.ActivityStatus = artist.ActivityStatus(activityStatus)
	return subunit, nil
}

func (repository *PostgresRepository) Find(context context.Context, id string) (*Subunit, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.List(subunitTable.Columns()), subunitTable.Table, subunitTable.ID)

	subunit, err := scanSubunit(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get subunit")
	}
	return subunit, nil
}

func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, subunitTable.Table, subunitTable.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check subunit existence")
	}
	return exists, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Subunit, int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		WHERE TRUE
	`, schema.List(subunitTable.Columns()), subunitTable.Table))

	args := []any{}
	argID := 1

	if filter.MainGroupID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", subunitTable.MainGroupID, argID))
		args = append(args, *filter.MainGroupID)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC, %s ASC LIMIT $%d OFFSET $%d",
		subunitTable.Name, subunitTable.ID, argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list subunits")
	}
	defer rows.Close()

	subunits := []*Subunit{}
	var total int
	for rows.Next() {
		subunit, err := scanSubunit(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan subunit")
		}
		subunits = append(subunits, subunit)
	}

	return subunits, total, dberr.Wrap(rows.Err(), "list subunits")
}

func (repository *PostgresRepository) Create(context context.Context, subunit *Subunit) error {
	columns := subunitTable.Columns()
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		subunitTable.Table, schema.List(columns), strings.Join(placeholders, ", "))

	_, err := repository.db.Exec(context, query,
		subunit.ID, subunit.MainGroupID, subunit.GroupIdentityID, subunit.Name, subunit.Description,
		subunit.Image, subunit.FormationDate, subunit.DisbandDate, string(subunit.Gender),
		string(subunit.ActivityStatus), subunit.OriginCountry, subunit.CreatedAt, subunit.UpdatedAt,
	)
	return dberr.Wrap(err, "create subunit")
}

func (repository *PostgresRepository) Update(context context.Context, subunit *Subunit) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = $12
		WHERE %s = $1
	`,
		subunitTable.Table,
		subunitTable.MainGroupID, subunitTable.GroupIdentityID, subunitTable.Name, subunitTable.Description,
		subunitTable.Image, subunitTable.FormationDate, subunitTable.DisbandDate, subunitTable.Gender,
		subunitTable.ActivityStatus, subunitTable.OriginCountry, subunitTable.UpdatedAt,
		subunitTable.ID,
	)

	tag, err := repository.db.Exec(context, query,
		subunit.ID, subunit.MainGroupID, subunit.GroupIdentityID, subunit.Name, subunit.Description,
		subunit.Image, subunit.FormationDate, subunit.DisbandDate, string(subunit.Gender),
		string(subunit.ActivityStatus), subunit.OriginCountry, subunit.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update subunit")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, subunitTable.Table, subunitTable.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete subunit")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ClearGroupIdentity(context context.Context, artistID string, at time.Time) (int, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = NULL, %s = $2 WHERE %s = $1`,
		subunitTable.Table, subunitTable.GroupIdentityID, subunitTable.UpdatedAt, subunitTable.GroupIdentityID)

	tag, err := repository.db.Exec(context, query, artistID, at)
	if err != nil {
		return 0, dberr.Wrap(err, "clear subunit group identity")
	}
	return int(tag.RowsAffected()), nil
}

func (repository *PostgresRepository) DeleteByMainGroup(context context.Context, groupID string) ([]string, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		subunitTable.Table, subunitTable.MainGroupID, subunitTable.ID)

	rows, err := repository.db.Query(context, query, groupID)
	if err != nil {
		return nil, dberr.Wrap(err, "delete group subunits")
	}
	defer rows.Close()

	removed := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan deleted subunit")
		}
		removed = append(removed, id)
	}
	return removed, dberr.Wrap(rows.Err(), "delete group subunits")
}
