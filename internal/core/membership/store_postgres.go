// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package membership

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sdikyarts/musicopedia/internal/platform/database/schema"
	"github.com/sdikyarts/musicopedia/internal/platform/dberr"
	"github.com/sdikyarts/musicopedia/internal/platform/postgres"
)

// PostgresRepository implements [Repository] and [SubunitRepository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed ledger store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	groupTable   = schema.CatalogGroupMembership
	subunitTable = schema.CatalogSubunitMembership
)

type scanner interface {
	Scan(dest ...any) error
}

func scanMembership(row scanner, extra ...any) (*GroupMembership, error) {
	membership := &GroupMembership{}
	var status string

	targets := []any{
		&membership.GroupID, &membership.MemberID, &status, &membership.JoinDate,
		&membership.LeaveDate, &membership.CreatedAt, &membership.UpdatedAt,
	}
	if err := row.Scan(append(targets, extra...)...); err != nil {
		return nil, err
	}

	membership.Status = Status(status)
	return membership, nil
}

// # Group Ledger

func (repository *PostgresRepository) Find(context context.Context, groupID, memberID string) (*GroupMembership, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.List(groupTable.Columns()), groupTable.Table, groupTable.GroupID, groupTable.MemberID)

	membership, err := scanMembership(repository.db.QueryRow(context, query, groupID, memberID))
	if err != nil {
		return nil, dberr.Wrap(err, "get membership")
	}
	return membership, nil
}

func (repository *PostgresRepository) Exists(context context.Context, groupID, memberID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		groupTable.Table, groupTable.GroupID, groupTable.MemberID)

	var exists bool
	if err := repository.db.QueryRow(context, query, groupID, memberID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check membership existence")
	}
	return exists, nil
}

/*
List returns one page of memberships, ordered by join date.

Description: Conditions are appended only for the filter fields that are set.
The window total rides along on every row.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*GroupMembership, int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		WHERE TRUE
	`, schema.List(groupTable.Columns()), groupTable.Table))

	args := []any{}
	argID := 1
	add := func(condition string, value any) {
		queryBuilder.WriteString(fmt.Sprintf(" AND "+condition, argID))
		args = append(args, value)
		argID++
	}

	if filter.GroupID != nil {
		add(groupTable.GroupID+" = $%d", *filter.GroupID)
	}
	if filter.MemberID != nil {
		add(groupTable.MemberID+" = $%d", *filter.MemberID)
	}
	if filter.Status != nil {
		add(groupTable.Status+" = $%d", string(*filter.Status))
	}
	if filter.Former {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s IS NOT NULL", groupTable.LeaveDate))
	}
	if filter.JoinedAfter != nil {
		add(groupTable.JoinDate+" > $%d", *filter.JoinedAfter)
	}
	if filter.LeftBefore != nil {
		add(groupTable.LeaveDate+" < $%d", *filter.LeftBefore)
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC, %s ASC, %s ASC LIMIT $%d OFFSET $%d",
		groupTable.JoinDate, groupTable.GroupID, groupTable.MemberID, argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list memberships")
	}
	defer rows.Close()

	memberships := []*GroupMembership{}
	var total int
	for rows.Next() {
		membership, err := scanMembership(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan membership")
		}
		memberships = append(memberships, membership)
	}

	return memberships, total, dberr.Wrap(rows.Err(), "list memberships")
}

func (repository *PostgresRepository) ListByMember(context context.Context, memberID string) ([]*GroupMembership, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.List(groupTable.Columns()), groupTable.Table, groupTable.MemberID, groupTable.JoinDate)

	rows, err := repository.db.Query(context, query, memberID)
	if err != nil {
		return nil, dberr.Wrap(err, "list member memberships")
	}
	defer rows.Close()

	memberships := []*GroupMembership{}
	for rows.Next() {
		membership, err := scanMembership(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan membership")
		}
		memberships = append(memberships, membership)
	}
	return memberships, dberr.Wrap(rows.Err(), "list member memberships")
}

func (repository *PostgresRepository) Count(context context.Context, groupID string, status *Status) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, groupTable.Table, groupTable.GroupID)
	args := []any{groupID}
	if status != nil {
		query += fmt.Sprintf(" AND %s = $2", groupTable.Status)
		args = append(args, string(*status))
	}

	var count int
	if err := repository.db.QueryRow(context, query, args...).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count memberships")
	}
	return count, nil
}

func (repository *PostgresRepository) Create(context context.Context, membership *GroupMembership) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		groupTable.Table, schema.List(groupTable.Columns()))

	_, err := repository.db.Exec(context, query,
		membership.GroupID, membership.MemberID, string(membership.Status), membership.JoinDate,
		membership.LeaveDate, membership.CreatedAt, membership.UpdatedAt,
	)
	return dberr.Wrap(err, "create membership")
}

func (repository *PostgresRepository) Update(context context.Context, membership *GroupMembership) error {
	tag, err := repository.db.Exec(context, updateMembershipQuery(), membershipUpdateArgs(membership)...)
	if err != nil {
		return dberr.Wrap(err, "update membership")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// UpdateMany rewrites every row in one transaction; a missing row aborts it.
func (repository *PostgresRepository) UpdateMany(context context.Context, memberships []*GroupMembership) error {
	if len(memberships) == 0 {
		return nil
	}

	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		query := updateMembershipQuery()
		for _, membership := range memberships {
			tag, err := tx.Exec(context, query, membershipUpdateArgs(membership)...)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return dberr.ErrNotFound
			}
		}
		return nil
	})
	return dberr.Wrap(err, "sync memberships")
}

func (repository *PostgresRepository) Delete(context context.Context, groupID, memberID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		groupTable.Table, groupTable.GroupID, groupTable.MemberID)

	tag, err := repository.db.Exec(context, query, groupID, memberID)
	if err != nil {
		return dberr.Wrap(err, "delete membership")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteByGroup(context context.Context, groupID string) (int, error) {
	return repository.deleteWhere(context, groupTable.GroupID, groupID)
}

func (repository *PostgresRepository) DeleteByMember(context context.Context, memberID string) (int, error) {
	return repository.deleteWhere(context, groupTable.MemberID, memberID)
}

func (repository *PostgresRepository) deleteWhere(context context.Context, column, id string) (int, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, groupTable.Table, column)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return 0, dberr.Wrap(err, "delete memberships")
	}
	return int(tag.RowsAffected()), nil
}

func updateMembershipQuery() string {
	return fmt.Sprintf(`UPDATE %s SET %s = $3, %s = $4, %s = $5, %s = $6 WHERE %s = $1 AND %s = $2`,
		groupTable.Table, groupTable.Status, groupTable.JoinDate, groupTable.LeaveDate, groupTable.UpdatedAt,
		groupTable.GroupID, groupTable.MemberID)
}

func membershipUpdateArgs(membership *GroupMembership) []any {
	return []any{
		membership.GroupID, membership.MemberID, string(membership.Status),
		membership.JoinDate, membership.LeaveDate, membership.UpdatedAt,
	}
}

// # Subunit Ledger

// SubunitStore returns the subunit ledger view over the same pool.
func (repository *PostgresRepository) SubunitStore() *PostgresSubunitRepository {
	return &PostgresSubunitRepository{db: repository.db}
}

// PostgresSubunitRepository implements [SubunitRepository] using pgx.
type PostgresSubunitRepository struct {
	db *pgxpool.Pool
}

func (repository *PostgresSubunitRepository) Add(context context.Context, membership *SubunitMembership) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3)`,
		subunitTable.Table, schema.List(subunitTable.Columns()))

	_, err := repository.db.Exec(context, query, membership.SubunitID, membership.MemberID, membership.CreatedAt)
	return dberr.Wrap(err, "add subunit member")
}

func (repository *PostgresSubunitRepository) Remove(context context.Context, subunitID, memberID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		subunitTable.Table, subunitTable.SubunitID, subunitTable.MemberID)

	tag, err := repository.db.Exec(context, query, subunitID, memberID)
	if err != nil {
		return dberr.Wrap(err, "remove subunit member")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresSubunitRepository) Exists(context context.Context, subunitID, memberID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		subunitTable.Table, subunitTable.SubunitID, subunitTable.MemberID)

	var exists bool
	if err := repository.db.QueryRow(context, query, subunitID, memberID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check subunit membership existence")
	}
	return exists, nil
}

func (repository *PostgresSubunitRepository) ListBySubunit(context context.Context, subunitID string) ([]*SubunitMembership, error) {
	return repository.list(context, subunitTable.SubunitID, subunitID)
}

func (repository *PostgresSubunitRepository) ListByMember(context context.Context, memberID string) ([]*SubunitMembership, error) {
	return repository.list(context, subunitTable.MemberID, memberID)
}

func (repository *PostgresSubunitRepository) DeleteBySubunit(context context.Context, subunitID string) (int, error) {
	return repository.deleteWhere(context, subunitTable.SubunitID, subunitID)
}

func (repository *PostgresSubunitRepository) DeleteByMember(context context.Context, memberID string) (int, error) {
	return repository.deleteWhere(context, subunitTable.MemberID, memberID)
}

func (repository *PostgresSubunitRepository) list(context context.Context, column, id string) ([]*SubunitMembership, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.List(subunitTable.Columns()), subunitTable.Table, column, subunitTable.CreatedAt)

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list subunit members")
	}
	defer rows.Close()

	memberships := []*SubunitMembership{}
	for rows.Next() {
		membership := &SubunitMembership{}
		if err := rows.Scan(&membership.SubunitID, &membership.MemberID, &membership.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan subunit member")
		}
		memberships = append(memberships, membership)
	}
	return memberships, dberr.Wrap(rows.Err(), "list subunit members")
}

func (repository *PostgresSubunitRepository) deleteWhere(context context.Context, column, id string) (int, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, subunitTable.Table, column)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return 0, dberr.Wrap(err, "delete subunit members")
	}
	return int(tag.RowsAffected()), nil
}
