// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-adv-board/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	usersTable          = models.User{}.TableName()
	advertisementsTable = models.Advertisement{}.TableName()

	userColumns          = []string{"id", "created", "email", "pwd_hash"}
	advertisementColumns = []string{"id", "created", "title", "description", "owner_id"}
)

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(usersTable).
		Columns("email", "pwd_hash").
		Values(user.Email, user.PwdHash).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildCreateAdvertisementQuery(adv models.Advertisement) (string, []any, error) {
	return psql.
		Insert(advertisementsTable).
		Columns("title", "description", "owner_id").
		Values(adv.Title, adv.Description, adv.OwnerID).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetAdvertisementQuery(id int64) (string, []any, error) {
	return psql.
		Select(advertisementColumns...).
		From(advertisementsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildLockAdvertisementQuery selects the row for update so that concurrent
// updates of one advertisement are applied one after another.
func buildLockAdvertisementQuery(id int64) (string, []any, error) {
	return psql.
		Select("id").
		From(advertisementsTable).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
}

// buildUpdateAdvertisementQuery sets exactly the columns in assignments.
// Columns are emitted in sorted order.
func buildUpdateAdvertisementQuery(id int64, assignments map[string]any) (string, []any, error) {
	return psql.
		Update(advertisementsTable).
		SetMap(assignments).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteAdvertisementQuery(id int64) (string, []any, error) {
	return psql.
		Delete(advertisementsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
