package store

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/equipviz/internal/domain"
)

var userColumns = []string{"id", "username", "email", "password_hash", "password_salt", "created_at"}

func (s *store) CreateUser(ctx context.Context, user *domain.User) error {
	query := builder().Insert(tableUsers).
		Columns("username", "email", "password_hash", "password_salt").
		Values(user.Username, user.Email, user.UserPassword.Hash, user.UserPassword.Salt).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))

	if err := s.pool.Getx(ctx, user, query); err != nil {
		return err
	}

	return nil
}

func (s *store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"username": username})

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"id": id})

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}
