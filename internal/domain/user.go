package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ougirez/equipviz/internal/pkg/constants"
)

type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
	UserPassword
	CreatedAt time.Time `db:"created_at" json:"-"`
}

type UserPassword struct {
	Hash string `db:"password_hash" json:"-"`
	Salt string `db:"password_salt" json:"-"`
}

// Init генерирует соль и хэш для нового пароля.
func (p *UserPassword) Init(password string) error {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	p.Salt = hex.EncodeToString(salt)
	p.Hash = hashPassword(password, p.Salt)
	return nil
}

func (p *UserPassword) Validate(password string) error {
	if hashPassword(password, p.Salt) != p.Hash {
		return constants.ErrWrongPassword
	}
	return nil
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}
