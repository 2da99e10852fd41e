package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDuplicateKeyDetection(t *testing.T) {
	assert.True(t, duplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, duplicateKey(fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey)))

	// Raw driver error, as returned when translation is not configured.
	raw := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'sam' for key 'users.username'"}
	assert.True(t, duplicateKey(raw))
	assert.True(t, duplicateKey(fmt.Errorf("create user: %w", raw)))

	assert.False(t, duplicateKey(&mysql.MySQLError{Number: 1054, Message: "Unknown column"}))
	assert.False(t, duplicateKey(gorm.ErrRecordNotFound))
	assert.False(t, duplicateKey(errors.New("connection reset")))
	assert.False(t, duplicateKey(nil))
}
