package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountStatus_Valid(t *testing.T) {
	assert.True(t, AccountStatusActive.Valid())
	assert.True(t, AccountStatusInactive.Valid())
	assert.False(t, AccountStatus("active").Valid(), "los estados distinguen mayúsculas")
	assert.False(t, AccountStatus("").Valid())
	assert.False(t, AccountStatus("BLOCKED").Valid())
}
