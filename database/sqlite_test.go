package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnicodeLower(t *testing.T) {
	assert.Equal(t, "école", unicodeLower("ÉCOLE"))
	assert.Equal(t, "straße", unicodeLower([]byte("STRAßE")))
	assert.Nil(t, unicodeLower([]byte(nil)))
	assert.Equal(t, int64(7), unicodeLower(int64(7)))
}

func TestOpenSQLite_LowerFoldsUnicode(t *testing.T) {
	db := NewTestDB(t)

	var folded string
	require.NoError(t, db.Raw("SELECT LOWER(?)", "ÉCOLE Ñandú").Scan(&folded).Error)
	assert.Equal(t, "école ñandú", folded)

	var isNull bool
	require.NoError(t, db.Raw("SELECT LOWER(NULL) IS NULL").Scan(&isNull).Error)
	assert.True(t, isNull)
}
