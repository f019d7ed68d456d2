package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lia-dsgnr/calo-tracker/models"
)

func TestAddRecentSearch(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewSearchHistoryService(db)

	row, err := svc.Add(user.ID, "  phở   bò!! ")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "phở bò", row.Term)
}

func TestAddRecentSearchBlankIgnored(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewSearchHistoryService(db)

	row, err := svc.Add(user.ID, "   !!!   ")
	require.NoError(t, err)
	assert.Nil(t, row)

	rows, err := svc.Recent(user.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAddRecentSearchDeduplicates(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewSearchHistoryService(db)

	for _, term := range []string{"pho", "banh mi", "pho"} {
		_, err := svc.Add(user.ID, term)
		require.NoError(t, err)
	}

	rows, err := svc.Recent(user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// The repeated term moved back to the top.
	assert.Equal(t, "pho", rows[0].Term)
	assert.Equal(t, "banh mi", rows[1].Term)
}

func TestRecentSearchRetention(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewSearchHistoryService(db)

	for i := 0; i < models.MaxRecentSearches+5; i++ {
		_, err := svc.Add(user.ID, fmt.Sprintf("term %d", i))
		require.NoError(t, err)
	}

	rows, err := svc.Recent(user.ID)
	require.NoError(t, err)
	require.Len(t, rows, models.MaxRecentSearches)
	// Newest first; the oldest five were pruned.
	assert.Equal(t, fmt.Sprintf("term %d", models.MaxRecentSearches+4), rows[0].Term)
	for _, r := range rows {
		assert.NotEqual(t, "term 0", r.Term)
	}
}

func TestDeleteAndClearRecentSearches(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewSearchHistoryService(db)

	row, err := svc.Add(user.ID, "pho")
	require.NoError(t, err)
	require.NotNil(t, row)
	_, err = svc.Add(user.ID, "banh mi")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(row.ID))
	rows, err := svc.Recent(user.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, svc.Clear(user.ID))
	rows, err = svc.Recent(user.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
