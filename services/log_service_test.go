package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lia-dsgnr/calo-tracker/models"
)

func phoInput() LogInput {
	return LogInput{
		FoodType:     models.FoodTypeSystem,
		FoodID:       "pho-bo-tai",
		Portion:      models.PortionM,
		NameSnapshot: "Phở bò tái",
		Kcal:         420,
		Protein:      28,
		Fat:          12,
		Carbs:        52,
	}
}

func TestCreateLog(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	log, err := svc.Create(user.ID, phoInput())
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.NotEmpty(t, log.ID)
	assert.Equal(t, "Phở bò tái", log.NameSnapshot)
	assert.Equal(t, 420.0, log.Kcal)
	assert.False(t, log.LoggedAt.IsZero())
}

func TestCreateLogValidation(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	in := phoInput()
	in.FoodType = "mystery"
	_, err := svc.Create(user.ID, in)
	assert.Error(t, err)

	in = phoInput()
	in.Portion = "XL"
	_, err = svc.Create(user.ID, in)
	assert.Error(t, err)

	in = phoInput()
	in.FoodID = ""
	_, err = svc.Create(user.ID, in)
	assert.Error(t, err)

	in = phoInput()
	in.NameSnapshot = ""
	_, err = svc.Create(user.ID, in)
	assert.Error(t, err)
}

func TestCreateLogDailyLimit(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	for i := 0; i < models.MaxLogsPerDay; i++ {
		log, err := svc.Create(user.ID, phoInput())
		require.NoError(t, err)
		require.NotNil(t, log)
	}

	over, err := svc.Create(user.ID, phoInput())
	require.NoError(t, err)
	assert.Nil(t, over)

	today, err := svc.GetToday(user.ID)
	require.NoError(t, err)
	assert.Len(t, today, models.MaxLogsPerDay)
}

func TestDailyLimitIgnoresOtherDays(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	// Fill yesterday to the cap; today must stay open.
	yesterday := time.Now().AddDate(0, 0, -1)
	for i := 0; i < models.MaxLogsPerDay; i++ {
		insertLog(t, db, user.ID, "pho-bo-tai", "Phở bò tái", 420, yesterday)
	}

	log, err := svc.Create(user.ID, phoInput())
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestDeleteLog(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	log, err := svc.Create(user.ID, phoInput())
	require.NoError(t, err)
	require.NotNil(t, log)

	require.NoError(t, svc.Delete(log.ID))

	got, err := svc.GetByID(log.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	today, err := svc.GetToday(user.ID)
	require.NoError(t, err)
	assert.Empty(t, today)

	// Deleting a deleted log is a no-op.
	require.NoError(t, svc.Delete(log.ID))
}

func TestRestoreLog(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	log, err := svc.Create(user.ID, phoInput())
	require.NoError(t, err)
	require.NotNil(t, log)
	require.NoError(t, svc.Delete(log.ID))

	restored, err := svc.Restore(log.ID)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, log.ID, restored.ID)
	assert.Equal(t, 420.0, restored.Kcal)

	// Visible again.
	got, err := svc.GetByID(log.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Restoring an active log returns it unchanged.
	again, err := svc.Restore(log.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, log.ID, again.ID)

	// Unknown ids come back nil.
	missing, err := svc.Restore("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRestoreLogRespectsDailyLimit(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	first, err := svc.Create(user.ID, phoInput())
	require.NoError(t, err)
	require.NotNil(t, first)
	require.NoError(t, svc.Delete(first.ID))

	// The day refills to the cap while the log sits deleted.
	for i := 0; i < models.MaxLogsPerDay; i++ {
		log, err := svc.Create(user.ID, phoInput())
		require.NoError(t, err)
		require.NotNil(t, log)
	}

	restored, err := svc.Restore(first.ID)
	require.NoError(t, err)
	assert.Nil(t, restored)

	today, err := svc.GetToday(user.ID)
	require.NoError(t, err)
	assert.Len(t, today, models.MaxLogsPerDay)
}

func TestPruneOldLogs(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	now := time.Now()
	insertLog(t, db, user.ID, "pho-bo-tai", "Phở bò tái", 420, now)
	old := insertLog(t, db, user.ID, "com-tam", "Cơm tấm sườn", 550, now.AddDate(0, 0, -100))
	oldDeleted := insertLog(t, db, user.ID, "pho-ga", "Phở gà", 380, now.AddDate(0, 0, -120))
	require.NoError(t, svc.Delete(oldDeleted.ID))

	pruned, err := svc.PruneOldLogs(models.LogRetentionDays)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pruned)

	// The old rows are gone for good, not just hidden.
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.FoodLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	gone, err := svc.Restore(old.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	recent, err := svc.GetToday(user.ID)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestDeletedLogFreesDailySlot(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	var last *models.FoodLog
	for i := 0; i < models.MaxLogsPerDay; i++ {
		log, err := svc.Create(user.ID, phoInput())
		require.NoError(t, err)
		require.NotNil(t, log)
		last = log
	}

	require.NoError(t, svc.Delete(last.ID))

	log, err := svc.Create(user.ID, phoInput())
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestGetForDate(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	now := time.Now()
	morning := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, now.Location())
	noon := morning.Add(4 * time.Hour)
	insertLog(t, db, user.ID, "banh-mi-thit", "Bánh mì thịt", 350, morning)
	insertLog(t, db, user.ID, "com-tam", "Cơm tấm sườn", 550, noon)
	insertLog(t, db, user.ID, "pho-ga", "Phở gà", 380, morning.AddDate(0, 0, -1))

	logs, err := svc.GetForDate(user.ID, now)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	// Most recent first.
	assert.Equal(t, "Cơm tấm sườn", logs[0].NameSnapshot)
	assert.Equal(t, "Bánh mì thịt", logs[1].NameSnapshot)
}

func TestGetRecentWindow(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	now := time.Now()
	insertLog(t, db, user.ID, "pho-bo-tai", "Phở bò tái", 420, now)
	insertLog(t, db, user.ID, "pho-ga", "Phở gà", 380, now.AddDate(0, 0, -3))
	insertLog(t, db, user.ID, "com-tam", "Cơm tấm sườn", 550, now.AddDate(0, 0, -10))

	logs, err := svc.GetRecent(user.ID, 7)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "Phở bò tái", logs[0].NameSnapshot)
}

func TestLogTemplate(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	tmpl := &models.MealTemplate{
		ID:     "tmpl-1",
		UserID: user.ID,
		Name:   "Breakfast",
		Items: []models.TemplateItem{
			{TemplateID: "tmpl-1", FoodType: models.FoodTypeSystem, FoodID: "banh-mi-thit", Portion: models.PortionM, NameSnapshot: "Bánh mì thịt", Kcal: 350},
			{TemplateID: "tmpl-1", FoodType: models.FoodTypeSystem, FoodID: "ca-phe-sua-da", Portion: models.PortionM, NameSnapshot: "Cà phê sữa đá", Kcal: 120},
		},
	}

	created, err := svc.LogTemplate(user.ID, tmpl)
	require.NoError(t, err)
	require.Len(t, created, 2)

	today, err := svc.GetToday(user.ID)
	require.NoError(t, err)
	assert.Len(t, today, 2)
}

func TestLogTemplateAtomicRollback(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	tmpl := &models.MealTemplate{
		ID:     "tmpl-bad",
		UserID: user.ID,
		Name:   "Broken",
		Items: []models.TemplateItem{
			{TemplateID: "tmpl-bad", FoodType: models.FoodTypeSystem, FoodID: "banh-mi-thit", Portion: models.PortionM, NameSnapshot: "Bánh mì thịt", Kcal: 350},
			{TemplateID: "tmpl-bad", FoodType: models.FoodTypeSystem, FoodID: "ca-phe-sua-da", Portion: "XXL", NameSnapshot: "Cà phê sữa đá", Kcal: 120},
		},
	}

	_, err := svc.LogTemplate(user.ID, tmpl)
	require.Error(t, err)

	// The valid first item must not survive the failed batch.
	today, err := svc.GetToday(user.ID)
	require.NoError(t, err)
	assert.Empty(t, today)
}

func TestLogTemplateRespectsDailyLimit(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	for i := 0; i < models.MaxLogsPerDay-1; i++ {
		log, err := svc.Create(user.ID, phoInput())
		require.NoError(t, err)
		require.NotNil(t, log)
	}

	tmpl := &models.MealTemplate{
		ID:     "tmpl-2",
		UserID: user.ID,
		Name:   "Dinner",
		Items: []models.TemplateItem{
			{TemplateID: "tmpl-2", FoodType: models.FoodTypeSystem, FoodID: "com-tam", Portion: models.PortionM, NameSnapshot: "Cơm tấm sườn", Kcal: 550},
			{TemplateID: "tmpl-2", FoodType: models.FoodTypeSystem, FoodID: "nuoc-mia", Portion: models.PortionM, NameSnapshot: "Nước mía", Kcal: 150},
		},
	}

	// Two items into one remaining slot: nothing is written.
	created, err := svc.LogTemplate(user.ID, tmpl)
	require.NoError(t, err)
	assert.Nil(t, created)

	today, err := svc.GetToday(user.ID)
	require.NoError(t, err)
	assert.Len(t, today, models.MaxLogsPerDay-1)
}

func TestGetMostLogged(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	now := time.Now()
	for i := 0; i < 3; i++ {
		insertLog(t, db, user.ID, "pho-bo-tai", "Phở bò tái", 420, now.Add(-time.Duration(i)*time.Hour))
	}
	insertLog(t, db, user.ID, "banh-mi-thit", "Bánh mì thịt", 350, now)
	insertLog(t, db, user.ID, "com-tam", "Cơm tấm sườn", 550, now.AddDate(0, 0, -40)) // outside window

	rows, err := svc.GetMostLogged(user.ID, 30, 8)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "pho-bo-tai", rows[0].FoodID)
	assert.Equal(t, int64(3), rows[0].LogCount)
	assert.Equal(t, "banh-mi-thit", rows[1].FoodID)
}

func TestGetMostLoggedLimit(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewLogService(db)

	now := time.Now()
	for i := 0; i < 12; i++ {
		insertLog(t, db, user.ID, fmt.Sprintf("food-%d", i), fmt.Sprintf("Food %d", i), 100, now)
	}

	rows, err := svc.GetMostLogged(user.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, rows, models.MaxRecentItems)
}
