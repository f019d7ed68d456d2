package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lia-dsgnr/calo-tracker/config"
	"github.com/lia-dsgnr/calo-tracker/models"
)

func TestCreateUserDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Create("")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, config.DefaultUserName, user.Name)
	assert.Equal(t, float64(models.DefaultKcalGoal), user.DailyKcalGoal)
	assert.Equal(t, float64(models.DefaultProteinGoal), user.DailyProteinGoal)
	assert.Equal(t, float64(models.DefaultCarbsGoal), user.DailyCarbsGoal)
	assert.Equal(t, float64(models.DefaultFatGoal), user.DailyFatGoal)
}

func TestGetUserByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Create("Lan")
	require.NoError(t, err)

	got, err := svc.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Lan", got.Name)

	missing, err := svc.GetByID("ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDefaultUserIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	first, err := svc.Default()
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.Default()
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
}

func TestUpdateGoals(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Create("Lan")
	require.NoError(t, err)

	updated, err := svc.UpdateGoals(user.ID, models.DailyGoals{
		DailyKcal:    2200,
		DailyProtein: 110,
		DailyCarbs:   240,
		DailyFat:     70,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 2200.0, updated.DailyKcalGoal)

	reloaded, err := svc.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, 110.0, reloaded.DailyProteinGoal)

	missing, err := svc.UpdateGoals("ghost", models.DailyGoals{DailyKcal: 2000})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
