package keyresult_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/okrun-lambda/internal/apperror"
	"github.com/saulo-duarte/okrun-lambda/internal/cycle"
	"github.com/saulo-duarte/okrun-lambda/internal/database/databasetest"
	"github.com/saulo-duarte/okrun-lambda/internal/keyresult"
	"github.com/saulo-duarte/okrun-lambda/internal/objective"
	"github.com/saulo-duarte/okrun-lambda/internal/role"
	util "github.com/saulo-duarte/okrun-lambda/internal/utils"
)

type fixture struct {
	db      *gorm.DB
	cycles  cycle.CycleService
	service keyresult.KeyResultService
	ownerID uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := databasetest.New(t)
	cycles := cycle.NewService(cycle.NewRepository(db))
	objectives := objective.NewService(objective.NewRepository(db), cycles)
	owner := databasetest.CreateUser(t, db, "owner", role.Member)

	return &fixture{
		db:      db,
		cycles:  cycles,
		service: keyresult.NewService(keyresult.NewRepository(db), objectives, cycles),
		ownerID: owner.ID,
	}
}

func (f *fixture) cycle(t *testing.T, name, start, end string, status cycle.CycleStatus) *cycle.Cycle {
	t.Helper()
	s, e := util.MustParseDate(start), util.MustParseDate(end)
	c, err := f.cycles.Create(context.Background(), cycle.CycleInput{
		Name:      name,
		StartDate: &s,
		EndDate:   &e,
		Status:    string(status),
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) objective(t *testing.T, cycleID *uint) *objective.Objective {
	t.Helper()
	o := &objective.Objective{
		Title:   "Grow revenue",
		Level:   objective.LevelTeam,
		Status:  objective.StatusActive,
		UserID:  f.ownerID,
		CycleID: cycleID,
	}
	require.NoError(t, f.db.Create(o).Error)
	return o
}

func input(title string, target float64) keyresult.KeyResultInput {
	return keyresult.KeyResultInput{Title: title, TargetValue: &target, Unit: "%"}
}

func TestCreateResolvesCycle(t *testing.T) {
	ctx := context.Background()

	t.Run("PayloadCycle", func(t *testing.T) {
		f := newFixture(t)
		q1 := f.cycle(t, "Q1-2025", "2025-01-01", "2025-03-31", cycle.CycleStatusActive)
		q2 := f.cycle(t, "Q2-2025", "2025-04-01", "2025-06-30", cycle.CycleStatusActive)
		o := f.objective(t, &q1.ID)

		in := input("Ship", 10)
		in.CycleID = &q2.ID
		kr, err := f.service.Create(ctx, o.ID, in)
		require.NoError(t, err)
		require.NotNil(t, kr.CycleID)
		assert.Equal(t, q2.ID, *kr.CycleID)
	})

	t.Run("ObjectiveCycle", func(t *testing.T) {
		f := newFixture(t)
		f.cycle(t, "Q1-2025", "2025-01-01", "2025-03-31", cycle.CycleStatusActive)
		q2 := f.cycle(t, "Q2-2025", "2025-04-01", "2025-06-30", cycle.CycleStatusInactive)
		o := f.objective(t, &q2.ID)

		kr, err := f.service.Create(ctx, o.ID, input("Ship", 10))
		require.NoError(t, err)
		require.NotNil(t, kr.CycleID)
		assert.Equal(t, q2.ID, *kr.CycleID)
	})

	t.Run("FirstActiveCycle", func(t *testing.T) {
		f := newFixture(t)
		f.cycle(t, "Q4-2024", "2024-10-01", "2024-12-31", cycle.CycleStatusInactive)
		active := f.cycle(t, "Q1-2025", "2025-01-01", "2025-03-31", cycle.CycleStatusActive)
		o := f.objective(t, nil)

		kr, err := f.service.Create(ctx, o.ID, input("Ship", 10))
		require.NoError(t, err)
		require.NotNil(t, kr.CycleID)
		assert.Equal(t, active.ID, *kr.CycleID)
	})

	t.Run("LatestCycleWhenNoneActive", func(t *testing.T) {
		f := newFixture(t)
		f.cycle(t, "Q4-2024", "2024-10-01", "2024-12-31", cycle.CycleStatusInactive)
		latest := f.cycle(t, "Q1-2025", "2025-01-01", "2025-03-31", cycle.CycleStatusInactive)
		o := f.objective(t, nil)

		kr, err := f.service.Create(ctx, o.ID, input("Ship", 10))
		require.NoError(t, err)
		require.NotNil(t, kr.CycleID)
		assert.Equal(t, latest.ID, *kr.CycleID)
	})

	t.Run("NoCycleAtAll", func(t *testing.T) {
		f := newFixture(t)
		o := f.objective(t, nil)

		kr, err := f.service.Create(ctx, o.ID, input("Ship", 10))
		require.NoError(t, err)
		assert.Nil(t, kr.CycleID)
	})
}

func TestCreateComputesProgress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	o := f.objective(t, nil)

	in := input("Signups", 400)
	current := 100.0
	in.CurrentValue = &current

	kr, err := f.service.Create(ctx, o.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 25.0, kr.ProgressPercent)
	assert.Equal(t, keyresult.StatusActive, kr.Status)

	stored, err := f.service.Get(ctx, o.ID, kr.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, stored.ProgressPercent)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	o := f.objective(t, nil)

	t.Run("MissingFields", func(t *testing.T) {
		_, err := f.service.Create(ctx, o.ID, keyresult.KeyResultInput{})
		require.Error(t, err)

		var appErr *apperror.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindValidation, appErr.Kind)
		assert.Contains(t, appErr.Fields, "kr_title")
		assert.Contains(t, appErr.Fields, "target_value")
		assert.Contains(t, appErr.Fields, "unit")
	})

	t.Run("UnknownCycle", func(t *testing.T) {
		in := input("Ship", 10)
		missing := uint(999)
		in.CycleID = &missing

		_, err := f.service.Create(ctx, o.ID, in)
		var appErr *apperror.Error
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Fields, "cycle_id")
	})

	t.Run("UnknownObjective", func(t *testing.T) {
		_, err := f.service.Create(ctx, 999, input("Ship", 10))
		assert.ErrorIs(t, err, objective.ErrObjectiveNotFound)
	})
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	o := f.objective(t, nil)
	other := f.objective(t, nil)

	weight := 40
	in := input("Ship", 10)
	in.Weight = &weight
	kr, err := f.service.Create(ctx, o.ID, in)
	require.NoError(t, err)

	t.Run("ScopedByObjective", func(t *testing.T) {
		_, err := f.service.Get(ctx, other.ID, kr.ID)
		assert.ErrorIs(t, err, keyresult.ErrKeyResultNotFound)
	})

	t.Run("PartialUpdate", func(t *testing.T) {
		current := 5.0
		upd := input("Ship v2", 20)
		upd.CurrentValue = &current

		updated, err := f.service.Update(ctx, o.ID, kr.ID, upd)
		require.NoError(t, err)
		assert.Equal(t, "Ship v2", updated.Title)
		assert.Equal(t, 40, updated.Weight)
		assert.Equal(t, 25.0, updated.ProgressPercent)
	})

	t.Run("List", func(t *testing.T) {
		krs, err := f.service.List(ctx, o.ID)
		require.NoError(t, err)
		assert.Len(t, krs, 1)

		_, err = f.service.List(ctx, 999)
		assert.ErrorIs(t, err, objective.ErrObjectiveNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, f.service.Delete(ctx, o.ID, kr.ID))
		assert.ErrorIs(t, f.service.Delete(ctx, o.ID, kr.ID), keyresult.ErrKeyResultNotFound)
	})
}
