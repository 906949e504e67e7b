package objective_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/okrun-lambda/internal/apperror"
	"github.com/saulo-duarte/okrun-lambda/internal/auth"
	"github.com/saulo-duarte/okrun-lambda/internal/cycle"
	"github.com/saulo-duarte/okrun-lambda/internal/database/databasetest"
	"github.com/saulo-duarte/okrun-lambda/internal/keyresult"
	"github.com/saulo-duarte/okrun-lambda/internal/objective"
	"github.com/saulo-duarte/okrun-lambda/internal/role"
	"github.com/saulo-duarte/okrun-lambda/internal/user"
	util "github.com/saulo-duarte/okrun-lambda/internal/utils"
)

type fixture struct {
	db      *gorm.DB
	cycles  cycle.CycleService
	service objective.ObjectiveService
	admin   *user.User
	manager *user.User
	member  *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := databasetest.New(t)
	cycles := cycle.NewService(cycle.NewRepository(db))

	return &fixture{
		db:      db,
		cycles:  cycles,
		service: objective.NewService(objective.NewRepository(db), cycles),
		admin:   databasetest.CreateUser(t, db, "admin", role.Admin),
		manager: databasetest.CreateUser(t, db, "manager", role.Manager),
		member:  databasetest.CreateUser(t, db, "member", role.Member),
	}
}

func as(u *user.User) context.Context {
	return auth.WithActor(context.Background(), u.ID, u.RoleID)
}

func kr(title string, target float64) keyresult.KeyResultInput {
	return keyresult.KeyResultInput{Title: title, TargetValue: &target, Unit: "pts"}
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func TestCreateLevelAuthorization(t *testing.T) {
	f := newFixture(t)

	t.Run("ManagerCompanyRejected", func(t *testing.T) {
		_, err := f.service.Create(as(f.manager), objective.CreateObjectiveInput{
			Title:  "Win the market",
			Level:  "Công ty",
			Status: objective.StatusDraft,
		})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
		assert.Contains(t, err.Error(), "Công ty")
		assert.Zero(t, f.count(t, &objective.Objective{}))
	})

	t.Run("ManagerDepartmentAccepted", func(t *testing.T) {
		o, err := f.service.Create(as(f.manager), objective.CreateObjectiveInput{
			Title:  "Win the region",
			Level:  "Phòng ban",
			Status: objective.StatusDraft,
		})
		require.NoError(t, err)
		assert.Equal(t, objective.LevelDepartment, o.Level)
		assert.Equal(t, f.manager.ID, o.UserID)
	})

	t.Run("EnglishKeyAccepted", func(t *testing.T) {
		o, err := f.service.Create(as(f.admin), objective.CreateObjectiveInput{
			Title:  "Company goal",
			Level:  "company",
			Status: objective.StatusActive,
		})
		require.NoError(t, err)
		assert.Equal(t, objective.LevelCompany, o.Level)
	})

	t.Run("DefaultLevelIsIndividual", func(t *testing.T) {
		o, err := f.service.Create(as(f.member), objective.CreateObjectiveInput{
			Title:  "Read more",
			Status: objective.StatusActive,
		})
		require.NoError(t, err)
		assert.Equal(t, objective.LevelIndividual, o.Level)
	})

	t.Run("AuthorizationBeforeValidation", func(t *testing.T) {
		_, err := f.service.Create(as(f.member), objective.CreateObjectiveInput{Level: "Phòng ban"})
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	})

	t.Run("NoActor", func(t *testing.T) {
		_, err := f.service.Create(context.Background(), objective.CreateObjectiveInput{Title: "x", Status: objective.StatusDraft})
		assert.ErrorIs(t, err, objective.ErrUnauthenticated)
	})
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	missing := uint(404)

	_, err := f.service.Create(as(f.member), objective.CreateObjectiveInput{
		Status:     "archived",
		CycleID:    &missing,
		KeyResults: []keyresult.KeyResultInput{kr("", 0), {Title: "No target"}},
	})

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "obj_title")
	assert.Contains(t, appErr.Fields, "status")
	assert.Contains(t, appErr.Fields, "cycle_id")
	assert.Contains(t, appErr.Fields, "key_results.1.target_value")
	assert.Contains(t, appErr.Fields, "key_results.1.unit")
	assert.NotContains(t, appErr.Fields, "key_results.0.kr_title")
	assert.Zero(t, f.count(t, &objective.Objective{}))
}

func TestCreateSkipsUntitledKeyResults(t *testing.T) {
	f := newFixture(t)

	o, err := f.service.Create(as(f.member), objective.CreateObjectiveInput{
		Title:      "Ship the app",
		Level:      "Nhóm",
		Status:     objective.StatusActive,
		KeyResults: []keyresult.KeyResultInput{kr("Release v1", 1), {Title: "   "}},
	})
	require.NoError(t, err)
	require.Len(t, o.KeyResults, 1)
	assert.Equal(t, "Release v1", o.KeyResults[0].Title)
	assert.Equal(t, o.ID, o.KeyResults[0].ObjectiveID)
	assert.Equal(t, int64(1), f.count(t, &keyresult.KeyResult{}))
}

func TestCreateInheritsCycle(t *testing.T) {
	f := newFixture(t)
	start, end := util.MustParseDate("2025-01-01"), util.MustParseDate("2025-03-31")
	q1, err := f.cycles.Create(context.Background(), cycle.CycleInput{
		Name: "Q1-2025", StartDate: &start, EndDate: &end, Status: "active",
	})
	require.NoError(t, err)

	o, err := f.service.Create(as(f.member), objective.CreateObjectiveInput{
		Title:      "Ship",
		Status:     objective.StatusActive,
		KeyResults: []keyresult.KeyResultInput{kr("Release", 1)},
	})
	require.NoError(t, err)
	require.NotNil(t, o.CycleID)
	assert.Equal(t, q1.ID, *o.CycleID)
	require.NotNil(t, o.KeyResults[0].CycleID)
	assert.Equal(t, q1.ID, *o.KeyResults[0].CycleID)
}

func TestCreateRollsBackOnFailure(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.db.Callback().Create().Before("gorm:create").Register("test:fail_key_result", func(tx *gorm.DB) {
		if k, ok := tx.Statement.Dest.(*keyresult.KeyResult); ok && k.Title == "explode" {
			_ = tx.AddError(errors.New("constraint violation"))
		}
	}))

	_, err := f.service.Create(as(f.member), objective.CreateObjectiveInput{
		Title:      "Half written",
		Status:     objective.StatusDraft,
		KeyResults: []keyresult.KeyResultInput{kr("fine", 1), kr("explode", 1)},
	})
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindTransaction, appErr.Kind)
	assert.NotContains(t, appErr.Message, "constraint violation")

	assert.Zero(t, f.count(t, &objective.Objective{}))
	assert.Zero(t, f.count(t, &keyresult.KeyResult{}))
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := as(f.manager)

	o, err := f.service.Create(ctx, objective.CreateObjectiveInput{
		Title:  "Draft goal",
		Level:  "Nhóm",
		Status: objective.StatusDraft,
	})
	require.NoError(t, err)

	t.Run("TitleAndStatus", func(t *testing.T) {
		progress := 40.0
		updated, err := f.service.Update(ctx, o.ID, objective.UpdateObjectiveInput{
			Title:           "Final goal",
			Status:          objective.StatusCompleted,
			ProgressPercent: &progress,
		})
		require.NoError(t, err)
		assert.Equal(t, "Final goal", updated.Title)
		assert.Equal(t, objective.StatusCompleted, updated.Status)
		assert.Equal(t, 40.0, updated.ProgressPercent)
		assert.Equal(t, objective.LevelTeam, updated.Level)
	})

	t.Run("LevelChecked", func(t *testing.T) {
		company := "Công ty"
		_, err := f.service.Update(ctx, o.ID, objective.UpdateObjectiveInput{
			Title:  "Final goal",
			Level:  &company,
			Status: objective.StatusActive,
		})
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := f.service.Update(ctx, 999, objective.UpdateObjectiveInput{Title: "x", Status: objective.StatusDraft})
		assert.ErrorIs(t, err, objective.ErrObjectiveNotFound)
	})
}

func TestDeleteCascadesKeyResults(t *testing.T) {
	f := newFixture(t)

	o, err := f.service.Create(as(f.member), objective.CreateObjectiveInput{
		Title:      "Short lived",
		Status:     objective.StatusDraft,
		KeyResults: []keyresult.KeyResultInput{kr("a", 1), kr("b", 2)},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), f.count(t, &keyresult.KeyResult{}))

	require.NoError(t, f.service.Delete(context.Background(), o.ID))
	assert.Zero(t, f.count(t, &objective.Objective{}))
	assert.Zero(t, f.count(t, &keyresult.KeyResult{}))

	assert.ErrorIs(t, f.service.Delete(context.Background(), o.ID), objective.ErrObjectiveNotFound)
}

func TestListPaginates(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 12; i++ {
		_, err := f.service.Create(as(f.member), objective.CreateObjectiveInput{
			Title:  "Goal",
			Status: objective.StatusDraft,
		})
		require.NoError(t, err)
	}

	page1, meta, err := f.service.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, page1, objective.PerPage)
	assert.Equal(t, int64(12), meta.Total)
	require.NotNil(t, page1[0].User)
	assert.Equal(t, f.member.ID, page1[0].User.ID)

	page2, meta, err := f.service.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page2, 2)
	assert.Equal(t, 2, meta.Page)

	_, meta, err = f.service.List(context.Background(), -3)
	require.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
}

func TestCycleDetail(t *testing.T) {
	f := newFixture(t)
	start, end := util.MustParseDate("2025-04-01"), util.MustParseDate("2025-06-30")
	q2, err := f.cycles.Create(context.Background(), cycle.CycleInput{
		Name: "Q2-2025", StartDate: &start, EndDate: &end, Status: "active",
	})
	require.NoError(t, err)

	_, err = f.service.Create(as(f.manager), objective.CreateObjectiveInput{
		Title:   "In Q2",
		Level:   "Phòng ban",
		Status:  objective.StatusActive,
		CycleID: &q2.ID,
	})
	require.NoError(t, err)

	detail, err := f.service.CycleDetail(context.Background(), q2.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q2-2025", detail.Cycle.Name)
	require.Len(t, detail.Objectives, 1)
	require.NotNil(t, detail.Objectives[0].User)
	assert.Equal(t, "manager", detail.Objectives[0].User.FullName)

	_, err = f.service.CycleDetail(context.Background(), 999)
	assert.ErrorIs(t, err, cycle.ErrCycleNotFound)
}

func TestAllowedLevelsForActor(t *testing.T) {
	f := newFixture(t)

	levels, err := f.service.AllowedLevels(as(f.manager))
	require.NoError(t, err)
	assert.Equal(t, objective.AllowedLevels(role.Manager), levels)
}
