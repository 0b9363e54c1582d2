package capacity

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewplan/crewplan/core/model"
)

func idleWorkforce(t *testing.T, n int) *model.Store {
	t.Helper()
	store := model.NewStore()
	for i := 1; i <= n; i++ {
		e, err := model.NewEmployee(i, "emp", []model.Skill{"Editor"})
		require.NoError(t, err)
		require.NoError(t, store.AddEmployee(e))
	}
	return store
}

func withHours(t *testing.T, store *model.Store, id int, regular, overtime float64) {
	t.Helper()
	e := store.Employee(id)
	require.NotNil(t, e)
	e.RegularHours = regular
	e.OvertimeHours = overtime
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	iv, err := model.NewInterval(start, start.Add(time.Duration(regular+overtime)*time.Hour))
	require.NoError(t, err)
	e.Assignments = append(e.Assignments, model.Assignment{
		EmployeeID: id, ProjectID: 1, Interval: iv,
		RegularHours: regular, OvertimeHours: overtime,
	})
}

func newAnalyzer(t *testing.T, store *model.Store) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(store, Config{})
	require.NoError(t, err)
	return a
}

func TestIdleWorkforceUtilization(t *testing.T) {
	store := idleWorkforce(t, 10)
	a := newAnalyzer(t, store)

	team := a.TeamUtilization()
	assert.Equal(t, 10, team.TotalEmployees)
	assert.Equal(t, 0, team.ActiveEmployees)
	assert.Equal(t, 0.0, team.AverageUtilization)
	assert.Len(t, a.Underutilized(), 10)
	assert.Empty(t, a.Overworked())
}

func TestEmployeeUtilizationRate(t *testing.T) {
	store := idleWorkforce(t, 1)
	withHours(t, store, 1, 1460, 0) // half of 365*8
	a := newAnalyzer(t, store)

	m := a.EmployeeUtilization(store.Employee(1))
	assert.InDelta(t, 50.0, m.UtilizationRate, 1e-9)
	assert.Equal(t, 0.0, m.OvertimePercentage)
}

func TestOverworkedExcludesZeroHours(t *testing.T) {
	store := idleWorkforce(t, 3)
	withHours(t, store, 1, 6, 4)  // 40% overtime
	withHours(t, store, 2, 10, 1) // ~9% overtime
	a := newAnalyzer(t, store)

	over := a.Overworked()
	require.Len(t, over, 1)
	assert.Equal(t, 1, over[0].EmployeeID)
}

func TestCosts(t *testing.T) {
	store := idleWorkforce(t, 2)
	withHours(t, store, 1, 100, 0)
	withHours(t, store, 2, 50, 10)
	a := newAnalyzer(t, store)

	c := a.Costs()
	assert.InDelta(t, 150.0, c.RegularCost, 1e-9)
	assert.InDelta(t, 13.0, c.OvertimeCost, 1e-9)
	assert.InDelta(t, 163.0, c.TotalCost, 1e-9)
}

func TestCompareOvertimeVsHiring(t *testing.T) {
	store := idleWorkforce(t, 1)
	withHours(t, store, 1, 8, 100)
	a := newAnalyzer(t, store)

	cmp := a.CompareOvertimeVsHiring(1)
	assert.Equal(t, 100.0, cmp.OvertimeEliminatedHours)
	assert.InDelta(t, 30.0, cmp.OvertimeSavings, 1e-9)
	assert.InDelta(t, 2920.0, cmp.HiringCost, 1e-9)
	assert.Equal(t, "retain overtime", cmp.Recommendation)
	assert.InDelta(t, 130.0/2920.0, cmp.BreakEvenEmployees, 1e-9)
}

func TestBreakEvenMonotonicity(t *testing.T) {
	store := idleWorkforce(t, 1)
	withHours(t, store, 1, 8, 500)
	a := newAnalyzer(t, store)

	prev := a.CompareOvertimeVsHiring(1).NetCost
	for n := 2; n <= 5; n++ {
		cur := a.CompareOvertimeVsHiring(n).NetCost
		assert.GreaterOrEqual(t, cur, prev, "net cost must not decrease at n=%d", n)
		prev = cur
	}
}

func TestAnalysisIsIdempotent(t *testing.T) {
	store := idleWorkforce(t, 3)
	withHours(t, store, 1, 40, 8)
	withHours(t, store, 2, 12, 0)
	a := newAnalyzer(t, store)

	first := a.TeamUtilization()
	second := a.TeamUtilization()
	assert.True(t, reflect.DeepEqual(first, second))

	c1, c2 := a.Costs(), a.Costs()
	assert.True(t, reflect.DeepEqual(c1, c2))
}

func TestSizingRecommendsHiringUnderHighOvertime(t *testing.T) {
	store := idleWorkforce(t, 2)
	withHours(t, store, 1, 8, 2000)
	withHours(t, store, 2, 8, 2000)
	a := newAnalyzer(t, store)

	rec := a.RecommendWorkforceSize()
	assert.Greater(t, rec.RecommendedHeadcount, rec.CurrentHeadcount)
	assert.Equal(t, "high", rec.ConfidenceLevel)
	assert.Contains(t, rec.Reasoning, "High overtime")
}

func TestSizingRecommendsReductionWhenUnderutilized(t *testing.T) {
	store := idleWorkforce(t, 4)
	withHours(t, store, 1, 100, 0)
	a := newAnalyzer(t, store)

	rec := a.RecommendWorkforceSize()
	assert.Less(t, rec.RecommendedHeadcount, rec.CurrentHeadcount)
	assert.Negative(t, rec.ExpectedCostImpact)
}

func TestSkillDemandAndShortages(t *testing.T) {
	store := model.NewStore()
	e, err := model.NewEmployee(1, "emp", []model.Skill{"Editor"})
	require.NoError(t, err)
	require.NoError(t, store.AddEmployee(e))
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 2; i++ {
		iv, err := model.NewInterval(start, start.Add(4*time.Hour))
		require.NoError(t, err)
		p, err := model.NewProject(i, "proj", iv, []model.Skill{"Editor", "Colorist"}, 5, 2)
		require.NoError(t, err)
		require.NoError(t, store.AddProject(p))
	}
	a := newAnalyzer(t, store)

	demand := a.AnalyzeSkillDemand()
	require.Len(t, demand, 2)
	assert.Equal(t, model.Skill("Colorist"), demand[0].Skill)
	assert.Equal(t, 2, demand[0].Required)
	assert.Equal(t, 0, demand[0].Available)
	assert.Equal(t, 1, demand[1].Available)

	shortages := a.SkillShortages()
	require.Len(t, shortages, 2)
}
