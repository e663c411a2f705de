package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

// StateProfile is the effective data for a state id after default and
// aggregate resolution.
type StateProfile struct {
	ID             string
	Label          string
	ProgressFactor float64
	UrbanShare     float64
	Totals         models.BaseTotals
	Overview       models.StateOverview
	// Borrowed is set when the figures come from the default record.
	Borrowed bool
}

// Profile resolves a state id to its effective data. Unknown ids and states
// configured without figures borrow the default record.
func (c *Catalog) Profile(id string) StateProfile {
	if id == AllStates {
		return c.aggregateProfile()
	}
	def := c.stateIdx[c.defaultState]
	st, ok := c.stateIdx[id]
	if !ok {
		return c.borrowDefault(id, titleFromID(id), 1, def.UrbanShare)
	}
	if st.Totals == nil || st.Overview == nil {
		share := st.UrbanShare
		if share == 0 {
			share = def.UrbanShare
		}
		return c.borrowDefault(st.ID, st.Label, st.ProgressFactor, share)
	}
	return StateProfile{
		ID:             st.ID,
		Label:          st.Label,
		ProgressFactor: st.ProgressFactor,
		UrbanShare:     st.UrbanShare,
		Totals:         *st.Totals,
		Overview:       cloneOverview(*st.Overview),
	}
}

func (c *Catalog) borrowDefault(id, label string, progress, urban float64) StateProfile {
	def := c.stateIdx[c.defaultState]
	ov := cloneOverview(*def.Overview)
	prefix := districtPrefix(id)
	for i := range ov.Districts {
		ov.Districts[i].Name = fmt.Sprintf("%s District %d", label, i+1)
		ov.Districts[i].Code = fmt.Sprintf("%s%02d", prefix, i+1)
	}
	return StateProfile{
		ID:             id,
		Label:          label,
		ProgressFactor: progress,
		UrbanShare:     urban,
		Totals:         *def.Totals,
		Overview:       ov,
		Borrowed:       true,
	}
}

func districtPrefix(id string) string {
	letters := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(letters) > 2 {
		letters = letters[:2]
	}
	for len(letters) < 2 {
		letters += "X"
	}
	return letters
}

// aggregateProfile sums every state record that carries its own figures,
// the default record included. States that borrow the default are skipped so
// it is counted once. The district list keeps the ten largest districts by
// school count.
func (c *Catalog) aggregateProfile() StateProfile {
	def := c.stateIdx[c.defaultState]
	agg := StateProfile{
		ID:             AllStates,
		Label:          "All States",
		ProgressFactor: 1,
		UrbanShare:     def.UrbanShare,
	}
	var districts []models.District
	for _, st := range c.states {
		if st.Totals == nil || st.Overview == nil {
			continue
		}
		totals, src := st.Totals, st.Overview
		agg.Totals.Budget += totals.Budget
		agg.Totals.Schools += totals.Schools
		agg.Totals.Students += totals.Students
		agg.Totals.Teachers += totals.Teachers
		agg.Totals.Kits += totals.Kits

		ov := &agg.Overview
		ov.TotalDistricts += src.TotalDistricts
		ov.STVInstalled += src.STVInstalled
		ov.TeachersTrained += src.TeachersTrained
		ov.TotalMeetings += src.TotalMeetings
		ov.Lessons.MoreThan5 += src.Lessons.MoreThan5
		ov.Lessons.LessThan5 += src.Lessons.LessThan5
		for i, v := range src.SchoolVisits {
			if i >= len(ov.SchoolVisits) {
				ov.SchoolVisits = append(ov.SchoolVisits, models.MonthlyVisits{Month: v.Month})
			}
			ov.SchoolVisits[i].Visits += v.Visits
		}
		districts = append(districts, src.Districts...)
	}
	sort.SliceStable(districts, func(i, j int) bool {
		return districts[i].Schools > districts[j].Schools
	})
	if len(districts) > models.MaxChildren {
		districts = districts[:models.MaxChildren]
	}
	agg.Overview.Districts = districts
	return agg
}

func cloneOverview(ov models.StateOverview) models.StateOverview {
	ov.SchoolVisits = append([]models.MonthlyVisits(nil), ov.SchoolVisits...)
	ov.Districts = append([]models.District(nil), ov.Districts...)
	return ov
}

// FilteredData returns the base totals for a selection. The selection is
// resolved first, so unknown ids never produce an empty record.
func (c *Catalog) FilteredData(sel models.FilterSelection) models.BaseTotals {
	sel, _ = c.Resolve(sel)
	partner, _ := c.Partner(sel.Partner)
	period, _ := c.Period(sel.Period)
	base := c.Profile(sel.State).Totals

	return models.BaseTotals{
		Budget:   nonNegative(utils.FloorMul(base.Budget, partner.Share, period.BudgetFactor)),
		Schools:  nonNegative(utils.FloorMul(base.Schools, partner.Share)),
		Students: nonNegative(utils.FloorMul(base.Students, partner.Share)),
		Teachers: nonNegative(utils.FloorMul(base.Teachers, partner.Share)),
		Kits:     nonNegative(utils.FloorMul(base.Kits, partner.Share)),
	}
}

// District finds a district of the given state by code.
func (c *Catalog) District(state, code string) (models.District, bool) {
	for _, d := range c.Profile(state).Overview.Districts {
		if strings.EqualFold(d.Code, code) {
			return d, true
		}
	}
	return models.District{}, false
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
