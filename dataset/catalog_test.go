package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamnexus/samparkmain-dashboard/models"
)

func TestDefaultCatalog_Tables(t *testing.T) {
	c := MustDefaultCatalog()

	assert.Equal(t, 4, c.PartnerCount())
	assert.Equal(t, 6, c.PeriodCount())
	assert.Equal(t, 11, c.StateCount())

	opts := c.StateOptions()
	require.Len(t, opts, 11)
	assert.Equal(t, models.StateOption{ID: AllStates, Label: "All States"}, opts[0])
	assert.Equal(t, "andhra-pradesh", opts[1].ID)
	assert.Equal(t, "delhi", opts[len(opts)-1].ID)
	for _, o := range opts {
		assert.NotEqual(t, "default", o.ID)
	}
}

func TestDefaultCatalog_PeriodUtilization(t *testing.T) {
	c := MustDefaultCatalog()
	want := map[string]float64{
		"all": 0.70,
		"YTD": 0.75,
		"Q1":  0.30,
		"Q2":  0.50,
		"Q3":  0.70,
		"Q4":  0.85,
	}
	for id, rate := range want {
		p, ok := c.Period(id)
		require.True(t, ok, id)
		assert.Equal(t, rate, p.Utilization, id)
		assert.NotEmpty(t, p.Months, id)
	}
}

func TestDefaultCatalog_PartnerSharesPartitionTheWhole(t *testing.T) {
	c := MustDefaultCatalog()
	var sum float64
	for _, p := range c.Partners() {
		if p.ID == "all" {
			assert.Equal(t, 1.0, p.Share)
			continue
		}
		sum += p.Share
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestResolve_Fallbacks(t *testing.T) {
	c := MustDefaultCatalog()

	sel, fb := c.Resolve(models.FilterSelection{Partner: "edutech", State: "kerala", Period: "Q2"})
	assert.Equal(t, models.FilterSelection{Partner: "edutech", State: "kerala", Period: "Q2"}, sel)
	assert.Empty(t, fb)

	sel, fb = c.Resolve(models.FilterSelection{Partner: "nope", State: "", Period: "Q9"})
	assert.Equal(t, models.FilterSelection{Partner: "all", State: AllStates, Period: "all"}, sel)
	require.Len(t, fb, 3)
	assert.Equal(t, models.Fallback{Field: "partner", Requested: "nope", Used: "all"}, fb[0])
	assert.Equal(t, models.Fallback{Field: "period", Requested: "Q9", Used: "all"}, fb[1])
	assert.Equal(t, models.Fallback{Field: "state", Requested: "", Used: AllStates}, fb[2])

	sel, fb = c.Resolve(models.FilterSelection{Partner: "all", State: "goa", Period: "all"})
	assert.Equal(t, "goa", sel.State)
	require.Len(t, fb, 1)
	assert.Equal(t, "default", fb[0].Used)
}

func TestResolve_DefaultRecordIsNotSelectable(t *testing.T) {
	c := MustDefaultCatalog()
	assert.False(t, c.KnownState("default"))
	assert.True(t, c.KnownState(AllStates))
	assert.True(t, c.KnownState("delhi"))
}

const minimalReference = `
partners:
  - {id: all, label: All, share: 1.0, progress_factor: 1.0}
periods:
  - {id: all, label: All, budget_factor: 1.0, utilization: 0.7, progress: 0.7, months: [Jan]}
default_state: base
states:
  base:
    totals: {budget: 100, schools: 10, students: 50, teachers: 5, kits: 2}
    overview:
      total_districts: 1
      districts:
        - {code: B01, name: Only, blocks: 3, schools: 10, students: 50, teachers: 5}
  small-state: {}
`

func TestParseCatalog_Minimal(t *testing.T) {
	c, err := ParseCatalog([]byte(minimalReference))
	require.NoError(t, err)

	st, ok := c.State("small-state")
	require.True(t, ok)
	assert.Equal(t, "Small State", st.Label)
	assert.Equal(t, 1.0, st.ProgressFactor)
	assert.Nil(t, st.Totals)
}

func TestParseCatalog_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"no partners": {
			doc:  "periods: [{id: all, months: [Jan]}]\nstates: {default: {}}",
			want: ErrNoPartners,
		},
		"no periods": {
			doc:  "partners: [{id: all, share: 1}]\nstates: {default: {}}",
			want: ErrNoPeriods,
		},
		"no states": {
			doc:  "partners: [{id: all, share: 1}]\nperiods: [{id: all, months: [Jan]}]",
			want: ErrNoStates,
		},
		"missing default": {
			doc:  "partners: [{id: all, share: 1}]\nperiods: [{id: all, months: [Jan]}]\ndefault_state: base\nstates: {other: {}}",
			want: ErrMissingRecord,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseCatalog_RejectsBadRecords(t *testing.T) {
	docs := []string{
		"partners: [{id: all, share: -1}]\nperiods: [{id: all, months: [Jan]}]\nstates: {default: {}}",
		"partners: [{id: all, share: 1}, {id: all, share: 1}]\nperiods: [{id: all, months: [Jan]}]\nstates: {default: {}}",
		"partners: [{id: all, share: 1}]\nperiods: [{id: all}]\nstates: {default: {}}",
		"partners: [{id: all, share: 1}]\nperiods: [{id: all, months: [Jan]}]\nstates: {all: {}}",
		"partners: [{id: all, share: 1}]\nperiods: [{id: all, months: [Jan]}]\ndefault_state: default\nstates: {default: {}}",
		"partners: [{share: 1}]\nperiods: [{id: all, months: [Jan]}]\nstates: {default: {}}",
		"partners: {",
	}
	for _, doc := range docs {
		_, err := ParseCatalog([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalReference), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.StateCount())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
