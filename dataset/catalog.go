package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shubhamnexus/samparkmain-dashboard/models"
)

//go:embed reference.yaml
var embeddedReference []byte

// AllStates is the synthetic state id that aggregates every configured state.
const AllStates = "all"

var (
	ErrNoPartners    = errors.New("reference: no partners configured")
	ErrNoPeriods     = errors.New("reference: no periods configured")
	ErrNoStates      = errors.New("reference: no states configured")
	ErrMissingRecord = errors.New("reference: default record missing")
)

// State is one entry of the state table. Totals and Overview are nil for
// states that borrow the default record.
type State struct {
	ID             string
	Label          string                `yaml:"label"`
	ProgressFactor float64               `yaml:"progress_factor"`
	UrbanShare     float64               `yaml:"urban_share"`
	Totals         *models.BaseTotals    `yaml:"totals"`
	Overview       *models.StateOverview `yaml:"overview"`
}

type referenceFile struct {
	DefaultPartner string           `yaml:"default_partner"`
	DefaultPeriod  string           `yaml:"default_period"`
	DefaultState   string           `yaml:"default_state"`
	Partners       []models.Partner `yaml:"partners"`
	Periods        []models.Period  `yaml:"periods"`
	States         yaml.Node        `yaml:"states"`
}

// Catalog holds the reference tables. It is immutable after loading and safe
// for concurrent use.
type Catalog struct {
	partners   []models.Partner
	periods    []models.Period
	states     []*State
	partnerIdx map[string]int
	periodIdx  map[string]int
	stateIdx   map[string]*State

	defaultPartner string
	defaultPeriod  string
	defaultState   string
}

// LoadCatalog reads the reference tables from path, or from the embedded
// resource when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := embeddedReference
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading reference file %s: %w", path, err)
		}
		data = raw
	}
	return ParseCatalog(data)
}

// MustDefaultCatalog loads the embedded tables and panics if they are broken.
func MustDefaultCatalog() *Catalog {
	c, err := LoadCatalog("")
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCatalog decodes and validates a reference document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file referenceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding reference tables: %w", err)
	}

	c := &Catalog{
		partners:       file.Partners,
		periods:        file.Periods,
		partnerIdx:     make(map[string]int, len(file.Partners)),
		periodIdx:      make(map[string]int, len(file.Periods)),
		stateIdx:       make(map[string]*State),
		defaultPartner: file.DefaultPartner,
		defaultPeriod:  file.DefaultPeriod,
		defaultState:   file.DefaultState,
	}

	if len(c.partners) == 0 {
		return nil, ErrNoPartners
	}
	if len(c.periods) == 0 {
		return nil, ErrNoPeriods
	}

	for i, p := range c.partners {
		if p.ID == "" {
			return nil, fmt.Errorf("reference: partner #%d has no id", i+1)
		}
		if p.Share < 0 {
			return nil, fmt.Errorf("reference: partner %q has negative share", p.ID)
		}
		if _, dup := c.partnerIdx[p.ID]; dup {
			return nil, fmt.Errorf("reference: duplicate partner %q", p.ID)
		}
		c.partnerIdx[p.ID] = i
	}
	for i, p := range c.periods {
		if p.ID == "" {
			return nil, fmt.Errorf("reference: period #%d has no id", i+1)
		}
		if len(p.Months) == 0 {
			return nil, fmt.Errorf("reference: period %q lists no months", p.ID)
		}
		if _, dup := c.periodIdx[p.ID]; dup {
			return nil, fmt.Errorf("reference: duplicate period %q", p.ID)
		}
		c.periodIdx[p.ID] = i
	}

	if err := c.decodeStates(&file.States); err != nil {
		return nil, err
	}

	if c.defaultPartner == "" {
		c.defaultPartner = c.partners[0].ID
	}
	if c.defaultPeriod == "" {
		c.defaultPeriod = c.periods[0].ID
	}
	if _, ok := c.partnerIdx[c.defaultPartner]; !ok {
		return nil, fmt.Errorf("%w: partner %q", ErrMissingRecord, c.defaultPartner)
	}
	if _, ok := c.periodIdx[c.defaultPeriod]; !ok {
		return nil, fmt.Errorf("%w: period %q", ErrMissingRecord, c.defaultPeriod)
	}
	def, ok := c.stateIdx[c.defaultState]
	if !ok {
		return nil, fmt.Errorf("%w: state %q", ErrMissingRecord, c.defaultState)
	}
	if def.Totals == nil || def.Overview == nil {
		return nil, fmt.Errorf("reference: default state %q needs totals and overview", def.ID)
	}
	return c, nil
}

// decodeStates walks the mapping node so the file order survives decoding.
func (c *Catalog) decodeStates(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) == 0 {
		return ErrNoStates
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		id := node.Content[i].Value
		if id == AllStates {
			return fmt.Errorf("reference: state id %q is reserved", AllStates)
		}
		var st State
		if err := node.Content[i+1].Decode(&st); err != nil {
			return fmt.Errorf("reference: state %q: %w", id, err)
		}
		st.ID = id
		if st.Label == "" {
			st.Label = titleFromID(id)
		}
		if st.ProgressFactor == 0 {
			st.ProgressFactor = 1
		}
		if _, dup := c.stateIdx[id]; dup {
			return fmt.Errorf("reference: duplicate state %q", id)
		}
		c.states = append(c.states, &st)
		c.stateIdx[id] = &st
	}
	return nil
}

func titleFromID(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func (c *Catalog) Partners() []models.Partner {
	return append([]models.Partner(nil), c.partners...)
}

func (c *Catalog) Periods() []models.Period {
	return append([]models.Period(nil), c.periods...)
}

// StateOptions lists the selectable states: "all" first, then every
// configured state except the default record.
func (c *Catalog) StateOptions() []models.StateOption {
	opts := []models.StateOption{{ID: AllStates, Label: "All States"}}
	for _, st := range c.states {
		if st.ID == c.defaultState {
			continue
		}
		opts = append(opts, models.StateOption{ID: st.ID, Label: st.Label})
	}
	return opts
}

func (c *Catalog) Partner(id string) (models.Partner, bool) {
	i, ok := c.partnerIdx[id]
	if !ok {
		return models.Partner{}, false
	}
	return c.partners[i], true
}

func (c *Catalog) Period(id string) (models.Period, bool) {
	i, ok := c.periodIdx[id]
	if !ok {
		return models.Period{}, false
	}
	return c.periods[i], true
}

func (c *Catalog) State(id string) (*State, bool) {
	st, ok := c.stateIdx[id]
	return st, ok
}

// KnownState reports whether id is selectable, including "all".
func (c *Catalog) KnownState(id string) bool {
	if id == AllStates {
		return true
	}
	_, ok := c.stateIdx[id]
	return ok && id != c.defaultState
}

// Resolve replaces unknown or empty selection fields with their defaults and
// reports each replacement. An unknown state keeps its id so that labels and
// district codes can still be derived from it; its figures come from the
// default record.
func (c *Catalog) Resolve(sel models.FilterSelection) (models.FilterSelection, []models.Fallback) {
	var fallbacks []models.Fallback
	out := sel

	if _, ok := c.partnerIdx[sel.Partner]; !ok {
		out.Partner = c.defaultPartner
		fallbacks = append(fallbacks, models.Fallback{Field: "partner", Requested: sel.Partner, Used: c.defaultPartner})
	}
	if _, ok := c.periodIdx[sel.Period]; !ok {
		out.Period = c.defaultPeriod
		fallbacks = append(fallbacks, models.Fallback{Field: "period", Requested: sel.Period, Used: c.defaultPeriod})
	}
	switch {
	case sel.State == "":
		out.State = AllStates
		fallbacks = append(fallbacks, models.Fallback{Field: "state", Requested: "", Used: AllStates})
	case !c.KnownState(sel.State):
		fallbacks = append(fallbacks, models.Fallback{Field: "state", Requested: sel.State, Used: c.defaultState})
	}
	return out, fallbacks
}

func (c *Catalog) PartnerCount() int { return len(c.partners) }
func (c *Catalog) PeriodCount() int  { return len(c.periods) }
func (c *Catalog) StateCount() int   { return len(c.states) }
