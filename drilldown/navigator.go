package drilldown

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

// Level is the navigator's current depth.
type Level string

const (
	LevelState    Level = "state"
	LevelDistrict Level = "district"
	LevelBlock    Level = "block"
)

var (
	ErrUnknownDistrict   = errors.New("drilldown: unknown district")
	ErrUnknownBlock      = errors.New("drilldown: unknown block")
	ErrInvalidTransition = errors.New("drilldown: invalid transition")
)

// Navigator walks State -> District -> Block. Selecting a district generates
// its blocks; selecting a block generates its schools; Back throws away what
// the current level generated. Nothing is cached: reselecting the same
// district draws new figures.
//
// A Navigator is safe for concurrent use.
type Navigator struct {
	mu sync.Mutex

	state     string
	overview  models.StateOverview
	seed      uint64
	jitter    utils.Jitter
	level     Level
	district  *models.DistrictDetails
	block     *models.BlockDetails
	generated func(blocks, schools int)
}

// NewNavigator starts at the state level. All expansions draw from a single
// stream seeded with seed, so a replayed sequence of selections reproduces
// the same figures.
func NewNavigator(state string, overview models.StateOverview, seed uint64) *Navigator {
	return &Navigator{
		state:    state,
		overview: overview,
		seed:     seed,
		jitter:   utils.NewSeededJitter(seed),
		level:    LevelState,
	}
}

// OnGenerate registers a callback invoked with the number of blocks and
// schools produced by each expansion.
func (n *Navigator) OnGenerate(fn func(blocks, schools int)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.generated = fn
}

func (n *Navigator) SelectDistrict(code string) (models.DistrictDetails, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.level != LevelState {
		return models.DistrictDetails{}, fmt.Errorf("%w: select district from %s level", ErrInvalidTransition, n.level)
	}
	var (
		found models.District
		ok    bool
	)
	for _, d := range n.overview.Districts {
		if strings.EqualFold(d.Code, code) {
			found, ok = d, true
			break
		}
	}
	if !ok {
		return models.DistrictDetails{}, fmt.Errorf("%w: %q", ErrUnknownDistrict, code)
	}

	details := ExpandDistrict(found, n.overview, n.jitter)
	n.district = &details
	n.level = LevelDistrict
	if n.generated != nil {
		n.generated(len(details.Blocks), 0)
	}
	return details, nil
}

func (n *Navigator) SelectBlock(code string) (models.BlockDetails, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.level != LevelDistrict || n.district == nil {
		return models.BlockDetails{}, fmt.Errorf("%w: select block from %s level", ErrInvalidTransition, n.level)
	}
	var (
		found models.Block
		ok    bool
	)
	for _, b := range n.district.Blocks {
		if strings.EqualFold(b.Code, code) {
			found, ok = b, true
			break
		}
	}
	if !ok {
		return models.BlockDetails{}, fmt.Errorf("%w: %q", ErrUnknownBlock, code)
	}

	details := ExpandBlock(found, n.jitter)
	n.block = &details
	n.level = LevelBlock
	if n.generated != nil {
		n.generated(0, len(details.Schools))
	}
	return details, nil
}

// Back returns to the parent level and discards the children generated at
// the current one. At the state level it does nothing.
func (n *Navigator) Back() Level {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch n.level {
	case LevelBlock:
		n.block = nil
		n.level = LevelDistrict
	case LevelDistrict:
		n.district = nil
		n.level = LevelState
	}
	return n.level
}

func (n *Navigator) Level() Level {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.level
}

// View snapshots the current level for rendering.
func (n *Navigator) View() models.DrillView {
	n.mu.Lock()
	defer n.mu.Unlock()

	view := models.DrillView{
		Level: string(n.level),
		State: n.state,
		Seed:  n.seed,
	}
	switch n.level {
	case LevelState:
		view.Districts = append([]models.District(nil), n.overview.Districts...)
	case LevelDistrict:
		d := *n.district
		view.District = &d
	case LevelBlock:
		d := *n.district
		b := *n.block
		view.District = &d
		view.Block = &b
	}
	return view
}
