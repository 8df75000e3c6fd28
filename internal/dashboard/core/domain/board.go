package domain

import (
	"sync"
	"sync/atomic"
	"time"

	alertdomain "alert-dashboard-service/internal/alerts/core/domain"

	"github.com/google/uuid"
)

// State is what the dashboard controls select.
type State struct {
	GroupBy   alertdomain.GroupKey `json:"group_by"`
	DarkTheme bool                 `json:"dark_theme"`
}

// ChartConfig is a chart definition as handed to the rendering library.
type ChartConfig struct {
	ID      string       `json:"id"`
	Type    ChartType    `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

// Chart is a live chart instance owned by a Board slot.
type Chart struct {
	config   ChartConfig
	disposed atomic.Bool
}

func (c *Chart) Config() ChartConfig {
	cfg := c.config
	cfg.Data = cfg.Data.clone()
	return cfg
}

func (c *Chart) Dispose() {
	c.disposed.Store(true)
}

func (c *Chart) Disposed() bool {
	return c.disposed.Load()
}

type Snapshot struct {
	State      State         `json:"state"`
	Charts     []ChartConfig `json:"charts"`
	Total      int           `json:"total"`
	RenderedAt time.Time     `json:"rendered_at"`
}

// Board owns one chart per slot. Every render disposes the current charts
// before creating their replacements.
type Board struct {
	mu         sync.Mutex
	state      State
	charts     map[ChartType]*Chart
	total      int
	renderedAt time.Time

	newID func() string
	now   func() time.Time
}

func NewBoard(initial State) *Board {
	return &Board{
		state:  initial,
		charts: make(map[ChartType]*Chart, len(ChartTypes())),
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

func (b *Board) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Render replaces every chart with one built from res and the given theme.
func (b *Board) Render(res *alertdomain.AggregationResult, dark bool) Snapshot {
	data := BuildChartData(res, dark)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.disposeLocked()

	for _, t := range ChartTypes() {
		b.charts[t] = &Chart{config: ChartConfig{
			ID:      b.newID(),
			Type:    t,
			Data:    data.clone(),
			Options: ChartOptions{Responsive: true},
		}}
	}

	b.state = State{GroupBy: res.Key(), DarkTheme: dark}
	b.total = res.Total()
	b.renderedAt = b.now()

	return b.snapshotLocked()
}

// Snapshot returns the current charts; ok is false before the first render.
func (b *Board) Snapshot() (Snapshot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.charts) == 0 {
		return Snapshot{State: b.state}, false
	}
	return b.snapshotLocked(), true
}

// Chart returns the live chart in a slot.
func (b *Board) Chart(t ChartType) (*Chart, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.charts[t]
	return c, ok
}

// Close disposes every chart.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disposeLocked()
}

func (b *Board) disposeLocked() {
	for t, c := range b.charts {
		c.Dispose()
		delete(b.charts, t)
	}
}

func (b *Board) snapshotLocked() Snapshot {
	s := Snapshot{
		State:      b.state,
		Charts:     make([]ChartConfig, 0, len(b.charts)),
		Total:      b.total,
		RenderedAt: b.renderedAt,
	}
	for _, t := range ChartTypes() {
		if c, ok := b.charts[t]; ok {
			s.Charts = append(s.Charts, c.Config())
		}
	}
	return s
}
