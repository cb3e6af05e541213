package hexletters

import (
	"math/rand"

	"github.com/vovakirdan/hexletters/internal/config"
	"github.com/vovakirdan/hexletters/internal/core"
)

// Flash is one short-lived burst of color on the screen.
type Flash struct {
	X, Y      int
	Color     string
	ticksLeft int
}

// Party is the win celebration: blinking text and random flashes.
// All timing is counted in ticks.
type Party struct {
	cfg           config.PartyConfig
	tickRate      int
	active        bool
	ticksLeft     int
	intervalTicks int
	untilBeat     int
	textGold      bool
	flashes       []Flash
}

// Start begins a celebration. Starting while active does nothing.
func (p *Party) Start(cfg config.PartyConfig, tickRate int) bool {
	if p.active {
		return false
	}
	p.cfg = cfg
	p.tickRate = tickRate
	p.active = true
	p.ticksLeft = core.MsToTicks(cfg.DurationMS, tickRate)
	p.intervalTicks = core.MsToTicks(cfg.IntervalMS, tickRate)
	p.untilBeat = 0
	p.textGold = false
	p.flashes = p.flashes[:0]
	return true
}

// Stop ends the celebration and clears the flashes.
func (p *Party) Stop() {
	p.active = false
	p.ticksLeft = 0
	p.textGold = false
	p.flashes = p.flashes[:0]
}

// Active reports whether the celebration is running.
func (p *Party) Active() bool {
	return p.active
}

// TextGold reports whether the banner is in its gold phase.
func (p *Party) TextGold() bool {
	return p.textGold
}

// Flashes returns the live flashes.
func (p *Party) Flashes() []Flash {
	return p.flashes
}

// Update advances the celebration by one tick on a w x h screen.
func (p *Party) Update(w, h int, rng *rand.Rand) {
	if !p.active {
		return
	}

	live := p.flashes[:0]
	for _, f := range p.flashes {
		f.ticksLeft--
		if f.ticksLeft > 0 {
			live = append(live, f)
		}
	}
	p.flashes = live

	p.untilBeat--
	if p.untilBeat <= 0 {
		p.untilBeat = p.intervalTicks
		p.beat(w, h, rng)
	}

	p.ticksLeft--
	if p.ticksLeft <= 0 {
		p.Stop()
	}
}

// beat toggles the banner and spawns a round of flashes.
func (p *Party) beat(w, h int, rng *rand.Rand) {
	p.textGold = !p.textGold
	cfg := p.cfg
	if w <= 0 || h <= 0 || len(cfg.FlashColors) == 0 {
		return
	}
	life := core.MsToTicks(cfg.FlashDurationMS, p.tickRate)
	for i := 0; i < cfg.FlashCount; i++ {
		p.flashes = append(p.flashes, Flash{
			X:         rng.Intn(w),
			Y:         rng.Intn(h),
			Color:     cfg.FlashColors[rng.Intn(len(cfg.FlashColors))],
			ticksLeft: life,
		})
	}
}
