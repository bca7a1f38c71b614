// Package audio plays a short tone when the triangle hits a window edge.
package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/centered-triangle/pkg/config"
	"github.com/opd-ai/centered-triangle/pkg/event"
	"github.com/opd-ai/centered-triangle/pkg/logging"
)

const sampleRate = beep.SampleRate(44100)

// BoundaryCue plays a sine tone on every BoundaryReached event
type BoundaryCue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	frequency   float64
	duration    time.Duration
	initialized bool
	played      int

	sub    *event.Subscription
	logger *logging.Logger
	ctx    context.Context
}

// NewBoundaryCue validates cfg and creates a cue. The speaker is not
// touched until Initialize.
func NewBoundaryCue(ctx context.Context, cfg config.AudioConfig, logger *logging.Logger) (*BoundaryCue, error) {
	if cfg.Frequency <= 0 || cfg.Frequency >= float64(sampleRate)/2 {
		return nil, fmt.Errorf("cue frequency %v out of range", cfg.Frequency)
	}
	if cfg.Duration() <= 0 {
		return nil, fmt.Errorf("cue duration %v must be positive", cfg.Duration())
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &BoundaryCue{
		mixer:     &beep.Mixer{},
		frequency: cfg.Frequency,
		duration:  cfg.Duration(),
		logger:    logger,
		ctx:       ctx,
	}, nil
}

// Initialize opens the speaker and starts the mixer.
func (c *BoundaryCue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return logging.WrapError(err, "speaker init failed")
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Attach subscribes the cue to bus.
func (c *BoundaryCue) Attach(bus *event.Bus) {
	c.sub = bus.Subscribe(event.BoundaryReached, func(e event.Event) {
		if be, ok := e.(*event.BoundaryEvent); ok {
			c.logger.Debug(c.ctx, "boundary cue", "edge", string(be.Edge))
		}
		c.Play()
	})
}

// Play queues one tone. It does nothing before Initialize.
func (c *BoundaryCue) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	tone, err := c.tone()
	if err != nil {
		c.logger.Warn(c.ctx, "cannot build cue tone", "error", err.Error())
		return
	}
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
	c.played++
}

// Played returns how many tones have been queued.
func (c *BoundaryCue) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Close unsubscribes and silences the mixer.
func (c *BoundaryCue) Close() {
	if c.sub != nil {
		c.sub.Cancel()
		c.sub = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

func (c *BoundaryCue) tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, c.frequency)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(c.duration), sine), nil
}
