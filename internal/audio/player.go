// Package audio plays game sound cues through the system audio device.
// Every failure degrades to silence: a missing file falls back to a
// synthesized tone, a missing device to a silent player.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
)

// Source tells where a cue's samples came from.
type Source int

const (
	SourceSilent Source = iota // Nothing to play
	SourceFile                 // Decoded from a WAV file
	SourceSynth                // Generated tone
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceSynth:
		return "synth"
	default:
		return "silent"
	}
}

// CueStatus reports how one cue was resolved at load time.
type CueStatus struct {
	Cue    core.Cue
	Source Source
	Path   string // File used, when Source is SourceFile
	Err    error  // Why the file could not be used, if any
}

// tone is the synthesized stand-in for a cue.
type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[core.Cue]tone{
	core.CueShot:      {880, 60 * time.Millisecond},
	core.CueEnemyHit:  {440, 90 * time.Millisecond},
	core.CueBossHit:   {220, 80 * time.Millisecond},
	core.CueBossIntro: {110, 600 * time.Millisecond},
	core.CueGameOver:  {165, 700 * time.Millisecond},
}

// Player is a core.CueSink that plays pre-decoded buffers on the speaker.
// Until Open succeeds, Play does nothing.
type Player struct {
	mu      sync.Mutex
	format  beep.Format
	volume  float64
	buffers map[core.Cue]*beep.Buffer
	status  []CueStatus
	open    bool
	logger  *log.Logger
}

var _ core.CueSink = (*Player)(nil)

// Load resolves and decodes every cue without touching the audio device.
// Files are looked up in dirs; a cue whose file is missing or unreadable
// gets a synthesized tone when cfg.SynthFallback is set, or stays silent.
func Load(cfg config.AudioConfig, dirs []string, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	sr := beep.SampleRate(cfg.SampleRate)
	if sr <= 0 {
		sr = 44100
	}

	p := &Player{
		format:  beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2},
		volume:  cfg.Volume,
		buffers: make(map[core.Cue]*beep.Buffer),
		logger:  logger,
	}

	for _, c := range core.Cues() {
		st := p.loadCue(c, cfg, dirs)
		p.status = append(p.status, st)
		if st.Err != nil {
			logger.Warn("sound file unusable", "cue", c, "source", st.Source, "err", st.Err)
		}
	}
	return p
}

func (p *Player) loadCue(c core.Cue, cfg config.AudioConfig, dirs []string) CueStatus {
	st := CueStatus{Cue: c, Source: SourceSilent}

	name := cfg.Cues[c.String()]
	if path, ok := findFile(dirs, name); ok {
		buf, err := decodeFile(path, p.format)
		if err == nil {
			p.buffers[c] = buf
			st.Source, st.Path = SourceFile, path
			return st
		}
		st.Err = err
	} else if name != "" {
		st.Err = fmt.Errorf("audio: %s not found in %v", name, dirs)
	}

	if !cfg.SynthFallback {
		return st
	}
	buf, err := synthesize(tones[c], p.format)
	if err != nil {
		st.Err = err
		return st
	}
	p.buffers[c] = buf
	st.Source = SourceSynth
	return st
}

// decodeFile reads a WAV file into a buffer at the target sample rate.
func decodeFile(path string, format beep.Format) (*beep.Buffer, error) {
	f, err := os.Open(path) //#nosec G304 -- path comes from the asset search
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	s, fileFormat, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer s.Close()

	buf := beep.NewBuffer(format)
	if fileFormat.SampleRate == format.SampleRate {
		buf.Append(s)
	} else {
		buf.Append(beep.Resample(4, fileFormat.SampleRate, format.SampleRate, s))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s has no samples", path)
	}
	return buf, nil
}

// synthesize renders a short sine tone into a buffer.
func synthesize(t tone, format beep.Format) (*beep.Buffer, error) {
	sine, err := generators.SineTone(format.SampleRate, t.freq)
	if err != nil {
		return nil, fmt.Errorf("audio: synth %.0f Hz: %w", t.freq, err)
	}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(format.SampleRate.N(t.duration), sine))
	return buf, nil
}

// Open initializes the speaker. On failure the player stays silent and the
// error is returned for logging only.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		return nil
	}
	if len(p.buffers) == 0 {
		return nil
	}

	sr := p.format.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	p.open = true
	p.logger.Debug("speaker ready", "sample_rate", int(sr), "cues", len(p.buffers))
	return nil
}

// Play starts a cue and returns immediately.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	buf, ok := p.buffers[c]
	if !ok {
		return
	}
	speaker.Play(newVolume(buf.Streamer(0, buf.Len()), p.volume))
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.open = false
}

// Status returns how each cue was resolved, in cue order.
func (p *Player) Status() []CueStatus {
	return append([]CueStatus(nil), p.status...)
}

// IsOpen reports whether the speaker is running.
func (p *Player) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// newVolume scales a stream linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
