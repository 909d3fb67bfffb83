package core

// Cue identifies a sound effect the simulation asks the audio sink to play.
type Cue int

const (
	CueShot      Cue = iota // Player fired
	CueEnemyHit             // Enemy destroyed by a player shot
	CueBossHit              // Boss lost one health point
	CueBossIntro            // Boss entered the field
	CueGameOver             // Player was struck
	cueCount
)

// Cues lists every cue in declaration order.
func Cues() []Cue {
	cues := make([]Cue, 0, cueCount)
	for c := range cueCount {
		cues = append(cues, c)
	}
	return cues
}

// String returns the cue name used in config files and logs.
func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueEnemyHit:
		return "enemy_hit"
	case CueBossHit:
		return "boss_hit"
	case CueBossIntro:
		return "boss_intro"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CueSink plays sound cues. Play is fire-and-forget: implementations must
// not block the tick and must swallow their own failures.
type CueSink interface {
	Play(c Cue)
}

// NopSink discards every cue.
type NopSink struct{}

// Play does nothing.
func (NopSink) Play(Cue) {}
