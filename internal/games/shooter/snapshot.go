package shooter

// Snapshot is a comparable view of the game state for determinism tests
// and headless runs.
type Snapshot struct {
	Tick       uint64 `yaml:"tick"`
	Mode       string `yaml:"mode"`
	Score      int    `yaml:"score"`
	Paused     bool   `yaml:"paused"`
	PlayerX    int    `yaml:"player_x"`
	PlayerY    int    `yaml:"player_y"`
	Shots      int    `yaml:"shots"`
	EnemyShots int    `yaml:"enemy_shots"`
	Enemies    int    `yaml:"enemies"`
	BossActive bool   `yaml:"boss_active"`
	BossHealth int    `yaml:"boss_health"`
	BossX      int    `yaml:"boss_x"`
	BossY      int    `yaml:"boss_y"`
	SpawnClock int    `yaml:"spawn_clock"`
	Cooldown   int    `yaml:"cooldown"`

	// Entity positions, flattened as x, y pairs: shots, enemy shots, enemies
	Positions []int `yaml:"-"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := &g.world

	positions := make([]int, 0, 2*(len(w.Shots)+len(w.EnemyShots)+len(w.Enemies)))
	for _, s := range w.Shots {
		positions = append(positions, s.Rect.X, s.Rect.Y)
	}
	for _, s := range w.EnemyShots {
		positions = append(positions, s.Rect.X, s.Rect.Y)
	}
	for _, e := range w.Enemies {
		positions = append(positions, e.Rect.X, e.Rect.Y)
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Mode:       g.mode.String(),
		Score:      w.Score,
		Paused:     g.paused,
		PlayerX:    w.Player.Rect.X,
		PlayerY:    w.Player.Rect.Y,
		Shots:      len(w.Shots),
		EnemyShots: len(w.EnemyShots),
		Enemies:    len(w.Enemies),
		BossActive: w.Boss.Active,
		BossHealth: w.Boss.Health,
		BossX:      w.Boss.Rect.X,
		BossY:      w.Boss.Rect.Y,
		SpawnClock: g.clock.acc,
		Cooldown:   g.cooldown,
		Positions:  positions,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Mode {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyShots) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Enemies)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossHealth) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnClock) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cooldown)   //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	if snap.BossActive {
		h = h*31 + 2
	}

	for _, v := range snap.Positions {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
