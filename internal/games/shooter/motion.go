package shooter

// move advances every dynamic entity by one tick and drops whatever left
// the field. It has no other side effects.
func move(w *World, r *rules) {
	w.Shots = moveShots(w.Shots, func(p Projectile) bool {
		return p.Rect.Y < 0 || p.Rect.X < 0 || p.Rect.X > r.fieldW
	})
	w.EnemyShots = moveShots(w.EnemyShots, func(p Projectile) bool {
		return p.Rect.Y > r.fieldH
	})

	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		e.Rect.Y += r.enemySpeed
		if e.Rect.Y <= r.fieldH {
			kept = append(kept, e)
		}
	}
	clear(w.Enemies[len(kept):])
	w.Enemies = kept

	if w.Boss.Active {
		w.Boss.Rect.Y += r.bossSpeed
		if w.Boss.Rect.Y > r.fieldH {
			// Leaving the field clears the boss with no bonus
			w.Boss = Boss{}
		}
	}
}

func moveShots(shots []Projectile, gone func(Projectile) bool) []Projectile {
	kept := shots[:0]
	for _, p := range shots {
		p.Move()
		if !gone(p) {
			kept = append(kept, p)
		}
	}
	clear(shots[len(kept):])
	return kept
}
