package storage

import "github.com/vovakirdan/flappy/internal/core"

// Recorder saves the score of every finished run exactly once and tracks the
// player's best. Front-ends feed it every StepResult. A nil store disables
// saving but the best score is still tracked.
type Recorder struct {
	store  *Store
	player string
	best   int
	saved  bool
}

// NewRecorder creates a recorder for player, seeded with their stored best.
// The recorder is usable even when reading the best score fails.
func NewRecorder(store *Store, player string) (*Recorder, error) {
	r := &Recorder{store: store, player: PlayerName(player)}
	if store == nil {
		return r, nil
	}
	best, err := store.PlayerBest(r.player)
	if err != nil {
		return r, err
	}
	r.best = best
	return r, nil
}

// Observe handles one tick's result. It returns true when a score was
// written; a write failure is returned and not retried for that run.
func (r *Recorder) Observe(res core.StepResult) (bool, error) {
	if res.Restarted {
		r.saved = false
	}
	if !res.State.GameOver || r.saved {
		return false, nil
	}
	r.saved = true

	score := res.State.Score
	r.best = max(r.best, score)
	if r.store == nil || score <= 0 {
		return false, nil
	}
	if _, err := r.store.SaveScore(r.player, score); err != nil {
		return false, err
	}
	return true, nil
}

// Player returns the normalized name scores are saved under.
func (r *Recorder) Player() string {
	return r.player
}

// Best returns the best of the stored and the session's scores.
func (r *Recorder) Best() int {
	return r.best
}

// Saved reports whether the current game over has been handled.
func (r *Recorder) Saved() bool {
	return r.saved
}
