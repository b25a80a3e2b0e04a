package game

// Record is the best result across rounds
type Record struct {
	HighScore  int        `json:"highScore"`
	MaxPhase   int        `json:"maxPhase"`
	Difficulty Difficulty `json:"difficulty"`
}

// Update folds a finished round into the record
// Difficulty follows the high score; improved reports whether anything changed
func (r Record) Update(score, phase int, d Difficulty) (next Record, improved bool) {
	next = r
	if score > r.HighScore {
		next.HighScore = score
		next.Difficulty = d
		improved = true
	}
	if phase > r.MaxPhase {
		next.MaxPhase = phase
		improved = true
	}
	return next, improved
}
