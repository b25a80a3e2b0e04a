package audio

// SoundType identifies a synthesized effect
type SoundType uint8

const (
	SoundEat SoundType = iota
	SoundGameOver
	SoundPhase
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"eat", "gameover", "phase"}

func (s SoundType) String() string {
	if s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
