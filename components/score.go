package components

import "github.com/yohamta/donburi"

type ScoreData struct {
	Score      int
	Shots      int
	Hits       int
	Best       int // best score across sessions
	LastPoints int // points from the most recent hit
}

// Accuracy returns hits per shot in [0, 1].
func (s *ScoreData) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

var Score = donburi.NewComponentType[ScoreData]()
