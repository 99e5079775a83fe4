package systems

import (
	"encoding/json"

	"github.com/automoto/archery/components"
	"github.com/automoto/archery/logging"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const (
	settingsItem = "settings"
	statsItem    = "stats"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug          bool `json:"debug"`
	ShowTrajectory bool `json:"showTrajectory"`
	Muted          bool `json:"muted"`
}

// SavedStats holds the lifetime range statistics
type SavedStats struct {
	BestScore  int `json:"bestScore"`
	TotalShots int `json:"totalShots"`
	TotalHits  int `json:"totalHits"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata storage for appName. The game still runs without it;
// every load then returns nothing and every save is a no-op.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logging.L().Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A nil result means nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem(settingsItem, &s)
	if !ok || err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsItem, s)
}

// SaveCurrentSettings persists the live settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Debug:          s.Debug,
		ShowTrajectory: s.ShowTrajectory,
		Muted:          s.Muted,
	})
}

// LoadStats loads lifetime statistics. A nil result means nothing was saved.
func LoadStats() (*SavedStats, error) {
	var s SavedStats
	ok, err := loadItem(statsItem, &s)
	if !ok || err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveStats saves lifetime statistics to disk
func SaveStats(s *SavedStats) error {
	return saveItem(statsItem, s)
}

// BestScore returns the saved best score, or 0.
func BestScore() int {
	s, err := LoadStats()
	if err != nil || s == nil {
		return 0
	}
	return s.BestScore
}

// saveBest stores a new best score as soon as it is reached.
func saveBest(score *components.ScoreData) {
	s, err := LoadStats()
	if err != nil {
		return
	}
	if s == nil {
		s = &SavedStats{}
	}
	if score.Best <= s.BestScore {
		return
	}
	s.BestScore = score.Best
	_ = SaveStats(s)
}

// SaveSessionStats folds a finished session into the lifetime totals.
func SaveSessionStats(score *components.ScoreData) {
	s, err := LoadStats()
	if err != nil {
		return
	}
	if s == nil {
		s = &SavedStats{}
	}
	*s = MergeStats(*s, score)
	_ = SaveStats(s)
}

// MergeStats adds a session's totals to saved stats and keeps the higher best score.
func MergeStats(saved SavedStats, score *components.ScoreData) SavedStats {
	saved.TotalShots += score.Shots
	saved.TotalHits += score.Hits
	saved.BestScore = max(saved.BestScore, score.Best, score.Score)
	return saved
}

func loadItem(key string, v any) (bool, error) {
	if gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		logging.L().Warn("could not load item", zap.String("item", key), zap.Error(err))
		return false, nil
	}
	if data == nil {
		return false, nil
	}
	if err := decodeItem(data, v); err != nil {
		logging.L().Warn("could not parse saved item", zap.String("item", key), zap.Error(err))
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if gdataManager == nil {
		return nil
	}

	data, err := encodeItem(v)
	if err != nil {
		logging.L().Warn("could not serialize item", zap.String("item", key), zap.Error(err))
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		logging.L().Warn("could not save item", zap.String("item", key), zap.Error(err))
		return err
	}
	return nil
}

func encodeItem(v any) ([]byte, error) {
	return json.Marshal(v)
}

func decodeItem(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
