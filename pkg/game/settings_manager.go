package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 玩家偏好，跨局保存
type Settings struct {
	MusicVolume      float64 `yaml:"musicVolume"`      // 0.0 ~ 1.0
	SoundVolume      float64 `yaml:"soundVolume"`      // 0.0 ~ 1.0
	MusicEnabled     bool    `yaml:"musicEnabled"`     // 音乐开关
	SoundEnabled     bool    `yaml:"soundEnabled"`     // 音效开关
	Fullscreen       bool    `yaml:"fullscreen"`       // 启动时是否全屏
	ShowInstructions bool    `yaml:"showInstructions"` // 是否显示操作说明
	BestScore        int     `yaml:"bestScore"`        // 历史最高分
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		MusicVolume:      defaultMusicVolume,
		SoundVolume:      defaultSoundVolume,
		MusicEnabled:     true,
		SoundEnabled:     true,
		ShowInstructions: true,
	}
}

// SettingsManager 设置的加载、修改与持久化
//
// gdata 管理器为 nil 时进入降级模式：设置只保存在内存中，Save 不报错。
type SettingsManager struct {
	store    *gdata.Manager
	settings *Settings
}

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
// 加载失败不影响创建，使用默认设置
func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 从存储读取设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded (best score %d)", loaded.BestScore)
	return nil
}

// Save 写回存储；降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings 返回当前设置
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetMusicVolume 设置音乐音量（限制在 0~1）
func (sm *SettingsManager) SetMusicVolume(v float64) {
	sm.settings.MusicVolume = clampVolume(v)
}

// SetSoundVolume 设置音效音量（限制在 0~1）
func (sm *SettingsManager) SetSoundVolume(v float64) {
	sm.settings.SoundVolume = clampVolume(v)
}

// SetFullscreen 记录全屏状态
func (sm *SettingsManager) SetFullscreen(on bool) {
	sm.settings.Fullscreen = on
}

// SetShowInstructions 记录是否显示操作说明
func (sm *SettingsManager) SetShowInstructions(on bool) {
	sm.settings.ShowInstructions = on
}

// RecordScore 更新最高分
//
// 返回：
//   - bool: 是否刷新了纪录
func (sm *SettingsManager) RecordScore(score int) bool {
	if score <= sm.settings.BestScore {
		return false
	}
	sm.settings.BestScore = score
	return true
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}
