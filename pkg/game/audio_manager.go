package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 未接入设置管理器时的默认音量
const (
	defaultMusicVolume = 0.7
	defaultSoundVolume = 0.8
)

// AudioManager 音频管理器
//
// 通过资源 ID 播放音效和背景音乐，音量 = 设置音量 * 资源表中的倍率。
// 资源缺失或解码失败时只记录警告，播放调用变为空操作。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager        // 可为 nil
	players         map[string]*audio.Player // 资源ID -> 播放器（nil 表示加载失败）
	currentMusic    *audio.Player
	currentMusicID  string
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		players:         make(map[string]*audio.Player),
	}
}

// PlaySound 从头播放一个音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.soundEnabled() {
		return false
	}
	player := am.player(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume() * am.gain(soundID))
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// StopSound 停止一个音效（用于循环音效）
func (am *AudioManager) StopSound(soundID string) {
	if player := am.players[soundID]; player != nil {
		player.Pause()
	}
}

// PlayMusic 播放背景音乐；同一首已在播放时不重复开始
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.player(musicID)
	if player == nil {
		return false
	}

	volume := am.getMusicVolume() * am.gain(musicID)
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// Sound 返回一个绑定到资源 ID 的声音句柄
// 资源不可用时返回 nil
func (am *AudioManager) Sound(soundID string) Sound {
	if am == nil || soundID == "" || am.player(soundID) == nil {
		return nil
	}
	return &soundHandle{am: am, id: soundID}
}

// GetMusicVolume 获取当前音乐音量
func (am *AudioManager) GetMusicVolume() float64 {
	return am.getMusicVolume()
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// Preload 预加载一组声音，避免首次播放时解码卡顿
func (am *AudioManager) Preload(ids ...string) {
	n := 0
	for _, id := range ids {
		if am.player(id) != nil {
			n++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", n, len(ids))
}

func (am *AudioManager) player(id string) *audio.Player {
	if player, exists := am.players[id]; exists {
		return player
	}
	if am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.LoadSoundByID(id)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", id, err)
		am.players[id] = nil
		return nil
	}
	am.players[id] = player
	return player
}

func (am *AudioManager) gain(id string) float64 {
	if am.resourceManager == nil {
		return 1
	}
	if asset, ok := am.resourceManager.SoundAsset(id); ok && asset.Volume > 0 {
		return asset.Volume
	}
	return 1
}

func (am *AudioManager) soundEnabled() bool {
	return am.settingsManager == nil || am.settingsManager.GetSettings().SoundEnabled
}

func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return defaultMusicVolume
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return defaultSoundVolume
}

// soundHandle 通过 AudioManager 播放的声音
type soundHandle struct {
	am *AudioManager
	id string
}

func (h *soundHandle) Play() { h.am.PlaySound(h.id) }
func (h *soundHandle) Stop() { h.am.StopSound(h.id) }
