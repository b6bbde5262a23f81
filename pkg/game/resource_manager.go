package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/alienwave/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager is responsible for loading and caching game assets.
//
// Assets are declared in the assets section of the game config and looked up
// by resource ID (e.g. "IMAGE_MISSILE", "SOUND_BLAST"). Paths in the table are
// relative to AssetsConfig.BasePath.
//
// Images marked as required abort startup when they fail to load; every other
// asset degrades to a nil handle with a logged warning.
//
// This implementation is NOT thread-safe; all loading happens on the game loop.
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // path -> Image
	audioCache   map[string]*audio.Player // path -> Player
	audioContext *audio.Context           // may be nil (headless tests)

	basePath string
	images   map[string]config.ImageAsset
	sounds   map[string]config.SoundAsset
}

// NewResourceManager creates a resource manager bound to the given audio context.
// A nil context disables audio loading.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		images:       make(map[string]config.ImageAsset),
		sounds:       make(map[string]config.SoundAsset),
	}
}

// SetAssets registers the asset table.
// basePathOverride replaces AssetsConfig.BasePath when non-empty.
func (rm *ResourceManager) SetAssets(cfg config.AssetsConfig, basePathOverride string) {
	rm.basePath = cfg.BasePath
	if basePathOverride != "" {
		rm.basePath = basePathOverride
	}
	for _, img := range cfg.Images {
		rm.images[img.ID] = img
	}
	for _, snd := range cfg.Sounds {
		rm.sounds[snd.ID] = snd
	}
	log.Printf("[ResourceManager] Registered %d images, %d sounds (base: %s)", len(rm.images), len(rm.sounds), rm.basePath)
}

// LoadImage loads an image from disk and caches it by path.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if img, exists := rm.imageCache[path]; exists {
		return img, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	rm.imageCache[path] = img
	return img, nil
}

// LoadImageByID loads a registered image by resource ID.
func (rm *ResourceManager) LoadImageByID(id string) (*ebiten.Image, error) {
	asset, ok := rm.images[id]
	if !ok {
		return nil, fmt.Errorf("image resource %s not registered", id)
	}
	return rm.LoadImage(rm.resolve(asset.Path))
}

// GetImageByID returns a registered image, loading it on first use.
// Returns nil when the image is unknown or fails to load.
func (rm *ResourceManager) GetImageByID(id string) *ebiten.Image {
	if id == "" {
		return nil
	}
	img, err := rm.LoadImageByID(id)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v", err)
		return nil
	}
	return img
}

// LoadImages loads every registered image.
//
// Returns an error on the first required image that fails; optional failures
// are logged and skipped.
func (rm *ResourceManager) LoadImages() error {
	loaded := 0
	for id, asset := range rm.images {
		if _, err := rm.LoadImageByID(id); err != nil {
			if asset.Required {
				return fmt.Errorf("required image %s: %w", id, err)
			}
			log.Printf("[ResourceManager] Warning: optional image %s unavailable: %v", id, err)
			continue
		}
		loaded++
	}
	log.Printf("[ResourceManager] Loaded %d/%d images", loaded, len(rm.images))
	return nil
}

// SoundAsset returns the registered sound entry.
func (rm *ResourceManager) SoundAsset(id string) (config.SoundAsset, bool) {
	s, ok := rm.sounds[id]
	return s, ok
}

// LoadAudio loads a looping audio stream (music, held-key effects).
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, true)
}

// LoadSoundEffect loads a one-shot sound effect.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, false)
}

// LoadSoundByID loads a registered sound, looping or not as declared.
func (rm *ResourceManager) LoadSoundByID(id string) (*audio.Player, error) {
	asset, ok := rm.sounds[id]
	if !ok {
		return nil, fmt.Errorf("sound resource %s not registered", id)
	}
	return rm.loadPlayer(rm.resolve(asset.Path), asset.Loop)
}

// GetAudioPlayer returns a cached player by path, or nil.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

func (rm *ResourceManager) loadPlayer(path string, loop bool) (*audio.Player, error) {
	if player, exists := rm.audioCache[path]; exists {
		return player, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context unavailable, cannot load %s", path)
	}

	stream, err := decodeAudioFile(path)
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudioFile reads the whole file into memory and decodes it by extension.
func decodeAudioFile(path string) (audioStream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}

func (rm *ResourceManager) resolve(path string) string {
	if rm.basePath == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rm.basePath, path)
}
