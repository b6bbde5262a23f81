package game

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/alienwave/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Ebitengine 只允许创建一个音频上下文，所有测试共用
var testAudioContext *audio.Context

func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// writeTestPNG 写一张 w x h 的纯色 PNG
func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

// writeTestWAV 写一段 0.1 秒的 16 位立体声静音
func writeTestWAV(t *testing.T, path string) {
	t.Helper()
	const (
		sampleRate = 48000
		channels   = 2
		bits       = 16
	)
	dataLen := uint32(sampleRate / 10 * channels * bits / 8)

	var buf []byte
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, 36+dataLen)
	buf = append(buf, "WAVEfmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, 1)
	buf = binary.LittleEndian.AppendUint16(buf, channels)
	buf = binary.LittleEndian.AppendUint32(buf, sampleRate)
	buf = binary.LittleEndian.AppendUint32(buf, sampleRate*channels*bits/8)
	buf = binary.LittleEndian.AppendUint16(buf, channels*bits/8)
	buf = binary.LittleEndian.AppendUint16(buf, bits)
	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, dataLen)
	buf = append(buf, make([]byte, dataLen)...)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}
}

func testAssets(base string) config.AssetsConfig {
	return config.AssetsConfig{
		BasePath: base,
		Images: []config.ImageAsset{
			{ID: "IMAGE_MISSILE", Path: "images/missile.png", Required: true},
			{ID: "IMAGE_ALIEN", Path: "images/alien.png"},
		},
		Sounds: []config.SoundAsset{
			{ID: "SOUND_BLAST", Path: "sounds/blast.wav", Volume: 0.3},
			{ID: "SOUND_LOOP", Path: "sounds/blast.wav", Loop: true},
			{ID: "SOUND_MISSING", Path: "sounds/missing.mp3"},
			{ID: "SOUND_TEXT", Path: "sounds/readme.txt"},
		},
	}
}

func TestResourceManagerLoadImageByID(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "images", "missile.png"), 8, 24)

	rm := NewResourceManager(testAudioContext)
	rm.SetAssets(testAssets(dir), "")

	img, err := rm.LoadImageByID("IMAGE_MISSILE")
	if err != nil {
		t.Fatalf("LoadImageByID: %v", err)
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 8 || h != 24 {
		t.Errorf("image size = %dx%d, want 8x24", w, h)
	}

	// 二次加载命中缓存
	again, _ := rm.LoadImageByID("IMAGE_MISSILE")
	if again != img {
		t.Error("second load should return the cached image")
	}
}

func TestResourceManagerLoadImages(t *testing.T) {
	t.Run("可选图片缺失只告警", func(t *testing.T) {
		dir := t.TempDir()
		writeTestPNG(t, filepath.Join(dir, "images", "missile.png"), 4, 4)

		rm := NewResourceManager(testAudioContext)
		rm.SetAssets(testAssets(dir), "")
		if err := rm.LoadImages(); err != nil {
			t.Fatalf("LoadImages: %v", err)
		}
		if rm.GetImageByID("IMAGE_ALIEN") != nil {
			t.Error("missing optional image should be nil")
		}
	})

	t.Run("必需图片缺失返回错误", func(t *testing.T) {
		rm := NewResourceManager(testAudioContext)
		rm.SetAssets(testAssets(t.TempDir()), "")
		err := rm.LoadImages()
		if err == nil || !strings.Contains(err.Error(), "IMAGE_MISSILE") {
			t.Fatalf("expected error naming IMAGE_MISSILE, got %v", err)
		}
	})
}

func TestResourceManagerBasePathOverride(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "images", "alien.png"), 5, 5)

	rm := NewResourceManager(testAudioContext)
	rm.SetAssets(testAssets("does/not/exist"), dir)
	if rm.GetImageByID("IMAGE_ALIEN") == nil {
		t.Error("override base path should be used")
	}
}

func TestResourceManagerUnknownIDs(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	if _, err := rm.LoadImageByID("IMAGE_NOPE"); err == nil {
		t.Error("unregistered image should fail")
	}
	if _, err := rm.LoadSoundByID("SOUND_NOPE"); err == nil {
		t.Error("unregistered sound should fail")
	}
	if rm.GetImageByID("") != nil {
		t.Error("empty id should return nil")
	}
}

func TestResourceManagerSounds(t *testing.T) {
	dir := t.TempDir()
	writeTestWAV(t, filepath.Join(dir, "sounds", "blast.wav"))
	if err := os.WriteFile(filepath.Join(dir, "sounds", "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	rm := NewResourceManager(testAudioContext)
	rm.SetAssets(testAssets(dir), "")

	if _, err := rm.LoadSoundByID("SOUND_BLAST"); err != nil {
		t.Errorf("LoadSoundByID(SOUND_BLAST): %v", err)
	}
	if _, err := rm.LoadSoundByID("SOUND_MISSING"); err == nil {
		t.Error("missing sound file should fail")
	}
	_, err := rm.LoadSoundByID("SOUND_TEXT")
	if err == nil || !strings.Contains(err.Error(), "unsupported audio format") {
		t.Errorf("expected unsupported format error, got %v", err)
	}

	asset, ok := rm.SoundAsset("SOUND_BLAST")
	if !ok || asset.Volume != 0.3 {
		t.Errorf("SoundAsset = %+v, %v", asset, ok)
	}
}

func TestResourceManagerWithoutAudioContext(t *testing.T) {
	dir := t.TempDir()
	writeTestWAV(t, filepath.Join(dir, "sounds", "blast.wav"))

	rm := NewResourceManager(nil)
	rm.SetAssets(testAssets(dir), "")
	if _, err := rm.LoadSoundByID("SOUND_BLAST"); err == nil {
		t.Error("loading audio without a context should fail")
	}
}
