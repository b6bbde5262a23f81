package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/decker502/alienwave/pkg/config"
	"github.com/decker502/alienwave/pkg/embedded"
)

// LoadConfig 加载游戏配置
//
// 优先读取磁盘上的文件（便于调参），不存在时回退到嵌入的同名文件。
func LoadConfig(path string) (*config.GameConfig, error) {
	cfg, err := config.LoadGameConfigFile(path)
	if err == nil {
		log.Printf("[App] Loaded config from disk: %s", path)
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	data, embErr := embedded.ReadFile(path)
	if embErr != nil {
		return nil, fmt.Errorf("config %s not found on disk or embedded: %w", path, embErr)
	}
	cfg, err = config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid embedded config %s: %w", path, err)
	}
	log.Printf("[App] Loaded embedded config: %s", path)
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
