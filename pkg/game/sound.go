package game

//go:generate go tool mockgen -source=sound.go -destination=mocks/mock_sound.go -package=mocks

// Sound 可播放的声音句柄
//
// 由 AudioManager 创建。SpriteSystem 的碰撞音效、玩家开火循环音效都使用该接口，
// 测试中使用 mocks.MockSound 断言播放次数。
type Sound interface {
	// Play 从头播放
	Play()
	// Stop 停止播放
	Stop()
}
