package game

import (
	"github.com/decker502/alienwave/pkg/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EnemyDestroyed 一枚导弹击毁了一波中的敌人
type EnemyDestroyed struct {
	Wave     string          // 敌人所属波次名
	Position components.Vec2 // 导弹位置（爆炸中心）
	Count    int             // 本次移除的敌人数
}

// PlayerHit 敌人撞上了玩家飞船
type PlayerHit struct {
	Wave     string
	Position components.Vec2
	Count    int
}

// BonusCollected 玩家拾取了奖励
type BonusCollected struct {
	Position components.Vec2
	Count    int
}

// 碰撞检测阶段发布、场景订阅的事件类型
var (
	EnemyDestroyedEvent = events.NewEventType[EnemyDestroyed]()
	PlayerHitEvent      = events.NewEventType[PlayerHit]()
	BonusCollectedEvent = events.NewEventType[BonusCollected]()
)

// ProcessGameEvents 分发所有待处理事件
// 在碰撞检测之后、同一帧内调用
func ProcessGameEvents(world donburi.World) {
	events.ProcessAllEvents(world)
}
