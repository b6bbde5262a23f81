package systems

import (
	"github.com/decker502/alienwave/pkg/game"
	"github.com/yohamta/donburi"
)

// CollisionSystem 每帧检测玩家、导弹、敌人和奖励之间的碰撞
//
// 检测结果以事件形式发布到 donburi 世界，由场景订阅并更新分数/生命/特效。
// 碰撞判定为圆形：两中心距离严格小于半高之和。
type CollisionSystem struct {
	world donburi.World
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(world donburi.World) *CollisionSystem {
	return &CollisionSystem{world: world}
}

// Check 执行一次碰撞检测
//
// 参数：
//   - player: 玩家发射器，其子精灵为导弹
//   - bonus: 奖励发射器，可为 nil
//   - waves: 当前活跃的敌人波次
func (cs *CollisionSystem) Check(player, bonus *Emitter, waves []*Emitter) {
	if bonus != nil {
		if n := bonus.System().RemoveNear(player.Position, player.Height/2+bonus.ChildHeight/2); n > 0 {
			game.BonusCollectedEvent.Publish(cs.world, game.BonusCollected{Position: player.Position, Count: n})
		}
	}

	missiles := player.System().Sprites
	for _, wave := range waves {
		// 导弹击中敌人：导弹本身保留
		for i := range missiles {
			pos := missiles[i].Position
			if n := wave.System().RemoveNear(pos, player.ChildHeight/2+wave.ChildHeight/2); n > 0 {
				game.EnemyDestroyedEvent.Publish(cs.world, game.EnemyDestroyed{Wave: wave.Name, Position: pos, Count: n})
			}
		}

		// 敌人撞上飞船
		if n := wave.System().RemoveNear(player.Position, player.Height/2+wave.ChildHeight/2); n > 0 {
			game.PlayerHitEvent.Publish(cs.world, game.PlayerHit{Wave: wave.Name, Position: player.Position, Count: n})
		}
	}
}
