package sim

import (
	"github.com/decker502/pvzbot/pkg/judge"
	"github.com/decker502/pvzbot/pkg/types"
)

// PlantID 植物实体的稳定标识
type PlantID int

// ZombieID 僵尸实体的稳定标识
type ZombieID int

// ProjectileID 弹体实体的稳定标识
type ProjectileID int

// 僵尸啃食常量
const (
	BiteInterval = 70  // 两次啃咬的间隔（厘秒）
	BiteDamage   = 100 // 单次啃咬伤害
)

// Plant 植物实体
// 所有字段为值类型，快照时直接按值复制
type Plant struct {
	ID   PlantID
	Type types.PlantType
	Row  int
	Col  int

	Health          int
	AttackCountdown int // 距下一次攻击/产出的帧数
	FuseCountdown   int // 即时植物距起爆的帧数，非即时植物为 0
	ArmCountdown    int // 土豆地雷距武装完成的帧数
	CobCountdown    int // 玉米加农炮距就绪的帧数，0 表示可发射
	ShotCount       int // 历史出弹计数（玉米投手黄油节奏用）
	Alive           bool
}

// Zombie 僵尸实体
type Zombie struct {
	ID   ZombieID
	Type types.ZombieType
	Row  int
	X    float64

	BodyHealth    int
	MaxBodyHealth int
	ArmorHealth   int // 二类防具（路障、铁桶）
	ShieldHealth  int // 一类防具（铁栅门、梯子）

	BaseSpeed float64

	FreezeCountdown int // 冰冻定身剩余帧数
	SlowCountdown   int // 减速剩余帧数（含冰冻阶段）
	ButterCountdown int // 黄油定身剩余帧数

	BiteCountdown   int // 距下一次啃咬的帧数
	HammerCountdown int // 巨人抬锤剩余帧数，0 表示未在锤击动作中
	ImpsThrown      int // 已投掷的小鬼数

	Alive bool
}

// TotalHealth 返回三层血量之和
func (z *Zombie) TotalHealth() int {
	return z.ShieldHealth + z.ArmorHealth + z.BodyHealth
}

// EffectiveSpeed 返回状态效果作用下的当前速度
func (z *Zombie) EffectiveSpeed() float64 {
	return judge.EffectiveSpeed(z.BaseSpeed, z.FreezeCountdown, z.SlowCountdown, z.ButterCountdown)
}

// Status 返回当前状态效果
func (z *Zombie) Status() judge.Status {
	return judge.CurrentStatus(z.FreezeCountdown, z.SlowCountdown, z.ButterCountdown)
}

// Immobilized 判断僵尸是否处于定身状态
// 定身期间不移动、不啃食、锤击动作暂停
func (z *Zombie) Immobilized() bool {
	return z.FreezeCountdown > 0 || z.ButterCountdown > 0
}

// AttackX 返回用于啃食判定的攻击点 X 坐标
func (z *Zombie) AttackX() float64 {
	return judge.ZombieAttackX(z.Type, z.X)
}

// ApplyDamage 按 盾牌 -> 护甲 -> 本体 的顺序吸收伤害
// 任何一层都不会变为负数，仅本体归零判定死亡
func (z *Zombie) ApplyDamage(damage int) {
	if damage <= 0 || !z.Alive {
		return
	}

	if z.ShieldHealth > 0 {
		if damage <= z.ShieldHealth {
			z.ShieldHealth -= damage
			return
		}
		damage -= z.ShieldHealth
		z.ShieldHealth = 0
	}

	if z.ArmorHealth > 0 {
		if damage <= z.ArmorHealth {
			z.ArmorHealth -= damage
			return
		}
		damage -= z.ArmorHealth
		z.ArmorHealth = 0
	}

	z.BodyHealth -= damage
	if z.BodyHealth <= 0 {
		z.BodyHealth = 0
		z.Alive = false
	}
}

// ApplyInstantDamage 施加秒杀类伤害，巨人减半
func (z *Zombie) ApplyInstantDamage() {
	z.ApplyDamage(judge.InstantDamage(z.Type))
}

// ApplySlow 施加减速效果，刷新而不叠加
// 机械僵尸免疫
func (z *Zombie) ApplySlow(duration int) {
	if z.Type.IsMachine() {
		return
	}
	if duration > z.SlowCountdown {
		z.SlowCountdown = duration
	}
}

// ApplyFreeze 施加冰冻定身效果
// 机械僵尸免疫
func (z *Zombie) ApplyFreeze(duration int) {
	if z.Type.IsMachine() {
		return
	}
	if duration > z.FreezeCountdown {
		z.FreezeCountdown = duration
	}
}

// ApplyButter 施加黄油定身效果
func (z *Zombie) ApplyButter(duration int) {
	if z.Type.IsMachine() {
		return
	}
	if duration > z.ButterCountdown {
		z.ButterCountdown = duration
	}
}

// Projectile 弹体实体
type Projectile struct {
	ID   ProjectileID
	Type types.ProjectileType
	Row  int
	X    float64

	Speed        float64 // 有符号速度，负值向左（裂荚射手的后向豌豆）
	Damage       int
	SplashRadius float64

	SourcePlantID PlantID // 发射该弹体的植物

	Alive bool
}
