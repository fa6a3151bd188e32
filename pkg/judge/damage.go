// Package judge 提供战斗判定的纯计算函数
// 本包不持有任何状态，所有函数均为确定性计算，供模拟器与决策层共用
package judge

import (
	"github.com/decker502/pvzbot/pkg/types"
)

// BaseInstantDamage 秒杀类武器（樱桃炸弹、玉米加农炮、毁灭菇等）的基础伤害
const BaseInstantDamage = 1800

// InstantDamage 返回秒杀类武器对指定僵尸类型的实际伤害
// 巨人类僵尸对秒杀伤害有减半抗性，这是僵尸类型的属性而非武器属性
func InstantDamage(zt types.ZombieType) int {
	if zt.IsGargantuar() {
		return BaseInstantDamage / 2
	}
	return BaseInstantDamage
}

// HitsToKill 计算击杀指定总血量需要的攻击次数
// damage 非正时返回 -1 表示永远无法击杀
func HitsToKill(totalHealth, damage int) int {
	if totalHealth <= 0 {
		return 0
	}
	if damage <= 0 {
		return -1
	}
	return (totalHealth + damage - 1) / damage
}

// InstantHitsToKill 计算秒杀类武器击杀指定僵尸需要的次数
// 对巨人类僵尸按减半后的伤害计算
func InstantHitsToKill(zt types.ZombieType, totalHealth int) int {
	return HitsToKill(totalHealth, InstantDamage(zt))
}

// TimeToKill 计算以固定间隔攻击击杀目标所需的时间（厘秒）
// 第一次攻击发生在 0 时刻，因此结果为 (次数-1)*间隔
// 无法击杀时返回 -1
func TimeToKill(totalHealth, damage, interval int) int {
	hits := HitsToKill(totalHealth, damage)
	if hits < 0 {
		return -1
	}
	if hits == 0 {
		return 0
	}
	return (hits - 1) * interval
}

// DPS 计算每厘秒伤害
func DPS(damage, interval int) float64 {
	if interval <= 0 {
		return 0
	}
	return float64(damage) / float64(interval)
}

// Overkill 计算击杀目标时浪费的伤害量
func Overkill(totalHealth, damage int) int {
	hits := HitsToKill(totalHealth, damage)
	if hits <= 0 {
		return 0
	}
	return hits*damage - totalHealth
}

// DamageEfficiency 计算一次范围攻击对一组目标的有效伤害比例
// totalHealths 为每个目标的剩余总血量，返回实际造成伤害 / 理论最大伤害
func DamageEfficiency(totalHealths []int, damage int) float64 {
	if damage <= 0 || len(totalHealths) == 0 {
		return 0
	}
	dealt := 0
	for _, h := range totalHealths {
		if h <= 0 {
			continue
		}
		if h < damage {
			dealt += h
		} else {
			dealt += damage
		}
	}
	return float64(dealt) / float64(damage*len(totalHealths))
}
