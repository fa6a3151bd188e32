package judge

import (
	"github.com/decker502/pvzbot/pkg/types"
)

// 巨人行为常量
const (
	HammerRangeLeft  = -30 // 锤击区间左界：植物 X 相对巨人 X 的偏移
	HammerRangeRight = 59  // 锤击区间右界
	HammerSwingTime  = 105 // 抬锤到砸下的时长（厘秒）

	// HammerCirculationRate 巨人行走周期中处于可锤击相位的比例
	HammerCirculationRate = 0.644

	// ImpThrowFirstRatio 首次投掷小鬼的本体血量比例阈值
	ImpThrowFirstRatio = 0.5
	// ImpThrowSecondRatio 红眼巨人第二次投掷的血量比例阈值
	ImpThrowSecondRatio = 0.25

	// ImpThrowDistance 小鬼被投出后的落点距巨人的距离（像素）
	ImpThrowDistance = 180
)

// ImpThrowTimes 投掷动作中小鬼脱手的时间点（厘秒，相对动作开始）
var ImpThrowTimes = [2]int{105, 210}

// GigaAvgSpeed 红眼巨人的长期平均速度（像素/厘秒）
// 行走与锤击动画交替，平均速度低于基础速度
const GigaAvgSpeed = 484.0 / 3158.0 * 1.25

// IsInHammerRange 判定植物是否处于巨人的锤击区间
// 植物 X 落在 [巨人 X - 30, 巨人 X + 59] 内可被锤到
func IsInHammerRange(gargX, plantX float64) bool {
	d := plantX - gargX
	return d >= HammerRangeLeft && d <= HammerRangeRight
}

// ImpThrowCount 返回巨人类型最多投掷小鬼的次数
func ImpThrowCount(zt types.ZombieType) int {
	switch zt {
	case types.ZombieGargantuarRedeye:
		return 2
	case types.ZombieGargantuar:
		return 1
	default:
		return 0
	}
}

// ShouldThrowImp 判定巨人当前是否应该投掷小鬼
// thrown 为已投掷次数。白眼在本体血量降到 50% 时投掷一次，
// 红眼在 50% 和 25% 各投掷一次
func ShouldThrowImp(zt types.ZombieType, bodyHealth, maxBodyHealth, thrown int) bool {
	if maxBodyHealth <= 0 || thrown >= ImpThrowCount(zt) {
		return false
	}
	ratio := float64(bodyHealth) / float64(maxBodyHealth)
	switch thrown {
	case 0:
		return ratio <= ImpThrowFirstRatio
	case 1:
		return ratio <= ImpThrowSecondRatio
	default:
		return false
	}
}

// CobsToKill 计算击杀指定本体血量的巨人需要的炮数
// 巨人对秒杀伤害减半，单发有效伤害 900
func CobsToKill(bodyHealth int) int {
	return HitsToKill(bodyHealth, BaseInstantDamage/2)
}

// HammerThreatWindow 估算巨人从右侧走入锤击区间所需的时间（厘秒）
// 巨人 X 降到 植物 X + 30 时植物进入区间。用于决策层判断需要在多少帧内处理该巨人
func HammerThreatWindow(gargX, plantX, speed float64, freezeLeft, slowLeft, butterLeft int) float64 {
	distance := gargX - (plantX - HammerRangeLeft)
	return TravelTime(distance, speed, freezeLeft, slowLeft, butterLeft)
}
