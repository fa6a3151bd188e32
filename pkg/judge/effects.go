package judge

import "math"

// 状态效果时长常量（厘秒）
const (
	FreezeDuration = 400  // 冰冻定身时长
	SlowDuration   = 1000 // 减速时长
	ButterDuration = 400  // 黄油定身时长
	IceEffectDelay = 298  // 寒冰菇从种下到生效的延迟

	SlowFactor = 0.5 // 减速期间的速度倍率
)

// Status 僵尸的当前状态
type Status int

const (
	StatusNormal   Status = iota // 正常
	StatusSlowed                 // 减速
	StatusFrozen                 // 冰冻定身
	StatusButtered               // 黄油定身
)

// String 返回状态的字符串表示
func (s Status) String() string {
	switch s {
	case StatusSlowed:
		return "slowed"
	case StatusFrozen:
		return "frozen"
	case StatusButtered:
		return "buttered"
	default:
		return "normal"
	}
}

// CurrentStatus 根据效果剩余时间判定当前状态
// 定身效果优先于减速上报
func CurrentStatus(freezeLeft, slowLeft, butterLeft int) Status {
	if freezeLeft > 0 {
		return StatusFrozen
	}
	if butterLeft > 0 {
		return StatusButtered
	}
	if slowLeft > 0 {
		return StatusSlowed
	}
	return StatusNormal
}

// EffectiveSpeed 计算状态效果作用下的实际移动速度
// 定身期间速度为 0，减速期间速度减半
func EffectiveSpeed(baseSpeed float64, freezeLeft, slowLeft, butterLeft int) float64 {
	if freezeLeft > 0 || butterLeft > 0 {
		return 0
	}
	if slowLeft > 0 {
		return baseSpeed * SlowFactor
	}
	return baseSpeed
}

// TravelTime 计算僵尸穿越指定距离所需的时间（厘秒）
// 按阶段积分：定身阶段不移动，减速阶段半速，之后全速
// 减速剩余时间包含定身阶段（寒冰菇的冰冻与减速共用一次触发）
// 距离非正返回 0，速度非正返回 +Inf
func TravelTime(distance, baseSpeed float64, freezeLeft, slowLeft, butterLeft int) float64 {
	if distance <= 0 {
		return 0
	}
	if baseSpeed <= 0 {
		return math.Inf(1)
	}

	immobile := freezeLeft
	if butterLeft > immobile {
		immobile = butterLeft
	}

	elapsed := float64(immobile)

	slowPhase := float64(slowLeft - immobile)
	if slowPhase > 0 {
		slowSpeed := baseSpeed * SlowFactor
		slowDistance := slowSpeed * slowPhase
		if slowDistance >= distance {
			return elapsed + distance/slowSpeed
		}
		distance -= slowDistance
		elapsed += slowPhase
	}

	return elapsed + distance/baseSpeed
}

// DistanceIn 计算僵尸在指定帧数内移动的距离
// TravelTime 的逆运算，用于位置预测
func DistanceIn(frames int, baseSpeed float64, freezeLeft, slowLeft, butterLeft int) float64 {
	if frames <= 0 || baseSpeed <= 0 {
		return 0
	}

	remaining := float64(frames)

	immobile := float64(freezeLeft)
	if float64(butterLeft) > immobile {
		immobile = float64(butterLeft)
	}
	if immobile >= remaining {
		return 0
	}
	remaining -= immobile

	distance := 0.0
	slowPhase := float64(slowLeft) - immobile
	if slowPhase > 0 {
		slowSpeed := baseSpeed * SlowFactor
		if slowPhase >= remaining {
			return slowSpeed * remaining
		}
		distance += slowSpeed * slowPhase
		remaining -= slowPhase
	}

	return distance + baseSpeed*remaining
}
