package judge

// 弹道与冷却时间常量（厘秒）
const (
	CobFlyTime     = 373  // 平地场景玉米加农炮弹飞行时间
	CobRecoverTime = 3475 // 玉米加农炮两次发射之间的冷却
	InstantDelay   = 100  // 即时植物（樱桃、辣椒、毁灭菇）从种下到生效的延迟
	PotatoArmTime  = 1500 // 土豆地雷的武装时间

	CobExplodeRadius    = 115 // 玉米加农炮爆炸半径
	CherryExplodeRadius = 90  // 樱桃炸弹爆炸半径
	DoomExplodeRadius   = 150 // 毁灭菇爆炸半径
)

// RoofCobFlyTime 屋顶场景炮弹飞行时间，按炮身所在列（0 基）索引
// 屋顶斜坡导致飞行时间随发射列变化
var RoofCobFlyTime = [7]int{359, 362, 364, 367, 369, 372, 373}

// CobFlyTimeFor 返回指定场景与炮身列的炮弹飞行时间
func CobFlyTimeFor(roof bool, cobCol int) int {
	if !roof {
		return CobFlyTime
	}
	if cobCol < 0 {
		cobCol = 0
	}
	if cobCol >= len(RoofCobFlyTime) {
		cobCol = len(RoofCobFlyTime) - 1
	}
	return RoofCobFlyTime[cobCol]
}

// LeadTime 计算提前量：为了让武器在目标到达 targetX 时命中，
// 还需要等待多少厘秒才发射。结果不为负：已经迟了则立即发射
func LeadTime(zombieX, speed, targetX float64, flyTime int) float64 {
	if speed <= 0 {
		return 0
	}
	wait := (zombieX-targetX)/speed - float64(flyTime)
	if wait < 0 {
		return 0
	}
	return wait
}

// PredictX 预测僵尸在指定帧数后的 X 坐标
// 考虑当前状态效果的阶段衰减
func PredictX(x, baseSpeed float64, frames int, freezeLeft, slowLeft, butterLeft int) float64 {
	return x - DistanceIn(frames, baseSpeed, freezeLeft, slowLeft, butterLeft)
}

// TargetInfo 范围武器目标选择的输入：一个僵尸的行与预测位置
type TargetInfo struct {
	Row int
	X   float64
}

// BestBlastTarget 在候选爆心中寻找命中数最多的落点
// 候选爆心取每个目标的预测位置，多个最优时返回迭代序中的第一个
// 返回值 count 为 0 表示没有目标
func BestBlastTarget(targets []TargetInfo, radius float64) (x float64, row, count int) {
	for _, center := range targets {
		hits := 0
		for _, z := range targets {
			if IsSplashHit(center.Row, center.X, z.Row, z.X, radius) {
				hits++
			}
		}
		if hits > count {
			x = center.X
			row = center.Row
			count = hits
		}
	}
	return x, row, count
}
