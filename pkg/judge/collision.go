package judge

import (
	"math"

	"github.com/decker502/pvzbot/pkg/types"
)

// ZombieHitHalfWidth 粗粒度判定中僵尸受击盒的半宽（像素）
const ZombieHitHalfWidth = 20

// IsBulletHit 粗粒度弹体命中判定：弹体 X 与僵尸受击盒重叠
// 行匹配由调用方保证
func IsBulletHit(bulletX, zombieX float64) bool {
	return math.Abs(bulletX-zombieX) <= ZombieHitHalfWidth
}

// IsSplashHit 溅射命中判定：行距不超过 1，X 距离不超过溅射半径
func IsSplashHit(impactRow int, impactX float64, zombieRow int, zombieX, radius float64) bool {
	rowDiff := impactRow - zombieRow
	if rowDiff < -1 || rowDiff > 1 {
		return false
	}
	return math.Abs(impactX-zombieX) <= radius
}

// IsExplosionHit 爆炸命中判定：行距不超过 rowSpan，X 距离不超过爆炸半径
// 樱桃炸弹、毁灭菇与玉米加农炮 rowSpan 均为 1
func IsExplosionHit(centerRow int, centerX float64, rowSpan int, radius float64, zombieRow int, zombieX float64) bool {
	rowDiff := centerRow - zombieRow
	if rowDiff < -rowSpan || rowDiff > rowSpan {
		return false
	}
	return math.Abs(centerX-zombieX) <= radius
}

// DefenseRange 植物判定区间：相对植物锚点 X 的偏移区间 [Left, Right]
// 区间不对称，因为植物贴图锚点不在图形中心
type DefenseRange struct {
	Left  float64
	Right float64
}

// hitDefenseRanges 啃食判定区间表：僵尸攻击点落入该区间时开始啃食
var hitDefenseRanges = map[types.PlantType]DefenseRange{
	types.PlantTallnut:   {Left: 30, Right: 60},
	types.PlantPumpkin:   {Left: 20, Right: 80},
	types.PlantCobCannon: {Left: 20, Right: 120},
}

// defaultHitDefenseRange 未在表中列出的植物使用的默认啃食区间
var defaultHitDefenseRange = DefenseRange{Left: 30, Right: 50}

// HitDefenseRange 返回植物的啃食判定区间
func HitDefenseRange(pt types.PlantType) DefenseRange {
	if r, ok := hitDefenseRanges[pt]; ok {
		return r
	}
	return defaultHitDefenseRange
}

// explodeDefenseRanges 爆炸波及判定区间表：爆炸圆触及该区间时植物被炸毁
var explodeDefenseRanges = map[types.PlantType]DefenseRange{
	types.PlantTallnut:   {Left: -50, Right: 30},
	types.PlantPumpkin:   {Left: -60, Right: 40},
	types.PlantCobCannon: {Left: -60, Right: 80},
}

// defaultExplodeDefenseRange 默认爆炸波及区间
var defaultExplodeDefenseRange = DefenseRange{Left: -50, Right: 10}

// ExplodeDefenseRange 返回植物的爆炸波及判定区间
func ExplodeDefenseRange(pt types.PlantType) DefenseRange {
	if r, ok := explodeDefenseRanges[pt]; ok {
		return r
	}
	return defaultExplodeDefenseRange
}

// IsZombieBitingPlant 判定僵尸攻击点是否进入植物的啃食区间
func IsZombieBitingPlant(attackX, plantX float64, pt types.PlantType) bool {
	r := HitDefenseRange(pt)
	return attackX >= plantX+r.Left && attackX <= plantX+r.Right
}

// JackExplodeRadius 小丑僵尸玩偶匣爆炸半径（像素）
const JackExplodeRadius = 90

// IsPlantInBlast 判定爆炸是否波及植物（小丑爆炸）
// 爆炸区间 [blastX-radius, blastX+radius] 与植物的波及区间相交即命中
func IsPlantInBlast(blastX, radius, plantX float64, pt types.PlantType) bool {
	r := ExplodeDefenseRange(pt)
	return blastX+radius >= plantX+r.Left && blastX-radius <= plantX+r.Right
}

// HurtBox 精细判定用的受击矩形：相对僵尸锚点的偏移与尺寸
type HurtBox struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// zombieHurtBoxes 精细受击盒表
var zombieHurtBoxes = map[types.ZombieType]HurtBox{
	types.ZombieGargantuar:       {OffsetX: -17, OffsetY: 0, Width: 89, Height: 154},
	types.ZombieGargantuarRedeye: {OffsetX: -17, OffsetY: 0, Width: 89, Height: 154},
	types.ZombieImp:              {OffsetX: -6, OffsetY: 0, Width: 42, Height: 88},
	types.ZombieZomboni:          {OffsetX: -30, OffsetY: 0, Width: 153, Height: 140},
}

// defaultZombieHurtBox 普通体型僵尸的受击盒
var defaultZombieHurtBox = HurtBox{OffsetX: -10, OffsetY: 0, Width: 42, Height: 115}

// ZombieHurtBox 返回僵尸类型的精细受击盒
func ZombieHurtBox(zt types.ZombieType) HurtBox {
	if b, ok := zombieHurtBoxes[zt]; ok {
		return b
	}
	return defaultZombieHurtBox
}

// zombieAttackOffsets 僵尸攻击点相对锚点的 X 偏移
var zombieAttackOffsets = map[types.ZombieType]float64{
	types.ZombiePolevaulter: -40,
	types.ZombieImp:         -10,
}

// defaultZombieAttackOffset 默认攻击点偏移
const defaultZombieAttackOffset = -20

// ZombieAttackX 返回僵尸用于啃食判定的攻击点 X 坐标
func ZombieAttackX(zt types.ZombieType, x float64) float64 {
	if off, ok := zombieAttackOffsets[zt]; ok {
		return x + off
	}
	return x + defaultZombieAttackOffset
}

// RectCircleDistance 计算圆心到矩形的最短距离
// 圆心在矩形内部时距离为 0
func RectCircleDistance(boxX, boxY, boxW, boxH, cx, cy float64) float64 {
	nearestX := clamp(cx, boxX, boxX+boxW)
	nearestY := clamp(cy, boxY, boxY+boxH)
	dx := cx - nearestX
	dy := cy - nearestY
	return math.Sqrt(dx*dx + dy*dy)
}

// IsExplosionHitPrecise 精细爆炸判定：爆炸圆与僵尸受击矩形相交
func IsExplosionHitPrecise(zt types.ZombieType, zombieX, zombieY, blastX, blastY, radius float64) bool {
	box := ZombieHurtBox(zt)
	return RectCircleDistance(zombieX+box.OffsetX, zombieY+box.OffsetY, box.Width, box.Height, blastX, blastY) <= radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
