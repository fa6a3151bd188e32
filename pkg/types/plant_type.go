// Package types 定义共享的基础类型
package types

// PlantType 定义植物的类型
type PlantType int

const (
	// PlantUnknown 未知植物类型
	PlantUnknown PlantType = iota

	// 生产与攻击植物
	PlantSunflower  // 向日葵
	PlantPeashooter // 豌豆射手
	PlantSnowPea    // 寒冰射手
	PlantRepeater   // 双发射手
	PlantThreepeater // 三线射手
	PlantSplitPea   // 裂荚射手
	PlantGatlingPea // 机枪射手
	PlantPuffShroom // 小喷菇
	PlantFumeShroom // 大喷菇
	PlantCabbagePult // 卷心菜投手
	PlantKernelPult // 玉米投手
	PlantMelonPult  // 西瓜投手
	PlantWinterMelon // 冰瓜投手
	PlantCobCannon  // 玉米加农炮

	// 防御植物
	PlantWallnut // 坚果墙
	PlantTallnut // 高坚果
	PlantPumpkin // 南瓜头

	// 即时植物
	PlantCherryBomb // 樱桃炸弹
	PlantJalapeno   // 火爆辣椒
	PlantDoomShroom // 毁灭菇
	PlantIceShroom  // 寒冰菇
	PlantSquash     // 窝瓜
	PlantPotatoMine // 土豆地雷
)

// plantTypeStringMap 植物类型到配置字符串的映射
var plantTypeStringMap = map[PlantType]string{
	PlantSunflower:   "sunflower",
	PlantPeashooter:  "peashooter",
	PlantSnowPea:     "snow_pea",
	PlantRepeater:    "repeater",
	PlantThreepeater: "threepeater",
	PlantSplitPea:    "split_pea",
	PlantGatlingPea:  "gatling_pea",
	PlantPuffShroom:  "puff_shroom",
	PlantFumeShroom:  "fume_shroom",
	PlantCabbagePult: "cabbage_pult",
	PlantKernelPult:  "kernel_pult",
	PlantMelonPult:   "melon_pult",
	PlantWinterMelon: "winter_melon",
	PlantCobCannon:   "cob_cannon",
	PlantWallnut:     "wallnut",
	PlantTallnut:     "tallnut",
	PlantPumpkin:     "pumpkin",
	PlantCherryBomb:  "cherry_bomb",
	PlantJalapeno:    "jalapeno",
	PlantDoomShroom:  "doom_shroom",
	PlantIceShroom:   "ice_shroom",
	PlantSquash:      "squash",
	PlantPotatoMine:  "potato_mine",
}

// stringToPlantTypeMap 配置字符串到植物类型的反向映射
var stringToPlantTypeMap map[string]PlantType

func init() {
	stringToPlantTypeMap = make(map[string]PlantType)
	for pt, s := range plantTypeStringMap {
		stringToPlantTypeMap[s] = pt
	}
	stringToPlantTypeMap["snowpea"] = PlantSnowPea
	stringToPlantTypeMap["splitpea"] = PlantSplitPea
	stringToPlantTypeMap["wintermelon"] = PlantWinterMelon
	stringToPlantTypeMap["cobcannon"] = PlantCobCannon
	stringToPlantTypeMap["cherrybomb"] = PlantCherryBomb
}

// String 返回植物类型的配置字符串表示
func (p PlantType) String() string {
	if s, ok := plantTypeStringMap[p]; ok {
		return s
	}
	return "unknown"
}

// PlantTypeFromString 将配置字符串转换为 PlantType
func PlantTypeFromString(s string) PlantType {
	if pt, ok := stringToPlantTypeMap[s]; ok {
		return pt
	}
	return PlantUnknown
}

// FiresProjectile 判断植物是否发射飞行弹体
func (p PlantType) FiresProjectile() bool {
	switch p {
	case PlantPeashooter, PlantSnowPea, PlantRepeater, PlantThreepeater,
		PlantSplitPea, PlantGatlingPea, PlantPuffShroom,
		PlantCabbagePult, PlantKernelPult, PlantMelonPult, PlantWinterMelon:
		return true
	default:
		return false
	}
}

// IsInstantExplosive 判断是否为延时起爆的即时植物
// 这类植物种下后经过固定延迟爆炸并消失
func (p PlantType) IsInstantExplosive() bool {
	switch p {
	case PlantCherryBomb, PlantJalapeno, PlantDoomShroom, PlantIceShroom:
		return true
	default:
		return false
	}
}

// IsDefensive 判断是否为防御植物（高血量，无攻击）
func (p PlantType) IsDefensive() bool {
	switch p {
	case PlantWallnut, PlantTallnut, PlantPumpkin:
		return true
	default:
		return false
	}
}

// IsOverlay 判断植物是否以覆盖层形式与底座植物共存于同一格
func (p PlantType) IsOverlay() bool {
	return p == PlantPumpkin
}

// Projectile 返回植物发射的弹体类型
func (p PlantType) Projectile() ProjectileType {
	switch p {
	case PlantPeashooter, PlantRepeater, PlantThreepeater,
		PlantSplitPea, PlantGatlingPea:
		return ProjectilePea
	case PlantSnowPea:
		return ProjectileSnowPea
	case PlantPuffShroom:
		return ProjectilePuff
	case PlantCabbagePult:
		return ProjectileCabbage
	case PlantKernelPult:
		return ProjectileKernel
	case PlantMelonPult:
		return ProjectileMelon
	case PlantWinterMelon:
		return ProjectileWinterMelon
	default:
		return ProjectileUnknown
	}
}
