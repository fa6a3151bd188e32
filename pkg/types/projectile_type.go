// Package types 定义共享的基础类型
package types

// ProjectileType 定义弹体的类型
type ProjectileType int

const (
	// ProjectileUnknown 未知弹体类型
	ProjectileUnknown ProjectileType = iota

	ProjectilePea         // 豌豆
	ProjectileSnowPea     // 寒冰豌豆
	ProjectileFirePea     // 火焰豌豆
	ProjectilePuff        // 孢子
	ProjectileCabbage     // 卷心菜
	ProjectileKernel      // 玉米粒
	ProjectileButter      // 黄油
	ProjectileMelon       // 西瓜
	ProjectileWinterMelon // 冰瓜
	ProjectileCob         // 玉米加农炮弹
)

// projectileTypeStringMap 弹体类型到配置字符串的映射
var projectileTypeStringMap = map[ProjectileType]string{
	ProjectilePea:         "pea",
	ProjectileSnowPea:     "snow_pea",
	ProjectileFirePea:     "fire_pea",
	ProjectilePuff:        "puff",
	ProjectileCabbage:     "cabbage",
	ProjectileKernel:      "kernel",
	ProjectileButter:      "butter",
	ProjectileMelon:       "melon",
	ProjectileWinterMelon: "winter_melon",
	ProjectileCob:         "cob",
}

// stringToProjectileTypeMap 配置字符串到弹体类型的反向映射
var stringToProjectileTypeMap map[string]ProjectileType

func init() {
	stringToProjectileTypeMap = make(map[string]ProjectileType)
	for pt, s := range projectileTypeStringMap {
		stringToProjectileTypeMap[s] = pt
	}
}

// String 返回弹体类型的配置字符串表示
func (p ProjectileType) String() string {
	if s, ok := projectileTypeStringMap[p]; ok {
		return s
	}
	return "unknown"
}

// ProjectileTypeFromString 将配置字符串转换为 ProjectileType
func ProjectileTypeFromString(s string) ProjectileType {
	if pt, ok := stringToProjectileTypeMap[s]; ok {
		return pt
	}
	return ProjectileUnknown
}

// IsSplash 判断弹体命中后是否产生范围溅射伤害
func (p ProjectileType) IsSplash() bool {
	switch p {
	case ProjectileMelon, ProjectileWinterMelon:
		return true
	default:
		return false
	}
}

// Slows 判断弹体命中后是否附加减速效果
func (p ProjectileType) Slows() bool {
	switch p {
	case ProjectileSnowPea, ProjectileWinterMelon:
		return true
	default:
		return false
	}
}

// Immobilizes 判断弹体命中后是否附加定身效果（黄油）
func (p ProjectileType) Immobilizes() bool {
	return p == ProjectileButter
}
