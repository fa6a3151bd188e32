// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// ZombieType 定义僵尸的类型
type ZombieType int

const (
	// ZombieUnknown 未知僵尸类型
	ZombieUnknown ZombieType = iota

	// 一阶僵尸
	ZombieBasic    // 普通僵尸
	ZombieConehead // 路障僵尸
	ZombieFlag     // 旗帜僵尸

	// 二阶僵尸
	ZombieBuckethead // 铁桶僵尸
	ZombieNewspaper  // 读报僵尸
	ZombieScreendoor // 铁栅门僵尸

	// 三阶僵尸
	ZombiePolevaulter // 撑杆跳僵尸
	ZombieFootball    // 橄榄球僵尸
	ZombieJack        // 小丑僵尸
	ZombieZomboni     // 雪橇车僵尸
	ZombieLadder      // 扶梯僵尸
	ZombieCatapult    // 投石车僵尸

	// 四阶僵尸
	ZombieGargantuar       // 白眼巨人
	ZombieGargantuarRedeye // 红眼巨人
	ZombieImp              // 小鬼僵尸
)

// zombieTypeStringMap 僵尸类型到配置字符串的映射
var zombieTypeStringMap = map[ZombieType]string{
	ZombieBasic:            "basic",
	ZombieConehead:         "conehead",
	ZombieFlag:             "flag",
	ZombieBuckethead:       "buckethead",
	ZombieNewspaper:        "newspaper",
	ZombieScreendoor:       "screendoor",
	ZombiePolevaulter:      "polevaulter",
	ZombieFootball:         "football",
	ZombieJack:             "jack",
	ZombieZomboni:          "zomboni",
	ZombieLadder:           "ladder",
	ZombieCatapult:         "catapult",
	ZombieGargantuar:       "gargantuar",
	ZombieGargantuarRedeye: "gargantuar_redeye",
	ZombieImp:              "imp",
}

// stringToZombieTypeMap 配置字符串到僵尸类型的反向映射
var stringToZombieTypeMap map[string]ZombieType

func init() {
	stringToZombieTypeMap = make(map[string]ZombieType)
	for zt, s := range zombieTypeStringMap {
		stringToZombieTypeMap[s] = zt
	}
	// 添加别名映射（处理历史命名不一致）
	stringToZombieTypeMap["newspaperzombie"] = ZombieNewspaper
	stringToZombieTypeMap["footballzombie"] = ZombieFootball
	stringToZombieTypeMap["jackinthebox"] = ZombieJack
	stringToZombieTypeMap["giga_gargantuar"] = ZombieGargantuarRedeye
	stringToZombieTypeMap["redeye"] = ZombieGargantuarRedeye
}

// String 返回僵尸类型的配置字符串表示（用于配置文件匹配）
func (z ZombieType) String() string {
	if s, ok := zombieTypeStringMap[z]; ok {
		return s
	}
	return "unknown"
}

// ZombieTypeFromString 将配置字符串转换为 ZombieType
// 支持标准名称和历史别名
func ZombieTypeFromString(s string) ZombieType {
	if zt, ok := stringToZombieTypeMap[s]; ok {
		return zt
	}
	return ZombieUnknown
}

// IsGargantuar 判断是否为巨人类僵尸（白眼/红眼）
// 巨人不啃食植物，使用锤击攻击，并且对秒杀伤害有减半抗性
func (z ZombieType) IsGargantuar() bool {
	switch z {
	case ZombieGargantuar, ZombieGargantuarRedeye:
		return true
	default:
		return false
	}
}

// HasShield 判断僵尸是否携带一类防具（举在身前的盾牌）
// 盾牌独立于二类防具（头部护甲），先于护甲吸收伤害
func (z ZombieType) HasShield() bool {
	switch z {
	case ZombieScreendoor, ZombieLadder:
		return true
	default:
		return false
	}
}

// IsMachine 判断是否为机械僵尸（免疫冰冻与减速）
func (z ZombieType) IsMachine() bool {
	switch z {
	case ZombieZomboni, ZombieCatapult:
		return true
	default:
		return false
	}
}

// Tier 返回僵尸的阶数（1-4）
func (z ZombieType) Tier() int {
	switch z {
	case ZombieBasic, ZombieConehead, ZombieFlag:
		return 1
	case ZombieBuckethead, ZombieNewspaper, ZombieScreendoor:
		return 2
	case ZombiePolevaulter, ZombieFootball, ZombieJack,
		ZombieZomboni, ZombieLadder, ZombieCatapult:
		return 3
	case ZombieGargantuar, ZombieGargantuarRedeye, ZombieImp:
		return 4
	default:
		return 0
	}
}
