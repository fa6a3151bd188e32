// Package config 提供模拟器的配置数据结构与 YAML 加载器
package config

import "fmt"

// 场地几何常量（像素单位，1 格 = 80x85 像素）
const (
	GridWidth  = 80 // 单格宽度
	GridHeight = 85 // 单格高度
	GridCols   = 9  // 场地列数
	LawnLeftX  = 40 // 草坪左边界 X 坐标
)

// 场景名称常量
const (
	SceneDay   = "day"   // 白天前院
	SceneNight = "night" // 黑夜前院
	ScenePool  = "pool"  // 白天泳池
	SceneFog   = "fog"   // 浓雾泳池
	SceneRoof  = "roof"  // 白天屋顶
	SceneMoon  = "moon"  // 黑夜屋顶
)

// SimConfig 模拟器的全局配置
// 所有坐标与时间均为确定性整数/浮点参数，不含随机源
type SimConfig struct {
	Scene      string `yaml:"scene"`      // 场景名称，决定行数
	InitialSun int    `yaml:"initialSun"` // 初始阳光
	SpawnX     int    `yaml:"spawnX"`     // 僵尸出生 X 坐标
	DefeatX    int    `yaml:"defeatX"`    // 失败判定边界：存活僵尸 X 小于该值即失败
}

// DefaultSimConfig 返回标准白天场景的默认配置
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Scene:      SceneDay,
		InitialSun: 50,
		SpawnX:     800,
		DefeatX:    0,
	}
}

// Rows 返回场景的行数：泳池类场景 6 行，其他场景 5 行
func (c SimConfig) Rows() int {
	switch c.Scene {
	case ScenePool, SceneFog:
		return 6
	default:
		return 5
	}
}

// LawnRightX 返回草坪右边界 X 坐标
func (c SimConfig) LawnRightX() int {
	return LawnLeftX + GridCols*GridWidth
}

// PlantX 返回指定列（0 基）植物的锚点 X 坐标
func (c SimConfig) PlantX(col int) float64 {
	return float64(LawnLeftX + col*GridWidth)
}

// RowY 返回指定行（0 基）的锚点 Y 坐标
func (c SimConfig) RowY(row int) float64 {
	return float64(row * GridHeight)
}

// InBounds 判断行列坐标是否落在场地内
func (c SimConfig) InBounds(row, col int) bool {
	return row >= 0 && row < c.Rows() && col >= 0 && col < GridCols
}

// Validate 验证配置合法性
func (c SimConfig) Validate() error {
	switch c.Scene {
	case SceneDay, SceneNight, ScenePool, SceneFog, SceneRoof, SceneMoon:
	default:
		return fmt.Errorf("unknown scene %q", c.Scene)
	}
	if c.InitialSun < 0 {
		return fmt.Errorf("initialSun cannot be negative, got %d", c.InitialSun)
	}
	if c.SpawnX <= c.LawnRightX() {
		return fmt.Errorf("spawnX must be beyond the lawn right edge %d, got %d", c.LawnRightX(), c.SpawnX)
	}
	return nil
}
