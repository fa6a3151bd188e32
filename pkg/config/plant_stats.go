package config

import (
	"fmt"
	"os"

	"github.com/decker502/pvzbot/pkg/types"
	"gopkg.in/yaml.v3"
)

// PlantStats 单个植物类型的属性配置
type PlantStats struct {
	Cost           int `yaml:"cost"`           // 阳光消耗
	Health         int `yaml:"health"`         // 植物血量
	AttackInterval int `yaml:"attackInterval"` // 攻击间隔（厘秒），0 表示不攻击
	Damage         int `yaml:"damage"`         // 单次攻击伤害（射手为单颗弹体伤害）
	Recharge       int `yaml:"recharge"`       // 卡片冷却时间（厘秒）
}

// PlantStatsConfig 植物属性配置集合
type PlantStatsConfig struct {
	Plants map[string]PlantStats `yaml:"plants"` // 植物类型到属性的映射
}

// 卡片冷却档位（厘秒）
const (
	RechargeFast     = 750
	RechargeSlow     = 3000
	RechargeVerySlow = 5000
)

// defaultPlantStats 内置的植物属性表
var defaultPlantStats = map[string]PlantStats{
	"sunflower":    {Cost: 50, Health: 300, AttackInterval: 2400, Recharge: RechargeFast},
	"peashooter":   {Cost: 100, Health: 300, AttackInterval: 141, Damage: 20, Recharge: RechargeFast},
	"snow_pea":     {Cost: 175, Health: 300, AttackInterval: 141, Damage: 20, Recharge: RechargeFast},
	"repeater":     {Cost: 200, Health: 300, AttackInterval: 141, Damage: 20, Recharge: RechargeFast},
	"threepeater":  {Cost: 325, Health: 300, AttackInterval: 141, Damage: 20, Recharge: RechargeFast},
	"split_pea":    {Cost: 125, Health: 300, AttackInterval: 141, Damage: 20, Recharge: RechargeFast},
	"gatling_pea":  {Cost: 250, Health: 300, AttackInterval: 141, Damage: 20, Recharge: RechargeVerySlow},
	"puff_shroom":  {Cost: 0, Health: 300, AttackInterval: 141, Damage: 20, Recharge: RechargeFast},
	"fume_shroom":  {Cost: 75, Health: 300, AttackInterval: 141, Damage: 20, Recharge: RechargeFast},
	"cabbage_pult": {Cost: 100, Health: 300, AttackInterval: 285, Damage: 40, Recharge: RechargeFast},
	"kernel_pult":  {Cost: 100, Health: 300, AttackInterval: 285, Damage: 20, Recharge: RechargeFast},
	"melon_pult":   {Cost: 300, Health: 300, AttackInterval: 285, Damage: 80, Recharge: RechargeFast},
	"winter_melon": {Cost: 500, Health: 300, AttackInterval: 285, Damage: 80, Recharge: RechargeVerySlow},
	"cob_cannon":   {Cost: 500, Health: 300, Recharge: RechargeVerySlow},
	"wallnut":      {Cost: 50, Health: 4000, Recharge: RechargeSlow},
	"tallnut":      {Cost: 125, Health: 8000, Recharge: RechargeSlow},
	"pumpkin":      {Cost: 125, Health: 4000, Recharge: RechargeSlow},
	"cherry_bomb":  {Cost: 150, Health: 300, Recharge: RechargeVerySlow},
	"jalapeno":     {Cost: 125, Health: 300, Recharge: RechargeVerySlow},
	"doom_shroom":  {Cost: 125, Health: 300, Recharge: RechargeVerySlow},
	"ice_shroom":   {Cost: 75, Health: 300, Recharge: RechargeVerySlow},
	"squash":       {Cost: 50, Health: 300, Recharge: RechargeSlow},
	"potato_mine":  {Cost: 25, Health: 300, Recharge: RechargeSlow},
}

// DefaultPlantStats 返回内置的植物属性配置
func DefaultPlantStats() *PlantStatsConfig {
	plants := make(map[string]PlantStats, len(defaultPlantStats))
	for name, stats := range defaultPlantStats {
		plants[name] = stats
	}
	return &PlantStatsConfig{Plants: plants}
}

// LoadPlantStats 从 YAML 文件加载植物属性配置
// 文件中的条目覆盖内置默认值
func LoadPlantStats(filepath string) (*PlantStatsConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read plant stats file %s: %w", filepath, err)
	}

	var overlay PlantStatsConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse plant stats YAML from %s: %w", filepath, err)
	}

	config := DefaultPlantStats()
	for name, stats := range overlay.Plants {
		config.Plants[name] = stats
	}

	if err := validatePlantStats(config); err != nil {
		return nil, fmt.Errorf("invalid plant stats in %s: %w", filepath, err)
	}

	return config, nil
}

// validatePlantStats 验证植物属性配置的完整性和合法性
func validatePlantStats(config *PlantStatsConfig) error {
	if len(config.Plants) == 0 {
		return fmt.Errorf("at least one plant type is required")
	}

	for plantType, stats := range config.Plants {
		if types.PlantTypeFromString(plantType) == types.PlantUnknown {
			return fmt.Errorf("plant %s: unknown plant type", plantType)
		}

		if stats.Cost < 0 {
			return fmt.Errorf("plant %s: cost cannot be negative, got %d", plantType, stats.Cost)
		}

		if stats.Health <= 0 {
			return fmt.Errorf("plant %s: health must be positive, got %d", plantType, stats.Health)
		}

		if stats.AttackInterval < 0 {
			return fmt.Errorf("plant %s: attackInterval cannot be negative, got %d", plantType, stats.AttackInterval)
		}

		if stats.Damage < 0 {
			return fmt.Errorf("plant %s: damage cannot be negative, got %d", plantType, stats.Damage)
		}
	}

	return nil
}

// Get 获取指定植物类型的属性
// 如果类型不存在，返回 false
func (c *PlantStatsConfig) Get(pt types.PlantType) (PlantStats, bool) {
	stats, ok := c.Plants[pt.String()]
	return stats, ok
}
