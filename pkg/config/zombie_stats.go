package config

import (
	"fmt"
	"os"

	"github.com/decker502/pvzbot/pkg/types"
	"gopkg.in/yaml.v3"
)

// ZombieStats 单个僵尸类型的属性配置
// 血量分为三层：一类防具（盾牌）、二类防具（护甲）、本体
// 伤害按 盾牌 -> 护甲 -> 本体 的顺序吸收，仅本体归零判定死亡
type ZombieStats struct {
	BodyHealth   int     `yaml:"bodyHealth"`   // 本体血量
	ArmorHealth  int     `yaml:"armorHealth"`  // 二类防具血量（路障、铁桶、头盔）
	ShieldHealth int     `yaml:"shieldHealth"` // 一类防具血量（铁栅门、梯子）
	Speed        float64 `yaml:"speed"`        // 基础移动速度（像素/厘秒）
}

// ZombieStatsConfig 僵尸属性配置集合
type ZombieStatsConfig struct {
	Zombies map[string]ZombieStats `yaml:"zombies"` // 僵尸类型到属性的映射
}

// defaultZombieStats 内置的僵尸属性表
// 覆盖文件缺失时的基准数值
var defaultZombieStats = map[string]ZombieStats{
	"basic":             {BodyHealth: 200, Speed: 0.23},
	"flag":              {BodyHealth: 200, Speed: 0.37},
	"conehead":          {BodyHealth: 200, ArmorHealth: 370, Speed: 0.23},
	"buckethead":        {BodyHealth: 200, ArmorHealth: 1100, Speed: 0.23},
	"newspaper":         {BodyHealth: 200, ArmorHealth: 150, Speed: 0.23},
	"screendoor":        {BodyHealth: 200, ShieldHealth: 1100, Speed: 0.23},
	"polevaulter":       {BodyHealth: 500, Speed: 0.45},
	"football":          {BodyHealth: 200, ArmorHealth: 1400, Speed: 0.68},
	"jack":              {BodyHealth: 500, Speed: 0.45},
	"zomboni":           {BodyHealth: 1350, Speed: 0.3},
	"ladder":            {BodyHealth: 500, ShieldHealth: 500, Speed: 0.45},
	"catapult":          {BodyHealth: 850, Speed: 0.3},
	"gargantuar":        {BodyHealth: 3000, Speed: 0.15},
	"gargantuar_redeye": {BodyHealth: 6000, Speed: 0.15},
	"imp":               {BodyHealth: 300, Speed: 0.23},
}

// DefaultZombieStats 返回内置的僵尸属性配置
func DefaultZombieStats() *ZombieStatsConfig {
	zombies := make(map[string]ZombieStats, len(defaultZombieStats))
	for name, stats := range defaultZombieStats {
		zombies[name] = stats
	}
	return &ZombieStatsConfig{Zombies: zombies}
}

// LoadZombieStats 从 YAML 文件加载僵尸属性配置
// 文件中的条目覆盖内置默认值，未出现的类型保留默认值
func LoadZombieStats(filepath string) (*ZombieStatsConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read zombie stats file %s: %w", filepath, err)
	}

	var overlay ZombieStatsConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse zombie stats YAML from %s: %w", filepath, err)
	}

	config := DefaultZombieStats()
	for name, stats := range overlay.Zombies {
		config.Zombies[name] = stats
	}

	if err := validateZombieStats(config); err != nil {
		return nil, fmt.Errorf("invalid zombie stats in %s: %w", filepath, err)
	}

	return config, nil
}

// validateZombieStats 验证僵尸属性配置的完整性和合法性
func validateZombieStats(config *ZombieStatsConfig) error {
	if len(config.Zombies) == 0 {
		return fmt.Errorf("at least one zombie type is required")
	}

	for zombieType, stats := range config.Zombies {
		if types.ZombieTypeFromString(zombieType) == types.ZombieUnknown {
			return fmt.Errorf("zombie %s: unknown zombie type", zombieType)
		}

		if stats.BodyHealth <= 0 {
			return fmt.Errorf("zombie %s: bodyHealth must be positive, got %d", zombieType, stats.BodyHealth)
		}

		if stats.ArmorHealth < 0 {
			return fmt.Errorf("zombie %s: armorHealth cannot be negative, got %d", zombieType, stats.ArmorHealth)
		}

		if stats.ShieldHealth < 0 {
			return fmt.Errorf("zombie %s: shieldHealth cannot be negative, got %d", zombieType, stats.ShieldHealth)
		}

		if stats.Speed <= 0 {
			return fmt.Errorf("zombie %s: speed must be positive, got %f", zombieType, stats.Speed)
		}
	}

	return nil
}

// Get 获取指定僵尸类型的属性
// 如果类型不存在，返回 false
func (c *ZombieStatsConfig) Get(zt types.ZombieType) (ZombieStats, bool) {
	stats, ok := c.Zombies[zt.String()]
	return stats, ok
}
