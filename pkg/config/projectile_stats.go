package config

import (
	"fmt"
	"os"

	"github.com/decker502/pvzbot/pkg/types"
	"gopkg.in/yaml.v3"
)

// ProjectileStats 单个弹体类型的属性配置
type ProjectileStats struct {
	Damage       int     `yaml:"damage"`       // 命中伤害
	Speed        float64 `yaml:"speed"`        // 飞行速度（像素/厘秒），正值向右
	SplashRadius float64 `yaml:"splashRadius"` // 溅射半径（像素），0 表示单体伤害
}

// ProjectileStatsConfig 弹体属性配置集合
type ProjectileStatsConfig struct {
	Projectiles map[string]ProjectileStats `yaml:"projectiles"` // 弹体类型到属性的映射
}

// defaultProjectileStats 内置的弹体属性表
var defaultProjectileStats = map[string]ProjectileStats{
	"pea":          {Damage: 20, Speed: 3.7},
	"snow_pea":     {Damage: 20, Speed: 3.7},
	"fire_pea":     {Damage: 40, Speed: 3.7},
	"puff":         {Damage: 20, Speed: 3.7},
	"cabbage":      {Damage: 40, Speed: 3.0},
	"kernel":       {Damage: 20, Speed: 3.0},
	"butter":       {Damage: 20, Speed: 3.0},
	"melon":        {Damage: 80, Speed: 3.0, SplashRadius: 80},
	"winter_melon": {Damage: 80, Speed: 3.0, SplashRadius: 80},
}

// DefaultProjectileStats 返回内置的弹体属性配置
func DefaultProjectileStats() *ProjectileStatsConfig {
	projectiles := make(map[string]ProjectileStats, len(defaultProjectileStats))
	for name, stats := range defaultProjectileStats {
		projectiles[name] = stats
	}
	return &ProjectileStatsConfig{Projectiles: projectiles}
}

// LoadProjectileStats 从 YAML 文件加载弹体属性配置
// 文件中的条目覆盖内置默认值
func LoadProjectileStats(filepath string) (*ProjectileStatsConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read projectile stats file %s: %w", filepath, err)
	}

	var overlay ProjectileStatsConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse projectile stats YAML from %s: %w", filepath, err)
	}

	config := DefaultProjectileStats()
	for name, stats := range overlay.Projectiles {
		config.Projectiles[name] = stats
	}

	if err := validateProjectileStats(config); err != nil {
		return nil, fmt.Errorf("invalid projectile stats in %s: %w", filepath, err)
	}

	return config, nil
}

// validateProjectileStats 验证弹体属性配置的完整性和合法性
func validateProjectileStats(config *ProjectileStatsConfig) error {
	if len(config.Projectiles) == 0 {
		return fmt.Errorf("at least one projectile type is required")
	}

	for projType, stats := range config.Projectiles {
		if types.ProjectileTypeFromString(projType) == types.ProjectileUnknown {
			return fmt.Errorf("projectile %s: unknown projectile type", projType)
		}

		if stats.Damage < 0 {
			return fmt.Errorf("projectile %s: damage cannot be negative, got %d", projType, stats.Damage)
		}

		if stats.Speed <= 0 {
			return fmt.Errorf("projectile %s: speed must be positive, got %f", projType, stats.Speed)
		}

		if stats.SplashRadius < 0 {
			return fmt.Errorf("projectile %s: splashRadius cannot be negative, got %f", projType, stats.SplashRadius)
		}
	}

	return nil
}

// Get 获取指定弹体类型的属性
// 如果类型不存在，返回 false
func (c *ProjectileStatsConfig) Get(pt types.ProjectileType) (ProjectileStats, bool) {
	stats, ok := c.Projectiles[pt.String()]
	return stats, ok
}
