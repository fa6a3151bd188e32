package config

import "fmt"

// Stats 模拟器需要的全部属性表集合
// 显式传入模拟器构造函数，不使用全局单例
type Stats struct {
	Zombies     *ZombieStatsConfig
	Plants      *PlantStatsConfig
	Projectiles *ProjectileStatsConfig
}

// DefaultStats 返回全部内置属性表
func DefaultStats() *Stats {
	return &Stats{
		Zombies:     DefaultZombieStats(),
		Plants:      DefaultPlantStats(),
		Projectiles: DefaultProjectileStats(),
	}
}

// LoadStats 从目录加载属性表覆盖文件
// 目录下可放置 zombies.yaml / plants.yaml / projectiles.yaml，缺失的文件使用内置默认值
func LoadStats(dir string) (*Stats, error) {
	stats := DefaultStats()

	if cfg, err := LoadZombieStats(dir + "/zombies.yaml"); err == nil {
		stats.Zombies = cfg
	} else if !isNotExist(err) {
		return nil, fmt.Errorf("failed to load zombie stats: %w", err)
	}

	if cfg, err := LoadPlantStats(dir + "/plants.yaml"); err == nil {
		stats.Plants = cfg
	} else if !isNotExist(err) {
		return nil, fmt.Errorf("failed to load plant stats: %w", err)
	}

	if cfg, err := LoadProjectileStats(dir + "/projectiles.yaml"); err == nil {
		stats.Projectiles = cfg
	} else if !isNotExist(err) {
		return nil, fmt.Errorf("failed to load projectile stats: %w", err)
	}

	return stats, nil
}
