package config

import (
	"fmt"
	"os"

	"github.com/decker502/pvzbot/pkg/types"
	"gopkg.in/yaml.v3"
)

// ScenarioConfig 战斗场景配置数据结构
// 定义了场景的基本信息和僵尸波次配置
type ScenarioConfig struct {
	ID          string       `yaml:"id"`          // 场景ID，如 "pool-endless-1"
	Name        string       `yaml:"name"`        // 场景名称
	Description string       `yaml:"description"` // 场景描述（可选）
	Scene       string       `yaml:"scene"`       // 场景类型："day", "pool", "fog" 等，默认 "day"
	InitialSun  int          `yaml:"initialSun"`  // 初始阳光值，默认 50
	Waves       []WaveConfig `yaml:"waves"`       // 僵尸波次配置列表
}

// WaveConfig 单个僵尸波次配置
// 时间单位为厘秒（1 厘秒 = 1 帧）
type WaveConfig struct {
	SpawnDelay    int           `yaml:"spawnDelay"`    // 上一波出完后到本波首只僵尸的延迟
	SpawnInterval int           `yaml:"spawnInterval"` // 本波内相邻僵尸的出生间隔
	Zombies       []ZombieSpawn `yaml:"zombies"`       // 本波次要生成的僵尸列表
}

// ZombieSpawn 单个僵尸生成配置
type ZombieSpawn struct {
	Type  string `yaml:"type"`  // 僵尸类型："basic", "conehead", "gargantuar" 等
	Lane  int    `yaml:"lane"`  // 僵尸出现的行（1 基，泳池场景 1-6，其他 1-5）
	Count int    `yaml:"count"` // 生成数量，默认 1
}

// LoadScenarioConfig 从 YAML 文件加载场景配置
// 参数：
//
//	filepath - 场景配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*ScenarioConfig - 解析后的场景配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadScenarioConfig(filepath string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario config file %s: %w", filepath, err)
	}

	var scenario ScenarioConfig
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario config YAML from %s: %w", filepath, err)
	}

	applyScenarioDefaults(&scenario)

	if err := validateScenarioConfig(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario config in %s: %w", filepath, err)
	}

	return &scenario, nil
}

// applyScenarioDefaults 为缺失的可选字段设置默认值
func applyScenarioDefaults(scenario *ScenarioConfig) {
	if scenario.Scene == "" {
		scenario.Scene = SceneDay
	}

	if scenario.InitialSun == 0 {
		scenario.InitialSun = 50
	}

	for i := range scenario.Waves {
		for j := range scenario.Waves[i].Zombies {
			if scenario.Waves[i].Zombies[j].Count == 0 {
				scenario.Waves[i].Zombies[j].Count = 1
			}
		}
	}
}

// validateScenarioConfig 验证场景配置的完整性和合法性
func validateScenarioConfig(scenario *ScenarioConfig) error {
	if scenario.ID == "" {
		return fmt.Errorf("scenario ID is required")
	}

	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	cfg := SimConfig{Scene: scenario.Scene}
	switch scenario.Scene {
	case SceneDay, SceneNight, ScenePool, SceneFog, SceneRoof, SceneMoon:
	default:
		return fmt.Errorf("unknown scene %q", scenario.Scene)
	}

	if len(scenario.Waves) == 0 {
		return fmt.Errorf("at least one wave is required")
	}

	for i, wave := range scenario.Waves {
		if wave.SpawnDelay < 0 {
			return fmt.Errorf("wave %d: spawnDelay cannot be negative", i)
		}

		if wave.SpawnInterval < 0 {
			return fmt.Errorf("wave %d: spawnInterval cannot be negative", i)
		}

		if len(wave.Zombies) == 0 {
			return fmt.Errorf("wave %d: at least one zombie spawn is required", i)
		}

		for j, zombie := range wave.Zombies {
			if zombie.Type == "" {
				return fmt.Errorf("wave %d, zombie %d: type is required", i, j)
			}

			if types.ZombieTypeFromString(zombie.Type) == types.ZombieUnknown {
				return fmt.Errorf("wave %d, zombie %d: unknown zombie type %q", i, j, zombie.Type)
			}

			if zombie.Lane < 1 || zombie.Lane > cfg.Rows() {
				return fmt.Errorf("wave %d, zombie %d: lane must be between 1 and %d, got %d", i, j, cfg.Rows(), zombie.Lane)
			}

			if zombie.Count < 1 {
				return fmt.Errorf("wave %d, zombie %d: count must be at least 1, got %d", i, j, zombie.Count)
			}
		}
	}

	return nil
}

// TotalZombies 返回整个场景的僵尸总数
func (s *ScenarioConfig) TotalZombies() int {
	total := 0
	for _, wave := range s.Waves {
		for _, z := range wave.Zombies {
			total += z.Count
		}
	}
	return total
}
