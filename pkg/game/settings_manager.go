package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// BotSettings 全局机器人设置
// 注意：这些设置是全局的，不绑定到特定场景
type BotSettings struct {
	// 规划设置
	PlannerHorizon int    `yaml:"plannerHorizon"` // 动作推演帧数
	ArchiveEnabled bool   `yaml:"archiveEnabled"` // 是否归档推演结果
	ArchiveDir     string `yaml:"archiveDir"`     // 推演归档目录

	// 查看器设置
	DefaultScenario string `yaml:"defaultScenario"` // 默认加载的场景文件
	ViewerSpeed     int    `yaml:"viewerSpeed"`     // 查看器每节拍推进的帧数
}

// DefaultSettings 返回默认设置
func DefaultSettings() *BotSettings {
	return &BotSettings{
		PlannerHorizon:  1000,
		ArchiveEnabled:  false,
		ArchiveDir:      "data/rollouts",
		DefaultScenario: "data/scenarios/day_basic.yaml",
		ViewerSpeed:     10,
	}
}

// SettingsManager 设置管理器
// 负责机器人设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *BotSettings   // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loadedSettings BotSettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *BotSettings {
	return sm.settings
}

// SetPlannerHorizon 设置推演帧数
//
// 帧数会被限制在 1 ~ 60000 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetPlannerHorizon(horizon int) {
	sm.settings.PlannerHorizon = clampInt(horizon, 1, 60000)
}

// SetViewerSpeed 设置查看器推进速度
//
// 速度会被限制在 1 ~ 100 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetViewerSpeed(speed int) {
	sm.settings.ViewerSpeed = clampInt(speed, 1, 100)
}

// SetArchiveEnabled 设置归档开关
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetArchiveEnabled(enabled bool) {
	sm.settings.ArchiveEnabled = enabled
}

// SetDefaultScenario 设置默认场景文件
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetDefaultScenario(path string) {
	sm.settings.DefaultScenario = path
}

// clampInt 将整数限制在 [min, max] 范围内
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
