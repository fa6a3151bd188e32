package game

import (
	"testing"
)

// TestSettingsManagerDefaults 验证无存档时使用默认设置
func TestSettingsManagerDefaults(t *testing.T) {
	manager := createTestGdataManager(t, "settings_defaults")
	if manager == nil {
		t.Skip("gdata manager unavailable")
	}

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() failed: %v", err)
	}

	settings := sm.GetSettings()
	if settings.PlannerHorizon != 1000 {
		t.Errorf("Expected default horizon 1000, got %d", settings.PlannerHorizon)
	}
	if settings.DefaultScenario != "data/scenarios/day_basic.yaml" {
		t.Errorf("Unexpected default scenario: %s", settings.DefaultScenario)
	}
	if settings.ArchiveEnabled {
		t.Error("Archive should be disabled by default")
	}
}

// TestSettingsManagerSaveLoad 验证设置保存后可重新加载
func TestSettingsManagerSaveLoad(t *testing.T) {
	manager := createTestGdataManager(t, "settings_save_load")
	if manager == nil {
		t.Skip("gdata manager unavailable")
	}

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() failed: %v", err)
	}

	sm.SetPlannerHorizon(2000)
	sm.SetViewerSpeed(25)
	sm.SetArchiveEnabled(true)
	sm.SetDefaultScenario("data/scenarios/pool_garg.yaml")
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// 用同一个存储重新创建管理器，应读回保存的值
	sm2, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() failed: %v", err)
	}
	settings := sm2.GetSettings()
	if settings.PlannerHorizon != 2000 {
		t.Errorf("Expected horizon 2000, got %d", settings.PlannerHorizon)
	}
	if settings.ViewerSpeed != 25 {
		t.Errorf("Expected viewer speed 25, got %d", settings.ViewerSpeed)
	}
	if !settings.ArchiveEnabled {
		t.Error("Archive flag should persist")
	}
	if settings.DefaultScenario != "data/scenarios/pool_garg.yaml" {
		t.Errorf("Unexpected scenario: %s", settings.DefaultScenario)
	}
}

// TestSettingsManagerClamping 验证设置值的范围限制
func TestSettingsManagerClamping(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager() failed: %v", err)
	}

	sm.SetPlannerHorizon(-5)
	if got := sm.GetSettings().PlannerHorizon; got != 1 {
		t.Errorf("Expected horizon clamped to 1, got %d", got)
	}

	sm.SetPlannerHorizon(100000)
	if got := sm.GetSettings().PlannerHorizon; got != 60000 {
		t.Errorf("Expected horizon clamped to 60000, got %d", got)
	}

	sm.SetViewerSpeed(500)
	if got := sm.GetSettings().ViewerSpeed; got != 100 {
		t.Errorf("Expected speed clamped to 100, got %d", got)
	}
}

// TestSettingsManagerDegraded 验证降级模式下保存不报错
func TestSettingsManagerDegraded(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager() failed: %v", err)
	}

	sm.SetArchiveEnabled(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail, got %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should not fail, got %v", err)
	}
	// 降级模式下 Load 回落到默认值
	if sm.GetSettings().ArchiveEnabled {
		t.Error("Degraded Load should reset to defaults")
	}
}
