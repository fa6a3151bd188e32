package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/pvzbot/pkg/types"
)

// TestDefaultZombieStats 验证内置僵尸属性表的关键数值
func TestDefaultZombieStats(t *testing.T) {
	stats := DefaultZombieStats()

	cases := []struct {
		zt     types.ZombieType
		body   int
		armor  int
		shield int
	}{
		{types.ZombieBasic, 200, 0, 0},
		{types.ZombieConehead, 200, 370, 0},
		{types.ZombieBuckethead, 200, 1100, 0},
		{types.ZombieScreendoor, 200, 0, 1100},
		{types.ZombieGargantuar, 3000, 0, 0},
		{types.ZombieGargantuarRedeye, 6000, 0, 0},
	}

	for _, c := range cases {
		s, ok := stats.Get(c.zt)
		if !ok {
			t.Fatalf("Missing stats for %v", c.zt)
		}
		if s.BodyHealth != c.body {
			t.Errorf("%v: Expected bodyHealth %d, got %d", c.zt, c.body, s.BodyHealth)
		}
		if s.ArmorHealth != c.armor {
			t.Errorf("%v: Expected armorHealth %d, got %d", c.zt, c.armor, s.ArmorHealth)
		}
		if s.ShieldHealth != c.shield {
			t.Errorf("%v: Expected shieldHealth %d, got %d", c.zt, c.shield, s.ShieldHealth)
		}
	}
}

// TestLoadZombieStatsOverlay 验证覆盖文件只替换出现的条目
func TestLoadZombieStatsOverlay(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "zombies.yaml")
	overlayYAML := `zombies:
  basic:
    bodyHealth: 270
    speed: 0.25
`
	if err := os.WriteFile(testFile, []byte(overlayYAML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	stats, err := LoadZombieStats(testFile)
	if err != nil {
		t.Fatalf("LoadZombieStats() failed: %v", err)
	}

	basic, _ := stats.Get(types.ZombieBasic)
	if basic.BodyHealth != 270 {
		t.Errorf("Expected overridden bodyHealth 270, got %d", basic.BodyHealth)
	}

	// 未覆盖的类型保留默认值
	garg, ok := stats.Get(types.ZombieGargantuar)
	if !ok || garg.BodyHealth != 3000 {
		t.Errorf("Expected default gargantuar stats to survive overlay, got %+v", garg)
	}
}

// TestLoadZombieStatsInvalid 验证非法数值被拒绝
func TestLoadZombieStatsInvalid(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "zombies.yaml")
	invalidYAML := `zombies:
  basic:
    bodyHealth: -5
    speed: 0.23
`
	if err := os.WriteFile(testFile, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := LoadZombieStats(testFile); err == nil {
		t.Error("Expected error for negative bodyHealth, got nil")
	}
}

// TestSimConfigRows 验证场景行数规则
func TestSimConfigRows(t *testing.T) {
	cases := []struct {
		scene string
		rows  int
	}{
		{SceneDay, 5},
		{SceneNight, 5},
		{ScenePool, 6},
		{SceneFog, 6},
		{SceneRoof, 5},
	}
	for _, c := range cases {
		cfg := SimConfig{Scene: c.scene}
		if got := cfg.Rows(); got != c.rows {
			t.Errorf("Scene %s: Expected %d rows, got %d", c.scene, c.rows, got)
		}
	}
}
