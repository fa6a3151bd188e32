package judge

import (
	"math"
	"testing"
)

// TestLeadTime 验证发射提前量计算
func TestLeadTime(t *testing.T) {
	// 僵尸在 800，目标点 400，速度 0.23：到达需要 1739.13 帧
	// 炮弹飞行 373 帧，提前量约 1366.13
	got := LeadTime(800, 0.23, 400, CobFlyTime)
	want := (800-400)/0.23 - 373
	if math.Abs(got-want) > 0.01 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

// TestLeadTimeClamped 验证已经迟了时提前量为 0
func TestLeadTimeClamped(t *testing.T) {
	// 僵尸已经越过目标点
	if got := LeadTime(300, 0.23, 400, CobFlyTime); got != 0 {
		t.Errorf("Expected 0 when target already passed, got %f", got)
	}
	// 到达时间小于飞行时间
	if got := LeadTime(410, 0.23, 400, CobFlyTime); got != 0 {
		t.Errorf("Expected 0 when arrival sooner than fly time, got %f", got)
	}
}

// TestCobFlyTimeFor 验证屋顶场景按列取飞行时间
func TestCobFlyTimeFor(t *testing.T) {
	if got := CobFlyTimeFor(false, 3); got != 373 {
		t.Errorf("Expected 373 on flat scene, got %d", got)
	}
	if got := CobFlyTimeFor(true, 0); got != 359 {
		t.Errorf("Expected 359 for roof column 0, got %d", got)
	}
	if got := CobFlyTimeFor(true, 6); got != 373 {
		t.Errorf("Expected 373 for roof column 6, got %d", got)
	}
	// 越界列被夹紧
	if got := CobFlyTimeFor(true, 99); got != 373 {
		t.Errorf("Expected clamp to last column, got %d", got)
	}
}

// TestPredictX 验证位置预测考虑状态效果
func TestPredictX(t *testing.T) {
	// 无状态效果：直线匀速
	got := PredictX(800, 0.23, 100, 0, 0, 0)
	if math.Abs(got-(800-23)) > 0.01 {
		t.Errorf("Expected 777, got %f", got)
	}
	// 全程冰冻：原地不动
	got = PredictX(800, 0.23, 100, 200, 0, 0)
	if got != 800 {
		t.Errorf("Expected 800 while frozen, got %f", got)
	}
}

// TestBestBlastTarget 验证范围武器目标选择
func TestBestBlastTarget(t *testing.T) {
	targets := []TargetInfo{
		{Row: 1, X: 600},
		{Row: 2, X: 620},
		{Row: 3, X: 700},
		{Row: 5, X: 300},
	}
	x, row, count := BestBlastTarget(targets, CobExplodeRadius)
	// 只有以 (2, 620) 为爆心能同时覆盖相邻两行，命中前三个目标
	if count != 3 {
		t.Fatalf("Expected 3 hits, got %d", count)
	}
	if row != 2 || x != 620 {
		t.Errorf("Expected center (2, 620), got (%d, %f)", row, x)
	}
}

// TestBestBlastTargetFirstMaximal 验证并列最优时取迭代序中第一个
func TestBestBlastTargetFirstMaximal(t *testing.T) {
	targets := []TargetInfo{
		{Row: 1, X: 100},
		{Row: 4, X: 500},
	}
	x, row, count := BestBlastTarget(targets, 50)
	if count != 1 {
		t.Fatalf("Expected 1 hit, got %d", count)
	}
	if row != 1 || x != 100 {
		t.Errorf("Expected first candidate to win tie, got (%d, %f)", row, x)
	}
}

// TestBestBlastTargetEmpty 验证空目标返回零命中
func TestBestBlastTargetEmpty(t *testing.T) {
	if _, _, count := BestBlastTarget(nil, CobExplodeRadius); count != 0 {
		t.Errorf("Expected 0 hits for no targets, got %d", count)
	}
}
