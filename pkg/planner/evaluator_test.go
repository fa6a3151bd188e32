package planner

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/decker502/pvzbot/pkg/config"
	"github.com/decker502/pvzbot/pkg/game"
	"github.com/decker502/pvzbot/pkg/sim"
	"github.com/decker502/pvzbot/pkg/types"
)

// newTestSimulator 创建测试用模拟器，给足阳光
func newTestSimulator(t *testing.T) *sim.Simulator {
	t.Helper()
	cfg := config.DefaultSimConfig()
	cfg.InitialSun = 10000
	s, err := sim.NewSimulator(cfg, nil)
	if err != nil {
		t.Fatalf("NewSimulator() failed: %v", err)
	}
	return s
}

// TestEvaluateActionsPrefersKill 验证炸掉僵尸的动作得分高于等待
func TestEvaluateActionsPrefersKill(t *testing.T) {
	s := newTestSimulator(t)
	z, err := s.SpawnZombie(types.ZombieConehead, 2)
	if err != nil {
		t.Fatalf("SpawnZombie() failed: %v", err)
	}
	z.X = 400

	actions := []game.Action{
		game.Wait(),
		game.Place(types.PlantCherryBomb, 2, 4),
	}

	evals := EvaluateActions(s, actions, 200)
	if len(evals) != 2 {
		t.Fatalf("Expected 2 evaluations, got %d", len(evals))
	}

	if evals[0].ZombiesKilled != 0 {
		t.Errorf("Wait should not kill, got %d kills", evals[0].ZombiesKilled)
	}
	if evals[1].ZombiesKilled != 1 {
		t.Errorf("Cherry bomb should kill the conehead, got %d kills", evals[1].ZombiesKilled)
	}
	if evals[1].Score <= evals[0].Score {
		t.Errorf("Kill should outscore wait: %.2f vs %.2f", evals[1].Score, evals[0].Score)
	}

	if best := Best(evals); best != 1 {
		t.Errorf("Expected best action 1, got %d", best)
	}
}

// TestEvaluateActionsLeavesBaseUntouched 验证评估不修改原模拟器
func TestEvaluateActionsLeavesBaseUntouched(t *testing.T) {
	s := newTestSimulator(t)
	z, err := s.SpawnZombie(types.ZombieBasic, 0)
	if err != nil {
		t.Fatalf("SpawnZombie() failed: %v", err)
	}
	z.X = 300

	before := s.Snapshot()
	EvaluateActions(s, []game.Action{
		game.Wait(),
		game.Place(types.PlantPeashooter, 0, 1),
	}, 150)
	after := s.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Error("Base simulator changed during evaluation")
	}
}

// TestEvaluateActionsDeterministic 验证并行评估结果完全可复现
func TestEvaluateActionsDeterministic(t *testing.T) {
	s := newTestSimulator(t)
	for row := 0; row < 3; row++ {
		z, err := s.SpawnZombie(types.ZombieConehead, row)
		if err != nil {
			t.Fatalf("SpawnZombie() failed: %v", err)
		}
		z.X = 500
	}

	actions := []game.Action{
		game.Wait(),
		game.Place(types.PlantPeashooter, 0, 2),
		game.Place(types.PlantCherryBomb, 1, 5),
		game.Place(types.PlantMelonPult, 2, 1),
	}

	first := EvaluateActions(s, actions, 300)
	second := EvaluateActions(s, actions, 300)
	if !reflect.DeepEqual(first, second) {
		t.Error("Repeated evaluation should give identical results")
	}
}

// TestEvaluateActionsInvalidAction 验证失败动作记录错误且不参与选优
func TestEvaluateActionsInvalidAction(t *testing.T) {
	s := newTestSimulator(t)

	evals := EvaluateActions(s, []game.Action{
		game.Place(types.PlantPeashooter, 99, 0),
		game.Wait(),
	}, 50)

	if evals[0].Err == nil {
		t.Error("Invalid position should record an error")
	}
	if evals[1].Err != nil {
		t.Errorf("Wait should succeed, got %v", evals[1].Err)
	}

	if best := Best(evals); best != 1 {
		t.Errorf("Best should skip failed actions, got %d", best)
	}
}

// TestBestTieBreak 验证同分取下标最小的动作
func TestBestTieBreak(t *testing.T) {
	evals := []Evaluation{
		{Score: 5.0},
		{Score: 5.0},
		{Score: 3.0},
	}
	if best := Best(evals); best != 0 {
		t.Errorf("Expected first maximal index 0, got %d", best)
	}

	if best := Best(nil); best != -1 {
		t.Errorf("Expected -1 for empty evaluations, got %d", best)
	}
}

// TestRolloutArchiveRoundTrip 验证归档写入后可读回
func TestRolloutArchiveRoundTrip(t *testing.T) {
	s := newTestSimulator(t)
	z, err := s.SpawnZombie(types.ZombieConehead, 2)
	if err != nil {
		t.Fatalf("SpawnZombie() failed: %v", err)
	}
	z.X = 400

	actions := []game.Action{
		game.Wait(),
		game.Place(types.PlantCherryBomb, 2, 4),
		game.Place(types.PlantPeashooter, 99, 0), // 非法动作，应被归档跳过
	}
	evals := EvaluateActions(s, actions, 200)
	chosen := Best(evals)

	rows := RowsFromEvaluations("test_scenario", s.Frame(), 200, evals, chosen)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 archive rows, got %d", len(rows))
	}

	path := filepath.Join(t.TempDir(), "rollouts.parquet")
	if err := WriteRolloutParquet(path, rows); err != nil {
		t.Fatalf("WriteRolloutParquet() failed: %v", err)
	}

	got, err := ReadRolloutParquet(path)
	if err != nil {
		t.Fatalf("ReadRolloutParquet() failed: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("Expected %d rows, got %d", len(rows), len(got))
	}

	if got[0].ActionType != "wait" || got[0].Chosen {
		t.Errorf("Row 0 mismatch: type=%s chosen=%v", got[0].ActionType, got[0].Chosen)
	}
	if got[1].ActionType != "place" || got[1].Plant != "cherry_bomb" {
		t.Errorf("Row 1 mismatch: type=%s plant=%s", got[1].ActionType, got[1].Plant)
	}
	if !got[1].Chosen {
		t.Error("Chosen action should be flagged in the archive")
	}
	if got[1].ZombiesKilled != 1 {
		t.Errorf("Expected 1 kill in archived row, got %d", got[1].ZombiesKilled)
	}
}

// TestWriteRolloutBatchParquet 验证批量归档生成带时间戳的文件
func TestWriteRolloutBatchParquet(t *testing.T) {
	rows := []RolloutRow{
		{ScenarioID: "batch", ActionType: "wait", Horizon: 100},
	}

	dir := t.TempDir()
	path, err := WriteRolloutBatchParquet(dir, rows)
	if err != nil {
		t.Fatalf("WriteRolloutBatchParquet() failed: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("Expected file under %s, got %s", dir, path)
	}

	got, err := ReadRolloutParquet(path)
	if err != nil {
		t.Fatalf("ReadRolloutParquet() failed: %v", err)
	}
	if len(got) != 1 || got[0].ScenarioID != "batch" {
		t.Errorf("Unexpected batch contents: %+v", got)
	}
}
