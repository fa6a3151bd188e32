package planner

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// RolloutRow 一次动作推演的归档记录
// 模式无关，便于离线分析与回放校验
type RolloutRow struct {
	ScenarioID string `parquet:"scenario_id,dict"`
	Frame      int32  `parquet:"frame"` // 评估发起时的帧号

	ActionType string  `parquet:"action_type,dict"`
	Plant      string  `parquet:"plant,dict,optional"`
	Row        int32   `parquet:"row"`
	Col        int32   `parquet:"col"`
	TargetX    float32 `parquet:"target_x"`

	Horizon       int32   `parquet:"horizon"`
	Score         float32 `parquet:"score"`
	ZombiesKilled int32   `parquet:"zombies_killed"`
	ZombieHealth  int32   `parquet:"zombie_health"`
	PlantsAlive   int32   `parquet:"plants_alive"`
	Sun           int32   `parquet:"sun"`
	Victory       bool    `parquet:"victory"`
	Defeat        bool    `parquet:"defeat"`

	// Chosen 标记该动作是否被 Best 选中执行
	Chosen bool `parquet:"chosen"`
}

// RowsFromEvaluations 把一轮评估结果转为归档行
// chosen 为被选中动作的下标，-1 表示本轮没有可行动作
func RowsFromEvaluations(scenarioID string, frame, horizon int, evals []Evaluation, chosen int) []RolloutRow {
	rows := make([]RolloutRow, 0, len(evals))
	for i, ev := range evals {
		if ev.Err != nil {
			continue
		}
		row := RolloutRow{
			ScenarioID:    scenarioID,
			Frame:         int32(frame),
			ActionType:    ev.Action.Type.String(),
			Row:           int32(ev.Action.Row),
			Col:           int32(ev.Action.Col),
			TargetX:       float32(ev.Action.TargetX),
			Horizon:       int32(horizon),
			Score:         float32(ev.Score),
			ZombiesKilled: int32(ev.ZombiesKilled),
			ZombieHealth:  int32(ev.ZombieHealth),
			PlantsAlive:   int32(ev.PlantsAlive),
			Sun:           int32(ev.Sun),
			Victory:       ev.Victory,
			Defeat:        ev.Defeat,
			Chosen:        i == chosen,
		}
		if ev.Action.Type.String() == "place" {
			row.Plant = ev.Action.Plant.String()
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteRolloutParquet 把归档行写入单个 parquet 文件
// 先写临时文件再原子改名，读者不会看到半成品
func WriteRolloutParquet(outPath string, rows []RolloutRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "rollout_row_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// WriteRolloutBatchParquet 在 outDir 下按时间戳命名写一批归档行
// 返回最终文件路径
func WriteRolloutBatchParquet(outDir string, rows []RolloutRow) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := fmt.Sprintf("rollouts_%d.parquet", time.Now().UnixNano())
	outPath := filepath.Join(outDir, name)
	if err := WriteRolloutParquet(outPath, rows); err != nil {
		return "", err
	}
	return outPath, nil
}

// ReadRolloutParquet 读回归档文件，主要供离线工具与测试使用
func ReadRolloutParquet(path string) ([]RolloutRow, error) {
	rows, err := parquet.ReadFile[RolloutRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows, nil
}
