// verify_sim - 战斗模拟核心验证程序
// 无头运行一个场景配置，检查波次生成、战斗推进与终局判定
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/pvzbot/pkg/config"
	"github.com/decker502/pvzbot/pkg/game"
	"github.com/decker502/pvzbot/pkg/planner"
	"github.com/decker502/pvzbot/pkg/sim"
	"github.com/decker502/pvzbot/pkg/types"
)

// ========== 验证报告结构 ==========

type ValidationReport struct {
	TestName string
	Passed   bool
	Message  string
}

var validationReports []ValidationReport

func addReport(testName string, passed bool, message string) {
	validationReports = append(validationReports, ValidationReport{
		TestName: testName,
		Passed:   passed,
		Message:  message,
	})
	status := "✗ FAIL"
	if passed {
		status = "✓ PASS"
	}
	log.Printf("%s | %-30s | %s", status, testName, message)
}

func main() {
	scenarioPath := flag.String("scenario", "data/scenarios/day_basic.yaml", "场景配置文件路径")
	statsDir := flag.String("stats", "", "属性表目录，留空使用内置默认值")
	maxFrames := flag.Int("max-frames", 60000, "最大推进帧数")
	archiveDir := flag.String("archive", "", "推演归档目录，留空不归档")
	flag.Parse()

	log.Printf("[VerifySim] 加载场景: %s", *scenarioPath)

	scenario, err := config.LoadScenarioConfig(*scenarioPath)
	if err != nil {
		log.Fatalf("[VerifySim] 场景加载失败: %v", err)
	}
	addReport("ScenarioLoad", true,
		fmt.Sprintf("%s: %d 波, 共 %d 只僵尸", scenario.Name, len(scenario.Waves), scenario.TotalZombies()))

	var stats *config.Stats
	if *statsDir != "" {
		stats, err = config.LoadStats(*statsDir)
		if err != nil {
			log.Fatalf("[VerifySim] 属性表加载失败: %v", err)
		}
		log.Printf("[VerifySim] 属性表目录: %s", *statsDir)
	}

	s, err := sim.NewSimulatorFromScenario(scenario, stats)
	if err != nil {
		log.Fatalf("[VerifySim] 模拟器创建失败: %v", err)
	}
	s.AddSun(10000)

	// 铺一套基础防线，让场景真正打起来
	defense := plantDefense(s)
	addReport("PlantDefense", defense > 0, fmt.Sprintf("种下 %d 株植物", defense))

	if *archiveDir != "" {
		runPlannerProbe(s, scenario.Name, *archiveDir)
	}

	lastWave := -1
	probed := false
	for s.Frame() < *maxFrames && !s.GameOver() {
		s.Tick()
		if w := s.Spawner().CurrentWave(); w != lastWave && w < s.Spawner().WaveCount() {
			lastWave = w
			log.Printf("[VerifySim] 帧 %d: 进入第 %d/%d 波, 场上僵尸 %d",
				s.Frame(), w+1, s.Spawner().WaveCount(), aliveZombies(s))
		}
		if !probed && aliveZombies(s) > 0 {
			probed = true
			reportTargeting(s)
		}
	}

	addReport("Terminal", s.GameOver(),
		fmt.Sprintf("帧 %d 结束, victory=%v", s.Frame(), s.Victory()))
	// 胜利时生成器必然已出完全部波次
	addReport("SpawnerDrained", !s.Victory() || s.Spawner().State() == sim.SpawnerFinished,
		fmt.Sprintf("生成器状态 %s, 剩余 %d", s.Spawner().State(), s.Spawner().Remaining()))
	addReport("KillCount", s.ZombiesKilled() <= scenario.TotalZombies(),
		fmt.Sprintf("击杀 %d / 总计 %d", s.ZombiesKilled(), scenario.TotalZombies()))

	// 快照往返后继续推进应与原始状态一致
	verifySnapshotReplay(s)

	printSummary()
}

// plantDefense 每行一株向日葵、一株豌豆射手和一面坚果墙
func plantDefense(s *sim.Simulator) int {
	placed := 0
	for row := 0; row < s.Config().Rows(); row++ {
		for _, p := range []struct {
			pt  types.PlantType
			col int
		}{
			{types.PlantSunflower, 0},
			{types.PlantPeashooter, 1},
			{types.PlantWallnut, 7},
		} {
			if _, err := s.PlacePlant(p.pt, row, p.col); err != nil {
				log.Printf("[VerifySim] 种植失败 %s (%d,%d): %v", p.pt, row, p.col, err)
				continue
			}
			placed++
		}
	}
	return placed
}

// runPlannerProbe 在开局评估一组候选动作并归档推演结果
func runPlannerProbe(s *sim.Simulator, scenarioID, outDir string) {
	actions := []game.Action{
		game.Wait(),
		game.Place(types.PlantCherryBomb, 2, 6),
		game.Place(types.PlantMelonPult, 2, 2),
	}
	if act, _, ok := planner.ProposeCob(s); ok {
		actions = append(actions, act)
	}
	evals := planner.EvaluateActions(s, actions, 1000)
	chosen := planner.Best(evals)

	rows := planner.RowsFromEvaluations(scenarioID, s.Frame(), 1000, evals, chosen)
	path, err := planner.WriteRolloutBatchParquet(outDir, rows)
	if err != nil {
		addReport("RolloutArchive", false, err.Error())
		return
	}
	addReport("RolloutArchive", true, fmt.Sprintf("%d 行 -> %s", len(rows), path))
}

// reportTargeting 用场上首批僵尸检验炮落点推荐与巨人威胁评估
func reportTargeting(s *sim.Simulator) {
	act, hits, ok := planner.ProposeCob(s)
	addReport("CobProposal", ok,
		fmt.Sprintf("帧 %d: 落点 (%d, %.0f), 预测命中 %d, 提前量 %.0f 帧",
			s.Frame(), act.Row, act.TargetX, hits, planner.CobLead(s, act.Row, act.TargetX)))

	for _, th := range planner.GargThreats(s, s.Config().PlantX(1)) {
		log.Printf("[VerifySim] 巨人威胁: 行 %d X=%.0f, 窗口 %.0f 帧, 需 %d 炮",
			th.Row, th.X, th.Window, th.Cobs)
	}
}

// verifySnapshotReplay 对终局前的快照做恢复重放，校验确定性
func verifySnapshotReplay(s *sim.Simulator) {
	snap := s.Snapshot()

	replay := s.Clone()
	replay.Restore(snap)
	replay.TickN(100)

	s.TickN(100)

	same := s.Frame() == replay.Frame() &&
		s.ZombiesKilled() == replay.ZombiesKilled() &&
		aliveZombies(s) == aliveZombies(replay)
	addReport("SnapshotReplay", same,
		fmt.Sprintf("帧 %d vs %d, 击杀 %d vs %d",
			s.Frame(), replay.Frame(), s.ZombiesKilled(), replay.ZombiesKilled()))
}

func aliveZombies(s *sim.Simulator) int {
	n := 0
	for _, z := range s.Zombies() {
		if z.Alive {
			n++
		}
	}
	return n
}

func printSummary() {
	passed := 0
	for _, r := range validationReports {
		if r.Passed {
			passed++
		}
	}
	log.Printf("[VerifySim] 验证完成: %d/%d 通过", passed, len(validationReports))
	if passed != len(validationReports) {
		os.Exit(1)
	}
}
