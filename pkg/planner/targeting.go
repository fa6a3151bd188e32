package planner

import (
	"github.com/decker502/pvzbot/pkg/config"
	"github.com/decker502/pvzbot/pkg/game"
	"github.com/decker502/pvzbot/pkg/judge"
	"github.com/decker502/pvzbot/pkg/sim"
	"github.com/decker502/pvzbot/pkg/types"
)

// GargThreat 场上单个巨人的威胁评估
type GargThreat struct {
	Row    int
	X      float64
	Window float64 // 巨人走入防线锤击区间的剩余帧数
	Cobs   int     // 击杀该巨人所需的炮数
}

// cobFlyTime 返回当前场景下炮弹的飞行时间
// 屋顶场景按第一门炮所在列取值
func cobFlyTime(s *sim.Simulator) int {
	roof := s.Config().Scene == config.SceneRoof
	col := 0
	for _, p := range s.Plants() {
		if p.Alive && p.Type == types.PlantCobCannon {
			col = p.Col
			break
		}
	}
	return judge.CobFlyTimeFor(roof, col)
}

// ProposeCob 根据当前局面推荐一发玉米加农炮的落点
// 以每个僵尸在炮弹落地时刻的预测位置为候选爆心，选命中数最多者
// 返回 ok 为 false 表示场上没有可打的目标
func ProposeCob(s *sim.Simulator) (act game.Action, hits int, ok bool) {
	flyTime := cobFlyTime(s)

	targets := make([]judge.TargetInfo, 0, len(s.Zombies()))
	for _, z := range s.Zombies() {
		if !z.Alive {
			continue
		}
		targets = append(targets, judge.TargetInfo{
			Row: z.Row,
			X: judge.PredictX(z.X, z.BaseSpeed, flyTime,
				z.FreezeCountdown, z.SlowCountdown, z.ButterCountdown),
		})
	}

	x, row, hits := judge.BestBlastTarget(targets, judge.CobExplodeRadius)
	if hits == 0 {
		return game.Action{}, 0, false
	}
	return game.FireCob(x, row), hits, true
}

// CobLead 计算向 (row, targetX) 开炮前还应等待的帧数
// 取爆炸波及行内最先到达落点的僵尸的提前量，没有目标时返回 0
func CobLead(s *sim.Simulator, row int, targetX float64) float64 {
	flyTime := cobFlyTime(s)

	lead := 0.0
	found := false
	for _, z := range s.Zombies() {
		if !z.Alive {
			continue
		}
		if d := z.Row - row; d < -1 || d > 1 {
			continue
		}
		l := judge.LeadTime(z.X, z.BaseSpeed, targetX, flyTime)
		if !found || l < lead {
			lead = l
			found = true
		}
	}
	return lead
}

// GargThreats 评估场上全部巨人对指定防线 X 的威胁
// 结果按僵尸迭代序排列
func GargThreats(s *sim.Simulator, defenseX float64) []GargThreat {
	var threats []GargThreat
	for _, z := range s.Zombies() {
		if !z.Alive || !z.Type.IsGargantuar() {
			continue
		}
		threats = append(threats, GargThreat{
			Row: z.Row,
			X:   z.X,
			Window: judge.HammerThreatWindow(z.X, defenseX, z.BaseSpeed,
				z.FreezeCountdown, z.SlowCountdown, z.ButterCountdown),
			Cobs: judge.CobsToKill(z.BodyHealth),
		})
	}
	return threats
}
