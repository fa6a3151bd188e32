// Package planner 基于模拟器克隆的动作评估器
// 对每个候选动作克隆一份模拟器并行推演，按终局状态打分
package planner

import (
	"sync"

	"github.com/decker502/pvzbot/pkg/game"
	"github.com/decker502/pvzbot/pkg/sim"
)

// 打分权重
const (
	killWeight    = 100.0 // 每击杀一只僵尸的得分
	threatWeight  = 0.01  // 场上僵尸每点剩余血量的扣分
	plantWeight   = 10.0  // 每株存活植物的得分
	sunWeight     = 0.02  // 每点阳光的得分
	victoryBonus  = 10000.0
	defeatPenalty = -10000.0
)

// Evaluation 单个候选动作的推演结果
type Evaluation struct {
	Action        game.Action
	Score         float64
	Frames        int // 推演结束时的帧号
	ZombiesKilled int
	ZombieHealth  int // 场上僵尸剩余血量总和
	PlantsAlive   int
	Sun           int
	Victory       bool
	Defeat        bool
	Err           error // 动作执行失败时的原因，失败的动作不参与选优
}

// EvaluateActions 并行评估候选动作
// 每个动作在 base 的独立克隆上执行并推进 horizon 帧，base 本身不被修改
// 返回结果与 actions 顺序一一对应，结果完全确定
func EvaluateActions(base *sim.Simulator, actions []game.Action, horizon int) []Evaluation {
	results := make([]Evaluation, len(actions))

	var wg sync.WaitGroup
	for i, action := range actions {
		wg.Add(1)
		go func(idx int, a game.Action) {
			defer wg.Done()
			results[idx] = evaluateOne(base.Clone(), a, horizon)
		}(i, action)
	}
	wg.Wait()

	return results
}

// evaluateOne 在克隆上执行动作并推进，返回打分结果
func evaluateOne(s *sim.Simulator, a game.Action, horizon int) Evaluation {
	ev := Evaluation{Action: a}

	if err := a.Apply(s); err != nil {
		ev.Err = err
		return ev
	}

	s.TickN(horizon)

	ev.Frames = s.Frame()
	ev.ZombiesKilled = s.ZombiesKilled()
	ev.Sun = s.Sun()
	ev.Victory = s.Victory()
	ev.Defeat = s.GameOver() && !s.Victory()

	for _, z := range s.Zombies() {
		if z.Alive {
			ev.ZombieHealth += z.TotalHealth()
		}
	}
	for _, p := range s.Plants() {
		if p.Alive {
			ev.PlantsAlive++
		}
	}

	ev.Score = score(ev)
	return ev
}

// score 由推演终局状态计算得分
func score(ev Evaluation) float64 {
	s := killWeight*float64(ev.ZombiesKilled) -
		threatWeight*float64(ev.ZombieHealth) +
		plantWeight*float64(ev.PlantsAlive) +
		sunWeight*float64(ev.Sun)
	if ev.Victory {
		s += victoryBonus
	}
	if ev.Defeat {
		s += defeatPenalty
	}
	return s
}

// Best 返回得分最高的可行动作下标
// 执行失败的动作被跳过；同分取下标最小者；没有可行动作时返回 -1
func Best(evals []Evaluation) int {
	best := -1
	for i, ev := range evals {
		if ev.Err != nil {
			continue
		}
		if best < 0 || ev.Score > evals[best].Score {
			best = i
		}
	}
	return best
}
