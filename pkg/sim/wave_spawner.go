package sim

import (
	"fmt"

	"github.com/decker502/pvzbot/pkg/config"
	"github.com/decker502/pvzbot/pkg/types"
)

// SpawnerState 波次生成器的状态
type SpawnerState int

const (
	// SpawnerWaiting 等待本波首只僵尸的出生延迟
	SpawnerWaiting SpawnerState = iota
	// SpawnerSpawning 正在按间隔出生本波僵尸
	SpawnerSpawning
	// SpawnerFinished 所有波次已出完
	SpawnerFinished
)

// String 返回状态的字符串表示
func (s SpawnerState) String() string {
	switch s {
	case SpawnerWaiting:
		return "waiting"
	case SpawnerSpawning:
		return "spawning"
	case SpawnerFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// SpawnRequest 一次僵尸出生请求
type SpawnRequest struct {
	Type types.ZombieType
	Row  int
}

// Wave 一个已解析的僵尸波次
// 时间单位为帧（厘秒）
type Wave struct {
	SpawnDelay    int // 进入本波后到首只僵尸的延迟
	SpawnInterval int // 本波内相邻僵尸的间隔
	Zombies       []SpawnRequest
}

// WavesFromScenario 将场景配置解析为波次列表
// 配置中的 lane 为 1 基，转换为 0 基行号
func WavesFromScenario(scenario *config.ScenarioConfig) []Wave {
	waves := make([]Wave, 0, len(scenario.Waves))
	for _, wc := range scenario.Waves {
		wave := Wave{
			SpawnDelay:    wc.SpawnDelay,
			SpawnInterval: wc.SpawnInterval,
		}
		for _, zs := range wc.Zombies {
			zt := types.ZombieTypeFromString(zs.Type)
			for i := 0; i < zs.Count; i++ {
				wave.Zombies = append(wave.Zombies, SpawnRequest{Type: zt, Row: zs.Lane - 1})
			}
		}
		waves = append(waves, wave)
	}
	return waves
}

// WaveSpawner 波次生成器
// 状态机 waiting -> spawning -> (下一波 waiting | finished)
// 每次 Update 最多产出一只僵尸
type WaveSpawner struct {
	waves     []Wave
	state     SpawnerState
	waveIndex int // 当前波（0 基）
	nextIndex int // 当前波中下一个出生的僵尸下标
	countdown int // 距下一次出生的帧数
}

// NewWaveSpawner 创建波次生成器
// 波次为空时直接进入 finished 状态
func NewWaveSpawner(waves []Wave) *WaveSpawner {
	s := &WaveSpawner{waves: waves}
	s.Reset()
	return s
}

// Reset 重置到第一波开始前的状态
func (s *WaveSpawner) Reset() {
	s.waveIndex = 0
	s.nextIndex = 0
	if len(s.waves) == 0 {
		s.state = SpawnerFinished
		s.countdown = 0
		return
	}
	s.state = SpawnerWaiting
	s.countdown = s.waves[0].SpawnDelay
}

// State 返回当前状态
func (s *WaveSpawner) State() SpawnerState {
	return s.state
}

// CurrentWave 返回当前波下标（0 基）
// finished 状态下返回波次总数
func (s *WaveSpawner) CurrentWave() int {
	return s.waveIndex
}

// WaveCount 返回波次总数
func (s *WaveSpawner) WaveCount() int {
	return len(s.waves)
}

// Remaining 返回尚未出生的僵尸总数
func (s *WaveSpawner) Remaining() int {
	if s.state == SpawnerFinished {
		return 0
	}
	total := len(s.waves[s.waveIndex].Zombies) - s.nextIndex
	for i := s.waveIndex + 1; i < len(s.waves); i++ {
		total += len(s.waves[i].Zombies)
	}
	return total
}

// Update 推进一帧，最多产出一只僵尸
// 返回值 ok 为 false 表示本帧没有出生
func (s *WaveSpawner) Update() (SpawnRequest, bool) {
	if s.state == SpawnerFinished {
		return SpawnRequest{}, false
	}

	if s.countdown > 0 {
		s.countdown--
	}
	if s.countdown > 0 {
		return SpawnRequest{}, false
	}

	wave := s.waves[s.waveIndex]
	// 空波直接跳到下一波，等待其出生延迟
	if len(wave.Zombies) == 0 {
		s.advanceWave()
		return SpawnRequest{}, false
	}

	req := wave.Zombies[s.nextIndex]
	s.state = SpawnerSpawning
	s.nextIndex++

	if s.nextIndex < len(wave.Zombies) {
		s.countdown = wave.SpawnInterval
	} else {
		s.advanceWave()
	}

	return req, true
}

// advanceWave 进入下一波或收尾
func (s *WaveSpawner) advanceWave() {
	s.waveIndex++
	s.nextIndex = 0
	if s.waveIndex >= len(s.waves) {
		s.state = SpawnerFinished
		s.countdown = 0
		return
	}
	s.state = SpawnerWaiting
	s.countdown = s.waves[s.waveIndex].SpawnDelay
}

// SkipToWave 跳到指定波（0 基）开始前的状态
func (s *WaveSpawner) SkipToWave(wave int) error {
	if wave < 0 || wave >= len(s.waves) {
		return fmt.Errorf("wave %d out of range [0, %d)", wave, len(s.waves))
	}
	s.waveIndex = wave
	s.nextIndex = 0
	s.state = SpawnerWaiting
	s.countdown = s.waves[wave].SpawnDelay
	return nil
}

// SpawnerSnapshot 波次生成器的可序列化状态
type SpawnerSnapshot struct {
	State     SpawnerState
	WaveIndex int
	NextIndex int
	Countdown int
}

// Snapshot 导出当前状态
func (s *WaveSpawner) Snapshot() SpawnerSnapshot {
	return SpawnerSnapshot{
		State:     s.state,
		WaveIndex: s.waveIndex,
		NextIndex: s.nextIndex,
		Countdown: s.countdown,
	}
}

// Restore 恢复到快照状态
// 波次列表必须与快照生成时一致
func (s *WaveSpawner) Restore(snap SpawnerSnapshot) {
	s.state = snap.State
	s.waveIndex = snap.WaveIndex
	s.nextIndex = snap.NextIndex
	s.countdown = snap.Countdown
}

// Clone 深拷贝生成器（波次列表一并复制）
func (s *WaveSpawner) Clone() *WaveSpawner {
	waves := make([]Wave, len(s.waves))
	for i, w := range s.waves {
		nw := w
		nw.Zombies = make([]SpawnRequest, len(w.Zombies))
		copy(nw.Zombies, w.Zombies)
		waves[i] = nw
	}
	return &WaveSpawner{
		waves:     waves,
		state:     s.state,
		waveIndex: s.waveIndex,
		nextIndex: s.nextIndex,
		countdown: s.countdown,
	}
}
