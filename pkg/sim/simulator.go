package sim

import (
	"fmt"

	"github.com/decker502/pvzbot/pkg/config"
	"github.com/decker502/pvzbot/pkg/judge"
	"github.com/decker502/pvzbot/pkg/types"
)

// CobShot 一发已发射、尚未落地的炮弹
type CobShot struct {
	ImpactFrame int
	Row         int
	X           float64
}

// Simulator 帧精确的战斗模拟器
// 纯同步、单协程使用。并行评估时先 Clone 再在各自的副本上推进
type Simulator struct {
	cfg   config.SimConfig
	stats *config.Stats

	frame int
	sun   int

	plants      []*Plant
	zombies     []*Zombie
	projectiles []*Projectile
	grid        *Grid
	spawner     *WaveSpawner
	pendingCobs []CobShot

	nextPlantID      PlantID
	nextZombieID     ZombieID
	nextProjectileID ProjectileID

	gameOver      bool
	victory       bool
	zombiesKilled int
}

// NewSimulator 创建模拟器
// stats 为 nil 时使用内置属性表
func NewSimulator(cfg config.SimConfig, stats *config.Stats) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sim config: %w", err)
	}
	if stats == nil {
		stats = config.DefaultStats()
	}
	return &Simulator{
		cfg:   cfg,
		stats: stats,
		sun:   cfg.InitialSun,
		grid:  NewGrid(cfg.Rows(), config.GridCols),
	}, nil
}

// NewSimulatorFromScenario 从场景配置创建模拟器并挂载波次生成器
func NewSimulatorFromScenario(scenario *config.ScenarioConfig, stats *config.Stats) (*Simulator, error) {
	cfg := config.DefaultSimConfig()
	cfg.Scene = scenario.Scene
	cfg.InitialSun = scenario.InitialSun

	s, err := NewSimulator(cfg, stats)
	if err != nil {
		return nil, err
	}
	s.spawner = NewWaveSpawner(WavesFromScenario(scenario))
	return s, nil
}

// Config 返回模拟器配置
func (s *Simulator) Config() config.SimConfig {
	return s.cfg
}

// Frame 返回当前帧号
func (s *Simulator) Frame() int {
	return s.frame
}

// Sun 返回当前阳光
func (s *Simulator) Sun() int {
	return s.sun
}

// AddSun 增加阳光（自然掉落、关卡奖励）
func (s *Simulator) AddSun(amount int) {
	if amount > 0 {
		s.sun += amount
	}
}

// GameOver 返回对局是否结束
func (s *Simulator) GameOver() bool {
	return s.gameOver
}

// Victory 返回是否胜利（仅在 GameOver 为 true 时有意义）
func (s *Simulator) Victory() bool {
	return s.victory
}

// ZombiesKilled 返回累计击杀数
func (s *Simulator) ZombiesKilled() int {
	return s.zombiesKilled
}

// Spawner 返回挂载的波次生成器，可能为 nil
func (s *Simulator) Spawner() *WaveSpawner {
	return s.spawner
}

// SetSpawner 挂载波次生成器
func (s *Simulator) SetSpawner(spawner *WaveSpawner) {
	s.spawner = spawner
}

// Plants 返回存活植物列表（共享底层数组，调用方不得修改）
func (s *Simulator) Plants() []*Plant {
	return s.plants
}

// Zombies 返回存活僵尸列表（共享底层数组，调用方不得修改）
func (s *Simulator) Zombies() []*Zombie {
	return s.zombies
}

// Projectiles 返回存活弹体列表
func (s *Simulator) Projectiles() []*Projectile {
	return s.projectiles
}

// PlantAt 返回指定格底座层的植物
func (s *Simulator) PlantAt(row, col int) (*Plant, bool) {
	id, ok := s.grid.BaseAt(row, col)
	if !ok {
		return nil, false
	}
	return s.plantByID(id)
}

// OverlayAt 返回指定格覆盖层的植物（南瓜头）
func (s *Simulator) OverlayAt(row, col int) (*Plant, bool) {
	id, ok := s.grid.OverlayAt(row, col)
	if !ok {
		return nil, false
	}
	return s.plantByID(id)
}

func (s *Simulator) plantByID(id PlantID) (*Plant, bool) {
	for _, p := range s.plants {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// PlacePlant 种植植物
// 校验顺序：位置合法 -> 格子空闲 -> 阳光足够；任一失败则状态完全不变
func (s *Simulator) PlacePlant(pt types.PlantType, row, col int) (*Plant, error) {
	if s.gameOver {
		return nil, ErrGameOver
	}

	if !s.cfg.InBounds(row, col) {
		return nil, fmt.Errorf("%w: row %d col %d", ErrInvalidPosition, row, col)
	}

	if s.grid.Occupied(row, col, pt.IsOverlay()) {
		return nil, fmt.Errorf("%w: row %d col %d", ErrCellOccupied, row, col)
	}

	stats, ok := s.stats.Plants.Get(pt)
	if !ok {
		return nil, fmt.Errorf("%w: plant %s", ErrUnknownType, pt)
	}

	if s.sun < stats.Cost {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientSun, stats.Cost, s.sun)
	}

	s.sun -= stats.Cost
	s.nextPlantID++
	p := &Plant{
		ID:     s.nextPlantID,
		Type:   pt,
		Row:    row,
		Col:    col,
		Health: stats.Health,
		Alive:  true,
	}

	switch {
	case pt.IsInstantExplosive():
		if pt == types.PlantIceShroom {
			p.FuseCountdown = judge.IceEffectDelay
		} else {
			p.FuseCountdown = judge.InstantDelay
		}
	case pt == types.PlantPotatoMine:
		p.ArmCountdown = judge.PotatoArmTime
	case pt == types.PlantCobCannon:
		p.CobCountdown = judge.CobRecoverTime
	default:
		p.AttackCountdown = stats.AttackInterval
	}

	s.plants = append(s.plants, p)
	if pt.IsOverlay() {
		s.grid.PlaceOverlay(row, col, p.ID)
	} else {
		s.grid.PlaceBase(row, col, p.ID)
	}
	return p, nil
}

// RemovePlant 铲除指定格的植物
// 覆盖层优先：格子上有南瓜头时先铲南瓜头
func (s *Simulator) RemovePlant(row, col int) error {
	if s.gameOver {
		return ErrGameOver
	}
	if !s.cfg.InBounds(row, col) {
		return fmt.Errorf("%w: row %d col %d", ErrInvalidPosition, row, col)
	}

	if p, ok := s.OverlayAt(row, col); ok {
		p.Alive = false
		s.grid.Remove(row, col, p.ID)
		return nil
	}
	if p, ok := s.PlantAt(row, col); ok {
		p.Alive = false
		s.grid.Remove(row, col, p.ID)
		return nil
	}
	return fmt.Errorf("%w: no plant at row %d col %d", ErrNoSuchEntity, row, col)
}

// SpawnZombie 在指定行的出生点放入一只僵尸
func (s *Simulator) SpawnZombie(zt types.ZombieType, row int) (*Zombie, error) {
	if row < 0 || row >= s.cfg.Rows() {
		return nil, fmt.Errorf("%w: row %d", ErrInvalidPosition, row)
	}

	stats, ok := s.stats.Zombies.Get(zt)
	if !ok {
		return nil, fmt.Errorf("%w: zombie %s", ErrUnknownType, zt)
	}

	s.nextZombieID++
	z := &Zombie{
		ID:            s.nextZombieID,
		Type:          zt,
		Row:           row,
		X:             float64(s.cfg.SpawnX),
		BodyHealth:    stats.BodyHealth,
		MaxBodyHealth: stats.BodyHealth,
		ArmorHealth:   stats.ArmorHealth,
		ShieldHealth:  stats.ShieldHealth,
		BaseSpeed:     stats.Speed,
		BiteCountdown: BiteInterval,
		Alive:         true,
	}
	s.zombies = append(s.zombies, z)
	return z, nil
}

// FireCob 发射一门就绪的玉米加农炮
// 炮弹经过固定飞行时间后在目标点爆炸，发射炮进入冷却
func (s *Simulator) FireCob(targetX float64, targetRow int) error {
	if s.gameOver {
		return ErrGameOver
	}
	if targetRow < 0 || targetRow >= s.cfg.Rows() {
		return fmt.Errorf("%w: row %d", ErrInvalidPosition, targetRow)
	}

	for _, p := range s.plants {
		if !p.Alive || p.Type != types.PlantCobCannon || p.CobCountdown > 0 {
			continue
		}
		roof := s.cfg.Scene == config.SceneRoof || s.cfg.Scene == config.SceneMoon
		p.CobCountdown = judge.CobRecoverTime
		s.pendingCobs = append(s.pendingCobs, CobShot{
			ImpactFrame: s.frame + judge.CobFlyTimeFor(roof, p.Col),
			Row:         targetRow,
			X:           targetX,
		})
		return nil
	}
	return ErrNoCobReady
}

// PendingCobs 返回尚未落地的炮弹
func (s *Simulator) PendingCobs() []CobShot {
	return s.pendingCobs
}
