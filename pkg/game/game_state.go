package game

import (
	"fmt"

	"github.com/decker502/pvzbot/pkg/config"
	"github.com/decker502/pvzbot/pkg/sim"
	"github.com/decker502/pvzbot/pkg/types"
)

// GameState 外部状态源提供的对局快照
// 字段为纯数据记录，不关心快照来自内存读取器还是测试夹具
type GameState struct {
	Scene string // 场景名称："day", "pool" 等
	Sun   int    // 当前阳光
	Frame int    // 已经过的帧数

	Plants      []PlantRecord
	Zombies     []ZombieRecord
	Projectiles []ProjectileRecord
}

// PlantRecord 植物记录
type PlantRecord struct {
	Type   string
	Row    int
	Col    int
	Health int
}

// ZombieRecord 僵尸记录
type ZombieRecord struct {
	Type string
	Row  int
	X    float64

	BodyHealth   int
	ArmorHealth  int
	ShieldHealth int

	FreezeCountdown int
	SlowCountdown   int
	ButterCountdown int
}

// ProjectileRecord 弹体记录
type ProjectileRecord struct {
	Type string
	Row  int
	X    float64
}

// ToSimulator 把外部快照转换为可推演的模拟器
// 未知的类型名会返回错误而不是静默丢弃
func (gs *GameState) ToSimulator(stats *config.Stats) (*sim.Simulator, error) {
	cfg := config.DefaultSimConfig()
	if gs.Scene != "" {
		cfg.Scene = gs.Scene
	}
	cfg.InitialSun = gs.Sun

	s, err := sim.NewSimulator(cfg, stats)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = config.DefaultStats()
	}

	snap := &sim.Snapshot{
		Frame: gs.Frame,
		Sun:   gs.Sun,
	}

	for i, r := range gs.Plants {
		pt := types.PlantTypeFromString(r.Type)
		if pt == types.PlantUnknown {
			return nil, fmt.Errorf("unknown plant type %q", r.Type)
		}
		if !cfg.InBounds(r.Row, r.Col) {
			return nil, fmt.Errorf("plant %q out of bounds at (%d,%d)", r.Type, r.Row, r.Col)
		}
		snap.Plants = append(snap.Plants, sim.Plant{
			ID:     sim.PlantID(i + 1),
			Type:   pt,
			Row:    r.Row,
			Col:    r.Col,
			Health: r.Health,
			Alive:  r.Health > 0,
		})
	}
	snap.NextPlantID = sim.PlantID(len(gs.Plants) + 1)

	for i, r := range gs.Zombies {
		zt := types.ZombieTypeFromString(r.Type)
		if zt == types.ZombieUnknown {
			return nil, fmt.Errorf("unknown zombie type %q", r.Type)
		}
		zs, ok := stats.Zombies.Get(zt)
		if !ok {
			return nil, fmt.Errorf("no stats for zombie type %q", r.Type)
		}
		snap.Zombies = append(snap.Zombies, sim.Zombie{
			ID:              sim.ZombieID(i + 1),
			Type:            zt,
			Row:             r.Row,
			X:               r.X,
			BodyHealth:      r.BodyHealth,
			MaxBodyHealth:   zs.BodyHealth,
			ArmorHealth:     r.ArmorHealth,
			ShieldHealth:    r.ShieldHealth,
			BaseSpeed:       zs.Speed,
			FreezeCountdown: r.FreezeCountdown,
			SlowCountdown:   r.SlowCountdown,
			ButterCountdown: r.ButterCountdown,
			Alive:           r.BodyHealth > 0,
		})
	}
	snap.NextZombieID = sim.ZombieID(len(gs.Zombies) + 1)

	for i, r := range gs.Projectiles {
		pt := types.ProjectileTypeFromString(r.Type)
		if pt == types.ProjectileUnknown {
			return nil, fmt.Errorf("unknown projectile type %q", r.Type)
		}
		ps, ok := stats.Projectiles.Get(pt)
		if !ok {
			return nil, fmt.Errorf("no stats for projectile type %q", r.Type)
		}
		snap.Projectiles = append(snap.Projectiles, sim.Projectile{
			ID:           sim.ProjectileID(i + 1),
			Type:         pt,
			Row:          r.Row,
			X:            r.X,
			Speed:        ps.Speed,
			Damage:       ps.Damage,
			SplashRadius: ps.SplashRadius,
			Alive:        true,
		})
	}
	snap.NextProjectileID = sim.ProjectileID(len(gs.Projectiles) + 1)

	s.Restore(snap)
	return s, nil
}
