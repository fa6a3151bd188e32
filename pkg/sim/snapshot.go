package sim

import "github.com/decker502/pvzbot/pkg/config"

// Snapshot 模拟器的完整可序列化状态
// 实体按值复制，恢复后与原状态逐帧一致
type Snapshot struct {
	Frame int
	Sun   int

	GameOver      bool
	Victory       bool
	ZombiesKilled int

	NextPlantID      PlantID
	NextZombieID     ZombieID
	NextProjectileID ProjectileID

	Plants      []Plant
	Zombies     []Zombie
	Projectiles []Projectile
	PendingCobs []CobShot

	Spawner *SpawnerSnapshot
}

// Snapshot 导出当前状态的深拷贝
func (s *Simulator) Snapshot() *Snapshot {
	snap := &Snapshot{
		Frame:            s.frame,
		Sun:              s.sun,
		GameOver:         s.gameOver,
		Victory:          s.victory,
		ZombiesKilled:    s.zombiesKilled,
		NextPlantID:      s.nextPlantID,
		NextZombieID:     s.nextZombieID,
		NextProjectileID: s.nextProjectileID,
	}

	// 空列表保持 nil，保证快照序列化往返后逐字段相等
	if len(s.plants) > 0 {
		snap.Plants = make([]Plant, len(s.plants))
		for i, p := range s.plants {
			snap.Plants[i] = *p
		}
	}
	if len(s.zombies) > 0 {
		snap.Zombies = make([]Zombie, len(s.zombies))
		for i, z := range s.zombies {
			snap.Zombies[i] = *z
		}
	}
	if len(s.projectiles) > 0 {
		snap.Projectiles = make([]Projectile, len(s.projectiles))
		for i, p := range s.projectiles {
			snap.Projectiles[i] = *p
		}
	}
	if len(s.pendingCobs) > 0 {
		snap.PendingCobs = make([]CobShot, len(s.pendingCobs))
		copy(snap.PendingCobs, s.pendingCobs)
	}

	if s.spawner != nil {
		spawnerSnap := s.spawner.Snapshot()
		snap.Spawner = &spawnerSnap
	}

	return snap
}

// Restore 恢复到快照状态
// 场地索引根据植物列表重建
func (s *Simulator) Restore(snap *Snapshot) {
	s.frame = snap.Frame
	s.sun = snap.Sun
	s.gameOver = snap.GameOver
	s.victory = snap.Victory
	s.zombiesKilled = snap.ZombiesKilled
	s.nextPlantID = snap.NextPlantID
	s.nextZombieID = snap.NextZombieID
	s.nextProjectileID = snap.NextProjectileID

	s.plants = make([]*Plant, len(snap.Plants))
	s.grid = NewGrid(s.cfg.Rows(), config.GridCols)
	for i := range snap.Plants {
		p := snap.Plants[i]
		s.plants[i] = &p
		if p.Type.IsOverlay() {
			s.grid.PlaceOverlay(p.Row, p.Col, p.ID)
		} else {
			s.grid.PlaceBase(p.Row, p.Col, p.ID)
		}
	}

	s.zombies = make([]*Zombie, len(snap.Zombies))
	for i := range snap.Zombies {
		z := snap.Zombies[i]
		s.zombies[i] = &z
	}

	s.projectiles = make([]*Projectile, len(snap.Projectiles))
	for i := range snap.Projectiles {
		p := snap.Projectiles[i]
		s.projectiles[i] = &p
	}

	s.pendingCobs = make([]CobShot, len(snap.PendingCobs))
	copy(s.pendingCobs, snap.PendingCobs)

	if snap.Spawner != nil && s.spawner != nil {
		s.spawner.Restore(*snap.Spawner)
	}
}

// Clone 创建完全独立的模拟器副本
// 属性表为只读配置，副本间共享；其余状态全部深拷贝
func (s *Simulator) Clone() *Simulator {
	clone := &Simulator{
		cfg:   s.cfg,
		stats: s.stats,
		grid:  NewGrid(s.cfg.Rows(), config.GridCols),
	}
	if s.spawner != nil {
		clone.spawner = s.spawner.Clone()
	}
	clone.Restore(s.Snapshot())
	return clone
}
