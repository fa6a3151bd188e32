package sim

import (
	"github.com/decker502/pvzbot/pkg/config"
	"github.com/decker502/pvzbot/pkg/judge"
	"github.com/decker502/pvzbot/pkg/types"
)

// 植物行为常量（厘秒/像素）
const (
	SunflowerValue = 25  // 向日葵单次产出
	FumeRange      = 320 // 大喷菇喷射距离（4 格）

	squashTriggerLeft  = -20 // 窝瓜触发区间左偏移
	squashTriggerRight = 80  // 窝瓜触发区间右偏移
	squashJumpTime     = 105 // 窝瓜从触发到落下的时长

	potatoTriggerLeft  = -20 // 土豆地雷触发区间左偏移
	potatoTriggerRight = 60  // 土豆地雷触发区间右偏移

	projectileBoundSlack = 50 // 弹体飞出草坪边界多远后消亡

	kernelButterEvery = 3 // 玉米投手每第 N 发为黄油
)

// Tick 推进一帧
// 更新顺序固定：弹体 -> 僵尸 -> 植物 -> 清理 -> 终局判定
// 对局结束后调用为空操作
func (s *Simulator) Tick() {
	if s.gameOver {
		return
	}

	s.updateProjectiles()
	s.updateZombies()
	s.updatePlants()
	s.cleanup()
	s.checkTerminal()

	s.frame++
}

// TickN 推进 n 帧，对局结束时提前返回
func (s *Simulator) TickN(n int) {
	for i := 0; i < n && !s.gameOver; i++ {
		s.Tick()
	}
}

// updateProjectiles 弹体阶段：落地的炮弹先爆炸，然后移动并判定普通弹体
func (s *Simulator) updateProjectiles() {
	if len(s.pendingCobs) > 0 {
		kept := s.pendingCobs[:0]
		for _, shot := range s.pendingCobs {
			if shot.ImpactFrame > s.frame {
				kept = append(kept, shot)
				continue
			}
			for _, z := range s.zombies {
				if z.Alive && judge.IsSplashHit(shot.Row, shot.X, z.Row, z.X, judge.CobExplodeRadius) {
					z.ApplyInstantDamage()
				}
			}
		}
		s.pendingCobs = kept
	}

	rightBound := float64(s.cfg.LawnRightX() + projectileBoundSlack)
	leftBound := float64(config.LawnLeftX - projectileBoundSlack)

	for _, p := range s.projectiles {
		if !p.Alive {
			continue
		}

		p.X += p.Speed
		if p.X > rightBound || p.X < leftBound {
			p.Alive = false
			continue
		}

		s.checkProjectileHit(p)
	}
}

// checkProjectileHit 弹体命中判定
// 溅射弹以弹体当前位置为爆心，命中上下相邻行半径内的全部僵尸；
// 单体弹命中本行迭代序中第一个重叠的僵尸
func (s *Simulator) checkProjectileHit(p *Projectile) {
	if p.SplashRadius > 0 {
		hit := false
		for _, z := range s.zombies {
			if !z.Alive {
				continue
			}
			if judge.IsSplashHit(p.Row, p.X, z.Row, z.X, p.SplashRadius) {
				s.hitZombie(p, z)
				hit = true
			}
		}
		if hit {
			p.Alive = false
		}
		return
	}

	for _, z := range s.zombies {
		if !z.Alive || z.Row != p.Row {
			continue
		}
		if !judge.IsBulletHit(p.X, z.X) {
			continue
		}
		s.hitZombie(p, z)
		p.Alive = false
		return
	}
}

// hitZombie 对单个僵尸结算弹体伤害与附加效果
func (s *Simulator) hitZombie(p *Projectile, z *Zombie) {
	z.ApplyDamage(p.Damage)
	if !z.Alive {
		return
	}
	if p.Type.Slows() {
		z.ApplySlow(judge.SlowDuration)
	}
	if p.Type.Immobilizes() {
		z.ApplyButter(judge.ButterDuration)
	}
}

// updateZombies 僵尸阶段：出生、状态衰减、锤击/啃食/行走
func (s *Simulator) updateZombies() {
	if s.spawner != nil {
		if req, ok := s.spawner.Update(); ok {
			// 行号越界的配置在加载时已拒绝，这里忽略错误
			s.SpawnZombie(req.Type, req.Row)
		}
	}

	for _, z := range s.zombies {
		if !z.Alive {
			continue
		}

		if z.FreezeCountdown > 0 {
			z.FreezeCountdown--
		}
		if z.SlowCountdown > 0 {
			z.SlowCountdown--
		}
		if z.ButterCountdown > 0 {
			z.ButterCountdown--
		}

		if z.Type.IsGargantuar() {
			s.updateGargantuar(z)
			continue
		}

		s.updateWalker(z)
	}
}

// updateWalker 普通僵尸：啃食或行走
// 定身期间啃咬计时暂停
func (s *Simulator) updateWalker(z *Zombie) {
	target := s.findBiteTarget(z)
	if target == nil {
		z.X -= z.EffectiveSpeed()
		z.BiteCountdown = BiteInterval
		return
	}

	if z.Immobilized() {
		return
	}

	if z.Type == types.ZombieJack {
		s.explodeJack(z)
		return
	}

	z.BiteCountdown--
	if z.BiteCountdown <= 0 {
		target.Health -= BiteDamage
		if target.Health <= 0 {
			target.Alive = false
		}
		z.BiteCountdown = BiteInterval
	}
}

// explodeJack 小丑走到植物跟前起爆：炸毁本行爆炸波及区间内的植物，自身死亡
func (s *Simulator) explodeJack(z *Zombie) {
	for _, p := range s.plants {
		if !p.Alive || p.Row != z.Row {
			continue
		}
		if judge.IsPlantInBlast(z.X, judge.JackExplodeRadius, s.cfg.PlantX(p.Col), p.Type) {
			p.Alive = false
		}
	}
	z.BodyHealth = 0
	z.Alive = false
}

// findBiteTarget 寻找僵尸正在啃食的植物
// 同格覆盖层（南瓜头）优先；多个候选取 X 最大（僵尸先碰到）的植物
func (s *Simulator) findBiteTarget(z *Zombie) *Plant {
	attackX := z.AttackX()
	var best *Plant
	bestX := -1.0

	consider := func(p *Plant, overlay bool) {
		plantX := s.cfg.PlantX(p.Col)
		if !judge.IsZombieBitingPlant(attackX, plantX, p.Type) {
			return
		}
		if plantX > bestX || (plantX == bestX && overlay) {
			best = p
			bestX = plantX
		}
	}

	for _, p := range s.plants {
		if !p.Alive || p.Row != z.Row {
			continue
		}
		// 底座被南瓜头保护时啃南瓜头
		if overlay, ok := s.OverlayAt(p.Row, p.Col); ok && overlay.Alive && overlay.ID != p.ID {
			consider(overlay, true)
			continue
		}
		consider(p, p.Type.IsOverlay())
	}
	return best
}

// updateGargantuar 巨人：锤击植物、投掷小鬼、行走
// 巨人不啃食，锤击动作期间不移动，定身期间动作暂停
func (s *Simulator) updateGargantuar(z *Zombie) {
	if judge.ShouldThrowImp(z.Type, z.BodyHealth, z.MaxBodyHealth, z.ImpsThrown) {
		s.throwImp(z)
	}

	if z.Immobilized() {
		return
	}

	if z.HammerCountdown > 0 {
		z.HammerCountdown--
		if z.HammerCountdown == 0 {
			s.smashPlants(z)
		}
		return
	}

	if s.hammerTarget(z) != nil {
		z.HammerCountdown = judge.HammerSwingTime
		return
	}

	z.X -= z.EffectiveSpeed()
}

// hammerTarget 返回巨人锤击区间内的植物
func (s *Simulator) hammerTarget(z *Zombie) *Plant {
	for _, p := range s.plants {
		if !p.Alive || p.Row != z.Row {
			continue
		}
		if judge.IsInHammerRange(z.X, s.cfg.PlantX(p.Col)) {
			return p
		}
	}
	return nil
}

// smashPlants 锤击落下：摧毁区间内的植物及同格覆盖层
func (s *Simulator) smashPlants(z *Zombie) {
	target := s.hammerTarget(z)
	if target == nil {
		return
	}
	if overlay, ok := s.OverlayAt(target.Row, target.Col); ok && overlay.Alive {
		overlay.Alive = false
	}
	if base, ok := s.PlantAt(target.Row, target.Col); ok && base.Alive {
		base.Alive = false
	}
	target.Alive = false
}

// throwImp 投掷小鬼：小鬼落在巨人前方固定距离处
func (s *Simulator) throwImp(z *Zombie) {
	z.ImpsThrown++

	stats, ok := s.stats.Zombies.Get(types.ZombieImp)
	if !ok {
		return
	}

	landX := z.X - judge.ImpThrowDistance
	if landX < config.LawnLeftX {
		landX = config.LawnLeftX
	}

	s.nextZombieID++
	imp := &Zombie{
		ID:            s.nextZombieID,
		Type:          types.ZombieImp,
		Row:           z.Row,
		X:             landX,
		BodyHealth:    stats.BodyHealth,
		MaxBodyHealth: stats.BodyHealth,
		BaseSpeed:     stats.Speed,
		BiteCountdown: BiteInterval,
		Alive:         true,
	}
	s.zombies = append(s.zombies, imp)
}

// updatePlants 植物阶段：产出、攻击、引信与触发判定
func (s *Simulator) updatePlants() {
	for _, p := range s.plants {
		if !p.Alive {
			continue
		}

		switch {
		case p.Type == types.PlantSunflower:
			p.AttackCountdown--
			if p.AttackCountdown <= 0 {
				s.sun += SunflowerValue
				p.AttackCountdown = s.attackInterval(p.Type)
			}

		case p.Type.IsInstantExplosive():
			p.FuseCountdown--
			if p.FuseCountdown <= 0 {
				s.detonate(p)
				p.Alive = false
			}

		case p.Type == types.PlantPotatoMine:
			s.updatePotatoMine(p)

		case p.Type == types.PlantSquash:
			s.updateSquash(p)

		case p.Type == types.PlantCobCannon:
			if p.CobCountdown > 0 {
				p.CobCountdown--
			}

		case p.Type == types.PlantFumeShroom:
			s.updateFumeShroom(p)

		case p.Type.FiresProjectile():
			s.updateShooter(p)
		}
	}
}

// attackInterval 查询植物的攻击间隔
func (s *Simulator) attackInterval(pt types.PlantType) int {
	if stats, ok := s.stats.Plants.Get(pt); ok {
		return stats.AttackInterval
	}
	return 0
}

// detonate 即时植物起爆
func (s *Simulator) detonate(p *Plant) {
	centerX := s.cfg.PlantX(p.Col)

	switch p.Type {
	case types.PlantCherryBomb:
		s.blast(p.Row, centerX, 1, judge.CherryExplodeRadius)

	case types.PlantDoomShroom:
		s.blast(p.Row, centerX, 1, judge.DoomExplodeRadius)

	case types.PlantJalapeno:
		// 火爆辣椒覆盖整行
		for _, z := range s.zombies {
			if z.Alive && z.Row == p.Row {
				z.ApplyInstantDamage()
			}
		}

	case types.PlantIceShroom:
		// 冰冻与减速共用一次触发：减速时长包含冰冻阶段
		for _, z := range s.zombies {
			if z.Alive {
				z.ApplyFreeze(judge.FreezeDuration)
				z.ApplySlow(judge.FreezeDuration + judge.SlowDuration)
			}
		}
	}
}

// blast 范围秒杀伤害
func (s *Simulator) blast(row int, x float64, rowSpan int, radius float64) {
	for _, z := range s.zombies {
		if z.Alive && judge.IsExplosionHit(row, x, rowSpan, radius, z.Row, z.X) {
			z.ApplyInstantDamage()
		}
	}
}

// updatePotatoMine 土豆地雷：武装完成后接触起爆
func (s *Simulator) updatePotatoMine(p *Plant) {
	if p.ArmCountdown > 0 {
		p.ArmCountdown--
		return
	}

	plantX := s.cfg.PlantX(p.Col)
	triggered := false
	for _, z := range s.zombies {
		if !z.Alive || z.Row != p.Row {
			continue
		}
		attackX := z.AttackX()
		if attackX >= plantX+potatoTriggerLeft && attackX <= plantX+potatoTriggerRight {
			triggered = true
			break
		}
	}
	if !triggered {
		return
	}

	for _, z := range s.zombies {
		if !z.Alive || z.Row != p.Row {
			continue
		}
		attackX := z.AttackX()
		if attackX >= plantX+potatoTriggerLeft && attackX <= plantX+potatoTriggerRight {
			z.ApplyInstantDamage()
		}
	}
	p.Alive = false
}

// updateSquash 窝瓜：触发后经过腾空时间落下压扁区间内的僵尸
func (s *Simulator) updateSquash(p *Plant) {
	plantX := s.cfg.PlantX(p.Col)

	inRange := func(z *Zombie) bool {
		if !z.Alive || z.Row != p.Row {
			return false
		}
		attackX := z.AttackX()
		return attackX >= plantX+squashTriggerLeft && attackX <= plantX+squashTriggerRight
	}

	if p.FuseCountdown > 0 {
		p.FuseCountdown--
		if p.FuseCountdown == 0 {
			for _, z := range s.zombies {
				if inRange(z) {
					z.ApplyInstantDamage()
				}
			}
			p.Alive = false
		}
		return
	}

	for _, z := range s.zombies {
		if inRange(z) {
			p.FuseCountdown = squashJumpTime
			return
		}
	}
}

// updateFumeShroom 大喷菇：穿透喷射，直接伤害射程内整行僵尸
func (s *Simulator) updateFumeShroom(p *Plant) {
	p.AttackCountdown--
	if p.AttackCountdown > 0 {
		return
	}

	plantX := s.cfg.PlantX(p.Col)
	stats, _ := s.stats.Plants.Get(p.Type)

	hit := false
	for _, z := range s.zombies {
		if !z.Alive || z.Row != p.Row {
			continue
		}
		if z.X > plantX && z.X <= plantX+FumeRange {
			z.ApplyDamage(stats.Damage)
			hit = true
		}
	}

	if hit {
		p.AttackCountdown = stats.AttackInterval
	} else {
		// 没有目标时保持待发状态
		p.AttackCountdown = 0
	}
}

// updateShooter 射手与投手：有目标时按攻击间隔出弹
func (s *Simulator) updateShooter(p *Plant) {
	if p.AttackCountdown > 0 {
		p.AttackCountdown--
	}
	if p.AttackCountdown > 0 {
		return
	}

	plantX := s.cfg.PlantX(p.Col)
	front := s.hasTargetAhead(p.Row, plantX)
	back := p.Type == types.PlantSplitPea && s.hasTargetBehind(p.Row, plantX)

	fired := false
	switch p.Type {
	case types.PlantThreepeater:
		for _, row := range []int{p.Row - 1, p.Row, p.Row + 1} {
			if row < 0 || row >= s.cfg.Rows() {
				continue
			}
			if s.hasTargetAhead(row, plantX) {
				fired = true
			}
		}
		if fired {
			for _, row := range []int{p.Row - 1, p.Row, p.Row + 1} {
				if row >= 0 && row < s.cfg.Rows() {
					s.spawnProjectile(p.ID, p.Type.Projectile(), row, plantX, 1)
				}
			}
		}

	case types.PlantSplitPea:
		if front {
			s.spawnProjectile(p.ID, p.Type.Projectile(), p.Row, plantX, 1)
			fired = true
		}
		if back {
			s.spawnProjectile(p.ID, p.Type.Projectile(), p.Row, plantX, -1)
			fired = true
		}

	case types.PlantRepeater:
		if front {
			s.spawnProjectile(p.ID, p.Type.Projectile(), p.Row, plantX, 1)
			s.spawnProjectile(p.ID, p.Type.Projectile(), p.Row, plantX, 1)
			fired = true
		}

	case types.PlantGatlingPea:
		if front {
			for i := 0; i < 4; i++ {
				s.spawnProjectile(p.ID, p.Type.Projectile(), p.Row, plantX, 1)
			}
			fired = true
		}

	case types.PlantKernelPult:
		if front {
			p.ShotCount++
			proj := types.ProjectileKernel
			if p.ShotCount%kernelButterEvery == 0 {
				proj = types.ProjectileButter
			}
			s.spawnProjectile(p.ID, proj, p.Row, plantX, 1)
			fired = true
		}

	default:
		if front {
			s.spawnProjectile(p.ID, p.Type.Projectile(), p.Row, plantX, 1)
			fired = true
		}
	}

	if fired {
		p.AttackCountdown = s.attackInterval(p.Type)
	}
}

// hasTargetAhead 判断行内植物前方是否有存活僵尸
func (s *Simulator) hasTargetAhead(row int, x float64) bool {
	for _, z := range s.zombies {
		if z.Alive && z.Row == row && z.X > x {
			return true
		}
	}
	return false
}

// hasTargetBehind 判断行内植物后方是否有存活僵尸
func (s *Simulator) hasTargetBehind(row int, x float64) bool {
	for _, z := range s.zombies {
		if z.Alive && z.Row == row && z.X < x {
			return true
		}
	}
	return false
}

// spawnProjectile 生成弹体，direction 为 +1 向右、-1 向左
func (s *Simulator) spawnProjectile(source PlantID, pt types.ProjectileType, row int, x float64, direction float64) {
	stats, ok := s.stats.Projectiles.Get(pt)
	if !ok {
		return
	}

	s.nextProjectileID++
	s.projectiles = append(s.projectiles, &Projectile{
		ID:            s.nextProjectileID,
		Type:          pt,
		Row:           row,
		X:             x,
		Speed:         stats.Speed * direction,
		Damage:        stats.Damage,
		SplashRadius:  stats.SplashRadius,
		SourcePlantID: source,
		Alive:         true,
	})
}

// cleanup 清理阶段：移除死亡实体，死亡植物释放格子
func (s *Simulator) cleanup() {
	plants := s.plants[:0]
	for _, p := range s.plants {
		if p.Alive {
			plants = append(plants, p)
			continue
		}
		s.grid.Remove(p.Row, p.Col, p.ID)
	}
	s.plants = plants

	zombies := s.zombies[:0]
	for _, z := range s.zombies {
		if z.Alive {
			zombies = append(zombies, z)
			continue
		}
		s.zombiesKilled++
	}
	s.zombies = zombies

	projectiles := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.Alive {
			projectiles = append(projectiles, p)
		}
	}
	s.projectiles = projectiles
}

// checkTerminal 终局判定：僵尸越过失败边界判负；
// 波次全部出完且场上无存活僵尸判胜
func (s *Simulator) checkTerminal() {
	for _, z := range s.zombies {
		if z.Alive && z.X < float64(s.cfg.DefeatX) {
			s.gameOver = true
			s.victory = false
			return
		}
	}

	if s.spawner != nil && s.spawner.State() == SpawnerFinished && len(s.zombies) == 0 {
		s.gameOver = true
		s.victory = true
	}
}
