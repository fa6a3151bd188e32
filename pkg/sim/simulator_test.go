package sim

import (
	"errors"
	"reflect"
	"testing"

	"github.com/decker502/pvzbot/pkg/config"
	"github.com/decker502/pvzbot/pkg/judge"
	"github.com/decker502/pvzbot/pkg/types"
)

// newTestSimulator 创建测试用模拟器，给足阳光
func newTestSimulator(t *testing.T) *Simulator {
	t.Helper()
	cfg := config.DefaultSimConfig()
	cfg.InitialSun = 10000
	s, err := NewSimulator(cfg, nil)
	if err != nil {
		t.Fatalf("NewSimulator() failed: %v", err)
	}
	return s
}

// TestApplyDamageOrder 验证伤害按 盾牌 -> 护甲 -> 本体 吸收
func TestApplyDamageOrder(t *testing.T) {
	z := &Zombie{
		Type:          types.ZombieScreendoor,
		BodyHealth:    200,
		MaxBodyHealth: 200,
		ShieldHealth:  1100,
		Alive:         true,
	}

	z.ApplyDamage(100)
	if z.ShieldHealth != 1000 || z.BodyHealth != 200 {
		t.Errorf("Shield should absorb first: shield=%d body=%d", z.ShieldHealth, z.BodyHealth)
	}

	// 穿透盾牌的伤害进入本体
	z.ApplyDamage(1050)
	if z.ShieldHealth != 0 {
		t.Errorf("Expected shield 0, got %d", z.ShieldHealth)
	}
	if z.BodyHealth != 150 {
		t.Errorf("Expected body 150, got %d", z.BodyHealth)
	}
	if !z.Alive {
		t.Error("Zombie with positive body health should be alive")
	}
}

// TestApplyDamageNeverNegative 验证任何一层血量都不会为负
func TestApplyDamageNeverNegative(t *testing.T) {
	z := &Zombie{
		Type:          types.ZombieBuckethead,
		BodyHealth:    200,
		MaxBodyHealth: 200,
		ArmorHealth:   1100,
		Alive:         true,
	}

	z.ApplyDamage(99999)
	if z.ShieldHealth != 0 || z.ArmorHealth != 0 || z.BodyHealth != 0 {
		t.Errorf("All layers should be clamped at 0: shield=%d armor=%d body=%d",
			z.ShieldHealth, z.ArmorHealth, z.BodyHealth)
	}
	if z.Alive {
		t.Error("Zombie with zero body health should be dead")
	}
}

// TestApplyDamageArmorAloneDoesNotKill 验证只打掉护甲不致死
func TestApplyDamageArmorAloneDoesNotKill(t *testing.T) {
	z := &Zombie{
		Type:          types.ZombieConehead,
		BodyHealth:    200,
		MaxBodyHealth: 200,
		ArmorHealth:   370,
		Alive:         true,
	}
	z.ApplyDamage(370)
	if z.ArmorHealth != 0 {
		t.Errorf("Expected armor 0, got %d", z.ArmorHealth)
	}
	if !z.Alive || z.BodyHealth != 200 {
		t.Error("Removing armor alone must not kill the zombie")
	}
}

// TestPlacePlantValidationOrder 验证校验顺序：位置 -> 占用 -> 阳光
func TestPlacePlantValidationOrder(t *testing.T) {
	cfg := config.DefaultSimConfig()
	cfg.InitialSun = 0
	s, err := NewSimulator(cfg, nil)
	if err != nil {
		t.Fatalf("NewSimulator() failed: %v", err)
	}

	// 位置非法时报位置错误，即使阳光也不足
	if _, err := s.PlacePlant(types.PlantPeashooter, 9, 0); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("Expected ErrInvalidPosition, got %v", err)
	}

	// 阳光不足
	if _, err := s.PlacePlant(types.PlantPeashooter, 0, 0); !errors.Is(err, ErrInsufficientSun) {
		t.Errorf("Expected ErrInsufficientSun, got %v", err)
	}

	s.AddSun(1000)
	if _, err := s.PlacePlant(types.PlantPeashooter, 0, 0); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}

	// 占用优先于阳光判定
	if _, err := s.PlacePlant(types.PlantSunflower, 0, 0); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("Expected ErrCellOccupied, got %v", err)
	}
}

// TestPlacePlantAtomicity 验证失败的种植不消耗阳光不占格子
func TestPlacePlantAtomicity(t *testing.T) {
	s := newTestSimulator(t)
	sunBefore := s.Sun()

	if _, err := s.PlacePlant(types.PlantPeashooter, -1, 0); err == nil {
		t.Fatal("Expected error for invalid row")
	}
	if s.Sun() != sunBefore {
		t.Errorf("Failed placement must not consume sun: before=%d after=%d", sunBefore, s.Sun())
	}
	if len(s.Plants()) != 0 {
		t.Errorf("Failed placement must not add plants, got %d", len(s.Plants()))
	}
}

// TestPumpkinOverlayCoexistence 验证南瓜头与底座植物共存同一格
func TestPumpkinOverlayCoexistence(t *testing.T) {
	s := newTestSimulator(t)

	if _, err := s.PlacePlant(types.PlantPeashooter, 2, 3); err != nil {
		t.Fatalf("PlacePlant(peashooter) failed: %v", err)
	}
	if _, err := s.PlacePlant(types.PlantPumpkin, 2, 3); err != nil {
		t.Fatalf("PlacePlant(pumpkin) over base failed: %v", err)
	}

	// 同层重复占用被拒绝
	if _, err := s.PlacePlant(types.PlantPumpkin, 2, 3); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("Expected ErrCellOccupied for second pumpkin, got %v", err)
	}
	if _, err := s.PlacePlant(types.PlantSunflower, 2, 3); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("Expected ErrCellOccupied for second base plant, got %v", err)
	}

	// 铲除时覆盖层优先
	if err := s.RemovePlant(2, 3); err != nil {
		t.Fatalf("RemovePlant() failed: %v", err)
	}
	s.Tick()
	if _, ok := s.OverlayAt(2, 3); ok {
		t.Error("Pumpkin should be removed first")
	}
	if _, ok := s.PlantAt(2, 3); !ok {
		t.Error("Base plant should survive the first shovel")
	}
}

// TestRemovePlantEmptyCell 验证铲空格返回 ErrNoSuchEntity
func TestRemovePlantEmptyCell(t *testing.T) {
	s := newTestSimulator(t)
	if err := s.RemovePlant(0, 0); !errors.Is(err, ErrNoSuchEntity) {
		t.Errorf("Expected ErrNoSuchEntity, got %v", err)
	}
}

// TestPeashooterKillsBasicZombie 验证射手完整的出弹-命中-击杀链路
func TestPeashooterKillsBasicZombie(t *testing.T) {
	s := newTestSimulator(t)

	if _, err := s.PlacePlant(types.PlantPeashooter, 0, 0); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}
	if _, err := s.SpawnZombie(types.ZombieBasic, 0); err != nil {
		t.Fatalf("SpawnZombie() failed: %v", err)
	}

	s.TickN(2500)

	if s.ZombiesKilled() != 1 {
		t.Errorf("Expected 1 zombie killed, got %d", s.ZombiesKilled())
	}
	if s.GameOver() {
		t.Error("Game should not be over without a spawner")
	}
}

// TestZombieEatsPlant 验证啃食链路：僵尸走到植物前停下啃食直至植物死亡
func TestZombieEatsPlant(t *testing.T) {
	s := newTestSimulator(t)

	if _, err := s.PlacePlant(types.PlantWallnut, 1, 8); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}
	z, err := s.SpawnZombie(types.ZombieBasic, 1)
	if err != nil {
		t.Fatalf("SpawnZombie() failed: %v", err)
	}

	// 坚果 4000 血，单口 100：40 口 * 70 帧 + 走进距离
	s.TickN(4000)

	if _, ok := s.PlantAt(1, 8); ok {
		t.Error("Wallnut should be eaten through")
	}
	if !z.Alive {
		t.Error("Zombie should survive eating")
	}
}

// TestCherryBombBlast 验证樱桃炸弹延迟起爆与巨人减半
func TestCherryBombBlast(t *testing.T) {
	s := newTestSimulator(t)

	basic, _ := s.SpawnZombie(types.ZombieBasic, 2)
	garg, _ := s.SpawnZombie(types.ZombieGargantuar, 2)
	far, _ := s.SpawnZombie(types.ZombieBasic, 2)

	// 把僵尸摆到樱桃爆炸半径内/外
	cherryX := s.Config().PlantX(8)
	basic.X = cherryX + 50
	garg.X = cherryX + 80
	far.X = cherryX + 200

	if _, err := s.PlacePlant(types.PlantCherryBomb, 2, 8); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}

	// 起爆前夜：所有僵尸健在
	s.TickN(judge.InstantDelay - 1)
	if !garg.Alive || s.ZombiesKilled() != 0 {
		t.Fatal("Nothing should die before the fuse burns down")
	}

	s.TickN(2)

	if basic.Alive {
		t.Error("Basic zombie in radius should be dead")
	}
	if !garg.Alive {
		t.Error("Gargantuar should survive one cherry")
	}
	if garg.BodyHealth != 3000-900 {
		t.Errorf("Gargantuar should take halved damage 900, got body %d", garg.BodyHealth)
	}
	if !far.Alive {
		t.Error("Zombie beyond radius should survive")
	}
	if _, ok := s.PlantAt(2, 8); ok {
		t.Error("Cherry bomb should vanish after detonation")
	}
}

// TestIceShroomChain 验证寒冰菇的 延迟 -> 冰冻 -> 减速 链条
func TestIceShroomChain(t *testing.T) {
	s := newTestSimulator(t)

	z, _ := s.SpawnZombie(types.ZombieBasic, 0)
	if _, err := s.PlacePlant(types.PlantIceShroom, 4, 0); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}

	s.TickN(judge.IceEffectDelay)

	if z.Status() != judge.StatusFrozen {
		t.Fatalf("Expected frozen after activation, got %v", z.Status())
	}
	xFrozen := z.X

	// 冰冻期间原地不动
	s.TickN(100)
	if z.X != xFrozen {
		t.Errorf("Frozen zombie must not move: %f -> %f", xFrozen, z.X)
	}

	// 冰冻结束进入减速
	s.TickN(judge.FreezeDuration)
	if z.Status() != judge.StatusSlowed {
		t.Errorf("Expected slowed after freeze ends, got %v", z.Status())
	}

	// 减速结束恢复正常
	s.TickN(judge.SlowDuration + 10)
	if z.Status() != judge.StatusNormal {
		t.Errorf("Expected normal after slow ends, got %v", z.Status())
	}
}

// TestFireCob 验证玉米加农炮的发射、飞行与落地爆炸
func TestFireCob(t *testing.T) {
	s := newTestSimulator(t)

	// 没有炮时报错
	if err := s.FireCob(400, 2); !errors.Is(err, ErrNoCobReady) {
		t.Errorf("Expected ErrNoCobReady, got %v", err)
	}

	if _, err := s.PlacePlant(types.PlantCobCannon, 2, 1); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}

	// 新种的炮在冷却中
	if err := s.FireCob(400, 2); !errors.Is(err, ErrNoCobReady) {
		t.Errorf("Expected ErrNoCobReady while recovering, got %v", err)
	}

	s.TickN(judge.CobRecoverTime + 1)

	garg, _ := s.SpawnZombie(types.ZombieGargantuar, 2)
	garg.X = 400

	if err := s.FireCob(400, 2); err != nil {
		t.Fatalf("FireCob() failed: %v", err)
	}
	if len(s.PendingCobs()) != 1 {
		t.Fatalf("Expected 1 pending cob, got %d", len(s.PendingCobs()))
	}

	// 连续发射进入冷却
	if err := s.FireCob(400, 2); !errors.Is(err, ErrNoCobReady) {
		t.Errorf("Expected ErrNoCobReady after firing, got %v", err)
	}

	s.TickN(judge.CobFlyTime + 2)

	if garg.BodyHealth != 3000-900 {
		t.Errorf("Expected gargantuar body 2100 after one cob, got %d", garg.BodyHealth)
	}
	if len(s.PendingCobs()) != 0 {
		t.Errorf("Pending cob should be consumed, got %d", len(s.PendingCobs()))
	}
}

// TestGargantuarSmashAndImp 验证巨人锤击植物与投掷小鬼
func TestGargantuarSmashAndImp(t *testing.T) {
	s := newTestSimulator(t)

	if _, err := s.PlacePlant(types.PlantWallnut, 3, 4); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}
	garg, _ := s.SpawnZombie(types.ZombieGargantuar, 3)
	garg.X = s.Config().PlantX(4) + 40 // 锤击区间入口外一点

	s.TickN(200)

	if _, ok := s.PlantAt(3, 4); ok {
		t.Error("Wallnut should be smashed by the hammer")
	}
	if !garg.Alive {
		t.Error("Gargantuar should be unhurt")
	}

	// 打到半血触发投掷小鬼
	garg.ApplyDamage(1500)
	s.Tick()

	if garg.ImpsThrown != 1 {
		t.Errorf("Expected 1 imp thrown, got %d", garg.ImpsThrown)
	}
	impFound := false
	for _, z := range s.Zombies() {
		if z.Type == types.ZombieImp {
			impFound = true
			if z.X >= garg.X {
				t.Errorf("Imp should land ahead of the gargantuar: imp=%f garg=%f", z.X, garg.X)
			}
		}
	}
	if !impFound {
		t.Fatal("Expected an imp on the field")
	}

	// 不会重复投掷
	s.TickN(10)
	if garg.ImpsThrown != 1 {
		t.Errorf("Gargantuar must throw only once, got %d", garg.ImpsThrown)
	}
}

// TestMelonSplash 验证西瓜以弹体位置为爆心，命中相邻行半径内全部僵尸
func TestMelonSplash(t *testing.T) {
	s := newTestSimulator(t)

	if _, err := s.PlacePlant(types.PlantMelonPult, 2, 0); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}

	main, _ := s.SpawnZombie(types.ZombieBasic, 2)
	near, _ := s.SpawnZombie(types.ZombieBasic, 3)
	farRow, _ := s.SpawnZombie(types.ZombieBasic, 4)

	main.X = 500
	near.X = 500
	farRow.X = 500

	// 停住僵尸便于观察单次命中
	main.BaseSpeed = 0.0001
	near.BaseSpeed = 0.0001
	farRow.BaseSpeed = 0.0001

	s.TickN(500)

	if main.TotalHealth() == 200 {
		t.Error("Main target should be damaged")
	}
	if near.TotalHealth() == 200 {
		t.Error("Adjacent row zombie within radius should take splash damage")
	}
	if farRow.TotalHealth() != 200 {
		t.Errorf("Zombie two rows away should be untouched, got %d", farRow.TotalHealth())
	}
}

// TestMelonSplashAdjacentRowTrigger 验证溅射弹不需要本行命中：
// 相邻行僵尸进入半径即起爆
func TestMelonSplashAdjacentRowTrigger(t *testing.T) {
	s := newTestSimulator(t)

	if _, err := s.PlacePlant(types.PlantMelonPult, 2, 0); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}

	// 本行目标只用于触发出弹，摆在弹道远端
	trigger, _ := s.SpawnZombie(types.ZombieBasic, 2)
	adjacent, _ := s.SpawnZombie(types.ZombieBasic, 3)

	trigger.X = 700
	adjacent.X = 400
	trigger.BaseSpeed = 0.0001
	adjacent.BaseSpeed = 0.0001

	s.TickN(400)

	if adjacent.TotalHealth() != 120 {
		t.Errorf("Adjacent row zombie should take one splash hit, got health %d", adjacent.TotalHealth())
	}
	if trigger.TotalHealth() != 200 {
		t.Errorf("Zombie beyond the blast should be untouched, got health %d", trigger.TotalHealth())
	}
	if len(s.Projectiles()) != 0 {
		t.Errorf("Detonated melon must not fly on, got %d projectiles", len(s.Projectiles()))
	}
}

// TestJackExplodesOnPlant 验证小丑走到植物跟前起爆，按波及区间炸毁植物
func TestJackExplodesOnPlant(t *testing.T) {
	s := newTestSimulator(t)

	if _, err := s.PlacePlant(types.PlantWallnut, 1, 8); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}
	if _, err := s.PlacePlant(types.PlantPeashooter, 1, 7); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}
	if _, err := s.SpawnZombie(types.ZombieJack, 1); err != nil {
		t.Fatalf("SpawnZombie() failed: %v", err)
	}

	s.TickN(300)

	if _, ok := s.PlantAt(1, 8); ok {
		t.Error("Wallnut in blast range should be destroyed")
	}
	if _, ok := s.PlantAt(1, 7); !ok {
		t.Error("Peashooter outside blast range should survive")
	}
	if s.ZombiesKilled() != 1 {
		t.Errorf("Jack must die in its own explosion, got %d kills", s.ZombiesKilled())
	}
}

// TestDefeatBoundary 验证僵尸越过失败边界判负
func TestDefeatBoundary(t *testing.T) {
	s := newTestSimulator(t)

	z, _ := s.SpawnZombie(types.ZombieBasic, 0)
	z.X = 1

	s.TickN(100)

	if !s.GameOver() {
		t.Fatal("Expected game over after zombie crossed the boundary")
	}
	if s.Victory() {
		t.Error("Crossing the boundary is a defeat")
	}

	// 终局后操作被拒绝
	if _, err := s.PlacePlant(types.PlantPeashooter, 0, 0); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}
	frame := s.Frame()
	s.Tick()
	if s.Frame() != frame {
		t.Error("Tick after game over must be a no-op")
	}
}

// TestVictory 验证波次出完且清场后判胜
func TestVictory(t *testing.T) {
	scenario := &config.ScenarioConfig{
		ID:         "test",
		Name:       "test",
		Scene:      config.SceneDay,
		InitialSun: 10000,
		Waves: []config.WaveConfig{
			{SpawnDelay: 10, Zombies: []config.ZombieSpawn{{Type: "basic", Lane: 1, Count: 1}}},
		},
	}
	s, err := NewSimulatorFromScenario(scenario, nil)
	if err != nil {
		t.Fatalf("NewSimulatorFromScenario() failed: %v", err)
	}

	if _, err := s.PlacePlant(types.PlantGatlingPea, 0, 0); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}
	if _, err := s.PlacePlant(types.PlantGatlingPea, 0, 1); err != nil {
		t.Fatalf("PlacePlant() failed: %v", err)
	}

	s.TickN(3000)

	if !s.GameOver() {
		t.Fatal("Expected game over after clearing all waves")
	}
	if !s.Victory() {
		t.Error("Expected victory")
	}
	if s.ZombiesKilled() != 1 {
		t.Errorf("Expected 1 kill, got %d", s.ZombiesKilled())
	}
}

// TestDeterminism 验证相同初始状态与操作序列产生完全相同的结果
func TestDeterminism(t *testing.T) {
	build := func() *Simulator {
		scenario := &config.ScenarioConfig{
			ID:         "det",
			Name:       "det",
			Scene:      config.ScenePool,
			InitialSun: 10000,
			Waves: []config.WaveConfig{
				{SpawnDelay: 50, SpawnInterval: 30, Zombies: []config.ZombieSpawn{
					{Type: "conehead", Lane: 2, Count: 3},
					{Type: "gargantuar", Lane: 5, Count: 1},
				}},
			},
		}
		s, err := NewSimulatorFromScenario(scenario, nil)
		if err != nil {
			t.Fatalf("NewSimulatorFromScenario() failed: %v", err)
		}
		s.PlacePlant(types.PlantWinterMelon, 1, 0)
		s.PlacePlant(types.PlantRepeater, 4, 0)
		s.PlacePlant(types.PlantWallnut, 1, 8)
		return s
	}

	s1 := build()
	s2 := build()

	s1.TickN(2000)
	s2.TickN(2000)

	if !reflect.DeepEqual(s1.Snapshot(), s2.Snapshot()) {
		t.Error("Identical runs must produce identical snapshots")
	}
}

// TestSnapshotRestoreReplay 验证从快照恢复后推进与原轨迹一致
func TestSnapshotRestoreReplay(t *testing.T) {
	s := newTestSimulator(t)
	s.PlacePlant(types.PlantPeashooter, 0, 0)
	s.SpawnZombie(types.ZombieConehead, 0)
	s.TickN(300)

	snap := s.Snapshot()

	s.TickN(500)
	want := s.Snapshot()

	s.Restore(snap)
	s.TickN(500)
	got := s.Snapshot()

	if !reflect.DeepEqual(want, got) {
		t.Error("Replay from snapshot must match the original trajectory")
	}
}

// TestCloneIsolation 验证克隆后两个模拟器完全独立
func TestCloneIsolation(t *testing.T) {
	s := newTestSimulator(t)
	s.PlacePlant(types.PlantPeashooter, 0, 0)
	s.SpawnZombie(types.ZombieBasic, 0)
	s.TickN(100)

	before := s.Snapshot()
	clone := s.Clone()

	// 推进克隆不影响原模拟器
	clone.TickN(500)
	clone.PlacePlant(types.PlantWallnut, 2, 2)

	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("Advancing the clone must not mutate the original")
	}

	// 推进原模拟器不影响克隆
	cloneSnap := clone.Snapshot()
	s.TickN(500)
	if !reflect.DeepEqual(cloneSnap, clone.Snapshot()) {
		t.Error("Advancing the original must not mutate the clone")
	}
}

// TestCloneProducesSameTrajectory 验证克隆与原体推进轨迹一致
func TestCloneProducesSameTrajectory(t *testing.T) {
	s := newTestSimulator(t)
	s.PlacePlant(types.PlantSnowPea, 1, 0)
	s.SpawnZombie(types.ZombieFootball, 1)
	s.TickN(50)

	clone := s.Clone()
	s.TickN(800)
	clone.TickN(800)

	if !reflect.DeepEqual(s.Snapshot(), clone.Snapshot()) {
		t.Error("Clone must follow the same trajectory as the original")
	}
}

// TestScenarioSpawnsIntoSim 验证波次生成器在 Tick 中自动出怪
func TestScenarioSpawnsIntoSim(t *testing.T) {
	scenario := &config.ScenarioConfig{
		ID:         "spawn",
		Name:       "spawn",
		Scene:      config.SceneDay,
		InitialSun: 50,
		Waves: []config.WaveConfig{
			{SpawnDelay: 5, SpawnInterval: 10, Zombies: []config.ZombieSpawn{
				{Type: "basic", Lane: 3, Count: 2},
			}},
		},
	}
	s, err := NewSimulatorFromScenario(scenario, nil)
	if err != nil {
		t.Fatalf("NewSimulatorFromScenario() failed: %v", err)
	}

	s.TickN(4)
	if len(s.Zombies()) != 0 {
		t.Errorf("No zombie should spawn before the delay, got %d", len(s.Zombies()))
	}

	s.TickN(1)
	if len(s.Zombies()) != 1 {
		t.Errorf("Expected 1 zombie at frame 5, got %d", len(s.Zombies()))
	}
	if s.Zombies()[0].Row != 2 {
		t.Errorf("Lane 3 should map to row 2, got %d", s.Zombies()[0].Row)
	}

	s.TickN(10)
	if len(s.Zombies()) != 2 {
		t.Errorf("Expected 2 zombies after the interval, got %d", len(s.Zombies()))
	}
}
