// lawn_viewer - 终端战场查看器
// 逐帧推进战斗模拟并在终端渲染草坪，用于人工检查战斗行为
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/pvzbot/pkg/config"
	"github.com/decker502/pvzbot/pkg/game"
	"github.com/decker502/pvzbot/pkg/sim"
	"github.com/decker502/pvzbot/pkg/types"
)

// 每个字符代表的草坪像素宽度
const pxPerChar = 10

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*50, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type model struct {
	sim      *sim.Simulator
	scenario string
	paused   bool
	speed    int // 每个 UI 节拍推进的帧数
	mark     *sim.Snapshot
	status   string
}

func initialModel(s *sim.Simulator, scenario string, speed int) model {
	return model{
		sim:      s,
		scenario: scenario,
		paused:   true,
		speed:    speed,
		status:   "空格开始",
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if m.paused {
				m.status = "已暂停"
			} else {
				m.status = "运行中"
			}
		case "s":
			m.sim.Tick()
			m.status = "单步"
		case "+", "=":
			if m.speed < 100 {
				m.speed *= 2
			}
		case "-":
			if m.speed > 1 {
				m.speed /= 2
			}
		case "m":
			m.mark = m.sim.Snapshot()
			m.status = fmt.Sprintf("已标记帧 %d", m.mark.Frame)
		case "u":
			if m.mark != nil {
				m.sim.Restore(m.mark)
				m.status = fmt.Sprintf("回到帧 %d", m.mark.Frame)
			}
		}
	case TickMsg:
		if !m.paused && !m.sim.GameOver() {
			m.sim.TickN(m.speed)
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "场景 %s  帧 %d  阳光 %d  击杀 %d",
		m.scenario, m.sim.Frame(), m.sim.Sun(), m.sim.ZombiesKilled())
	if sp := m.sim.Spawner(); sp != nil {
		fmt.Fprintf(&b, "  波次 %d/%d (%s)", sp.CurrentWave()+1, sp.WaveCount(), sp.State())
	}
	b.WriteString("\n\n")

	width := (m.sim.Config().SpawnX + 100) / pxPerChar
	for row := 0; row < m.sim.Config().Rows(); row++ {
		b.WriteString(renderRow(m.sim, row, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.sim.GameOver() {
		if m.sim.Victory() {
			b.WriteString("== 胜利 ==\n")
		} else {
			b.WriteString("== 失败：僵尸进家了 ==\n")
		}
	}
	fmt.Fprintf(&b, "[%s] 速度 x%d  空格:暂停 s:单步 +/-:速度 m:标记 u:回放 q:退出\n",
		m.status, m.speed)
	return b.String()
}

// renderRow 把一行草坪渲染成字符带
// 植物用字母标记，僵尸用 Z（巨人 G、机械 M），炮弹用 o
func renderRow(s *sim.Simulator, row, width int) string {
	line := make([]rune, width)
	for i := range line {
		line[i] = '.'
	}

	for _, p := range s.Plants() {
		if !p.Alive || p.Row != row {
			continue
		}
		pos := int(s.Config().PlantX(p.Col)) / pxPerChar
		if pos >= 0 && pos < width {
			line[pos] = plantRune(p.Type)
		}
	}

	for _, pr := range s.Projectiles() {
		if !pr.Alive || pr.Row != row {
			continue
		}
		pos := int(pr.X) / pxPerChar
		if pos >= 0 && pos < width && line[pos] == '.' {
			line[pos] = 'o'
		}
	}

	for _, z := range s.Zombies() {
		if !z.Alive || z.Row != row {
			continue
		}
		pos := int(z.X) / pxPerChar
		if pos < 0 {
			pos = 0
		}
		if pos >= width {
			pos = width - 1
		}
		line[pos] = zombieRune(z.Type)
	}

	return fmt.Sprintf("%d|%s|", row, string(line))
}

func plantRune(pt types.PlantType) rune {
	switch pt {
	case types.PlantSunflower:
		return 'S'
	case types.PlantWallnut, types.PlantTallnut:
		return 'W'
	case types.PlantPumpkin:
		return 'Q'
	case types.PlantCobCannon:
		return 'C'
	case types.PlantCherryBomb, types.PlantJalapeno, types.PlantDoomShroom:
		return '*'
	case types.PlantPotatoMine:
		return '_'
	default:
		return 'P'
	}
}

func zombieRune(zt types.ZombieType) rune {
	switch {
	case zt.IsGargantuar():
		return 'G'
	case zt.IsMachine():
		return 'M'
	default:
		return 'Z'
	}
}

func main() {
	scenarioPath := flag.String("scenario", "", "场景配置文件路径，留空使用设置中的默认场景")
	statsDir := flag.String("stats", "", "属性表目录，留空使用内置默认值")
	sun := flag.Int("sun", 10000, "初始额外阳光")
	flag.Parse()

	// gdata 打开失败时设置管理器进入降级模式
	manager, err := gdata.Open(gdata.Config{AppName: "pvzbot"})
	if err != nil {
		log.Printf("[LawnViewer] 存储不可用，使用默认设置: %v", err)
		manager = nil
	}
	sm, err := game.NewSettingsManager(manager)
	if err != nil {
		log.Printf("[LawnViewer] 设置加载失败: %v", err)
	}
	settings := sm.GetSettings()

	path := *scenarioPath
	if path == "" {
		path = settings.DefaultScenario
	}

	scenario, err := config.LoadScenarioConfig(path)
	if err != nil {
		log.Fatalf("[LawnViewer] 场景加载失败: %v", err)
	}

	var stats *config.Stats
	if *statsDir != "" {
		stats, err = config.LoadStats(*statsDir)
		if err != nil {
			log.Fatalf("[LawnViewer] 属性表加载失败: %v", err)
		}
	}

	s, err := sim.NewSimulatorFromScenario(scenario, stats)
	if err != nil {
		log.Fatalf("[LawnViewer] 模拟器创建失败: %v", err)
	}
	s.AddSun(*sun)

	// 预置一条基础防线，打开即有内容可看
	for row := 0; row < s.Config().Rows(); row++ {
		_, _ = s.PlacePlant(types.PlantSunflower, row, 0)
		_, _ = s.PlacePlant(types.PlantPeashooter, row, 1)
		_, _ = s.PlacePlant(types.PlantWallnut, row, 7)
	}

	p := tea.NewProgram(initialModel(s, scenario.Name, settings.ViewerSpeed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
