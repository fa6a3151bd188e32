// Package game 提供对局层的动作定义与存档管理
package game

import (
	"fmt"

	"github.com/decker502/pvzbot/pkg/sim"
	"github.com/decker502/pvzbot/pkg/types"
)

// ActionType 决策动作的类型
type ActionType int

const (
	// ActionWait 本帧不做任何操作
	ActionWait ActionType = iota
	// ActionPlace 种植植物
	ActionPlace
	// ActionRemove 铲除植物
	ActionRemove
	// ActionFireCob 发射玉米加农炮
	ActionFireCob
)

// String 返回动作类型的字符串表示
func (a ActionType) String() string {
	switch a {
	case ActionWait:
		return "wait"
	case ActionPlace:
		return "place"
	case ActionRemove:
		return "remove"
	case ActionFireCob:
		return "fire_cob"
	default:
		return "unknown"
	}
}

// Action 一次决策动作
// 值类型，可直接比较与复制
type Action struct {
	Type    ActionType
	Plant   types.PlantType // ActionPlace 使用
	Row     int
	Col     int
	TargetX float64 // ActionFireCob 的落点
}

// Wait 构造等待动作
func Wait() Action {
	return Action{Type: ActionWait}
}

// Place 构造种植动作
func Place(plant types.PlantType, row, col int) Action {
	return Action{Type: ActionPlace, Plant: plant, Row: row, Col: col}
}

// Remove 构造铲除动作
func Remove(row, col int) Action {
	return Action{Type: ActionRemove, Row: row, Col: col}
}

// FireCob 构造开炮动作，row 为落点行
func FireCob(targetX float64, row int) Action {
	return Action{Type: ActionFireCob, Row: row, TargetX: targetX}
}

// Apply 在模拟器上执行动作
func (a Action) Apply(s *sim.Simulator) error {
	switch a.Type {
	case ActionWait:
		return nil
	case ActionPlace:
		_, err := s.PlacePlant(a.Plant, a.Row, a.Col)
		return err
	case ActionRemove:
		return s.RemovePlant(a.Row, a.Col)
	case ActionFireCob:
		return s.FireCob(a.TargetX, a.Row)
	default:
		return fmt.Errorf("unknown action type %d", a.Type)
	}
}

// String 返回动作的可读描述
func (a Action) String() string {
	switch a.Type {
	case ActionPlace:
		return fmt.Sprintf("place %s at (%d, %d)", a.Plant, a.Row, a.Col)
	case ActionRemove:
		return fmt.Sprintf("remove plant at (%d, %d)", a.Row, a.Col)
	case ActionFireCob:
		return fmt.Sprintf("fire cob at (row %d, x %.0f)", a.Row, a.TargetX)
	default:
		return "wait"
	}
}
