// Package sim 实现帧精确的战斗模拟器
// 1 帧 = 1 厘秒，所有更新完全确定，不含随机源与墙钟时间
package sim

import "errors"

// 模拟器操作的哨兵错误，调用方用 errors.Is 判别
var (
	// ErrInvalidPosition 行列坐标越界
	ErrInvalidPosition = errors.New("sim: position out of bounds")
	// ErrCellOccupied 目标格已有同层植物
	ErrCellOccupied = errors.New("sim: cell already occupied")
	// ErrInsufficientSun 阳光不足
	ErrInsufficientSun = errors.New("sim: insufficient sun")
	// ErrNoSuchEntity 目标实体不存在
	ErrNoSuchEntity = errors.New("sim: no such entity")
	// ErrUnknownType 属性表中没有该类型
	ErrUnknownType = errors.New("sim: unknown unit type")
	// ErrNoCobReady 没有处于就绪状态的玉米加农炮
	ErrNoCobReady = errors.New("sim: no cob cannon ready")
	// ErrGameOver 对局已结束，拒绝继续操作
	ErrGameOver = errors.New("sim: game is over")
)
