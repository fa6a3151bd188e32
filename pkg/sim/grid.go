package sim

// cellKey 格子索引键
type cellKey struct {
	row, col int
}

// Grid 场地占用索引
// 每格分两层：底座层放普通植物，覆盖层放南瓜头
// 同层同格最多一个植物，两层可以共存
type Grid struct {
	rows, cols int
	base       map[cellKey]PlantID
	overlay    map[cellKey]PlantID
}

// NewGrid 创建空场地索引
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:    rows,
		cols:    cols,
		base:    make(map[cellKey]PlantID),
		overlay: make(map[cellKey]PlantID),
	}
}

// InBounds 判断行列坐标是否合法
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// BaseAt 返回底座层植物 ID，不存在返回 false
func (g *Grid) BaseAt(row, col int) (PlantID, bool) {
	id, ok := g.base[cellKey{row, col}]
	return id, ok
}

// OverlayAt 返回覆盖层植物 ID，不存在返回 false
func (g *Grid) OverlayAt(row, col int) (PlantID, bool) {
	id, ok := g.overlay[cellKey{row, col}]
	return id, ok
}

// PlaceBase 占用底座层
func (g *Grid) PlaceBase(row, col int, id PlantID) {
	g.base[cellKey{row, col}] = id
}

// PlaceOverlay 占用覆盖层
func (g *Grid) PlaceOverlay(row, col int, id PlantID) {
	g.overlay[cellKey{row, col}] = id
}

// Remove 从两层中移除指定植物
func (g *Grid) Remove(row, col int, id PlantID) {
	key := cellKey{row, col}
	if cur, ok := g.base[key]; ok && cur == id {
		delete(g.base, key)
	}
	if cur, ok := g.overlay[key]; ok && cur == id {
		delete(g.overlay, key)
	}
}

// Occupied 判断指定层是否已被占用
func (g *Grid) Occupied(row, col int, overlay bool) bool {
	key := cellKey{row, col}
	if overlay {
		_, ok := g.overlay[key]
		return ok
	}
	_, ok := g.base[key]
	return ok
}

// Clone 深拷贝场地索引
func (g *Grid) Clone() *Grid {
	ng := NewGrid(g.rows, g.cols)
	for k, v := range g.base {
		ng.base[k] = v
	}
	for k, v := range g.overlay {
		ng.overlay[k] = v
	}
	return ng
}
