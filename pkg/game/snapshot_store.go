package game

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"

	"github.com/decker502/pvzbot/pkg/sim"
	"github.com/quasilyte/gdata/v2"
)

// SnapshotStore 对局快照存档管理器
// 使用 gdata 跨平台存储，gob 序列化
// gdataManager 为 nil 时进入降级模式：保存为空操作，读取报不存在
type SnapshotStore struct {
	gdataManager *gdata.Manager
}

// 存储路径常量
const (
	snapshotObject = "battle_snapshots"
	indexProperty  = "index"
)

// NewSnapshotStore 创建快照存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewSnapshotStore(gdataManager *gdata.Manager) *SnapshotStore {
	if gdataManager == nil {
		log.Printf("[SnapshotStore] Warning: no storage backend, snapshots will not persist")
	}
	return &SnapshotStore{gdataManager: gdataManager}
}

// Save 保存命名快照
// 降级模式下为空操作，不报错
func (st *SnapshotStore) Save(name string, snap *sim.Snapshot) error {
	if st.gdataManager == nil {
		return nil
	}
	if name == "" {
		return fmt.Errorf("snapshot name is required")
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", name, err)
	}

	if err := st.gdataManager.SaveObjectProp(snapshotObject, name, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", name, err)
	}

	if err := st.addToIndex(name); err != nil {
		return err
	}

	log.Printf("[SnapshotStore] Snapshot %s saved (frame %d)", name, snap.Frame)
	return nil
}

// Load 读取命名快照
func (st *SnapshotStore) Load(name string) (*sim.Snapshot, error) {
	if st.gdataManager == nil {
		return nil, fmt.Errorf("snapshot %s not found: no storage backend", name)
	}

	if !st.gdataManager.ObjectPropExists(snapshotObject, name) {
		return nil, fmt.Errorf("snapshot %s not found", name)
	}

	data, err := st.gdataManager.LoadObjectProp(snapshotObject, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", name, err)
	}

	var snap sim.Snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", name, err)
	}
	return &snap, nil
}

// Exists 判断命名快照是否存在
func (st *SnapshotStore) Exists(name string) bool {
	if st.gdataManager == nil {
		return false
	}
	return st.gdataManager.ObjectPropExists(snapshotObject, name)
}

// List 返回全部已保存的快照名
func (st *SnapshotStore) List() ([]string, error) {
	if st.gdataManager == nil {
		return nil, nil
	}
	return st.loadIndex()
}

// loadIndex 读取快照名索引
func (st *SnapshotStore) loadIndex() ([]string, error) {
	if !st.gdataManager.ObjectPropExists(snapshotObject, indexProperty) {
		return nil, nil
	}
	data, err := st.gdataManager.LoadObjectProp(snapshotObject, indexProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot index: %w", err)
	}
	var names []string
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&names); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot index: %w", err)
	}
	return names, nil
}

// addToIndex 将快照名加入索引（幂等）
func (st *SnapshotStore) addToIndex(name string) error {
	names, err := st.loadIndex()
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return nil
		}
	}
	names = append(names, name)

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(names); err != nil {
		return fmt.Errorf("failed to encode snapshot index: %w", err)
	}
	if err := st.gdataManager.SaveObjectProp(snapshotObject, indexProperty, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save snapshot index: %w", err)
	}
	return nil
}
