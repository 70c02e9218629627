package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 全局显示设置
// 只保存窗口和调试相关的偏好，不保存任何对局进度
type GameSettings struct {
	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
	ShowDebug  bool `yaml:"showDebug"`  // 是否显示调试信息（F3 切换）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Fullscreen: false,
		ShowDebug:  false,
	}
}

// SettingsManager 设置管理器
// 负责显示设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"

	// SettingsAppName gdata 使用的应用名（决定存储目录）
	SettingsAppName = "pvcovid"
)

// OpenSettingsStorage 打开 gdata 存储
// 打开失败时返回 nil 并记录日志，调用方应以降级模式继续运行
func OpenSettingsStorage(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例（加载失败时使用默认设置）
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loadedSettings GameSettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// IsPersistent 设置是否能够持久化（gdata 可用）
func (sm *SettingsManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleDebug 切换调试信息显示，返回切换后的值
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) ToggleDebug() bool {
	sm.settings.ShowDebug = !sm.settings.ShowDebug
	return sm.settings.ShowDebug
}
