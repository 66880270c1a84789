package run

import (
	"time"

	"github.com/John-Robertt/SpellBee/internal/config"
	"github.com/John-Robertt/SpellBee/internal/domain"
)

// Observer 把“运行进度/阶段信息”从核心求解流程中解耦出来。
//
// 约束：
// - run 包只负责发事件，不做任何输出（避免污染 stdout 的 JSON 契约）。
// - 由 CLI 决定是否启用以及如何展示（非交互场景传 nil 即可）。
type Observer interface {
	// OnStart 在 Solve 开始时调用（应尽量早，保证用户第一时间看到输出）。
	OnStart(eff config.EffectiveConfig, dictPath string, p domain.Puzzle)
	// OnScanDone 在词典扫描结束时调用（用于打印命中数与耗时）。
	OnScanDone(matched int, dur time.Duration)
}
