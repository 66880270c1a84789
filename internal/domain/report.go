package domain

import (
	"encoding/json"
	"time"
)

const (
	ErrCodeDictNotFound   = "dict_not_found"
	ErrCodeIOFailed       = "io_failed"
	ErrCodeLettersInvalid = "letters_invalid"
	ErrCodeFetchFailed    = "fetch_failed"
	ErrCodeParseFailed    = "parse_failed"
	ErrCodeConfigInvalid  = "config_invalid"
)

// SolveReport 是对外稳定输出（非 TTY 时 stdout 的唯一 JSON）的结构。
//
// 约束：words 保持词典行序；不去重；count == len(words)（冗余，但属于对外契约）。
type SolveReport struct {
	Dictionary string `json:"dictionary"`
	Letters    string `json:"letters"`
	Required   string `json:"required"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Count int      `json:"count"`
	Words []string `json:"words"`

	ErrorCode string `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`
}

// Finalize 做三件事：
// 1) 时间统一为 UTC（确保 JSON 为 RFC3339 且后缀 Z）
// 2) Words 为 nil 时归一为空切片（JSON 输出 [] 而不是 null）
// 3) Count 由 Words 计算得出（冗余字段以此为准）
func (r *SolveReport) Finalize() {
	r.StartedAt = r.StartedAt.UTC()
	r.FinishedAt = r.FinishedAt.UTC()

	if r.Words == nil {
		r.Words = []string{}
	}
	r.Count = len(r.Words)
}

// MarshalJSON 仅用于集中约束输出的稳定性（避免未来不小心引入非确定字段）。
// 当前只是透传 encoding/json 的默认行为。
func (r SolveReport) MarshalJSON() ([]byte, error) {
	type Alias SolveReport
	return json.Marshal(Alias(r))
}
