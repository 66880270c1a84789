package run

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/John-Robertt/SpellBee/internal/config"
	"github.com/John-Robertt/SpellBee/internal/domain"
)

type recordObserver struct {
	started  bool
	scanDone bool
	matched  int
}

func (o *recordObserver) OnStart(eff config.EffectiveConfig, dictPath string, p domain.Puzzle) {
	o.started = true
}

func (o *recordObserver) OnScanDone(matched int, dur time.Duration) {
	o.scanDone = true
	o.matched = matched
}

func writeDict(t *testing.T, dir string, lines string) string {
	t.Helper()
	path := filepath.Join(dir, "dictionary.txt")
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatalf("写入词典失败：%v", err)
	}
	return path
}

func mustPuzzle(t *testing.T, letters string) domain.Puzzle {
	t.Helper()
	pz, err := domain.ParsePuzzle(letters)
	if err != nil {
		t.Fatalf("解析字母失败：%v", err)
	}
	return pz
}

func TestSolve_EndToEnd(t *testing.T) {
	dictPath := writeDict(t, t.TempDir(), "GRAM\nGRAMMAR\nAT\nORGAN\norgan\n")
	eff := config.EffectiveConfig{MinWordLength: 4, CaseSensitive: false}
	pz := mustPuzzle(t, "GRAMNOT")

	obs := &recordObserver{}
	rr := Solve(eff, dictPath, pz, obs)

	if rr.ErrorCode != "" {
		t.Fatalf("不期望错误：%s: %s", rr.ErrorCode, rr.ErrorMsg)
	}
	want := []string{"GRAM", "GRAMMAR", "ORGAN", "organ"}
	if !reflect.DeepEqual(rr.Words, want) {
		t.Fatalf("期望 %v，实际 %v", want, rr.Words)
	}
	if rr.Count != len(want) {
		t.Fatalf("期望 count=%d，实际 %d", len(want), rr.Count)
	}
	if rr.Dictionary != dictPath {
		t.Fatalf("期望 dictionary=%q，实际 %q", dictPath, rr.Dictionary)
	}
	if rr.Letters != "GAMNORT" {
		t.Fatalf("期望 letters=%q，实际 %q", "GAMNORT", rr.Letters)
	}
	if rr.Required != "G" {
		t.Fatalf("期望 required=%q，实际 %q", "G", rr.Required)
	}
	if rr.StartedAt.IsZero() || rr.FinishedAt.Before(rr.StartedAt) {
		t.Fatalf("时间戳异常：%v .. %v", rr.StartedAt, rr.FinishedAt)
	}

	if !obs.started || !obs.scanDone {
		t.Fatalf("期望 observer 收到全部事件：started=%v scanDone=%v", obs.started, obs.scanDone)
	}
	if obs.matched != rr.Count {
		t.Fatalf("期望 observer matched=%d，实际 %d", rr.Count, obs.matched)
	}
}

func TestSolve_CaseSensitiveConfig(t *testing.T) {
	dictPath := writeDict(t, t.TempDir(), "ORGAN\norgan\n")
	eff := config.EffectiveConfig{MinWordLength: 4, CaseSensitive: true}

	rr := Solve(eff, dictPath, mustPuzzle(t, "GRAMNOT"), nil)
	if rr.ErrorCode != "" {
		t.Fatalf("不期望错误：%s: %s", rr.ErrorCode, rr.ErrorMsg)
	}
	want := []string{"ORGAN"}
	if !reflect.DeepEqual(rr.Words, want) {
		t.Fatalf("原样比较期望 %v，实际 %v", want, rr.Words)
	}
}

func TestSolve_DictNotFound(t *testing.T) {
	eff := config.EffectiveConfig{MinWordLength: 4}
	rr := Solve(eff, filepath.Join(t.TempDir(), "missing.txt"), mustPuzzle(t, "GRAMNOT"), nil)

	if rr.ErrorCode != domain.ErrCodeDictNotFound {
		t.Fatalf("期望 error_code=%q，实际 %q", domain.ErrCodeDictNotFound, rr.ErrorCode)
	}
	if rr.Count != 0 || len(rr.Words) != 0 {
		t.Fatalf("失败报告不应携带结果：count=%d words=%v", rr.Count, rr.Words)
	}
	if rr.Words == nil {
		t.Fatalf("期望 Words 归一为空切片")
	}
}

func TestSolve_NilObserver(t *testing.T) {
	dictPath := writeDict(t, t.TempDir(), "GRAM\n")
	eff := config.EffectiveConfig{MinWordLength: 4}

	// 非交互场景 obs 为 nil：不应 panic。
	rr := Solve(eff, dictPath, mustPuzzle(t, "GRAMNOT"), nil)
	if rr.ErrorCode != "" {
		t.Fatalf("不期望错误：%s: %s", rr.ErrorCode, rr.ErrorMsg)
	}
}
