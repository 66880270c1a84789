package run

import (
	"fmt"
	"os"
	"time"

	"github.com/John-Robertt/SpellBee/internal/config"
	"github.com/John-Robertt/SpellBee/internal/dict"
	"github.com/John-Robertt/SpellBee/internal/domain"
	"github.com/John-Robertt/SpellBee/internal/solve"
)

// Solve 执行一次求解并返回对外稳定的 SolveReport。
//
// 错误统一“降级”为 report 的 error_code（dict_not_found / io_failed），
// 不产生异常退出路径；扫描本身是单线程单遍（见 solve.Scan）。
func Solve(eff config.EffectiveConfig, dictPath string, p domain.Puzzle, obs Observer) domain.SolveReport {
	started := time.Now().UTC()

	if obs != nil {
		obs.OnStart(eff, dictPath, p)
	}

	rr := domain.SolveReport{
		Dictionary: dictPath,
		Letters:    p.String(),
		Required:   string(p.Required),
		StartedAt:  started,
		Words:      []string{},
	}

	f, err := dict.Open(dictPath)
	if err != nil {
		if os.IsNotExist(err) {
			rr.ErrorCode = domain.ErrCodeDictNotFound
			rr.ErrorMsg = fmt.Sprintf("词典文件不存在：%q", dictPath)
		} else {
			rr.ErrorCode = domain.ErrCodeIOFailed
			rr.ErrorMsg = fmt.Sprintf("打开词典失败：%v", err)
		}
		rr.FinishedAt = time.Now().UTC()
		rr.Finalize()
		return rr
	}
	defer f.Close()

	rules := solve.Rules{
		MinLength: eff.MinWordLength,
		FoldCase:  !eff.CaseSensitive,
	}

	scanStarted := time.Now()
	count, words, err := solve.Scan(f, p, rules)
	if err != nil {
		rr.ErrorCode = domain.ErrCodeIOFailed
		rr.ErrorMsg = fmt.Sprintf("读取词典失败：%v", err)
	}
	rr.Words = words

	if obs != nil {
		obs.OnScanDone(count, time.Since(scanStarted))
	}

	rr.FinishedAt = time.Now().UTC()
	rr.Finalize()
	return rr
}
