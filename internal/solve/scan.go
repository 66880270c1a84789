package solve

import (
	"bufio"
	"io"
	"strings"

	"github.com/John-Robertt/SpellBee/internal/domain"
)

// Scan 对 source 做单遍逐行扫描，按输入顺序收集满足谜题约束的候选词。
//
// 约定（硬约束）：
// - 保持词典行序；不去重
// - 收集的是原样的词典行（FoldCase 只影响匹配，不改写输出）
// - 行两端空白（含 Windows 词典的尾部 \r）在匹配前去除
// - 读取失败 => 返回已收集的部分结果 + 错误；“词典不可读”与“空词典”
//   在这里是可区分的（见 DESIGN.md 的决定）
//
// 返回 count 与 words 两者，count == len(words)（冗余但属于对外契约）。
func Scan(source io.Reader, p domain.Puzzle, rules Rules) (int, []string, error) {
	words := make([]string, 0, 64)

	sc := bufio.NewScanner(source)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if IsValid(w, p, rules) {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return len(words), words, err
	}
	return len(words), words, nil
}
