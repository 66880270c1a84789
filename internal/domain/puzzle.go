package domain

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Puzzle 是一局谜题的不可变输入：可用字母集合 + 必含字母。
//
// 约束：
// - Required 一定属于 Letters（按构造保证：它来自同一行输入的首字母）
// - 字母在解析时统一转大写；集合去重，顺序无意义
type Puzzle struct {
	Letters  map[rune]struct{}
	Required rune
}

// ParsePuzzle 解析用户输入的字母行：首字母为必含字母，其余为可用字母。
//
// 规则：
// - 全部字母统一转大写；重复无害（集合去重）
// - 空行 / 含非字母字符 => 失败（由上层的重试循环处理，而不是异常）
func ParsePuzzle(line string) (Puzzle, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Puzzle{}, fmt.Errorf("字母不能为空")
	}

	letters := make(map[rune]struct{}, len(line))
	required := rune(0)
	for _, r := range line {
		if !unicode.IsLetter(r) {
			return Puzzle{}, fmt.Errorf("包含非字母字符：%q", r)
		}
		u := unicode.ToUpper(r)
		if required == 0 {
			required = u
		}
		letters[u] = struct{}{}
	}

	return Puzzle{Letters: letters, Required: required}, nil
}

// Contains 判断某个（已大写化的）字母是否属于字母集合。
func (p Puzzle) Contains(r rune) bool {
	_, ok := p.Letters[r]
	return ok
}

// String 输出规范形态：必含字母在前，其余字母按字典序。
// 稳定输出便于展示、报告与测试（也是 fetch 子命令的输出格式）。
func (p Puzzle) String() string {
	rest := make([]rune, 0, len(p.Letters))
	for r := range p.Letters {
		if r == p.Required {
			continue
		}
		rest = append(rest, r)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })

	var b strings.Builder
	if p.Required != 0 {
		b.WriteRune(p.Required)
	}
	for _, r := range rest {
		b.WriteRune(r)
	}
	return b.String()
}
