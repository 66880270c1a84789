// Package solve 是核心：匹配谓词 + 词典单遍扫描。
//
// 该包不做任何 I/O 决策（文件定位、提示、保存都在上层），只消费
// io.Reader 与不可变的 Puzzle/Rules。
package solve

import (
	"strings"
	"unicode/utf8"

	"github.com/John-Robertt/SpellBee/internal/domain"
)

// DefaultMinLength 是最短接受长度的内置默认值（配置未指定时）。
const DefaultMinLength = 4

// Rules 是匹配规则的不可变配置（显式传入，而不是包级全局；保证核心可脱离
// 文件系统与终端单测）。
type Rules struct {
	// MinLength 是最短接受长度，按 rune 计数。
	MinLength int

	// FoldCase 为 true 时，候选词在匹配前统一转大写。
	//
	// 背景：输入的字母总是大写化，而词典行原样比较——小写词典在原始行为下
	// 永远不会命中。默认开启折叠来消除这个不对称；配置 case_sensitive=true
	// 可恢复原样比较。
	FoldCase bool
}

// DefaultRules 返回内置默认规则。
func DefaultRules() Rules {
	return Rules{MinLength: DefaultMinLength, FoldCase: true}
}

// IsValid 判断一个候选词是否满足谜题约束。
//
// 规则按代价从低到高依次短路：
// 1) 长度 < MinLength => 拒绝（空串在这里被拒绝）
// 2) 不含必含字母 => 拒绝（单字符包含判断）
// 3) 任一字母不在字母集合内 => 拒绝（全词扫描，最贵放最后）
//
// 纯函数：无副作用、无错误分支。
func IsValid(word string, p domain.Puzzle, rules Rules) bool {
	if utf8.RuneCountInString(word) < rules.MinLength {
		return false
	}
	if rules.FoldCase {
		word = strings.ToUpper(word)
	}
	if !strings.ContainsRune(word, p.Required) {
		return false
	}
	for _, r := range word {
		if !p.Contains(r) {
			return false
		}
	}
	return true
}
