package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ErrCodeInvalid 表示配置文件无法读取/解析，或字段不合法。
	ErrCodeInvalid = "config_invalid"
)

const (
	// DefaultDictionary 是词典文件名的内置默认值（交互时回车直接采用）。
	DefaultDictionary = "dictionary.txt"
	// DefaultMinWordLength 是最短接受长度的内置默认值。
	DefaultMinWordLength = 4
	// DefaultFetchURL 是 fetch 子命令默认抓取的谜题页面。
	DefaultFetchURL = "https://www.nytimes.com/puzzles/spelling-bee"
)

// FileConfig 对应 spellbee.json 的解析结构。文件整体可选：缺失即全默认。
type FileConfig struct {
	Dictionary    string       `json:"dictionary"`
	MinWordLength int          `json:"min_word_length"`
	CaseSensitive *bool        `json:"case_sensitive"`
	FetchURL      string       `json:"fetch_url"`
	Proxy         *ProxyConfig `json:"proxy"`
}

type ProxyConfig struct {
	URL string `json:"url"`
}

// EffectiveConfig 是合并并做最小规范化后的最终配置（实现层直接消费，
// 不再做二次默认/范围判断）。
type EffectiveConfig struct {
	// Dictionary 是词典文件名默认值；交互阶段用户仍可逐次覆盖。
	Dictionary string

	MinWordLength int

	// CaseSensitive=true 恢复“词典行原样比较”的行为（默认折叠大小写）。
	CaseSensitive bool

	FetchURL string
	ProxyURL string
}

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s：配置文件 %q 无效：%v", e.Code, e.Path, e.Err)
	}
	return fmt.Sprintf("%s：配置文件 %q 无效", e.Code, e.Path)
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// LoadEffective 读取 <cwd>/spellbee.json（可选）并与内置默认值合并。
//
// 规则（固定）：
// - 文件不存在 => 全部采用默认值，不算错误
// - 文件存在但无法解析/字段不合法 => *Error（error_code=config_invalid）
// - min_word_length 超出 [1, 16] 截断；0 表示未指定
func LoadEffective(cwd string) (EffectiveConfig, error) {
	cfgPath := filepath.Join(cwd, "spellbee.json")

	fc, exists, err := readFileConfig(cfgPath)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
	}
	_ = exists // 不存在也不报错

	return merge(fc, cfgPath)
}

func merge(fc FileConfig, cfgPath string) (EffectiveConfig, error) {
	dictionary := strings.TrimSpace(fc.Dictionary)
	if dictionary == "" {
		dictionary = DefaultDictionary
	}

	minLen := fc.MinWordLength
	if minLen == 0 {
		minLen = DefaultMinWordLength
	}
	if minLen < 1 {
		minLen = 1
	}
	if minLen > 16 {
		minLen = 16
	}

	caseSensitive := false
	if fc.CaseSensitive != nil {
		caseSensitive = *fc.CaseSensitive
	}

	fetchURL := strings.TrimSpace(fc.FetchURL)
	if fetchURL == "" {
		fetchURL = DefaultFetchURL
	}
	if u, err := url.Parse(fetchURL); err != nil || u.Scheme == "" || u.Host == "" {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: fmt.Errorf("fetch_url 无效：%q", fetchURL)}
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: fmt.Errorf("fetch_url 必须是 http/https：%q", fetchURL)}
	}

	proxyURL := ""
	if fc.Proxy != nil {
		proxyURL = strings.TrimSpace(fc.Proxy.URL)
	}
	if proxyURL != "" {
		if _, err := url.Parse(proxyURL); err != nil {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: fmt.Errorf("proxy.url 无效：%w", err)}
		}
	}

	return EffectiveConfig{
		Dictionary:    dictionary,
		MinWordLength: minLen,
		CaseSensitive: caseSensitive,
		FetchURL:      fetchURL,
		ProxyURL:      proxyURL,
	}, nil
}

// readFileConfig 读取并解析 JSON 配置文件。
// 返回值 exists 表示该文件是否存在（不存在不算错误）。
func readFileConfig(path string) (fc FileConfig, exists bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, false, nil
		}
		return FileConfig{}, false, err
	}
	if err := json.Unmarshal(b, &fc); err != nil {
		return FileConfig{}, true, err
	}
	return fc, true, nil
}
