// Package puzzle 负责从谜题页面抓取并解析“今日字母”。
//
// 约束：
// - Fetch 只管网络；Parse 必须是纯函数（只依赖输入 html）
// - 不做缓存/限速（fetch 是一次性的便利功能，不在求解路径上）
package puzzle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Fetch 抓取谜题页面 HTML。
func Fetch(ctx context.Context, c *http.Client, pageURL string) ([]byte, error) {
	if c == nil {
		return nil, errors.New("http client 不能为空")
	}
	if strings.TrimSpace(pageURL) == "" {
		return nil, errors.New("pageURL 不能为空")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// gameData 对应页面内嵌脚本 window.gameData 中我们关心的字段。
type gameData struct {
	Today struct {
		CenterLetter string   `json:"centerLetter"`
		OuterLetters []string `json:"outerLetters"`
	} `json:"today"`
}

// Parse 从谜题页面 HTML 提取当日字母行：必含字母在前，全部大写。
//
// 页面把当日数据内嵌在 <script> 里：window.gameData = {...}。
// 解析策略：goquery 定位含 gameData 的脚本，截取首个 '{' 到最后一个 '}'
// 的 JSON 片段后解码 centerLetter / outerLetters。
//
// 先校验“是不是谜题页面”：脚本缺失或字段为空都按非预期页面处理
// （避免把错误页/拦截页当成成功解析）。
func Parse(html []byte) (string, error) {
	if len(html) == 0 {
		return "", errors.New("html 为空")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", err
	}

	raw := ""
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := s.Text()
		if strings.Contains(t, "window.gameData") {
			raw = t
			return false
		}
		return true
	})
	if raw == "" {
		return "", errors.New("未找到 gameData 脚本（疑似返回了非谜题页面内容）")
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", errors.New("gameData 脚本中未找到 JSON 片段")
	}

	var gd gameData
	if err := json.Unmarshal([]byte(raw[start:end+1]), &gd); err != nil {
		return "", fmt.Errorf("gameData 解析失败：%w", err)
	}

	center, ok := singleLetter(gd.Today.CenterLetter)
	if !ok {
		return "", fmt.Errorf("centerLetter 不是单个字母：%q", gd.Today.CenterLetter)
	}
	if len(gd.Today.OuterLetters) == 0 {
		return "", errors.New("outerLetters 为空")
	}

	var b strings.Builder
	b.WriteRune(unicode.ToUpper(center))
	for _, s := range gd.Today.OuterLetters {
		r, ok := singleLetter(s)
		if !ok {
			return "", fmt.Errorf("outerLetters 含非字母项：%q", s)
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String(), nil
}

func singleLetter(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return 0, false
	}
	return r, true
}
