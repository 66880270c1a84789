package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/John-Robertt/SpellBee/internal/app/run"
	"github.com/John-Robertt/SpellBee/internal/config"
	"github.com/John-Robertt/SpellBee/internal/domain"
	"github.com/John-Robertt/SpellBee/internal/infra/httpx"
	"github.com/John-Robertt/SpellBee/internal/puzzle"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		// 无参运行即原始交互流程（solve 是默认命令）。
		if code := solveCmd(); code != 0 {
			os.Exit(code)
		}
		return
	}
	if isHelp(args[0]) {
		printUsage()
		return
	}

	switch args[0] {
	case "solve":
		if code := solveCmd(); code != 0 {
			os.Exit(code)
		}
	case "fetch":
		if code := fetchCmd(args[1:]); code != 0 {
			os.Exit(code)
		}
	default:
		fmt.Fprintf(os.Stderr, "未知命令：%q\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
}

// solveCmd 走完整的交互求解流程：
// 词典文件名（回车取默认，失败重试）→ 字母行 → 扫描 → 保存/打印/告别。
//
// stdout 契约：stdout 是 TTY 时全程人类可读；否则 stdout 必须且仅输出
// 一个 SolveReport JSON，提示与过程信息全部走 stderr（便于脚本化使用）。
func solveCmd() int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取当前目录失败：%v\n", err)
		return 1
	}

	eff, err := config.LoadEffective(cwd)
	if err != nil {
		emitReport(reportForConfigError(err))
		return 1
	}

	promptW, interactive := pickPromptWriter()
	in := bufio.NewReader(os.Stdin)

	dictPath, err := promptDictionary(in, promptW, eff.Dictionary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取输入失败：%v\n", err)
		return 1
	}

	pz, err := promptPuzzle(in, promptW)
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取输入失败：%v\n", err)
		return 1
	}

	var obs run.Observer
	if interactive {
		obs = newSolveUI(promptW)
	}

	rr := run.Solve(eff, dictPath, pz, obs)

	if rr.ErrorCode != "" {
		emitReport(rr)
		return 1
	}

	if isTTY(os.Stdout) {
		// 交互收尾沿用原始流程：保存 → 打印 → 告别；结束语固定输出。
		if code := epilogue(in, promptW, rr); code != 0 {
			return code
		}
		return 0
	}

	emitReport(rr)
	return 0
}

// fetchCmd 抓取谜题页面并输出今日字母（必含字母在前）。
// 输出可直接粘贴进 solve 的字母提示。
func fetchCmd(args []string) int {
	for _, a := range args {
		if isHelp(a) {
			printFetchUsage()
			return 0
		}
	}
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "参数错误：最多一个 url\n\n")
		printFetchUsage()
		return 2
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取当前目录失败：%v\n", err)
		return 1
	}
	eff, err := config.LoadEffective(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	pageURL := eff.FetchURL
	if len(args) == 1 {
		pageURL = args[0]
	}

	client, err := httpx.NewClient(eff.ProxyURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s：proxy.url 无效：%v\n", domain.ErrCodeConfigInvalid, err)
		return 1
	}

	html, err := puzzle.Fetch(context.Background(), client, pageURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s：抓取谜题页面失败：%v\n", domain.ErrCodeFetchFailed, err)
		return 1
	}

	letters, err := puzzle.Parse(html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s：解析谜题页面失败：%v\n", domain.ErrCodeParseFailed, err)
		return 1
	}

	// 借 ParsePuzzle 得到规范展示形态（必含字母在前，其余字典序）。
	pz, err := domain.ParsePuzzle(letters)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s：页面字母无效：%v\n", domain.ErrCodeParseFailed, err)
		return 1
	}

	if isTTY(os.Stdout) {
		fmt.Fprintf(os.Stdout, "今日字母：%s（必含 %c）\n", pz.String(), pz.Required)
		return 0
	}

	enc := json.NewEncoder(os.Stdout)
	_ = enc.Encode(struct {
		Letters  string `json:"letters"`
		Required string `json:"required"`
	}{Letters: pz.String(), Required: string(pz.Required)})
	return 0
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func printUsage() {
	fmt.Fprint(os.Stdout, `用法：
  spellbee [solve]       交互式求解（默认命令）
  spellbee fetch [url]   抓取谜题页面并输出今日字母

命令：
  solve  依次询问词典文件名与字母，然后扫描词典输出全部可行单词
  fetch  从谜题页面提取今日字母（默认 NYT Spelling Bee 页面）

使用 "spellbee fetch --help" 查看详细说明。
`)
}

func printFetchUsage() {
	fmt.Fprint(os.Stdout, `用法：
  spellbee fetch [url]

参数：
  url         谜题页面地址（未指定则读配置 fetch_url；最终默认 NYT 页面）
  -h, --help  显示帮助

输出：今日字母（必含字母在前），可直接粘贴进 solve 的字母提示。
stdout 非 TTY 时输出 JSON：{"letters": "...", "required": "..."}
`)
}

func emitReport(rr domain.SolveReport) {
	if isTTY(os.Stdout) {
		// TTY 下只有错误路径走到这里（成功路径由交互收尾负责输出）。
		fmt.Fprintf(os.Stderr, "%s: %s\n", rr.ErrorCode, rr.ErrorMsg)
		return
	}

	// stdout 非 TTY：stdout 必须且仅输出一个 SolveReport JSON（错误摘要走 stderr）。
	enc := json.NewEncoder(os.Stdout)
	_ = enc.Encode(rr)
	if rr.ErrorCode != "" {
		fmt.Fprintf(os.Stderr, "%s: %s\n", rr.ErrorCode, rr.ErrorMsg)
	}
}

func reportForConfigError(err error) domain.SolveReport {
	now := time.Now().UTC()
	rr := domain.SolveReport{
		StartedAt:  now,
		FinishedAt: now,
		ErrorCode:  config.Code(err),
		ErrorMsg:   err.Error(),
	}
	if rr.ErrorCode == "" {
		rr.ErrorCode = domain.ErrCodeConfigInvalid
	}
	rr.Finalize()
	return rr
}

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func pickPromptWriter() (io.Writer, bool) {
	// 提示输出只在交互终端走 stdout；stdout 被重定向时退到 stderr
	// （不污染 stdout 的 JSON 契约，脚本仍可通过管道喂入答案）。
	if isTTY(os.Stdout) {
		return os.Stdout, true
	}
	return os.Stderr, false
}
