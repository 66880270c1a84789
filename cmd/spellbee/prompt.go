package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/John-Robertt/SpellBee/internal/app/run"
	"github.com/John-Robertt/SpellBee/internal/config"
	"github.com/John-Robertt/SpellBee/internal/dict"
	"github.com/John-Robertt/SpellBee/internal/domain"
	"github.com/John-Robertt/SpellBee/internal/infra/fsx"
)

// promptDictionary 获取词典文件名：回车采用默认值；路径不可读则重试。
//
// 注意：回车取默认时不做可读性检查——默认词典也可能缺失，这种情况交给
// 求解阶段报 dict_not_found（与“显式路径必须先可读”形成对比，两者都有测试）。
func promptDictionary(in *bufio.Reader, w io.Writer, def string) (string, error) {
	fmt.Fprintf(w, "请输入词典文件名（回车使用 %q）: ", def)
	for {
		line, err := readLine(in)
		if err != nil {
			return "", err
		}
		name := strings.TrimSpace(line)
		if name == "" {
			return def, nil
		}
		if dict.Readable(name) {
			return name, nil
		}
		fmt.Fprintf(w, "文件 %q 不存在或不可读，请重试: ", name)
	}
}

// promptPuzzle 获取字母行（首字母为必含字母），无效输入重试。
func promptPuzzle(in *bufio.Reader, w io.Writer) (domain.Puzzle, error) {
	fmt.Fprint(w, "请输入谜题字母（必含字母放在最前）: ")
	for {
		line, err := readLine(in)
		if err != nil {
			return domain.Puzzle{}, err
		}
		pz, perr := domain.ParsePuzzle(line)
		if perr != nil {
			fmt.Fprintf(w, "字母无效（%v），请重试: ", perr)
			continue
		}
		return pz, nil
	}
}

// promptYesNo 按原始约定判断：非空且首字符为 y/Y 即为“是”。
func promptYesNo(in *bufio.Reader, w io.Writer, prompt string) (bool, error) {
	fmt.Fprint(w, prompt)
	line, err := readLine(in)
	if err != nil {
		return false, err
	}
	line = strings.TrimSpace(line)
	return line != "" && (line[0] == 'y' || line[0] == 'Y'), nil
}

// epilogue 是求解后的交互收尾：保存 → 打印 → 告别；结束语固定输出。
func epilogue(in *bufio.Reader, w io.Writer, rr domain.SolveReport) int {
	defer fmt.Fprintln(w, "祝你愉快！")

	save, err := promptYesNo(in, w, fmt.Sprintf("找到 %d 个单词！是否保存到文件？(y/n): ", rr.Count))
	if err != nil {
		fmt.Fprintf(w, "读取输入失败：%v\n", err)
		return 1
	}

	if save {
		fmt.Fprint(w, "请输入输出文件名: ")
		line, err := readLine(in)
		if err != nil {
			fmt.Fprintf(w, "读取输入失败：%v\n", err)
			return 1
		}
		outPath := strings.TrimSpace(line)
		if outPath == "" {
			fmt.Fprintln(w, "文件名为空，已跳过保存。")
			return 0
		}
		if err := saveWords(outPath, rr.Words); err != nil {
			fmt.Fprintf(w, "保存失败：%v\n", err)
			return 1
		}
		fmt.Fprintf(w, "已保存：%s\n", outPath)
		return 0
	}

	printOut, err := promptYesNo(in, w, "是否直接打印？(y/n): ")
	if err != nil {
		fmt.Fprintf(w, "读取输入失败：%v\n", err)
		return 1
	}
	if printOut {
		for _, word := range rr.Words {
			fmt.Fprintln(w, word)
		}
		return 0
	}

	fmt.Fprintln(w, "好的，再见！")
	return 0
}

// saveWords 把结果按“一行一词、末尾换行”的格式原子写入 path（允许覆盖）。
func saveWords(path string, words []string) error {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	data := formatWords(words)
	return fsx.WriteFileAtomicReplace(dir, name, data)
}

func formatWords(words []string) []byte {
	if len(words) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(words, "\n") + "\n")
}

// readLine 读取一行（不含换行符）。EOF 时若已有内容则视为最后一行。
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var _ run.Observer = (*solveUI)(nil)

// solveUI 是交互终端的进度输出：run 层只发事件，CLI 决定如何展示。
type solveUI struct {
	w io.Writer
}

func newSolveUI(w io.Writer) *solveUI {
	return &solveUI{w: w}
}

func (u *solveUI) OnStart(eff config.EffectiveConfig, dictPath string, p domain.Puzzle) {
	fmt.Fprintf(u.w, "[%s] SpellBee solve\n", time.Now().Format("15:04:05"))
	fmt.Fprintln(u.w, "配置（生效）:")
	fmt.Fprintf(u.w, "  dictionary: %s\n", dictPath)
	fmt.Fprintf(u.w, "  letters: %s（必含 %c）\n", p.String(), p.Required)
	fmt.Fprintf(u.w, "  min_word_length: %d\n", eff.MinWordLength)
	fmt.Fprintf(u.w, "  case_sensitive: %s\n", onOff(eff.CaseSensitive))
}

func (u *solveUI) OnScanDone(matched int, dur time.Duration) {
	fmt.Fprintf(u.w, "扫描: matched=%d (%s)\n", matched, formatShortDuration(dur))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func formatShortDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
