// Package dict 负责词典文件的定位与打开：一行一个候选词的纯文本文件。
package dict

import (
	"bufio"
	"io"
	"os"
)

// Readable 判断 path 是否指向一个存在且可读的普通文件。
//
// 这是交互阶段“重试直到路径可用”的判定谓词：目录、权限不足、不存在
// 都返回 false，由上层重新提示，而不是在打开词典时才失败。
func Readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// Open 打开词典文件；逐行消费交给 solve.Scan，调用方负责 Close。
func Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Load 一次性读入全部候选词行（小词典与测试场景；求解路径走 Open + Scan）。
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines := make([]string, 0, 128)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
