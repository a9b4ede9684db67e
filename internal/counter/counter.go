// Package counter 统计单个文件的总行数、空白行与代码行。
package counter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"nextloc/internal/model"
)

// Count 流式读取 reader 并输出行级统计。
//
// 解码采用容错策略：UTF-8 BOM 会被去掉，带 BOM 的 UTF-16 会被转码，
// 非法 UTF-8 字节被直接丢弃，而不是让整个文件失败。
// 行结束符支持 \n、\r\n 与单独的 \r；结尾没有换行的非空片段也算一行。
func Count(reader io.Reader) (model.LineMetrics, error) {
	var metrics model.LineMetrics

	decoded := transform.NewReader(reader, unicode.BOMOverride(transform.Nop))
	bufferedReader := bufio.NewReader(decoded)

	for {
		chunk, err := bufferedReader.ReadString('\n')
		if errors.Is(err, io.EOF) && len(chunk) == 0 {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return metrics, err
		}

		chunk = strings.ToValidUTF8(chunk, "")
		chunk = strings.TrimSuffix(chunk, "\n")
		chunk = strings.TrimSuffix(chunk, "\r")
		for _, line := range strings.Split(chunk, "\r") {
			classifyLine(&metrics, line)
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	return metrics, nil
}

// CountFile 打开并统计一个文件，文件句柄在返回前关闭。
func CountFile(path string) (metrics model.LineMetrics, err error) {
	file, err := os.Open(path)
	if err != nil {
		return metrics, fmt.Errorf("open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close file: %w", closeErr)
		}
	}()

	metrics, err = Count(file)
	if err != nil {
		return model.LineMetrics{}, fmt.Errorf("read file: %w", err)
	}
	return metrics, nil
}

// classifyLine 处理完整的一行：Total 固定 +1，再按是否为空白归类。
func classifyLine(metrics *model.LineMetrics, line string) {
	metrics.Total++
	if strings.TrimSpace(line) == "" {
		metrics.Blank++
		return
	}
	metrics.Code++
}
