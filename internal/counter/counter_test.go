package counter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextloc/internal/model"
)

// countText 是测试辅助函数，用于快速统计一段文本。
func countText(t *testing.T, content string) model.LineMetrics {
	t.Helper()

	metrics, err := Count(strings.NewReader(content))
	require.NoError(t, err)
	return metrics
}

func TestCountLineEndings(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    model.LineMetrics
	}{
		{name: "empty", content: "", want: model.LineMetrics{}},
		{name: "single unterminated", content: "a", want: model.LineMetrics{Total: 1, Code: 1}},
		{name: "single terminated", content: "a\n", want: model.LineMetrics{Total: 1, Code: 1}},
		{name: "only newline", content: "\n", want: model.LineMetrics{Total: 1, Blank: 1}},
		{name: "crlf", content: "a\r\n\r\nb\r\n", want: model.LineMetrics{Total: 3, Code: 2, Blank: 1}},
		{name: "lone cr", content: "a\rb\r\rc", want: model.LineMetrics{Total: 4, Code: 3, Blank: 1}},
		{name: "cr before crlf", content: "a\r\r\n", want: model.LineMetrics{Total: 2, Code: 1, Blank: 1}},
		{name: "whitespace lines", content: "  \n\t\nx\n   \t  ", want: model.LineMetrics{Total: 4, Code: 1, Blank: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, countText(t, tc.content))
		})
	}
}

func TestCountCodeIsTotalMinusBlank(t *testing.T) {
	content := strings.Join([]string{
		"import React from 'react'",
		"",
		"export default function App() {",
		"  return <div />",
		"}",
		"",
		"",
	}, "\n")

	metrics := countText(t, content)

	assert.Equal(t, int64(6), metrics.Total)
	assert.Equal(t, int64(2), metrics.Blank)
	assert.Equal(t, metrics.Total-metrics.Blank, metrics.Code)
}

func TestCountTolerantDecoding(t *testing.T) {
	// 非法 UTF-8 字节被丢弃，不会导致失败。
	metrics := countText(t, "ok\n\xff\xfe\xfd broken\n\x80\n")
	assert.Equal(t, model.LineMetrics{Total: 3, Code: 2, Blank: 1}, metrics)

	// 只含非法字节的行按空白行计。
	metrics = countText(t, "a\n\xff\xfe\n")
	assert.Equal(t, model.LineMetrics{Total: 2, Code: 1, Blank: 1}, metrics)

	// 合法的 U+FFFD 字符保留，按代码行计。
	metrics = countText(t, "\ufffd\n")
	assert.Equal(t, model.LineMetrics{Total: 1, Code: 1}, metrics)

	// UTF-8 BOM 被剥离后，仅含 BOM 的行视为空白。
	metrics = countText(t, "\xef\xbb\xbf\nbody\n")
	assert.Equal(t, model.LineMetrics{Total: 2, Code: 1, Blank: 1}, metrics)
}

func TestCountUTF16WithBOM(t *testing.T) {
	// "a\n\nb\n" 的 UTF-16LE 编码（带 BOM）。
	content := "\xff\xfea\x00\n\x00\n\x00b\x00\n\x00"

	metrics := countText(t, content)
	assert.Equal(t, model.LineMetrics{Total: 3, Code: 2, Blank: 1}, metrics)
}

func TestCountLongLine(t *testing.T) {
	content := strings.Repeat("x", 1<<20) + "\n" + strings.Repeat("y", 1<<18)

	metrics := countText(t, content)
	assert.Equal(t, model.LineMetrics{Total: 2, Code: 2}, metrics)
}

func TestCountFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.tsx")
	require.NoError(t, os.WriteFile(path, []byte("a\n\nb\n"), 0o644))

	metrics, err := CountFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.LineMetrics{Total: 3, Code: 2, Blank: 1}, metrics)
}

func TestCountFileMissing(t *testing.T) {
	metrics, err := CountFile(filepath.Join(t.TempDir(), "missing.js"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, model.LineMetrics{}, metrics)
}

func TestCountFileDirectory(t *testing.T) {
	_, err := CountFile(t.TempDir())
	require.Error(t, err)
}
