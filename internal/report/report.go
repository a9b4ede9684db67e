// Package report 提供 nextloc 的输出能力。
// 支持 table 控制台格式和 JSON 格式，二者都只写入给定 writer。
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"nextloc/internal/model"
)

const ruleWidth = 60

// ManifestWarning 是根目录缺少 package.json 时的提示。
const ManifestWarning = "Warning: No package.json found. This might not be a Next.js project."

// PrintTable 使用表格展示扫描结果，末尾附带汇总信息。
func PrintTable(writer io.Writer, result model.ScanResult) error {
	rule := strings.Repeat("-", ruleWidth)

	if !result.ManifestFound {
		if _, err := fmt.Fprintln(writer, ManifestWarning); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Analyzing Next.js project: %s\n%s\n", result.ScannedPath, rule); err != nil {
		return err
	}

	var table bytes.Buffer
	tw := tabwriter.NewWriter(&table, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "Extension\tFiles\tTotal Lines\tCode Lines\tBlank Lines"); err != nil {
		return err
	}
	for _, item := range result.Extensions {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%d\t%d\t%d\t%d\n",
			item.Extension,
			item.Files,
			item.Metrics.Total,
			item.Metrics.Code,
			item.Metrics.Blank,
		); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(
		tw,
		"TOTAL\t%d\t%d\t%d\t%d\n",
		result.Total.Files,
		result.Total.Total,
		result.Total.Code,
		result.Total.Blank,
	); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// 表头、明细与 TOTAL 同属一个 tabwriter 块以保证列对齐，分隔线在对齐之后插入。
	rows := strings.Split(strings.TrimSuffix(table.String(), "\n"), "\n")
	last := len(rows) - 1
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, rows[0], rule)
	lines = append(lines, rows[1:last]...)
	lines = append(lines, rule, rows[last])
	if _, err := fmt.Fprintln(writer, strings.Join(lines, "\n")); err != nil {
		return err
	}

	return printSummary(writer, result.Total)
}

// printSummary 输出汇总块；没有文件时不计算平均值。
func printSummary(writer io.Writer, total model.TotalMetrics) error {
	lines := []string{
		"",
		"Summary:",
		fmt.Sprintf("  Total files analyzed: %d", total.Files),
		fmt.Sprintf("  Total lines: %s", humanize.Comma(total.Total)),
		fmt.Sprintf("  Code lines: %s", humanize.Comma(total.Code)),
		fmt.Sprintf("  Blank lines: %s", humanize.Comma(total.Blank)),
	}
	if avg, ok := total.AverageLines(); ok {
		lines = append(lines, fmt.Sprintf("  Average lines per file: %.1f", avg))
	} else {
		lines = append(lines, "  No files found")
	}

	_, err := fmt.Fprintln(writer, strings.Join(lines, "\n"))
	return err
}

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.ScanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
