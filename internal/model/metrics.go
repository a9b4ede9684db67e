// Package model 定义 nextloc 的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

// NoExtension 是无后缀文件的聚合键。
const NoExtension = "no_extension"

// LineMetrics 表示一组行级统计值。
//
// 注意：
// - Total 表示总行数（每行计 1）
// - Blank 为去掉首尾空白后为空的行
// - Code 恒等于 Total - Blank
type LineMetrics struct {
	Total int64 `json:"total"`
	Code  int64 `json:"code"`
	Blank int64 `json:"blank"`
}

// Add 将另一个统计结果叠加到当前对象。
func (m *LineMetrics) Add(other LineMetrics) {
	m.Total += other.Total
	m.Code += other.Code
	m.Blank += other.Blank
}

// ExtensionMetrics 表示某个后缀的聚合结果。
type ExtensionMetrics struct {
	Extension string      `json:"extension"`
	Files     int64       `json:"files"`
	Metrics   LineMetrics `json:"metrics"`
}

// AddFile 把单个文件的统计值计入该后缀。
func (m *ExtensionMetrics) AddFile(other LineMetrics) {
	m.Files++
	m.Metrics.Add(other)
}

// ReadError 记录单文件读取失败信息。
// 读取失败的文件不计入任何聚合，扫描继续进行。
type ReadError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// TotalMetrics 表示项目级总计信息。
type TotalMetrics struct {
	Files int64 `json:"files"`
	LineMetrics
}

// AddExtension 把一个后缀的聚合值累加到总计。
func (m *TotalMetrics) AddExtension(other ExtensionMetrics) {
	m.Files += other.Files
	m.LineMetrics.Add(other.Metrics)
}

// AverageLines 返回平均每文件行数，没有文件时 ok 为 false。
func (m TotalMetrics) AverageLines() (avg float64, ok bool) {
	if m.Files == 0 {
		return 0, false
	}
	return float64(m.Total) / float64(m.Files), true
}

// ScanResult 是一次分析的完整输出模型。
type ScanResult struct {
	ScannedPath   string             `json:"scanned_path"`
	ManifestFound bool               `json:"manifest_found"`
	Extensions    []ExtensionMetrics `json:"extensions"`
	Total         TotalMetrics       `json:"total"`
	Errors        []ReadError        `json:"errors"`
}
