// Package scanner 负责目录遍历、目录剪枝与按后缀聚合。
// 扫描严格单线程：每个文件读完并关闭后才处理下一个。
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"nextloc/internal/classify"
	"nextloc/internal/counter"
	"nextloc/internal/ctxlog"
	"nextloc/internal/model"
)

// ManifestFile 是项目根目录下用于提示性检查的清单文件。
const ManifestFile = "package.json"

// ErrInvalidRoot 表示扫描根路径不存在或不是目录。
var ErrInvalidRoot = errors.New("invalid project root")

// RootReason 描述根路径无效的原因。
type RootReason int

const (
	RootEmpty RootReason = iota
	RootMissing
	RootNotDirectory
	RootUnreadable
)

// RootError 是根路径校验失败时返回的错误，errors.Is(err, ErrInvalidRoot) 成立。
type RootError struct {
	Path   string
	Reason RootReason
	Err    error
}

func (e *RootError) Error() string {
	switch e.Reason {
	case RootEmpty:
		return "Path is empty."
	case RootMissing:
		return fmt.Sprintf("Path '%s' does not exist.", e.Path)
	case RootNotDirectory:
		return fmt.Sprintf("'%s' is not a directory.", e.Path)
	default:
		return fmt.Sprintf("Cannot access '%s': %v", e.Path, e.Err)
	}
}

func (e *RootError) Unwrap() error {
	return ErrInvalidRoot
}

// FileCounter 统计单个文件，默认实现为 counter.CountFile。
type FileCounter func(path string) (model.LineMetrics, error)

// Option 用于定制 Service。
type Option func(*Service)

// WithFileCounter 替换单文件统计函数。
func WithFileCounter(countFile FileCounter) Option {
	return func(s *Service) {
		s.countFile = countFile
	}
}

// Service 是扫描服务对象。
type Service struct {
	registry  *classify.Registry
	countFile FileCounter
}

// NewService 创建扫描服务。
func NewService(registry *classify.Registry, options ...Option) *Service {
	service := &Service{
		registry:  registry,
		countFile: counter.CountFile,
	}
	for _, option := range options {
		option(service)
	}
	return service
}

// ScanPath 校验根目录、遍历并聚合，返回按 Total 降序排列的结果。
// 单文件读取失败只记录，不会中断扫描。
func (s *Service) ScanPath(ctx context.Context, targetPath string) (model.ScanResult, error) {
	var result model.ScanResult

	root := targetPath
	if root == "" {
		return result, &RootError{Reason: RootEmpty}
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, &RootError{Path: root, Reason: RootMissing, Err: err}
		}
		return result, &RootError{Path: root, Reason: RootUnreadable, Err: err}
	}
	if !info.IsDir() {
		return result, &RootError{Path: root, Reason: RootNotDirectory}
	}

	result.ScannedPath = root
	result.ManifestFound = fileExists(filepath.Join(root, ManifestFile))
	result.Errors = make([]model.ReadError, 0)

	byExtension := make(map[string]*model.ExtensionMetrics)
	if err := s.walk(ctx, root, byExtension, &result); err != nil {
		return result, err
	}

	s.buildSummaries(byExtension, &result)
	return result, nil
}

// walk 深度优先遍历 root；被忽略的目录返回 filepath.SkipDir，整棵子树不会被读取。
func (s *Service) walk(ctx context.Context, root string, byExtension map[string]*model.ExtensionMetrics, result *model.ScanResult) error {
	logger := ctxlog.FromContext(ctx)

	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logger.Warn("skipping unreadable path", "path", path, "error", walkErr)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if path != root && s.registry.IgnoreDir(entry.Name()) {
				logger.Debug("pruning directory", "path", path)
				return filepath.SkipDir
			}
			logger.Debug("visiting directory", "path", path)
			return nil
		}

		if !isRegularFile(path, entry) || !s.registry.ShouldCount(path) {
			return nil
		}

		metrics, err := s.countFile(path)
		if err != nil {
			logger.Error("error reading file", "path", path, "error", err)
			result.Errors = append(result.Errors, model.ReadError{
				Path:  displayPath(root, path),
				Error: err.Error(),
			})
			return nil
		}

		// 空文件与读取失败的文件一样不计入聚合。
		if metrics.Total == 0 {
			return nil
		}

		key := s.registry.ExtensionKey(path)
		summary, ok := byExtension[key]
		if !ok {
			summary = &model.ExtensionMetrics{Extension: key}
			byExtension[key] = summary
		}
		summary.AddFile(metrics)
		return nil
	})
}

// buildSummaries 排序各后缀聚合并计算总计。
func (s *Service) buildSummaries(byExtension map[string]*model.ExtensionMetrics, result *model.ScanResult) {
	result.Extensions = make([]model.ExtensionMetrics, 0, len(byExtension))
	for _, item := range byExtension {
		result.Extensions = append(result.Extensions, *item)
	}

	sort.Slice(result.Extensions, func(i int, j int) bool {
		left, right := result.Extensions[i], result.Extensions[j]
		if left.Metrics.Total != right.Metrics.Total {
			return left.Metrics.Total > right.Metrics.Total
		}
		return left.Extension < right.Extension
	})

	result.Total = model.TotalMetrics{}
	for _, item := range result.Extensions {
		result.Total.AddExtension(item)
	}

	sort.Slice(result.Errors, func(i int, j int) bool {
		return result.Errors[i].Path < result.Errors[j].Path
	})
}

// isRegularFile 接受普通文件以及指向普通文件的符号链接，不跟随目录链接。
func isRegularFile(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func displayPath(root string, path string) string {
	relativePath, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(relativePath)
}
