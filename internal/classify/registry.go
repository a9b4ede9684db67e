// Package classify 决定哪些目录需要跳过、哪些文件需要计数。
package classify

import (
	"path/filepath"
	"sort"
	"strings"

	"nextloc/internal/model"
)

// ignoredDirs 是不进入遍历的目录名，大小写敏感。
var ignoredDirs = map[string]struct{}{
	"node_modules":  {},
	".next":         {},
	".git":          {},
	"dist":          {},
	"build":         {},
	".vercel":       {},
	".env.local":    {},
	"coverage":      {},
	".nyc_output":   {},
	"__pycache__":   {},
	".pytest_cache": {},
	".DS_Store":     {},
}

// countedExtensions 按分组维护需要计数的后缀（小写，含点号）。
var countedExtensions = []Group{
	{Name: "JavaScript/TypeScript", Extensions: []string{".js", ".jsx", ".ts", ".tsx"}},
	{Name: "Styles", Extensions: []string{".css", ".scss", ".sass", ".less"}},
	{Name: "Config", Extensions: []string{".json", ".yml", ".yaml", ".env"}},
	{Name: "Content", Extensions: []string{".md", ".mdx", ".html"}},
}

// configFiles 是按完整文件名（小写）匹配的配置文件。
var configFiles = map[string]struct{}{
	"dockerfile":         {},
	"makefile":           {},
	"procfile":           {},
	"next.config.js":     {},
	"tailwind.config.js": {},
	"postcss.config.js":  {},
	"eslint.config.js":   {},
}

// Group 用于对外展示一组后缀。
type Group struct {
	Name       string
	Extensions []string
}

// Registry 持有目录过滤与文件分类所需的只读表。
type Registry struct {
	groupByExt map[string]string
}

// NewRegistry 基于内置表构建分类器，进程内构建一次即可。
func NewRegistry() *Registry {
	registry := &Registry{groupByExt: make(map[string]string)}
	for _, group := range countedExtensions {
		for _, ext := range group.Extensions {
			registry.groupByExt[ext] = group.Name
		}
	}
	return registry
}

// IgnoreDir 判断目录名是否需要整棵跳过。
func (r *Registry) IgnoreDir(name string) bool {
	_, ok := ignoredDirs[name]
	return ok
}

// ShouldCount 判断文件是否参与计数：先看后缀，再看完整文件名。
func (r *Registry) ShouldCount(path string) bool {
	if _, ok := r.groupByExt[extension(path)]; ok {
		return true
	}
	_, ok := configFiles[strings.ToLower(filepath.Base(path))]
	return ok
}

// ExtensionKey 返回聚合用的后缀键，无后缀时返回 model.NoExtension。
func (r *Registry) ExtensionKey(path string) string {
	if ext := extension(path); ext != "" {
		return ext
	}
	return model.NoExtension
}

// Groups 返回后缀分组清单，用于 extensions 子命令。
func (r *Registry) Groups() []Group {
	result := make([]Group, 0, len(countedExtensions))
	for _, group := range countedExtensions {
		extensions := append([]string(nil), group.Extensions...)
		sort.Strings(extensions)
		result = append(result, Group{Name: group.Name, Extensions: extensions})
	}
	return result
}

// ConfigFiles 返回按文件名匹配的配置文件清单（已排序）。
func (r *Registry) ConfigFiles() []string {
	return sortedKeys(configFiles)
}

// IgnoredDirs 返回被跳过的目录名清单（已排序）。
func (r *Registry) IgnoredDirs() []string {
	return sortedKeys(ignoredDirs)
}

// extension 取文件名最后一个点之后的部分（含点号）并转为小写。
// 单独的结尾点号视为无后缀。
func extension(path string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(path)))
	if ext == "." {
		return ""
	}
	return ext
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
