package scanner

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/CodMac/java-autotemplate/logger"
	gitignore "github.com/sabhiram/go-gitignore"
)

// Options 控制源文件发现
type Options struct {
	Extension      string   // 只收集此后缀的文件, 例如 ".java"
	IgnorePatterns []string // gitignore 语法, 与根目录下的 .gitignore 合并
	MaxFileSizeKB  int      // 0 表示不限制
}

// loadIgnore 合并默认规则与 root/.gitignore
func loadIgnore(root string, patterns []string, log logger.Logger) *gitignore.GitIgnore {
	lines := append([]string(nil), patterns...)

	content, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err == nil {
		for _, line := range bytes.Split(content, []byte{'\n'}) {
			line = bytes.TrimRight(line, "\r")
			if len(line) > 0 && !bytes.HasPrefix(line, []byte{'#'}) {
				lines = append(lines, string(line))
			}
		}
	} else if !os.IsNotExist(err) {
		log.Warn("failed to read .gitignore: %v", err)
	}

	return gitignore.CompileIgnoreLines(lines...)
}

// DiscoverFiles 递归查找 root 下需要分析的源文件, 结果按路径排序。
// root 为单个文件时直接返回该文件。
func DiscoverFiles(root string, opts Options, log logger.Logger) ([]string, error) {
	if log == nil {
		log = logger.NewNop()
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	ignore := loadIgnore(root, opts.IgnorePatterns, log)
	maxBytes := int64(opts.MaxFileSizeKB) * 1024

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.Warn("error accessing %s: %v", path, err)
			return nil // 继续扫描其他文件
		}
		if path == root {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			log.Warn("failed to get relative path of %s: %v", path, err)
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			// 整个目录被忽略时直接跳过
			if ignore.MatchesPath(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != opts.Extension || ignore.MatchesPath(relPath) {
			return nil
		}

		if maxBytes > 0 {
			fi, err := d.Info()
			if err != nil {
				log.Warn("failed to stat %s: %v", path, err)
				return nil
			}
			if fi.Size() > maxBytes {
				log.Debug("skipping large file %s (%d bytes)", relPath, fi.Size())
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
