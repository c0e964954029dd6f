package processor

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/CodMac/java-autotemplate/collector"
	"github.com/CodMac/java-autotemplate/core"
	"github.com/CodMac/java-autotemplate/extractor"
	"github.com/CodMac/java-autotemplate/logger"
	"github.com/CodMac/java-autotemplate/model"
	"github.com/CodMac/java-autotemplate/parser"
	lru "github.com/hashicorp/golang-lru/v2"
	sitter "github.com/tree-sitter/go-tree-sitter"
	"golang.org/x/sync/errgroup"
)

// FileProcessor 负责并发处理文件列表，并聚合所有编译出的模板。
type FileProcessor struct {
	Language  model.Language
	Workers   int // 并发协程数量
	CacheSize int // 两阶段之间缓存的语法树数量
	log       logger.Logger
}

// NewFileProcessor 创建 FileProcessor 实例
func NewFileProcessor(lang model.Language, workers, cacheSize int, log logger.Logger) *FileProcessor {
	if workers <= 0 {
		workers = 4 // 默认并发数
	}
	if cacheSize <= 0 {
		cacheSize = 256
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &FileProcessor{
		Language:  lang,
		Workers:   workers,
		CacheSize: cacheSize,
		log:       log,
	}
}

// parsedFile 是缓存中的一项, 被淘汰时释放语法树并解除 FileContext 对它的引用
type parsedFile struct {
	tree *sitter.Tree
	fc   *core.FileContext
}

// ProcessFiles 实现了两阶段处理逻辑。单个文件的失败只记录日志并跳过。
func (fp *FileProcessor) ProcessFiles(ctx context.Context, filePaths []string) ([]*model.TemplateSpec, error) {
	if len(filePaths) == 0 {
		return nil, nil
	}

	resolver, err := core.GetSymbolResolver(fp.Language)
	if err != nil {
		return nil, err
	}
	col, err := collector.GetCollector(fp.Language)
	if err != nil {
		return nil, err
	}
	ext, err := extractor.GetExtractor(fp.Language)
	if err != nil {
		return nil, err
	}

	cache, err := lru.NewWithEvict[string, *parsedFile](fp.CacheSize, func(_ string, pf *parsedFile) {
		pf.fc.DetachTree()
		pf.tree.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create parse cache: %w", err)
	}
	defer cache.Purge()

	gc := core.NewGlobalContext(resolver)
	filePaths = dedupe(filePaths)

	// --- 阶段 1: 收集定义 (Collect Definitions) ---
	fp.log.Info("phase 1: collecting definitions from %d files", len(filePaths))
	err = fp.runPhase(ctx, filePaths, func(filePath string) error {
		p, err := parser.NewParser(fp.Language)
		if err != nil {
			return err
		}
		defer p.Close()

		tree, source, err := p.ParseFile(filePath)
		if err != nil {
			fp.log.Warn("[P1] skipping %s: %v", filePath, err)
			return nil
		}

		fc, err := col.CollectDefinitions(tree.RootNode(), filePath, source)
		if err != nil {
			tree.Close()
			fp.log.Warn("[P1] failed to collect definitions in %s: %v", filePath, err)
			return nil
		}

		// 注册到全局上下文 (带锁)
		gc.RegisterFileContext(fc)
		cache.Add(filePath, &parsedFile{tree: tree, fc: fc})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("phase 1 (definition collection) failed: %w", err)
	}

	// --- 阶段 2: 提取模板 (Extract Templates) ---
	fp.log.Info("phase 2: extracting templates")
	var (
		mu    sync.Mutex
		specs []*model.TemplateSpec
	)
	err = fp.runPhase(ctx, filePaths, func(filePath string) error {
		fc, ok := gc.FileContext(filePath)
		if !ok {
			// 阶段 1 已经警告过
			return nil
		}

		// 阶段 2 只读缓存不写入, 因此不会有语法树在使用中被淘汰
		if _, cached := cache.Peek(filePath); !cached {
			release, err := fp.reparse(fc)
			if err != nil {
				fp.log.Warn("[P2] skipping %s: %v", filePath, err)
				return nil
			}
			defer release()
		}

		found, err := ext.Extract(filePath, gc)
		if err != nil {
			fp.log.Warn("[P2] failed to extract templates in %s: %v", filePath, err)
			return nil
		}
		for _, spec := range found {
			fp.log.Debug("[P2] %s_%s imports=%v", spec.Owner, spec.Name, spec.Imports)
		}

		mu.Lock()
		specs = append(specs, found...)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("phase 2 (template extraction) failed: %w", err)
	}

	sortSpecs(specs)
	fp.warnDuplicates(specs)
	return specs, nil
}

// runPhase 以 Workers 为上限并发执行 task; 只有上下文取消会中止整个阶段
func (fp *FileProcessor) runPhase(ctx context.Context, filePaths []string, task func(filePath string) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fp.Workers)

	for _, filePath := range filePaths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return task(filePath)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// reparse 为已被缓存淘汰的文件重新解析语法树, 返回释放函数
func (fp *FileProcessor) reparse(fc *core.FileContext) (func(), error) {
	p, err := parser.NewParser(fp.Language)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	tree, source, err := p.ParseFile(fc.FilePath)
	if err != nil {
		return nil, err
	}
	fc.AttachTree(tree.RootNode(), source)
	return func() {
		fc.DetachTree()
		tree.Close()
	}, nil
}

// dedupe 去掉重复路径, 同一文件只解析一次
func dedupe(filePaths []string) []string {
	seen := make(map[string]bool, len(filePaths))
	out := make([]string, 0, len(filePaths))
	for _, p := range filePaths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func sortSpecs(specs []*model.TemplateSpec) {
	sort.SliceStable(specs, func(i, j int) bool {
		a, b := specs[i].Location, specs[j].Location
		if a == nil || b == nil {
			return a != nil
		}
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.StartLine != b.StartLine {
			return a.StartLine < b.StartLine
		}
		return a.StartColumn < b.StartColumn
	})
}

func (fp *FileProcessor) warnDuplicates(specs []*model.TemplateSpec) {
	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		key := spec.Owner + "_" + spec.Name
		if seen[key] {
			fp.log.Warn("duplicate template %s", key)
		}
		seen[key] = true
	}
}
