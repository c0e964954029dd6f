package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/CodMac/java-autotemplate/config"
	"github.com/CodMac/java-autotemplate/logger"
	"github.com/CodMac/java-autotemplate/model"
	"github.com/CodMac/java-autotemplate/noisefilter"
	"github.com/CodMac/java-autotemplate/output"
	"github.com/CodMac/java-autotemplate/processor"
	"github.com/CodMac/java-autotemplate/scanner"

	// 导入语言实现，触发其 init() 注册 Tree-sitter 语言、Collector、Extractor 与 Resolver
	_ "github.com/CodMac/java-autotemplate/x/java"
)

var (
	inputPath  string
	configPath string
	outPath    string
	workers    int
	logLevel   string
)

func init() {
	// 命令行参数定义, 非零值覆盖配置文件
	flag.StringVar(&inputPath, "path", ".", "要扫描的源码目录或文件路径")
	flag.StringVar(&configPath, "config", "", "TOML 配置文件路径 (可选)")
	flag.StringVar(&outPath, "out", "-", "模板清单输出路径 (JSONL), '-' 表示标准输出")
	flag.IntVar(&workers, "workers", 0, "并发处理文件的协程数量 (默认取配置或 CPU 核心数)")
	flag.StringVar(&logLevel, "log-level", "", "日志级别: debug, info, warn, error")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. 配置与日志
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Process.Workers = workers
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := logger.NewLogger(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	// 2. 查找所有要分析的文件
	lang := model.LangJava
	filePaths, err := scanner.DiscoverFiles(inputPath, scanner.Options{
		Extension:      model.FileExtension(lang),
		IgnorePatterns: cfg.Scan.IgnorePatterns,
		MaxFileSizeKB:  cfg.Scan.MaxFileSizeKB,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to discover files: %w", err)
	}
	if len(filePaths) == 0 {
		log.Warn("no source files found under %s", inputPath)
	}

	log.Info("starting analysis on %d files with %d workers", len(filePaths), cfg.Process.Workers)

	// 3. 启动处理器, Ctrl-C 取消
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	proc := processor.NewFileProcessor(lang, cfg.Process.Workers, cfg.Process.ParseCacheSize, log)
	specs, err := proc.ProcessFiles(ctx, filePaths)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	// 4. 输出结果
	var filter noisefilter.NoiseFilter
	if cfg.Template.SkipImplicitImports {
		filter = noisefilter.GetNoiseFilter(lang)
	}
	n, err := output.ExportTemplates(outPath, specs, filter)
	if err != nil {
		return fmt.Errorf("failed to write templates: %w", err)
	}

	log.Info("analysis complete, wrote %d templates", n)
	return nil
}
