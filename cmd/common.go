package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/add-any-file/internal/config"
	"github.com/YangQing-Lin/add-any-file/internal/i18n"
	"github.com/YangQing-Lin/add-any-file/internal/logger"
	"github.com/YangQing-Lin/add-any-file/internal/portable"
	"github.com/YangQing-Lin/add-any-file/internal/project"
	"github.com/YangQing-Lin/add-any-file/internal/settings"
	"github.com/YangQing-Lin/add-any-file/internal/template"
	"github.com/YangQing-Lin/add-any-file/internal/utils"
)

// environment 一次命令执行所需的解析环境
type environment struct {
	ctx      context.Context
	dir      string
	cfg      *config.Config
	project  *project.Info
	resolver *template.Resolver
}

// newEnvironment 按 --root/--namespace/--templates 与配置文件构建解析环境，dir 为新文件所在目录
func newEnvironment(cmd *cobra.Command, dir string) (*environment, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("解析目录失败: %w", err)
	}

	var info *project.Info
	if projectRoot != "" {
		info, err = project.Load(projectRoot)
	} else {
		info, err = project.Discover(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("读取项目信息失败: %w", err)
	}

	sm, err := settings.NewManager()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(info.Root, sm.Get())
	if err != nil {
		return nil, err
	}
	i18n.SetLanguage(cfg.Language)

	level := logger.ParseLevel(cfg.LogLevel)
	if verbose {
		level = logger.DebugLevel
	}
	log := logger.New(&logger.Config{
		Level:  level,
		Output: cmd.ErrOrStderr(),
		JSON:   cfg.LogFormat == "json",
	})
	logger.SetDefault(log)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.ContextWithLogger(ctx, log)

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("environment ready",
		"root", info.Root,
		"settings", sm.Path(),
		"project_file", info.ProjectFile,
		"config", cfg.File,
		"templates", catalog.Source(),
		"count", catalog.Len())

	return &environment{
		ctx:      ctx,
		dir:      dir,
		cfg:      cfg,
		project:  info,
		resolver: template.NewResolver(catalog, cfg.ResolverOptions()),
	}, nil
}

// loadCatalog 模板目录优先级：--templates > 配置 > 程序目录下的 Templates > 内置模板。
// 显式指定的目录必须存在，只有程序目录下的 Templates 缺失时才回退到内置模板。
func loadCatalog(cfg *config.Config) (*template.Catalog, error) {
	dir := templatesDir
	if dir == "" {
		dir = cfg.TemplatesDir
	}
	if dir != "" {
		return template.LoadCatalog(dir)
	}

	exeTemplates, err := portable.TemplatesDir()
	if err != nil || !utils.FileExists(exeTemplates) {
		return template.BuiltinCatalog()
	}
	return template.LoadCatalog(exeTemplates)
}

// request 当前项目的解析请求模板（不含文件路径）
func (e *environment) request() template.Request {
	ns := namespace
	if ns == "" {
		ns = e.cfg.Namespace
	}
	if ns == "" {
		ns = e.project.RootNamespace
	}
	return template.Request{
		ProjectRoot:   e.project.Root,
		RootNamespace: ns,
	}
}
