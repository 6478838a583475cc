package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/YangQing-Lin/add-any-file/internal/backup"
	"github.com/YangQing-Lin/add-any-file/internal/i18n"
	"github.com/YangQing-Lin/add-any-file/internal/template"
)

// Model 新建文件提示框：输入文件名，实时预览解析出的模板
type Model struct {
	ctx       context.Context
	resolver  *template.Resolver
	base      template.Request
	dir       string
	overwrite bool

	input     textinput.Model
	items     []template.Item
	created   []template.Item
	backups   map[string]string // 写入位置 -> 覆盖前的备份
	err       error
	cancelled bool
	width     int
}

// New 创建提示框模型，dir 为新文件所在目录
func New(ctx context.Context, resolver *template.Resolver, base template.Request, dir string, overwrite bool) Model {
	ti := textinput.New()
	ti.Placeholder = i18n.T("tui.placeholder")
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	return Model{
		ctx:       ctx,
		resolver:  resolver,
		base:      base,
		dir:       dir,
		overwrite: overwrite,
		input:     ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.refresh()
	}
	return m, cmd
}

// refresh 根据当前输入重新解析预览
func (m *Model) refresh() {
	m.err = nil
	m.items = nil

	names, err := template.ParseInput(m.input.Value())
	if err != nil {
		// 输入未完成（如引号未闭合）时不提示错误
		return
	}

	items, err := m.resolver.Plan(m.ctx, m.base, m.dir, names)
	if err != nil {
		m.err = err
		return
	}
	m.items = items
}

// submit 创建全部条目，出错时停留在提示框
func (m Model) submit() (tea.Model, tea.Cmd) {
	names, err := template.ParseInput(m.input.Value())
	if err != nil {
		m.err = err
		return m, nil
	}
	if len(names) == 0 {
		m.err = errors.New(i18n.T("file.none_requested"))
		return m, nil
	}

	items, err := m.resolver.Plan(m.ctx, m.base, m.dir, names)
	if err != nil {
		m.err = err
		return m, nil
	}

	for _, item := range items {
		// 上一次提交中已创建的条目不再重复写入
		if m.isCreated(item) {
			continue
		}
		backupPath, err := backup.Apply(m.base.ProjectRoot, item, m.overwrite)
		if backupPath != "" {
			if m.backups == nil {
				m.backups = map[string]string{}
			}
			m.backups[item.Target()] = backupPath
		}
		if err != nil {
			m.err = err
			m.items = items
			return m, nil
		}
		m.created = append(m.created, item)
	}
	return m, tea.Quit
}

func (m Model) isCreated(item template.Item) bool {
	for _, c := range m.created {
		if c.Target() == item.Target() {
			return true
		}
	}
	return false
}

// Created 已创建的条目
func (m Model) Created() []template.Item {
	return m.created
}

// Backup 覆盖 target 前保存的备份路径
func (m Model) Backup(target string) (string, bool) {
	p, ok := m.backups[target]
	return p, ok
}

// Cancelled 用户是否取消
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Err 最近一次错误
func (m Model) Err() error {
	return m.err
}
