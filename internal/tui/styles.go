package tui

import "github.com/charmbracelet/lipgloss"

var (
	// 颜色定义
	primaryColor = lipgloss.Color("#007AFF")
	successColor = lipgloss.Color("#34C759")
	dangerColor  = lipgloss.Color("#FF3B30")
	warningColor = lipgloss.Color("#FF9500")
	subtleColor  = lipgloss.Color("#8E8E93")
	borderColor  = lipgloss.Color("#E5E5EA")

	// 标题样式
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	// 帮助文本样式
	helpStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Padding(0, 1)

	// 说明文字样式
	infoStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	// 本地模板标记
	localStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	// 命中模板的路径
	targetStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// 错误信息样式
	errorStyle = lipgloss.NewStyle().
			Foreground(dangerColor).
			Bold(true)

	// 面板边框样式
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
)
