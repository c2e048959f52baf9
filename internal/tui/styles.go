package tui

import "github.com/charmbracelet/lipgloss"

var (
	typedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FBF7F")).Bold(true)
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	targetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	bossStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	frozenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FB3E8"))
	playerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FB3E8")).Bold(true)
	effectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD166"))
	laserStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FBF7F"))
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	hudValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	healthStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FBF7F"))
	healthLowSt   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	shieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FB3E8"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD166")).Bold(true)
	overlayStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 3)
	optionStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	optionSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	correctStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FBF7F")).Bold(true)
	wrongStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	gameOverStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
)
