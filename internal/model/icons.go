package model

// Centralized icons for the report and the interactive browser
const (
	IconPHP     = "🐘"
	IconJS      = "📜"
	IconCSS     = "🎨"
	IconRoot    = "📁"
	IconComment = "💬"
	IconDelete  = "🗑️"
	IconScan    = "🔍"
	IconStats   = "📊"
	IconWarn    = "⚠️"
	IconDone    = "✅"
	IconDead    = "✗" // Thin X (dead)
	IconOK      = " " // Space (OK - no icon to reduce noise)
)
