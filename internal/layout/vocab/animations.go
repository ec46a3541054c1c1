package vocab

// ============================================================
// Named Animations
// ============================================================

// keyframes - тело @keyframes для каждой именованной анимации.
var keyframes = map[string]string{
	"float": "0%, 100% { transform: translateY(0); } 50% { transform: translateY(-6%); }",
	"pulse": "0%, 100% { opacity: 1; } 50% { opacity: 0.5; }",
	"spin":  "from { transform: rotate(0deg); } to { transform: rotate(360deg); }",
	"bounce": "0%, 100% { transform: translateY(-12%); animation-timing-function: cubic-bezier(0.8, 0, 1, 1); } " +
		"50% { transform: none; animation-timing-function: cubic-bezier(0, 0, 0.2, 1); }",
	"fade": "0%, 100% { opacity: 0; } 50% { opacity: 1; }",
	"sway": "0%, 100% { transform: rotate(-4deg); } 50% { transform: rotate(4deg); }",
}

// IsAnimation - name равно "none" или известной анимации.
func IsAnimation(name string) bool {
	if name == "none" {
		return true
	}
	_, ok := keyframes[name]
	return ok
}

// Keyframes возвращает тело @keyframes для name.
func Keyframes(name string) (string, bool) {
	body, ok := keyframes[name]
	return body, ok
}
