package platform

import (
	"runtime"
	"sort"
	"strings"
)

// IsMac reports whether we run on macOS (darwin).
func IsMac() bool {
	return runtime.GOOS == "darwin"
}

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"cmd":     "ctrl", // терминалы отдают command как ctrl
	"command": "ctrl",
	"⌘":       "ctrl",
	"alt":     "alt",
	"option":  "alt",
	"opt":     "alt",
	"⌥":       "alt",
	"shift":   "shift",
	"⇧":       "shift",
}

var modifierRank = map[string]int{"ctrl": 0, "alt": 1, "shift": 2}

var mainAliases = map[string]string{
	"escape": "esc",
	"return": "enter",
	" ":      "space",
	"del":    "delete",
}

// CanonicalKey приводит описание клавиши к виду tea.KeyMsg.String():
// модификаторы в порядке ctrl, alt, shift, затем основная клавиша в нижнем регистре.
func CanonicalKey(key string) string {
	if strings.TrimSpace(key) == "" {
		return ""
	}
	var mods, main []string
	for _, part := range strings.Split(key, "+") {
		if part == " " {
			main = append(main, "space")
			continue
		}
		p := strings.ToLower(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		if m, ok := modifierAliases[p]; ok {
			mods = append(mods, m)
			continue
		}
		if alias, ok := mainAliases[p]; ok {
			p = alias
		}
		main = append(main, p)
	}

	seen := make(map[string]bool, len(mods))
	uniq := mods[:0]
	for _, m := range mods {
		if !seen[m] {
			seen[m] = true
			uniq = append(uniq, m)
		}
	}
	sort.SliceStable(uniq, func(i, j int) bool { return modifierRank[uniq[i]] < modifierRank[uniq[j]] })

	return strings.Join(append(uniq, main...), "+")
}

// MatchesKey сравнивает нажатие с привязкой из конфига.
func MatchesKey(actual, binding string) bool {
	if binding == "" {
		return false
	}
	return CanonicalKey(actual) == CanonicalKey(binding)
}

// DisplayKey форматирует привязку для подсказок: ctrl+p -> Ctrl+P (Cmd+P на macOS).
func DisplayKey(key string) string {
	canon := CanonicalKey(key)
	if canon == "" {
		return ""
	}
	parts := strings.Split(canon, "+")
	for i, p := range parts {
		switch p {
		case "ctrl":
			if IsMac() {
				parts[i] = "Cmd"
			} else {
				parts[i] = "Ctrl"
			}
		case "alt":
			if IsMac() {
				parts[i] = "Option"
			} else {
				parts[i] = "Alt"
			}
		default:
			r := []rune(p)
			parts[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(parts, "+")
}
