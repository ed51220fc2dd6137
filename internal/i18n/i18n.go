// Package i18n holds the user-visible strings in every supported language.
package i18n

import (
	"os"
	"strings"
)

const (
	English = "en"
	Chinese = "zh"
)

var translations = map[string]map[string]string{
	English: {
		"app.title":              "huepick",
		"app.description":        "Pick a color, convert it, keep the ones you like.",
		"colorInput.label":       "Hex color",
		"colorInput.placeholder": "#RRGGBB or #RGB",
		"colorInput.invalid":     "Invalid format, use #RGB or #RRGGBB",
		"colorCard.copy":         "Press ctrl+y to copy",
		"colorList.title":        "Saved colors",
		"colorList.empty":        "No saved colors yet.",
		"colorList.limit":        "Limit reached: adding another color drops the oldest.",
		"clipboard.copied":       "Copied!",
		"clipboard.failed":       "Copy failed",
		"help.keys":              "tab focus • enter add/copy • c copy • ctrl+y copy hex • d remove • X clear • esc quit",
		"cmd.saved":              "Saved %s",
		"cmd.alreadySaved":       "%s is already saved",
		"cmd.evicted":            "Dropped the oldest color %s",
		"cmd.dropped":            "Deleted list %s",
		"cmd.ignored":            "Ignored invalid color %q",
		"cmd.removed":            "Removed %s",
		"cmd.notSaved":           "%s is not saved",
		"cmd.cleared":            "Cleared saved colors",
		"cmd.copied":             "Copied %s",
	},
	Chinese: {
		"app.title":              "huepick",
		"app.description":        "选择颜色，转换格式，保存喜欢的颜色。",
		"colorInput.label":       "十六进制颜色",
		"colorInput.placeholder": "#RRGGBB 或 #RGB",
		"colorInput.invalid":     "格式无效，请使用 #RGB 或 #RRGGBB",
		"colorCard.copy":         "按 ctrl+y 复制",
		"colorList.title":        "已保存的颜色",
		"colorList.empty":        "还没有保存的颜色。",
		"colorList.limit":        "已达上限：再添加将移除最早的颜色。",
		"clipboard.copied":       "已复制！",
		"clipboard.failed":       "复制失败",
		"help.keys":              "tab 切换 • enter 添加/复制 • c 复制 • ctrl+y 复制十六进制 • d 删除 • X 清空 • esc 退出",
		"cmd.saved":              "已保存 %s",
		"cmd.alreadySaved":       "%s 已保存",
		"cmd.evicted":            "已移除最早的颜色 %s",
		"cmd.dropped":            "已删除列表 %s",
		"cmd.ignored":            "已忽略无效颜色 %q",
		"cmd.removed":            "已删除 %s",
		"cmd.notSaved":           "%s 未保存",
		"cmd.cleared":            "已清空保存的颜色",
		"cmd.copied":             "已复制 %s",
	},
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// T returns the string for key in lang, falling back to English and then
// to the key itself.
func T(lang, key string) string {
	if s, ok := translations[lang][key]; ok {
		return s
	}
	if s, ok := translations[English][key]; ok {
		return s
	}
	return key
}

// Detect picks the configured language if supported, otherwise the language
// named by the LANG environment variable, otherwise English.
func Detect(configured string) string {
	if Supported(configured) {
		return configured
	}
	lang, _, _ := strings.Cut(os.Getenv("LANG"), "_")
	lang, _, _ = strings.Cut(lang, ".")
	if Supported(lang) {
		return lang
	}
	return English
}
