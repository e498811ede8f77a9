package translate

import (
	"strings"

	"golang.org/x/text/language"
)

// 语言 ID：客户端约定 "1" 为西班牙语，"2" 为英语
const (
	LanguageIDSpanish = "1"
	LanguageIDEnglish = "2"
)

// ResolveLanguageID 路径参数中的语言 ID → 目标语言
// 只有 "2" 映射为英语，其余一律西班牙语
func ResolveLanguageID(id string) language.Tag {
	if strings.TrimSpace(id) == LanguageIDEnglish {
		return language.English
	}
	return language.Spanish
}

// ResolveLanguage 查询参数中的语言，兼容数字 ID 与 BCP 47 标签（如 "en-US"）
func ResolveLanguage(v string) language.Tag {
	v = strings.TrimSpace(v)
	switch v {
	case LanguageIDEnglish:
		return language.English
	case "", LanguageIDSpanish:
		return language.Spanish
	}

	tag, err := language.Parse(v)
	if err != nil {
		return language.Spanish
	}
	if base, _ := tag.Base(); base.String() == "en" {
		return language.English
	}
	return language.Spanish
}

// Code 目标语言的两字母代码，直接用作 tl 参数
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
