package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "group" or "ref").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			msg = "型が不正です"
		case "missing_name":
			msg = "名前がありません"
		case "duplicate_name":
			msg = "同じ階層で名前 {name} が重複しています"
		case "invalid_child":
			msg = "子ノードが不正です"
		case "discriminator_missing":
			msg = "kind がありません"
		case "discriminator_unknown":
			msg = "未知の kind です: {kind}"
		case "parse_error":
			msg = "解析エラー"
		case "duplicate_key":
			msg = "キー {key} が重複しています"
		case "depth_exceeded":
			msg = "ネストが深すぎます"
		case "invalid_initial_route":
			msg = "{group} の initialRouteName {ref} は子ノードに存在しません"
		case "shadowed_name":
			msg = "名前 {name} は {first} で先に定義されているため検索できません"
		case "root_missing":
			msg = "トップレベルのスタック {name} がありません"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			msg = "invalid type"
		case "missing_name":
			msg = "node name missing"
		case "duplicate_name":
			msg = "duplicate sibling name {name}"
		case "invalid_child":
			msg = "invalid child node"
		case "discriminator_missing":
			msg = "kind missing"
		case "discriminator_unknown":
			msg = "unknown kind {kind}"
		case "parse_error":
			msg = "parse error"
		case "duplicate_key":
			msg = "duplicate key {key}"
		case "depth_exceeded":
			msg = "nesting too deep"
		case "invalid_initial_route":
			msg = "initial route {ref} of {group} names no direct child"
		case "shadowed_name":
			msg = "name {name} is shadowed by the node at {first}"
		case "root_missing":
			msg = "top-level stack {name} missing"
		}
	}
	if msg == "" {
		return code
	}
	return expand(msg, data)
}

// expand substitutes {key} placeholders; unknown placeholders stay verbatim.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). Safe to call while messages are being rendered.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
