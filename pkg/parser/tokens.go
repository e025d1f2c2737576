package parser

import (
	"io"

	"github.com/valyala/fasttemplate"
)

// Tokens 返回文本中出现的 token key（去重，按首次出现顺序）。
//
// 起止标签任一为空，或标签数量不是两个时无法界定 token，返回 nil。
func (p *Parser) Tokens() []string {
	if p.text == nil || len(p.tags) != 2 {
		return nil
	}

	return scanTokens(*p.text, p.tags[0], p.tags[1])
}

// Unresolved 执行替换，并返回结果中仍残留的 token key。
func (p *Parser) Unresolved() ([]string, error) {
	_, left, err := p.ParseUnresolved()
	return left, err
}

// ParseUnresolved 执行一次替换，同时返回结果与其中残留的 token key。
func (p *Parser) ParseUnresolved() (string, []string, error) {
	res, err := p.ParsePtr()
	if err != nil || res == nil {
		return "", nil, err
	}

	return *res, scanTokens(*res, p.tags[0], p.tags[1]), nil
}

func scanTokens(text, open, closeTag string) []string {
	if open == "" || closeTag == "" {
		return nil
	}

	var keys []string
	seen := make(map[string]struct{})
	_, _ = fasttemplate.ExecuteFunc(text, open, closeTag, io.Discard, func(_ io.Writer, tag string) (int, error) {
		if _, ok := seen[tag]; !ok {
			seen[tag] = struct{}{}
			keys = append(keys, tag)
		}

		return 0, nil
	})

	return keys
}
