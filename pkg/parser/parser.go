package parser

import (
	"log/slog"
	"slices"
	"strings"
)

// DefaultTags 默认的起止标签。
var DefaultTags = []string{"[", "]"}

// Parser 标签替换引擎。
//
// 通过 [Text] 创建，链式设置 values / tags / exclude / aliases 后调用 [Parser.Parse]。
// 每个 setter 都整体覆盖之前的配置。Parser 不是并发安全的，应当一次请求一个实例。
type Parser struct {
	text    *string
	values  *Map[any]
	tags    []string
	exclude []string
	aliases *Map[string]
}

// Text 以 text 创建新的 Parser，也是整个调用链的起点。
func Text(text string) *Parser {
	return TextPtr(&text)
}

// TextPtr 与 [Text] 相同，但允许传入 nil 表示文本缺失。
//
// 文本缺失时 [Parser.ParsePtr] 直接返回 nil，不校验标签也不触碰 values。
func TextPtr(text *string) *Parser {
	return &Parser{
		text:    text,
		values:  NewMap[any](),
		tags:    slices.Clone(DefaultTags),
		aliases: NewMap[string](),
	}
}

// Values 设置替换值，key 按字典序处理。需要控制顺序时使用 [Parser.OrderedValues]。
func (p *Parser) Values(values map[string]any) *Parser {
	p.values = MapOf(values)
	return p
}

// OrderedValues 设置有序的替换值。
func (p *Parser) OrderedValues(values *Map[any]) *Parser {
	if values == nil {
		values = NewMap[any]()
	}
	p.values = values

	return p
}

// Tags 设置起止标签，设置时不校验数量，解析时才校验。
func (p *Parser) Tags(tags ...string) *Parser {
	p.tags = slices.Clone(tags)
	return p
}

// Exclude 设置不参与替换的 key（直接 key 或别名）。
func (p *Parser) Exclude(keys ...string) *Parser {
	p.exclude = slices.Clone(keys)
	return p
}

// Aliases 设置别名映射 (别名 → 目标 key)，别名按字典序处理。
func (p *Parser) Aliases(aliases map[string]string) *Parser {
	p.aliases = MapOf(aliases)
	return p
}

// OrderedAliases 设置有序的别名映射。
func (p *Parser) OrderedAliases(aliases *Map[string]) *Parser {
	if aliases == nil {
		aliases = NewMap[string]()
	}
	p.aliases = aliases

	return p
}

// MapAliases 将别名解析为 别名 → 原始值 的新映射。
//
// 目标 key 不存在（含点号路径）或被排除的别名会被静默丢弃。
// 返回的是原始值：Lazy 不会被调用，嵌套映射也不会展开。
func (p *Parser) MapAliases() *Map[any] {
	out, _ := p.resolveAliases()
	return out
}

// resolveAliases 解析别名，并记录每个别名命中值在 values 中的路径。
func (p *Parser) resolveAliases() (*Map[any], map[string][]string) {
	out := NewMap[any]()
	paths := make(map[string][]string)
	p.aliases.Range(func(alias, target string) bool {
		val, path, ok := resolve(p.values, target)
		if !ok {
			slog.Debug("Skipped alias", "alias", alias, "target", target, "reason", "target not found")
			return true
		}
		if p.excluded(target) {
			slog.Debug("Skipped alias", "alias", alias, "target", target, "reason", "target excluded")
			return true
		}
		out.Set(alias, val)
		paths[alias] = path

		return true
	})

	return out, paths
}

// Parse 执行替换并返回结果。文本缺失时返回空字符串。
//
// 标签数量不是两个时返回 [*InvalidTagsError]。
func (p *Parser) Parse() (string, error) {
	res, err := p.ParsePtr()
	if err != nil || res == nil {
		return "", err
	}

	return *res, nil
}

// ParsePtr 执行替换，文本缺失时返回 nil。
//
// 别名与其目标共享同一个值，Lazy 无论经由多少个别名引用，每次解析最多调用一次。
func (p *Parser) ParsePtr() (*string, error) {
	if p.text == nil {
		return nil, nil
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	candidates, paths := p.resolveAliases()
	p.values.Range(func(k string, v any) bool {
		candidates.Set(k, v)
		delete(paths, k)
		return true
	})

	run := &pass{
		Parser: p,
		r:      newReplacer(*p.text, p.tags[0], p.tags[1]),
		forced: make(map[string]any),
	}
	candidates.Range(func(key string, raw any) bool {
		path, ok := paths[key]
		if !ok {
			path = []string{key}
		}
		run.apply(key, path, raw)
		return true
	})

	res := run.r.String()

	return &res, nil
}

// validate 校验标签数量。
func (p *Parser) validate() error {
	if len(p.tags) != 2 {
		return missingTags(p.tags)
	}

	return nil
}

// pass 单次解析的状态。forced 按值在 values 中的路径缓存已展开的值。
type pass struct {
	*Parser
	r      *replacer
	forced map[string]any
}

// apply 处理单个候选 key，嵌套映射以 key + "." 为前缀逐项处理。
//
// Lazy 值在排除检查之前调用，与未排除时的调用时机一致。
func (s *pass) apply(key string, path []string, raw any) {
	val := s.force(path, raw)
	if s.excluded(key) {
		slog.Debug("Skipped key", "key", key, "reason", "excluded")
		return
	}

	kind, text := classify(val)
	switch kind {
	case kindScalar:
		s.r.Replace(key, text)
	case kindNested:
		rangeNested(val, func(k string, v any) {
			s.apply(key+PathSep+k, append(slices.Clip(path), k), v)
		})
	default:
		slog.Debug("Skipped key", "key", key, "reason", "invalid value type")
	}
}

// force 展开 raw，同一路径只展开一次。
func (s *pass) force(path []string, raw any) any {
	id := pathKey(path)
	if val, ok := s.forced[id]; ok {
		return val
	}
	val := force(raw)
	s.forced[id] = val

	return val
}

func (p *Parser) excluded(key string) bool {
	return slices.Contains(p.exclude, key)
}

// ═══════════════════════════════════════════════════════════════════════════
// 单遍替换
// ═══════════════════════════════════════════════════════════════════════════

// segment 文本片段，done 表示该片段是替换结果，不再参与后续查找。
type segment struct {
	text string
	done bool
}

// replacer 按 key 逐个执行字面量替换，已替换出的文本不会被再次扫描。
type replacer struct {
	open, close string
	segs        []segment
}

func newReplacer(text, open, closeTag string) *replacer {
	return &replacer{
		open:  open,
		close: closeTag,
		segs:  []segment{{text: text}},
	}
}

// Replace 将所有未替换片段中的 open+key+close 替换为 val（从左到右、不重叠）。
func (r *replacer) Replace(key, val string) {
	token := r.open + key + r.close
	if token == "" {
		return
	}

	out := make([]segment, 0, len(r.segs))
	for _, seg := range r.segs {
		if seg.done || !strings.Contains(seg.text, token) {
			out = append(out, seg)
			continue
		}
		parts := strings.Split(seg.text, token)
		for i, part := range parts {
			if i > 0 {
				out = append(out, segment{text: val, done: true})
			}
			if part != "" {
				out = append(out, segment{text: part})
			}
		}
	}
	r.segs = out
}

func (r *replacer) String() string {
	var buf strings.Builder
	for _, seg := range r.segs {
		buf.WriteString(seg.text)
	}

	return buf.String()
}
