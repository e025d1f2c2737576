// Package parser 提供基于标签的文本占位符替换。
//
// 文本中的 token 由起止标签包裹 key 组成（默认 "[" 与 "]"，如 [name]），
// 解析时替换为 values 中对应的值。
//
// # 语义说明
//
//  1. 仅做字面量替换，没有条件、循环或转义语法
//  2. 单遍替换：替换进来的文本不会被再次扫描，值为 "[name]" 时不会循环展开
//  3. 可替换的值：字符串、数字、布尔 (true → "1"，false → "")
//  4. 嵌套映射通过点号路径访问，如 [user.name.first_name]
//  5. [Lazy] 值在处理到对应 key 时调用，每次解析最多一次
//  6. 无效类型 (nil、切片、结构体等) 与被排除的 key 保持原样，不报错
//
// # 别名
//
// 别名把另一个名字指向已有 key，别名先合并，直接 key 后合并，
// 同名时直接 key 优先。目标 key 不存在或被排除时别名会被丢弃；
// 解析阶段还会再用别名自身的名字做一次排除检查。
//
// # 快速开始
//
//	out, err := parser.Text("Hello [name]!").
//	    Values(map[string]any{"name": "Foo"}).
//	    Parse()
//
// 自定义标签：
//
//	out, err := parser.Text("Hello %name%!").
//	    Values(map[string]any{"name": "Foo"}).
//	    Tags("%", "%").
//	    Parse()
//
// 标签数量不是两个时 [Parser.Parse] 返回 [*InvalidTagsError]，
// 可使用 errors.Is(err, [ErrInvalidTags]) 判断。
package parser
