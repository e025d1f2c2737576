// Package envexp 提供输入文件的 Shell 参数展开。
//
// 仅处理 ${...} 语法，用于在 values / aliases 文件解析前注入环境变量。
//
// # 语义说明
//
//  1. 仅识别 ${VAR}，不解析 $VAR
//  2. 支持嵌套展开与 "$$" 字面量
//  3. 无法识别的表达式保持原样
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置时为空
//   - ${VAR:-default} / ${VAR-default} - fallback
//   - ${VAR:+alt} / ${VAR+alt} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验
package envexp
