package util

import "strings"

// NormalizeQuery 把原始搜索词归一化为统一的键：去首尾空白并转小写。
// 搜索历史与点击归因都基于这个键做去重，保证两边落在同一条记录上。
// 归一化后为空串表示输入无效，由调用方拒绝。
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
