package catalog

import (
	"strconv"
	"strings"
)

// 评分聚合
// 历史库的rating_star是文本列,可能存在无法解析的脏数据:
// 解析失败的评分不计入平均值(分子分母都排除),但计入评论总数

// AggregateRating 计算平均评分与评论总数
// 空集合返回(0, 0)
func AggregateRating(ratings []string) (avg float64, count int) {
	count = len(ratings)

	var sum float64
	var valid int
	for _, r := range ratings {
		v, ok := ParseRating(r)
		if !ok {
			continue
		}
		sum += v
		valid++
	}

	if valid == 0 {
		return 0, count
	}
	return sum / float64(valid), count
}

// ParseRating 解析单条评分文本
// 返回false表示无法解析为数字,调用方应跳过该条
func ParseRating(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
