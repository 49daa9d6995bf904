package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAggregateRating_Empty 零评论返回(0, 0)
func TestAggregateRating_Empty(t *testing.T) {
	avg, count := AggregateRating(nil)

	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, count)
}

// TestAggregateRating_Mean 评分[5,4,3]的平均值为4.0
func TestAggregateRating_Mean(t *testing.T) {
	avg, count := AggregateRating([]string{"5", "4", "3"})

	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 3, count)
}

// TestAggregateRating_UnparseableExcluded 脏数据不计入平均值但计入总数
func TestAggregateRating_UnparseableExcluded(t *testing.T) {
	avg, count := AggregateRating([]string{"5", "oops", "3", ""})

	assert.Equal(t, 4.0, avg, "无法解析的评分应同时从分子分母排除")
	assert.Equal(t, 4, count, "评论总数应包含脏数据行")
}

// TestAggregateRating_AllUnparseable 全部无法解析时平均值为0
func TestAggregateRating_AllUnparseable(t *testing.T) {
	avg, count := AggregateRating([]string{"x", "y"})

	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 2, count)
}

// TestParseRating 评分文本解析
func TestParseRating(t *testing.T) {
	cases := []struct {
		in    string
		want  float64
		valid bool
	}{
		{"5", 5, true},
		{" 4 ", 4, true},
		{"3.5", 3.5, true},
		{"", 0, false},
		{"five", 0, false},
	}

	for _, c := range cases {
		got, ok := ParseRating(c.in)
		assert.Equal(t, c.valid, ok, "输入: %q", c.in)
		if c.valid {
			assert.Equal(t, c.want, got, "输入: %q", c.in)
		}
	}
}
