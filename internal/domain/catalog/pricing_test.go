package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time {
	return &t
}

// TestResolvePrice_NoDiscount 无折扣时实际售价等于定价
func TestResolvePrice_NoDiscount(t *testing.T) {
	quote := ResolvePrice(2000, nil, now, PricingPolicy{})

	assert.Equal(t, int64(2000), quote.FinalPrice, "无折扣时售价应等于定价")
	assert.Equal(t, int64(0), quote.DiscountAmount)
	assert.False(t, quote.HasDiscount)
	assert.Empty(t, quote.Active)
}

// TestResolvePrice_SingleActiveDiscount 单个生效折扣
func TestResolvePrice_SingleActiveDiscount(t *testing.T) {
	discounts := []Discount{
		{ID: 1, BookID: 1, StartDate: now.AddDate(0, -1, 0), EndDate: nil, Price: 1500},
	}

	quote := ResolvePrice(2000, discounts, now, PricingPolicy{})

	assert.Equal(t, int64(1500), quote.FinalPrice)
	assert.Equal(t, int64(500), quote.DiscountAmount)
	assert.True(t, quote.HasDiscount)
	assert.Len(t, quote.Active, 1)
}

// TestResolvePrice_MinOfMultipleActive 多个生效折扣取最低价
func TestResolvePrice_MinOfMultipleActive(t *testing.T) {
	discounts := []Discount{
		{ID: 1, Price: 1800, EndDate: nil},
		{ID: 2, Price: 1200, EndDate: datePtr(now.AddDate(0, 0, 10))},
		{ID: 3, Price: 1500, EndDate: nil},
	}

	quote := ResolvePrice(2000, discounts, now, PricingPolicy{})

	assert.Equal(t, int64(1200), quote.FinalPrice, "应取生效折扣中的最低价")
	assert.Equal(t, int64(800), quote.DiscountAmount)
	assert.Len(t, quote.Active, 3)
}

// TestResolvePrice_ExpiredDiscountIgnored 过期折扣不参与定价
// 场景来自线上:定价20.00,两个折扣{15.00 长期有效}与{18.00 昨天到期}
func TestResolvePrice_ExpiredDiscountIgnored(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	discounts := []Discount{
		{ID: 1, Price: 1500, EndDate: nil},
		{ID: 2, Price: 1800, EndDate: datePtr(yesterday)},
	}

	quote := ResolvePrice(2000, discounts, now, PricingPolicy{})

	assert.Equal(t, int64(1500), quote.FinalPrice)
	assert.Equal(t, int64(500), quote.DiscountAmount)
	assert.True(t, quote.HasDiscount)
	assert.Len(t, quote.Active, 1, "过期折扣不应出现在生效列表中")
	assert.Equal(t, uint(1), quote.Active[0].ID)
}

// TestResolvePrice_EndDateToday 当天到期的折扣仍然生效(end_date >= 当前日期)
func TestResolvePrice_EndDateToday(t *testing.T) {
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	discounts := []Discount{
		{ID: 1, Price: 1500, EndDate: datePtr(today)},
	}

	quote := ResolvePrice(2000, discounts, now, PricingPolicy{})

	assert.True(t, quote.HasDiscount, "end_date为今天的折扣应生效")
	assert.Equal(t, int64(1500), quote.FinalPrice)
}

// TestResolvePrice_FutureStartDate 未开始的折扣:默认生效,严格模式不生效
func TestResolvePrice_FutureStartDate(t *testing.T) {
	discounts := []Discount{
		{ID: 1, Price: 1500, StartDate: now.AddDate(0, 0, 7), EndDate: nil},
	}

	t.Run("默认策略不校验start_date", func(t *testing.T) {
		quote := ResolvePrice(2000, discounts, now, PricingPolicy{})
		assert.True(t, quote.HasDiscount)
		assert.Equal(t, int64(1500), quote.FinalPrice)
	})

	t.Run("严格模式下未开始的折扣不生效", func(t *testing.T) {
		quote := ResolvePrice(2000, discounts, now, PricingPolicy{StrictWindow: true})
		assert.False(t, quote.HasDiscount)
		assert.Equal(t, int64(2000), quote.FinalPrice)
	})
}

// TestResolvePrice_MalformedDiscountNotClamped 折扣价高于定价时优惠金额为负,不截断
func TestResolvePrice_MalformedDiscountNotClamped(t *testing.T) {
	discounts := []Discount{
		{ID: 1, Price: 2500, EndDate: nil},
	}

	quote := ResolvePrice(2000, discounts, now, PricingPolicy{})

	assert.Equal(t, int64(2500), quote.FinalPrice)
	assert.Equal(t, int64(-500), quote.DiscountAmount, "异常折扣价不做截断")
	assert.True(t, quote.HasDiscount)
}
