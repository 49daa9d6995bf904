package catalog

import (
	"time"
)

// 定价解析
// 业务规则:
// 1. 折扣在时刻T生效 iff end_date为空 或 end_date >= T的日期
// 2. 实际售价 = 生效折扣中的最低折扣价;无生效折扣则为定价
// 3. 优惠金额 = 定价 - 实际售价;折扣价高于定价时结果为负,不做截断
//    (与线上历史行为一致,异常数据由后台治理)

// PricingPolicy 定价策略开关
// StrictWindow为true时额外要求start_date <= T的日期。
// 历史行为不校验start_date(未开始的折扣已生效),默认关闭保持兼容。
type PricingPolicy struct {
	StrictWindow bool
}

// PriceQuote 定价解析结果
type PriceQuote struct {
	FinalPrice     int64
	DiscountAmount int64
	HasDiscount    bool
	Active         []Discount // 生效折扣(按原始顺序)
}

// ResolvePrice 解析图书在now时刻的实际售价
// 纯函数,无副作用;discounts为空或全部过期时返回定价本身
func ResolvePrice(listPrice int64, discounts []Discount, now time.Time, policy PricingPolicy) PriceQuote {
	today := dateOf(now)

	var active []Discount
	for _, d := range discounts {
		if !discountActive(d, today, policy) {
			continue
		}
		active = append(active, d)
	}

	if len(active) == 0 {
		return PriceQuote{
			FinalPrice:     listPrice,
			DiscountAmount: 0,
			HasDiscount:    false,
		}
	}

	final := active[0].Price
	for _, d := range active[1:] {
		if d.Price < final {
			final = d.Price
		}
	}

	return PriceQuote{
		FinalPrice:     final,
		DiscountAmount: listPrice - final,
		HasDiscount:    true,
		Active:         active,
	}
}

// discountActive 判定折扣在today(日期粒度)是否生效
func discountActive(d Discount, today time.Time, policy PricingPolicy) bool {
	if d.EndDate != nil && dateOf(*d.EndDate).Before(today) {
		return false
	}
	if policy.StrictWindow && dateOf(d.StartDate).After(today) {
		return false
	}
	return true
}

// dateOf 截断到日期(折扣有效期按天判定,与discount表的DATE列一致)
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
