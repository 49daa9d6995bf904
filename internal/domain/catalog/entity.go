package catalog

import (
	"time"
)

// 商品目录读模型
// 设计说明:
// 1. Book/Author/Category/Discount由后台管理维护,本服务只读
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. Review的评分沿用历史库的字符串存储,聚合时解析(见rating.go)

// Book 图书实体
type Book struct {
	ID         uint
	CategoryID uint
	AuthorID   uint
	Title      string // 书名
	Summary    string // 简介
	Price      int64  // 定价(单位:分)
	CoverPhoto string // 封面图片URL
}

// Author 作者实体
type Author struct {
	ID   uint
	Name string
	Bio  string
}

// Category 分类实体
type Category struct {
	ID          uint
	Name        string
	Description string
}

// Discount 折扣记录
// EndDate为nil表示长期有效;是否生效由pricing.go按查询时刻判定
type Discount struct {
	ID        uint
	BookID    uint
	StartDate time.Time
	EndDate   *time.Time
	Price     int64 // 折扣价(分)
}

// BookRecord 目录查询的原始行:图书 + 作者 + 全部折扣 + 全部评论评分
// Ratings是评论评分的原始字符串(历史库为文本列),由RatingAggregator解析
type BookRecord struct {
	Book      Book
	Author    Author
	Discounts []Discount
	Ratings   []string
}

// ActiveDiscount 对外返回的生效折扣
type ActiveDiscount struct {
	Price   int64      `json:"discount_price"`
	EndDate *time.Time `json:"discount_end_date"`
}

// BookSummary 目录查询结果项
// 携带定价解析与评分聚合后的派生字段
type BookSummary struct {
	Book           Book
	Author         Author
	Discounts      []ActiveDiscount // 仅当前生效的折扣
	FinalPrice     int64            // 实际售价(分)
	DiscountAmount int64            // 优惠金额(分),无折扣为0
	HasDiscount    bool
	AvgRating      float64
	ReviewCount    int
}
